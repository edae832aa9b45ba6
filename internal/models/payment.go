package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PayCash  PaymentMethod = "cash"
	PayCheck PaymentMethod = "check"
	PayACH   PaymentMethod = "ach"
	PayCard  PaymentMethod = "card"
	PayOther PaymentMethod = "other"
)

type Payment struct {
	ID          uuid.UUID     `json:"id"`
	LeaseID     uuid.UUID     `json:"lease_id"`
	PaidOn      time.Time     `json:"paid_on"`
	AmountCents int64         `json:"amount_cents"`
	Method      PaymentMethod `json:"method"`
	Memo        *string       `json:"memo,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Versioned
}

func (p *Payment) GetID() string { return p.ID.String() }

// PaymentTenancy is a payment joined through its lease to the unit, property
// and tenant display fields, flattened for list views and the activity feed.
type PaymentTenancy struct {
	PaymentID   uuid.UUID     `json:"payment_id"`
	LeaseID     uuid.UUID     `json:"lease_id"`
	PaidOn      time.Time     `json:"paid_on"`
	AmountCents int64         `json:"amount_cents"`
	Method      PaymentMethod `json:"method"`
	Memo        *string       `json:"memo,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`

	UnitID          uuid.UUID `json:"unit_id"`
	PropertyID      uuid.UUID `json:"property_id"`
	TenantID        uuid.UUID `json:"tenant_id"`
	UnitLabel       string    `json:"unit_label"`
	PropertyName    string    `json:"property_name"`
	TenantFirstName string    `json:"tenant_first_name"`
	TenantLastName  string    `json:"tenant_last_name"`
}

func (pt *PaymentTenancy) TenantName() string {
	return strings.TrimSpace(pt.TenantFirstName + " " + pt.TenantLastName)
}

// PaymentStub is the minimal projection used for month-window paid checks.
type PaymentStub struct {
	LeaseID uuid.UUID `json:"lease_id"`
	PaidOn  time.Time `json:"paid_on"`
}
