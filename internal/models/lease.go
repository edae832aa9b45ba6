package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type LeaseStatus string

const (
	LeasePending   LeaseStatus = "pending"
	LeaseActive    LeaseStatus = "active"
	LeaseEnded     LeaseStatus = "ended"
	LeaseDefaulted LeaseStatus = "defaulted"
)

// Lease binds one tenant to one unit over a date range with a recurring
// rent obligation. Amounts are integer cents; DueDay is kept in [1,28] so a
// due date exists in every month.
type Lease struct {
	ID           uuid.UUID   `json:"id"`
	UnitID       uuid.UUID   `json:"unit_id"`
	TenantID     uuid.UUID   `json:"tenant_id"`
	StartDate    time.Time   `json:"start_date"`
	EndDate      *time.Time  `json:"end_date,omitempty"`
	RentCents    int64       `json:"rent_cents"`
	DueDay       int         `json:"due_day"`
	DepositCents *int64      `json:"deposit_cents,omitempty"`
	Status       LeaseStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	Versioned
}

func (l *Lease) GetID() string { return l.ID.String() }

// LeaseTenancy is the denormalized lease row the read paths work with:
// the lease joined to its unit, the unit's property, and the tenant, flattened
// to just the display fields. Join columns come back empty (never an error)
// when a referenced row is missing.
type LeaseTenancy struct {
	LeaseID      uuid.UUID   `json:"lease_id"`
	UnitID       uuid.UUID   `json:"unit_id"`
	PropertyID   uuid.UUID   `json:"property_id"`
	TenantID     uuid.UUID   `json:"tenant_id"`
	StartDate    time.Time   `json:"start_date"`
	EndDate      *time.Time  `json:"end_date,omitempty"`
	RentCents    int64       `json:"rent_cents"`
	DueDay       int         `json:"due_day"`
	DepositCents *int64      `json:"deposit_cents,omitempty"`
	Status       LeaseStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`

	UnitLabel       string `json:"unit_label"`
	PropertyName    string `json:"property_name"`
	TenantFirstName string `json:"tenant_first_name"`
	TenantLastName  string `json:"tenant_last_name"`
}

// TenantName joins the tenant's first and last name for display.
func (lt *LeaseTenancy) TenantName() string {
	return strings.TrimSpace(lt.TenantFirstName + " " + lt.TenantLastName)
}
