package dtos

import (
	"github.com/google/uuid"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

type CreatePaymentRequest struct {
	LeaseID     string  `json:"lease_id" validate:"required,uuid4"`
	PaidOn      string  `json:"paid_on" validate:"required,datetime=2006-01-02"`
	AmountCents int64   `json:"amount_cents" validate:"min=0"`
	Method      string  `json:"method" validate:"required,oneof=cash check ach card other"`
	Memo        *string `json:"memo,omitempty" validate:"omitempty,max=500"`
}

type UpdatePaymentRequest struct {
	LeaseID     *string `json:"lease_id,omitempty" validate:"omitempty,uuid4"`
	PaidOn      *string `json:"paid_on,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AmountCents *int64  `json:"amount_cents,omitempty" validate:"omitempty,min=0"`
	Method      *string `json:"method,omitempty" validate:"omitempty,oneof=cash check ach card other"`
	Memo        *string `json:"memo,omitempty" validate:"omitempty,max=500"`
}

// PaymentResponse mirrors the payments list projection: the payment joined
// through its lease to the unit, property, and tenant refs.
type PaymentResponse struct {
	ID          uuid.UUID `json:"id"`
	PaidOn      string    `json:"paid_on"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method"`
	Memo        *string   `json:"memo,omitempty"`
	CreatedAt   string    `json:"created_at"`
	Lease       LeaseRef  `json:"lease"`
}

type LeaseRef struct {
	ID     string    `json:"id"`
	Unit   UnitRef   `json:"unit"`
	Tenant TenantRef `json:"tenant"`
}

func NewPaymentFromTenancy(pt *models.PaymentTenancy) PaymentResponse {
	return PaymentResponse{
		ID:          pt.PaymentID,
		PaidOn:      pt.PaidOn.Format(dateLayout),
		AmountCents: pt.AmountCents,
		Method:      string(pt.Method),
		Memo:        pt.Memo,
		CreatedAt:   pt.CreatedAt.Format(timeLayout),
		Lease: LeaseRef{
			ID: pt.LeaseID.String(),
			Unit: UnitRef{
				ID:    pt.UnitID.String(),
				Label: pt.UnitLabel,
				Property: PropertyRef{
					ID:   pt.PropertyID.String(),
					Name: pt.PropertyName,
				},
			},
			Tenant: TenantRef{
				ID:        pt.TenantID.String(),
				FirstName: pt.TenantFirstName,
				LastName:  pt.TenantLastName,
			},
		},
	}
}

func NewPaymentsFromTenancies(list []*models.PaymentTenancy) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, pt := range list {
		out = append(out, NewPaymentFromTenancy(pt))
	}
	return out
}
