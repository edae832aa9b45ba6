package dtos

import (
	"github.com/google/uuid"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

type CreateLeaseRequest struct {
	UnitID       string `json:"unit_id" validate:"required,uuid4"`
	TenantID     string `json:"tenant_id" validate:"required,uuid4"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RentCents    int64  `json:"rent_cents" validate:"min=0"`
	DueDay       int    `json:"due_day" validate:"required,min=1,max=28"`
	DepositCents *int64 `json:"deposit_cents,omitempty" validate:"omitempty,min=0"`
	Status       string `json:"status" validate:"required,oneof=pending active ended defaulted"`
}

type UpdateLeaseRequest struct {
	UnitID       *string `json:"unit_id,omitempty" validate:"omitempty,uuid4"`
	TenantID     *string `json:"tenant_id,omitempty" validate:"omitempty,uuid4"`
	StartDate    *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RentCents    *int64  `json:"rent_cents,omitempty" validate:"omitempty,min=0"`
	DueDay       *int    `json:"due_day,omitempty" validate:"omitempty,min=1,max=28"`
	DepositCents *int64  `json:"deposit_cents,omitempty" validate:"omitempty,min=0"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=pending active ended defaulted"`

	// ClearEndDate removes an existing end date; EndDate alone cannot
	// distinguish "leave as is" from "unset".
	ClearEndDate bool `json:"clear_end_date,omitempty"`
}

// LeaseResponse mirrors the joined projection of the leases list: the lease
// plus its unit→property and tenant display refs.
type LeaseResponse struct {
	ID           uuid.UUID `json:"id"`
	StartDate    string    `json:"start_date"`
	EndDate      *string   `json:"end_date,omitempty"`
	RentCents    int64     `json:"rent_cents"`
	DueDay       int       `json:"due_day"`
	DepositCents *int64    `json:"deposit_cents,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    string    `json:"created_at"`
	Unit         UnitRef   `json:"unit"`
	Tenant       TenantRef `json:"tenant"`
}

func NewLeaseFromTenancy(lt *models.LeaseTenancy) LeaseResponse {
	var end *string
	if lt.EndDate != nil {
		s := lt.EndDate.Format(dateLayout)
		end = &s
	}
	return LeaseResponse{
		ID:           lt.LeaseID,
		StartDate:    lt.StartDate.Format(dateLayout),
		EndDate:      end,
		RentCents:    lt.RentCents,
		DueDay:       lt.DueDay,
		DepositCents: lt.DepositCents,
		Status:       string(lt.Status),
		CreatedAt:    lt.CreatedAt.Format(timeLayout),
		Unit: UnitRef{
			ID:    lt.UnitID.String(),
			Label: lt.UnitLabel,
			Property: PropertyRef{
				ID:   lt.PropertyID.String(),
				Name: lt.PropertyName,
			},
		},
		Tenant: TenantRef{
			ID:        lt.TenantID.String(),
			FirstName: lt.TenantFirstName,
			LastName:  lt.TenantLastName,
		},
	}
}

func NewLeasesFromTenancies(list []*models.LeaseTenancy) []LeaseResponse {
	out := make([]LeaseResponse, 0, len(list))
	for _, lt := range list {
		out = append(out, NewLeaseFromTenancy(lt))
	}
	return out
}
