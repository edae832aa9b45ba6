package dtos

import (
	"github.com/google/uuid"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

type CreateTenantRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

type UpdateTenantRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt string    `json:"created_at"`
}

func NewTenantFromModel(t *models.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		FirstName: t.FirstName,
		LastName:  t.LastName,
		Email:     t.Email,
		Phone:     t.Phone,
		CreatedAt: t.CreatedAt.Format(timeLayout),
	}
}

func NewTenantsFromModels(tenants []*models.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, NewTenantFromModel(t))
	}
	return out
}
