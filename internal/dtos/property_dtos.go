package dtos

import (
	"github.com/google/uuid"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

type CreatePropertyRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Address1     string `json:"address1" validate:"max=200"`
	Address2     string `json:"address2" validate:"max=200"`
	City         string `json:"city" validate:"max=100"`
	State        string `json:"state" validate:"max=100"`
	PostalCode   string `json:"postal_code" validate:"max=20"`
	Notes        string `json:"notes"`
	PropertyType string `json:"property_type" validate:"omitempty,oneof=single multi"`
}

// UpdatePropertyRequest is a partial update: nil fields are left untouched.
type UpdatePropertyRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Address1     *string `json:"address1,omitempty" validate:"omitempty,max=200"`
	Address2     *string `json:"address2,omitempty" validate:"omitempty,max=200"`
	City         *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State        *string `json:"state,omitempty" validate:"omitempty,max=100"`
	PostalCode   *string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	Notes        *string `json:"notes,omitempty"`
	PropertyType *string `json:"property_type,omitempty" validate:"omitempty,oneof=single multi"`
}

type PropertyResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address1     string    `json:"address1"`
	Address2     string    `json:"address2"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postal_code"`
	Notes        string    `json:"notes"`
	PropertyType string    `json:"property_type"`
	CreatedAt    string    `json:"created_at"`
}

func NewPropertyFromModel(p *models.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID,
		Name:         p.Name,
		Address1:     p.Address1,
		Address2:     p.Address2,
		City:         p.City,
		State:        p.State,
		PostalCode:   p.PostalCode,
		Notes:        p.Notes,
		PropertyType: string(p.PropertyType),
		CreatedAt:    p.CreatedAt.Format(timeLayout),
	}
}

func NewPropertiesFromModels(props []*models.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(props))
	for _, p := range props {
		out = append(out, NewPropertyFromModel(p))
	}
	return out
}
