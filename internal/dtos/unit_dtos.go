package dtos

import (
	"github.com/google/uuid"

	"github.com/CarlinQuentin/property-manager/internal/models"
)

type CreateUnitRequest struct {
	PropertyID string   `json:"property_id" validate:"required,uuid4"`
	Label      string   `json:"label" validate:"required,max=100"`
	Bedrooms   *int     `json:"bedrooms,omitempty" validate:"omitempty,min=0"`
	Bathrooms  *float64 `json:"bathrooms,omitempty" validate:"omitempty,min=0"`
	Sqft       *int     `json:"sqft,omitempty" validate:"omitempty,min=0"`
	IsDefault  bool     `json:"is_default"`
}

type UpdateUnitRequest struct {
	Label     *string  `json:"label,omitempty" validate:"omitempty,min=1,max=100"`
	Bedrooms  *int     `json:"bedrooms,omitempty" validate:"omitempty,min=0"`
	Bathrooms *float64 `json:"bathrooms,omitempty" validate:"omitempty,min=0"`
	Sqft      *int     `json:"sqft,omitempty" validate:"omitempty,min=0"`
	IsDefault *bool    `json:"is_default,omitempty"`
}

type UnitResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	Label      string    `json:"label"`
	Bedrooms   *int      `json:"bedrooms,omitempty"`
	Bathrooms  *float64  `json:"bathrooms,omitempty"`
	Sqft       *int      `json:"sqft,omitempty"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  string    `json:"created_at"`
}

func NewUnitFromModel(u *models.Unit) UnitResponse {
	return UnitResponse{
		ID:         u.ID,
		PropertyID: u.PropertyID,
		Label:      u.Label,
		Bedrooms:   u.Bedrooms,
		Bathrooms:  u.Bathrooms,
		Sqft:       u.Sqft,
		IsDefault:  u.IsDefault,
		CreatedAt:  u.CreatedAt.Format(timeLayout),
	}
}

func NewUnitsFromModels(units []*models.Unit) []UnitResponse {
	out := make([]UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, NewUnitFromModel(u))
	}
	return out
}
