package models

import (
	"time"

	"github.com/google/uuid"
)

// Unit is a rentable space inside a property ("Unit A", "Single Family
// Home"). Labels are display names; uniqueness within a property is not
// enforced here.
type Unit struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	Label      string    `json:"label"`
	Bedrooms   *int      `json:"bedrooms,omitempty"`
	Bathrooms  *float64  `json:"bathrooms,omitempty"`
	Sqft       *int      `json:"sqft,omitempty"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Versioned
}

func (u *Unit) GetID() string { return u.ID.String() }

// UnitActivity is the flat read-model for the dashboard's recent-unit feed:
// the unit plus its property's display name.
type UnitActivity struct {
	ID           uuid.UUID `json:"id"`
	Label        string    `json:"label"`
	PropertyName string    `json:"property_name"`
	CreatedAt    time.Time `json:"created_at"`
}
