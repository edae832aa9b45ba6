package models

import (
	"time"

	"github.com/google/uuid"
)

type PropertyType string

const (
	PropertySingle PropertyType = "single"
	PropertyMulti  PropertyType = "multi"
)

// Property is a building or house the landlord manages. Units hang off it;
// a "single" property typically carries one default unit.
type Property struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Address1     string       `json:"address1"`
	Address2     string       `json:"address2"`
	City         string       `json:"city"`
	State        string       `json:"state"`
	PostalCode   string       `json:"postal_code"`
	Notes        string       `json:"notes"`
	PropertyType PropertyType `json:"property_type"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	Versioned
}

func (p *Property) GetID() string { return p.ID.String() }
