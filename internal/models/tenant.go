package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Tenant struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Versioned
}

func (t *Tenant) GetID() string { return t.ID.String() }

// FullName joins first and last, tolerating either being empty.
func (t *Tenant) FullName() string {
	return strings.TrimSpace(t.FirstName + " " + t.LastName)
}
