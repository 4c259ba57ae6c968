package entity

import (
	"time"

	"github.com/google/uuid"
)

// Household represents a household profile for data transfer between layers.
type Household struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DefaultCurrency string    `json:"default_currency"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
