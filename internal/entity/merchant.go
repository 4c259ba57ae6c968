package entity

import (
	"time"

	"github.com/google/uuid"
)

// Merchant is a store name a household member has confirmed at least once.
// The set of these per household is the matching target for the fuzzy
// merchant snap during receipt parsing.
type Merchant struct {
	ID          uuid.UUID `json:"id"`
	HouseholdID uuid.UUID `json:"household_id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}
