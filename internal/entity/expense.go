package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseItem is one purchased product detached from the receipt total.
type ExpenseItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Expense represents a scanned expense for data transfer between layers.
type Expense struct {
	ID           uuid.UUID     `json:"id"`
	HouseholdID  uuid.UUID     `json:"household_id"`
	MerchantName string        `json:"merchant_name"`
	TxDate       time.Time     `json:"tx_date"`
	Total        float64       `json:"total"`
	CurrencyCode string        `json:"currency_code"`
	Category     string        `json:"category"`
	Confidence   float64       `json:"confidence"`
	NeedsReview  bool          `json:"needs_review"`
	RawText      string        `json:"raw_text,omitempty"`
	LineItems    []ExpenseItem `json:"line_items,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
