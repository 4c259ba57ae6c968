// Package receipt turns raw OCR text from a receipt photo into a structured
// expense record: merchant, total, date, spending category and candidate line
// items. Everything here is pure string processing; extraction is an ordered
// list of strategies per field and every failure degrades to a documented
// default instead of an error.
package receipt

import (
	"time"

	"github.com/homecrew/homecrew-backend/constants"
)

// UnknownMerchant is the fallback when no plausible merchant line survives.
const UnknownMerchant = "Unknown"

// merchantMaxLen caps the merchant field.
const merchantMaxLen = 50

// LineItem is a single purchased product read off the receipt body.
type LineItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ParsedReceipt is the best-effort structured view of one receipt.
type ParsedReceipt struct {
	RawText    string             `json:"raw_text"`
	Total      float64            `json:"total"`
	Merchant   string             `json:"merchant"`
	Date       string             `json:"date"` // YYYY-MM-DD, always calendar-valid
	Category   constants.Category `json:"category"`
	Confidence float64            `json:"confidence"` // 0.8 labeled total, 0.5 guessed
	LineItems  []LineItem         `json:"line_items"`
}

// Options carries optional parse inputs.
type Options struct {
	// KnownMerchants is a household's previously confirmed merchant names.
	// Read-only snapshot; used to snap noisy OCR reads onto a known name.
	KnownMerchants []string

	// Now overrides the clock for the "today" date fallback. Zero means
	// time.Now in UTC.
	Now time.Time
}

// Parse extracts a ParsedReceipt from raw OCR text. It never fails: malformed
// or empty input yields the documented defaults (Unknown merchant, zero total
// at 0.5 confidence, today's date, Miscellaneous category, no line items).
// Deterministic given identical inputs and a fixed Options.Now.
func Parse(rawText string, opts Options) ParsedReceipt {
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	cleaned := Unwrap(rawText)

	merchant := extractMerchant(cleaned)
	if len(opts.KnownMerchants) > 0 {
		if known, ok := snapToKnownMerchant(merchant, cleaned, opts.KnownMerchants); ok {
			merchant = truncateRunes(known, merchantMaxLen)
		}
	}

	// Totals and dates are matched against the original text: they often sit
	// inside the very wrapper fragments Unwrap strips around the body.
	total, confidence := extractTotal(rawText)

	return ParsedReceipt{
		RawText:    rawText,
		Total:      total,
		Merchant:   merchant,
		Date:       extractDate(rawText, now),
		Category:   constants.Classify(rawText),
		Confidence: confidence,
		LineItems:  extractLineItems(rawText, total),
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
