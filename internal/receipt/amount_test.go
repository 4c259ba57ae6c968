package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTotal(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantTotal      float64
		wantConfidence float64
	}{
		{
			name:           "labeled total",
			input:          "Milk $3.20\nTotal: $5.70",
			wantTotal:      5.70,
			wantConfidence: 0.8,
		},
		{
			name:           "grand total",
			input:          "GRAND TOTAL 123.45",
			wantTotal:      123.45,
			wantConfidence: 0.8,
		},
		{
			name:           "amount due",
			input:          "Amount Due: $42.00",
			wantTotal:      42.00,
			wantConfidence: 0.8,
		},
		{
			name:           "balance due",
			input:          "BALANCE DUE $17.50",
			wantTotal:      17.50,
			wantConfidence: 0.8,
		},
		{
			name:           "trailing line amount",
			input:          "Some Store\nWidget  $9.99",
			wantTotal:      9.99,
			wantConfidence: 0.8,
		},
		{
			name:           "thousands separator",
			input:          "Total: $1,234.56",
			wantTotal:      1234.56,
			wantConfidence: 0.8,
		},
		{
			name:           "subtotal label does not count as total",
			input:          "Subtotal $4.00 and nothing else",
			wantTotal:      4.00,
			wantConfidence: 0.5,
		},
		{
			name:           "fallback takes the largest dollar amount",
			input:          "paid $3.20 then $12.80 then $5.00 mid-line",
			wantTotal:      12.80,
			wantConfidence: 0.5,
		},
		{
			name:           "no amounts at all",
			input:          "just words here",
			wantTotal:      0,
			wantConfidence: 0.5,
		},
		{
			name:           "empty",
			input:          "",
			wantTotal:      0,
			wantConfidence: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, conf := extractTotal(tt.input)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantConfidence, conf)
		})
	}
}
