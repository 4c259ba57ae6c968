package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDate(t *testing.T) {
	now := fixedNow()
	today := "2024-06-01"

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso dashes", "receipt 2024-01-15 thanks", "2024-01-15"},
		{"iso slashes", "2024/3/7", "2024-03-07"},
		{"day first when first slot exceeds twelve", "13/01/2024", "2024-01-13"},
		{"month first otherwise", "01/13/2024", "2024-01-13"},
		{"month day year", "03/07/2024", "2024-03-07"},
		{"month name", "Jan 15, 2024", "2024-01-15"},
		{"month name long form", "January 5 2024", "2024-01-05"},
		{"month name ordinal", "Mar 3rd, 2021", "2021-03-03"},
		{"glued to escape artifact", `...\n2024-01-15"}`, "2024-01-15"},
		{"year out of range", "1776-07-04", today},
		{"month out of range", "2024-13-05", today},
		{"impossible calendar day", "2024-02-31", today},
		{"invalid first then valid later", "2024-99-99 but paid 2024-03-07", "2024-03-07"},
		{"no date at all", "no dates here", today},
		{"empty", "", today},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDate(tt.input, now))
		})
	}
}
