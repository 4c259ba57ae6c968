package receipt

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecrew/homecrew-backend/constants"
)

var reISODate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestParseEmptyInput(t *testing.T) {
	got := Parse("", Options{Now: fixedNow()})

	assert.Equal(t, 0.0, got.Total)
	assert.Equal(t, UnknownMerchant, got.Merchant)
	assert.Equal(t, "2024-06-01", got.Date)
	assert.Equal(t, constants.Miscellaneous, got.Category)
	assert.Equal(t, 0.5, got.Confidence)
	assert.Empty(t, got.LineItems)
}

func TestParseEndToEnd(t *testing.T) {
	text := "FairPrice Supermarket\nMilk 1L    $3.20\nBread      $2.50\nTotal: $5.70\n15/01/2024"
	got := Parse(text, Options{Now: fixedNow()})

	assert.Equal(t, "FairPrice Supermarket", got.Merchant)
	assert.Equal(t, 5.70, got.Total)
	assert.Equal(t, 0.8, got.Confidence)
	assert.Equal(t, "2024-01-15", got.Date)
	assert.Equal(t, constants.FoodDailyNeeds, got.Category)
	require.Len(t, got.LineItems, 2)
	assert.Equal(t, LineItem{Name: "Milk 1L", Price: 3.20}, got.LineItems[0])
	assert.Equal(t, LineItem{Name: "Bread", Price: 2.50}, got.LineItems[1])
	assert.Equal(t, text, got.RawText)
}

func TestParseIsDeterministic(t *testing.T) {
	text := "STARBUCKS\nLatte  $4.50\nTotal: $4.50\n2024-01-15"
	opts := Options{Now: fixedNow(), KnownMerchants: []string{"Starbucks"}}

	first := Parse(text, opts)
	second := Parse(text, opts)
	assert.Equal(t, first, second)
}

func TestParseJSONUnwrapTransparent(t *testing.T) {
	inner := "STARBUCKS\nTotal: $4.50\n2024-01-15"
	wrapped := `{"text": "STARBUCKS\nTotal: $4.50\n2024-01-15"}`

	want := Parse(inner, Options{Now: fixedNow()})
	got := Parse(wrapped, Options{Now: fixedNow()})

	assert.Equal(t, want.Merchant, got.Merchant)
	assert.Equal(t, want.Total, got.Total)
	assert.Equal(t, want.Date, got.Date)
}

func TestParseAmbiguousDates(t *testing.T) {
	for _, input := range []string{
		"Shop\nTotal: $1.00\n13/01/2024",
		"Shop\nTotal: $1.00\n01/13/2024",
	} {
		got := Parse(input, Options{Now: fixedNow()})
		assert.Equal(t, "2024-01-13", got.Date, "input %q", input)
	}
}

func TestParseMerchantSnap(t *testing.T) {
	t.Run("typo snaps to known merchant", func(t *testing.T) {
		got := Parse("Strabucks\nTotal: $4.50", Options{
			Now:            fixedNow(),
			KnownMerchants: []string{"Starbucks"},
		})
		assert.Equal(t, "Starbucks", got.Merchant)
	})

	t.Run("marker-prefixed header still snaps", func(t *testing.T) {
		// "* Starbucks" fails the merchant filters, but the raw line is
		// still a fuzzy candidate and matches the known name exactly once
		// symbols are collapsed.
		got := Parse("* Starbucks\n#1234567890\nTotal: $4.50", Options{
			Now:            fixedNow(),
			KnownMerchants: []string{"Starbucks"},
		})
		assert.Equal(t, "Starbucks", got.Merchant)
	})

	t.Run("dissimilar known merchant is ignored", func(t *testing.T) {
		got := Parse("Greenleaf Florist\nTotal: $12.00", Options{
			Now:            fixedNow(),
			KnownMerchants: []string{"City Hardware Depot"},
		})
		assert.Equal(t, "Greenleaf Florist", got.Merchant)
	})
}

func TestParseNeverPanicsAndHoldsInvariants(t *testing.T) {
	inputs := []string{
		"",
		"   \n\n\t ",
		"{not json",
		`{"text": 42}`,
		`["a", {"content": "b"}, 7]`,
		"```json\ngarbage\n```",
		"$$$$$\n#####\n12345678901234567890",
		"Total: garbage\nAmount Due: also garbage",
		"2024-99-99\n31/31/3131\nFeb 31, 2024",
		"日本のレシート\n合計 1,234\n2024/03/07",
		"A very very very very very very very very long merchant name line that keeps going",
		"Item A 1.00\nItem B 2.00\nTotal 1.50",
	}

	for _, input := range inputs {
		got := Parse(input, Options{Now: fixedNow()})

		assert.Regexp(t, reISODate, got.Date, "input %q", input)
		_, err := time.Parse("2006-01-02", got.Date)
		assert.NoError(t, err, "input %q", input)

		assert.GreaterOrEqual(t, got.Confidence, 0.0, "input %q", input)
		assert.LessOrEqual(t, got.Confidence, 1.0, "input %q", input)
		assert.True(t, constants.IsValid(string(got.Category)), "input %q", input)
		assert.NotEmpty(t, got.Merchant, "input %q", input)
		assert.LessOrEqual(t, len([]rune(got.Merchant)), 50, "input %q", input)
		for _, item := range got.LineItems {
			assert.Less(t, item.Price, got.Total, "input %q item %q", input, item.Name)
		}
	}
}
