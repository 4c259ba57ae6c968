package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeForMatch(t *testing.T) {
	assert.Equal(t, "mcdonald s 42", normalizeForMatch("McDonald's #42"))
	assert.Equal(t, "fairprice xtra", normalizeForMatch("  FairPrice---Xtra  "))
	assert.Equal(t, "", normalizeForMatch("!!! ---"))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("Starbucks", "STARBUCKS"))
	assert.Equal(t, 0.0, similarity("", "Starbucks"))
	assert.Equal(t, 0.0, similarity("###", "Starbucks"))

	// One-letter typo with a shared prefix scores well above the override bar.
	assert.Greater(t, similarity("Strabucks", "Starbucks"), snapThresholdOverride)

	// Unrelated names stay far below the fill bar.
	assert.Less(t, similarity("Greenleaf Florist", "City Hardware Depot"), snapThresholdFill)
}

func TestSnapToKnownMerchantThresholds(t *testing.T) {
	// 20 characters, 5 substitutions, no common prefix: similarity 0.75,
	// inside the (0.70, 0.78] window where only the fill bar accepts.
	const midCandidate = "baaaaaaaaaaaaaaabbbb"
	const midKnown = "aaaaaaaaaaaaaaaaaaaa"

	t.Run("window score fills in when OCR found nothing", func(t *testing.T) {
		name, ok := snapToKnownMerchant(UnknownMerchant, midCandidate, []string{midKnown})
		assert.True(t, ok)
		assert.Equal(t, midKnown, name)
	})

	t.Run("window score does not override a real guess", func(t *testing.T) {
		_, ok := snapToKnownMerchant(midCandidate, midCandidate, []string{midKnown})
		assert.False(t, ok)
	})

	t.Run("below the fill bar stays unknown", func(t *testing.T) {
		_, ok := snapToKnownMerchant(UnknownMerchant, "zzzz qqqq", []string{midKnown})
		assert.False(t, ok)
	})

	t.Run("no known merchants", func(t *testing.T) {
		_, ok := snapToKnownMerchant("Starbucks", "Starbucks", nil)
		assert.False(t, ok)
	})
}
