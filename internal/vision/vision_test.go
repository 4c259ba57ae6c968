package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnvelope(t *testing.T) {
	t.Run("valid envelope passes", func(t *testing.T) {
		raw := []byte(`{"choices":[{"message":{"role":"assistant","content":"FairPrice\nTotal: $12.30"}}]}`)
		require.NoError(t, ValidateEnvelope(raw))
	})

	t.Run("empty choices rejected", func(t *testing.T) {
		raw := []byte(`{"choices":[]}`)
		require.Error(t, ValidateEnvelope(raw))
	})

	t.Run("missing content rejected", func(t *testing.T) {
		raw := []byte(`{"choices":[{"message":{"role":"assistant"}}]}`)
		require.Error(t, ValidateEnvelope(raw))
	})

	t.Run("non-string content rejected", func(t *testing.T) {
		raw := []byte(`{"choices":[{"message":{"content":42}}]}`)
		require.Error(t, ValidateEnvelope(raw))
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		require.Error(t, ValidateEnvelope([]byte(`{"choices":`)))
	})
}

func TestHeuristicConfidence(t *testing.T) {
	t.Run("empty text stays at base", func(t *testing.T) {
		assert.InDelta(t, 0.2, heuristicConfidence(""), 1e-6)
	})

	t.Run("receipt-like text scores high", func(t *testing.T) {
		txt := "FairPrice Xtra\n2024-01-15\nMilk 2L $6.70\nBread $3.20\nTotal: $9.90\nThank you for shopping with us, see you again soon!"
		got := heuristicConfidence(txt)
		assert.Greater(t, got, float32(0.65))
		assert.LessOrEqual(t, got, float32(1.0))
	})

	t.Run("amount alone bumps score", func(t *testing.T) {
		got := heuristicConfidence("something 12.99 something")
		assert.InDelta(t, 0.35, got, 1e-6)
	})
}
