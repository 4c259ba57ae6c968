package receipt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLineItems(t *testing.T) {
	t.Run("keeps name and price shapes below the total", func(t *testing.T) {
		text := "Milk 1L    $3.20\nBread      $2.50\nTotal: $5.70"
		items := extractLineItems(text, 5.70)
		require.Len(t, items, 2)
		assert.Equal(t, LineItem{Name: "Milk 1L", Price: 3.20}, items[0])
		assert.Equal(t, LineItem{Name: "Bread", Price: 2.50}, items[1])
	})

	t.Run("drops items at or above the total", func(t *testing.T) {
		items := extractLineItems("Caviar   99.99\nCrackers 2.00", 10.00)
		require.Len(t, items, 1)
		assert.Equal(t, "Crackers", items[0].Name)
	})

	t.Run("zero total yields no items", func(t *testing.T) {
		assert.Empty(t, extractLineItems("Milk  3.20\nBread 2.50", 0))
	})

	t.Run("label lines are not items", func(t *testing.T) {
		text := "Subtotal  4.00\nGST       0.28\nCash      10.00\nChange    5.72"
		assert.Empty(t, extractLineItems(text, 100.00))
	})

	t.Run("name length bounds", func(t *testing.T) {
		long := strings.Repeat("x", 60)
		text := "ab  1.00\n" + long + "  1.00\nFine Name  1.00"
		items := extractLineItems(text, 2.00)
		require.Len(t, items, 1)
		assert.Equal(t, "Fine Name", items[0].Name)
	})

	t.Run("prices without decimals are ignored", func(t *testing.T) {
		assert.Empty(t, extractLineItems("Thing  12\nOther  5", 100))
	})
}
