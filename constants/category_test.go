package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"FairPrice Supermarket receipt", FoodDailyNeeds},
		{"SP UTILITIES electricity bill", HousingUtilities},
		{"Shell Gas Station pump 4", TransportTravel},
		{"Guardian Pharmacy panadol", HealthPersonalCare},
		{"Golden Village Cinema tickets", FunLifestyle},
		{"completely unrecognizable", Miscellaneous},
		{"", Miscellaneous},
		// Keyword order is load-bearing: earlier categories shadow later ones.
		{"supermarket near the gym", FoodDailyNeeds},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.input), "input %q", tt.input)
	}
}

func TestIsValid(t *testing.T) {
	for _, cat := range AllCategories() {
		assert.True(t, IsValid(string(cat)))
	}
	assert.False(t, IsValid("Groceries"))
	assert.False(t, IsValid(""))
}

func TestCanonicalize(t *testing.T) {
	got, ok := Canonicalize("food & daily needs")
	assert.True(t, ok)
	assert.Equal(t, FoodDailyNeeds, got)

	got, ok = Canonicalize("something else")
	assert.False(t, ok)
	assert.Equal(t, Miscellaneous, got)

	_, ok = Canonicalize("   ")
	assert.False(t, ok)
}
