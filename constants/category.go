package constants

import (
	"strings"
)

type Category string

const (
	HousingUtilities   Category = "Housing & Utilities"
	FoodDailyNeeds     Category = "Food & Daily Needs"
	TransportTravel    Category = "Transport & Travel"
	HealthPersonalCare Category = "Health & Personal Care"
	FunLifestyle       Category = "Fun & Lifestyle"
	Miscellaneous      Category = "Miscellaneous"
)

// allCategories is ordered: Classify walks it top to bottom and the first
// keyword hit wins, so earlier entries shadow later ones.
var allCategories = []Category{
	HousingUtilities,
	FoodDailyNeeds,
	TransportTravel,
	HealthPersonalCare,
	FunLifestyle,
	Miscellaneous,
}

// categoryKeywords maps each category to trigger substrings searched
// case-insensitively in receipt text. Hand-tuned; treat as a tuning surface.
var categoryKeywords = map[Category][]string{
	HousingUtilities: {
		"rent", "electricity", "electric bill", "water bill", "utility",
		"utilities", "internet", "broadband", "telecom", "power supply",
	},
	FoodDailyNeeds: {
		"grocery", "supermarket", "restaurant", "cafe", "coffee", "bakery",
		"food", "market", "minimart", "convenience", "deli",
	},
	TransportTravel: {
		"gas station", "petrol", "fuel", "uber", "grab", "taxi", "parking",
		"mrt", "bus", "train", "airline", "hotel", "gas",
	},
	HealthPersonalCare: {
		"pharmacy", "clinic", "hospital", "dental", "salon", "spa",
		"drugstore", "optical", "wellness",
	},
	FunLifestyle: {
		"cinema", "movie", "game", "toy", "bookstore", "gym", "bar", "pub",
		"netflix", "spotify", "concert",
	},
}

func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// IsValid reports whether s is one of the closed category set.
func IsValid(s string) bool {
	for _, cat := range allCategories {
		if s == string(cat) {
			return true
		}
	}
	return false
}

// Classify picks a spending category from raw receipt text by keyword search.
// First category with any hit wins; no hits falls through to Miscellaneous.
func Classify(text string) Category {
	lower := strings.ToLower(text)
	for _, cat := range allCategories {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return Miscellaneous
}

// Canonicalize maps free-text labels onto the closed category set.
func Canonicalize(input string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return Miscellaneous, false
	}
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}
	return Miscellaneous, false
}
