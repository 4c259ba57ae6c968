package receipt

import (
	"regexp"
	"strings"

	"github.com/agext/levenshtein"
)

// Snap thresholds. Overriding a real OCR read needs a closer match than
// filling in a blank, so the bar is asymmetric.
const (
	snapThresholdOverride = 0.78 // OCR produced a merchant guess
	snapThresholdFill     = 0.70 // OCR produced nothing
)

var reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeForMatch lowercases and collapses every symbol run to a single
// space so "McDonald's #42" and "mcdonalds 42" compare equal-ish.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = reNonAlnum.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// similarity is a normalized Levenshtein score in [0,1]: edit distance over
// the longer normalized string, inverted, with a small common-prefix bonus.
// Storefront OCR errors cluster at the tail of a name, so a shared prefix is
// strong evidence and close typos still clear the override bar.
func similarity(a, b string) float64 {
	na, nb := normalizeForMatch(a), normalizeForMatch(b)
	if na == "" || nb == "" {
		return 0
	}
	return levenshtein.Match(na, nb, nil)
}

// snapToKnownMerchant fuzzy-matches the OCR merchant guess (plus the first
// three raw lines as alternates) against the household's confirmed merchant
// names and returns the best-scoring known name when it clears the threshold.
func snapToKnownMerchant(guess, cleaned string, known []string) (string, bool) {
	candidates := make([]string, 0, 4)
	if guess != "" && guess != UnknownMerchant {
		candidates = append(candidates, guess)
	}
	lines := nonEmptyLines(cleaned)
	if len(lines) > 3 {
		lines = lines[:3]
	}
	candidates = append(candidates, lines...)
	if len(candidates) == 0 {
		return "", false
	}

	var bestScore float64
	var bestName string
	for _, cand := range candidates {
		for _, name := range known {
			if s := similarity(cand, name); s > bestScore {
				bestScore, bestName = s, name
			}
		}
	}

	threshold := snapThresholdFill
	if guess != "" && guess != UnknownMerchant {
		threshold = snapThresholdOverride
	}
	if bestScore > threshold {
		return bestName, true
	}
	return "", false
}
