package receipt

import (
	"regexp"
	"strconv"
	"strings"
)

// Confidence levels for the total field.
const (
	confidenceLabeled = 0.8 // a labeled total line matched
	confidenceGuessed = 0.5 // largest-number fallback (or nothing at all)
)

// Ordered total strategies; the first match wins.
var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:grand\s+)?total\b[^0-9$]*\$?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?|\d+(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)\b(?:amount|balance)\s+due\b[^0-9$]*\$?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?|\d+(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?m)\$\s*(\d{1,3}(?:,\d{3})*\.\d{2}|\d+\.\d{2})\s*$`),
}

var reDollarAmount = regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?|\d+(?:\.\d{1,2})?)`)

// extractTotal returns the best-guess transaction total and a confidence
// score. Labeled patterns score 0.8; falling back to the largest
// dollar-formatted number in the text scores 0.5. No numbers at all leaves
// a zero total at the low-confidence default.
func extractTotal(raw string) (float64, float64) {
	for _, re := range totalPatterns {
		if m := re.FindStringSubmatch(raw); m != nil {
			if v, err := parseAmount(m[1]); err == nil {
				return v, confidenceLabeled
			}
		}
	}

	var best float64
	found := false
	for _, m := range reDollarAmount.FindAllStringSubmatch(raw, -1) {
		v, err := parseAmount(m[1])
		if err != nil {
			continue
		}
		if !found || v > best {
			best, found = v, true
		}
	}
	if found {
		return best, confidenceGuessed
	}
	return 0, confidenceGuessed
}

func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(s, 64)
}
