package receipt

import (
	"regexp"
	"strings"
	"unicode"
)

// Exclusion patterns for lines that cannot plausibly be a store name.
var merchantExcludePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z0-9]{10,}$`),                 // long all-caps code (barcode, tx ref)
	regexp.MustCompile(`(?i)https?://|www\.`),             // URL
	regexp.MustCompile(`^\d{1,4}[/.-]\d{1,2}[/.-]\d{1,4}`), // date at line start
	regexp.MustCompile(`^[#*]`),                           // markdown-ish markers
	regexp.MustCompile(`^[A-Za-z]{1,4}[ -]?\d{2,}\s*$`),   // short alpha code + number ("ABC 123")
	regexp.MustCompile(`^\$?\d+[.,]\d{2}\b`),              // starts with a price
	regexp.MustCompile(`^[{}\[\]"]|"\s*:`),                // raw JSON fragment
}

// rePhraseSep splits a header line into phrases on runs of two or more
// separator characters.
var rePhraseSep = regexp.MustCompile(`[\n,，。\-\s]{2,}`)

var rePureNumeric = regexp.MustCompile(`^[\d\s.,\-:#]+$`)

// extractMerchant walks the cleaned text from the top and returns the first
// phrase of the first line that survives the exclusion filters, capped to
// merchantMaxLen. Falls back to the first raw line's first phrase, then to
// UnknownMerchant.
func extractMerchant(cleaned string) string {
	lines := nonEmptyLines(cleaned)
	for _, line := range lines {
		if !plausibleMerchantLine(line) {
			continue
		}
		if m := firstPhrase(line); m != "" {
			return truncateRunes(m, merchantMaxLen)
		}
	}
	if len(lines) > 0 {
		if m := firstPhrase(lines[0]); m != "" {
			return truncateRunes(m, merchantMaxLen)
		}
	}
	return UnknownMerchant
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func plausibleMerchantLine(line string) bool {
	if len([]rune(line)) < 3 {
		return false
	}
	if rePureNumeric.MatchString(line) {
		return false
	}
	for _, re := range merchantExcludePatterns {
		if re.MatchString(line) {
			return false
		}
	}
	// Reject lines that are mostly symbols (OCR box-drawing noise and the
	// like). Letters, digits and CJK all count as substance.
	var substance, total int
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) || isCJK(r) {
			substance++
		}
	}
	return total > 0 && substance*2 >= total
}

func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r)
}

func firstPhrase(line string) string {
	parts := rePhraseSep.Split(line, -1)
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			return t
		}
	}
	return ""
}
