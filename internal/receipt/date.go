package receipt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

var (
	// YYYY-MM-DD or YYYY/MM/DD. Deliberately unanchored: dates often sit
	// flush against leftover escape sequences from upstream JSON wrappers.
	reDateISO = regexp.MustCompile(`(\d{4})[-/](\d{1,2})[-/](\d{1,2})`)
	// DD-MM-YYYY vs MM/DD/YYYY; disambiguated by value.
	reDateNumeric = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{4})`)
	// "Jan 15, 2024" style.
	reDateMonthName = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// extractDate scans for a transaction date, trying ISO-like, ambiguous
// numeric, then month-name patterns. Every candidate is range-checked and
// calendar-validated before acceptance; if nothing holds up, today's date
// (per now) is returned. Result always matches YYYY-MM-DD.
func extractDate(raw string, now time.Time) string {
	for _, m := range reDateISO.FindAllStringSubmatch(raw, -1) {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		if s, ok := buildDate(y, mo, d); ok {
			return s
		}
	}

	for _, m := range reDateNumeric.FindAllStringSubmatch(raw, -1) {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		// A first component above 12 cannot be a month, so read it as the
		// day; otherwise assume month-day order.
		var mo, d int
		if a > 12 {
			d, mo = a, b
		} else {
			mo, d = a, b
		}
		if s, ok := buildDate(y, mo, d); ok {
			return s
		}
	}

	for _, m := range reDateMonthName.FindAllStringSubmatch(raw, -1) {
		mo, ok := monthsByPrefix[strings.ToLower(m[1])]
		if !ok {
			continue
		}
		d, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		if s, ok := buildDate(y, int(mo), d); ok {
			return s
		}
	}

	return now.Format(isoDate)
}

// buildDate range-checks the components and rejects dates the calendar
// normalizes away (Feb 31 and friends).
func buildDate(year, month, day int) (string, bool) {
	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	candidate := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	t, err := time.Parse(isoDate, candidate)
	if err != nil || t.Format(isoDate) != candidate {
		return "", false
	}
	return candidate, true
}
