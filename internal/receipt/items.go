package receipt

import (
	"regexp"
	"strings"
)

const (
	itemNameMinLen = 3
	itemNameMaxLen = 49
)

// A line item is a name followed by a trailing decimal price.
var reItemLine = regexp.MustCompile(`^(.{3,80}?)\s{1,}\$?\s?(\d{1,3}(?:,\d{3})*\.\d{2}|\d+\.\d{2})\s*$`)

// Label lines that carry amounts but are not purchasable items.
var reItemLabel = regexp.MustCompile(`(?i)\b(sub\s*total|subtotal|total|tax|gst|vat|change|cash|balance|amount\s+due|tender)\b`)

// extractLineItems scans the text line by line for name-then-price shapes.
// A candidate survives only when its trimmed name is 3-49 characters and its
// price is strictly below the already-extracted total; filtering against the
// total is what keeps subtotal, tax and page-total lines from being misread
// as items, so a zero total yields no items at all.
func extractLineItems(raw string, total float64) []LineItem {
	items := []LineItem{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, " \t\r")
		m := reItemLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		nameLen := len([]rune(name))
		if nameLen < itemNameMinLen || nameLen > itemNameMaxLen {
			continue
		}
		if reItemLabel.MatchString(name) {
			continue
		}
		price, err := parseAmount(m[2])
		if err != nil {
			continue
		}
		if price >= total {
			continue
		}
		items = append(items, LineItem{Name: name, Price: price})
	}
	return items
}
