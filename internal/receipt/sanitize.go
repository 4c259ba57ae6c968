package receipt

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	reFence        = regexp.MustCompile("```[a-zA-Z]*")
	reLeadFragment = regexp.MustCompile(`^\s*\{[^{}]*"text"\s*:\s*"`)
	reTailFragment = regexp.MustCompile(`"\s*\}\s*$`)
)

// Unwrap strips JSON envelopes and markdown fences that an upstream
// vision-language service sometimes leaves around the receipt body.
// Best-effort only: any parse failure is swallowed and the input is
// passed through unchanged.
func Unwrap(raw string) string {
	trimmed := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}"):
		if inner, ok := unwrapObject(trimmed); ok {
			raw = inner
		}
	case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
		if inner, ok := unwrapArray(trimmed); ok {
			raw = inner
		}
	}

	raw = reFence.ReplaceAllString(raw, "")
	raw = reLeadFragment.ReplaceAllString(raw, "")
	raw = reTailFragment.ReplaceAllString(raw, "")
	return strings.TrimSpace(raw)
}

// unwrapObject prefers a text, then content, then message field.
func unwrapObject(s string) (string, bool) {
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return "", false
	}
	for _, key := range []string{"text", "content", "message"} {
		if v, ok := m[key].(string); ok {
			return v, true
		}
	}
	return "", false
}

// unwrapArray joins per-element text/content fields with newlines,
// stringifying elements that carry neither.
func unwrapArray(s string) (string, bool) {
	var arr []any
	if err := json.Unmarshal([]byte(s), &arr); err != nil {
		return "", false
	}
	parts := make([]string, 0, len(arr))
	for _, el := range arr {
		switch v := el.(type) {
		case string:
			parts = append(parts, v)
		case map[string]any:
			if t, ok := v["text"].(string); ok {
				parts = append(parts, t)
			} else if c, ok := v["content"].(string); ok {
				parts = append(parts, c)
			} else {
				b, err := json.Marshal(v)
				if err != nil {
					return "", false
				}
				parts = append(parts, string(b))
			}
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return "", false
			}
			parts = append(parts, string(b))
		}
	}
	return strings.Join(parts, "\n"), true
}
