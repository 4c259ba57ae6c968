package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text passes through",
			input: "STARBUCKS\nTotal: $4.50",
			want:  "STARBUCKS\nTotal: $4.50",
		},
		{
			name:  "object with text field",
			input: `{"text": "hello\nworld"}`,
			want:  "hello\nworld",
		},
		{
			name:  "object prefers text over content",
			input: `{"content": "nope", "text": "yes"}`,
			want:  "yes",
		},
		{
			name:  "object falls back to content then message",
			input: `{"message": "msg only"}`,
			want:  "msg only",
		},
		{
			name:  "array joins text fragments with newlines",
			input: `[{"text": "line one"}, {"content": "line two"}]`,
			want:  "line one\nline two",
		},
		{
			name:  "array stringifies odd elements",
			input: `["plain", 42]`,
			want:  "plain\n42",
		},
		{
			name:  "broken JSON is used verbatim",
			input: "{broken json",
			want:  "{broken json",
		},
		{
			name:  "object without known fields keeps body, sheds trailing artifact",
			input: `{"foo": "bar"}`,
			want:  `{"foo": "bar`,
		},
		{
			name:  "markdown fences are stripped",
			input: "```json\nRECEIPT BODY\n```",
			want:  "RECEIPT BODY",
		},
		{
			name:  "leading wrapper fragment is stripped",
			input: `{"text": "RECEIPT BODY`,
			want:  "RECEIPT BODY",
		},
		{
			name:  "trailing wrapper fragment is stripped",
			input: "RECEIPT BODY\"}",
			want:  "RECEIPT BODY",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unwrap(tt.input))
		})
	}
}
