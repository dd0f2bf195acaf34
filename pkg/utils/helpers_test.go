package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestID(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}

func TestGetStringOrDefault(t *testing.T) {
	assert.Equal(t, "value", GetStringOrDefault("value", "fallback"))
	assert.Equal(t, "fallback", GetStringOrDefault("", "fallback"))
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"max at ellipsis boundary", "hello", 3, "hel"},
		{"zero max returns input", "hello", 0, "hello"},
		{"negative max returns input", "hello", -1, "hello"},
		{"multibyte runes", "héllo wörld", 8, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateString(tt.input, tt.max))
		})
	}
}
