package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ampersand", "A&B Corp", `A\&B Corp`},
		{"percent", "Improved by 25%", `Improved by 25\%`},
		{"dollar", "$1M budget", `\$1M budget`},
		{"hash", "C# developer", `C\# developer`},
		{"underscore", "snake_case", `snake\_case`},
		{"braces", "{hello}", `\{hello\}`},
		{"tilde", "~user", `\textasciitilde{}user`},
		{"caret", "x^2", `x\textasciicircum{}2`},
		{"backslash", `a\b`, `a\textbackslash{}b`},
		{"plain text untouched", "C++ and Go", "C++ and Go"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}

func TestDisplayLinkedIn(t *testing.T) {
	assert.Equal(t, "jane-doe", displayLinkedIn("https://www.linkedin.com/in/jane-doe/"))
	assert.Equal(t, "jane-doe", displayLinkedIn("linkedin.com/in/jane-doe"))
	assert.Equal(t, "jane-doe", displayLinkedIn("jane-doe"))
}

func TestDisplayGitHub(t *testing.T) {
	assert.Equal(t, "janedoe", displayGitHub("https://github.com/janedoe"))
	assert.Equal(t, "janedoe", displayGitHub("github.com/janedoe/"))
}

func TestHyperlinkTarget(t *testing.T) {
	assert.Equal(t, "https://example.com", hyperlinkTarget("example.com"))
	assert.Equal(t, "https://example.com", hyperlinkTarget("https://example.com"))
	assert.Equal(t, "http://example.com", hyperlinkTarget("http://example.com"))
	assert.Equal(t, "", hyperlinkTarget(""))
}
