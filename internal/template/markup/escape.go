package markup

import "strings"

// latexEscaper maps every LaTeX-reserved character to its escape
// sequence. It is applied to every leaf string value interpolated into a
// skeleton; structural tokens the generators emit are never escaped.
// Backslash maps to \textbackslash{} so user text round-trips visually
// through compilation.
var latexEscaper = strings.NewReplacer(
	"\\", `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// Escape returns s with all LaTeX-reserved characters escaped.
func Escape(s string) string {
	return latexEscaper.Replace(s)
}

// displayLinkedIn normalizes a LinkedIn URL to its bare profile handle
// for display. The full URL stays the hyperlink target.
func displayLinkedIn(url string) string {
	url = stripProtocol(url)
	url = strings.TrimPrefix(url, "linkedin.com/in/")
	return strings.TrimSuffix(url, "/")
}

// displayGitHub normalizes a GitHub URL to its bare username for display.
func displayGitHub(url string) string {
	url = stripProtocol(url)
	url = strings.TrimPrefix(url, "github.com/")
	return strings.TrimSuffix(url, "/")
}

// displayURL strips protocol and www. for generic link display.
func displayURL(url string) string {
	return strings.TrimSuffix(stripProtocol(url), "/")
}

func stripProtocol(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	return strings.TrimPrefix(url, "www.")
}

// hyperlinkTarget returns a URL usable as an \href target, adding the
// protocol when the caller stored a bare domain.
func hyperlinkTarget(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "https://" + url
	}
	return url
}
