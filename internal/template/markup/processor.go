package markup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"resumeforge/pkg/models"
)

// Rendering failures of the markup backend.
var (
	ErrTemplateFileNotFound = errors.New("template_file_not_found")
	ErrCompilationTimeout   = errors.New("compilation_timeout")
	ErrCompilationFailed    = errors.New("compilation_failed")
)

// DefaultThemeColor is the primary color the skeletons ship with. Theme
// substitution is skipped when the requested color matches it.
const DefaultThemeColor = "#3B82F6"

const documentMarker = `\begin{document}`

// templateFiles maps style ids to their markup skeleton file names.
var templateFiles = map[string]string{
	"auto_cv":              "autocv.tex",
	"anti_cv":              "anticv.tex",
	"ethan":                "ethan.tex",
	"rendercv_classic":     "rendercv_classic.tex",
	"rendercv_engineering": "rendercv_engineering.tex",
	"rendercv_sb2nov":      "rendercv_sb2nov.tex",
}

// auxFiles lists per-style auxiliary resources that must be copied next
// to the source before compilation.
var auxFiles = map[string][]string{}

var (
	themeColorPattern = regexp.MustCompile(`\\definecolor\{primaryColor\}\{RGB\}\{[^}]*\}`)
	hexColorPattern   = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)
)

// Processor turns a resume document into compilable markup source: it
// loads the per-style skeleton, generates the body, and substitutes the
// theme color into the preamble.
type Processor struct {
	templateDir string
}

func NewProcessor(templateDir string) *Processor {
	return &Processor{templateDir: templateDir}
}

// HasSkeleton reports whether the style has a markup skeleton.
func HasSkeleton(templateID string) bool {
	_, ok := templateFiles[templateID]
	return ok
}

// AuxFiles returns the auxiliary resources the style's skeleton depends on.
func AuxFiles(templateID string) []string {
	return auxFiles[templateID]
}

// TemplateDir returns the directory skeletons are loaded from.
func (p *Processor) TemplateDir() string {
	return p.templateDir
}

// Source produces the full markup source for a style: skeleton preamble,
// theme substitution, generated body. Styles without a body generator go
// through the legacy direct-substitution path.
func (p *Processor) Source(doc *models.ResumeDocument, templateID, themeColor string) ([]byte, error) {
	fileName, ok := templateFiles[templateID]
	if !ok {
		return nil, fmt.Errorf("%w: style %q has no markup skeleton", ErrTemplateFileNotFound, templateID)
	}

	skeleton, err := os.ReadFile(filepath.Join(p.templateDir, fileName))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateFileNotFound, fileName, err)
	}

	generate, ok := bodyGenerators[templateID]
	if !ok {
		return legacySubstitute(string(skeleton), doc, themeColor), nil
	}

	idx := strings.Index(string(skeleton), documentMarker)
	if idx < 0 {
		return nil, fmt.Errorf("%w: skeleton %s has no document marker", ErrTemplateFileNotFound, fileName)
	}
	preamble := substituteTheme(string(skeleton)[:idx], themeColor)

	var out strings.Builder
	out.WriteString(preamble)
	out.WriteString(documentMarker + "\n\n")
	out.WriteString(generate(doc))
	out.WriteString("\n\\end{document}\n")
	return []byte(out.String()), nil
}

// substituteTheme rewrites the primaryColor definition in the preamble.
// It is a no-op for the built-in default or a malformed hex string, so
// untouched skeletons compile byte-identically.
func substituteTheme(preamble, themeColor string) string {
	themeColor = strings.TrimSpace(themeColor)
	if themeColor == "" || strings.EqualFold(themeColor, DefaultThemeColor) {
		return preamble
	}
	if !hexColorPattern.MatchString(themeColor) {
		return preamble
	}
	hex := strings.TrimPrefix(themeColor, "#")
	var r, g, b int
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	replacement := fmt.Sprintf(`\definecolor{primaryColor}{RGB}{%d, %d, %d}`, r, g, b)
	return themeColorPattern.ReplaceAllString(preamble, replacement)
}

// Legacy direct-substitution path for skeletons without a body generator:
// the personal placeholders baked into the skeleton text are rewritten in
// place, with no structural regeneration. Brittle but document-accurate;
// only styles not yet migrated to a generator use it.

var legacyPlaceholders = []struct {
	pattern *regexp.Regexp
	value   func(pi models.PersonalInfo) string
}{
	{regexp.MustCompile(`Your Name Here`), func(pi models.PersonalInfo) string { return pi.Name }},
	{regexp.MustCompile(`your\.email@example\.com`), func(pi models.PersonalInfo) string { return pi.Email }},
	{regexp.MustCompile(`\+1 \(000\) 000-0000`), func(pi models.PersonalInfo) string { return pi.Phone }},
	{regexp.MustCompile(`linkedin\.com/in/username`), func(pi models.PersonalInfo) string { return displayLinkedIn(pi.LinkedIn) }},
	{regexp.MustCompile(`github\.com/username`), func(pi models.PersonalInfo) string { return displayGitHub(pi.GitHub) }},
}

func legacySubstitute(skeleton string, doc *models.ResumeDocument, themeColor string) []byte {
	out := skeleton
	pi := doc.PersonalInfo
	if pi.Name == "" {
		pi.Name = doc.DisplayName()
	}
	for _, ph := range legacyPlaceholders {
		if v := ph.value(pi); v != "" {
			out = ph.pattern.ReplaceAllString(out, Escape(v))
		}
	}
	return []byte(substituteTheme(out, themeColor))
}
