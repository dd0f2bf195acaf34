package markup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

const testSkeleton = `\documentclass{article}
\definecolor{primaryColor}{RGB}{59, 130, 246}
\begin{document}
legacy body
\end{document}
`

func writeSkeleton(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(testSkeleton), 0644))
}

func sampleDoc() *models.ResumeDocument {
	return models.NormalizeResume(map[string]interface{}{
		"personal_info": map[string]interface{}{
			"name":  "Jane Doe",
			"email": "jane@example.com",
		},
		"summary": "Engineer at A&B Corp",
		"skills":  []interface{}{"Go", "C++"},
		"experience": []interface{}{
			map[string]interface{}{
				"company":    "A&B Corp",
				"position":   "Engineer",
				"start_date": "2020",
				"current":    true,
			},
		},
	})
}

func TestProcessorSource_GeneratedBody(t *testing.T) {
	dir := t.TempDir()
	writeSkeleton(t, dir, "autocv.tex")

	p := NewProcessor(dir)
	source, err := p.Source(sampleDoc(), "auto_cv", "")
	require.NoError(t, err)

	text := string(source)
	assert.Contains(t, text, `\documentclass{article}`)
	assert.Contains(t, text, `\begin{document}`)
	assert.Contains(t, text, `\end{document}`)
	assert.Contains(t, text, "JANE DOE")
	assert.Contains(t, text, `A\&B Corp`)
	// the skeleton's own body is discarded when a generator exists
	assert.NotContains(t, text, "legacy body")
}

func TestProcessorSource_MissingSkeleton(t *testing.T) {
	p := NewProcessor(t.TempDir())

	_, err := p.Source(sampleDoc(), "auto_cv", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateFileNotFound)
}

func TestProcessorSource_UnknownStyle(t *testing.T) {
	p := NewProcessor(t.TempDir())

	_, err := p.Source(sampleDoc(), "no_such_style", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateFileNotFound)
}

func TestSubstituteTheme(t *testing.T) {
	preamble := `\definecolor{primaryColor}{RGB}{59, 130, 246}`

	t.Run("custom color rewrites the definition", func(t *testing.T) {
		out := substituteTheme(preamble, "#10B981")
		assert.Equal(t, `\definecolor{primaryColor}{RGB}{16, 185, 129}`, out)
	})

	t.Run("default color is a no-op", func(t *testing.T) {
		assert.Equal(t, preamble, substituteTheme(preamble, DefaultThemeColor))
	})

	t.Run("empty color is a no-op", func(t *testing.T) {
		assert.Equal(t, preamble, substituteTheme(preamble, ""))
	})

	t.Run("malformed hex is a no-op", func(t *testing.T) {
		assert.Equal(t, preamble, substituteTheme(preamble, "blue"))
		assert.Equal(t, preamble, substituteTheme(preamble, "#12345"))
		assert.Equal(t, preamble, substituteTheme(preamble, "#GGGGGG"))
	})

	t.Run("bare hex without hash accepted", func(t *testing.T) {
		out := substituteTheme(preamble, "10B981")
		assert.Contains(t, out, "{16, 185, 129}")
	})
}

func TestThemeSubstitutionChangesSource(t *testing.T) {
	dir := t.TempDir()
	writeSkeleton(t, dir, "autocv.tex")
	p := NewProcessor(dir)

	defaultSource, err := p.Source(sampleDoc(), "auto_cv", "")
	require.NoError(t, err)
	themedSource, err := p.Source(sampleDoc(), "auto_cv", "#10B981")
	require.NoError(t, err)

	assert.NotEqual(t, string(defaultSource), string(themedSource))
	assert.Contains(t, string(themedSource), "{16, 185, 129}")
}

func TestLegacySubstitute(t *testing.T) {
	skeleton := `\documentclass{article}
\begin{document}
Your Name Here \\ your.email@example.com \\ +1 (000) 000-0000
\end{document}`

	doc := models.NormalizeResume(map[string]interface{}{
		"personal_info": map[string]interface{}{
			"name":  "Jane & Joe",
			"email": "jane@corp.io",
			"phone": "+44 1234",
		},
	})

	out := string(legacySubstitute(skeleton, doc, ""))
	assert.Contains(t, out, `Jane \& Joe`)
	assert.Contains(t, out, "jane@corp.io")
	assert.Contains(t, out, "+44 1234")
	assert.NotContains(t, out, "Your Name Here")
}

func TestLegacySubstitute_MissingFieldsKeepPlaceholders(t *testing.T) {
	skeleton := "Your Name Here / your.email@example.com"

	doc := models.NormalizeResume(map[string]interface{}{
		"personal_info": map[string]interface{}{"name": "Jane"},
	})

	out := string(legacySubstitute(skeleton, doc, ""))
	assert.Contains(t, out, "Jane")
	// no email provided, the placeholder stays
	assert.Contains(t, out, "your.email@example.com")
}

func TestHasSkeleton(t *testing.T) {
	for _, id := range []string{"auto_cv", "anti_cv", "ethan", "rendercv_classic", "rendercv_engineering", "rendercv_sb2nov"} {
		assert.True(t, HasSkeleton(id), id)
	}
	assert.False(t, HasSkeleton("yuan"))
	assert.False(t, HasSkeleton("nonexistent"))
}

func TestGenerateBodies_AllStyles(t *testing.T) {
	doc := sampleDoc()
	for id, generate := range bodyGenerators {
		t.Run(id, func(t *testing.T) {
			body := generate(doc)
			assert.NotEmpty(t, body)
			assert.Contains(t, body, `A\&B Corp`)
			assert.False(t, strings.Contains(body, `\end{document}`), "generators must not close the document")
		})
	}
}

func TestGenerateClassicBody_EducationBeforeExperience(t *testing.T) {
	doc := models.NormalizeResume(map[string]interface{}{
		"education": []interface{}{
			map[string]interface{}{"institution": "State University"},
		},
		"experience": []interface{}{
			map[string]interface{}{"company": "Acme"},
		},
	})

	body := generateClassicBody(doc)
	eduIdx := strings.Index(body, "State University")
	expIdx := strings.Index(body, "Acme")
	require.GreaterOrEqual(t, eduIdx, 0)
	require.GreaterOrEqual(t, expIdx, 0)
	assert.Less(t, eduIdx, expIdx)
}
