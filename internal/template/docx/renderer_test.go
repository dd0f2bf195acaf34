package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

func renderArchive(t *testing.T, doc *models.ResumeDocument, theme string) map[string]string {
	t.Helper()

	out, err := NewRenderer(theme).Render(doc)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err, "output must be a valid zip archive")

	parts := make(map[string]string)
	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		parts[f.Name] = string(data)
	}
	return parts
}

func TestRender_PackageStructure(t *testing.T) {
	parts := renderArchive(t, models.NormalizeResume(nil), "")

	require.Contains(t, parts, "[Content_Types].xml")
	require.Contains(t, parts, "_rels/.rels")
	require.Contains(t, parts, "word/document.xml")
	assert.Contains(t, parts["[Content_Types].xml"], "wordprocessingml.document.main+xml")
}

func TestRender_SectionContent(t *testing.T) {
	doc := models.NormalizeResume(map[string]interface{}{
		"personal_info": map[string]interface{}{
			"name":  "Jane Doe",
			"email": "jane@example.com",
		},
		"summary": "Ships software & hardware",
		"skills": []interface{}{
			map[string]interface{}{"category": "Languages", "items": []interface{}{"Go", "C++"}},
		},
		"experience": []interface{}{
			map[string]interface{}{
				"company":    "Acme",
				"position":   "Engineer",
				"start_date": "2020",
				"current":    true,
			},
		},
		"education": []interface{}{
			map[string]interface{}{"institution": "State University", "degree": "BSc"},
		},
		"languages": []interface{}{"English"},
	})

	document := renderArchive(t, doc, "")["word/document.xml"]

	assert.Contains(t, document, "Jane Doe")
	assert.Contains(t, document, "jane@example.com")
	// reserved XML characters must be escaped
	assert.Contains(t, document, "Ships software &amp; hardware")
	assert.Contains(t, document, "Languages: Go, C++")
	assert.Contains(t, document, "Engineer, Acme")
	assert.Contains(t, document, "2020 - Present")
	assert.Contains(t, document, "State University")
}

func TestRender_SectionOrder(t *testing.T) {
	doc := models.NormalizeResume(map[string]interface{}{
		"summary": "The summary text",
		"skills":  []interface{}{"Go"},
		"education": []interface{}{
			map[string]interface{}{"institution": "State University"},
		},
		"experience": []interface{}{
			map[string]interface{}{"company": "Acme"},
		},
	})

	document := renderArchive(t, doc, "")["word/document.xml"]

	summaryIdx := strings.Index(document, "The summary text")
	skillsIdx := strings.Index(document, ">Go<")
	expIdx := strings.Index(document, "Acme")
	eduIdx := strings.Index(document, "State University")

	require.GreaterOrEqual(t, summaryIdx, 0)
	require.GreaterOrEqual(t, skillsIdx, 0)
	require.GreaterOrEqual(t, expIdx, 0)
	require.GreaterOrEqual(t, eduIdx, 0)

	// fixed order: summary, skills, experience, education
	assert.Less(t, summaryIdx, skillsIdx)
	assert.Less(t, skillsIdx, expIdx)
	assert.Less(t, expIdx, eduIdx)
}

func TestRender_ThemeColorOnHeadings(t *testing.T) {
	doc := models.NormalizeResume(map[string]interface{}{
		"summary": "text",
	})

	document := renderArchive(t, doc, "#10B981")["word/document.xml"]
	assert.Contains(t, document, `w:val="10B981"`)

	document = renderArchive(t, doc, "not-a-color")["word/document.xml"]
	assert.Contains(t, document, `w:val="3B82F6"`)
}

func TestHeadingHex(t *testing.T) {
	assert.Equal(t, "10B981", headingHex("#10b981"))
	assert.Equal(t, "3B82F6", headingHex(""))
	assert.Equal(t, "3B82F6", headingHex("#123"))
	assert.Equal(t, "3B82F6", headingHex("zzzzzz"))
}
