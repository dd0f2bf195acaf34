package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

var constructors = map[string]func(string) Renderer{
	"auto_cv":              NewAutoCV,
	"anti_cv":              NewAntiCV,
	"ethan":                NewEthan,
	"yuan":                 NewYuan,
	"rendercv_classic":     NewRenderCVClassic,
	"rendercv_engineering": NewRenderCVEngineering,
	"rendercv_sb2nov":      NewRenderCVSb2nov,
	"fallback":             NewFallback,
}

func fullDoc() *models.ResumeDocument {
	return models.NormalizeResume(map[string]interface{}{
		"personal_info": map[string]interface{}{
			"name":     "Jane Doe",
			"email":    "jane@example.com",
			"phone":    "+1 (555) 010-2030",
			"location": "Berlin, Germany",
			"linkedin": "linkedin.com/in/janedoe",
			"github":   "github.com/janedoe",
		},
		"summary": "Engineer at A&B Corp with 10+ years shipping C++ and Go services.",
		"skills": []interface{}{
			map[string]interface{}{"category": "Languages", "items": []interface{}{"Go", "C++", "Python"}},
			map[string]interface{}{"category": "Infra", "items": []interface{}{"Kubernetes", "AWS"}},
		},
		"experience": []interface{}{
			map[string]interface{}{
				"company":      "A&B Corp",
				"position":     "Staff Engineer",
				"location":     "Berlin",
				"start_date":   "2020",
				"current":      true,
				"description":  "Owns the billing platform",
				"achievements": []interface{}{"Cut costs by 30%", "Led a team of 5"},
			},
		},
		"education": []interface{}{
			map[string]interface{}{
				"institution":     "State University",
				"degree":          "BSc",
				"field_of_study":  "Computer Science",
				"graduation_date": "2014",
				"gpa":             "3.9",
			},
		},
		"projects": []interface{}{
			map[string]interface{}{
				"name":         "resume-forge",
				"description":  "Self-hosted resume builder",
				"url":          "github.com/janedoe/resume-forge",
				"technologies": []interface{}{"Go", "LaTeX"},
				"highlights":   "Fast • Small",
			},
		},
		"certifications": []interface{}{
			map[string]interface{}{"name": "CKA", "issuer": "CNCF", "date": "2022"},
		},
		"languages": []interface{}{"English", "German"},
		"awards":    []interface{}{"Engineer of the Year 2023"},
	})
}

func TestAllStylesRenderFullDocument(t *testing.T) {
	doc := fullDoc()
	for id, construct := range constructors {
		t.Run(id, func(t *testing.T) {
			out, err := construct("").Render(doc)
			require.NoError(t, err)
			require.NotEmpty(t, out)
			assert.Equal(t, "%PDF", string(out[:4]))
		})
	}
}

func TestAllStylesRenderEmptyDocument(t *testing.T) {
	doc := models.NormalizeResume(nil)
	for id, construct := range constructors {
		t.Run(id, func(t *testing.T) {
			out, err := construct("").Render(doc)
			require.NoError(t, err)
			require.NotEmpty(t, out)
			assert.Equal(t, "%PDF", string(out[:4]))
		})
	}
}

func TestThemeColorChangesOutput(t *testing.T) {
	doc := fullDoc()

	base, err := NewAutoCV("").Render(doc)
	require.NoError(t, err)
	themed, err := NewAutoCV("#10B981").Render(doc)
	require.NoError(t, err)

	assert.NotEqual(t, base, themed)
}

func TestMalformedThemeColorFallsBackToDefault(t *testing.T) {
	doc := fullDoc()

	out, err := NewAutoCV("not-a-color").Render(doc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected rgb
	}{
		{"#10B981", rgb{0x10, 0xB9, 0x81}},
		{"10B981", rgb{0x10, 0xB9, 0x81}},
		{"", defaultTheme},
		{"#123", defaultTheme},
		{"zzzzzz", defaultTheme},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseHexColor(tt.input), tt.input)
	}
}
