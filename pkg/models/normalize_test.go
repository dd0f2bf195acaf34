package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeResume_EmptyPayload(t *testing.T) {
	doc := NormalizeResume(nil)
	require.NotNil(t, doc)

	assert.Equal(t, PlaceholderName, doc.DisplayName())
	assert.True(t, doc.Skills.IsEmpty())
	assert.Empty(t, doc.Experience)
	assert.Empty(t, doc.Education)
}

func TestNormalizeResume_ObjectiveSynonym(t *testing.T) {
	doc := NormalizeResume(map[string]interface{}{
		"objective": "Build reliable systems",
	})
	assert.Equal(t, "Build reliable systems", doc.Summary)

	// summary wins over objective when both are present
	doc = NormalizeResume(map[string]interface{}{
		"summary":   "Primary",
		"objective": "Secondary",
	})
	assert.Equal(t, "Primary", doc.Summary)
}

func TestNormalizeResume_EducationSynonyms(t *testing.T) {
	doc := NormalizeResume(map[string]interface{}{
		"education": []interface{}{
			map[string]interface{}{
				"institution": "State University",
				"degree":      "BSc",
				"field":       "Computer Science",
				"gpa":         "3.8",
			},
		},
	})
	require.Len(t, doc.Education, 1)

	edu := doc.Education[0]
	assert.Equal(t, "Computer Science", edu.Field)
	assert.Equal(t, "3.8", edu.Grade)
	assert.Equal(t, "BSc in Computer Science", edu.DegreeLine())
}

func TestNormalizeResume_GraduationDateWinsOverRange(t *testing.T) {
	doc := NormalizeResume(map[string]interface{}{
		"education": []interface{}{
			map[string]interface{}{
				"institution":     "State University",
				"start_date":      "2015",
				"end_date":        "2019",
				"graduation_date": "May 2019",
			},
		},
	})
	require.Len(t, doc.Education, 1)
	assert.Equal(t, "May 2019", doc.Education[0].Period())
}

func TestNormalizeResume_DescriptionStringBecomesList(t *testing.T) {
	doc := NormalizeResume(map[string]interface{}{
		"experience": []interface{}{
			map[string]interface{}{
				"company":     "Acme",
				"position":    "Engineer",
				"description": "Built the data pipeline",
			},
		},
	})
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, []string{"Built the data pipeline"}, doc.Experience[0].Description)
}

func TestNormalizeResume_DescriptionList(t *testing.T) {
	doc := NormalizeResume(map[string]interface{}{
		"experience": []interface{}{
			map[string]interface{}{
				"description": []interface{}{"First", "Second", 42, ""},
			},
		},
	})
	require.Len(t, doc.Experience, 1)
	// non-string and empty entries are skipped
	assert.Equal(t, []string{"First", "Second"}, doc.Experience[0].Description)
}

func TestNormalizeResume_CurrentPosition(t *testing.T) {
	doc := NormalizeResume(map[string]interface{}{
		"experience": []interface{}{
			map[string]interface{}{
				"start_date": "Jan 2022",
				"end_date":   "Dec 2023",
				"current":    true,
			},
		},
	})
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Jan 2022 - Present", doc.Experience[0].Period())
}

func TestNormalizeResume_FlatSkills(t *testing.T) {
	doc := NormalizeResume(map[string]interface{}{
		"skills": []interface{}{"Go", "Python", "SQL"},
	})
	assert.False(t, doc.Skills.Grouped())
	assert.Equal(t, []string{"Go", "Python", "SQL"}, doc.Skills.All())
}

func TestNormalizeResume_GroupedSkills(t *testing.T) {
	doc := NormalizeResume(map[string]interface{}{
		"skills": []interface{}{
			map[string]interface{}{
				"category": "Languages",
				"items":    []interface{}{"Go", "Python"},
			},
			map[string]interface{}{
				"category": "Cloud",
				"items":    []interface{}{"AWS"},
			},
		},
	})
	require.True(t, doc.Skills.Grouped())
	require.Len(t, doc.Skills.Groups, 2)
	assert.Equal(t, "Languages", doc.Skills.Groups[0].Category)
	assert.Equal(t, []string{"Go", "Python", "AWS"}, doc.Skills.All())
}

func TestNormalizeResume_MalformedSkillEntriesSkipped(t *testing.T) {
	doc := NormalizeResume(map[string]interface{}{
		"skills": []interface{}{
			map[string]interface{}{"category": "Languages", "items": []interface{}{"Go"}},
			"stray string in a grouped list",
			map[string]interface{}{},
		},
	})
	require.True(t, doc.Skills.Grouped())
	assert.Len(t, doc.Skills.Groups, 1)
}

func TestNormalizeResume_HighlightsBulletString(t *testing.T) {
	doc := NormalizeResume(map[string]interface{}{
		"projects": []interface{}{
			map[string]interface{}{
				"name":       "Pipeline",
				"highlights": "Fast • Reliable • Cheap",
			},
		},
	})
	require.Len(t, doc.Projects, 1)
	assert.Equal(t, []string{"Fast", "Reliable", "Cheap"}, doc.Projects[0].Highlights)
}

func TestNormalizeResume_NonMapListEntriesSkipped(t *testing.T) {
	doc := NormalizeResume(map[string]interface{}{
		"experience": []interface{}{
			"not an object",
			map[string]interface{}{"company": "Acme"},
		},
	})
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Acme", doc.Experience[0].Company)
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		current  bool
		expected string
	}{
		{"both empty", "", "", false, ""},
		{"only start", "Jan 2020", "", false, "Jan 2020"},
		{"only end", "", "Dec 2021", false, "Dec 2021"},
		{"full range", "Jan 2020", "Dec 2021", false, "Jan 2020 - Dec 2021"},
		{"current overrides end", "Jan 2020", "Dec 2021", true, "Jan 2020 - Present"},
		{"current with no start", "", "", true, "Present"},
		{"whitespace collapses", "  ", "  ", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDateRange(tt.start, tt.end, tt.current))
		})
	}
}

func TestSampleResumeNormalizes(t *testing.T) {
	doc := SampleResume()
	require.NotNil(t, doc)

	assert.NotEqual(t, PlaceholderName, doc.DisplayName())
	assert.True(t, doc.Skills.Grouped())
	assert.NotEmpty(t, doc.Experience)
	assert.NotEmpty(t, doc.Education)
}
