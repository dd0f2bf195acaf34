package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

func strongResume() *models.ResumeDocument {
	return models.NormalizeResume(map[string]interface{}{
		"personal_info": map[string]interface{}{
			"name":     "Jane Doe",
			"email":    "jane@example.com",
			"phone":    "+1 555 010 2030",
			"linkedin": "linkedin.com/in/janedoe",
		},
		"summary": "Engineer with leadership and communication skills, strong project management and teamwork",
		"skills":  []interface{}{"Python", "Java", "SQL", "AWS", "Docker", "Kubernetes"},
		"experience": []interface{}{
			map[string]interface{}{
				"company":    "Acme",
				"position":   "Staff Engineer",
				"start_date": "2020",
				"current":    true,
				"achievements": []interface{}{
					"Increased throughput by 40%",
					"Reduced costs by $200,000",
					"Led and managed a team that developed and implemented new APIs",
					"Improved and optimized CI/CD pipelines, launched microservices",
				},
			},
		},
		"education": []interface{}{
			map[string]interface{}{"institution": "State University", "degree": "BSc"},
		},
	})
}

func TestScore_StrongResume(t *testing.T) {
	result := NewScorer(strongResume()).Score()

	// every check should pass: 40 sections + 20 formatting + 20 keywords
	// + 10 achievements + 10 contact
	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Improvements)
	assert.NotEmpty(t, result.Feedback)
}

func TestScore_EmptyResume(t *testing.T) {
	result := NewScorer(models.NormalizeResume(nil)).Score()

	assert.Equal(t, 0, result.Score)
	assert.NotEmpty(t, result.Improvements)
	assert.Contains(t, result.Improvements, "Add Experience section")
}

func TestScore_MissingKeywordsCapped(t *testing.T) {
	result := NewScorer(models.NormalizeResume(map[string]interface{}{
		"skills": []interface{}{"Cooking"},
	})).Score()

	assert.LessOrEqual(t, len(result.MissingKeywords), 10)
	assert.NotEmpty(t, result.MissingKeywords)
}

func TestScore_QuantifiableAchievements(t *testing.T) {
	withNumbers := models.NormalizeResume(map[string]interface{}{
		"experience": []interface{}{
			map[string]interface{}{
				"company":      "Acme",
				"position":     "Engineer",
				"achievements": []interface{}{"Grew revenue by 25%"},
			},
		},
	})
	withoutNumbers := models.NormalizeResume(map[string]interface{}{
		"experience": []interface{}{
			map[string]interface{}{
				"company":      "Acme",
				"position":     "Engineer",
				"achievements": []interface{}{"Grew revenue substantially"},
			},
		},
	})

	scoreWith := NewScorer(withNumbers).Score()
	scoreWithout := NewScorer(withoutNumbers).Score()

	require.Greater(t, scoreWith.Score, scoreWithout.Score)
	assert.Equal(t, 10, scoreWith.Score-scoreWithout.Score)
}

func TestScore_PlaceholderNameDoesNotCount(t *testing.T) {
	result := NewScorer(models.NormalizeResume(map[string]interface{}{
		"personal_info": map[string]interface{}{
			"email": "jane@example.com",
			"phone": "+1 555",
		},
	})).Score()

	found := false
	for _, imp := range result.Improvements {
		if imp == "Add missing contact info: name" {
			found = true
		}
	}
	assert.True(t, found, "placeholder name must not satisfy the contact check")
}
