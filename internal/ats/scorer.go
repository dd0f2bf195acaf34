package ats

import (
	"fmt"
	"regexp"
	"strings"

	"resumeforge/pkg/models"
)

// Keyword lists used by the heuristic scorer. Matching is substring based
// over the lowercased resume text, same trade-offs as real ATS parsers.
var (
	technicalKeywords = []string{
		"python", "java", "javascript", "react", "node.js", "sql", "aws", "docker",
		"kubernetes", "git", "agile", "scrum", "ci/cd", "api", "rest", "microservices",
	}

	softSkills = []string{
		"leadership", "communication", "teamwork", "problem-solving", "analytical",
		"project management", "collaboration", "time management", "adaptability",
	}

	actionVerbs = []string{
		"achieved", "improved", "developed", "created", "managed", "led", "implemented",
		"designed", "optimized", "increased", "reduced", "launched", "built", "established",
	}
)

var quantifiablePattern = regexp.MustCompile(`\d+[%$]?|\$\d+`)

// Result holds the heuristic scoring output. Feedback lines are
// human-readable and ordered by check.
type Result struct {
	Score           int
	Feedback        []string
	MissingKeywords []string
	Improvements    []string
}

// Scorer evaluates a resume for applicant-tracking-system compatibility.
// Points: essential sections 40, formatting 20, keywords 20,
// quantifiable achievements 10, contact information 10.
type Scorer struct {
	doc *models.ResumeDocument

	score        int
	feedback     []string
	missing      []string
	improvements []string
}

func NewScorer(doc *models.ResumeDocument) *Scorer {
	return &Scorer{doc: doc}
}

// Score runs every check and caps the total at 100.
func (s *Scorer) Score() Result {
	s.checkEssentialSections()
	s.checkFormatting()
	s.checkKeywords()
	s.checkAchievements()
	s.checkContactInfo()

	if s.score > 100 {
		s.score = 100
	}
	if len(s.missing) > 10 {
		s.missing = s.missing[:10]
	}
	return Result{
		Score:           s.score,
		Feedback:        s.feedback,
		MissingKeywords: s.missing,
		Improvements:    s.improvements,
	}
}

func (s *Scorer) checkEssentialSections() {
	sections := []struct {
		name    string
		points  int
		present bool
	}{
		{"Experience", 15, len(s.doc.Experience) > 0},
		{"Education", 10, len(s.doc.Education) > 0},
		{"Skills", 10, !s.doc.Skills.IsEmpty()},
		{"Personal info", 5, s.doc.PersonalInfo.Name != "" && s.doc.PersonalInfo.Name != models.PlaceholderName},
	}

	for _, section := range sections {
		if section.present {
			s.score += section.points
			s.feedback = append(s.feedback, fmt.Sprintf("✓ %s section present", section.name))
		} else {
			s.feedback = append(s.feedback, fmt.Sprintf("✗ Missing %s section", section.name))
			s.improvements = append(s.improvements, fmt.Sprintf("Add %s section", section.name))
		}
	}
}

func (s *Scorer) checkFormatting() {
	hasAchievements := false
	hasDates := false
	clearTitles := len(s.doc.Experience) > 0
	for _, exp := range s.doc.Experience {
		if len(exp.Achievements) > 0 {
			hasAchievements = true
		}
		if exp.StartDate != "" {
			hasDates = true
		}
		if exp.Position == "" || exp.Company == "" {
			clearTitles = false
		}
	}

	if hasAchievements {
		s.score += 5
		s.feedback = append(s.feedback, "✓ Uses bullet points for achievements")
	} else {
		s.improvements = append(s.improvements, "Use bullet points to list achievements")
	}

	if hasDates {
		s.score += 5
		s.feedback = append(s.feedback, "✓ Includes dates for experience")
	} else {
		s.improvements = append(s.improvements, "Add dates to your experience entries")
	}

	if clearTitles {
		s.score += 5
		s.feedback = append(s.feedback, "✓ Clear job titles and companies")
	}

	if s.doc.Summary != "" {
		s.score += 5
		s.feedback = append(s.feedback, "✓ Includes professional summary/objective")
	} else {
		s.improvements = append(s.improvements, "Add a professional summary at the top")
	}
}

func (s *Scorer) checkKeywords() {
	allText := strings.ToLower(s.allText())

	foundTechnical := countMatches(allText, technicalKeywords)
	if foundTechnical >= 5 {
		s.score += 7
		s.feedback = append(s.feedback, fmt.Sprintf("✓ Contains %d technical keywords", foundTechnical))
	} else {
		for _, kw := range technicalKeywords[:10] {
			if !strings.Contains(allText, kw) {
				s.missing = append(s.missing, kw)
			}
		}
		s.improvements = append(s.improvements, "Include more relevant technical keywords")
	}

	foundSoft := countMatches(allText, softSkills)
	if foundSoft >= 3 {
		s.score += 7
		s.feedback = append(s.feedback, fmt.Sprintf("✓ Contains %d soft skills", foundSoft))
	} else {
		s.improvements = append(s.improvements, "Add more soft skills (leadership, communication, etc.)")
	}

	foundVerbs := countMatches(allText, actionVerbs)
	if foundVerbs >= 5 {
		s.score += 6
		s.feedback = append(s.feedback, fmt.Sprintf("✓ Uses %d strong action verbs", foundVerbs))
	} else {
		s.improvements = append(s.improvements, "Use more action verbs (achieved, improved, developed, etc.)")
	}
}

func (s *Scorer) checkAchievements() {
	for _, exp := range s.doc.Experience {
		for _, achievement := range exp.Achievements {
			if quantifiablePattern.MatchString(achievement) {
				s.score += 10
				s.feedback = append(s.feedback, "✓ Includes quantifiable achievements with numbers")
				return
			}
		}
	}
	s.improvements = append(s.improvements, "Add numbers and metrics to quantify your achievements (e.g., 'Increased sales by 25%')")
}

func (s *Scorer) checkContactInfo() {
	pi := s.doc.PersonalInfo

	var missing []string
	if pi.Name == "" || pi.Name == models.PlaceholderName {
		missing = append(missing, "name")
	}
	if pi.Email == "" {
		missing = append(missing, "email")
	}
	if pi.Phone == "" {
		missing = append(missing, "phone")
	}

	if len(missing) == 0 {
		s.score += 5
		s.feedback = append(s.feedback, "✓ Complete contact information")
	} else {
		s.improvements = append(s.improvements, "Add missing contact info: "+strings.Join(missing, ", "))
	}

	if pi.LinkedIn != "" || pi.GitHub != "" {
		s.score += 5
		s.feedback = append(s.feedback, "✓ Includes professional profile links")
	} else {
		s.improvements = append(s.improvements, "Add LinkedIn or GitHub profile link")
	}
}

// allText flattens every free-text field into one searchable string.
func (s *Scorer) allText() string {
	var parts []string

	parts = append(parts, s.doc.Skills.All()...)
	for _, exp := range s.doc.Experience {
		parts = append(parts, exp.Position, exp.Company)
		parts = append(parts, exp.Description...)
		parts = append(parts, exp.Achievements...)
	}
	for _, edu := range s.doc.Education {
		parts = append(parts, edu.Degree, edu.Field, edu.Description)
	}
	parts = append(parts, s.doc.Summary)

	return strings.Join(parts, " ")
}

func countMatches(text string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}
