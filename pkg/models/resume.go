package models

import "strings"

// PlaceholderName is rendered when a resume has no name set. Every style
// needs a heading anchor, so an empty document still produces output.
const PlaceholderName = "Your Name"

// PersonalInfo holds the contact block of a resume. No field is required.
type PersonalInfo struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Website   string `json:"website,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// Education represents a single education entry. Legacy payloads use
// "field" instead of "field_of_study" and "gpa" instead of "grade";
// normalization folds both synonyms into the canonical fields here.
type Education struct {
	Institution    string `json:"institution,omitempty"`
	Degree         string `json:"degree,omitempty"`
	Field          string `json:"field_of_study,omitempty"`
	StartDate      string `json:"start_date,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	Grade          string `json:"grade,omitempty"`
	Description    string `json:"description,omitempty"`
}

// Period returns the display date string for an education entry. A single
// graduation date wins over a start/end range.
func (e Education) Period() string {
	if e.GraduationDate != "" {
		return e.GraduationDate
	}
	return FormatDateRange(e.StartDate, e.EndDate, false)
}

// DegreeLine joins degree and field of study for display.
func (e Education) DegreeLine() string {
	switch {
	case e.Degree != "" && e.Field != "":
		return e.Degree + " in " + e.Field
	case e.Degree != "":
		return e.Degree
	default:
		return e.Field
	}
}

// Experience represents a single work experience entry. Description is
// always a list after normalization, whether the caller sent a string or
// a list of bullets.
type Experience struct {
	Company      string   `json:"company,omitempty"`
	Position     string   `json:"position,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current,omitempty"`
	Description  []string `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Period returns the display date string. A current position always ends
// with "Present" regardless of any stored end date.
func (e Experience) Period() string {
	return FormatDateRange(e.StartDate, e.EndDate, e.Current)
}

// SkillGroup is one category of a grouped skills section.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Skills is the resolved form of the polymorphic skills field: callers
// send either a flat string list or a list of category groupings, and
// normalization decides the variant exactly once. At most one of Flat
// and Groups is non-nil.
type Skills struct {
	Flat   []string     `json:"flat,omitempty"`
	Groups []SkillGroup `json:"groups,omitempty"`
}

// IsEmpty reports whether no skills are present in either variant.
func (s Skills) IsEmpty() bool {
	if len(s.Flat) > 0 {
		return false
	}
	for _, g := range s.Groups {
		if len(g.Items) > 0 || g.Category != "" {
			return false
		}
	}
	return true
}

// Grouped reports whether the skills were sent as category groupings.
func (s Skills) Grouped() bool {
	return s.Groups != nil
}

// All flattens both variants into a single list of skill strings.
func (s Skills) All() []string {
	if s.Flat != nil {
		return s.Flat
	}
	var all []string
	for _, g := range s.Groups {
		all = append(all, g.Items...)
	}
	return all
}

// Project represents a project entry. Highlights is always a list after
// normalization, whether the caller sent a list or a bullet-separated
// string.
type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

// Certification represents a certification entry.
type Certification struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

// ResumeDocument is the canonical, fully normalized resume every renderer
// consumes. It is constructed fresh per render call and never mutated by
// a renderer.
type ResumeDocument struct {
	PersonalInfo   PersonalInfo           `json:"personal_info"`
	Summary        string                 `json:"summary,omitempty"`
	Education      []Education            `json:"education,omitempty"`
	Experience     []Experience           `json:"experience,omitempty"`
	Skills         Skills                 `json:"skills,omitempty"`
	Projects       []Project              `json:"projects,omitempty"`
	Certifications []Certification        `json:"certifications,omitempty"`
	Languages      []string               `json:"languages,omitempty"`
	Awards         []string               `json:"awards,omitempty"`
	CustomSections map[string]interface{} `json:"custom_sections,omitempty"`
}

// DisplayName returns the resume holder's name, falling back to the
// placeholder when the contact block has none.
func (r *ResumeDocument) DisplayName() string {
	if name := strings.TrimSpace(r.PersonalInfo.Name); name != "" {
		return name
	}
	return PlaceholderName
}

// FormatDateRange builds the display string for a start/end date pair.
// Current positions end with "Present"; a range where both sides are
// empty collapses to the empty string instead of a bare separator.
func FormatDateRange(start, end string, current bool) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if current {
		end = "Present"
	}
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	default:
		return start + " - " + end
	}
}
