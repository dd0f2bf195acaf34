package models

import "strings"

// NormalizeResume converts a loosely-typed resume payload (as decoded from
// JSON or fetched from the document store) into a ResumeDocument. All
// polymorphic fields are resolved here, exactly once: renderers never
// type-sniff. Malformed list entries are skipped rather than failing the
// whole document.
func NormalizeResume(data map[string]interface{}) *ResumeDocument {
	if data == nil {
		data = map[string]interface{}{}
	}

	doc := &ResumeDocument{
		PersonalInfo: normalizePersonalInfo(asMap(data["personal_info"])),
		Summary:      firstNonEmpty(asString(data["summary"]), asString(data["objective"])),
		Skills:       normalizeSkills(data["skills"]),
		Languages:    asStringSlice(data["languages"]),
		Awards:       asStringSlice(data["awards"]),
	}

	for _, raw := range asSlice(data["education"]) {
		entry := asMap(raw)
		if entry == nil {
			continue
		}
		doc.Education = append(doc.Education, normalizeEducation(entry))
	}

	for _, raw := range asSlice(data["experience"]) {
		entry := asMap(raw)
		if entry == nil {
			continue
		}
		doc.Experience = append(doc.Experience, normalizeExperience(entry))
	}

	for _, raw := range asSlice(data["projects"]) {
		entry := asMap(raw)
		if entry == nil {
			continue
		}
		doc.Projects = append(doc.Projects, normalizeProject(entry))
	}

	for _, raw := range asSlice(data["certifications"]) {
		entry := asMap(raw)
		if entry == nil {
			continue
		}
		doc.Certifications = append(doc.Certifications, Certification{
			Name:   asString(entry["name"]),
			Issuer: asString(entry["issuer"]),
			Date:   asString(entry["date"]),
			URL:    asString(entry["url"]),
		})
	}

	if custom := asMap(data["custom_sections"]); custom != nil {
		doc.CustomSections = custom
	}

	return doc
}

func normalizePersonalInfo(info map[string]interface{}) PersonalInfo {
	if info == nil {
		return PersonalInfo{}
	}
	return PersonalInfo{
		Name:      asString(info["name"]),
		Email:     asString(info["email"]),
		Phone:     asString(info["phone"]),
		Location:  asString(info["location"]),
		LinkedIn:  asString(info["linkedin"]),
		GitHub:    asString(info["github"]),
		Website:   asString(info["website"]),
		Portfolio: asString(info["portfolio"]),
	}
}

func normalizeEducation(entry map[string]interface{}) Education {
	return Education{
		Institution: asString(entry["institution"]),
		Degree:      asString(entry["degree"]),
		// field_of_study wins over its legacy synonym
		Field:          firstNonEmpty(asString(entry["field_of_study"]), asString(entry["field"])),
		StartDate:      asString(entry["start_date"]),
		EndDate:        asString(entry["end_date"]),
		GraduationDate: asString(entry["graduation_date"]),
		Grade:          firstNonEmpty(asString(entry["grade"]), asString(entry["gpa"])),
	}
}

func normalizeExperience(entry map[string]interface{}) Experience {
	return Experience{
		Company:      asString(entry["company"]),
		Position:     asString(entry["position"]),
		Location:     asString(entry["location"]),
		StartDate:    asString(entry["start_date"]),
		EndDate:      asString(entry["end_date"]),
		Current:      asBool(entry["current"]),
		Description:  normalizeDescription(entry["description"]),
		Achievements: asStringSlice(entry["achievements"]),
	}
}

func normalizeProject(entry map[string]interface{}) Project {
	return Project{
		Name:         asString(entry["name"]),
		Description:  asString(entry["description"]),
		Technologies: asStringSlice(entry["technologies"]),
		URL:          asString(entry["url"]),
		Highlights:   normalizeHighlights(entry["highlights"]),
	}
}

// normalizeDescription resolves the string-or-list description field into
// a bullet list. A single string becomes a one-element list.
func normalizeDescription(value interface{}) []string {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	case []interface{}:
		return coerceStrings(v)
	case []string:
		return trimNonEmpty(v)
	default:
		return nil
	}
}

// normalizeHighlights resolves the list-or-bullet-separated-string
// highlights field into a list.
func normalizeHighlights(value interface{}) []string {
	switch v := value.(type) {
	case string:
		var out []string
		for _, part := range strings.Split(v, "•") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	case []interface{}:
		return coerceStrings(v)
	case []string:
		return trimNonEmpty(v)
	default:
		return nil
	}
}

// normalizeSkills resolves the polymorphic skills field. The shape is
// decided by the first element: a string means the whole list is flat, a
// mapping means category groupings. Entries that match neither shape are
// skipped.
func normalizeSkills(value interface{}) Skills {
	items := asSlice(value)
	if len(items) == 0 {
		if flat, ok := value.([]string); ok {
			return Skills{Flat: trimNonEmpty(flat)}
		}
		return Skills{}
	}

	if _, grouped := items[0].(map[string]interface{}); grouped {
		var groups []SkillGroup
		for _, raw := range items {
			entry := asMap(raw)
			if entry == nil {
				continue
			}
			group := SkillGroup{
				Category: asString(entry["category"]),
				Items:    asStringSlice(entry["items"]),
			}
			if group.Category == "" && len(group.Items) == 0 {
				continue
			}
			groups = append(groups, group)
		}
		return Skills{Groups: groups}
	}

	return Skills{Flat: coerceStrings(items)}
}

// Loose-typing helpers shared by the normalization rules.

func asString(value interface{}) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}

func asBool(value interface{}) bool {
	b, _ := value.(bool)
	return b
}

func asMap(value interface{}) map[string]interface{} {
	m, _ := value.(map[string]interface{})
	return m
}

func asSlice(value interface{}) []interface{} {
	s, _ := value.([]interface{})
	return s
}

func asStringSlice(value interface{}) []string {
	switch v := value.(type) {
	case []interface{}:
		return coerceStrings(v)
	case []string:
		return trimNonEmpty(v)
	default:
		return nil
	}
}

func coerceStrings(items []interface{}) []string {
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func trimNonEmpty(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
