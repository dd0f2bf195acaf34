package native

import (
	"fmt"
	"strings"

	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// Section identifiers used in per-style ordering tables.
const (
	sectionSummary        = "summary"
	sectionSkills         = "skills"
	sectionExperience     = "experience"
	sectionEducation      = "education"
	sectionProjects       = "projects"
	sectionCertifications = "certifications"
	sectionLanguages      = "languages"
	sectionAwards         = "awards"
)

// sectionFunc renders one resume section into the document.
type sectionFunc func(d *pdfDoc, doc *models.ResumeDocument)

// layoutOptions are the per-style policies that vary beyond pure styling:
// compact styles cap bullets and truncate text, table styles render
// skills in two columns. Zero values mean no cap.
type layoutOptions struct {
	SkillsAsTable  bool
	BulletCap      int
	AchievementCap int
	ProjectDescCap int
	NamePrefix     string
	Headings       map[string]string
}

// layoutRenderer is the shared section-walking engine. Each visual style
// supplies a style sheet, a section order and optionally per-section
// overrides; the walking and the standard emitters are common.
type layoutRenderer struct {
	style     styleSheet
	order     []string
	opts      layoutOptions
	overrides map[string]sectionFunc
}

func (r *layoutRenderer) Render(doc *models.ResumeDocument) ([]byte, error) {
	d := newDoc(r.style)

	d.name(r.opts.NamePrefix + doc.DisplayName())
	pi := doc.PersonalInfo
	d.contactLine(pi.Email, pi.Phone, pi.Location)
	d.contactLine(displayURL(pi.LinkedIn), displayURL(pi.GitHub), displayURL(pick(pi.Website, pi.Portfolio)))

	for _, section := range r.order {
		if fn, ok := r.overrides[section]; ok {
			fn(d, doc)
			continue
		}
		r.renderSection(d, doc, section)
	}

	out, err := d.output()
	if err != nil {
		return nil, fmt.Errorf("compose pdf: %w", err)
	}
	return out, nil
}

func (r *layoutRenderer) heading(section string) string {
	if title, ok := r.opts.Headings[section]; ok {
		return title
	}
	switch section {
	case sectionSummary:
		return "Summary"
	case sectionSkills:
		return "Skills"
	case sectionExperience:
		return "Experience"
	case sectionEducation:
		return "Education"
	case sectionProjects:
		return "Projects"
	case sectionCertifications:
		return "Certifications"
	case sectionLanguages:
		return "Languages"
	case sectionAwards:
		return "Awards"
	}
	return section
}

// renderSection emits one section with the standard formatter. Sections
// with no data are skipped silently; no placeholder headers.
func (r *layoutRenderer) renderSection(d *pdfDoc, doc *models.ResumeDocument, section string) {
	switch section {
	case sectionSummary:
		if doc.Summary == "" {
			return
		}
		d.sectionHeading(r.heading(section))
		d.paragraph(doc.Summary)

	case sectionSkills:
		if doc.Skills.IsEmpty() {
			return
		}
		d.sectionHeading(r.heading(section))
		r.renderSkills(d, doc.Skills)

	case sectionExperience:
		if len(doc.Experience) == 0 {
			return
		}
		d.sectionHeading(r.heading(section))
		for _, exp := range doc.Experience {
			r.renderExperience(d, exp)
		}

	case sectionEducation:
		if len(doc.Education) == 0 {
			return
		}
		d.sectionHeading(r.heading(section))
		for _, edu := range doc.Education {
			d.twoCol(pick(edu.Institution, edu.DegreeLine()), edu.Period())
			detail := edu.DegreeLine()
			if edu.Institution == "" {
				detail = ""
			}
			if edu.Grade != "" {
				detail = joinParts(" | ", detail, "GPA: "+edu.Grade)
			}
			d.subLine(detail)
			d.spacer(1)
		}

	case sectionProjects:
		if len(doc.Projects) == 0 {
			return
		}
		d.sectionHeading(r.heading(section))
		for _, proj := range doc.Projects {
			d.twoCol(proj.Name, displayURL(proj.URL))
			desc := proj.Description
			if r.opts.ProjectDescCap > 0 {
				desc = utils.TruncateString(desc, r.opts.ProjectDescCap)
			}
			d.paragraph(desc)
			for _, h := range proj.Highlights {
				d.bullet(h)
			}
			if len(proj.Technologies) > 0 {
				d.subLine("Technologies: " + strings.Join(proj.Technologies, ", "))
			}
			d.spacer(1.5)
		}

	case sectionCertifications:
		if len(doc.Certifications) == 0 {
			return
		}
		d.sectionHeading(r.heading(section))
		for _, cert := range doc.Certifications {
			line := joinParts(" - ", cert.Name, cert.Issuer)
			if cert.Date != "" {
				line += " (" + cert.Date + ")"
			}
			d.bullet(line)
		}

	case sectionLanguages:
		if len(doc.Languages) == 0 {
			return
		}
		d.sectionHeading(r.heading(section))
		d.paragraph(strings.Join(doc.Languages, "  •  "))

	case sectionAwards:
		if len(doc.Awards) == 0 {
			return
		}
		d.sectionHeading(r.heading(section))
		for _, award := range doc.Awards {
			d.bullet(award)
		}
	}
}

func (r *layoutRenderer) renderExperience(d *pdfDoc, exp models.Experience) {
	d.twoCol(joinParts(", ", exp.Position, exp.Company), exp.Period())
	d.subLine(exp.Location)

	bullets := exp.Description
	if r.opts.BulletCap > 0 && len(bullets) > r.opts.BulletCap {
		bullets = bullets[:r.opts.BulletCap]
	}
	for _, b := range bullets {
		d.bullet(b)
	}

	achievements := exp.Achievements
	if r.opts.AchievementCap > 0 && len(achievements) > r.opts.AchievementCap {
		achievements = achievements[:r.opts.AchievementCap]
	}
	for _, a := range achievements {
		d.bullet(a)
	}
	d.spacer(1.5)
}

func (r *layoutRenderer) renderSkills(d *pdfDoc, skills models.Skills) {
	if skills.Grouped() {
		for _, group := range skills.Groups {
			label := pick(group.Category, "Other")
			items := strings.Join(group.Items, ", ")
			if r.opts.SkillsAsTable {
				d.labelRow(label, items)
			} else {
				d.bullet(label + ": " + items)
			}
		}
		return
	}
	if r.opts.SkillsAsTable {
		d.labelRow("Skills", strings.Join(skills.Flat, ", "))
		return
	}
	d.paragraph(strings.Join(skills.Flat, ", "))
}

// displayURL strips the protocol prefix and www. for display while the
// caller keeps the full URL where a hyperlink target is needed.
func displayURL(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "www.")
	return strings.TrimSuffix(url, "/")
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func joinParts(sep string, parts ...string) string {
	var present []string
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, sep)
}
