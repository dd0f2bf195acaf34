package native

import (
	"fmt"
	"strings"

	"resumeforge/pkg/models"
)

// NewAntiCV builds the "Anti CV" renderer: an unconventional, story-driven
// layout. Experience becomes a reverse-numbered journey told in prose,
// sections carry conversational titles, and the name reads as a greeting.
func NewAntiCV(themeColor string) Renderer {
	r := &layoutRenderer{
		style: styleSheet{
			FontFamily:    "Helvetica",
			NameSize:      24,
			HeadingSize:   14,
			BodySize:      10,
			SmallSize:     9,
			LineHeight:    5.2,
			Margin:        20,
			NameCentered:  false,
			HeadingRule:   false,
			HeadingThemed: true,
			RuleWidth:     0.3,
			SectionGap:    5,
			Theme:         parseHexColor(themeColor),
		},
		order: []string{
			sectionSummary,
			sectionSkills,
			sectionExperience,
			sectionProjects,
			sectionEducation,
			sectionCertifications,
		},
		opts: layoutOptions{
			NamePrefix: "Hi, I'm ",
			Headings: map[string]string{
				sectionSummary:        "About Me",
				sectionSkills:         "What I Do",
				sectionExperience:     "My Journey",
				sectionProjects:       "Things I've Built",
				sectionEducation:      "Where I Learned",
				sectionCertifications: "Badges",
			},
		},
	}
	r.overrides = map[string]sectionFunc{
		sectionSkills:     r.antiSkills,
		sectionExperience: r.antiJourney,
	}
	return r
}

// antiSkills renders the skill set as a short narrative rather than a
// list.
func (r *layoutRenderer) antiSkills(d *pdfDoc, doc *models.ResumeDocument) {
	if doc.Skills.IsEmpty() {
		return
	}
	d.sectionHeading(r.heading(sectionSkills))
	if doc.Skills.Grouped() {
		for _, group := range doc.Skills.Groups {
			label := pick(group.Category, "A bit of everything")
			d.paragraph(label + ": " + strings.Join(group.Items, ", "))
		}
		return
	}
	d.paragraph("I work with " + strings.Join(doc.Skills.Flat, ", ") + ".")
}

// antiJourney renders experience as reverse-numbered chapters, with each
// role's bullets joined into one narrative paragraph.
func (r *layoutRenderer) antiJourney(d *pdfDoc, doc *models.ResumeDocument) {
	if len(doc.Experience) == 0 {
		return
	}
	d.sectionHeading(r.heading(sectionExperience))
	chapter := len(doc.Experience)
	for i, exp := range doc.Experience {
		title := fmt.Sprintf("Chapter %d: %s", chapter-i, joinParts(" at ", exp.Position, exp.Company))
		d.twoCol(title, exp.Period())
		story := strings.Join(append(append([]string{}, exp.Description...), exp.Achievements...), " • ")
		d.paragraph(story)
		if i < len(doc.Experience)-1 {
			d.rule()
		}
		d.spacer(1.5)
	}
}
