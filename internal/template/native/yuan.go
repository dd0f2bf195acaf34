package native

import (
	"resumeforge/pkg/models"
)

// taglineMax is the summary length below which the summary renders as a
// centered tagline under the name instead of a full section.
const taglineMax = 100

// NewYuan builds the "Yuan's Resume" renderer: a minimalist, elegant
// layout for senior roles. Awards and certifications merge into a single
// "Recognitions" section.
func NewYuan(themeColor string) Renderer {
	r := &layoutRenderer{
		style: styleSheet{
			FontFamily:   "Times",
			NameSize:     21,
			HeadingSize:  12,
			BodySize:     10,
			SmallSize:    9,
			LineHeight:   5.2,
			Margin:       22,
			NameCentered: true,
			HeadingUpper: true,
			HeadingRule:  false,
			RuleWidth:    0.25,
			SectionGap:   5,
			Theme:        parseHexColor(themeColor),
		},
		order: []string{
			sectionSummary,
			sectionExperience,
			sectionEducation,
			sectionSkills,
			sectionProjects,
			sectionAwards,
		},
		opts: layoutOptions{
			Headings: map[string]string{
				sectionSkills:   "Expertise",
				sectionProjects: "Selected Projects",
				sectionAwards:   "Recognitions",
			},
		},
	}
	r.overrides = map[string]sectionFunc{
		sectionSummary: r.yuanTagline,
		sectionAwards:  r.yuanRecognitions,
	}
	return r
}

// yuanTagline renders a short summary as an italic tagline; longer text
// falls back to a regular summary section.
func (r *layoutRenderer) yuanTagline(d *pdfDoc, doc *models.ResumeDocument) {
	if doc.Summary == "" {
		return
	}
	if len(doc.Summary) >= taglineMax {
		d.sectionHeading(r.heading(sectionSummary))
		d.paragraph(doc.Summary)
		return
	}
	d.pdf.SetFont(d.style.FontFamily, "I", d.style.BodySize+1)
	d.pdf.SetTextColor(90, 90, 90)
	d.pdf.CellFormat(0, d.style.LineHeight+1, d.tr(doc.Summary), "", 1, "C", false, 0, "")
	d.pdf.SetTextColor(40, 40, 40)
}

// yuanRecognitions merges awards and certifications into one section.
func (r *layoutRenderer) yuanRecognitions(d *pdfDoc, doc *models.ResumeDocument) {
	if len(doc.Awards) == 0 && len(doc.Certifications) == 0 {
		return
	}
	d.sectionHeading(r.heading(sectionAwards))
	for _, award := range doc.Awards {
		d.bullet(award)
	}
	for _, cert := range doc.Certifications {
		line := joinParts(" - ", cert.Name, cert.Issuer)
		if cert.Date != "" {
			line += " (" + cert.Date + ")"
		}
		d.bullet(line)
	}
}
