package native

// NewAutoCV builds the "Auto CV" renderer: a modern, ATS-friendly layout
// with the summary and skills up front.
func NewAutoCV(themeColor string) Renderer {
	return &layoutRenderer{
		style: styleSheet{
			FontFamily:    "Helvetica",
			NameSize:      22,
			HeadingSize:   13,
			BodySize:      10,
			SmallSize:     9,
			LineHeight:    5,
			Margin:        18,
			NameUpper:     true,
			NameCentered:  true,
			HeadingUpper:  false,
			HeadingRule:   true,
			HeadingThemed: true,
			RuleWidth:     0.4,
			SectionGap:    4,
			Theme:         parseHexColor(themeColor),
		},
		order: []string{
			sectionSummary,
			sectionSkills,
			sectionExperience,
			sectionEducation,
			sectionProjects,
			sectionCertifications,
		},
		opts: layoutOptions{
			Headings: map[string]string{
				sectionSummary: "Professional Summary",
			},
		},
	}
}
