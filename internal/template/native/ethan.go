package native

// NewEthan builds the "Ethan's Resume" renderer: a clean business layout
// with uppercase section headings and skills shown as a two-column table.
func NewEthan(themeColor string) Renderer {
	return &layoutRenderer{
		style: styleSheet{
			FontFamily:   "Helvetica",
			NameSize:     20,
			HeadingSize:  12,
			BodySize:     10,
			SmallSize:    9,
			LineHeight:   5,
			Margin:       17,
			NameCentered: true,
			HeadingUpper: true,
			HeadingRule:  true,
			RuleWidth:    0.35,
			SectionGap:   4,
			Theme:        parseHexColor(themeColor),
		},
		order: []string{
			sectionSummary,
			sectionExperience,
			sectionEducation,
			sectionSkills,
			sectionProjects,
			sectionCertifications,
		},
		opts: layoutOptions{
			SkillsAsTable: true,
		},
	}
}
