package native

// NewFallback builds the guaranteed-simple renderer the export flow
// retries with when a selected style fails. It performs no subprocess
// calls, applies no caps and uses only core fonts, so it succeeds for any
// document the normalization rules accept.
func NewFallback(themeColor string) Renderer {
	return &layoutRenderer{
		style: styleSheet{
			FontFamily:  "Helvetica",
			NameSize:    18,
			HeadingSize: 12,
			BodySize:    10,
			SmallSize:   9,
			LineHeight:  5,
			Margin:      20,
			HeadingRule: true,
			RuleWidth:   0.3,
			SectionGap:  4,
			Theme:       parseHexColor(themeColor),
		},
		order: []string{
			sectionSummary,
			sectionSkills,
			sectionProjects,
			sectionExperience,
			sectionCertifications,
			sectionEducation,
			sectionLanguages,
			sectionAwards,
		},
	}
}
