package native

// The three RenderCV-inspired styles share one visual family and differ
// mostly in section order: the classic variant reads academically with
// education before experience, the engineering variant leads with a
// technical skills table, and the sb2nov variant is deliberately compact
// with bullet caps and truncated project descriptions.

// NewRenderCVClassic builds the traditional serif academic layout.
func NewRenderCVClassic(themeColor string) Renderer {
	return &layoutRenderer{
		style: styleSheet{
			FontFamily:   "Times",
			NameSize:     20,
			HeadingSize:  12,
			BodySize:     10,
			SmallSize:    9,
			LineHeight:   5,
			Margin:       20,
			NameCentered: true,
			HeadingRule:  true,
			RuleWidth:    0.3,
			SectionGap:   4,
			Theme:        parseHexColor(themeColor),
		},
		order: []string{
			sectionSummary,
			sectionEducation,
			sectionExperience,
			sectionProjects,
			sectionSkills,
		},
	}
}

// NewRenderCVEngineering builds the engineering variant with technical
// skills immediately after the header.
func NewRenderCVEngineering(themeColor string) Renderer {
	return &layoutRenderer{
		style: styleSheet{
			FontFamily:    "Helvetica",
			NameSize:      20,
			HeadingSize:   12,
			BodySize:      10,
			SmallSize:     9,
			LineHeight:    5,
			Margin:        18,
			NameUpper:     true,
			NameCentered:  true,
			HeadingUpper:  true,
			HeadingRule:   true,
			HeadingThemed: true,
			RuleWidth:     0.55,
			SectionGap:    4,
			Theme:         parseHexColor(themeColor),
		},
		order: []string{
			sectionSkills,
			sectionExperience,
			sectionProjects,
			sectionEducation,
			sectionCertifications,
		},
		opts: layoutOptions{
			SkillsAsTable: true,
			Headings: map[string]string{
				sectionSkills: "Technical Skills",
			},
		},
	}
}

// NewRenderCVSb2nov builds the compact variant. The caps keep dense
// resumes on a single page.
func NewRenderCVSb2nov(themeColor string) Renderer {
	return &layoutRenderer{
		style: styleSheet{
			FontFamily:   "Times",
			NameSize:     18,
			HeadingSize:  11,
			BodySize:     9.5,
			SmallSize:    8.5,
			LineHeight:   4.6,
			Margin:       15,
			NameCentered: true,
			HeadingUpper: true,
			HeadingRule:  true,
			RuleWidth:    0.3,
			SectionGap:   3,
			Theme:        parseHexColor(themeColor),
		},
		order: []string{
			sectionEducation,
			sectionExperience,
			sectionProjects,
			sectionSkills,
			sectionCertifications,
		},
		opts: layoutOptions{
			SkillsAsTable:  true,
			BulletCap:      4,
			AchievementCap: 3,
			ProjectDescCap: 200,
			Headings: map[string]string{
				sectionSkills: "Technical Skills",
			},
		},
	}
}
