package markup

import (
	"fmt"
	"strings"

	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// bodyGenerators maps style ids to their markup body generators. Styles
// present in the skeleton table but absent here fall back to the legacy
// direct-substitution path.
var bodyGenerators = map[string]func(*models.ResumeDocument) string{
	"auto_cv":              generateAutoCVBody,
	"anti_cv":              generateAntiCVBody,
	"ethan":                generateEthanBody,
	"rendercv_classic":     generateClassicBody,
	"rendercv_engineering": generateEngineeringBody,
	"rendercv_sb2nov":      generateSb2novBody,
}

// body wraps the markup being generated. Text passed through its helpers
// is escaped; raw emits structural markup verbatim.
type body struct {
	sb strings.Builder
}

func (b *body) raw(format string, args ...interface{}) {
	fmt.Fprintf(&b.sb, format+"\n", args...)
}

func (b *body) section(title string) {
	b.raw(`\section*{%s}`, Escape(title))
}

// entryRow emits a bold left part with the period flushed right.
func (b *body) entryRow(left, right string) {
	b.raw(`\noindent\textbf{%s} \hfill %s\par`, Escape(left), Escape(right))
}

func (b *body) subRow(text string) {
	if text == "" {
		return
	}
	b.raw(`\noindent\textit{%s}\par`, Escape(text))
}

func (b *body) itemize(items []string) {
	if len(items) == 0 {
		return
	}
	b.raw(`\begin{itemize}`)
	for _, item := range items {
		b.raw(`  \item %s`, Escape(item))
	}
	b.raw(`\end{itemize}`)
}

func (b *body) String() string {
	return b.sb.String()
}

// contactParts assembles the escaped display form of the contact block,
// with link fields rendered as \href pairs.
func contactParts(pi models.PersonalInfo) []string {
	var parts []string
	if pi.Email != "" {
		parts = append(parts, fmt.Sprintf(`\href{mailto:%s}{%s}`, pi.Email, Escape(pi.Email)))
	}
	if pi.Phone != "" {
		parts = append(parts, Escape(pi.Phone))
	}
	if pi.Location != "" {
		parts = append(parts, Escape(pi.Location))
	}
	if pi.LinkedIn != "" {
		parts = append(parts, fmt.Sprintf(`\href{%s}{%s}`, hyperlinkTarget(pi.LinkedIn), Escape(displayLinkedIn(pi.LinkedIn))))
	}
	if pi.GitHub != "" {
		parts = append(parts, fmt.Sprintf(`\href{%s}{%s}`, hyperlinkTarget(pi.GitHub), Escape(displayGitHub(pi.GitHub))))
	}
	if site := pi.Website; site != "" {
		parts = append(parts, fmt.Sprintf(`\href{%s}{%s}`, hyperlinkTarget(site), Escape(displayURL(site))))
	} else if pi.Portfolio != "" {
		parts = append(parts, fmt.Sprintf(`\href{%s}{%s}`, hyperlinkTarget(pi.Portfolio), Escape(displayURL(pi.Portfolio))))
	}
	return parts
}

func writeExperience(b *body, entries []models.Experience, bulletCap int) {
	for _, exp := range entries {
		b.entryRow(joinNonEmpty(", ", exp.Position, exp.Company), exp.Period())
		b.subRow(exp.Location)
		bullets := append(append([]string{}, exp.Description...), exp.Achievements...)
		if bulletCap > 0 && len(bullets) > bulletCap {
			bullets = bullets[:bulletCap]
		}
		b.itemize(bullets)
		b.raw(`\vspace{4pt}`)
	}
}

func writeEducation(b *body, entries []models.Education) {
	for _, edu := range entries {
		b.entryRow(edu.Institution, edu.Period())
		detail := edu.DegreeLine()
		if edu.Grade != "" {
			detail = joinNonEmpty(" | ", detail, "GPA: "+edu.Grade)
		}
		b.subRow(detail)
		b.raw(`\vspace{4pt}`)
	}
}

func writeProjects(b *body, entries []models.Project, descCap int) {
	for _, proj := range entries {
		right := ""
		if proj.URL != "" {
			right = fmt.Sprintf(`\href{%s}{%s}`, hyperlinkTarget(proj.URL), Escape(displayURL(proj.URL)))
		}
		if right != "" {
			b.raw(`\noindent\textbf{%s} \hfill %s\par`, Escape(proj.Name), right)
		} else {
			b.entryRow(proj.Name, "")
		}
		desc := proj.Description
		if descCap > 0 {
			desc = utils.TruncateString(desc, descCap)
		}
		if desc != "" {
			b.raw(`%s\par`, Escape(desc))
		}
		b.itemize(proj.Highlights)
		if len(proj.Technologies) > 0 {
			b.raw(`\textit{Technologies: %s}\par`, Escape(strings.Join(proj.Technologies, ", ")))
		}
		b.raw(`\vspace{4pt}`)
	}
}

func writeSkills(b *body, skills models.Skills) {
	if skills.Grouped() {
		for _, group := range skills.Groups {
			label := group.Category
			if label == "" {
				label = "Other"
			}
			b.raw(`\noindent\textbf{%s:} %s\par`, Escape(label), Escape(strings.Join(group.Items, ", ")))
		}
		return
	}
	b.raw(`%s\par`, Escape(strings.Join(skills.Flat, ", ")))
}

func writeCertifications(b *body, entries []models.Certification) {
	var lines []string
	for _, cert := range entries {
		line := joinNonEmpty(" - ", cert.Name, cert.Issuer)
		if cert.Date != "" {
			line += " (" + cert.Date + ")"
		}
		lines = append(lines, line)
	}
	b.itemize(lines)
}

// generateAutoCVBody emits the modern layout: summary and skills up
// front, a last-updated footer pinned to the page bottom.
func generateAutoCVBody(doc *models.ResumeDocument) string {
	b := &body{}
	b.raw(`\begin{center}{\Huge\bfseries\color{primaryColor} %s}\end{center}`, Escape(strings.ToUpper(doc.DisplayName())))
	if parts := contactParts(doc.PersonalInfo); len(parts) > 0 {
		b.raw(`\begin{center}%s\end{center}`, strings.Join(parts, ` \textbar{} `))
	}

	if doc.Summary != "" {
		b.section("Professional Summary")
		b.raw(`%s\par`, Escape(doc.Summary))
	}
	if !doc.Skills.IsEmpty() {
		b.section("Skills")
		writeSkills(b, doc.Skills)
	}
	if len(doc.Experience) > 0 {
		b.section("Experience")
		writeExperience(b, doc.Experience, 0)
	}
	if len(doc.Education) > 0 {
		b.section("Education")
		writeEducation(b, doc.Education)
	}
	if len(doc.Projects) > 0 {
		b.section("Projects")
		writeProjects(b, doc.Projects, 0)
	}
	if len(doc.Certifications) > 0 {
		b.section("Certifications")
		writeCertifications(b, doc.Certifications)
	}
	b.raw(`\vfill\begin{center}\footnotesize\color{gray} Last updated: \today\end{center}`)
	return b.String()
}

// generateAntiCVBody emits the story-driven layout using the \NewPart,
// \SkillsEntry and \sepspace macros from the anticv skeleton.
func generateAntiCVBody(doc *models.ResumeDocument) string {
	b := &body{}
	b.raw(`\noindent{\Huge Hi, I'm \textbf{\color{primaryColor}%s}}\par\sepspace`, Escape(doc.DisplayName()))
	if parts := contactParts(doc.PersonalInfo); len(parts) > 0 {
		b.raw(`\noindent %s\par`, strings.Join(parts, ` $\cdot$ `))
	}

	if doc.Summary != "" {
		b.raw(`\NewPart{About Me}`)
		b.raw(`%s\par`, Escape(doc.Summary))
	}
	if !doc.Skills.IsEmpty() {
		b.raw(`\NewPart{What I Do}`)
		if doc.Skills.Grouped() {
			for _, group := range doc.Skills.Groups {
				label := group.Category
				if label == "" {
					label = "A bit of everything"
				}
				b.raw(`\SkillsEntry{%s}{%s}`, Escape(label), Escape(strings.Join(group.Items, ", ")))
			}
		} else {
			b.raw(`\SkillsEntry{Toolbox}{%s}`, Escape(strings.Join(doc.Skills.Flat, ", ")))
		}
	}
	if len(doc.Experience) > 0 {
		b.raw(`\NewPart{My Journey}`)
		chapter := len(doc.Experience)
		for i, exp := range doc.Experience {
			b.entryRow(fmt.Sprintf("Chapter %d: %s", chapter-i, joinNonEmpty(" at ", exp.Position, exp.Company)), exp.Period())
			story := append(append([]string{}, exp.Description...), exp.Achievements...)
			if len(story) > 0 {
				var escaped []string
				for _, s := range story {
					escaped = append(escaped, Escape(s))
				}
				b.raw(`%s\par`, strings.Join(escaped, ` $\bullet$ `))
			}
			b.raw(`\sepspace`)
		}
	}
	if len(doc.Projects) > 0 {
		b.raw(`\NewPart{Things I've Built}`)
		writeProjects(b, doc.Projects, 0)
	}
	if len(doc.Education) > 0 {
		b.raw(`\NewPart{Where I Learned}`)
		writeEducation(b, doc.Education)
	}
	if len(doc.Certifications) > 0 {
		b.raw(`\NewPart{Badges}`)
		writeCertifications(b, doc.Certifications)
	}
	return b.String()
}

// generateEthanBody emits the business layout using the \cvheading macro
// from the ethan skeleton and diamond separators between contact parts.
func generateEthanBody(doc *models.ResumeDocument) string {
	b := &body{}
	b.raw(`\begin{center}{\LARGE\bfseries %s}\end{center}`, Escape(doc.DisplayName()))
	if parts := contactParts(doc.PersonalInfo); len(parts) > 0 {
		b.raw(`\begin{center}%s\end{center}`, strings.Join(parts, ` $\ \diamond\ $ `))
	}

	if doc.Summary != "" {
		b.raw(`\cvheading{Summary}`)
		b.raw(`%s\par`, Escape(doc.Summary))
	}
	if len(doc.Experience) > 0 {
		b.raw(`\cvheading{Experience}`)
		writeExperience(b, doc.Experience, 0)
	}
	if len(doc.Education) > 0 {
		b.raw(`\cvheading{Education}`)
		writeEducation(b, doc.Education)
	}
	if !doc.Skills.IsEmpty() {
		b.raw(`\cvheading{Skills}`)
		writeSkills(b, doc.Skills)
	}
	if len(doc.Projects) > 0 {
		b.raw(`\cvheading{Projects}`)
		writeProjects(b, doc.Projects, 0)
	}
	if len(doc.Certifications) > 0 {
		b.raw(`\cvheading{Certifications}`)
		writeCertifications(b, doc.Certifications)
	}
	return b.String()
}

// generateClassicBody emits the academic layout: education precedes
// experience and skills close the document under a Technologies heading.
func generateClassicBody(doc *models.ResumeDocument) string {
	b := &body{}
	b.raw(`\begin{center}{\huge %s}\end{center}`, Escape(doc.DisplayName()))
	if parts := contactParts(doc.PersonalInfo); len(parts) > 0 {
		b.raw(`\begin{center}%s\end{center}`, strings.Join(parts, ` \textbar{} `))
	}

	if doc.Summary != "" {
		b.section("Summary")
		b.raw(`%s\par`, Escape(doc.Summary))
	}
	if len(doc.Education) > 0 {
		b.section("Education")
		writeEducation(b, doc.Education)
	}
	if len(doc.Experience) > 0 {
		b.section("Experience")
		writeExperience(b, doc.Experience, 0)
	}
	if len(doc.Projects) > 0 {
		b.section("Projects")
		writeProjects(b, doc.Projects, 0)
	}
	if !doc.Skills.IsEmpty() {
		b.section("Technologies")
		writeSkills(b, doc.Skills)
	}
	return b.String()
}

// generateEngineeringBody emits the engineering layout with technical
// skills leading.
func generateEngineeringBody(doc *models.ResumeDocument) string {
	b := &body{}
	b.raw(`\begin{center}{\huge\bfseries\color{primaryColor} %s}\end{center}`, Escape(strings.ToUpper(doc.DisplayName())))
	if parts := contactParts(doc.PersonalInfo); len(parts) > 0 {
		b.raw(`\begin{center}%s\end{center}`, strings.Join(parts, ` \textbar{} `))
	}

	if !doc.Skills.IsEmpty() {
		b.section("Technical Skills")
		writeSkills(b, doc.Skills)
	}
	if len(doc.Experience) > 0 {
		b.section("Experience")
		writeExperience(b, doc.Experience, 0)
	}
	if len(doc.Projects) > 0 {
		b.section("Projects")
		writeProjects(b, doc.Projects, 0)
	}
	if len(doc.Education) > 0 {
		b.section("Education")
		writeEducation(b, doc.Education)
	}
	if len(doc.Certifications) > 0 {
		b.section("Certifications")
		writeCertifications(b, doc.Certifications)
	}
	return b.String()
}

// generateSb2novBody emits the compact layout: education first, skills
// last, bullets capped to hold a single page.
func generateSb2novBody(doc *models.ResumeDocument) string {
	b := &body{}
	b.raw(`\begin{center}{\LARGE %s}\end{center}`, Escape(doc.DisplayName()))
	if parts := contactParts(doc.PersonalInfo); len(parts) > 0 {
		b.raw(`\begin{center}\small %s\end{center}`, strings.Join(parts, ` \textbar{} `))
	}

	if len(doc.Education) > 0 {
		b.section("Education")
		writeEducation(b, doc.Education)
	}
	if len(doc.Experience) > 0 {
		b.section("Experience")
		writeExperience(b, doc.Experience, 4)
	}
	if len(doc.Projects) > 0 {
		b.section("Projects")
		writeProjects(b, doc.Projects, 200)
	}
	if !doc.Skills.IsEmpty() {
		b.section("Technical Skills")
		writeSkills(b, doc.Skills)
	}
	if len(doc.Certifications) > 0 {
		b.section("Certifications")
		writeCertifications(b, doc.Certifications)
	}
	return b.String()
}

func joinNonEmpty(sep string, parts ...string) string {
	var present []string
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, sep)
}
