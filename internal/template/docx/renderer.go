package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"resumeforge/pkg/models"
)

// Renderer composes a DOCX from the document model. There is exactly one
// section order regardless of the PDF style chosen; this output exists as
// the universal editable-document export. The theme color only affects
// heading text.
type Renderer struct {
	themeColor string
}

func NewRenderer(themeColor string) *Renderer {
	return &Renderer{themeColor: themeColor}
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Render walks the fixed section order and packages the result as an
// OOXML archive.
func (r *Renderer) Render(doc *models.ResumeDocument) ([]byte, error) {
	b := newDocBuilder(headingHex(r.themeColor))

	b.title(doc.DisplayName())
	pi := doc.PersonalInfo
	b.contact(pi.Email, pi.Phone, pi.Location)
	b.contact(cleanLink(pi.LinkedIn), cleanLink(pi.GitHub), cleanLink(pi.Website), cleanLink(pi.Portfolio))

	if doc.Summary != "" {
		b.heading("Professional Summary")
		b.paragraph(doc.Summary)
	}

	if !doc.Skills.IsEmpty() {
		b.heading("Skills")
		if doc.Skills.Grouped() {
			for _, group := range doc.Skills.Groups {
				label := group.Category
				if label == "" {
					label = "Other"
				}
				b.bullet(label + ": " + strings.Join(group.Items, ", "))
			}
		} else {
			b.paragraph(strings.Join(doc.Skills.Flat, ", "))
		}
	}

	if len(doc.Projects) > 0 {
		b.heading("Projects")
		for _, proj := range doc.Projects {
			b.boldParagraph(proj.Name)
			b.paragraph(proj.Description)
			for _, h := range proj.Highlights {
				b.bullet(h)
			}
			if len(proj.Technologies) > 0 {
				b.paragraph("Technologies: " + strings.Join(proj.Technologies, ", "))
			}
		}
	}

	if len(doc.Experience) > 0 {
		b.heading("Experience")
		for _, exp := range doc.Experience {
			header := joinNonEmpty(", ", exp.Position, exp.Company)
			if period := exp.Period(); period != "" {
				header = joinNonEmpty("  |  ", header, period)
			}
			b.boldParagraph(header)
			if exp.Location != "" {
				b.paragraph(exp.Location)
			}
			for _, d := range exp.Description {
				b.bullet(d)
			}
			for _, a := range exp.Achievements {
				b.bullet(a)
			}
		}
	}

	if len(doc.Certifications) > 0 {
		b.heading("Certifications")
		for _, cert := range doc.Certifications {
			line := joinNonEmpty(" - ", cert.Name, cert.Issuer)
			if cert.Date != "" {
				line += " (" + cert.Date + ")"
			}
			b.bullet(line)
		}
	}

	if len(doc.Education) > 0 {
		b.heading("Education")
		for _, edu := range doc.Education {
			header := joinNonEmpty("  |  ", edu.Institution, edu.Period())
			b.boldParagraph(header)
			detail := edu.DegreeLine()
			if edu.Grade != "" {
				detail = joinNonEmpty(" | ", detail, "GPA: "+edu.Grade)
			}
			b.paragraph(detail)
		}
	}

	if len(doc.Languages) > 0 {
		b.heading("Languages")
		for _, lang := range doc.Languages {
			b.bullet(lang)
		}
	}

	if len(doc.Awards) > 0 {
		b.heading("Awards")
		for _, award := range doc.Awards {
			b.bullet(award)
		}
	}

	return packageDocx(b.documentXML())
}

// packageDocx writes the OOXML archive parts around the document body.
func packageDocx(documentXML string) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML},
	}
	for _, part := range parts {
		f, err := w.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// docBuilder accumulates WordprocessingML paragraphs.
type docBuilder struct {
	sb         strings.Builder
	headingHex string
}

func newDocBuilder(headingHex string) *docBuilder {
	return &docBuilder{headingHex: headingHex}
}

func (b *docBuilder) title(text string) {
	b.run(text, runProps{Bold: true, Size: 36, Color: b.headingHex})
}

func (b *docBuilder) heading(text string) {
	b.run(text, runProps{Bold: true, Size: 26, Color: b.headingHex})
}

func (b *docBuilder) paragraph(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.run(text, runProps{Size: 21})
}

func (b *docBuilder) boldParagraph(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.run(text, runProps{Bold: true, Size: 22})
}

func (b *docBuilder) bullet(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.run("• "+text, runProps{Size: 21, Indent: 360})
}

func (b *docBuilder) contact(parts ...string) {
	var present []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			present = append(present, p)
		}
	}
	if len(present) == 0 {
		return
	}
	b.run(strings.Join(present, "  |  "), runProps{Size: 19, Color: "5A5A5A"})
}

type runProps struct {
	Bold   bool
	Size   int // half-points
	Color  string
	Indent int // twentieths of a point
}

func (b *docBuilder) run(text string, props runProps) {
	b.sb.WriteString("<w:p>")
	if props.Indent > 0 {
		fmt.Fprintf(&b.sb, `<w:pPr><w:ind w:left="%d"/></w:pPr>`, props.Indent)
	}
	b.sb.WriteString("<w:r><w:rPr>")
	if props.Bold {
		b.sb.WriteString("<w:b/>")
	}
	if props.Color != "" {
		fmt.Fprintf(&b.sb, `<w:color w:val="%s"/>`, props.Color)
	}
	if props.Size > 0 {
		fmt.Fprintf(&b.sb, `<w:sz w:val="%d"/>`, props.Size)
	}
	b.sb.WriteString(`</w:rPr><w:t xml:space="preserve">`)
	b.sb.WriteString(escapeXML(text))
	b.sb.WriteString("</w:t></w:r></w:p>")
}

func (b *docBuilder) documentXML() string {
	var out strings.Builder
	out.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	out.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	out.WriteString(b.sb.String())
	out.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1080" w:right="1080" w:bottom="1080" w:left="1080"/></w:sectPr>`)
	out.WriteString(`</w:body></w:document>`)
	return out.String()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// headingHex normalizes a theme color to the bare uppercase hex form
// WordprocessingML expects, defaulting when the input is malformed.
func headingHex(themeColor string) string {
	hex := strings.TrimPrefix(strings.TrimSpace(themeColor), "#")
	if len(hex) != 6 {
		return "3B82F6"
	}
	for _, c := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return "3B82F6"
		}
	}
	return strings.ToUpper(hex)
}

func cleanLink(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "www.")
	return strings.TrimSuffix(url, "/")
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
