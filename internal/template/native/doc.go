package native

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"resumeforge/pkg/models"
)

// Renderer composes a PDF directly from the document model, without any
// external process invocation.
type Renderer interface {
	Render(doc *models.ResumeDocument) ([]byte, error)
}

// rgb is the native color representation used by the layout backend.
type rgb struct {
	R, G, B int
}

// defaultTheme matches the built-in primary color of the markup skeletons.
var defaultTheme = rgb{R: 0x3B, G: 0x82, B: 0xF6}

// parseHexColor converts a 6-digit hex string (with or without a leading
// '#') into rgb. Malformed input yields the default theme instead of an
// error; theme colors come straight from a UI color picker and a bad
// value should not fail a render.
func parseHexColor(hex string) rgb {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return defaultTheme
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return defaultTheme
	}
	return rgb{R: r, G: g, B: b}
}

// styleSheet carries the constants that differ between visual styles.
// Everything else about layout composition is shared.
type styleSheet struct {
	FontFamily    string // Helvetica or Times
	NameSize      float64
	HeadingSize   float64
	BodySize      float64
	SmallSize     float64
	LineHeight    float64
	Margin        float64
	NameUpper     bool
	NameCentered  bool
	HeadingUpper  bool
	HeadingRule   bool
	HeadingThemed bool // heading text in theme color instead of near-black
	RuleWidth     float64
	SectionGap    float64
	Theme         rgb
}

// pdfDoc wraps gofpdf with the flowable primitives the section emitters
// use: headings, paragraphs, bullets, two-column rows, rules, spacers.
type pdfDoc struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	style styleSheet
}

func newDoc(style styleSheet) *pdfDoc {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(style.Margin, style.Margin, style.Margin)
	pdf.SetAutoPageBreak(true, style.Margin)
	pdf.AddPage()
	return &pdfDoc{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		style: style,
	}
}

func (d *pdfDoc) contentWidth() float64 {
	w, _ := d.pdf.GetPageSize()
	left, _, right, _ := d.pdf.GetMargins()
	return w - left - right
}

// name renders the resume holder's name heading.
func (d *pdfDoc) name(text string) {
	if d.style.NameUpper {
		text = strings.ToUpper(text)
	}
	align := "L"
	if d.style.NameCentered {
		align = "C"
	}
	d.pdf.SetFont(d.style.FontFamily, "B", d.style.NameSize)
	d.pdf.SetTextColor(d.style.Theme.R, d.style.Theme.G, d.style.Theme.B)
	d.pdf.CellFormat(0, d.style.NameSize*0.5, d.tr(text), "", 1, align, false, 0, "")
	d.pdf.SetTextColor(40, 40, 40)
}

// contactLine renders contact details joined with a separator, skipping
// empty parts.
func (d *pdfDoc) contactLine(parts ...string) {
	var present []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			present = append(present, p)
		}
	}
	if len(present) == 0 {
		return
	}
	align := "L"
	if d.style.NameCentered {
		align = "C"
	}
	d.pdf.SetFont(d.style.FontFamily, "", d.style.SmallSize)
	d.pdf.SetTextColor(90, 90, 90)
	d.pdf.CellFormat(0, d.style.LineHeight, d.tr(strings.Join(present, "  |  ")), "", 1, align, false, 0, "")
	d.pdf.SetTextColor(40, 40, 40)
}

// sectionHeading renders a section title in the style's register, with an
// optional rule underneath.
func (d *pdfDoc) sectionHeading(title string) {
	if d.style.HeadingUpper {
		title = strings.ToUpper(title)
	}
	d.pdf.Ln(d.style.SectionGap)
	d.pdf.SetFont(d.style.FontFamily, "B", d.style.HeadingSize)
	if d.style.HeadingThemed {
		d.pdf.SetTextColor(d.style.Theme.R, d.style.Theme.G, d.style.Theme.B)
	} else {
		d.pdf.SetTextColor(30, 30, 30)
	}
	d.pdf.CellFormat(0, d.style.HeadingSize*0.55, d.tr(title), "", 1, "L", false, 0, "")
	if d.style.HeadingRule {
		d.rule()
	}
	d.pdf.SetTextColor(40, 40, 40)
	d.pdf.Ln(1)
}

// paragraph renders wrapped body text.
func (d *pdfDoc) paragraph(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	d.pdf.SetFont(d.style.FontFamily, "", d.style.BodySize)
	d.pdf.MultiCell(0, d.style.LineHeight, d.tr(text), "", "L", false)
}

// bullet renders one indented bullet line.
func (d *pdfDoc) bullet(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	d.pdf.SetFont(d.style.FontFamily, "", d.style.BodySize)
	d.pdf.SetX(d.style.Margin + 3)
	d.pdf.MultiCell(d.contentWidth()-3, d.style.LineHeight, d.tr("• "+text), "", "L", false)
}

// twoCol renders a bold left column with a right-aligned plain column on
// the same line, the backbone of every entry header row.
func (d *pdfDoc) twoCol(left, right string) {
	width := d.contentWidth()
	rightWidth := width * 0.3
	d.pdf.SetFont(d.style.FontFamily, "B", d.style.BodySize)
	d.pdf.CellFormat(width-rightWidth, d.style.LineHeight, d.tr(left), "", 0, "L", false, 0, "")
	d.pdf.SetFont(d.style.FontFamily, "", d.style.SmallSize)
	d.pdf.SetTextColor(90, 90, 90)
	d.pdf.CellFormat(rightWidth, d.style.LineHeight, d.tr(right), "", 1, "R", false, 0, "")
	d.pdf.SetTextColor(40, 40, 40)
}

// labelRow renders a bold label column with wrapped text beside it, used
// by the styles that show skills as a two-column table.
func (d *pdfDoc) labelRow(label, text string) {
	width := d.contentWidth()
	labelWidth := width * 0.28
	y := d.pdf.GetY()
	d.pdf.SetFont(d.style.FontFamily, "B", d.style.BodySize)
	d.pdf.MultiCell(labelWidth, d.style.LineHeight, d.tr(label), "", "L", false)
	yAfterLabel := d.pdf.GetY()
	d.pdf.SetXY(d.style.Margin+labelWidth, y)
	d.pdf.SetFont(d.style.FontFamily, "", d.style.BodySize)
	d.pdf.MultiCell(width-labelWidth, d.style.LineHeight, d.tr(text), "", "L", false)
	if d.pdf.GetY() < yAfterLabel {
		d.pdf.SetY(yAfterLabel)
	}
}

// subLine renders a secondary line under an entry header.
func (d *pdfDoc) subLine(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	d.pdf.SetFont(d.style.FontFamily, "I", d.style.SmallSize)
	d.pdf.SetTextColor(90, 90, 90)
	d.pdf.CellFormat(0, d.style.LineHeight, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.SetTextColor(40, 40, 40)
}

// rule draws a horizontal line across the content area in the theme color.
func (d *pdfDoc) rule() {
	d.pdf.SetDrawColor(d.style.Theme.R, d.style.Theme.G, d.style.Theme.B)
	d.pdf.SetLineWidth(d.style.RuleWidth)
	y := d.pdf.GetY() + 0.8
	w, _ := d.pdf.GetPageSize()
	d.pdf.Line(d.style.Margin, y, w-d.style.Margin, y)
	d.pdf.Ln(2)
}

func (d *pdfDoc) spacer(h float64) {
	d.pdf.Ln(h)
}

// output finalizes the document and returns the PDF bytes.
func (d *pdfDoc) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
