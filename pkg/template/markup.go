package template

import (
	"html"
	"strconv"
	"strings"

	"github.com/dmitrymomot/mailmerge/pkg/docfile"
)

// The markup frame: encoding declaration plus baseline body styling that
// mail clients render consistently.
const (
	markupHeader = `<html><head><meta charset="utf-8"></head>` + "\n" +
		`<body style="font-family:'Microsoft YaHei',Arial,sans-serif;font-size:11pt;line-height:1.6">` + "\n"
	markupFooter = `</body></html>`
)

// markupWriter assembles the framed HTML document block by block.
type markupWriter struct {
	b strings.Builder
}

func newMarkupWriter() *markupWriter {
	w := &markupWriter{}
	w.b.WriteString(markupHeader)
	return w
}

func (w *markupWriter) String() string {
	return w.b.String() + markupFooter
}

// paragraph renders one paragraph. All-whitespace paragraphs become a single
// line break.
func (w *markupWriter) paragraph(p *docfile.Paragraph) {
	if strings.TrimSpace(p.Text()) == "" {
		w.b.WriteString("<br>\n")
		return
	}

	w.b.WriteString(`<p style="`)
	w.b.WriteString(strings.Join(paragraphStyle(p.Style), ";"))
	w.b.WriteString(`">`)
	for _, run := range p.Runs {
		w.b.WriteString(renderRun(run))
	}
	w.b.WriteString("</p>\n")
}

// table renders an embedded table as plain text cells; cell formatting is not
// preserved.
func (w *markupWriter) table(t *docfile.Table) {
	w.b.WriteString(`<table border="1" cellspacing="0" cellpadding="4" style="border-collapse:collapse">` + "\n")
	for _, row := range t.Rows {
		w.b.WriteString("<tr>")
		for _, cell := range row.Cells {
			w.b.WriteString("<td>")
			w.b.WriteString(html.EscapeString(cellText(cell)))
			w.b.WriteString("</td>")
		}
		w.b.WriteString("</tr>\n")
	}
	w.b.WriteString("</table>\n")
}

// cellText joins the cell's non-blank paragraph texts with a single space.
func cellText(cell docfile.TableCell) string {
	var parts []string
	for i := range cell.Paragraphs {
		if text := strings.TrimSpace(cell.Paragraphs[i].Text()); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// paragraphStyle builds the ordered CSS declarations for a paragraph.
// Alignment always gets a declaration, falling back to left; spacing and
// indent only when the document sets them explicitly.
func paragraphStyle(s docfile.ParagraphStyle) []string {
	align := "left"
	if s.Alignment != nil {
		switch *s.Alignment {
		case docfile.AlignCenter:
			align = "center"
		case docfile.AlignRight:
			align = "right"
		case docfile.AlignJustify:
			align = "justify"
		}
	}

	decls := []string{"text-align:" + align}
	if s.SpacingBefore != nil {
		decls = append(decls, "margin-top:"+formatPoints(*s.SpacingBefore))
	}
	if s.SpacingAfter != nil {
		decls = append(decls, "margin-bottom:"+formatPoints(*s.SpacingAfter))
	}
	if s.LeftIndent != nil {
		decls = append(decls, "margin-left:"+formatPoints(*s.LeftIndent))
	}
	if s.FirstLineIndent != nil {
		decls = append(decls, "text-indent:"+formatPoints(*s.FirstLineIndent))
	}
	return decls
}

// renderRun escapes the run text, then wraps it with the run's formatting.
func renderRun(r docfile.Run) string {
	text := html.EscapeString(r.Text)
	text = strings.ReplaceAll(text, "\n", "<br>")

	if r.Style.Bold {
		text = "<strong>" + text + "</strong>"
	}
	if r.Style.Italic {
		text = "<em>" + text + "</em>"
	}
	if r.Style.Underline {
		text = "<u>" + text + "</u>"
	}

	var decls []string
	if r.Style.FontFamily != "" {
		decls = append(decls, "font-family:'"+r.Style.FontFamily+"'")
	}
	if r.Style.FontSize != nil {
		decls = append(decls, "font-size:"+formatPoints(*r.Style.FontSize))
	}
	if r.Style.Color != "" {
		decls = append(decls, "color:#"+r.Style.Color)
	}
	if len(decls) > 0 {
		text = `<span style="` + strings.Join(decls, ";") + `">` + text + `</span>`
	}
	return text
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "pt"
}
