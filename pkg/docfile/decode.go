package docfile

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WordprocessingML stores spacing and indent in twentieths of a point.
const twipsPerPoint = 20

type xmlValue struct {
	Val string `xml:"val,attr"`
}

// xmlToggle models on/off run properties (w:b, w:i). A present element with
// no val attribute means "on"; val of 0/false/none means "off".
type xmlToggle struct {
	Val string `xml:"val,attr"`
}

func (t *xmlToggle) enabled() bool {
	if t == nil {
		return false
	}
	switch strings.ToLower(t.Val) {
	case "0", "false", "none":
		return false
	}
	return true
}

type xmlFonts struct {
	ASCII    string `xml:"ascii,attr"`
	EastAsia string `xml:"eastAsia,attr"`
}

type xmlRunProps struct {
	Bold      *xmlToggle `xml:"b"`
	Italic    *xmlToggle `xml:"i"`
	Underline *xmlToggle `xml:"u"`
	Fonts     *xmlFonts  `xml:"rFonts"`
	Size      *xmlValue  `xml:"sz"`
	Color     *xmlValue  `xml:"color"`
}

type xmlSpacing struct {
	Before *int `xml:"before,attr"`
	After  *int `xml:"after,attr"`
}

type xmlIndent struct {
	Left      *int `xml:"left,attr"`
	FirstLine *int `xml:"firstLine,attr"`
}

type xmlParaProps struct {
	Justification *xmlValue   `xml:"jc"`
	Spacing       *xmlSpacing `xml:"spacing"`
	Indent        *xmlIndent  `xml:"ind"`
}

// xmlRun decodes a w:r element, preserving the order of text, break, and tab
// children so the extracted text matches the visible document.
type xmlRun struct {
	props *xmlRunProps
	text  string
}

func (r *xmlRun) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "rPr":
				props := &xmlRunProps{}
				if err := d.DecodeElement(props, &el); err != nil {
					return err
				}
				r.props = props
			case "t":
				var text struct {
					Value string `xml:",chardata"`
				}
				if err := d.DecodeElement(&text, &el); err != nil {
					return err
				}
				r.text += text.Value
			case "br", "cr":
				r.text += "\n"
				if err := d.Skip(); err != nil {
					return err
				}
			case "tab":
				r.text += "\t"
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

type xmlParagraph struct {
	Props *xmlParaProps `xml:"pPr"`
	Runs  []xmlRun      `xml:"r"`
}

type xmlTableCell struct {
	Paragraphs []xmlParagraph `xml:"p"`
}

type xmlTableRow struct {
	Cells []xmlTableCell `xml:"tc"`
}

type xmlTable struct {
	Rows []xmlTableRow `xml:"tr"`
}

// decodeDocument decodes a word/document.xml body into the block model.
func decodeDocument(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	doc := &Document{}

	inBody := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}

		el, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch {
		case el.Name.Local == "body":
			inBody = true
		case inBody && el.Name.Local == "p":
			var xp xmlParagraph
			if err := dec.DecodeElement(&xp, &el); err != nil {
				return nil, fmt.Errorf("decode paragraph: %w", err)
			}
			p := convertParagraph(&xp)
			doc.Blocks = append(doc.Blocks, Block{Paragraph: p})
		case inBody && el.Name.Local == "tbl":
			var xt xmlTable
			if err := dec.DecodeElement(&xt, &el); err != nil {
				return nil, fmt.Errorf("decode table: %w", err)
			}
			doc.Blocks = append(doc.Blocks, Block{Table: convertTable(&xt)})
		case inBody:
			// sectPr, bookmarks, and other body-level elements carry no
			// template content.
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("decode document: %w", err)
			}
		}
	}

	return doc, nil
}

func convertParagraph(xp *xmlParagraph) *Paragraph {
	p := &Paragraph{}
	if xp.Props != nil {
		p.Style = convertParaStyle(xp.Props)
	}
	for i := range xp.Runs {
		xr := &xp.Runs[i]
		run := Run{Text: xr.text}
		if xr.props != nil {
			run.Style = convertRunStyle(xr.props)
		}
		p.Runs = append(p.Runs, run)
	}
	return p
}

func convertParaStyle(props *xmlParaProps) ParagraphStyle {
	var style ParagraphStyle
	if props.Justification != nil {
		if a, ok := parseAlignment(props.Justification.Val); ok {
			style.Alignment = &a
		}
	}
	if props.Spacing != nil {
		style.SpacingBefore = twipsToPoints(props.Spacing.Before)
		style.SpacingAfter = twipsToPoints(props.Spacing.After)
	}
	if props.Indent != nil {
		style.LeftIndent = twipsToPoints(props.Indent.Left)
		style.FirstLineIndent = twipsToPoints(props.Indent.FirstLine)
	}
	return style
}

func convertRunStyle(props *xmlRunProps) RunStyle {
	style := RunStyle{
		Bold:   props.Bold.enabled(),
		Italic: props.Italic.enabled(),
	}
	if props.Underline != nil && !strings.EqualFold(props.Underline.Val, "none") {
		style.Underline = true
	}
	if props.Fonts != nil {
		style.FontFamily = props.Fonts.ASCII
		if style.FontFamily == "" {
			style.FontFamily = props.Fonts.EastAsia
		}
	}
	if props.Size != nil {
		if half, err := strconv.ParseFloat(props.Size.Val, 64); err == nil {
			pt := half / 2
			style.FontSize = &pt
		}
	}
	if props.Color != nil && !strings.EqualFold(props.Color.Val, "auto") {
		style.Color = strings.ToUpper(props.Color.Val)
	}
	return style
}

func convertTable(xt *xmlTable) *Table {
	t := &Table{}
	for _, xrow := range xt.Rows {
		row := TableRow{}
		for _, xcell := range xrow.Cells {
			cell := TableCell{}
			for i := range xcell.Paragraphs {
				cell.Paragraphs = append(cell.Paragraphs, *convertParagraph(&xcell.Paragraphs[i]))
			}
			row.Cells = append(row.Cells, cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func parseAlignment(val string) (Alignment, bool) {
	switch strings.ToLower(val) {
	case "left", "start":
		return AlignLeft, true
	case "center":
		return AlignCenter, true
	case "right", "end":
		return AlignRight, true
	case "both", "justify", "distribute":
		return AlignJustify, true
	}
	return 0, false
}

func twipsToPoints(v *int) *float64 {
	if v == nil {
		return nil
	}
	pt := float64(*v) / twipsPerPoint
	return &pt
}
