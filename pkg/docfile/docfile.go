package docfile

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Alignment is a paragraph justification value.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// ParagraphStyle holds paragraph-level formatting. Pointer fields are nil
// when the document does not set the property explicitly.
type ParagraphStyle struct {
	Alignment       *Alignment
	SpacingBefore   *float64 // points
	SpacingAfter    *float64 // points
	LeftIndent      *float64 // points
	FirstLineIndent *float64 // points
}

// RunStyle holds run-level character formatting.
type RunStyle struct {
	FontFamily string
	Color      string   // RRGGBB hex, empty when unset
	FontSize   *float64 // points
	Bold       bool
	Italic     bool
	Underline  bool
}

// Run is a contiguous span of text sharing one character style.
type Run struct {
	Text  string
	Style RunStyle
}

// Paragraph is an ordered sequence of runs with paragraph-level style.
type Paragraph struct {
	Runs  []Run
	Style ParagraphStyle
}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// TableCell is an ordered sequence of paragraphs.
type TableCell struct {
	Paragraphs []Paragraph
}

// TableRow is an ordered sequence of cells.
type TableRow struct {
	Cells []TableCell
}

// Table is an ordered sequence of rows.
type Table struct {
	Rows []TableRow
}

// Block is one body-level element: exactly one of Paragraph or Table is set.
type Block struct {
	Paragraph *Paragraph
	Table     *Table
}

// Document is the decoded body of a .docx file, blocks in source order.
type Document struct {
	Blocks []Block
}

const documentPart = "word/document.xml"

// Open reads and decodes the document at path.
// Returns ErrNotFound if the path does not resolve, ErrInvalidDocument if the
// file is not a readable .docx container.
func Open(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
		}
		doc, err := decodeDocument(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
		}
		return doc, nil
	}

	return nil, fmt.Errorf("%w: %s: missing %s", ErrInvalidDocument, path, documentPart)
}
