// Package docfile loads Word (.docx) documents into an ordered block model
// suitable for template extraction.
//
// A .docx file is an OPC container: a zip archive whose word/document.xml
// part carries the WordprocessingML body. The package decodes that body into
// a linear sequence of blocks, each a paragraph or a table, preserving source
// order. Paragraphs expose their runs with run-level styling (bold, italic,
// underline, font family, size, color) and paragraph-level styling
// (alignment, spacing, indent). Tables expose rows of cells, each cell an
// ordered sequence of paragraphs.
//
// Spacing and indent values are converted from twentieths of a point (the
// unit WordprocessingML stores) to points, and are nil when the document does
// not set them explicitly.
//
// # Usage
//
//	doc, err := docfile.Open("template.docx")
//	if err != nil {
//		// docfile.ErrNotFound or docfile.ErrInvalidDocument
//	}
//	for _, block := range doc.Blocks {
//		if block.Paragraph != nil {
//			fmt.Println(block.Paragraph.Text())
//		}
//	}
package docfile
