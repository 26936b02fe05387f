package template

import (
	"regexp"

	"github.com/dmitrymomot/mailmerge/pkg/docfile"
)

// placeholderPattern matches {name} substitution tokens in template text.
var placeholderPattern = regexp.MustCompile(`\{([^}]+)\}`)

// Template is an immutable parsed template: HTML markup with the distinct
// placeholder names found in it. Subject is set only for markdown templates
// that declare one in their frontmatter.
type Template struct {
	Markup       string
	Subject      string
	Placeholders map[string]struct{}
}

// Parse converts a loaded Word document into a Template.
//
// Placeholders are collected from the concatenated run text of each
// body-level paragraph. Table cells contribute visible text to the markup but
// are never scanned for placeholders (see the package comment).
func Parse(doc *docfile.Document) *Template {
	tpl := &Template{Placeholders: make(map[string]struct{})}

	w := newMarkupWriter()
	for _, block := range doc.Blocks {
		switch {
		case block.Paragraph != nil:
			extractInto(tpl.Placeholders, block.Paragraph.Text())
			w.paragraph(block.Paragraph)
		case block.Table != nil:
			w.table(block.Table)
		}
	}

	tpl.Markup = w.String()
	return tpl
}

// ParseFile loads the Word document at path and parses it.
// Fails with docfile.ErrNotFound or docfile.ErrInvalidDocument.
func ParseFile(path string) (*Template, error) {
	doc, err := docfile.Open(path)
	if err != nil {
		return nil, err
	}
	return Parse(doc), nil
}

// extractInto adds every distinct placeholder name found in text to set.
func extractInto(set map[string]struct{}, text string) {
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		set[m[1]] = struct{}{}
	}
}
