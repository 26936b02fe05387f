package merge

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/mailmerge/pkg/dataset"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

var (
	strictPolicy *bluemonday.Policy
	policyOnce   sync.Once
)

// sanitizeValue strips any markup from a row value so spreadsheet content is
// substituted as text, never as HTML.
func sanitizeValue(v string) string {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy.Sanitize(v)
}

// Render substitutes every placeholder token in markup against row.
//
// A placeholder whose name is a key of row is replaced with the sanitized
// value; any other placeholder is replaced with a visible marker embedding
// the original token. All replacements happen in one pass over the markup
// (strings.Replacer), so a substituted value containing brace syntax is never
// itself treated as a token. Pure: identical inputs render identical output.
func Render(markup string, row dataset.Row, placeholders map[string]struct{}) string {
	if len(placeholders) == 0 {
		return markup
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for name := range placeholders {
		token := "{" + name + "}"
		value, ok := row[name]
		if !ok {
			pairs = append(pairs, token, "[unmatched variable: "+token+"]")
			continue
		}
		pairs = append(pairs, token, sanitizeValue(value))
	}
	return strings.NewReplacer(pairs...).Replace(markup)
}

// RenderedMessage is one personalized message, built per row and consumed
// immediately by preview or dispatch.
type RenderedMessage struct {
	RecipientName    string
	RecipientAddress string
	Subject          string
	BodyHTML         string
}

// Preview renders one row into a complete message. The subject is
// substituted with exactly the same semantics as the body.
func Preview(tpl *template.Template, row dataset.Row, roles ColumnRoles, subject string) RenderedMessage {
	return RenderedMessage{
		RecipientName:    row[roles.NameColumn],
		RecipientAddress: row[roles.AddressColumn],
		Subject:          Render(subject, row, tpl.Placeholders),
		BodyHTML:         Render(tpl.Markup, row, tpl.Placeholders),
	}
}
