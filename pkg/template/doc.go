// Package template turns a loaded document into a renderable mail-merge
// template: an HTML markup string plus the set of {placeholder} variables
// found in it.
//
// Two template sources are supported:
//
//   - Word documents (via docfile): paragraph and run formatting is converted
//     to inline-styled HTML, tables become plain-text HTML tables, and
//     placeholders are collected from paragraph run text.
//   - Markdown files with optional YAML frontmatter: the body is converted
//     with goldmark and a Subject key in the frontmatter becomes the
//     template's default subject.
//
// Placeholders are tokens of the form {name}, matched by the pattern
// \{([^}]+)\}. Duplicate occurrences collapse into one entry. Table cell text
// is intentionally not scanned for placeholders: existing templates rely on
// that asymmetry, and scanning cells would change the variable set extracted
// from them.
package template
