// Package merge binds template placeholders to dataset columns and renders
// personalized messages.
//
// Match classifies columns into roles: the recipient-name column (header
// contains 姓名, 名字, or "name"), the recipient-address column (header
// contains 邮箱, 邮件, or "email"), and the matched/unmatched split of
// template placeholders against exact column names. The two heuristic scans
// are independent; a header like "姓名email" can legitimately fill both
// slots.
//
// Render substitutes every known placeholder token literally, in a single
// pass over the markup, so substituted row content is never re-scanned as
// template syntax. Unmatched placeholders are replaced with a visible
// [unmatched variable: {name}] marker rather than dropped silently. Row
// values are stripped of any markup before substitution, so spreadsheet
// content cannot inject tags into the rendered body.
package merge
