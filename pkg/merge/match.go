package merge

import (
	"sort"
	"strings"
)

// ColumnRoles classifies dataset columns against a template's placeholders.
// NameColumn and AddressColumn are empty when no header satisfies the
// heuristic. Matched and Unmatched partition the placeholder set and are
// sorted for deterministic output.
type ColumnRoles struct {
	NameColumn    string
	AddressColumn string
	Matched       []string
	Unmatched     []string
}

var (
	nameTokens    = []string{"姓名", "名字"}
	addressTokens = []string{"邮箱", "邮件"}
)

// Match derives column roles from placeholders and ordered column headers.
// It is a pure function and never fails; empty inputs yield empty roles.
func Match(placeholders map[string]struct{}, columns []string) ColumnRoles {
	roles := ColumnRoles{
		Matched:   []string{},
		Unmatched: []string{},
	}

	for _, col := range columns {
		if roles.NameColumn == "" && matchesAny(col, nameTokens, "name") {
			roles.NameColumn = col
		}
		if roles.AddressColumn == "" && matchesAny(col, addressTokens, "email") {
			roles.AddressColumn = col
		}
	}

	columnSet := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		columnSet[col] = struct{}{}
	}
	for p := range placeholders {
		if _, ok := columnSet[p]; ok {
			roles.Matched = append(roles.Matched, p)
		} else {
			roles.Unmatched = append(roles.Unmatched, p)
		}
	}
	sort.Strings(roles.Matched)
	sort.Strings(roles.Unmatched)

	return roles
}

// matchesAny reports whether the header contains one of the raw tokens, or
// the Latin token in any letter case.
func matchesAny(header string, raw []string, latin string) bool {
	for _, token := range raw {
		if strings.Contains(header, token) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(header), latin)
}
