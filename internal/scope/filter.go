// Package scope builds the collection filters behind every list endpoint.
// It is the single place that knows the tenant-isolation rule: a
// supplier-role caller is always pinned to their own documents, whatever the
// query string asked for.
package scope

import (
	"fmt"
	"strings"

	"splybob/internal/auth"
)

// All is the query-parameter value meaning "do not filter on this field".
const All = "all"

type condition struct {
	column string
	exact  bool
	value  string
}

// Filter accumulates per-field constraints and renders them as a SQL WHERE
// clause with positional arguments. Free-text fields use case-insensitive
// substring matching; enumerated fields use exact matching.
type Filter struct {
	conds  []condition
	search *searchGroup
}

type searchGroup struct {
	term    string
	columns []string
}

// Exact adds an equality constraint. Empty and "all" values are ignored.
func (f *Filter) Exact(column, value string) {
	if value == "" || value == All {
		return
	}
	f.conds = append(f.conds, condition{column: column, exact: true, value: value})
}

// Match adds a case-insensitive substring constraint. Empty and "all" values
// are ignored.
func (f *Filter) Match(column, value string) {
	if value == "" || value == All {
		return
	}
	f.conds = append(f.conds, condition{column: column, value: value})
}

// Search adds an OR group matching term as a substring of any of the given
// columns. An empty term is ignored.
func (f *Filter) Search(term string, columns ...string) {
	if term == "" || len(columns) == 0 {
		return
	}
	f.search = &searchGroup{term: term, columns: columns}
}

// forceMatch replaces any existing constraint on column with a substring
// constraint on value. Used only by OwnerOverride so the ownership filter
// cannot be widened by client-supplied parameters.
func (f *Filter) forceMatch(column, value string) {
	kept := f.conds[:0]
	for _, c := range f.conds {
		if c.column != column {
			kept = append(kept, c)
		}
	}
	f.conds = kept
	f.conds = append(f.conds, condition{column: column, value: value})
}

// OwnerOverride pins the ownership column to the caller's own identity when
// the caller is a supplier. Managers and anonymous callers are left alone.
// Every supplier-visible list query must pass through here; the rule lives
// nowhere else.
func OwnerOverride(ident auth.Identity, f *Filter, ownerColumn string) {
	if !ident.IsSupplier() {
		return
	}
	f.forceMatch(ownerColumn, ident.OwnerKey())
}

// Clause renders the accumulated constraints as a WHERE clause (with leading
// space) and its arguments. With no constraints it returns an empty string.
func (f *Filter) Clause() (string, []any) {
	var parts []string
	var args []any

	for _, c := range f.conds {
		args = append(args, c.argValue())
		if c.exact {
			parts = append(parts, fmt.Sprintf("%s = $%d", c.column, len(args)))
		} else {
			parts = append(parts, fmt.Sprintf("%s ILIKE $%d", c.column, len(args)))
		}
	}

	if f.search != nil {
		args = append(args, "%"+escapeLike(f.search.term)+"%")
		n := len(args)
		var ors []string
		for _, col := range f.search.columns {
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, n))
		}
		parts = append(parts, "("+strings.Join(ors, " OR ")+")")
	}

	if len(parts) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

func (c condition) argValue() any {
	if c.exact {
		return c.value
	}
	return "%" + escapeLike(c.value) + "%"
}

// escapeLike neutralizes LIKE metacharacters in user input so a filter value
// is matched literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
