// Package catalog holds the client-side catalog cache and the selection
// state for a pending record.
package catalog

import "strings"

// Filterable is anything searchable by code and display name.
type Filterable interface {
	FilterFields() (code, name string)
}

// Filter returns the entities whose code or name contains term,
// case-insensitive. An empty term returns the snapshot unchanged. The result
// is always a subset of snapshot, and filtering is idempotent.
func Filter[T Filterable](term string, snapshot []T) []T {
	if term == "" {
		return snapshot
	}
	needle := strings.ToLower(term)
	out := make([]T, 0, len(snapshot))
	for _, e := range snapshot {
		code, name := e.FilterFields()
		if strings.Contains(strings.ToLower(code), needle) ||
			strings.Contains(strings.ToLower(name), needle) {
			out = append(out, e)
		}
	}
	return out
}
