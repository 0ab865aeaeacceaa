package catalog

import "sync"

// Selection tracks which catalog entity is currently chosen for a pending
// record. Code and display name change together; there is no state where one
// is set and the other stale.
type Selection struct {
	mu   sync.Mutex
	code string
	name string
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Select sets the chosen entity, replacing any prior selection. Selecting
// never touches the filtered list, so the operator can switch without
// re-searching.
func (s *Selection) Select(e Filterable) {
	code, name := e.FilterFields()
	s.mu.Lock()
	s.code, s.name = code, name
	s.mu.Unlock()
}

// Clear resets the selection to empty.
func (s *Selection) Clear() {
	s.mu.Lock()
	s.code, s.name = "", ""
	s.mu.Unlock()
}

// IsSelected reports whether the given code is the current choice. Derived
// read for UI highlighting.
func (s *Selection) IsSelected(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code != "" && s.code == code
}

// Code returns the selected code, or "".
func (s *Selection) Code() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code
}

// Name returns the selected display name, or "".
func (s *Selection) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}
