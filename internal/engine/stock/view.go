// Package stock implements the client-side stock view: a point-in-time
// net-quantity snapshot per product, partitioned by category tab, with its
// own search filter independent of the ledger's date window.
package stock

import (
	"context"
	"sync"

	"jaego/internal/domain/catalog"
	"jaego/internal/domain/stock"
	enginecatalog "jaego/internal/engine/catalog"
)

// Backend fetches the rollup. The api client implements it.
type Backend interface {
	StockLines(ctx context.Context, category catalog.Category) ([]stock.Line, error)
}

// View holds the current stock snapshot for the active category tab. Every
// load is a full fetch+replace; switching tabs resets the search term, as
// the operator is looking at a different population. Safe for concurrent
// use.
type View struct {
	backend Backend

	mu       sync.Mutex
	category catalog.Category
	lines    []stock.Line
	term     string

	// gen implements last-request-wins across tab switches.
	gen uint64
}

// NewView creates a stock view starting on the finished-goods tab, matching
// the entry screen of the original flow.
func NewView(backend Backend) *View {
	return &View{backend: backend, category: catalog.CategoryFinished}
}

// Category returns the active tab.
func (v *View) Category() catalog.Category {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.category
}

// SetCategory switches the active tab and clears the search term. It
// reports whether the tab changed; when it did, the caller schedules
// exactly one Load.
func (v *View) SetCategory(category catalog.Category) bool {
	if !category.Valid() {
		return false
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if category == v.category {
		return false
	}
	v.category = category
	v.term = ""
	return true
}

// Load fetches the rollup for the active tab and replaces the snapshot. A
// result that arrives after a newer Load started is discarded; the current
// view is returned instead. On failure the snapshot is unchanged.
func (v *View) Load(ctx context.Context) ([]stock.Line, error) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	category := v.category
	v.mu.Unlock()

	lines, err := v.backend.StockLines(ctx, category)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.gen {
		return v.copyLocked(), nil
	}
	if err != nil {
		return nil, err
	}

	v.lines = lines
	return v.copyLocked(), nil
}

// Lines returns the full snapshot for the active tab.
func (v *View) Lines() []stock.Line {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.copyLocked()
}

// Term returns the active search term.
func (v *View) Term() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.term
}

// SetTerm sets the search term.
func (v *View) SetTerm(term string) {
	v.mu.Lock()
	v.term = term
	v.mu.Unlock()
}

// Visible returns the snapshot projected through the search filter.
func (v *View) Visible() []stock.Line {
	v.mu.Lock()
	term := v.term
	lines := v.copyLocked()
	v.mu.Unlock()
	return enginecatalog.Filter(term, lines)
}

func (v *View) copyLocked() []stock.Line {
	out := make([]stock.Line, len(v.lines))
	copy(out, v.lines)
	return out
}
