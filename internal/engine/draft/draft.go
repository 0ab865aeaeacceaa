package draft

import (
	"context"
	"sync"

	"jaego/internal/core/dateutil"
	"jaego/internal/domain/ledger"
	"jaego/internal/engine/catalog"
)

// Creator persists a completed draft. The ledger store implements it.
type Creator interface {
	Create(ctx context.Context, rec ledger.NewRecord) (string, error)
}

// Draft is the in-progress record for one entry view: date, entity
// selections, quantity and free-text note, plus the per-list search terms.
// All of it resets together.
type Draft struct {
	mu   sync.Mutex
	kind ledger.Kind

	occurredOn dateutil.Date
	note       string

	counter      *Counter
	product      *catalog.Selection
	counterparty *catalog.Selection

	productTerm      string
	counterpartyTerm string
}

// New creates a draft for the given ledger kind, initialized to today with
// quantity 1.
func New(kind ledger.Kind) *Draft {
	return &Draft{
		kind:         kind,
		occurredOn:   dateutil.Today(),
		counter:      NewCounter(),
		product:      catalog.NewSelection(),
		counterparty: catalog.NewSelection(),
	}
}

// Kind returns the ledger kind this draft composes for.
func (d *Draft) Kind() ledger.Kind { return d.kind }

// Counter exposes the quantity counter. The counter and the draft's quantity
// are the same value; there is no second copy to drift.
func (d *Draft) Counter() *Counter { return d.counter }

// Product exposes the product selection.
func (d *Draft) Product() *catalog.Selection { return d.product }

// Counterparty exposes the counterparty selection.
func (d *Draft) Counterparty() *catalog.Selection { return d.counterparty }

// OccurredOn returns the draft date.
func (d *Draft) OccurredOn() dateutil.Date {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.occurredOn
}

// SetOccurredOn sets the draft date. Invalid input is ignored.
func (d *Draft) SetOccurredOn(date dateutil.Date) {
	if !date.Valid() {
		return
	}
	d.mu.Lock()
	d.occurredOn = date
	d.mu.Unlock()
}

// Note returns the free-text note.
func (d *Draft) Note() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.note
}

// SetNote sets the free-text note.
func (d *Draft) SetNote(note string) {
	d.mu.Lock()
	d.note = note
	d.mu.Unlock()
}

// ProductTerm returns the product search term.
func (d *Draft) ProductTerm() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.productTerm
}

// SetProductTerm sets the product search term.
func (d *Draft) SetProductTerm(term string) {
	d.mu.Lock()
	d.productTerm = term
	d.mu.Unlock()
}

// CounterpartyTerm returns the counterparty search term.
func (d *Draft) CounterpartyTerm() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.counterpartyTerm
}

// SetCounterpartyTerm sets the counterparty search term.
func (d *Draft) SetCounterpartyTerm(term string) {
	d.mu.Lock()
	d.counterpartyTerm = term
	d.mu.Unlock()
}

// Reset reinitializes the draft: today's date, quantity 1, cleared
// selections, terms and note.
func (d *Draft) Reset() {
	d.mu.Lock()
	d.occurredOn = dateutil.Today()
	d.note = ""
	d.productTerm = ""
	d.counterpartyTerm = ""
	d.mu.Unlock()

	d.counter.Reset()
	d.product.Clear()
	d.counterparty.Clear()
}

// Record assembles the current state into a create payload.
func (d *Draft) Record() ledger.NewRecord {
	d.mu.Lock()
	occurredOn, note := d.occurredOn, d.note
	d.mu.Unlock()

	rec := ledger.NewRecord{
		OccurredOn:  occurredOn,
		ProductCode: d.product.Code(),
		Quantity:    d.counter.Value(),
	}
	if d.kind.RequiresCounterparty() {
		rec.CounterpartyCode = d.counterparty.Code()
		rec.Note = note
	}
	return rec
}

// Submit validates the draft and persists it through the creator.
// Validation failures return before any network call. On remote rejection
// the draft is left untouched so the operator can correct and resubmit; on
// success it resets and the new record's id is returned.
func (d *Draft) Submit(ctx context.Context, creator Creator) (string, error) {
	rec := d.Record()
	if err := rec.Validate(d.kind); err != nil {
		return "", err
	}

	id, err := creator.Create(ctx, rec)
	if err != nil {
		return "", err
	}

	d.Reset()
	return id, nil
}
