// Package ledger implements the client-side ledger store: the authoritative
// in-memory list of persisted records for the active date window, kept
// consistent with the backend by full-replace list queries.
package ledger

import (
	"context"
	"sort"
	"sync"

	"jaego/internal/core/apperror"
	"jaego/internal/core/dateutil"
	"jaego/internal/domain/ledger"
)

// Backend is the remote side of the store. The api client implements it.
type Backend interface {
	ListRecords(ctx context.Context, kind ledger.Kind, window dateutil.Window) ([]ledger.Record, error)
	InsertRecord(ctx context.Context, kind ledger.Kind, rec ledger.NewRecord) (string, error)
	UpdateRecord(ctx context.Context, kind ledger.Kind, patch ledger.Patch) error
	DeleteRecord(ctx context.Context, kind ledger.Kind, id string) error
}

// Store is a read-through/write-through cache over the backend ledger,
// scoped to one kind and the current date window. Mutations never patch the
// local list; the view converges by re-listing, so it cannot diverge from
// server-assigned fields. Safe for concurrent use.
type Store struct {
	backend Backend
	kind    ledger.Kind

	mu        sync.Mutex
	records   []ledger.Record
	window    dateutil.Window
	hasWindow bool

	// gen implements last-request-wins: each List bumps it, and a response
	// only lands if no newer List started meanwhile.
	gen uint64

	pendingDelete string
}

// NewStore creates a store for one ledger kind.
func NewStore(backend Backend, kind ledger.Kind) *Store {
	return &Store{backend: backend, kind: kind}
}

// Kind returns the ledger kind this store manages.
func (s *Store) Kind() ledger.Kind { return s.kind }

// List fetches the records inside the window and replaces the in-memory
// list wholesale. If a newer List starts while this one is in flight, the
// stale result is discarded and the current view returned instead. On
// failure the view is left unchanged.
func (s *Store) List(ctx context.Context, window dateutil.Window) ([]ledger.Record, error) {
	if !window.Valid() {
		return nil, apperror.NewValidation("invalid date range").
			WithDetail("from", string(window.From)).
			WithDetail("to", string(window.To))
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	records, err := s.backend.ListRecords(ctx, s.kind, window)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		// A newer request owns the view; this result (or failure) is stale.
		return s.viewLocked(), nil
	}
	if err != nil {
		return nil, err
	}

	sortByDateDesc(records)
	s.records = records
	s.window = window
	s.hasWindow = true
	return s.viewLocked(), nil
}

// Records returns the current view.
func (s *Store) Records() []ledger.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Window returns the window of the last successful List.
func (s *Store) Window() (dateutil.Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.window, s.hasWindow
}

// Create persists a new record and returns its server-assigned id. The
// local list is not touched; the caller re-Lists to observe the record.
func (s *Store) Create(ctx context.Context, rec ledger.NewRecord) (string, error) {
	if err := rec.Validate(s.kind); err != nil {
		return "", err
	}
	return s.backend.InsertRecord(ctx, s.kind, rec)
}

// Update applies a quantity/note patch. On success the caller re-Lists. A
// not-found answer means the client view is stale, so the store refreshes
// before reporting it.
func (s *Store) Update(ctx context.Context, patch ledger.Patch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	if err := s.backend.UpdateRecord(ctx, s.kind, patch); err != nil {
		s.refreshIfStale(ctx, err)
		return err
	}
	return nil
}

// StageDelete marks a record for deletion. No DELETE is issued until
// ConfirmDelete; this is the destructive-action confirmation gate.
func (s *Store) StageDelete(id string) error {
	if id == "" {
		return apperror.NewValidation("record id is required").WithDetail("field", "id")
	}
	s.mu.Lock()
	s.pendingDelete = id
	s.mu.Unlock()
	return nil
}

// CancelDelete drops the staged deletion without issuing anything.
func (s *Store) CancelDelete() {
	s.mu.Lock()
	s.pendingDelete = ""
	s.mu.Unlock()
}

// PendingDelete returns the staged record id, or "".
func (s *Store) PendingDelete() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingDelete
}

// ConfirmDelete issues exactly one DELETE for the staged record. On success
// the staged id is cleared and the view refreshed; a failed refresh is
// reported so the operator knows the view may still show the deleted row
// (the cleared staging tells the two failures apart). A transport failure
// leaves the staging in place so the operator can retry; a not-found answer
// clears it and refreshes, since the record is already gone.
func (s *Store) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	id := s.pendingDelete
	s.mu.Unlock()

	if id == "" {
		return apperror.NewValidation("no deletion staged")
	}

	if err := s.backend.DeleteRecord(ctx, s.kind, id); err != nil {
		if apperror.IsNotFound(err) {
			s.CancelDelete()
			s.refreshIfStale(ctx, err)
		}
		return err
	}

	s.CancelDelete()
	return s.Refresh(ctx)
}

// Refresh re-runs the last List. A no-op before the first List.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	window, ok := s.window, s.hasWindow
	s.mu.Unlock()
	if !ok {
		return nil
	}
	_, err := s.List(ctx, window)
	return err
}

// refreshIfStale refreshes after a not-found answer: the backend no longer
// has a record the client shows, so the view is stale.
func (s *Store) refreshIfStale(ctx context.Context, err error) {
	if apperror.IsNotFound(err) {
		_ = s.Refresh(ctx)
	}
}

func (s *Store) viewLocked() []ledger.Record {
	out := make([]ledger.Record, len(s.records))
	copy(out, s.records)
	return out
}

// sortByDateDesc orders rows newest-first as a display convenience. Stable,
// so rows sharing a date keep the backend's order.
func sortByDateDesc(records []ledger.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].OccurredOn > records[j].OccurredOn
	})
}
