package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaego/internal/domain/catalog"
	"jaego/internal/domain/ledger"
	"jaego/internal/engine/api"
	"jaego/internal/engine/draft"
)

// memoryBackend is a minimal in-memory rendition of the shipment ledger
// endpoints, enough to drive the engine through a whole operator flow.
type memoryBackend struct {
	mu      sync.Mutex
	records []ledger.Record
	seq     int
}

func (m *memoryBackend) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/ledger/shipment/list", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "jaego_test", r.URL.Query().Get("scope"))
		from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")

		m.mu.Lock()
		out := make([]ledger.Record, 0, len(m.records))
		for _, rec := range m.records {
			if string(rec.OccurredOn) >= from && string(rec.OccurredOn) <= to {
				out = append(out, rec)
			}
		}
		m.mu.Unlock()

		_ = json.NewEncoder(w).Encode(out)
	})

	mux.HandleFunc("/api/v1/ledger/shipment/insert", func(w http.ResponseWriter, r *http.Request) {
		var rec ledger.NewRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))

		m.mu.Lock()
		m.seq++
		id := fmt.Sprintf("S%06d", m.seq)
		m.records = append(m.records, ledger.Record{
			ID:               id,
			OccurredOn:       rec.OccurredOn,
			ProductCode:      rec.ProductCode,
			CounterpartyCode: rec.CounterpartyCode,
			Quantity:         rec.Quantity,
			Note:             rec.Note,
		})
		m.mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": id})
	})

	mux.HandleFunc("/api/v1/ledger/shipment/delete", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")

		m.mu.Lock()
		defer m.mu.Unlock()
		for i, rec := range m.records {
			if rec.ID == id {
				m.records = append(m.records[:i], m.records[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    "NOT_FOUND",
			"message": "ledger record not found",
		})
	})

	return mux
}

// Compose a shipment, submit it, see it in the list, then delete it through
// the confirmation gate.
func TestShipmentFlow_EndToEnd(t *testing.T) {
	backend := &memoryBackend{}
	srv := httptest.NewServer(backend.handler(t))
	defer srv.Close()

	client, err := api.New(api.Config{BaseURL: srv.URL, Scope: "jaego_test"})
	require.NoError(t, err)

	ctx := context.Background()
	store := NewStore(client, ledger.KindShipment)
	d := draft.New(ledger.KindShipment)

	// Compose the draft.
	d.SetOccurredOn("20250115")
	d.Product().Select(catalog.Product{Code: "FG-1001", Name: "Conveyor Bracket"})
	d.Counterparty().Select(catalog.Counterparty{Code: "CP-001", Name: "Hanbit Trading"})
	d.Counter().Set(5)

	id, err := d.Submit(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, "S000001", id)

	// The new record shows up via re-list, nowhere else.
	records, err := store.List(ctx, window("20250101", "20250131"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, 5, records[0].Quantity)

	// A list outside the window does not include it.
	records, err = store.List(ctx, window("20250201", "20250228"))
	require.NoError(t, err)
	assert.Empty(t, records)

	// Back to January, stage and confirm the deletion.
	_, err = store.List(ctx, window("20250101", "20250131"))
	require.NoError(t, err)

	require.NoError(t, store.StageDelete(id))
	require.NoError(t, store.ConfirmDelete(ctx))
	assert.Empty(t, store.Records(), "the view refreshed after the delete")

	// Deleting the same record again reports not found.
	require.NoError(t, store.StageDelete(id))
	err = store.ConfirmDelete(ctx)
	require.Error(t, err)
}
