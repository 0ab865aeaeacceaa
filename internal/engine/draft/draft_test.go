package draft

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaego/internal/core/apperror"
	"jaego/internal/core/dateutil"
	"jaego/internal/domain/catalog"
	"jaego/internal/domain/ledger"
)

// fakeCreator records every Create call so tests can assert how many network
// submissions a flow produced.
type fakeCreator struct {
	calls []ledger.NewRecord
	id    string
	err   error
}

func (f *fakeCreator) Create(_ context.Context, rec ledger.NewRecord) (string, error) {
	f.calls = append(f.calls, rec)
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

func TestDraft_InitialState(t *testing.T) {
	d := New(ledger.KindProduction)

	assert.Equal(t, dateutil.Today(), d.OccurredOn())
	assert.Equal(t, 1, d.Counter().Value())
	assert.Empty(t, d.Product().Code())
	assert.Empty(t, d.Counterparty().Code())
	assert.Empty(t, d.Note())
}

func TestDraft_SubmitWithoutProduct_NoNetworkCall(t *testing.T) {
	creator := &fakeCreator{id: "P000001"}
	d := New(ledger.KindProduction)

	_, err := d.Submit(context.Background(), creator)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, creator.calls, "invalid draft must not reach the creator")
}

func TestDraft_ShipmentWithoutCounterparty_NoNetworkCall(t *testing.T) {
	creator := &fakeCreator{id: "S000001"}
	d := New(ledger.KindShipment)
	d.Product().Select(catalog.Product{Code: "FG-1001", Name: "Conveyor Bracket"})

	_, err := d.Submit(context.Background(), creator)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, creator.calls)
}

func TestDraft_SubmitSuccess_Resets(t *testing.T) {
	creator := &fakeCreator{id: "S000042"}
	d := New(ledger.KindShipment)
	d.SetOccurredOn("20250115")
	d.Product().Select(catalog.Product{Code: "FG-1001", Name: "Conveyor Bracket"})
	d.Counterparty().Select(catalog.Counterparty{Code: "CP-001", Name: "Hanbit Trading"})
	d.Counter().Set(5)
	d.SetNote("rush order")
	d.SetProductTerm("brack")

	id, err := d.Submit(context.Background(), creator)

	require.NoError(t, err)
	assert.Equal(t, "S000042", id)
	require.Len(t, creator.calls, 1)
	assert.Equal(t, ledger.NewRecord{
		OccurredOn:       "20250115",
		ProductCode:      "FG-1001",
		CounterpartyCode: "CP-001",
		Quantity:         5,
		Note:             "rush order",
	}, creator.calls[0])

	// Fresh draft after success.
	assert.Equal(t, dateutil.Today(), d.OccurredOn())
	assert.Equal(t, 1, d.Counter().Value())
	assert.Empty(t, d.Product().Code())
	assert.Empty(t, d.Counterparty().Code())
	assert.Empty(t, d.Note())
	assert.Empty(t, d.ProductTerm())
}

func TestDraft_SubmitRemoteFailure_PreservesDraft(t *testing.T) {
	creator := &fakeCreator{err: apperror.NewTransport("backend unreachable", 0)}
	d := New(ledger.KindProduction)
	d.SetOccurredOn("20250115")
	d.Product().Select(catalog.Product{Code: "FG-1002", Name: "Drive Housing"})
	d.Counter().Set(3)

	_, err := d.Submit(context.Background(), creator)

	require.Error(t, err)
	assert.True(t, apperror.IsTransport(err))
	assert.Len(t, creator.calls, 1)

	// Everything stays put for correction and resubmit.
	assert.Equal(t, dateutil.Date("20250115"), d.OccurredOn())
	assert.Equal(t, "FG-1002", d.Product().Code())
	assert.Equal(t, 3, d.Counter().Value())
}

func TestDraft_ProductionRecord_OmitsCounterpartyAndNote(t *testing.T) {
	d := New(ledger.KindProduction)
	d.Product().Select(catalog.Product{Code: "FG-1001", Name: "Conveyor Bracket"})
	d.Counterparty().Select(catalog.Counterparty{Code: "CP-001", Name: "Hanbit Trading"})
	d.SetNote("should not appear")

	rec := d.Record()

	assert.Empty(t, rec.CounterpartyCode)
	assert.Empty(t, rec.Note)
}

func TestDraft_SetOccurredOn_IgnoresInvalid(t *testing.T) {
	d := New(ledger.KindProduction)
	d.SetOccurredOn("20250115")
	d.SetOccurredOn("2025-01-15")
	assert.Equal(t, dateutil.Date("20250115"), d.OccurredOn())
}
