package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaego/internal/core/apperror"
	"jaego/internal/core/dateutil"
)

type fakeRepo struct {
	inserted map[string]NewRecord
	patches  []Patch
	deleted  []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{inserted: map[string]NewRecord{}}
}

func (f *fakeRepo) List(context.Context, Kind, dateutil.Window) ([]Record, error) {
	return nil, nil
}

func (f *fakeRepo) Insert(_ context.Context, _ Kind, id string, rec NewRecord) error {
	f.inserted[id] = rec
	return nil
}

func (f *fakeRepo) Update(_ context.Context, _ Kind, patch Patch) error {
	f.patches = append(f.patches, patch)
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, _ Kind, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeNumerator struct {
	n int64
}

func (f *fakeNumerator) Next(_ context.Context, prefix string) (string, error) {
	f.n++
	return prefix + "00000" + string(rune('0'+f.n)), nil
}

func TestService_CreateAssignsPrefixedID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeNumerator{})

	rec := NewRecord{OccurredOn: "20250115", ProductCode: "FG-1001", Quantity: 2}

	id, err := svc.Create(context.Background(), KindProduction, rec)
	require.NoError(t, err)
	assert.Equal(t, "P000001", id)
	assert.Equal(t, rec, repo.inserted[id])

	shipment := NewRecord{OccurredOn: "20250115", ProductCode: "FG-1001", CounterpartyCode: "CP-001", Quantity: 1}
	id, err = svc.Create(context.Background(), KindShipment, shipment)
	require.NoError(t, err)
	assert.Equal(t, "S000002", id)
}

func TestService_CreateRejectsInvalidRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeNumerator{})

	tests := []struct {
		name string
		kind Kind
		rec  NewRecord
	}{
		{
			name: "bad date",
			kind: KindProduction,
			rec:  NewRecord{OccurredOn: "2025-01-15", ProductCode: "FG-1001", Quantity: 1},
		},
		{
			name: "no product",
			kind: KindProduction,
			rec:  NewRecord{OccurredOn: "20250115", Quantity: 1},
		},
		{
			name: "shipment without counterparty",
			kind: KindShipment,
			rec:  NewRecord{OccurredOn: "20250115", ProductCode: "FG-1001", Quantity: 1},
		},
		{
			name: "zero quantity",
			kind: KindProduction,
			rec:  NewRecord{OccurredOn: "20250115", ProductCode: "FG-1001"},
		},
		{
			name: "unknown kind",
			kind: "purchase",
			rec:  NewRecord{OccurredOn: "20250115", ProductCode: "FG-1001", Quantity: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.kind, tt.rec)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}
	assert.Empty(t, repo.inserted, "nothing persisted for invalid input")
}

func TestService_ProductionAllowsEmptyCounterparty(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeNumerator{})

	_, err := svc.Create(context.Background(), KindProduction,
		NewRecord{OccurredOn: "20250115", ProductCode: "FG-1001", Quantity: 3})
	assert.NoError(t, err)
}

func TestService_UpdateValidatesPatch(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeNumerator{})

	err := svc.Update(context.Background(), KindProduction, Patch{ID: "", Quantity: 2})
	require.Error(t, err)

	err = svc.Update(context.Background(), KindProduction, Patch{ID: "P000001", Quantity: 0})
	require.Error(t, err)
	assert.Empty(t, repo.patches)

	note := "recount"
	err = svc.Update(context.Background(), KindProduction, Patch{ID: "P000001", Quantity: 4, Note: &note})
	require.NoError(t, err)
	require.Len(t, repo.patches, 1)
}

func TestService_DeleteRequiresID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeNumerator{})

	err := svc.Delete(context.Background(), KindShipment, "")
	require.Error(t, err)
	assert.Empty(t, repo.deleted)

	require.NoError(t, svc.Delete(context.Background(), KindShipment, "S000001"))
	assert.Equal(t, []string{"S000001"}, repo.deleted)
}

func TestService_ListValidatesWindow(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeNumerator{})

	_, err := svc.List(context.Background(), KindProduction, dateutil.Window{From: "20250131", To: "20250101"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
