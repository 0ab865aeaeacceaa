package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"jaego/internal/core/apperror"
	"jaego/internal/core/dateutil"
	"jaego/internal/core/scope"
	"jaego/internal/domain/ledger"
)

// LedgerRepo implements ledger.Repository. Production and shipment records
// share one table discriminated by a kind column, so both flows run through
// the same queries.
type LedgerRepo struct {
	db      Querier
	builder squirrel.StatementBuilderType
}

// NewLedgerRepo creates a ledger repository.
func NewLedgerRepo(db Querier) *LedgerRepo {
	return &LedgerRepo{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns records inside the window, newest first. Rows carry display
// names joined in server-side; counterparty_name is the canonical field.
func (r *LedgerRepo) List(ctx context.Context, kind ledger.Kind, window dateutil.Window) ([]ledger.Record, error) {
	sc, err := scope.MustFromContext(ctx)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "ledger.list",
		trace.WithAttributes(
			attribute.String("db.scope", sc),
			attribute.String("ledger.kind", string(kind)),
		))
	defer span.End()

	sql, args, err := buildLedgerList(r.builder, sc, kind, window).ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var records []ledger.Record
	if err := pgxscan.Select(ctx, r.db, &records, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return records, nil
}

// Insert persists a record under the server-assigned id.
func (r *LedgerRepo) Insert(ctx context.Context, kind ledger.Kind, id string, rec ledger.NewRecord) error {
	sc, err := scope.MustFromContext(ctx)
	if err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "ledger.insert",
		trace.WithAttributes(
			attribute.String("db.scope", sc),
			attribute.String("ledger.kind", string(kind)),
		))
	defer span.End()

	sql, args, err := r.builder.
		Insert(sc+".ledger_records").
		Columns("id", "kind", "occurred_on", "product_code", "counterparty_code", "quantity", "note").
		Values(id, string(kind), string(rec.OccurredOn), rec.ProductCode, rec.CounterpartyCode, rec.Quantity, rec.Note).
		ToSql()
	if err != nil {
		return apperror.NewInternal(err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewDatabase(err)
	}
	return nil
}

// Update patches quantity and, when provided, the note.
func (r *LedgerRepo) Update(ctx context.Context, kind ledger.Kind, patch ledger.Patch) error {
	sc, err := scope.MustFromContext(ctx)
	if err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "ledger.update",
		trace.WithAttributes(
			attribute.String("db.scope", sc),
			attribute.String("ledger.kind", string(kind)),
		))
	defer span.End()

	q := r.builder.
		Update(sc+".ledger_records").
		Set("quantity", patch.Quantity).
		Where(squirrel.Eq{"id": patch.ID, "kind": string(kind)})
	if patch.Note != nil {
		q = q.Set("note", *patch.Note)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return apperror.NewInternal(err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewDatabase(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("ledger record", patch.ID)
	}
	return nil
}

// Delete removes a record by id.
func (r *LedgerRepo) Delete(ctx context.Context, kind ledger.Kind, id string) error {
	sc, err := scope.MustFromContext(ctx)
	if err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "ledger.delete",
		trace.WithAttributes(
			attribute.String("db.scope", sc),
			attribute.String("ledger.kind", string(kind)),
		))
	defer span.End()

	sql, args, err := r.builder.
		Delete(sc+".ledger_records").
		Where(squirrel.Eq{"id": id, "kind": string(kind)}).
		ToSql()
	if err != nil {
		return apperror.NewInternal(err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewDatabase(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("ledger record", id)
	}
	return nil
}

func buildLedgerList(b squirrel.StatementBuilderType, sc string, kind ledger.Kind, window dateutil.Window) squirrel.SelectBuilder {
	return b.Select(
		"r.id",
		"r.occurred_on",
		"r.product_code",
		"COALESCE(p.name, '') AS product_name",
		"r.counterparty_code",
		"COALESCE(c.name, '') AS counterparty_name",
		"r.quantity",
		"r.note",
	).
		From(sc + ".ledger_records r").
		LeftJoin(sc + ".products p ON p.code = r.product_code").
		LeftJoin(sc + ".counterparties c ON c.code = r.counterparty_code").
		Where(squirrel.Eq{"r.kind": string(kind)}).
		Where(squirrel.GtOrEq{"r.occurred_on": string(window.From)}).
		Where(squirrel.LtOrEq{"r.occurred_on": string(window.To)}).
		OrderBy("r.occurred_on DESC", "r.id DESC")
}
