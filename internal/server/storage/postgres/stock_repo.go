package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"jaego/internal/core/apperror"
	"jaego/internal/core/scope"
	"jaego/internal/domain/catalog"
	"jaego/internal/domain/stock"
)

// netQuantityExpr rolls production inflow and shipment outflow into one net
// figure. Products without movements sum to zero via the LEFT JOIN.
const netQuantityExpr = `COALESCE(SUM(
		CASE r.kind
			WHEN 'production' THEN r.quantity
			WHEN 'shipment' THEN -r.quantity
		END), 0)::bigint AS net_quantity`

// StockRepo implements stock.Repository with a point-in-time rollup query.
type StockRepo struct {
	db      Querier
	builder squirrel.StatementBuilderType
}

// NewStockRepo creates a stock repository.
func NewStockRepo(db Querier) *StockRepo {
	return &StockRepo{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns the net position per product, optionally per category.
func (r *StockRepo) List(ctx context.Context, category catalog.Category) ([]stock.Line, error) {
	sc, err := scope.MustFromContext(ctx)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "stock.list",
		trace.WithAttributes(attribute.String("db.scope", sc)))
	defer span.End()

	sql, args, err := buildStockList(r.builder, sc, category).ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var lines []stock.Line
	if err := pgxscan.Select(ctx, r.db, &lines, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return lines, nil
}

func buildStockList(b squirrel.StatementBuilderType, sc string, category catalog.Category) squirrel.SelectBuilder {
	q := b.Select(
		"p.code AS product_code",
		"p.name AS product_name",
		"p.category_code",
		netQuantityExpr,
	).
		From(sc + ".products p").
		LeftJoin(sc + ".ledger_records r ON r.product_code = p.code").
		GroupBy("p.code", "p.name", "p.category_code").
		OrderBy("p.code")
	if category != catalog.CategoryAll {
		q = q.Where(squirrel.Eq{"p.category_code": string(category)})
	}
	return q
}
