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
)

// CatalogRepo implements catalog.Repository. Catalog tables are reference
// data: read-only from this API, maintained by seeding.
type CatalogRepo struct {
	db      Querier
	builder squirrel.StatementBuilderType
}

// NewCatalogRepo creates a catalog repository.
func NewCatalogRepo(db Querier) *CatalogRepo {
	return &CatalogRepo{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListProducts returns products ordered by code.
func (r *CatalogRepo) ListProducts(ctx context.Context, category catalog.Category) ([]catalog.Product, error) {
	sc, err := scope.MustFromContext(ctx)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "catalog.products",
		trace.WithAttributes(attribute.String("db.scope", sc)))
	defer span.End()

	sql, args, err := buildProductList(r.builder, sc, category).ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var products []catalog.Product
	if err := pgxscan.Select(ctx, r.db, &products, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return products, nil
}

// ListCounterparties returns counterparties ordered by code.
func (r *CatalogRepo) ListCounterparties(ctx context.Context, category catalog.Category) ([]catalog.Counterparty, error) {
	sc, err := scope.MustFromContext(ctx)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "catalog.counterparties",
		trace.WithAttributes(attribute.String("db.scope", sc)))
	defer span.End()

	sql, args, err := buildCounterpartyList(r.builder, sc, category).ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var counterparties []catalog.Counterparty
	if err := pgxscan.Select(ctx, r.db, &counterparties, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return counterparties, nil
}

func buildProductList(b squirrel.StatementBuilderType, sc string, category catalog.Category) squirrel.SelectBuilder {
	q := b.Select("code", "name", "category_code").
		From(sc + ".products").
		OrderBy("code")
	if category != catalog.CategoryAll {
		q = q.Where(squirrel.Eq{"category_code": string(category)})
	}
	return q
}

func buildCounterpartyList(b squirrel.StatementBuilderType, sc string, category catalog.Category) squirrel.SelectBuilder {
	q := b.Select("code", "name").
		From(sc + ".counterparties").
		OrderBy("code")
	if category != catalog.CategoryAll {
		q = q.Where(squirrel.Eq{"category_code": string(category)})
	}
	return q
}
