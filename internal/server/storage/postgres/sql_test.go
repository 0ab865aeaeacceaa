package postgres

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaego/internal/core/dateutil"
	"jaego/internal/domain/catalog"
	"jaego/internal/domain/ledger"
)

var testBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func TestBuildProductList(t *testing.T) {
	sql, args, err := buildProductList(testBuilder, "jaego_demo", catalog.CategoryAll).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT code, name, category_code FROM jaego_demo.products ORDER BY code", sql)
	assert.Empty(t, args)

	sql, args, err = buildProductList(testBuilder, "jaego_demo", catalog.CategoryFinished).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT code, name, category_code FROM jaego_demo.products WHERE category_code = $1 ORDER BY code", sql)
	assert.Equal(t, []any{"01"}, args)
}

func TestBuildCounterpartyList(t *testing.T) {
	sql, args, err := buildCounterpartyList(testBuilder, "plant2", catalog.CategoryAll).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT code, name FROM plant2.counterparties ORDER BY code", sql)
	assert.Empty(t, args)
}

func TestBuildLedgerList(t *testing.T) {
	window := dateutil.Window{From: "20250101", To: "20250131"}

	sql, args, err := buildLedgerList(testBuilder, "jaego_demo", ledger.KindProduction, window).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM jaego_demo.ledger_records r")
	assert.Contains(t, sql, "LEFT JOIN jaego_demo.products p ON p.code = r.product_code")
	assert.Contains(t, sql, "LEFT JOIN jaego_demo.counterparties c ON c.code = r.counterparty_code")
	assert.Contains(t, sql, "COALESCE(p.name, '') AS product_name")
	assert.Contains(t, sql, "COALESCE(c.name, '') AS counterparty_name")
	assert.Contains(t, sql, "r.kind = $1")
	assert.Contains(t, sql, "r.occurred_on >= $2")
	assert.Contains(t, sql, "r.occurred_on <= $3")
	assert.Contains(t, sql, "ORDER BY r.occurred_on DESC, r.id DESC")
	assert.Equal(t, []any{"production", "20250101", "20250131"}, args)
}

func TestBuildStockList(t *testing.T) {
	sql, args, err := buildStockList(testBuilder, "jaego_demo", catalog.CategoryAll).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM jaego_demo.products p")
	assert.Contains(t, sql, "LEFT JOIN jaego_demo.ledger_records r ON r.product_code = p.code")
	assert.Contains(t, sql, "GROUP BY p.code, p.name, p.category_code")
	assert.Contains(t, sql, "ORDER BY p.code")
	assert.Contains(t, sql, "net_quantity")
	assert.Empty(t, args)

	sql, args, err = buildStockList(testBuilder, "jaego_demo", catalog.CategoryMaterial).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "p.category_code = $1")
	assert.Equal(t, []any{"02"}, args)
}

// Net stock counts production as inflow and shipment as outflow.
func TestNetQuantityExpr(t *testing.T) {
	assert.Contains(t, netQuantityExpr, "WHEN 'production' THEN r.quantity")
	assert.Contains(t, netQuantityExpr, "WHEN 'shipment' THEN -r.quantity")
	assert.Contains(t, netQuantityExpr, "COALESCE")
}
