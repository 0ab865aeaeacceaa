// Package main provides a CLI tool for creating a scope's schema and
// seeding it with a demo catalog.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"jaego/internal/core/scope"
	"jaego/internal/domain/catalog"
	"jaego/internal/server/storage/postgres"
	"jaego/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	scopeName := os.Getenv("SEED_SCOPE")
	if scopeName == "" {
		scopeName = "jaego_demo"
	}
	if !scope.Valid(scopeName) {
		log.Fatalw("invalid scope name", "scope", scopeName)
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Infow("connected to database", "scope", scopeName)

	if err := createSchema(ctx, pool, scopeName); err != nil {
		log.Fatalw("failed to create schema", "error", err)
	}
	log.Info("schema ready")

	if os.Getenv("SEED_DEMO_DATA") != "false" {
		if err := seedCatalog(ctx, pool, scopeName); err != nil {
			log.Fatalw("failed to seed catalog", "error", err)
		}
		log.Info("demo catalog seeded")
	}

	log.Info("seeding completed successfully")
}

// createSchema creates the scope's schema and tables. Idempotent.
func createSchema(ctx context.Context, pool *pgxpool.Pool, sc string) error {
	statements := []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, sc),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.products (
			code          text PRIMARY KEY,
			name          text NOT NULL,
			category_code text NOT NULL DEFAULT '01'
		)`, sc),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.counterparties (
			code          text PRIMARY KEY,
			name          text NOT NULL,
			category_code text NOT NULL DEFAULT '01'
		)`, sc),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.ledger_records (
			id                text NOT NULL,
			kind              text NOT NULL CHECK (kind IN ('production', 'shipment')),
			occurred_on       text NOT NULL CHECK (occurred_on ~ '^[0-9]{8}$'),
			product_code      text NOT NULL REFERENCES %s.products (code),
			counterparty_code text NOT NULL DEFAULT '',
			quantity          integer NOT NULL CHECK (quantity >= 1),
			note              text NOT NULL DEFAULT '',
			created_at        timestamptz NOT NULL DEFAULT now(),
			PRIMARY KEY (id, kind)
		)`, sc, sc),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS ledger_records_kind_date_idx
			ON %s.ledger_records (kind, occurred_on)`, sc),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.sys_sequences (
			key         text PRIMARY KEY,
			current_val bigint NOT NULL
		)`, sc),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("exec schema statement: %w", err)
		}
	}
	return nil
}

// seedCatalog upserts the demo reference data.
func seedCatalog(ctx context.Context, pool *pgxpool.Pool, sc string) error {
	products := []catalog.Product{
		{Code: "FG-1001", Name: "Conveyor Bracket", CategoryCode: catalog.CategoryFinished},
		{Code: "FG-1002", Name: "Drive Housing", CategoryCode: catalog.CategoryFinished},
		{Code: "FG-1003", Name: "Roller Assembly", CategoryCode: catalog.CategoryFinished},
		{Code: "FG-1004", Name: "Guide Rail 1200", CategoryCode: catalog.CategoryFinished},
		{Code: "RM-2001", Name: "Steel Sheet 2mm", CategoryCode: catalog.CategoryMaterial},
		{Code: "RM-2002", Name: "Bearing 6204", CategoryCode: catalog.CategoryMaterial},
		{Code: "RM-2003", Name: "Hex Bolt M8", CategoryCode: catalog.CategoryMaterial},
	}

	counterparties := []catalog.Counterparty{
		{Code: "CP-001", Name: "Hanbit Trading"},
		{Code: "CP-002", Name: "Daesung Industries"},
		{Code: "CP-003", Name: "Northgate Logistics"},
	}

	productSQL := fmt.Sprintf(`INSERT INTO %s.products (code, name, category_code)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, category_code = EXCLUDED.category_code`, sc)
	for _, p := range products {
		if _, err := pool.Exec(ctx, productSQL, p.Code, p.Name, string(p.CategoryCode)); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Code, err)
		}
	}

	counterpartySQL := fmt.Sprintf(`INSERT INTO %s.counterparties (code, name, category_code)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name`, sc)
	for _, cp := range counterparties {
		if _, err := pool.Exec(ctx, counterpartySQL, cp.Code, cp.Name, string(catalog.SalesCategory)); err != nil {
			return fmt.Errorf("seed counterparty %s: %w", cp.Code, err)
		}
	}

	return nil
}
