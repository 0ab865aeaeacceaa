// Package numerator provides sequential record codes. Uses a single
// UPDATE ... RETURNING style upsert per number, so codes within a scope are
// gapless and strictly increasing even under concurrent inserts.
package numerator

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"jaego/internal/core/scope"
)

// Querier is the database dependency. Satisfied by pgxpool.Pool.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Service issues the next code for a prefix, e.g. P000042 or S000007.
// Sequence state lives in the scope's sys_sequences table, one row per
// prefix.
type Service struct {
	db Querier
}

// New creates a numerator service.
func New(db Querier) *Service {
	return &Service{db: db}
}

// Width is the zero-padded digit count of generated codes.
const Width = 6

// Next returns the next code for the prefix in the context's scope.
func (s *Service) Next(ctx context.Context, prefix string) (string, error) {
	sc, err := scope.MustFromContext(ctx)
	if err != nil {
		return "", err
	}

	sql := fmt.Sprintf(`
		INSERT INTO %s.sys_sequences AS seq (key, current_val)
		VALUES ($1, 1)
		ON CONFLICT (key) DO UPDATE SET current_val = seq.current_val + 1
		RETURNING current_val`, sc)

	var current int64
	if err := s.db.QueryRow(ctx, sql, prefix).Scan(&current); err != nil {
		return "", fmt.Errorf("next number for %q: %w", prefix, err)
	}

	return Format(prefix, current), nil
}

// Format renders a sequence value as a record code.
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s%0*d", prefix, Width, n)
}
