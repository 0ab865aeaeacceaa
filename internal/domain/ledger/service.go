package ledger

import (
	"context"
	"fmt"

	"jaego/internal/core/apperror"
	"jaego/internal/core/dateutil"
	"jaego/pkg/logger"
)

// Numerator issues the next server-assigned record code for a prefix.
type Numerator interface {
	Next(ctx context.Context, prefix string) (string, error)
}

// Service provides business logic for ledger records: validation, id
// assignment and delegation to the repository.
type Service struct {
	repo      Repository
	numerator Numerator
}

// NewService creates a ledger service.
func NewService(repo Repository, numerator Numerator) *Service {
	return &Service{repo: repo, numerator: numerator}
}

// List returns records inside the window for the kind.
func (s *Service) List(ctx context.Context, kind Kind, window dateutil.Window) ([]Record, error) {
	if !kind.Valid() {
		return nil, apperror.NewValidation("unknown ledger kind").WithDetail("kind", string(kind))
	}
	if !window.Valid() {
		return nil, apperror.NewValidation("invalid date range").
			WithDetail("from", string(window.From)).
			WithDetail("to", string(window.To))
	}
	return s.repo.List(ctx, kind, window)
}

// Create validates the record, assigns its id and persists it.
func (s *Service) Create(ctx context.Context, kind Kind, rec NewRecord) (string, error) {
	if !kind.Valid() {
		return "", apperror.NewValidation("unknown ledger kind").WithDetail("kind", string(kind))
	}
	if err := rec.Validate(kind); err != nil {
		return "", err
	}

	id, err := s.numerator.Next(ctx, kind.CodePrefix())
	if err != nil {
		return "", fmt.Errorf("assign record id: %w", err)
	}

	if err := s.repo.Insert(ctx, kind, id, rec); err != nil {
		return "", err
	}

	logger.Info(ctx, "ledger record created",
		"kind", string(kind),
		"id", id,
		"product", rec.ProductCode,
		"quantity", rec.Quantity,
	)
	return id, nil
}

// Update applies a quantity/note patch to an existing record.
func (s *Service) Update(ctx context.Context, kind Kind, patch Patch) error {
	if !kind.Valid() {
		return apperror.NewValidation("unknown ledger kind").WithDetail("kind", string(kind))
	}
	if err := patch.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, kind, patch)
}

// Delete removes an existing record.
func (s *Service) Delete(ctx context.Context, kind Kind, id string) error {
	if !kind.Valid() {
		return apperror.NewValidation("unknown ledger kind").WithDetail("kind", string(kind))
	}
	if id == "" {
		return apperror.NewValidation("record id is required").WithDetail("field", "id")
	}
	return s.repo.Delete(ctx, kind, id)
}
