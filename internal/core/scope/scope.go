// Package scope handles the backend data-partition selector. A scope names a
// PostgreSQL schema; every request carries one and it is forwarded unchanged
// for the whole session.
package scope

import (
	"context"
	"regexp"

	"jaego/internal/core/apperror"
)

// nameRE restricts scopes to safe schema identifiers. Scopes are interpolated
// into table references, so nothing outside this alphabet may pass.
var nameRE = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// Valid reports whether name is an acceptable scope.
func Valid(name string) bool {
	return nameRE.MatchString(name)
}

// scopeKey is the context key for the active scope.
type scopeKey struct{}

// WithContext stores the scope in ctx.
func WithContext(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, scopeKey{}, name)
}

// FromContext returns the scope from ctx, or "".
func FromContext(ctx context.Context) string {
	if s, ok := ctx.Value(scopeKey{}).(string); ok {
		return s
	}
	return ""
}

// MustFromContext returns the scope or an error suitable for the API
// boundary. Repositories call this before touching any table.
func MustFromContext(ctx context.Context) (string, error) {
	s := FromContext(ctx)
	if s == "" {
		return "", apperror.NewValidation("scope is required")
	}
	if !Valid(s) {
		return "", apperror.NewValidation("invalid scope").WithDetail("scope", s)
	}
	return s, nil
}
