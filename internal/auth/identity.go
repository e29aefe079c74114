// Package auth consumes the identity established by the fronting auth layer.
// The service itself never authenticates users; it trusts the identity
// headers the proxy injects after session validation.
package auth

import (
	"context"
	"net/http"
	"strings"
)

// Identity describes the authenticated user attached to a request.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// Anonymous reports whether no authenticated user is attached.
func (id Identity) Anonymous() bool { return id.ID == "" && id.Email == "" }

type contextKey struct{}

// Middleware extracts the proxy-provided identity headers and stores the
// resulting Identity in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := Identity{
			ID:    strings.TrimSpace(r.Header.Get("X-User-Id")),
			Email: strings.TrimSpace(r.Header.Get("X-User-Email")),
			Name:  strings.TrimSpace(r.Header.Get("X-User-Name")),
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// WithIdentity returns a context carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the Identity stored in ctx, or the zero Identity.
func FromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(contextKey{}).(Identity)
	return id
}
