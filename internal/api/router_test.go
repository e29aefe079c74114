package api

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"opsdesk/internal/activity"
	"opsdesk/internal/audit"
	"opsdesk/internal/config"
	"opsdesk/internal/store"
)

func newTestAPI(t *testing.T) *API {
	t.Helper()
	a, err := New(Options{
		Stores:   store.New(store.Deps{Log: zerolog.Nop()}),
		Feed:     activity.NewFeed(nil, zerolog.Nop()),
		Audit:    audit.NewWriter(nil, nil, zerolog.Nop()),
		AuditLog: audit.NewReader(nil),
		Pool:     new(pgxpool.Pool),
		Config:   config.Config{},
		Log:      zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

// The event stream stays open for the life of the client connection, so it
// must carry one fewer middleware than the timed routes: everything except
// the request timeout.
func TestEventStreamSkipsRequestTimeout(t *testing.T) {
	a := newTestAPI(t)

	routes, ok := a.Routes().(chi.Routes)
	if !ok {
		t.Fatal("Routes() is not a chi router")
	}

	chains := map[string]int{}
	err := chi.Walk(routes, func(method, route string, _ http.Handler, mws ...func(http.Handler) http.Handler) error {
		chains[method+" "+route] = len(mws)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	events, ok := chains["GET /v1/events"]
	if !ok {
		t.Fatalf("GET /v1/events not registered; routes: %v", chains)
	}
	org, ok := chains["GET /v1/org"]
	if !ok {
		t.Fatalf("GET /v1/org not registered; routes: %v", chains)
	}

	if events != org-1 {
		t.Fatalf("events chain has %d middlewares, org has %d; want exactly one fewer", events, org)
	}
}
