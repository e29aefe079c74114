// Package api exposes the dashboard's JSON HTTP surface: entity CRUD,
// reports, the activity feed, audit history, CSV export, and the SSE change
// stream.
package api

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"opsdesk/internal/activity"
	"opsdesk/internal/audit"
	"opsdesk/internal/bus"
	"opsdesk/internal/config"
	"opsdesk/internal/store"
)

// Options holds the dependencies the API layer is wired with.
type Options struct {
	Stores   *store.Stores
	Feed     *activity.Feed
	Audit    *audit.Writer
	AuditLog *audit.Reader
	Bus      *bus.Bus
	Pool     *pgxpool.Pool
	Config   config.Config
	Log      zerolog.Logger
}

// API wires the repositories, feed, audit trail, and change bus into HTTP
// handlers.
type API struct {
	stores   *store.Stores
	feed     *activity.Feed
	audit    *audit.Writer
	auditLog *audit.Reader
	bus      *bus.Bus
	pool     *pgxpool.Pool
	config   config.Config
	log      zerolog.Logger
}

// New initialises the API layer with sane defaults applied to the provided
// configuration.
func New(opts Options) (*API, error) {
	if opts.Stores == nil {
		return nil, errors.New("stores are required")
	}
	if opts.Feed == nil {
		return nil, errors.New("activity feed is required")
	}
	if opts.Audit == nil || opts.AuditLog == nil {
		return nil, errors.New("audit writer and reader are required")
	}
	if opts.Pool == nil {
		return nil, errors.New("pool is required")
	}
	if opts.Config.AuditListLimit <= 0 {
		opts.Config.AuditListLimit = 100
	}
	if opts.Config.ActivityLimit <= 0 {
		opts.Config.ActivityLimit = 10
	}

	return &API{
		stores:   opts.Stores,
		feed:     opts.Feed,
		audit:    opts.Audit,
		auditLog: opts.AuditLog,
		bus:      opts.Bus,
		pool:     opts.Pool,
		config:   opts.Config,
		log:      opts.Log,
	}, nil
}
