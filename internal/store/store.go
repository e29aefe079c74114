// Package store implements one repository per entity table: CRUD against
// PostgreSQL plus an in-memory snapshot of the latest result set. Mutations
// that succeed emit an audit event and a change notification; both are best
// effort and never fail the mutation.
package store

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"opsdesk/internal/bus"
	"opsdesk/internal/metrics"
	"opsdesk/internal/models"
)

// hooks customize the generic repository per entity.
type hooks[T Entity] struct {
	// prepareCreate validates the draft, assigns the id, and fills
	// server-side defaults. Required.
	prepareCreate func(*T) error
	// prepareUpdate validates and rewrites the partial field map given the
	// prior stored row. Optional.
	prepareUpdate func(prior T, fields map[string]any) (map[string]any, error)
	// describe supplies the audit details payload for create and delete
	// events. Optional.
	describe func(T) map[string]any
}

// Store is the generic repository instantiated once per entity table.
type Store[T Entity] struct {
	db         *gorm.DB
	audit      AuditRecorder
	bus        *bus.Bus
	log        zerolog.Logger
	table      string
	entityType string
	hooks      hooks[T]
	cache      cache[T]
}

func newStore[T Entity](deps Deps, table, entityType string, h hooks[T]) *Store[T] {
	return &Store[T]{
		db:         deps.DB,
		audit:      deps.Audit,
		bus:        deps.Bus,
		log:        deps.Log.With().Str("table", table).Logger(),
		table:      table,
		entityType: entityType,
		hooks:      h,
	}
}

// List fetches every row ordered by creation time descending and replaces
// the snapshot. On failure the previous snapshot is kept and the error is
// returned.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		prev, _ := s.cache.snapshot()
		return prev, translate(err)
	}
	s.cache.replaceAll(rows)
	return rows, nil
}

// Cached returns the current snapshot, fetching once if no List has
// completed yet. Derived metrics read from here.
func (s *Store[T]) Cached(ctx context.Context) ([]T, error) {
	if rows, ready := s.cache.snapshot(); ready {
		return rows, nil
	}
	return s.List(ctx)
}

// Create validates the draft, inserts it, prepends it to the snapshot, and
// records a CREATE audit event.
func (s *Store[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T
	if err := s.hooks.prepareCreate(&entity); err != nil {
		return zero, err
	}

	if err := s.db.WithContext(ctx).Create(&entity).Error; err != nil {
		return zero, translate(err)
	}

	s.cache.prepend(entity)
	metrics.Mutations.WithLabelValues(s.table, "create").Inc()
	s.audit.Record(ctx, models.ActionCreate, s.entityType, entity.EntityID().String(), s.details(entity), models.SeverityLow)
	s.publish(models.ActionCreate, entity.EntityID())
	return entity, nil
}

// Update merges the partial field map into the stored row, refreshes the
// snapshot entry, and records an UPDATE audit event carrying the partial
// fields as payload.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (T, error) {
	var zero T

	var prior T
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&prior).Error; err != nil {
		return zero, translate(err)
	}

	fields = stripServerFields(fields)
	if s.hooks.prepareUpdate != nil {
		var err error
		if fields, err = s.hooks.prepareUpdate(prior, fields); err != nil {
			return zero, err
		}
	}
	if len(fields) == 0 {
		return prior, nil
	}

	if err := s.db.WithContext(ctx).Model(&prior).Where("id = ?", id).Updates(fields).Error; err != nil {
		return zero, translate(err)
	}

	var updated T
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&updated).Error; err != nil {
		return zero, translate(err)
	}

	s.cache.replace(updated)
	metrics.Mutations.WithLabelValues(s.table, "update").Inc()
	s.audit.Record(ctx, models.ActionUpdate, s.entityType, id.String(), fields, models.SeverityLow)
	s.publish(models.ActionUpdate, id)
	return updated, nil
}

// Delete removes the row and its snapshot entry and records a DELETE audit
// event at medium severity.
func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	cached, _ := s.cache.find(id)

	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	s.finishDelete(ctx, id, cached)
	return nil
}

// finishDelete patches the snapshot and emits the audit entry and change
// notification for a row the database confirmed gone.
func (s *Store[T]) finishDelete(ctx context.Context, id uuid.UUID, cached T) {
	s.cache.remove(id)
	metrics.Mutations.WithLabelValues(s.table, "delete").Inc()
	s.audit.Record(ctx, models.ActionDelete, s.entityType, id.String(), s.details(cached), models.SeverityMedium)
	s.publish(models.ActionDelete, id)
}

func (s *Store[T]) details(entity T) map[string]any {
	if s.hooks.describe == nil {
		return nil
	}
	return s.hooks.describe(entity)
}

func (s *Store[T]) publish(action string, id uuid.UUID) {
	if err := s.bus.Publish(bus.Change{Table: s.table, Action: action, EntityID: id.String()}); err != nil {
		metrics.PublishFailures.Inc()
		s.log.Warn().Err(err).Str("action", action).Msg("change publish failed")
	}
}

// stripServerFields drops columns the server owns from a partial update.
func stripServerFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		switch k {
		case "id", "created_at", "updated_at":
			continue
		}
		out[k] = v
	}
	return out
}

// normalizeJSONField re-encodes a decoded JSON value so a map-based gorm
// update writes it through as jsonb rather than a Go slice the driver
// cannot bind.
func normalizeJSONField(fields map[string]any, key string) error {
	v, ok := fields[key]
	if !ok || v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return invalid(key, "not serializable")
	}
	fields[key] = datatypes.JSON(raw)
	return nil
}
