// Package audit appends structured events to the audit trail. Writes are
// best effort: a failed audit insert is logged and counted but never
// surfaced to the mutation that triggered it, and there is no transactional
// coupling between a business write and its audit record.
package audit

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"opsdesk/internal/auth"
	"opsdesk/internal/bus"
	"opsdesk/internal/metrics"
	"opsdesk/internal/models"
)

// Writer inserts audit log rows and announces them on the change bus.
type Writer struct {
	db  *gorm.DB
	bus *bus.Bus
	log zerolog.Logger
}

// NewWriter returns a Writer backed by database. b may be nil when no broker
// is configured.
func NewWriter(database *gorm.DB, b *bus.Bus, log zerolog.Logger) *Writer {
	return &Writer{db: database, bus: b, log: log}
}

// Record appends one audit entry for the identity attached to ctx. entityID
// and details may be empty; severity defaults to low when blank. Failures
// never propagate to the caller.
func (w *Writer) Record(ctx context.Context, action, entityType, entityID string, details map[string]any, severity string) {
	if severity == "" {
		severity = models.SeverityLow
	}
	if details == nil {
		details = map[string]any{}
	}

	entry := models.AuditLog{
		Action:     action,
		EntityType: entityType,
		Details:    datatypes.JSONMap(details),
		Severity:   severity,
	}
	if entityID != "" {
		entry.EntityID = &entityID
	}
	if id := auth.FromContext(ctx); !id.Anonymous() {
		if id.ID != "" {
			entry.UserID = &id.ID
		}
		if id.Email != "" {
			entry.UserEmail = &id.Email
		}
	}

	if err := w.db.WithContext(ctx).Create(&entry).Error; err != nil {
		metrics.AuditWriteFailures.Inc()
		w.log.Error().Err(err).
			Str("action", action).
			Str("entity_type", entityType).
			Msg("audit write failed")
		return
	}

	if err := w.bus.Publish(bus.Change{
		Table:    models.AuditLog{}.TableName(),
		Action:   action,
		EntityID: entry.ID.String(),
	}); err != nil {
		metrics.PublishFailures.Inc()
		w.log.Warn().Err(err).Msg("audit change publish failed")
	}
}
