package audit

import (
	"context"

	"gorm.io/gorm"

	"opsdesk/internal/models"
)

// Reader lists audit history for the dashboard view. The table is
// append-only; there are no update or delete paths.
type Reader struct {
	db *gorm.DB
}

// NewReader returns a Reader backed by database.
func NewReader(database *gorm.DB) *Reader {
	return &Reader{db: database}
}

// List returns the most recent entries, newest first.
func (r *Reader) List(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var entries []models.AuditLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
