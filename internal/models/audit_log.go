package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Audit actions.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionLogin  = "LOGIN"
	ActionExport = "EXPORT"
	ActionView   = "VIEW"
)

// Audit severities.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// AuditLog captures one mutation or notable user event. Rows are append-only:
// nothing in the system updates or deletes them after insert.
type AuditLog struct {
	ID         uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *string           `gorm:"type:text;index" json:"user_id"`
	UserEmail  *string           `gorm:"type:text" json:"user_email"`
	Action     string            `gorm:"type:text;not null" json:"action"`
	EntityType string            `gorm:"type:text;not null" json:"entity_type"`
	EntityID   *string           `gorm:"type:text" json:"entity_id"`
	Details    datatypes.JSONMap `gorm:"type:jsonb;default:'{}'::jsonb" json:"details"`
	Severity   string            `gorm:"type:text;not null;default:low" json:"severity"`
	CreatedAt  time.Time         `gorm:"type:timestamptz;not null;default:now();autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
