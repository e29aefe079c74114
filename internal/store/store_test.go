package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"opsdesk/internal/models"
)

type auditEntry struct {
	action     string
	entityType string
	entityID   string
	severity   string
	details    map[string]any
}

// auditSink captures Record calls in place of the real audit writer.
type auditSink struct {
	entries []auditEntry
}

func (a *auditSink) Record(_ context.Context, action, entityType, entityID string, details map[string]any, severity string) {
	a.entries = append(a.entries, auditEntry{
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		severity:   severity,
		details:    details,
	})
}

func TestDeleteRemovesSnapshotEntryAndAudits(t *testing.T) {
	sink := &auditSink{}
	s := NewOrders(Deps{Audit: sink, Log: zerolog.Nop()})

	order := models.Order{ID: uuid.New(), Customer: "acme", Total: 120}
	other := models.Order{ID: uuid.New(), Customer: "globex"}
	s.cache.replaceAll([]models.Order{order, other})

	s.finishDelete(t.Context(), order.ID, order)

	if _, ok := s.cache.find(order.ID); ok {
		t.Fatal("deleted row still in snapshot")
	}
	if _, ok := s.cache.find(other.ID); !ok {
		t.Fatal("unrelated row dropped from snapshot")
	}

	if len(sink.entries) != 1 {
		t.Fatalf("audit entries = %d, want exactly 1", len(sink.entries))
	}
	got := sink.entries[0]
	if got.action != models.ActionDelete {
		t.Errorf("action = %q, want %q", got.action, models.ActionDelete)
	}
	if got.severity != models.SeverityMedium {
		t.Errorf("severity = %q, want %q", got.severity, models.SeverityMedium)
	}
	if got.entityType != "order" {
		t.Errorf("entityType = %q", got.entityType)
	}
	if got.entityID != order.ID.String() {
		t.Errorf("entityID = %q, want %q", got.entityID, order.ID)
	}
	if got.details["customer"] != "acme" {
		t.Errorf("details = %v", got.details)
	}
}

func TestStripServerFields(t *testing.T) {
	got := stripServerFields(map[string]any{
		"id":         "x",
		"created_at": "y",
		"updated_at": "z",
		"customer":   "acme",
	})
	if len(got) != 1 || got["customer"] != "acme" {
		t.Fatalf("stripServerFields = %v", got)
	}
}
