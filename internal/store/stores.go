package store

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"opsdesk/internal/bus"
	"opsdesk/internal/models"
)

// AuditRecorder appends audit entries for repository mutations. Satisfied
// by audit.Writer.
type AuditRecorder interface {
	Record(ctx context.Context, action, entityType, entityID string, details map[string]any, severity string)
}

// Deps are the external collaborators every repository shares.
type Deps struct {
	DB    *gorm.DB
	Audit AuditRecorder
	Bus   *bus.Bus
	Log   zerolog.Logger
}

// Stores bundles the per-entity repositories. It is created once at startup
// and injected into the API layer; nothing reaches for it as a global.
type Stores struct {
	Orders    *Store[models.Order]
	Suppliers *Store[models.Supplier]
	Inventory *InventoryStore
	Sales     *Store[models.Sale]
	Employees *Store[models.Employee]
	Customers *Store[models.Customer]
}

// New wires every repository against the shared dependencies.
func New(deps Deps) *Stores {
	return &Stores{
		Orders:    NewOrders(deps),
		Suppliers: NewSuppliers(deps),
		Inventory: NewInventory(deps),
		Sales:     NewSales(deps),
		Employees: NewEmployees(deps),
		Customers: NewCustomers(deps),
	}
}

// today renders the device-local date the way the dashboard stores all of
// its date columns.
func today() string {
	return time.Now().Format("2006-01-02")
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// asInt accepts JSON-decoded numbers only when they are whole; a fractional
// value must fail validation rather than being truncated.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}
