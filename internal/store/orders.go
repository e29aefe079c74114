package store

import (
	"strings"

	"github.com/google/uuid"

	"opsdesk/internal/models"
)

// NewOrders builds the orders repository.
func NewOrders(deps Deps) *Store[models.Order] {
	return newStore(deps, "orders", "order", hooks[models.Order]{
		prepareCreate: func(o *models.Order) error {
			if strings.TrimSpace(o.Customer) == "" {
				return invalid("customer", "required")
			}
			if o.Items < 0 {
				return invalid("items", "must not be negative")
			}
			if o.Total < 0 {
				return invalid("total", "must not be negative")
			}
			if o.ID == uuid.Nil {
				o.ID = uuid.New()
			}
			if o.Status == "" {
				o.Status = models.OrderPending
			}
			if o.Priority == "" {
				o.Priority = models.PriorityMedium
			}
			if o.Date == "" {
				o.Date = today()
			}
			return nil
		},
		prepareUpdate: func(_ models.Order, fields map[string]any) (map[string]any, error) {
			if v, ok := fields["items"]; ok {
				n, valid := asInt(v)
				if !valid || n < 0 {
					return nil, invalid("items", "must be a non-negative whole number")
				}
				fields["items"] = n
			}
			if v, ok := fields["total"]; ok {
				if n, ok := asFloat(v); ok && n < 0 {
					return nil, invalid("total", "must not be negative")
				}
			}
			return fields, nil
		},
		describe: func(o models.Order) map[string]any {
			return map[string]any{"customer": o.Customer, "total": o.Total}
		},
	})
}
