package store

import (
	"strings"

	"github.com/google/uuid"

	"opsdesk/internal/models"
)

// NewSuppliers builds the suppliers repository.
func NewSuppliers(deps Deps) *Store[models.Supplier] {
	return newStore(deps, "suppliers", "supplier", hooks[models.Supplier]{
		prepareCreate: func(s *models.Supplier) error {
			if strings.TrimSpace(s.Name) == "" {
				return invalid("name", "required")
			}
			if s.Rating < 0 || s.Rating > 5 {
				return invalid("rating", "must be between 0 and 5")
			}
			if s.TotalOrders < 0 {
				return invalid("total_orders", "must not be negative")
			}
			if s.TotalSpent < 0 {
				return invalid("total_spent", "must not be negative")
			}
			if s.ID == uuid.Nil {
				s.ID = uuid.New()
			}
			if s.Status == "" {
				s.Status = "pending"
			}
			if s.Reliability == "" {
				s.Reliability = models.ReliabilityGood
			}
			return nil
		},
		prepareUpdate: func(_ models.Supplier, fields map[string]any) (map[string]any, error) {
			if v, ok := fields["rating"]; ok {
				if n, ok := asFloat(v); ok && (n < 0 || n > 5) {
					return nil, invalid("rating", "must be between 0 and 5")
				}
			}
			return fields, nil
		},
		describe: func(s models.Supplier) map[string]any {
			return map[string]any{"name": s.Name, "category": s.Category}
		},
	})
}
