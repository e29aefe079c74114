package store

import (
	"strings"

	"github.com/google/uuid"

	"opsdesk/internal/models"
)

// NewSales builds the sales repository.
func NewSales(deps Deps) *Store[models.Sale] {
	return newStore(deps, "sales", "sale", hooks[models.Sale]{
		prepareCreate: func(s *models.Sale) error {
			if strings.TrimSpace(s.Customer) == "" {
				return invalid("customer", "required")
			}
			if s.Total < 0 {
				return invalid("total", "must not be negative")
			}
			if s.ID == uuid.Nil {
				s.ID = uuid.New()
			}
			if s.Status == "" {
				s.Status = "pending"
			}
			if s.Date == "" {
				s.Date = today()
			}
			return nil
		},
		prepareUpdate: func(_ models.Sale, fields map[string]any) (map[string]any, error) {
			if v, ok := fields["total"]; ok {
				if n, ok := asFloat(v); ok && n < 0 {
					return nil, invalid("total", "must not be negative")
				}
			}
			if err := normalizeJSONField(fields, "items"); err != nil {
				return nil, err
			}
			return fields, nil
		},
		describe: func(s models.Sale) map[string]any {
			return map[string]any{"customer": s.Customer, "total": s.Total}
		},
	})
}
