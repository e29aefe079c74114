package store

import (
	"strings"

	"github.com/google/uuid"

	"opsdesk/internal/models"
)

// NewCustomers builds the customers repository. Order counters and the
// since/first/last order dates are server-assigned at creation.
func NewCustomers(deps Deps) *Store[models.Customer] {
	return newStore(deps, "customers", "customer", hooks[models.Customer]{
		prepareCreate: func(c *models.Customer) error {
			if strings.TrimSpace(c.Name) == "" {
				return invalid("name", "required")
			}
			if strings.TrimSpace(c.Email) == "" {
				return invalid("email", "required")
			}
			if c.ID == uuid.Nil {
				c.ID = uuid.New()
			}
			if c.Status == "" {
				c.Status = "active"
			}
			if c.Tier == "" {
				c.Tier = models.TierBronze
			}
			now := today()
			c.TotalOrders = 0
			c.TotalSpent = 0
			c.AvgOrderValue = 0
			c.CustomerSince = now
			c.FirstOrder = now
			c.LastOrder = now
			return nil
		},
		prepareUpdate: func(_ models.Customer, fields map[string]any) (map[string]any, error) {
			if v, ok := fields["total_spent"]; ok {
				if n, ok := asFloat(v); ok && n < 0 {
					return nil, invalid("total_spent", "must not be negative")
				}
			}
			if err := normalizeJSONField(fields, "tags"); err != nil {
				return nil, err
			}
			return fields, nil
		},
		describe: func(c models.Customer) map[string]any {
			return map[string]any{"name": c.Name, "tier": c.Tier}
		},
	})
}
