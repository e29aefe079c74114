package store

import (
	"strings"

	"github.com/google/uuid"

	"opsdesk/internal/models"
)

// NewEmployees builds the employees repository.
func NewEmployees(deps Deps) *Store[models.Employee] {
	return newStore(deps, "employees", "employee", hooks[models.Employee]{
		prepareCreate: func(e *models.Employee) error {
			if strings.TrimSpace(e.Name) == "" {
				return invalid("name", "required")
			}
			if strings.TrimSpace(e.Email) == "" {
				return invalid("email", "required")
			}
			if e.Salary < 0 {
				return invalid("salary", "must not be negative")
			}
			if e.Performance < 0 || e.Performance > 5 {
				return invalid("performance", "must be between 0 and 5")
			}
			if e.DirectReports < 0 {
				return invalid("direct_reports", "must not be negative")
			}
			if e.ID == uuid.Nil {
				e.ID = uuid.New()
			}
			if e.Status == "" {
				e.Status = "active"
			}
			return nil
		},
		prepareUpdate: func(_ models.Employee, fields map[string]any) (map[string]any, error) {
			if v, ok := fields["salary"]; ok {
				if n, ok := asFloat(v); ok && n < 0 {
					return nil, invalid("salary", "must not be negative")
				}
			}
			if v, ok := fields["performance"]; ok {
				if n, ok := asFloat(v); ok && (n < 0 || n > 5) {
					return nil, invalid("performance", "must be between 0 and 5")
				}
			}
			for _, key := range []string{"skills", "achievements"} {
				if err := normalizeJSONField(fields, key); err != nil {
					return nil, err
				}
			}
			return fields, nil
		},
		describe: func(e models.Employee) map[string]any {
			return map[string]any{"name": e.Name, "department": e.Department}
		},
	})
}
