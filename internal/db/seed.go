package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"opsdesk/internal/models"
)

// Fixtures is the YAML seed file layout. Field names follow the JSON column
// names; the YAML document is decoded through JSON so both share one set of
// tags.
type Fixtures struct {
	Orders    []models.Order         `json:"orders"`
	Suppliers []models.Supplier      `json:"suppliers"`
	Inventory []models.InventoryItem `json:"inventory"`
	Sales     []models.Sale          `json:"sales"`
	Employees []models.Employee      `json:"employees"`
	Customers []models.Customer      `json:"customers"`
}

// LoadFixtures parses the YAML fixture file at path.
func LoadFixtures(path string) (Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, err
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Fixtures{}, fmt.Errorf("parse fixtures: %w", err)
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return Fixtures{}, fmt.Errorf("convert fixtures: %w", err)
	}

	var fx Fixtures
	if err := json.Unmarshal(encoded, &fx); err != nil {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return fx, nil
}

// Seed inserts fixture rows, skipping any that already exist.
func Seed(ctx context.Context, database *gorm.DB, fx Fixtures) error {
	for i := range fx.Orders {
		if fx.Orders[i].ID == uuid.Nil {
			fx.Orders[i].ID = uuid.New()
		}
	}
	for i := range fx.Suppliers {
		if fx.Suppliers[i].ID == uuid.Nil {
			fx.Suppliers[i].ID = uuid.New()
		}
	}
	for i := range fx.Inventory {
		if fx.Inventory[i].ID == uuid.Nil {
			fx.Inventory[i].ID = uuid.New()
		}
		fx.Inventory[i].TotalValue = float64(fx.Inventory[i].Quantity) * fx.Inventory[i].UnitPrice
	}
	for i := range fx.Sales {
		if fx.Sales[i].ID == uuid.Nil {
			fx.Sales[i].ID = uuid.New()
		}
	}
	for i := range fx.Employees {
		if fx.Employees[i].ID == uuid.Nil {
			fx.Employees[i].ID = uuid.New()
		}
	}
	for i := range fx.Customers {
		if fx.Customers[i].ID == uuid.Nil {
			fx.Customers[i].ID = uuid.New()
		}
	}

	if err := seedBatch(ctx, database, fx.Orders); err != nil {
		return err
	}
	if err := seedBatch(ctx, database, fx.Suppliers); err != nil {
		return err
	}
	if err := seedBatch(ctx, database, fx.Inventory); err != nil {
		return err
	}
	if err := seedBatch(ctx, database, fx.Sales); err != nil {
		return err
	}
	if err := seedBatch(ctx, database, fx.Employees); err != nil {
		return err
	}
	return seedBatch(ctx, database, fx.Customers)
}

func seedBatch[T any](ctx context.Context, database *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return database.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}
