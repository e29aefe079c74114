package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"opsdesk/internal/models"
)

func init() {
	goose.AddMigrationContext(upInit, downInit)
}

func open(tx *sql.Tx) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{Conn: tx, PreferSimpleProtocol: true}), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: false},
		Logger:         logger.Default.LogMode(logger.Silent),
	})
}

func upInit(ctx context.Context, tx *sql.Tx) error {
	gormDB, err := open(tx)
	if err != nil {
		return err
	}

	if err := gormDB.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}

	return gormDB.WithContext(ctx).AutoMigrate(
		&models.Order{},
		&models.Supplier{},
		&models.InventoryItem{},
		&models.Sale{},
		&models.Employee{},
		&models.Customer{},
		&models.AuditLog{},
	)
}

func downInit(ctx context.Context, tx *sql.Tx) error {
	gormDB, err := open(tx)
	if err != nil {
		return err
	}

	return gormDB.WithContext(ctx).Migrator().DropTable(
		&models.AuditLog{},
		&models.Customer{},
		&models.Employee{},
		&models.Sale{},
		&models.InventoryItem{},
		&models.Supplier{},
		&models.Order{},
	)
}
