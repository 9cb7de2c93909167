package infra

import (
	"fmt"

	"essencia/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for the full schema, including the stock_movements → inventory
// FK with ON DELETE CASCADE that keeps movement history tied to its item.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations applies the schema; also used by integration tests against a
// scratch database.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Fragrance{},
		&model.Product{},
		&model.InventoryItem{},
		&model.StockMovement{},
		&model.Banner{},
		&model.MarqueeSetting{},
		&model.Asset{},
	)
}
