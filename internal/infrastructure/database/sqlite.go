package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/follonierjack89-bit/fte-facturation/internal/config"
	"github.com/follonierjack89-bit/fte-facturation/internal/domain/entity"
)

// NewSQLiteDB opens (and creates if needed) the SQLite database file
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer: SQLite serializes writes anyway, and the
	// application serves one local user.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.Printf("Successfully opened SQLite database at %s", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Client{},
		&entity.Item{},
		&entity.Invoice{},
		&entity.InvoiceLine{},
		&entity.CompanySettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the singleton settings row when it does not
// exist yet, so first reads and the invoice number counter have a row
// to work with.
func SeedDefaultData(db *gorm.DB) error {
	var existing entity.CompanySettings
	err := db.First(&existing, entity.SettingsID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	if err := db.Create(entity.DefaultCompanySettings()).Error; err != nil {
		return fmt.Errorf("failed to seed default settings: %w", err)
	}
	log.Println("Seeded default company settings")
	return nil
}
