package service

import (
	"testing"

	"gorm.io/gorm"

	"github.com/follonierjack89-bit/fte-facturation/internal/config"
	"github.com/follonierjack89-bit/fte-facturation/internal/infrastructure/database"
)

// newTestDB opens a throwaway in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteDB(&config.DatabaseConfig{Path: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
