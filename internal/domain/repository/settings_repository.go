package repository

import (
	"context"

	"github.com/follonierjack89-bit/fte-facturation/internal/domain/entity"
)

// SettingsRepository defines the interface for the singleton company
// settings row
type SettingsRepository interface {
	// Get returns the settings row, or nil when it does not exist yet.
	Get(ctx context.Context) (*entity.CompanySettings, error)
	Create(ctx context.Context, settings *entity.CompanySettings) error
	Update(ctx context.Context, settings *entity.CompanySettings) error
}
