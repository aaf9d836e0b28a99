package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/follonierjack89-bit/fte-facturation/internal/domain/entity"
	domainRepo "github.com/follonierjack89-bit/fte-facturation/internal/domain/repository"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves the singleton settings row
func (r *settingsRepository) Get(ctx context.Context) (*entity.CompanySettings, error) {
	var settings entity.CompanySettings
	err := r.db.WithContext(ctx).First(&settings, entity.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Create creates the settings row
func (r *settingsRepository) Create(ctx context.Context, settings *entity.CompanySettings) error {
	settings.ID = entity.SettingsID
	return r.db.WithContext(ctx).Create(settings).Error
}

// Update updates the settings row
func (r *settingsRepository) Update(ctx context.Context, settings *entity.CompanySettings) error {
	settings.ID = entity.SettingsID
	return r.db.WithContext(ctx).Save(settings).Error
}
