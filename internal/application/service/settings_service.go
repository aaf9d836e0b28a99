package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/follonierjack89-bit/fte-facturation/internal/domain/entity"
	"github.com/follonierjack89-bit/fte-facturation/internal/domain/repository"
	"github.com/follonierjack89-bit/fte-facturation/pkg/apperror"
)

// SettingsService handles company settings business logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the settings row, creating it with defaults when
// it does not exist yet.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.CompanySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to get settings")
	}
	if settings == nil {
		settings = entity.DefaultCompanySettings()
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, apperror.NewAppError(500, "Failed to initialize settings")
		}
	}
	return settings, nil
}

// UpdateSettingsInput represents input for updating company settings
type UpdateSettingsInput struct {
	CompanyName   *string          `json:"company_name"`
	Street        *string          `json:"street"`
	ZipCode       *string          `json:"zip_code"`
	City          *string          `json:"city"`
	Country       *string          `json:"country"`
	QRIBAN        *string          `json:"qr_iban"`
	VATEnabled    *bool            `json:"vat_enabled"`
	VATRate       *decimal.Decimal `json:"vat_rate"`
	LogoPath      *string          `json:"logo_path"`
	InvoicePrefix *string          `json:"invoice_prefix"`
	NextNumber    *int             `json:"next_number"`
}

// UpdateSettings updates the settings row
func (s *SettingsService) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*entity.CompanySettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	var fieldErrors []apperror.FieldError
	if input.VATRate != nil && input.VATRate.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "vat_rate", Message: "must not be negative",
		})
	}
	if input.NextNumber != nil && *input.NextNumber < 1 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "next_number", Message: "must be at least 1",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if input.CompanyName != nil {
		settings.CompanyName = *input.CompanyName
	}
	if input.Street != nil {
		settings.Street = *input.Street
	}
	if input.ZipCode != nil {
		settings.ZipCode = *input.ZipCode
	}
	if input.City != nil {
		settings.City = *input.City
	}
	if input.Country != nil {
		settings.Country = *input.Country
	}
	if input.QRIBAN != nil {
		settings.QRIBAN = *input.QRIBAN
	}
	if input.VATEnabled != nil {
		settings.VATEnabled = *input.VATEnabled
	}
	if input.VATRate != nil {
		settings.VATRate = *input.VATRate
	}
	if input.LogoPath != nil {
		settings.LogoPath = *input.LogoPath
	}
	if input.InvoicePrefix != nil {
		settings.InvoicePrefix = *input.InvoicePrefix
	}
	if input.NextNumber != nil {
		settings.NextNumber = *input.NextNumber
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, apperror.NewAppError(500, "Failed to update settings")
	}
	return settings, nil
}
