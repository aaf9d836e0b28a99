package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/follonierjack89-bit/fte-facturation/internal/domain/entity"
	domainRepo "github.com/follonierjack89-bit/fte-facturation/internal/domain/repository"
	"github.com/follonierjack89-bit/fte-facturation/pkg/pagination"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create inserts the invoice and its lines and advances the settings
// numbering counter in the same transaction. The invoice number is
// assigned inside the transaction, so two saves can never share one.
func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var settings entity.CompanySettings
		if err := tx.First(&settings, entity.SettingsID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				settings = *entity.DefaultCompanySettings()
				if err := tx.Create(&settings).Error; err != nil {
					return err
				}
			} else {
				return err
			}
		}

		invoice.Number = settings.InvoiceNumber()
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}

		settings.NextNumber++
		return tx.Save(&settings).Error
	})
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uint) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Lines").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.InvoiceLine{}, "invoice_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Invoice{}, "id = ?", id).Error
	})
}

func (r *invoiceRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Client").
		Preload("Lines").
		Order("id DESC").
		Find(&invoices).Error

	return invoices, total, err
}
