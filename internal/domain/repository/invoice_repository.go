package repository

import (
	"context"

	"github.com/follonierjack89-bit/fte-facturation/internal/domain/entity"
	"github.com/follonierjack89-bit/fte-facturation/pkg/pagination"
)

// InvoiceRepository defines the interface for invoice data access
type InvoiceRepository interface {
	// Create persists the invoice with its lines, assigns the invoice
	// number from the settings counter and advances the counter, all in
	// one transaction so a number can never be issued twice.
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uint) (*entity.Invoice, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Invoice, int64, error)
}
