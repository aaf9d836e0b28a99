package repository

import (
	"context"

	"github.com/follonierjack89-bit/fte-facturation/internal/domain/entity"
	"github.com/follonierjack89-bit/fte-facturation/pkg/pagination"
)

// ItemRepository defines the interface for catalog item data access
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uint) (*entity.Item, error)
	// GetByReference returns the item with the exact reference, or nil
	// when none exists. References carry a unique index.
	GetByReference(ctx context.Context, reference string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Item, int64, error)
}
