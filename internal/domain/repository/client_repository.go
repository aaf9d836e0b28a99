package repository

import (
	"context"

	"github.com/follonierjack89-bit/fte-facturation/internal/domain/entity"
	"github.com/follonierjack89-bit/fte-facturation/pkg/pagination"
)

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uint) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error)
}
