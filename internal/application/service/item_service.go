package service

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/follonierjack89-bit/fte-facturation/internal/domain/entity"
	"github.com/follonierjack89-bit/fte-facturation/internal/domain/repository"
	"github.com/follonierjack89-bit/fte-facturation/pkg/apperror"
	"github.com/follonierjack89-bit/fte-facturation/pkg/pagination"
)

// ItemService handles catalog item business logic
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// CreateItemInput represents input for creating an item
type CreateItemInput struct {
	Reference       string          `json:"reference" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DefaultQuantity decimal.Decimal `json:"default_quantity"`
}

// CreateItem creates a new catalog item
func (s *ItemService) CreateItem(ctx context.Context, input CreateItemInput) (*entity.Item, error) {
	reference := strings.TrimSpace(input.Reference)
	if reference == "" {
		return nil, apperror.NewBadRequestError("Reference is required")
	}

	existing, err := s.itemRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to check item reference")
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An item with this reference already exists")
	}

	if input.DefaultQuantity.IsZero() {
		input.DefaultQuantity = decimal.NewFromInt(1)
	}

	item := &entity.Item{
		Reference:       reference,
		Description:     input.Description,
		UnitPrice:       input.UnitPrice,
		DefaultQuantity: input.DefaultQuantity,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, apperror.NewAppError(500, "Failed to create item")
	}
	return item, nil
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uint) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to get item")
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// GetItemByReference retrieves an item by its unique reference
func (s *ItemService) GetItemByReference(ctx context.Context, reference string) (*entity.Item, error) {
	item, err := s.itemRepo.GetByReference(ctx, strings.TrimSpace(reference))
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to get item")
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// UpdateItemInput represents input for updating an item
type UpdateItemInput struct {
	Reference       *string          `json:"reference"`
	Description     *string          `json:"description"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	DefaultQuantity *decimal.Decimal `json:"default_quantity"`
}

// UpdateItem updates an existing item
func (s *ItemService) UpdateItem(ctx context.Context, id uint, input UpdateItemInput) (*entity.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Reference != nil {
		reference := strings.TrimSpace(*input.Reference)
		if reference == "" {
			return nil, apperror.NewBadRequestError("Reference cannot be empty")
		}
		if reference != item.Reference {
			existing, err := s.itemRepo.GetByReference(ctx, reference)
			if err != nil {
				return nil, apperror.NewAppError(500, "Failed to check item reference")
			}
			if existing != nil {
				return nil, apperror.NewConflictError("An item with this reference already exists")
			}
			item.Reference = reference
		}
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.UnitPrice != nil {
		item.UnitPrice = *input.UnitPrice
	}
	if input.DefaultQuantity != nil {
		item.DefaultQuantity = *input.DefaultQuantity
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, apperror.NewAppError(500, "Failed to update item")
	}
	return item, nil
}

// DeleteItem deletes an item
func (s *ItemService) DeleteItem(ctx context.Context, id uint) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return apperror.NewAppError(500, "Failed to delete item")
	}
	return nil
}

// ListItems retrieves items with pagination and optional search
func (s *ItemService) ListItems(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params, search)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to list items")
	}

	return pagination.NewPaginatedResult(items,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ImportResult summarizes a CSV import run
type ImportResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}

// Header synonyms accepted in import files, in order of preference.
// Matching is case-insensitive on trimmed header cells.
var (
	referenceColumns   = []string{"reference", "référence", "article", "article n°", "article no"}
	descriptionColumns = []string{"description", "desc"}
	priceColumns       = []string{"price", "unit_price", "prix", "pu", "prix unitaire"}
)

// ImportCSV upserts catalog items from a CSV stream keyed by reference.
// Rows without a reference or with an unparseable price are counted as
// skipped, never aborting the run. Updated items keep their stored
// default quantity.
func (s *ItemService) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperror.NewBadRequestError("CSV file is empty or unreadable")
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	refIdx := findColumn(header, referenceColumns)
	descIdx := findColumn(header, descriptionColumns)
	priceIdx := findColumn(header, priceColumns)
	if refIdx < 0 || descIdx < 0 || priceIdx < 0 {
		return nil, apperror.NewBadRequestError("CSV is missing a reference, description or price column")
	}

	result := &ImportResult{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			continue
		}

		reference := cell(record, refIdx)
		if reference == "" {
			result.Skipped++
			continue
		}

		price, err := decimal.NewFromString(strings.ReplaceAll(cell(record, priceIdx), ",", "."))
		if err != nil {
			result.Skipped++
			continue
		}
		description := cell(record, descIdx)

		existing, err := s.itemRepo.GetByReference(ctx, reference)
		if err != nil {
			return nil, apperror.NewAppError(500, "Failed to import items")
		}

		if existing != nil {
			existing.Description = description
			existing.UnitPrice = price
			if err := s.itemRepo.Update(ctx, existing); err != nil {
				return nil, apperror.NewAppError(500, "Failed to import items")
			}
			result.Updated++
			continue
		}

		item := &entity.Item{
			Reference:       reference,
			Description:     description,
			UnitPrice:       price,
			DefaultQuantity: decimal.NewFromInt(1),
		}
		if err := s.itemRepo.Create(ctx, item); err != nil {
			return nil, apperror.NewAppError(500, "Failed to import items")
		}
		result.Inserted++
	}

	return result, nil
}

// findColumn returns the index of the first header matching one of the
// candidates, trying candidates in order.
func findColumn(header []string, candidates []string) int {
	for _, candidate := range candidates {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), candidate) {
				return i
			}
		}
	}
	return -1
}

func cell(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
