package service

import (
	"context"

	"github.com/follonierjack89-bit/fte-facturation/internal/domain/entity"
	"github.com/follonierjack89-bit/fte-facturation/internal/domain/repository"
	"github.com/follonierjack89-bit/fte-facturation/pkg/apperror"
	"github.com/follonierjack89-bit/fte-facturation/pkg/pagination"
)

// ClientService handles client business logic
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientInput represents input for creating a client
type CreateClientInput struct {
	Company      string `json:"company" binding:"required"`
	Street       string `json:"street"`
	ZipCode      string `json:"zip_code"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	InternalCode string `json:"internal_code"`
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input CreateClientInput) (*entity.Client, error) {
	if input.Country == "" {
		input.Country = "Switzerland"
	}

	client := &entity.Client{
		Company:      input.Company,
		Street:       input.Street,
		ZipCode:      input.ZipCode,
		City:         input.City,
		Country:      input.Country,
		Email:        input.Email,
		Phone:        input.Phone,
		InternalCode: input.InternalCode,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, apperror.NewAppError(500, "Failed to create client")
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uint) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to get client")
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// UpdateClientInput represents input for updating a client
type UpdateClientInput struct {
	Company      *string `json:"company"`
	Street       *string `json:"street"`
	ZipCode      *string `json:"zip_code"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	InternalCode *string `json:"internal_code"`
}

// UpdateClient updates an existing client
func (s *ClientService) UpdateClient(ctx context.Context, id uint, input UpdateClientInput) (*entity.Client, error) {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Company != nil {
		client.Company = *input.Company
	}
	if input.Street != nil {
		client.Street = *input.Street
	}
	if input.ZipCode != nil {
		client.ZipCode = *input.ZipCode
	}
	if input.City != nil {
		client.City = *input.City
	}
	if input.Country != nil {
		client.Country = *input.Country
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.InternalCode != nil {
		client.InternalCode = *input.InternalCode
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, apperror.NewAppError(500, "Failed to update client")
	}
	return client, nil
}

// DeleteClient deletes a client
func (s *ClientService) DeleteClient(ctx context.Context, id uint) error {
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return apperror.NewAppError(500, "Failed to delete client")
	}
	return nil
}

// ListClients retrieves clients with pagination and optional search
func (s *ClientService) ListClients(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Client], error) {
	clients, total, err := s.clientRepo.List(ctx, params, search)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to list clients")
	}

	return pagination.NewPaginatedResult(clients,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
