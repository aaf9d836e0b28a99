package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/follonierjack89-bit/fte-facturation/internal/domain/entity"
	"github.com/follonierjack89-bit/fte-facturation/internal/domain/repository"
	"github.com/follonierjack89-bit/fte-facturation/pkg/apperror"
	"github.com/follonierjack89-bit/fte-facturation/pkg/pagination"
	"github.com/follonierjack89-bit/fte-facturation/pkg/pdfgen"
	"github.com/follonierjack89-bit/fte-facturation/pkg/qrbill"
)

// InvoiceService handles invoice business logic
type InvoiceService struct {
	invoiceRepo     repository.InvoiceRepository
	clientRepo      repository.ClientRepository
	itemRepo        repository.ItemRepository
	settingsService *SettingsService
	pdfGenerator    *pdfgen.Generator
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	itemRepo repository.ItemRepository,
	settingsService *SettingsService,
	pdfGenerator *pdfgen.Generator,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:     invoiceRepo,
		clientRepo:      clientRepo,
		itemRepo:        itemRepo,
		settingsService: settingsService,
		pdfGenerator:    pdfGenerator,
	}
}

// InvoiceLineInput represents one line of a new invoice
type InvoiceLineInput struct {
	ItemID          *uint           `json:"item_id"`
	ArticleNumber   string          `json:"article_number"`
	Description     string          `json:"description" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// CreateInvoiceInput represents input for creating an invoice.
// InvoiceDate is a "2006-01-02" date; empty means today.
type CreateInvoiceInput struct {
	ClientID    uint               `json:"client_id" binding:"required"`
	InvoiceDate string             `json:"invoice_date"`
	Notes       string             `json:"notes"`
	Lines       []InvoiceLineInput `json:"lines"`
}

var oneHundred = decimal.NewFromInt(100)

func validateLines(lines []InvoiceLineInput) []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	for i, line := range lines {
		if line.Description == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("lines[%d].description", i), Message: "is required",
			})
		}
		if line.Quantity.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("lines[%d].quantity", i), Message: "must not be negative",
			})
		}
		if line.UnitPrice.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("lines[%d].unit_price", i), Message: "must not be negative",
			})
		}
		if line.DiscountPercent.IsNegative() || line.DiscountPercent.GreaterThan(oneHundred) {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("lines[%d].discount_percent", i), Message: "must be between 0 and 100",
			})
		}
	}
	return fieldErrors
}

// CreateInvoice creates a new invoice. The invoice number is assigned
// from the settings counter at save time and the VAT rate in force is
// frozen onto the invoice.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*entity.Invoice, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to get client")
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if fieldErrors := validateLines(input.Lines); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	invoiceDate := time.Now()
	if input.InvoiceDate != "" {
		parsed, err := time.Parse("2006-01-02", input.InvoiceDate)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invoice date must be formatted as YYYY-MM-DD")
		}
		invoiceDate = parsed
	}

	invoice := &entity.Invoice{
		InvoiceDate: invoiceDate,
		ClientID:    input.ClientID,
		Notes:       input.Notes,
		VATRate:     settings.EffectiveVATRate(),
	}

	for _, line := range input.Lines {
		if line.ItemID != nil {
			item, err := s.itemRepo.GetByID(ctx, *line.ItemID)
			if err != nil {
				return nil, apperror.NewAppError(500, "Failed to get item")
			}
			if item == nil {
				return nil, apperror.NewNotFoundError("Item")
			}
			if line.ArticleNumber == "" {
				line.ArticleNumber = item.Reference
			}
		}
		invoice.Lines = append(invoice.Lines, entity.InvoiceLine{
			ItemID:          line.ItemID,
			ArticleNumber:   line.ArticleNumber,
			Description:     line.Description,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			DiscountPercent: line.DiscountPercent,
		})
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, apperror.NewAppError(500, "Failed to create invoice")
	}

	return s.GetInvoice(ctx, invoice.ID)
}

// GetInvoice retrieves an invoice by ID with its client and lines
func (s *InvoiceService) GetInvoice(ctx context.Context, id uint) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to get invoice")
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// DeleteInvoice deletes an invoice and its lines
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uint) error {
	if _, err := s.GetInvoice(ctx, id); err != nil {
		return err
	}
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return apperror.NewAppError(500, "Failed to delete invoice")
	}
	return nil
}

// ListInvoices retrieves invoices with pagination
func (s *InvoiceService) ListInvoices(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to list invoices")
	}

	return pagination.NewPaginatedResult(invoices,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// QRPayload builds the Swiss QR-bill payload text for an invoice.
func (s *InvoiceService) QRPayload(ctx context.Context, id uint) (string, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return "", err
	}
	if invoice.Client == nil {
		return "", apperror.NewUnprocessableError("Invoice client no longer exists")
	}
	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return "", err
	}

	total := invoice.Totals().Total
	bill := qrbill.Bill{
		Account: settings.QRIBAN,
		Creditor: qrbill.Party{
			Name:    settings.CompanyName,
			Street:  settings.Street,
			ZipCode: settings.ZipCode,
			City:    settings.City,
			Country: settings.Country,
		},
		Debtor: qrbill.Party{
			Name:    invoice.Client.Company,
			Street:  invoice.Client.Street,
			ZipCode: invoice.Client.ZipCode,
			City:    invoice.Client.City,
			Country: invoice.Client.Country,
		},
		Amount:         &total,
		AdditionalInfo: invoice.Notes,
	}
	return bill.Payload(), nil
}

// GeneratePDF renders the invoice to a PDF file and returns its path.
func (s *InvoiceService) GeneratePDF(ctx context.Context, id uint) (string, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return "", err
	}
	if invoice.Client == nil {
		return "", apperror.NewUnprocessableError("Invoice client no longer exists")
	}
	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	payload, err := s.QRPayload(ctx, id)
	if err != nil {
		return "", err
	}

	totals := invoice.Totals()
	doc := &pdfgen.Document{
		Number: invoice.Number,
		Date:   invoice.InvoiceDate,
		Creditor: pdfgen.Address{
			Name:    settings.CompanyName,
			Street:  settings.Street,
			ZipCode: settings.ZipCode,
			City:    settings.City,
			Country: settings.Country,
		},
		Debtor: pdfgen.Address{
			Name:    invoice.Client.Company,
			Street:  invoice.Client.Street,
			ZipCode: invoice.Client.ZipCode,
			City:    invoice.Client.City,
			Country: invoice.Client.Country,
		},
		Subtotal:  totals.Subtotal,
		VATAmount: totals.VATAmount,
		Total:     totals.Total,
		Notes:     invoice.Notes,
		QRIBAN:    settings.QRIBAN,
		QRPayload: payload,
		LogoPath:  settings.LogoPath,
	}
	for _, line := range invoice.Lines {
		doc.Lines = append(doc.Lines, pdfgen.Line{
			ArticleNumber:   line.ArticleNumber,
			Description:     line.Description,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			DiscountPercent: line.DiscountPercent,
			Total:           line.Total(),
		})
	}

	path, err := s.pdfGenerator.Generate(doc)
	if err != nil {
		return "", apperror.NewAppError(500, "Failed to generate invoice PDF")
	}
	return path, nil
}
