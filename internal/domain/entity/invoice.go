package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/follonierjack89-bit/fte-facturation/pkg/billing"
)

// Invoice represents a billed invoice. Monetary totals are derived from
// the lines and the VAT rate, never stored.
type Invoice struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Number      string          `gorm:"size:100;uniqueIndex;not null" json:"number"`
	InvoiceDate time.Time       `gorm:"type:date;not null" json:"invoice_date"`
	ClientID    uint            `gorm:"not null;index" json:"client_id"`
	Notes       string          `gorm:"type:text" json:"notes"`
	VATRate     decimal.Decimal `gorm:"type:decimal(6,4);not null" json:"vat_rate"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relationships
	Client *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Lines  []InvoiceLine `gorm:"foreignKey:InvoiceID" json:"lines,omitempty"`
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// BillingLines converts the invoice lines to calculator inputs.
func (i Invoice) BillingLines() []billing.Line {
	lines := make([]billing.Line, 0, len(i.Lines))
	for _, l := range i.Lines {
		lines = append(lines, billing.Line{
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			DiscountPercent: l.DiscountPercent,
		})
	}
	return lines
}

// Totals computes subtotal, VAT amount and grand total.
func (i Invoice) Totals() billing.Totals {
	return billing.Compute(i.BillingLines(), i.VATRate)
}

// MarshalJSON adds the derived amounts to API responses.
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	totals := i.Totals()
	return json.Marshal(&struct {
		Alias
		Subtotal  decimal.Decimal `json:"subtotal"`
		VATAmount decimal.Decimal `json:"vat_amount"`
		Total     decimal.Decimal `json:"total"`
	}{
		Alias:     Alias(i),
		Subtotal:  totals.Subtotal,
		VATAmount: totals.VATAmount,
		Total:     totals.Total,
	})
}

// InvoiceLine represents a line item on an invoice. ItemID is set when
// the line was filled from a catalog item; free-text lines leave it
// nil.
type InvoiceLine struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	InvoiceID       uint            `gorm:"not null;index" json:"invoice_id"`
	ItemID          *uint           `gorm:"index" json:"item_id,omitempty"`
	ArticleNumber   string          `gorm:"size:100" json:"article_number"`
	Description     string          `gorm:"size:255;not null" json:"description"`
	Quantity        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"discount_percent"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relationships
	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// TableName returns the table name for the InvoiceLine model
func (InvoiceLine) TableName() string {
	return "invoice_lines"
}

// Total returns quantity * unit price minus the discount, rounded to 2
// places.
func (l InvoiceLine) Total() decimal.Decimal {
	return billing.LineTotal(l.Quantity, l.UnitPrice, l.DiscountPercent)
}

// MarshalJSON adds the derived line total to API responses.
func (l InvoiceLine) MarshalJSON() ([]byte, error) {
	type Alias InvoiceLine
	return json.Marshal(&struct {
		Alias
		Total decimal.Decimal `json:"total"`
	}{
		Alias: Alias(l),
		Total: l.Total(),
	})
}
