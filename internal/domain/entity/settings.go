package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SettingsID is the fixed primary key of the singleton settings row.
const SettingsID uint = 1

// CompanySettings holds the biller identity, the QR-IBAN, the VAT
// configuration and the invoice numbering state. Exactly one row
// exists; it is created lazily with defaults on first read.
type CompanySettings struct {
	ID            uint            `gorm:"primaryKey" json:"-"`
	CompanyName   string          `gorm:"size:255;not null" json:"company_name"`
	Street        string          `gorm:"size:255;not null" json:"street"`
	ZipCode       string          `gorm:"size:20;not null" json:"zip_code"`
	City          string          `gorm:"size:255;not null" json:"city"`
	Country       string          `gorm:"size:100;not null" json:"country"`
	QRIBAN        string          `gorm:"size:50;column:qr_iban" json:"qr_iban"`
	VATEnabled    bool            `gorm:"not null;default:true" json:"vat_enabled"`
	VATRate       decimal.Decimal `gorm:"type:decimal(6,4);not null" json:"vat_rate"`
	LogoPath      string          `gorm:"size:255" json:"logo_path"`
	InvoicePrefix string          `gorm:"size:20;not null" json:"invoice_prefix"`
	NextNumber    int             `gorm:"not null;default:1" json:"next_number"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName returns the table name for the CompanySettings model
func (CompanySettings) TableName() string {
	return "company_settings"
}

// DefaultCompanySettings returns the settings row created on first
// read.
func DefaultCompanySettings() *CompanySettings {
	return &CompanySettings{
		ID:            SettingsID,
		CompanyName:   "FTE Sàrl",
		Street:        "Rue Centrale 104",
		ZipCode:       "1983",
		City:          "Evolène",
		Country:       "Switzerland",
		QRIBAN:        "CH0000000000000000000",
		VATEnabled:    true,
		VATRate:       decimal.RequireFromString("0.077"),
		InvoicePrefix: "2025-",
		NextNumber:    1,
	}
}

// InvoiceNumber formats the number the next invoice will carry:
// prefix followed by the zero-padded sequence, e.g. "2025-007".
func (s *CompanySettings) InvoiceNumber() string {
	return fmt.Sprintf("%s%03d", s.InvoicePrefix, s.NextNumber)
}

// EffectiveVATRate is the rate applied to new invoices: zero when VAT
// is disabled.
func (s *CompanySettings) EffectiveVATRate() decimal.Decimal {
	if !s.VATEnabled {
		return decimal.Zero
	}
	return s.VATRate
}
