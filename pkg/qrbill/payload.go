// Package qrbill builds the text payload of a Swiss QR-bill following
// the Swiss Payments Committee SPC 0200 specification. The payload is a
// newline-delimited list of fields whose order and count are fixed by
// the standard; downstream scanners parse by position, so fields are
// emitted even when empty.
package qrbill

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	qrType     = "SPC"
	version    = "0200"
	codingType = "1"
	// Combined address type: name, address line 1, address line 2.
	addressTypeStructured = "K"
	referenceTypeNone     = "NON"
	trailer               = "EPD"
	// DefaultCurrency is the only currency the application bills in.
	DefaultCurrency = "CHF"
)

// Party is one side of the payment: the creditor (biller) or the debtor
// (invoiced client).
type Party struct {
	Name    string
	Street  string
	ZipCode string
	City    string
	Country string
}

// Bill carries everything needed to build a payload.
type Bill struct {
	// Account is the creditor QR-IBAN; whitespace is stripped on output.
	Account  string
	Creditor Party
	Debtor   Party
	// Amount is the billed total; nil produces an empty amount field.
	Amount *decimal.Decimal
	// AdditionalInfo is unstructured remittance text, e.g. invoice notes.
	AdditionalInfo string
}

// NormalizeCountry maps the literal "Switzerland" (trimmed,
// case-insensitive) to the ISO code "CH". Any other value is returned
// unchanged, which makes the normalization idempotent.
func NormalizeCountry(value string) string {
	if strings.EqualFold(strings.TrimSpace(value), "switzerland") {
		return "CH"
	}
	return value
}

// Payload renders the fixed SPC 0200 field sequence. Missing party data
// is emitted as empty fields rather than dropped; data-quality problems
// are surfaced to the user before an invoice is finalized, not here.
func (b Bill) Payload() string {
	amount := ""
	if b.Amount != nil {
		amount = b.Amount.StringFixed(2)
	}

	fields := []string{
		qrType,
		version,
		codingType,
		stripWhitespace(b.Account),
	}
	fields = append(fields, addressFields(b.Creditor)...)
	fields = append(fields,
		// Ultimate creditor, reserved for future use.
		"", "", "", "", "",
		DefaultCurrency,
		amount,
	)
	fields = append(fields, addressFields(b.Debtor)...)
	fields = append(fields,
		referenceTypeNone,
		"", // reference number
		b.AdditionalInfo,
		trailer,
		"", // alternative scheme 1
		"", // alternative scheme 2
	)

	return strings.Join(fields, "\n")
}

// addressFields renders a combined ("K") address block. The house
// number field stays empty because addresses are stored as single
// street lines.
func addressFields(p Party) []string {
	return []string{
		addressTypeStructured,
		p.Name,
		p.Street,
		"",
		p.ZipCode,
		p.City,
		NormalizeCountry(p.Country),
	}
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
