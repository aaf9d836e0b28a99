// Package billing computes invoice amounts. All functions are pure and
// operate on decimals; amounts are rounded to 2 places at every derived
// stage (line total, subtotal, VAT, total) so results match the amounts
// printed on the invoice.
package billing

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Line is the calculation input for a single invoice line.
// Callers are responsible for validating ranges (quantity >= 0,
// unit price >= 0, discount in [0,100]) before computing.
type Line struct {
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
}

// Totals holds the derived amounts of an invoice.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	VATAmount decimal.Decimal `json:"vat_amount"`
	Total     decimal.Decimal `json:"total"`
}

// LineTotal returns quantity * unitPrice * (1 - discount/100), rounded
// to 2 places.
func LineTotal(quantity, unitPrice, discountPercent decimal.Decimal) decimal.Decimal {
	factor := one.Sub(discountPercent.Div(hundred))
	return quantity.Mul(unitPrice).Mul(factor).Round(2)
}

// Compute derives subtotal, VAT amount and grand total from the given
// lines. The subtotal is the rounded sum of the rounded line totals.
// VAT is zero when the rate is zero; otherwise subtotal * rate, rounded.
func Compute(lines []Line, vatRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(LineTotal(line.Quantity, line.UnitPrice, line.DiscountPercent))
	}
	subtotal = subtotal.Round(2)

	vatAmount := decimal.Zero
	if !vatRate.IsZero() {
		vatAmount = subtotal.Mul(vatRate).Round(2)
	}

	return Totals{
		Subtotal:  subtotal,
		VATAmount: vatAmount,
		Total:     subtotal.Add(vatAmount).Round(2),
	}
}
