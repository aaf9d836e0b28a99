package billing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		price    string
		discount string
		want     string
	}{
		{"no discount", "2", "10.00", "0", "20"},
		{"ten percent discount", "1", "5.50", "10", "4.95"},
		{"fractional quantity", "4", "2.25", "0", "9"},
		{"full discount", "3", "99.90", "100", "0"},
		{"half discount rounds", "1", "33.33", "50", "16.67"},
		{"zero quantity", "0", "100.00", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineTotal(dec(tt.quantity), dec(tt.price), dec(tt.discount))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("LineTotal(%s, %s, %s) = %s, want %s",
					tt.quantity, tt.price, tt.discount, got, tt.want)
			}
		})
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		lines         []Line
		vatRate       string
		wantSubtotal  string
		wantVATAmount string
		wantTotal     string
	}{
		{
			name:          "empty invoice",
			lines:         nil,
			vatRate:       "0.077",
			wantSubtotal:  "0",
			wantVATAmount: "0",
			wantTotal:     "0",
		},
		{
			name: "three lines with swiss vat",
			lines: []Line{
				{Quantity: dec("2"), UnitPrice: dec("10.00"), DiscountPercent: dec("0")},
				{Quantity: dec("1"), UnitPrice: dec("5.50"), DiscountPercent: dec("10")},
				{Quantity: dec("4"), UnitPrice: dec("2.25"), DiscountPercent: dec("0")},
			},
			vatRate:       "0.077",
			wantSubtotal:  "33.95",
			wantVATAmount: "2.61",
			wantTotal:     "36.56",
		},
		{
			name: "vat disabled",
			lines: []Line{
				{Quantity: dec("2"), UnitPrice: dec("10.00"), DiscountPercent: dec("0")},
			},
			vatRate:       "0",
			wantSubtotal:  "20",
			wantVATAmount: "0",
			wantTotal:     "20",
		},
		{
			name: "vat rounding on small subtotal",
			lines: []Line{
				{Quantity: dec("1"), UnitPrice: dec("0.65"), DiscountPercent: dec("0")},
			},
			vatRate:       "0.077",
			wantSubtotal:  "0.65",
			wantVATAmount: "0.05",
			wantTotal:     "0.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.lines, dec(tt.vatRate))
			if !got.Subtotal.Equal(dec(tt.wantSubtotal)) {
				t.Errorf("Subtotal = %s, want %s", got.Subtotal, tt.wantSubtotal)
			}
			if !got.VATAmount.Equal(dec(tt.wantVATAmount)) {
				t.Errorf("VATAmount = %s, want %s", got.VATAmount, tt.wantVATAmount)
			}
			if !got.Total.Equal(dec(tt.wantTotal)) {
				t.Errorf("Total = %s, want %s", got.Total, tt.wantTotal)
			}
		})
	}
}

func TestComputeTotalIsSubtotalPlusVAT(t *testing.T) {
	lines := []Line{
		{Quantity: dec("3"), UnitPrice: dec("19.95"), DiscountPercent: dec("5")},
		{Quantity: dec("1.5"), UnitPrice: dec("42.10"), DiscountPercent: dec("0")},
	}
	got := Compute(lines, dec("0.081"))
	if !got.Total.Equal(got.Subtotal.Add(got.VATAmount).Round(2)) {
		t.Errorf("Total %s != round(Subtotal %s + VATAmount %s)", got.Total, got.Subtotal, got.VATAmount)
	}
}
