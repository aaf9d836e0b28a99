package qrbill

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// payloadFieldCount is fixed by the SPC 0200 standard: header (3),
// account (1), creditor (7), ultimate creditor (5), currency and amount
// (2), debtor (7), reference (2), additional info (1), trailer (1),
// alternative schemes (2).
const payloadFieldCount = 31

func sampleBill() Bill {
	amount := decimal.RequireFromString("36.56")
	return Bill{
		Account: "CH93 0076 2011 6238 5295 7",
		Creditor: Party{
			Name:    "Acme Sàrl",
			Street:  "Rue Centrale 104",
			ZipCode: "1983",
			City:    "Evolène",
			Country: "Switzerland",
		},
		Debtor: Party{
			Name:    "Client SA",
			Street:  "Avenue de la Gare 12",
			ZipCode: "1003",
			City:    "Lausanne",
			Country: "Switzerland",
		},
		Amount:         &amount,
		AdditionalInfo: "Paiement à 30 jours",
	}
}

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Switzerland", "CH"},
		{"switzerland ", "CH"},
		{" SWITZERLAND", "CH"},
		{"CH", "CH"},
		{"France", "France"},
		{"DE", "DE"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeCountry(tt.in); got != tt.want {
			t.Errorf("NormalizeCountry(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPayloadFieldOrder(t *testing.T) {
	fields := strings.Split(sampleBill().Payload(), "\n")

	if len(fields) != payloadFieldCount {
		t.Fatalf("payload has %d fields, want %d", len(fields), payloadFieldCount)
	}

	fixed := map[int]string{
		0:  "SPC",
		1:  "0200",
		2:  "1",
		3:  "CH9300762011623852957",
		4:  "K",
		5:  "Acme Sàrl",
		6:  "Rue Centrale 104",
		7:  "",
		8:  "1983",
		9:  "Evolène",
		10: "CH",
		16: "CHF",
		17: "36.56",
		18: "K",
		19: "Client SA",
		24: "CH",
		25: "NON",
		26: "",
		27: "Paiement à 30 jours",
		28: "EPD",
		29: "",
		30: "",
	}
	for idx, want := range fixed {
		if fields[idx] != want {
			t.Errorf("field %d = %q, want %q", idx, fields[idx], want)
		}
	}

	// Ultimate creditor block stays reserved.
	for idx := 11; idx <= 15; idx++ {
		if fields[idx] != "" {
			t.Errorf("field %d = %q, want empty", idx, fields[idx])
		}
	}
}

func TestPayloadEmptyOptionalsKeepPositions(t *testing.T) {
	bill := Bill{Account: "CH0000000000000000000"}
	fields := strings.Split(bill.Payload(), "\n")

	if len(fields) != payloadFieldCount {
		t.Fatalf("payload has %d fields, want %d", len(fields), payloadFieldCount)
	}
	if fields[17] != "" {
		t.Errorf("amount field = %q, want empty when amount is absent", fields[17])
	}
	if fields[25] != "NON" {
		t.Errorf("reference type = %q, want NON", fields[25])
	}
	if fields[28] != "EPD" {
		t.Errorf("trailer = %q, want EPD", fields[28])
	}
}

func TestPayloadAmountFormatting(t *testing.T) {
	bill := sampleBill()
	amount := decimal.RequireFromString("1250")
	bill.Amount = &amount

	fields := strings.Split(bill.Payload(), "\n")
	if fields[17] != "1250.00" {
		t.Errorf("amount field = %q, want %q", fields[17], "1250.00")
	}
}
