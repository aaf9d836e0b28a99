package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestInvoiceNumber(t *testing.T) {
	tests := []struct {
		prefix string
		next   int
		want   string
	}{
		{"2025-", 7, "2025-007"},
		{"2025-", 1, "2025-001"},
		{"2025-", 123, "2025-123"},
		{"2026-", 1000, "2026-1000"},
		{"", 42, "042"},
	}

	for _, tt := range tests {
		s := &CompanySettings{InvoicePrefix: tt.prefix, NextNumber: tt.next}
		if got := s.InvoiceNumber(); got != tt.want {
			t.Errorf("InvoiceNumber() with prefix %q, next %d = %q, want %q",
				tt.prefix, tt.next, got, tt.want)
		}
	}
}

func TestEffectiveVATRate(t *testing.T) {
	rate := decimal.RequireFromString("0.077")

	enabled := &CompanySettings{VATEnabled: true, VATRate: rate}
	if got := enabled.EffectiveVATRate(); !got.Equal(rate) {
		t.Errorf("EffectiveVATRate() = %s, want %s", got, rate)
	}

	disabled := &CompanySettings{VATEnabled: false, VATRate: rate}
	if got := disabled.EffectiveVATRate(); !got.IsZero() {
		t.Errorf("EffectiveVATRate() with VAT disabled = %s, want 0", got)
	}
}

func TestDefaultCompanySettings(t *testing.T) {
	s := DefaultCompanySettings()
	if s.ID != SettingsID {
		t.Errorf("default settings ID = %d, want %d", s.ID, SettingsID)
	}
	if s.NextNumber != 1 {
		t.Errorf("default next number = %d, want 1", s.NextNumber)
	}
	if !s.VATEnabled {
		t.Error("default settings should have VAT enabled")
	}
	if s.Country != "Switzerland" {
		t.Errorf("default country = %q, want %q", s.Country, "Switzerland")
	}
}
