package pdfgen

import "testing"

func TestFilename(t *testing.T) {
	tests := []struct {
		number string
		debtor string
		want   string
	}{
		{"2025-007", "Acme Sàrl", "Facture_2025-007_Acme_Sàrl.pdf"},
		{"2025-001", "Client", "Facture_2025-001_Client.pdf"},
		{"2026-042", "Une Longue Raison Sociale", "Facture_2026-042_Une_Longue_Raison_Sociale.pdf"},
	}

	for _, tt := range tests {
		if got := Filename(tt.number, tt.debtor); got != tt.want {
			t.Errorf("Filename(%q, %q) = %q, want %q", tt.number, tt.debtor, got, tt.want)
		}
	}
}

func TestAddressLines(t *testing.T) {
	a := Address{
		Name:    "FTE Sàrl",
		Street:  "Rue Centrale 104",
		ZipCode: "1983",
		City:    "Evolène",
		Country: "Switzerland",
	}
	lines := a.Lines()
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if lines[2] != "1983 Evolène" {
		t.Errorf("zip/city line = %q, want %q", lines[2], "1983 Evolène")
	}
}
