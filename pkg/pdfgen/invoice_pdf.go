// Package pdfgen renders invoices to PDF files: a first page with the
// address blocks, line-item table and totals, and a second page with
// the Swiss QR-bill payment section.
package pdfgen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

// Address is a printable postal address block.
type Address struct {
	Name    string
	Street  string
	ZipCode string
	City    string
	Country string
}

// Lines returns the address formatted as "name / street / zip city /
// country" display lines.
func (a Address) Lines() []string {
	return []string{
		a.Name,
		a.Street,
		a.ZipCode + " " + a.City,
		a.Country,
	}
}

// Line is one row of the invoice table.
type Line struct {
	ArticleNumber   string
	Description     string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	Total           decimal.Decimal
}

// Document is the render input for a single invoice PDF.
type Document struct {
	Number    string
	Date      time.Time
	Creditor  Address
	Debtor    Address
	Lines     []Line
	Subtotal  decimal.Decimal
	VATAmount decimal.Decimal
	Total     decimal.Decimal
	Notes     string
	QRIBAN    string
	// QRPayload is the SPC 0200 text encoded into the payment QR code.
	QRPayload string
	LogoPath  string
}

// Generator writes invoice PDFs into a fixed output directory.
type Generator struct {
	outputDir string
}

// NewGenerator creates a generator writing into outputDir, creating the
// directory if needed.
func NewGenerator(outputDir string) (*Generator, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create invoice output directory: %w", err)
	}
	return &Generator{outputDir: outputDir}, nil
}

// Filename returns the deterministic artifact name for an invoice:
// Facture_<number>_<debtor company with spaces underscored>.pdf.
func Filename(number, debtorName string) string {
	return fmt.Sprintf("Facture_%s_%s.pdf", number, strings.ReplaceAll(debtorName, " ", "_"))
}

const qrSizeMM = 70

// Generate renders the document and returns the path of the written
// PDF.
func (g *Generator) Generate(doc *Document) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, "Facture", "", 1, "R", false, 0, "")
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		generated := fmt.Sprintf("Généré le %s", time.Now().Format("02.01.2006 15:04"))
		pdf.CellFormat(0, 10, tr(generated), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	g.renderAddresses(pdf, tr, doc)
	g.renderLineTable(pdf, tr, doc)
	g.renderTotals(pdf, tr, doc)
	if doc.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 8, tr("Conditions / notes :\n"+doc.Notes), "", "L", false)
	}

	pdf.AddPage()
	if err := g.renderPaymentSection(pdf, tr, doc); err != nil {
		return "", err
	}

	path := filepath.Join(g.outputDir, Filename(doc.Number, doc.Debtor.Name))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write invoice PDF: %w", err)
	}
	return path, nil
}

func (g *Generator) renderAddresses(pdf *fpdf.Fpdf, tr func(string) string, doc *Document) {
	if doc.LogoPath != "" {
		if _, err := os.Stat(doc.LogoPath); err == nil {
			pdf.ImageOptions(doc.LogoPath, 10, 10, 30, 0, false, fpdf.ImageOptions{}, 0, "")
			pdf.SetXY(10, 40)
		} else {
			pdf.SetXY(10, 20)
		}
	} else {
		pdf.SetXY(10, 20)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(80, 6, tr(strings.Join(doc.Creditor.Lines(), "\n")), "", "L", false)

	pdf.SetXY(120, 30)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(80, 6, tr(strings.Join(doc.Debtor.Lines(), "\n")), "", "L", false)

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	title := fmt.Sprintf("Facture n° %s - Date: %s", doc.Number, doc.Date.Format("02.01.2006"))
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
}

func (g *Generator) renderLineTable(pdf *fpdf.Fpdf, tr func(string) string, doc *Document) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(25, 8, "Article", "1", 0, "L", false, 0, "")
	pdf.CellFormat(55, 8, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, tr("Qté"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 8, "Prix", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 8, "Remise", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 8, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range doc.Lines {
		pdf.CellFormat(25, 8, tr(line.ArticleNumber), "1", 0, "L", false, 0, "")
		pdf.CellFormat(55, 8, tr(line.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, line.Quantity.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 8, line.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 8, line.DiscountPercent.StringFixed(2)+"%", "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 8, line.Total.StringFixed(2), "1", 1, "R", false, 0, "")
	}
}

func (g *Generator) renderTotals(pdf *fpdf.Fpdf, tr func(string) string, doc *Document) {
	rows := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Sous-total", doc.Subtotal},
		{"TVA", doc.VATAmount},
		{"Total", doc.Total},
	}

	pdf.CellFormat(0, 8, "", "", 1, "L", false, 0, "")
	for _, row := range rows {
		pdf.CellFormat(135, 8, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, tr(row.label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, row.amount.StringFixed(2)+" CHF", "1", 1, "R", false, 0, "")
	}
}

func (g *Generator) renderPaymentSection(pdf *fpdf.Fpdf, tr func(string) string, doc *Document) error {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, "Section QR-facture", "", 1, "L", false, 0, "")

	// High recovery level so the Swiss cross overlay does not make the
	// code unreadable.
	png, err := qrcode.Encode(doc.QRPayload, qrcode.High, 512)
	if err != nil {
		return fmt.Errorf("failed to encode QR payload: %w", err)
	}

	pageW, pageH := pdf.GetPageSize()
	_, _, rightMargin, bottomMargin := pdf.GetMargins()
	x := pageW - rightMargin - qrSizeMM
	y := pageH - bottomMargin - qrSizeMM - 15

	pdf.RegisterImageOptionsReader("qrbill", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions("qrbill", x, y, qrSizeMM, qrSizeMM, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	drawSwissCross(pdf, x, y, qrSizeMM)

	details := []string{
		"Compte QR-IBAN : " + doc.QRIBAN,
		"Bénéficiaire :",
	}
	details = append(details, doc.Creditor.Lines()...)
	details = append(details,
		"",
		fmt.Sprintf("Montant : %s CHF", doc.Total.StringFixed(2)),
		"Payer depuis :",
	)
	details = append(details, doc.Debtor.Lines()...)

	pdf.SetXY(10, y)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(90, 7, tr(strings.Join(details, "\n")), "", "L", false)
	return nil
}

// drawSwissCross paints the black square with a white cross over the
// center of the QR code, as mandated for Swiss QR-bills.
func drawSwissCross(pdf *fpdf.Fpdf, x, y, size float64) {
	square := size * 0.15
	cx := x + (size-square)/2
	cy := y + (size-square)/2

	pdf.SetFillColor(0, 0, 0)
	pdf.Rect(cx, cy, square, square, "F")

	bar := square * 0.2
	arm := square * 0.6
	pdf.SetFillColor(255, 255, 255)
	pdf.Rect(cx+(square-bar)/2, cy+(square-arm)/2, bar, arm, "F")
	pdf.Rect(cx+(square-arm)/2, cy+(square-bar)/2, arm, bar, "F")
}
