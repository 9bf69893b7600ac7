package infra

// pdf.go — invoice statement generation using go-pdf/fpdf.
// Renders an A4 statement with:
//   - Organization header (business name + document)
//   - Invoice amount, due date and current status
//   - Payment table (date, method, amount)
//   - Total paid and outstanding balance
//
// The output file is saved to storagePath/fatura_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/feliperufini/felskys-manager-api/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateInvoicePDF writes a statement PDF for an invoice and returns the
// absolute file path. storagePath is created if needed.
func GenerateInvoicePDF(inv *model.Invoice, org *model.Organization, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("fatura_%s.pdf", inv.ID.String())
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, org.BusinessName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Documento: "+org.Document, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Invoice info ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, "Fatura "+inv.ID.String(), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Vencimento: "+inv.DueDate.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Valor: R$ "+inv.Amount.StringFixed(2), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Situação: "+inv.Status, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Payments table ────────────────────────────────────────────────────────
	col1 := contentW * 0.35 // date
	col2 := contentW * 0.35 // method
	col3 := contentW * 0.30 // amount

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Data", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Método", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Valor", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	totalPaid := decimal.Zero
	for _, p := range inv.Payments {
		totalPaid = totalPaid.Add(p.Amount)
		pdf.CellFormat(col1, 6, p.PaymentDate.Format("02/01/2006"), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, p.PaymentMethod, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, "R$ "+p.Amount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2, 6, "Total pago:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "R$ "+totalPaid.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(col1+col2, 6, "Saldo devedor:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "R$ "+inv.Amount.Sub(totalPaid).StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
