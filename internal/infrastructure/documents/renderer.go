package documents

import (
	"bytes"
	"fmt"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

const estimatesSheet = "Estimates"

// Renderer produces estimate printouts with fpdf and the admin register
// with excelize.
type Renderer struct{}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{}
}

// EstimatePDF lays out a single A4 estimate: company header, item table and
// the totals block.
func (r *Renderer) EstimatePDF(e entities.Estimate, company interfaces.CompanyInfo) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 8, company.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if company.Address != "" {
		pdf.CellFormat(contentW, 5, company.Address, "", 1, "C", false, 0, "")
	}
	if company.Phone != "" || company.GSTIN != "" {
		pdf.CellFormat(contentW, 5, contactLine(company), "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW/2, 6, fmt.Sprintf("Estimate No. %d", e.Number), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, e.Date.Format("02/01/2006"), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW/2, 5, "Customer: "+e.CustomerID, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, "Status: "+string(e.Status), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// Items
	cols := []struct {
		title string
		width float64
		align string
	}{
		{"Item", 0.26, "L"},
		{"Purity", 0.08, "C"},
		{"Qty", 0.06, "C"},
		{"Gross Wt", 0.10, "R"},
		{"Total Wt", 0.10, "R"},
		{"Rate", 0.10, "R"},
		{"Making", 0.10, "R"},
		{"Tax", 0.08, "R"},
		{"Amount", 0.12, "R"},
	}
	pdf.SetFont("Helvetica", "B", 8)
	for i, c := range cols {
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		pdf.CellFormat(contentW*c.width, 6, c.title, "B", ln, c.align, false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 8)
	for _, li := range e.Items {
		name := li.Name
		if len(name) > 34 {
			name = name[:33] + "."
		}
		values := []string{
			name,
			li.Purity,
			fmt.Sprintf("%d", li.Quantity),
			li.GrossWeight.StringFixed(3),
			li.TotalWeight.StringFixed(3),
			li.Rate.StringFixed(2),
			li.MakingCharges.StringFixed(2),
			li.TaxAmount.StringFixed(2),
			li.TotalPrice.StringFixed(2),
		}
		for i, c := range cols {
			ln := 0
			if i == len(cols)-1 {
				ln = 1
			}
			pdf.CellFormat(contentW*c.width, 5, values[i], "", ln, c.align, false, 0, "")
		}
	}
	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// Totals
	labelW := contentW * 0.80
	valueW := contentW * 0.20
	totalRow := func(label, value string) {
		pdf.CellFormat(labelW, 5, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(valueW, 5, value, "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 9)
	totalRow("Total", e.Totals.TotalAmount.StringFixed(2))
	if !e.Totals.DiscountAmount.IsZero() {
		totalRow(fmt.Sprintf("Discount (%s%%)", e.DiscountPercent.String()), "-"+e.Totals.DiscountAmount.StringFixed(2))
	}
	totalRow("Taxable", e.Totals.TaxableAmount.StringFixed(2))
	totalRow("Tax", e.Totals.TaxAmount.StringFixed(2))
	pdf.SetFont("Helvetica", "B", 11)
	totalRow("Net Payable", e.Totals.NetPayableAmount.StringFixed(0))

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 4, "Prices are indicative and valid for the estimate date only.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render estimate %d: %w", e.Number, err)
	}
	return buf.Bytes(), nil
}

// EstimatesXLSX writes one row per estimate into a single-sheet workbook.
func (r *Renderer) EstimatesXLSX(estimates []entities.Estimate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", estimatesSheet); err != nil {
		return nil, err
	}

	header := []any{"Number", "Date", "Customer", "Salesperson", "Status", "Items", "Total", "Discount", "Tax", "Net Payable"}
	if err := f.SetSheetRow(estimatesSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, e := range estimates {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			e.Number,
			e.Date.Format("2006-01-02"),
			e.CustomerID,
			e.SalespersonID,
			string(e.Status),
			len(e.Items),
			e.Totals.TotalAmount.InexactFloat64(),
			e.Totals.DiscountAmount.InexactFloat64(),
			e.Totals.TaxAmount.InexactFloat64(),
			e.Totals.NetPayableAmount.InexactFloat64(),
		}
		if err := f.SetSheetRow(estimatesSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: write register: %w", err)
	}
	return buf.Bytes(), nil
}

func contactLine(c interfaces.CompanyInfo) string {
	switch {
	case c.Phone != "" && c.GSTIN != "":
		return "Ph: " + c.Phone + "  GSTIN: " + c.GSTIN
	case c.Phone != "":
		return "Ph: " + c.Phone
	default:
		return "GSTIN: " + c.GSTIN
	}
}
