// Package pdfdoc renders commercial trade documents as PDFs. It is kept free
// of domain entities so the renderer can be exercised on its own; callers map
// their invoice records into a Document first.
package pdfdoc

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PartyBlock is one address block on the document header.
type PartyBlock struct {
	Heading   string
	Name      string
	ContactNo string
	Address   string
	Country   string
	Reference string
}

// ItemRow is one goods line on an export or commercial invoice.
type ItemRow struct {
	ItemNo       string
	PartNo       string
	Description  string
	HsCode       string
	Quantity     float64
	UnitPrice    float64
	Currency     string
	ExchangeRate float64
	Total        float64
}

// PackingRow is one carton-level line on a packing list.
type PackingRow struct {
	ItemNo          string
	Description     string
	TotalQty        float64
	QtyInEachCarton float64
	NoOfCarton      float64
	GrossWeight     float64
	NetWeight       float64
	CartonWidth     float64
	WoodenPallet    float64
}

// BankBlock holds beneficiary bank details printed on invoice documents.
type BankBlock struct {
	BeneficiaryName string
	BankName        string
	Branch          string
	AccountNo       string
	SwiftCode       string
}

// Document is a renderable trade document.
type Document struct {
	Title     string
	InvoiceNo string
	Date      string

	Exporter PartyBlock
	BillTo   PartyBlock
	ShipTo   PartyBlock

	// Metadata rows rendered as label/value pairs (incoterms, ports, ...).
	Meta [][2]string

	// Exactly one of Items/Packing is rendered, depending on the document
	// type the caller prepared.
	Items   []ItemRow
	Packing []PackingRow

	FreightCost   float64
	InsuranceCost float64
	OtherCost     float64
	Total         float64

	Bank BankBlock

	// Compliance declarations (ARN, RoDTEP, REX) printed at the bottom.
	Declarations []string
}

// Render produces the PDF bytes for the document.
func Render(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	writeHeader(pdf, doc)
	writeParties(pdf, doc)
	writeMeta(pdf, doc)

	if len(doc.Packing) > 0 {
		writePackingTable(pdf, doc.Packing)
	} else {
		writeItemsTable(pdf, doc.Items)
		writeTotals(pdf, doc)
		writeBank(pdf, &doc.Bank)
	}

	writeDeclarations(pdf, doc.Declarations)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s document: %w", doc.Title, err)
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *gofpdf.Fpdf, doc *Document) {
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, doc.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Invoice No: %s", doc.InvoiceNo), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", doc.Date), "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func writeParties(pdf *gofpdf.Fpdf, doc *Document) {
	blocks := []PartyBlock{doc.Exporter, doc.BillTo, doc.ShipTo}
	colWidth := 63.0

	pdf.SetFont("Arial", "B", 9)
	for _, b := range blocks {
		pdf.CellFormat(colWidth, 6, b.Heading, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	x, y := pdf.GetXY()
	maxY := y
	for i, b := range blocks {
		pdf.SetXY(x+float64(i)*colWidth, y)
		lines := partyLines(&b)
		for _, line := range lines {
			pdf.CellFormat(colWidth, 4.5, line, "", 2, "L", false, 0, "")
		}
		if cy := pdf.GetY(); cy > maxY {
			maxY = cy
		}
	}
	pdf.SetXY(x, maxY)
	pdf.Ln(4)
}

func partyLines(b *PartyBlock) []string {
	lines := make([]string, 0, 5)
	if b.Name != "" {
		lines = append(lines, b.Name)
	}
	if b.Reference != "" {
		lines = append(lines, "To the order: "+b.Reference)
	}
	if b.ContactNo != "" {
		lines = append(lines, "Tel: "+b.ContactNo)
	}
	if b.Address != "" {
		lines = append(lines, b.Address)
	}
	if b.Country != "" {
		lines = append(lines, b.Country)
	}
	if len(lines) == 0 {
		lines = append(lines, "-")
	}
	return lines
}

func writeMeta(pdf *gofpdf.Fpdf, doc *Document) {
	if len(doc.Meta) == 0 {
		return
	}
	pdf.SetFont("Arial", "", 8)
	for i := 0; i < len(doc.Meta); i += 2 {
		left := doc.Meta[i]
		pdf.SetFont("Arial", "B", 8)
		pdf.CellFormat(35, 5, left[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(60, 5, left[1], "", 0, "L", false, 0, "")
		if i+1 < len(doc.Meta) {
			right := doc.Meta[i+1]
			pdf.SetFont("Arial", "B", 8)
			pdf.CellFormat(35, 5, right[0], "", 0, "L", false, 0, "")
			pdf.SetFont("Arial", "", 8)
			pdf.CellFormat(60, 5, right[1], "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func writeItemsTable(pdf *gofpdf.Fpdf, items []ItemRow) {
	headers := []string{"#", "Item No", "Part No", "Description", "HS Code", "Qty", "Unit Price", "Rate", "Total"}
	widths := []float64{8, 20, 20, 52, 18, 15, 22, 15, 22}

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(243, 244, 246)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for i, it := range items {
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%d", i+1), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, it.ItemNo, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, it.PartNo, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, it.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 6, it.HsCode, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 6, trimNumber(it.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[6], 6, fmt.Sprintf("%.2f %s", it.UnitPrice, it.Currency), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[7], 6, fmt.Sprintf("%.2f", it.ExchangeRate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[8], 6, fmt.Sprintf("%.2f", it.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func writePackingTable(pdf *gofpdf.Fpdf, rows []PackingRow) {
	headers := []string{"#", "Item No", "Description", "Total Qty", "Qty/Carton", "Cartons", "Gross Wt", "Net Wt", "Width", "Pallets"}
	widths := []float64{8, 18, 48, 18, 20, 16, 18, 18, 14, 14}

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(243, 244, 246)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for i, r := range rows {
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%d", i+1), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.ItemNo, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, trimNumber(r.TotalQty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, trimNumber(r.QtyInEachCarton), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, trimNumber(r.NoOfCarton), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[6], 6, trimNumber(r.GrossWeight), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[7], 6, trimNumber(r.NetWeight), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[8], 6, trimNumber(r.CartonWidth), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[9], 6, trimNumber(r.WoodenPallet), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func writeTotals(pdf *gofpdf.Fpdf, doc *Document) {
	rows := [][2]string{
		{"Freight", fmt.Sprintf("%.2f", doc.FreightCost)},
		{"Insurance", fmt.Sprintf("%.2f", doc.InsuranceCost)},
		{"Other Charges", fmt.Sprintf("%.2f", doc.OtherCost)},
		{"Total (INR)", fmt.Sprintf("%.2f", doc.Total)},
	}
	for i, row := range rows {
		style := ""
		if i == len(rows)-1 {
			style = "B"
		}
		pdf.SetFont("Arial", style, 9)
		pdf.CellFormat(140, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(28, 6, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(24, 6, row[1], "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func writeBank(pdf *gofpdf.Fpdf, bank *BankBlock) {
	if bank.BeneficiaryName == "" && bank.BankName == "" && bank.AccountNo == "" {
		return
	}
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 6, "Bank Details", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	lines := [][2]string{
		{"Beneficiary", bank.BeneficiaryName},
		{"Bank", bank.BankName},
		{"Branch", bank.Branch},
		{"Account No", bank.AccountNo},
		{"SWIFT", bank.SwiftCode},
	}
	for _, line := range lines {
		if line[1] == "" {
			continue
		}
		pdf.CellFormat(30, 5, line[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, line[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func writeDeclarations(pdf *gofpdf.Fpdf, declarations []string) {
	if len(declarations) == 0 {
		return
	}
	pdf.SetFont("Arial", "I", 7)
	for _, d := range declarations {
		pdf.MultiCell(0, 4, d, "", "L", false)
		pdf.Ln(1)
	}
}

func trimNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.3f", v)
}
