package pdfdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eximdesk/eximdesk-api/pkg/pdfdoc"
)

func sampleDocument() *pdfdoc.Document {
	return &pdfdoc.Document{
		Title:     "EXPORT INVOICE",
		InvoiceNo: "INV-2024-001",
		Date:      "2024-03-15",
		Exporter: pdfdoc.PartyBlock{
			Heading: "Exporter",
			Name:    "Ishita Industries",
			Address: "Plot 14, GIDC Estate",
			Country: "India",
		},
		BillTo: pdfdoc.PartyBlock{
			Heading:   "Importer (Bill To)",
			Name:      "Atlas Trading GmbH",
			Reference: "ORDER-7781",
			Country:   "Germany",
		},
		ShipTo: pdfdoc.PartyBlock{
			Heading: "Importer (Ship To)",
			Name:    "Atlas Warehouse",
			Country: "Germany",
		},
		Meta: [][2]string{
			{"Incoterms", "FOB"},
			{"Port of Loading", "Mundra"},
			{"Port of Discharge", "Hamburg"},
		},
		Items: []pdfdoc.ItemRow{
			{ItemNo: "A-1", Description: "Steel clamps", HsCode: "7326", Quantity: 10, UnitPrice: 5, Currency: "USD", ExchangeRate: 83, Total: 4150},
		},
		FreightCost: 120,
		Total:       4270,
		Bank: pdfdoc.BankBlock{
			BeneficiaryName: "Ishita Industries",
			BankName:        "State Bank",
			AccountNo:       "0011223344",
			SwiftCode:       "SBININBB",
		},
		Declarations: []string{"SUPPLY MEANT FOR EXPORT UNDER BOND OR LUT"},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	data, err := pdfdoc.Render(sampleDocument())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderPackingList(t *testing.T) {
	doc := sampleDocument()
	doc.Title = "PACKING LIST"
	doc.Items = nil
	doc.Packing = []pdfdoc.PackingRow{
		{ItemNo: "A-1", Description: "Steel clamps", TotalQty: 100, QtyInEachCarton: 25, NoOfCarton: 4, GrossWeight: 52.5, NetWeight: 50, CartonWidth: 40, WoodenPallet: 1},
	}

	data, err := pdfdoc.Render(doc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderEmptyBlocks(t *testing.T) {
	doc := &pdfdoc.Document{
		Title:     "COMMERCIAL INVOICE",
		InvoiceNo: "NA",
	}
	data, err := pdfdoc.Render(doc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
