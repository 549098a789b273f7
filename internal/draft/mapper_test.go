package draft

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/internal/domain/enum"
)

func TestToPayloadFieldRenames(t *testing.T) {
	d := New(ModeCreate)
	d.InvoiceNo = "INV-2024-001"
	d.BeneficiaryBank = "HDFC Bank"
	d.BeneficiaryAcNo = "50100123456789"
	d.SwitchCode = "HDFCINBB"
	d.OtherCharges = "120.50"
	d.Items[0].Description = "Stainless steel pipe fittings"
	d.Items[0].Quantity = "10"
	d.Items[0].UnitPrice = "5.00"
	d.Items[0].CurrencyCurrentPrice = "83.00"

	payload, warnings := ToPayload(d)

	assert.Empty(t, warnings)
	assert.Equal(t, "HDFC Bank", payload.BankName)
	assert.Equal(t, "50100123456789", payload.AccountNo)
	assert.Equal(t, "HDFCINBB", payload.SwiftCode)
	assert.Equal(t, 120.50, payload.OtherCost)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "Stainless steel pipe fittings", payload.Items[0].Description)
	assert.Equal(t, 10.0, payload.Items[0].Quantity)
	assert.Equal(t, 5.0, payload.Items[0].UnitPriceUsd)
	assert.Equal(t, 83.0, payload.Items[0].CurrencyCurrentPrice)
}

func TestToPayloadBlankNumericsBecomeZeroSilently(t *testing.T) {
	d := New(ModeCreate)
	d.InvoiceNo = "INV-1"

	payload, warnings := ToPayload(d)

	assert.Empty(t, warnings)
	assert.Equal(t, 0.0, payload.FreightCost)
	assert.Equal(t, 0.0, payload.InsuranceCost)
	assert.Equal(t, 0.0, payload.OtherCost)
	assert.Equal(t, 0.0, payload.Items[0].Quantity)
}

func TestToPayloadMalformedNumericWarnsAndUsesZero(t *testing.T) {
	d := New(ModeCreate)
	d.InvoiceNo = "INV-1"
	d.FreightCost = "abc"
	d.Items[0].Quantity = "10x"

	payload, warnings := ToPayload(d)

	assert.Equal(t, 0.0, payload.FreightCost)
	assert.Equal(t, 0.0, payload.Items[0].Quantity)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "freightCost")
	assert.Contains(t, warnings[1], "items[0].quantity")
}

func TestToPayloadComplianceFieldsNullWhenBlank(t *testing.T) {
	d := New(ModeCreate)
	d.InvoiceNo = "INV-1"
	d.ArnNo = ""
	d.Rodtep = "RoDTEP claimed under scheme"
	d.RexNo = "   "

	payload, _ := ToPayload(d)

	assert.Nil(t, payload.ArnNo)
	require.NotNil(t, payload.Rodtep)
	assert.Equal(t, "RoDTEP claimed under scheme", *payload.Rodtep)
	assert.Nil(t, payload.RexNo)
}

func TestFromInvoiceFallbacks(t *testing.T) {
	created := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	inv := &entity.Invoice{
		ID:        uuid.New(),
		InvoiceNo: "INV-2024-009",
		CreatedAt: created,
		Items: []entity.InvoiceItem{
			{Description: "Brass valves", Quantity: 4, UnitPriceUsd: 12.5},
		},
	}

	d := FromInvoice(inv, ModeEdit)

	assert.Equal(t, ModeEdit, d.Mode)
	assert.Equal(t, inv.ID.String(), d.ID)
	// Zero invoice date falls back to the creation timestamp.
	assert.Equal(t, "2024-03-15", d.InvoiceDate)
	require.Len(t, d.Items, 1)
	assert.Equal(t, "USD", d.Items[0].Currency)
	assert.Equal(t, "4", d.Items[0].Quantity)
	assert.Equal(t, "12.5", d.Items[0].UnitPrice)
	// No persisted packing rows still yields one editable blank entry.
	require.Len(t, d.Packings, 1)
	assert.Equal(t, "", d.ArnNo)
}

func TestRoundTrip(t *testing.T) {
	arn := "ARN-778899"
	inv := &entity.Invoice{
		ID:                  uuid.New(),
		InvoiceType:         enum.DocumentTypeCommercial,
		InvoiceNo:           "INV-2024-042",
		InvoiceDate:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		ExporterCompanyName: "Acme Exports Pvt Ltd",
		BillToName:          "Mueller GmbH",
		FreightCost:         250,
		BankName:            "ICICI Bank",
		AccountNo:           "000405001234",
		SwiftCode:           "ICICINBB",
		ArnNo:               &arn,
		Items: []entity.InvoiceItem{
			{Description: "Forged couplings", Quantity: 100, UnitPriceUsd: 3.2, Currency: enum.CurrencyEUR, CurrencyCurrentPrice: 90.5},
		},
		PackingDetails: []entity.PackingDetail{
			{Description: "Forged couplings", TotalQty: 100, NoOfCarton: 5, GrossWeight: 52.5, NetWeight: 50},
		},
	}

	payload, warnings := ToPayload(FromInvoice(inv, ModeEdit))

	assert.Empty(t, warnings)
	assert.Equal(t, "COMMERCIAL", payload.InvoiceType)
	assert.Equal(t, "INV-2024-042", payload.InvoiceNo)
	assert.Equal(t, "2024-06-01", payload.InvoiceDate)
	assert.Equal(t, 250.0, payload.FreightCost)
	assert.Equal(t, "ICICI Bank", payload.BankName)
	assert.Equal(t, "000405001234", payload.AccountNo)
	assert.Equal(t, "ICICINBB", payload.SwiftCode)
	require.NotNil(t, payload.ArnNo)
	assert.Equal(t, arn, *payload.ArnNo)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, 100.0, payload.Items[0].Quantity)
	assert.Equal(t, 3.2, payload.Items[0].UnitPriceUsd)
	assert.Equal(t, "EUR", payload.Items[0].Currency)
	assert.Equal(t, 90.5, payload.Items[0].CurrencyCurrentPrice)
	require.Len(t, payload.PackingDetails, 1)
	assert.Equal(t, 100.0, payload.PackingDetails[0].TotalQty)
	assert.Equal(t, 5.0, payload.PackingDetails[0].NoOfCarton)
}
