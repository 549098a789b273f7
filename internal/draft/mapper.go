package draft

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/internal/presentation/http/dto/request"
)

// ToPayload converts a draft into the wire payload accepted by the invoice
// endpoints. Numeric fields are parsed leniently: blank strings become zero
// silently, and malformed values become zero with a warning so a single bad
// cell never blocks submission. Compliance fields (ARN, RoDTEP, REX) turn
// into null when blank, which is distinct from a declared zero charge.
func ToPayload(d *Draft) (*request.CreateInvoiceRequest, []string) {
	var warnings []string

	num := func(field, value string) float64 {
		v, warn := parseNumber(field, value)
		if warn != "" {
			warnings = append(warnings, warn)
		}
		return v
	}

	payload := &request.CreateInvoiceRequest{
		InvoiceType: d.InvoiceType,
		InvoiceNo:   d.InvoiceNo,
		InvoiceDate: d.InvoiceDate,

		ExporterCompanyName: d.ExporterCompanyName,
		ExporterContactNo:   d.ExporterContactNo,
		ExporterAddress:     d.ExporterAddress,

		BillToCountry:    d.BillToCountry,
		BillToToTheOrder: d.BillToToTheOrder,
		BillToName:       d.BillToName,
		BillToContactNo:  d.BillToContactNo,
		BillToAddress:    d.BillToAddress,

		ShipToCountry:    d.ShipToCountry,
		ShipToToTheOrder: d.ShipToToTheOrder,
		ShipToName:       d.ShipToName,
		ShipToContactNo:  d.ShipToContactNo,
		ShipToAddress:    d.ShipToAddress,

		GstNo:                     d.GstNo,
		IecCode:                   d.IecCode,
		PoNo:                      d.PoNo,
		Incoterms:                 d.Incoterms,
		PaymentTerms:              d.PaymentTerms,
		PreCarriage:               d.PreCarriage,
		CountryOfOrigin:           d.CountryOfOrigin,
		CountryOfFinalDestination: d.CountryOfFinalDestination,
		PortOfLoading:             d.PortOfLoading,
		PortOfDischarge:           d.PortOfDischarge,

		FreightCost:   num("freightCost", d.FreightCost),
		InsuranceCost: num("insuranceCost", d.InsuranceCost),
		OtherCost:     num("otherCharges", d.OtherCharges),

		BeneficiaryName: d.BeneficiaryName,
		BankName:        d.BeneficiaryBank,
		Branch:          d.Branch,
		AccountNo:       d.BeneficiaryAcNo,
		SwiftCode:       d.SwitchCode,

		ArnNo:  nullable(d.ArnNo),
		Rodtep: nullable(d.Rodtep),
		RexNo:  nullable(d.RexNo),
	}

	payload.Items = make([]request.InvoiceItemRequest, 0, len(d.Items))
	for i, item := range d.Items {
		payload.Items = append(payload.Items, request.InvoiceItemRequest{
			ItemNo:               item.ItemNo,
			PartNo:               item.PartNo,
			Description:          item.Description,
			HsCode:               item.HsCode,
			Quantity:             num(fmt.Sprintf("items[%d].quantity", i), item.Quantity),
			UnitPriceUsd:         num(fmt.Sprintf("items[%d].unitPrice", i), item.UnitPrice),
			Currency:             item.Currency,
			CurrencyCurrentPrice: num(fmt.Sprintf("items[%d].currencyCurrentPrice", i), item.CurrencyCurrentPrice),
		})
	}

	payload.PackingDetails = make([]request.PackingDetailRequest, 0, len(d.Packings))
	for i, p := range d.Packings {
		payload.PackingDetails = append(payload.PackingDetails, request.PackingDetailRequest{
			ItemNo:          p.ItemNo,
			Description:     p.Description,
			TotalQty:        num(fmt.Sprintf("packings[%d].totalQty", i), p.TotalQty),
			QtyInEachCarton: num(fmt.Sprintf("packings[%d].qtyInEachCarton", i), p.QtyInEachCarton),
			NoOfCarton:      num(fmt.Sprintf("packings[%d].noOfCarton", i), p.NoOfCarton),
			GrossWeight:     num(fmt.Sprintf("packings[%d].grossWeight", i), p.GrossWeight),
			NetWeight:       num(fmt.Sprintf("packings[%d].netWeight", i), p.NetWeight),
			CartonWidth:     num(fmt.Sprintf("packings[%d].cartonWidth", i), p.CartonWidth),
			WoodenPallet:    num(fmt.Sprintf("packings[%d].woodenPallet", i), p.WoodenPallet),
		})
	}

	return payload, warnings
}

// FromInvoice hydrates a draft from a persisted invoice for edit or view.
// Missing strings fall back to empty, missing currency to USD, and a zero
// invoice date to the record's creation timestamp, so the form never renders
// a nil.
func FromInvoice(inv *entity.Invoice, mode Mode) *Draft {
	d := New(mode)
	d.ID = inv.ID.String()

	d.InvoiceType = string(inv.InvoiceType)
	d.InvoiceNo = inv.InvoiceNo
	d.InvoiceDate = formatDate(inv.InvoiceDate, inv.CreatedAt)

	d.ExporterCompanyName = inv.ExporterCompanyName
	d.ExporterContactNo = inv.ExporterContactNo
	d.ExporterAddress = inv.ExporterAddress

	d.BillToCountry = inv.BillToCountry
	d.BillToToTheOrder = inv.BillToToTheOrder
	d.BillToName = inv.BillToName
	d.BillToContactNo = inv.BillToContactNo
	d.BillToAddress = inv.BillToAddress

	d.ShipToCountry = inv.ShipToCountry
	d.ShipToToTheOrder = inv.ShipToToTheOrder
	d.ShipToName = inv.ShipToName
	d.ShipToContactNo = inv.ShipToContactNo
	d.ShipToAddress = inv.ShipToAddress

	d.GstNo = inv.GstNo
	d.IecCode = inv.IecCode
	d.PoNo = inv.PoNo
	d.Incoterms = inv.Incoterms
	d.PaymentTerms = inv.PaymentTerms
	d.PreCarriage = inv.PreCarriage
	d.CountryOfOrigin = inv.CountryOfOrigin
	d.CountryOfFinalDestination = inv.CountryOfFinalDestination
	d.PortOfLoading = inv.PortOfLoading
	d.PortOfDischarge = inv.PortOfDischarge

	d.FreightCost = formatNumber(inv.FreightCost)
	d.InsuranceCost = formatNumber(inv.InsuranceCost)
	d.OtherCharges = formatNumber(inv.OtherCost)

	d.BeneficiaryName = inv.BeneficiaryName
	d.BeneficiaryBank = inv.BankName
	d.Branch = inv.Branch
	d.BeneficiaryAcNo = inv.AccountNo
	d.SwitchCode = inv.SwiftCode

	d.ArnNo = derefOrEmpty(inv.ArnNo)
	d.Rodtep = derefOrEmpty(inv.Rodtep)
	d.RexNo = derefOrEmpty(inv.RexNo)

	if len(inv.Items) > 0 {
		d.Items = make([]LineItem, 0, len(inv.Items))
		for _, item := range inv.Items {
			currency := string(item.Currency)
			if currency == "" {
				currency = "USD"
			}
			d.Items = append(d.Items, LineItem{
				ItemNo:               item.ItemNo,
				PartNo:               item.PartNo,
				Description:          item.Description,
				HsCode:               item.HsCode,
				Quantity:             formatNumber(item.Quantity),
				UnitPrice:            formatNumber(item.UnitPriceUsd),
				Currency:             currency,
				CurrencyCurrentPrice: formatNumber(item.CurrencyCurrentPrice),
			})
		}
	}

	if len(inv.PackingDetails) > 0 {
		d.Packings = make([]PackingEntry, 0, len(inv.PackingDetails))
		for _, p := range inv.PackingDetails {
			d.Packings = append(d.Packings, PackingEntry{
				ItemNo:          p.ItemNo,
				Description:     p.Description,
				TotalQty:        formatNumber(p.TotalQty),
				QtyInEachCarton: formatNumber(p.QtyInEachCarton),
				NoOfCarton:      formatNumber(p.NoOfCarton),
				GrossWeight:     formatNumber(p.GrossWeight),
				NetWeight:       formatNumber(p.NetWeight),
				CartonWidth:     formatNumber(p.CartonWidth),
				WoodenPallet:    formatNumber(p.WoodenPallet),
			})
		}
	}

	return d
}

func parseNumber(field, value string) (float64, string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, ""
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: %q is not a number, using 0", field, value)
	}
	return v, ""
}

func formatNumber(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(date, fallback time.Time) string {
	if date.IsZero() {
		date = fallback
	}
	if date.IsZero() {
		return ""
	}
	return date.Format("2006-01-02")
}

func nullable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
