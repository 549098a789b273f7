// Package draft holds the client-side form state for one invoice while it is
// being created, edited or viewed. All fields are strings, exactly as the
// form captures them; conversion to and from the wire shape lives in the
// mapper.
package draft

import (
	"errors"
	"fmt"
)

// Mode controls what the form session is allowed to do with the draft.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeView   Mode = "view"
)

// ErrReadOnly is returned by mutation operations in view mode.
var ErrReadOnly = errors.New("draft is read-only in view mode")

// LineItem is one goods entry as captured by the form.
type LineItem struct {
	ItemNo               string
	PartNo               string
	Description          string
	HsCode               string
	Quantity             string
	UnitPrice            string
	Currency             string
	CurrencyCurrentPrice string
}

// PackingEntry is one carton-level row as captured by the form.
type PackingEntry struct {
	ItemNo          string
	Description     string
	TotalQty        string
	QtyInEachCarton string
	NoOfCarton      string
	GrossWeight     string
	NetWeight       string
	CartonWidth     string
	WoodenPallet    string
}

// Draft is the single source of truth for one invoice form session.
type Draft struct {
	Mode Mode

	// Persisted id, set after a successful create or when hydrating for
	// edit/view. Empty in create mode.
	ID string

	InvoiceType string
	InvoiceNo   string
	InvoiceDate string

	ExporterCompanyName string
	ExporterContactNo   string
	ExporterAddress     string

	BillToCountry    string
	BillToToTheOrder string
	BillToName       string
	BillToContactNo  string
	BillToAddress    string

	ShipToCountry    string
	ShipToToTheOrder string
	ShipToName       string
	ShipToContactNo  string
	ShipToAddress    string

	GstNo                     string
	IecCode                   string
	PoNo                      string
	Incoterms                 string
	PaymentTerms              string
	PreCarriage               string
	CountryOfOrigin           string
	CountryOfFinalDestination string
	PortOfLoading             string
	PortOfDischarge           string

	FreightCost   string
	InsuranceCost string
	OtherCharges  string

	BeneficiaryName string
	BeneficiaryBank string
	Branch          string
	BeneficiaryAcNo string
	SwitchCode      string

	ArnNo  string
	Rodtep string
	RexNo  string

	Items    []LineItem
	Packings []PackingEntry
}

// New creates an empty draft in the given mode, seeded with one blank line
// item and one blank packing entry.
func New(mode Mode) *Draft {
	return &Draft{
		Mode:     mode,
		Items:    []LineItem{blankLineItem()},
		Packings: []PackingEntry{blankPackingEntry()},
	}
}

func blankLineItem() LineItem {
	return LineItem{Currency: "EUR"}
}

func blankPackingEntry() PackingEntry {
	return PackingEntry{}
}

// SetField replaces a single scalar field by name. Unknown field names are an
// error; nothing else on the draft is touched.
func (d *Draft) SetField(name, value string) error {
	if d.Mode == ModeView {
		return ErrReadOnly
	}
	target := d.fieldRef(name)
	if target == nil {
		return fmt.Errorf("unknown draft field %q", name)
	}
	*target = value
	return nil
}

func (d *Draft) fieldRef(name string) *string {
	switch name {
	case "invoiceType":
		return &d.InvoiceType
	case "invoiceNo":
		return &d.InvoiceNo
	case "invoiceDate":
		return &d.InvoiceDate
	case "exporterCompanyName":
		return &d.ExporterCompanyName
	case "exporterContactNo":
		return &d.ExporterContactNo
	case "exporterAddress":
		return &d.ExporterAddress
	case "billToCountry":
		return &d.BillToCountry
	case "billToToTheOrder":
		return &d.BillToToTheOrder
	case "billToName":
		return &d.BillToName
	case "billToContactNo":
		return &d.BillToContactNo
	case "billToAddress":
		return &d.BillToAddress
	case "shipToCountry":
		return &d.ShipToCountry
	case "shipToToTheOrder":
		return &d.ShipToToTheOrder
	case "shipToName":
		return &d.ShipToName
	case "shipToContactNo":
		return &d.ShipToContactNo
	case "shipToAddress":
		return &d.ShipToAddress
	case "gstNo":
		return &d.GstNo
	case "iecCode":
		return &d.IecCode
	case "poNo":
		return &d.PoNo
	case "incoterms":
		return &d.Incoterms
	case "paymentTerms":
		return &d.PaymentTerms
	case "preCarriage":
		return &d.PreCarriage
	case "countryOfOrigin":
		return &d.CountryOfOrigin
	case "countryOfFinalDestination":
		return &d.CountryOfFinalDestination
	case "portOfLoading":
		return &d.PortOfLoading
	case "portOfDischarge":
		return &d.PortOfDischarge
	case "freightCost":
		return &d.FreightCost
	case "insuranceCost":
		return &d.InsuranceCost
	case "otherCharges":
		return &d.OtherCharges
	case "beneficiaryName":
		return &d.BeneficiaryName
	case "beneficiaryBank":
		return &d.BeneficiaryBank
	case "branch":
		return &d.Branch
	case "beneficiaryAcNo":
		return &d.BeneficiaryAcNo
	case "switchCode":
		return &d.SwitchCode
	case "arnNo":
		return &d.ArnNo
	case "rodtep":
		return &d.Rodtep
	case "rexNo":
		return &d.RexNo
	}
	return nil
}

// UpdateItem replaces one line item at the given index, leaving every other
// entry untouched. The update function receives a copy of the entry and
// returns the replacement.
func (d *Draft) UpdateItem(index int, update func(LineItem) LineItem) error {
	if d.Mode == ModeView {
		return ErrReadOnly
	}
	if index < 0 || index >= len(d.Items) {
		return fmt.Errorf("line item index %d out of range", index)
	}
	items := make([]LineItem, len(d.Items))
	copy(items, d.Items)
	items[index] = update(items[index])
	d.Items = items
	return nil
}

// UpdatePacking replaces one packing entry at the given index.
func (d *Draft) UpdatePacking(index int, update func(PackingEntry) PackingEntry) error {
	if d.Mode == ModeView {
		return ErrReadOnly
	}
	if index < 0 || index >= len(d.Packings) {
		return fmt.Errorf("packing entry index %d out of range", index)
	}
	packings := make([]PackingEntry, len(d.Packings))
	copy(packings, d.Packings)
	packings[index] = update(packings[index])
	d.Packings = packings
	return nil
}

// AddItem appends a new blank line item with the default currency.
func (d *Draft) AddItem() error {
	if d.Mode == ModeView {
		return ErrReadOnly
	}
	d.Items = append(d.Items, blankLineItem())
	return nil
}

// AddPacking appends a new blank packing entry.
func (d *Draft) AddPacking() error {
	if d.Mode == ModeView {
		return ErrReadOnly
	}
	d.Packings = append(d.Packings, blankPackingEntry())
	return nil
}

// RemoveItem removes a line item by index. Removing the only remaining entry
// is a no-op so the collection never becomes empty.
func (d *Draft) RemoveItem(index int) error {
	if d.Mode == ModeView {
		return ErrReadOnly
	}
	if len(d.Items) <= 1 {
		return nil
	}
	if index < 0 || index >= len(d.Items) {
		return fmt.Errorf("line item index %d out of range", index)
	}
	d.Items = append(d.Items[:index:index], d.Items[index+1:]...)
	return nil
}

// RemovePacking removes a packing entry by index with the same floor of one
// entry as RemoveItem.
func (d *Draft) RemovePacking(index int) error {
	if d.Mode == ModeView {
		return ErrReadOnly
	}
	if len(d.Packings) <= 1 {
		return nil
	}
	if index < 0 || index >= len(d.Packings) {
		return fmt.Errorf("packing entry index %d out of range", index)
	}
	d.Packings = append(d.Packings[:index:index], d.Packings[index+1:]...)
	return nil
}
