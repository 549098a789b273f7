package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eximdesk/eximdesk-api/internal/domain/enum"
)

// Invoice is the canonical persisted invoice record. One record backs all
// three document renderings (export, commercial, packing list).
type Invoice struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`

	// Exporter
	ExporterCompanyName string `gorm:"size:255" json:"exporterCompanyName"`
	ExporterContactNo   string `gorm:"size:50" json:"exporterContactNo"`
	ExporterAddress     string `gorm:"type:text" json:"exporterAddress"`

	// Importer (bill to)
	BillToCountry    string `gorm:"size:100" json:"billToCountry"`
	BillToToTheOrder string `gorm:"size:255" json:"billToToTheOrder"`
	BillToName       string `gorm:"size:255;index" json:"billToName"`
	BillToContactNo  string `gorm:"size:50" json:"billToContactNo"`
	BillToAddress    string `gorm:"type:text" json:"billToAddress"`

	// Importer (ship to)
	ShipToCountry    string `gorm:"size:100" json:"shipToCountry"`
	ShipToToTheOrder string `gorm:"size:255" json:"shipToToTheOrder"`
	ShipToName       string `gorm:"size:255" json:"shipToName"`
	ShipToContactNo  string `gorm:"size:50" json:"shipToContactNo"`
	ShipToAddress    string `gorm:"type:text" json:"shipToAddress"`

	// Invoice metadata
	InvoiceType               enum.DocumentType `gorm:"size:50;default:'EXPORT';index" json:"invoiceType"`
	InvoiceNo                 string            `gorm:"size:100;unique;not null" json:"invoiceNo"`
	InvoiceDate               time.Time         `gorm:"type:date" json:"invoiceDate"`
	GstNo                     string            `gorm:"size:50" json:"gstNo"`
	IecCode                   string            `gorm:"size:50" json:"iecCode"`
	PoNo                      string            `gorm:"size:100" json:"poNo"`
	Incoterms                 string            `gorm:"size:100" json:"incoterms"`
	PaymentTerms              string            `gorm:"size:255" json:"paymentTerms"`
	PreCarriage               string            `gorm:"size:100" json:"preCarriage"`
	CountryOfOrigin           string            `gorm:"size:100" json:"countryOfOrigin"`
	CountryOfFinalDestination string            `gorm:"size:100" json:"countryOfFinalDestination"`
	PortOfLoading             string            `gorm:"size:100" json:"portOfLoading"`
	PortOfDischarge           string            `gorm:"size:100" json:"portOfDischarge"`

	// Additional charges
	FreightCost   float64 `gorm:"type:decimal(15,2);default:0" json:"freightCost"`
	InsuranceCost float64 `gorm:"type:decimal(15,2);default:0" json:"insuranceCost"`
	OtherCost     float64 `gorm:"type:decimal(15,2);default:0" json:"otherCost"`

	// Bank details
	BeneficiaryName string `gorm:"size:255" json:"beneficiaryName"`
	BankName        string `gorm:"size:255" json:"bankName"`
	Branch          string `gorm:"size:255" json:"branch"`
	AccountNo       string `gorm:"size:100" json:"accountNo"`
	SwiftCode       string `gorm:"size:50" json:"swiftCode"`

	// Compliance text blocks. Null means "not applicable", which is distinct
	// from an empty declaration, so these stay pointers.
	ArnNo  *string `gorm:"type:text" json:"arnNo"`
	Rodtep *string `gorm:"type:text" json:"rodtep"`
	RexNo  *string `gorm:"type:text" json:"rexNo"`

	TotalInr float64 `gorm:"type:decimal(15,2);default:0" json:"totalInr"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User           User            `gorm:"foreignKey:UserID" json:"-"`
	Items          []InvoiceItem   `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
	PackingDetails []PackingDetail `gorm:"foreignKey:InvoiceID" json:"packingDetails,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is one goods line on the commercial/export invoice.
type InvoiceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"invoiceId"`

	ItemNo               string        `gorm:"size:100" json:"itemNo"`
	PartNo               string        `gorm:"size:100" json:"partNo"`
	Description          string        `gorm:"type:text" json:"description"`
	HsCode               string        `gorm:"size:50" json:"hsCode"`
	Quantity             float64       `gorm:"type:decimal(15,3);default:0" json:"quantity"`
	UnitPriceUsd         float64       `gorm:"type:decimal(15,2);default:0" json:"unitPriceUsd"`
	Currency             enum.Currency `gorm:"size:10;default:'USD'" json:"currency"`
	CurrencyCurrentPrice float64       `gorm:"type:decimal(15,4);default:0" json:"currencyCurrentPrice"`
	TotalInr             float64       `gorm:"type:decimal(15,2);default:0" json:"totalInr"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// PackingDetail is one carton-level row on the packing list.
type PackingDetail struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"invoiceId"`

	ItemNo          string  `gorm:"size:100" json:"itemNo"`
	Description     string  `gorm:"type:text" json:"description"`
	TotalQty        float64 `gorm:"type:decimal(15,3);default:0" json:"totalQty"`
	QtyInEachCarton float64 `gorm:"type:decimal(15,3);default:0" json:"qtyInEachCarton"`
	NoOfCarton      float64 `gorm:"type:decimal(15,2);default:0" json:"noOfCarton"`
	GrossWeight     float64 `gorm:"type:decimal(15,3);default:0" json:"grossWeight"`
	NetWeight       float64 `gorm:"type:decimal(15,3);default:0" json:"netWeight"`
	CartonWidth     float64 `gorm:"type:decimal(15,2);default:0" json:"cartonWidth"`
	WoodenPallet    float64 `gorm:"type:decimal(15,2);default:0" json:"woodenPallet"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new packing detail
func (pd *PackingDetail) BeforeCreate(tx *gorm.DB) error {
	if pd.ID == uuid.Nil {
		pd.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PackingDetail model
func (PackingDetail) TableName() string {
	return "packing_details"
}
