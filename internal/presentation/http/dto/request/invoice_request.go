package request

// InvoiceItemRequest is one goods line in an invoice payload
type InvoiceItemRequest struct {
	ItemNo               string  `json:"itemNo"`
	PartNo               string  `json:"partNo"`
	Description          string  `json:"description"`
	HsCode               string  `json:"hsCode"`
	Quantity             float64 `json:"quantity"`
	UnitPriceUsd         float64 `json:"unitPriceUsd"`
	Currency             string  `json:"currency"`
	CurrencyCurrentPrice float64 `json:"currencyCurrentPrice"`
}

// PackingDetailRequest is one packing row in an invoice payload
type PackingDetailRequest struct {
	ItemNo          string  `json:"itemNo"`
	Description     string  `json:"description"`
	TotalQty        float64 `json:"totalQty"`
	QtyInEachCarton float64 `json:"qtyInEachCarton"`
	NoOfCarton      float64 `json:"noOfCarton"`
	GrossWeight     float64 `json:"grossWeight"`
	NetWeight       float64 `json:"netWeight"`
	CartonWidth     float64 `json:"cartonWidth"`
	WoodenPallet    float64 `json:"woodenPallet"`
}

// CreateInvoiceRequest represents the create invoice request body. Compliance
// fields (arnNo, rodtep, rexNo) accept null, which is stored as-is; numeric
// charge fields default to zero when absent.
type CreateInvoiceRequest struct {
	InvoiceType string `json:"invoiceType"`
	InvoiceNo   string `json:"invoiceNo" binding:"required"`
	InvoiceDate string `json:"invoiceDate"`

	ExporterCompanyName string `json:"exporterCompanyName"`
	ExporterContactNo   string `json:"exporterContactNo"`
	ExporterAddress     string `json:"exporterAddress"`

	BillToCountry    string `json:"billToCountry"`
	BillToToTheOrder string `json:"billToToTheOrder"`
	BillToName       string `json:"billToName"`
	BillToContactNo  string `json:"billToContactNo"`
	BillToAddress    string `json:"billToAddress"`

	ShipToCountry    string `json:"shipToCountry"`
	ShipToToTheOrder string `json:"shipToToTheOrder"`
	ShipToName       string `json:"shipToName"`
	ShipToContactNo  string `json:"shipToContactNo"`
	ShipToAddress    string `json:"shipToAddress"`

	GstNo                     string `json:"gstNo"`
	IecCode                   string `json:"iecCode"`
	PoNo                      string `json:"poNo"`
	Incoterms                 string `json:"incoterms"`
	PaymentTerms              string `json:"paymentTerms"`
	PreCarriage               string `json:"preCarriage"`
	CountryOfOrigin           string `json:"countryOfOrigin"`
	CountryOfFinalDestination string `json:"countryOfFinalDestination"`
	PortOfLoading             string `json:"portOfLoading"`
	PortOfDischarge           string `json:"portOfDischarge"`

	FreightCost   float64 `json:"freightCost"`
	InsuranceCost float64 `json:"insuranceCost"`
	OtherCost     float64 `json:"otherCost"`

	BeneficiaryName string `json:"beneficiaryName"`
	BankName        string `json:"bankName"`
	Branch          string `json:"branch"`
	AccountNo       string `json:"accountNo"`
	SwiftCode       string `json:"swiftCode"`

	ArnNo  *string `json:"arnNo"`
	Rodtep *string `json:"rodtep"`
	RexNo  *string `json:"rexNo"`

	Items          []InvoiceItemRequest   `json:"items" binding:"required,min=1"`
	PackingDetails []PackingDetailRequest `json:"packingDetails"`
}

// UpdateInvoiceRequest represents the update invoice request body
type UpdateInvoiceRequest = CreateInvoiceRequest
