package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/internal/domain/enum"
	"github.com/eximdesk/eximdesk-api/internal/domain/repository"
	"github.com/eximdesk/eximdesk-api/pkg/apperror"
	"github.com/eximdesk/eximdesk-api/pkg/money"
	"github.com/eximdesk/eximdesk-api/pkg/pagination"
)

// InvoiceService handles invoice operations
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	itemRepo    repository.InvoiceItemRepository
	packingRepo repository.PackingDetailRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.InvoiceItemRepository,
	packingRepo repository.PackingDetailRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		itemRepo:    itemRepo,
		packingRepo: packingRepo,
	}
}

// InvoiceItemInput is one goods line on a create or update request
type InvoiceItemInput struct {
	ItemNo               string
	PartNo               string
	Description          string
	HsCode               string
	Quantity             float64
	UnitPriceUsd         float64
	Currency             enum.Currency
	CurrencyCurrentPrice float64
}

// PackingDetailInput is one packing row on a create or update request
type PackingDetailInput struct {
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

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	UserID uuid.UUID

	InvoiceType enum.DocumentType
	InvoiceNo   string
	InvoiceDate time.Time

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

	FreightCost   float64
	InsuranceCost float64
	OtherCost     float64

	BeneficiaryName string
	BankName        string
	Branch          string
	AccountNo       string
	SwiftCode       string

	ArnNo  *string
	Rodtep *string
	RexNo  *string

	Items          []InvoiceItemInput
	PackingDetails []PackingDetailInput
}

// CreateInvoice creates a new invoice with its line items and packing rows.
// Line totals and the invoice total are computed server-side.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if input.InvoiceNo == "" {
		return nil, apperror.NewBadRequestError("Invoice number is required")
	}
	if input.InvoiceType != "" && !input.InvoiceType.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid invoice type")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("At least one line item is required")
	}

	existing, err := s.invoiceRepo.GetByInvoiceNo(ctx, input.InvoiceNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Invoice number already exists")
	}

	invoice := s.buildInvoice(input)

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	items := buildItems(invoice.ID, input.Items)
	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}
	invoice.Items = items

	packings := buildPackingDetails(invoice.ID, input.PackingDetails)
	if err := s.packingRepo.CreateBatch(ctx, packings); err != nil {
		return nil, err
	}
	invoice.PackingDetails = packings

	return invoice, nil
}

// UpdateInvoiceInput represents the update invoice input
type UpdateInvoiceInput struct {
	ID uuid.UUID
	CreateInvoiceInput
}

// UpdateInvoice replaces an invoice's fields, line items and packing rows
func (s *InvoiceService) UpdateInvoice(ctx context.Context, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if input.InvoiceType != "" && !input.InvoiceType.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid invoice type")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("At least one line item is required")
	}

	if input.InvoiceNo != "" && input.InvoiceNo != invoice.InvoiceNo {
		existing, err := s.invoiceRepo.GetByInvoiceNo(ctx, input.InvoiceNo)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != invoice.ID {
			return nil, apperror.NewConflictError("Invoice number already exists")
		}
	}

	updated := s.buildInvoice(&input.CreateInvoiceInput)
	updated.ID = invoice.ID
	updated.UserID = invoice.UserID
	updated.CreatedAt = invoice.CreatedAt

	if err := s.invoiceRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	// Replace detail rows wholesale. The form always submits the full set.
	if err := s.itemRepo.DeleteByInvoiceID(ctx, invoice.ID); err != nil {
		return nil, err
	}
	items := buildItems(invoice.ID, input.Items)
	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}
	updated.Items = items

	if err := s.packingRepo.DeleteByInvoiceID(ctx, invoice.ID); err != nil {
		return nil, err
	}
	packings := buildPackingDetails(invoice.ID, input.PackingDetails)
	if err := s.packingRepo.CreateBatch(ctx, packings); err != nil {
		return nil, err
	}
	updated.PackingDetails = packings

	return updated, nil
}

// GetInvoice retrieves an invoice with its line items and packing rows
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with optional search and type filter
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.Result[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(params.Pagination.Page, params.Pagination.Size, total)
	return pagination.NewResult(invoices, pag), nil
}

// DeleteInvoice deletes an invoice with its detail rows
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	return s.invoiceRepo.Delete(ctx, id)
}

func (s *InvoiceService) buildInvoice(input *CreateInvoiceInput) *entity.Invoice {
	lineTotals := make([]float64, 0, len(input.Items))
	for _, it := range input.Items {
		lineTotals = append(lineTotals, money.LineTotal(it.Quantity, it.UnitPriceUsd, it.CurrencyCurrentPrice))
	}

	invoiceType := input.InvoiceType
	if invoiceType == "" {
		invoiceType = enum.DocumentTypeExport
	}

	return &entity.Invoice{
		UserID: input.UserID,

		InvoiceType: invoiceType,
		InvoiceNo:   input.InvoiceNo,
		InvoiceDate: input.InvoiceDate,

		ExporterCompanyName: input.ExporterCompanyName,
		ExporterContactNo:   input.ExporterContactNo,
		ExporterAddress:     input.ExporterAddress,

		BillToCountry:    input.BillToCountry,
		BillToToTheOrder: input.BillToToTheOrder,
		BillToName:       input.BillToName,
		BillToContactNo:  input.BillToContactNo,
		BillToAddress:    input.BillToAddress,

		ShipToCountry:    input.ShipToCountry,
		ShipToToTheOrder: input.ShipToToTheOrder,
		ShipToName:       input.ShipToName,
		ShipToContactNo:  input.ShipToContactNo,
		ShipToAddress:    input.ShipToAddress,

		GstNo:                     input.GstNo,
		IecCode:                   input.IecCode,
		PoNo:                      input.PoNo,
		Incoterms:                 input.Incoterms,
		PaymentTerms:              input.PaymentTerms,
		PreCarriage:               input.PreCarriage,
		CountryOfOrigin:           input.CountryOfOrigin,
		CountryOfFinalDestination: input.CountryOfFinalDestination,
		PortOfLoading:             input.PortOfLoading,
		PortOfDischarge:           input.PortOfDischarge,

		FreightCost:   input.FreightCost,
		InsuranceCost: input.InsuranceCost,
		OtherCost:     input.OtherCost,

		BeneficiaryName: input.BeneficiaryName,
		BankName:        input.BankName,
		Branch:          input.Branch,
		AccountNo:       input.AccountNo,
		SwiftCode:       input.SwiftCode,

		ArnNo:  input.ArnNo,
		Rodtep: input.Rodtep,
		RexNo:  input.RexNo,

		TotalInr: money.InvoiceTotal(lineTotals, input.FreightCost, input.InsuranceCost, input.OtherCost),
	}
}

func buildItems(invoiceID uuid.UUID, inputs []InvoiceItemInput) []entity.InvoiceItem {
	items := make([]entity.InvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		currency := in.Currency
		if currency == "" {
			currency = enum.CurrencyUSD
		}
		items = append(items, entity.InvoiceItem{
			InvoiceID:            invoiceID,
			ItemNo:               in.ItemNo,
			PartNo:               in.PartNo,
			Description:          in.Description,
			HsCode:               in.HsCode,
			Quantity:             in.Quantity,
			UnitPriceUsd:         in.UnitPriceUsd,
			Currency:             currency,
			CurrencyCurrentPrice: in.CurrencyCurrentPrice,
			TotalInr:             money.LineTotal(in.Quantity, in.UnitPriceUsd, in.CurrencyCurrentPrice),
		})
	}
	return items
}

func buildPackingDetails(invoiceID uuid.UUID, inputs []PackingDetailInput) []entity.PackingDetail {
	details := make([]entity.PackingDetail, 0, len(inputs))
	for _, in := range inputs {
		details = append(details, entity.PackingDetail{
			InvoiceID:       invoiceID,
			ItemNo:          in.ItemNo,
			Description:     in.Description,
			TotalQty:        in.TotalQty,
			QtyInEachCarton: in.QtyInEachCarton,
			NoOfCarton:      in.NoOfCarton,
			GrossWeight:     in.GrossWeight,
			NetWeight:       in.NetWeight,
			CartonWidth:     in.CartonWidth,
			WoodenPallet:    in.WoodenPallet,
		})
	}
	return details
}
