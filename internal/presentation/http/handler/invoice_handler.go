package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eximdesk/eximdesk-api/internal/application/service"
	"github.com/eximdesk/eximdesk-api/internal/domain/enum"
	"github.com/eximdesk/eximdesk-api/internal/domain/repository"
	"github.com/eximdesk/eximdesk-api/internal/presentation/http/dto/request"
	"github.com/eximdesk/eximdesk-api/internal/presentation/http/dto/response"
	"github.com/eximdesk/eximdesk-api/pkg/pagination"
	"github.com/eximdesk/eximdesk-api/pkg/utils"
)

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService  *service.InvoiceService
	documentService *service.DocumentService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, documentService *service.DocumentService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:  invoiceService,
		documentService: documentService,
	}
}

// List handles listing invoices with search and type filter
// @Summary List Invoices
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	params := pagination.DefaultParams()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	filter := &repository.InvoiceFilterParams{
		Pagination: params,
		Search:     c.Query("search"),
	}
	if t := c.Query("type"); t != "" {
		docType, ok := enum.ParseDocumentType(t)
		if !ok {
			response.BadRequest(c, "Invalid invoice type")
			return
		}
		filter.Type = &docType
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Get handles fetching a single invoice with line items and packing rows
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Create handles creating an invoice
// @Summary Create Invoice
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := buildInvoiceInput(&req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	input.UserID = *userID

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Update handles updating an invoice
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := buildInvoiceInput(&req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), &service.UpdateInvoiceInput{
		ID:                 id,
		CreateInvoiceInput: *input,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// Delete handles deleting an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice deleted successfully", nil)
}

// DownloadDocument renders one PDF document for an invoice
// @Summary Download Invoice Document
// @Tags invoices
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Param type query string true "Document type (EXPORT, COMMERCIAL, PACKAGING_LIST)"
// @Success 200 {file} binary
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadDocument(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	docType, ok := enum.ParseDocumentType(c.Query("type"))
	if !ok {
		response.BadRequest(c, "Invalid document type")
		return
	}

	doc, err := h.documentService.GenerateDocument(c.Request.Context(), id, docType)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(200, doc.ContentType, doc.Data)
}

func buildInvoiceInput(req *request.CreateInvoiceRequest) (*service.CreateInvoiceInput, error) {
	var invoiceType enum.DocumentType
	if req.InvoiceType != "" {
		t, ok := enum.ParseDocumentType(req.InvoiceType)
		if !ok {
			return nil, fmt.Errorf("invalid invoice type %q", req.InvoiceType)
		}
		invoiceType = t
	}

	invoiceDate := time.Now()
	if req.InvoiceDate != "" {
		d, err := time.Parse("2006-01-02", req.InvoiceDate)
		if err != nil {
			return nil, fmt.Errorf("invalid invoice date %q", req.InvoiceDate)
		}
		invoiceDate = d
	}

	items := make([]service.InvoiceItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.InvoiceItemInput{
			ItemNo:               it.ItemNo,
			PartNo:               it.PartNo,
			Description:          it.Description,
			HsCode:               it.HsCode,
			Quantity:             it.Quantity,
			UnitPriceUsd:         it.UnitPriceUsd,
			Currency:             enum.Currency(it.Currency),
			CurrencyCurrentPrice: it.CurrencyCurrentPrice,
		})
	}

	packings := make([]service.PackingDetailInput, 0, len(req.PackingDetails))
	for _, pd := range req.PackingDetails {
		packings = append(packings, service.PackingDetailInput{
			ItemNo:          pd.ItemNo,
			Description:     pd.Description,
			TotalQty:        pd.TotalQty,
			QtyInEachCarton: pd.QtyInEachCarton,
			NoOfCarton:      pd.NoOfCarton,
			GrossWeight:     pd.GrossWeight,
			NetWeight:       pd.NetWeight,
			CartonWidth:     pd.CartonWidth,
			WoodenPallet:    pd.WoodenPallet,
		})
	}

	return &service.CreateInvoiceInput{
		InvoiceType: invoiceType,
		InvoiceNo:   req.InvoiceNo,
		InvoiceDate: invoiceDate,

		ExporterCompanyName: req.ExporterCompanyName,
		ExporterContactNo:   req.ExporterContactNo,
		ExporterAddress:     req.ExporterAddress,

		BillToCountry:    req.BillToCountry,
		BillToToTheOrder: req.BillToToTheOrder,
		BillToName:       req.BillToName,
		BillToContactNo:  req.BillToContactNo,
		BillToAddress:    req.BillToAddress,

		ShipToCountry:    req.ShipToCountry,
		ShipToToTheOrder: req.ShipToToTheOrder,
		ShipToName:       req.ShipToName,
		ShipToContactNo:  req.ShipToContactNo,
		ShipToAddress:    req.ShipToAddress,

		GstNo:                     req.GstNo,
		IecCode:                   req.IecCode,
		PoNo:                      req.PoNo,
		Incoterms:                 req.Incoterms,
		PaymentTerms:              req.PaymentTerms,
		PreCarriage:               req.PreCarriage,
		CountryOfOrigin:           req.CountryOfOrigin,
		CountryOfFinalDestination: req.CountryOfFinalDestination,
		PortOfLoading:             req.PortOfLoading,
		PortOfDischarge:           req.PortOfDischarge,

		FreightCost:   req.FreightCost,
		InsuranceCost: req.InsuranceCost,
		OtherCost:     req.OtherCost,

		BeneficiaryName: req.BeneficiaryName,
		BankName:        req.BankName,
		Branch:          req.Branch,
		AccountNo:       req.AccountNo,
		SwiftCode:       req.SwiftCode,

		ArnNo:  req.ArnNo,
		Rodtep: req.Rodtep,
		RexNo:  req.RexNo,

		Items:          items,
		PackingDetails: packings,
	}, nil
}
