package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/internal/domain/enum"
	"github.com/eximdesk/eximdesk-api/internal/domain/repository"
	"github.com/eximdesk/eximdesk-api/pkg/apperror"
	"github.com/eximdesk/eximdesk-api/pkg/pdfdoc"
)

// DocumentService renders invoice PDF documents
type DocumentService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewDocumentService creates a new document service
func NewDocumentService(invoiceRepo repository.InvoiceRepository) *DocumentService {
	return &DocumentService{invoiceRepo: invoiceRepo}
}

// GeneratedDocument is a rendered PDF with its download filename
type GeneratedDocument struct {
	Filename    string
	ContentType string
	Data        []byte
}

// GenerateDocument renders one of the three document types for an invoice
func (s *DocumentService) GenerateDocument(ctx context.Context, invoiceID uuid.UUID, docType enum.DocumentType) (*GeneratedDocument, error) {
	if !docType.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid document type")
	}

	invoice, err := s.invoiceRepo.GetWithDetails(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	data, err := pdfdoc.Render(buildDocument(invoice, docType))
	if err != nil {
		return nil, err
	}

	return &GeneratedDocument{
		Filename:    fmt.Sprintf("Invoice-%s-%s.pdf", invoice.InvoiceNo, docType.Label()),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func buildDocument(invoice *entity.Invoice, docType enum.DocumentType) *pdfdoc.Document {
	doc := &pdfdoc.Document{
		Title:     docType.Title(),
		InvoiceNo: invoice.InvoiceNo,
		Date:      invoice.InvoiceDate.Format("2006-01-02"),
		Exporter: pdfdoc.PartyBlock{
			Heading:   "Exporter",
			Name:      invoice.ExporterCompanyName,
			ContactNo: invoice.ExporterContactNo,
			Address:   invoice.ExporterAddress,
		},
		BillTo: pdfdoc.PartyBlock{
			Heading:   "Importer (Bill To)",
			Name:      invoice.BillToName,
			Reference: invoice.BillToToTheOrder,
			ContactNo: invoice.BillToContactNo,
			Address:   invoice.BillToAddress,
			Country:   invoice.BillToCountry,
		},
		ShipTo: pdfdoc.PartyBlock{
			Heading:   "Importer (Ship To)",
			Name:      invoice.ShipToName,
			Reference: invoice.ShipToToTheOrder,
			ContactNo: invoice.ShipToContactNo,
			Address:   invoice.ShipToAddress,
			Country:   invoice.ShipToCountry,
		},
		Meta: buildMeta(invoice),
	}

	if docType == enum.DocumentTypePackingList {
		for _, pd := range invoice.PackingDetails {
			doc.Packing = append(doc.Packing, pdfdoc.PackingRow{
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
	} else {
		for _, it := range invoice.Items {
			doc.Items = append(doc.Items, pdfdoc.ItemRow{
				ItemNo:       it.ItemNo,
				PartNo:       it.PartNo,
				Description:  it.Description,
				HsCode:       it.HsCode,
				Quantity:     it.Quantity,
				UnitPrice:    it.UnitPriceUsd,
				Currency:     string(it.Currency),
				ExchangeRate: it.CurrencyCurrentPrice,
				Total:        it.TotalInr,
			})
		}
		doc.FreightCost = invoice.FreightCost
		doc.InsuranceCost = invoice.InsuranceCost
		doc.OtherCost = invoice.OtherCost
		doc.Total = invoice.TotalInr
		doc.Bank = pdfdoc.BankBlock{
			BeneficiaryName: invoice.BeneficiaryName,
			BankName:        invoice.BankName,
			Branch:          invoice.Branch,
			AccountNo:       invoice.AccountNo,
			SwiftCode:       invoice.SwiftCode,
		}
	}

	if invoice.ArnNo != nil && *invoice.ArnNo != "" {
		doc.Declarations = append(doc.Declarations, "ARN No: "+*invoice.ArnNo)
	}
	if invoice.Rodtep != nil && *invoice.Rodtep != "" {
		doc.Declarations = append(doc.Declarations, "RoDTEP: "+*invoice.Rodtep)
	}
	if invoice.RexNo != nil && *invoice.RexNo != "" {
		doc.Declarations = append(doc.Declarations, "REX No: "+*invoice.RexNo)
	}

	return doc
}

func buildMeta(invoice *entity.Invoice) [][2]string {
	candidates := [][2]string{
		{"GST No", invoice.GstNo},
		{"IEC Code", invoice.IecCode},
		{"PO No", invoice.PoNo},
		{"Incoterms", invoice.Incoterms},
		{"Payment Terms", invoice.PaymentTerms},
		{"Pre-Carriage", invoice.PreCarriage},
		{"Country of Origin", invoice.CountryOfOrigin},
		{"Final Destination", invoice.CountryOfFinalDestination},
		{"Port of Loading", invoice.PortOfLoading},
		{"Port of Discharge", invoice.PortOfDischarge},
	}

	meta := make([][2]string, 0, len(candidates))
	for _, c := range candidates {
		if c[1] != "" {
			meta = append(meta, c)
		}
	}
	return meta
}
