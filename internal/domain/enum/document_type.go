package enum

// DocumentType identifies one of the three PDF renderings generated for an
// invoice.
type DocumentType string

const (
	DocumentTypeExport      DocumentType = "EXPORT"
	DocumentTypeCommercial  DocumentType = "COMMERCIAL"
	DocumentTypePackingList DocumentType = "PACKAGING_LIST"
)

// AllDocumentTypes returns the document types in generation order.
func AllDocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentTypeExport,
		DocumentTypeCommercial,
		DocumentTypePackingList,
	}
}

// IsValid reports whether the value is a known document type.
func (d DocumentType) IsValid() bool {
	switch d {
	case DocumentTypeExport, DocumentTypeCommercial, DocumentTypePackingList:
		return true
	}
	return false
}

// Label returns the human-readable label used in download filenames and
// document headings.
func (d DocumentType) Label() string {
	switch d {
	case DocumentTypeExport:
		return "Export"
	case DocumentTypeCommercial:
		return "Commercial"
	case DocumentTypePackingList:
		return "PackingList"
	}
	return string(d)
}

// Title returns the heading printed on the rendered document.
func (d DocumentType) Title() string {
	switch d {
	case DocumentTypeExport:
		return "EXPORT INVOICE"
	case DocumentTypeCommercial:
		return "COMMERCIAL INVOICE"
	case DocumentTypePackingList:
		return "PACKING LIST"
	}
	return string(d)
}

// ParseDocumentType maps the UI filter labels ("Export", "Commercial",
// "Packing List") and the raw enum values onto a DocumentType.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch s {
	case "EXPORT", "Export":
		return DocumentTypeExport, true
	case "COMMERCIAL", "Commercial":
		return DocumentTypeCommercial, true
	case "PACKAGING_LIST", "Packing List", "PackingList":
		return DocumentTypePackingList, true
	}
	return "", false
}
