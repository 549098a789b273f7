package enum

// PartyType classifies a party master record.
type PartyType string

const (
	PartyTypeSupplier PartyType = "Supplier"
	PartyTypeBuyer    PartyType = "Buyer"
)

// IsValid reports whether the value is a known party type.
func (p PartyType) IsValid() bool {
	return p == PartyTypeSupplier || p == PartyTypeBuyer
}
