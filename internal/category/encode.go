package category

import "houseprice/internal/domain"

// Vocabulary is the label-level view of a Table, independent of its enum type.
type Vocabulary interface {
	Attribute() string
	Labels() []string
	Encode(label string) (int, error)
}

var vocabularies = []Vocabulary{
	ZoningTable,
	LotConfigTable,
	NeighborhoodTable,
	HouseStyleTable,
	KitchenQualTable,
	HeatingQCTable,
	FunctionalTable,
	BsmtExposureTable,
	Exterior1stTable,
	FoundationTable,
	FireplaceQuTable,
	GarageTypeTable,
	GarageFinishTable,
	SaleConditionTable,
}

// Attributes returns every categorical vocabulary in form order.
func Attributes() []Vocabulary {
	out := make([]Vocabulary, len(vocabularies))
	copy(out, vocabularies)
	return out
}

// Lookup finds the vocabulary for an attribute name.
func Lookup(attribute string) (Vocabulary, bool) {
	for _, v := range vocabularies {
		if v.Attribute() == attribute {
			return v, true
		}
	}
	return nil, false
}

// Encode maps a label of the named attribute to its training code.
func Encode(attribute, label string) (int, error) {
	v, ok := Lookup(attribute)
	if !ok {
		return 0, &domain.EncodingError{Attribute: attribute, Label: label}
	}
	return v.Encode(label)
}
