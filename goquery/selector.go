package goquery

import "github.com/fwojciec/artlot"

var _ artlot.FragmentSelector = (*HouseSelector)(nil)

// HouseSelector selects the fragments of one house's lot pages with a fixed
// list of rules.
type HouseSelector struct {
	house artlot.House
	rules []Rule
}

// NewHouseSelector creates a selector for house from rules.
func NewHouseSelector(house artlot.House, rules []Rule) *HouseSelector {
	return &HouseSelector{house: house, rules: rules}
}

// NewChristiesSelector creates the selector for Christie's lot pages.
func NewChristiesSelector() *HouseSelector {
	return NewHouseSelector(artlot.HouseChristies, ChristiesRules())
}

// NewPhillipsSelector creates the selector for Phillips lot pages.
func NewPhillipsSelector() *HouseSelector {
	return NewHouseSelector(artlot.HousePhillips, PhillipsRules())
}

// House returns the house whose pages the selector understands.
func (s *HouseSelector) House() artlot.House {
	return s.house
}

// Rules returns a copy of the selector's rules.
func (s *HouseSelector) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// Select parses HTML and returns the fragments found per field.
func (s *HouseSelector) Select(html string, pageURL string) (artlot.Fragments, error) {
	return SelectWithRules(html, pageURL, s.rules)
}

// ChristiesRules returns the selection rules of Christie's lot pages. Every
// field lives in an element with a server-generated id.
func ChristiesRules() []Rule {
	const (
		description = "#main_center_0_lblLotDescription"
		exhibited   = "#main_center_0_lblExhibited"
		provenance  = "#main_center_0_lblLotProvenance"
		estimate    = "#main_center_0_lblPriceEstimatedPrimary"
		realized    = "#main_center_0_lblPriceRealizedPrimary"
		primary     = "#main_center_0_lblLotPrimaryTitle"
	)
	return []Rule{
		{Field: artlot.FieldURL, FromURL: true},
		{Field: artlot.FieldSaleID, Selector: "#main_center_0_lnkSaleNumber"},
		{Field: artlot.FieldSaleTitle, Selector: "#main_center_0_lblSaleTitle"},
		{Field: artlot.FieldSaleDate, Selector: "#main_center_0_lblSaleDate"},
		{Field: artlot.FieldSaleLocation, Selector: "#main_center_0_lblSaleLocation"},
		{Field: artlot.FieldLotID, Selector: "#main_center_0_lblLotNumber"},
		{Field: artlot.FieldArtistName, Selector: primary},
		{Field: artlot.FieldArtistNameNormalized, Selector: primary},
		{Field: artlot.FieldTitle, Selector: primary},
		{Field: artlot.FieldSecondaryTitle, Selector: "#main_center_0_lblLotSecondaryTitle"},
		{Field: artlot.FieldDescription, Selector: description, Nodes: true},
		{Field: artlot.FieldCreatedYear, Selector: description, Nodes: true},
		{Field: artlot.FieldStyle, Selector: description, Nodes: true},
		{Field: artlot.FieldHeight, Selector: description, Nodes: true},
		{Field: artlot.FieldWidth, Selector: description, Nodes: true},
		{Field: artlot.FieldSizeUnit, Selector: description, Nodes: true},
		{Field: artlot.FieldPrice, Selector: realized},
		{Field: artlot.FieldCurrency, Selector: realized},
		{Field: artlot.FieldNotes, Selector: "#main_center_0_lblLotNotes", Nodes: true},
		{Field: artlot.FieldExhibitedIn, Selector: exhibited, Nodes: true},
		{Field: artlot.FieldExhibitedInMuseums, Selector: exhibited, Nodes: true},
		{Field: artlot.FieldProvenance, Selector: provenance, Nodes: true},
		{Field: artlot.FieldProvenanceEstateOf, Selector: provenance, Nodes: true},
		{Field: artlot.FieldImageURL, Selector: "#imgLotImage", Attr: "src"},
		{Field: artlot.FieldMinEstimatedPrice, Selector: estimate},
		{Field: artlot.FieldMaxEstimatedPrice, Selector: estimate},
		{Field: artlot.FieldEstimateCurrency, Selector: estimate},
	}
}

// PhillipsRules returns the selection rules of Phillips lot pages. Exhibition
// and provenance paragraphs follow a paragraph holding a bold heading.
func PhillipsRules() []Rule {
	const (
		banner      = ".sale-title-banner > a"
		description = ".lot-information > p:not([class])"
		exhibited   = `p:has(strong:contains("Exhibited")) + p`
		provenance  = `p:has(strong:contains("Provenance")) + p`
		estimate    = `p:has(strong:contains("Estimate"))`
		sold        = "p.sold"
		artist      = ".lot-information > a > h2"
	)
	return []Rule{
		{Field: artlot.FieldURL, FromURL: true},
		{Field: artlot.FieldSaleID, FromURL: true},
		{Field: artlot.FieldSaleTitle, Selector: banner + " > strong", Nodes: true},
		{Field: artlot.FieldSaleDate, Selector: banner},
		{Field: artlot.FieldSaleLocation, Selector: banner},
		{Field: artlot.FieldLotID, Selector: ".lot-information > h1"},
		{Field: artlot.FieldArtistName, Selector: artist, Nodes: true},
		{Field: artlot.FieldArtistNameNormalized, Selector: artist, Nodes: true},
		{Field: artlot.FieldDescription, Selector: description},
		{Field: artlot.FieldCreatedYear, Selector: description},
		{Field: artlot.FieldStyle, Selector: description},
		{Field: artlot.FieldHeight, Selector: description},
		{Field: artlot.FieldWidth, Selector: description},
		{Field: artlot.FieldSizeUnit, Selector: description},
		{Field: artlot.FieldPrice, Selector: sold, Nodes: true},
		{Field: artlot.FieldCurrency, Selector: sold, Nodes: true},
		{Field: artlot.FieldTitle, Selector: ".lot-information > p.title", Nodes: true},
		{Field: artlot.FieldNotes, Selector: `div[class*="lot-essay"] > p`},
		{Field: artlot.FieldExhibitedIn, Selector: exhibited},
		{Field: artlot.FieldExhibitedInMuseums, Selector: exhibited},
		{Field: artlot.FieldProvenance, Selector: provenance, Nodes: true},
		{Field: artlot.FieldProvenanceEstateOf, Selector: provenance, Nodes: true},
		{Field: artlot.FieldImageURL, Selector: "a.modal-zoom", Attr: "zoomimagesrc"},
		{Field: artlot.FieldMinEstimatedPrice, Selector: estimate},
		{Field: artlot.FieldMaxEstimatedPrice, Selector: estimate},
		{Field: artlot.FieldEstimateCurrency, Selector: estimate},
	}
}
