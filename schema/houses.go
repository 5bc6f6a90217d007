package schema

import "github.com/fwojciec/artlot"

// Christies returns the Christie's schema. Christie's pages print prices with
// three-letter codes ("GBP 1,234,500"), so money is parsed directly.
func Christies(cfg Config) *artlot.Schema {
	st := newStages(cfg)
	return &artlot.Schema{
		House: artlot.HouseChristies,
		Name:  "Christie's",
		Fields: []artlot.FieldSpec{
			{Field: artlot.FieldAuctionHouse, Pipeline: artlot.Joined(Constant("Christie's"))},
			{Field: artlot.FieldURL, Pipeline: artlot.Each(Text)},
			{Field: artlot.FieldSaleID, Pipeline: artlot.Each(Text)},
			{Field: artlot.FieldSaleTitle, Pipeline: artlot.Each(StripAccents)},
			{Field: artlot.FieldSaleDate, Pipeline: artlot.Each(SaleDate)},
			{Field: artlot.FieldSaleLocation, Pipeline: artlot.Each(Text)},
			{Field: artlot.FieldLotID, Pipeline: artlot.Each(LotID)},
			{Field: artlot.FieldArtistName, Pipeline: artlot.Each(Name)},
			{Field: artlot.FieldArtistNameNormalized, Pipeline: artlot.Each(Name, StripAccents)},
			{Field: artlot.FieldDescription},
			{Field: artlot.FieldCreatedYear, Pipeline: artlot.Joined(CreatedYear)},
			{Field: artlot.FieldPrice, Pipeline: artlot.Each(st.money, Amount)},
			{Field: artlot.FieldCurrency, Pipeline: artlot.Each(st.money, Currency)},
			{Field: artlot.FieldTitle, Pipeline: artlot.Each(StripAccents)},
			{Field: artlot.FieldSecondaryTitle, Pipeline: artlot.Each(StripAccents)},
			{Field: artlot.FieldNotes},
			{Field: artlot.FieldStyle, Pipeline: artlot.Each(st.style)},
			{Field: artlot.FieldExhibitedIn},
			{Field: artlot.FieldExhibitedInMuseums, Pipeline: artlot.Joined(st.museums)},
			{Field: artlot.FieldProvenance},
			{Field: artlot.FieldProvenanceEstateOf, Pipeline: artlot.Joined(Provenance)},
			{Field: artlot.FieldHeight, Pipeline: artlot.Each(Dimensions, Height)},
			{Field: artlot.FieldWidth, Pipeline: artlot.Each(Dimensions, Width)},
			{Field: artlot.FieldSizeUnit, Pipeline: artlot.Each(Dimensions, SizeUnit)},
			{Field: artlot.FieldImageURL, Pipeline: artlot.Each(ImageURL)},
			{Field: artlot.FieldMinEstimatedPrice, Pipeline: artlot.Each(st.estimate, EstimateMin)},
			{Field: artlot.FieldMaxEstimatedPrice, Pipeline: artlot.Each(st.estimate, EstimateMax)},
			{Field: artlot.FieldEstimateCurrency, Pipeline: artlot.Each(st.estimate, EstimateCurrency)},
		},
	}
}

// Phillips returns the Phillips schema. Phillips prints currency symbols
// after a label ("Estimate £10,000 - 15,000", "Sold for HK$1,000,000"), so
// money passes through LocateCurrency before the shared parsers. The sale id
// comes from the lot address and the sale location from the sale banner.
func Phillips(cfg Config) *artlot.Schema {
	st := newStages(cfg)
	return &artlot.Schema{
		House: artlot.HousePhillips,
		Name:  "Phillips",
		Fields: []artlot.FieldSpec{
			{Field: artlot.FieldAuctionHouse, Pipeline: artlot.Joined(Constant("Phillips"))},
			{Field: artlot.FieldURL, Pipeline: artlot.Each(Text)},
			{Field: artlot.FieldSaleID, Pipeline: artlot.Each(SaleID)},
			{Field: artlot.FieldSaleTitle, Pipeline: artlot.Each(StripAccents)},
			{Field: artlot.FieldSaleDate, Pipeline: artlot.Each(SaleDate)},
			{Field: artlot.FieldSaleLocation, Pipeline: artlot.Each(st.location)},
			{Field: artlot.FieldLotID, Pipeline: artlot.Each(LotID)},
			{Field: artlot.FieldArtistName, Pipeline: artlot.Each(Name)},
			{Field: artlot.FieldArtistNameNormalized, Pipeline: artlot.Each(Name, StripAccents)},
			{Field: artlot.FieldDescription},
			{Field: artlot.FieldCreatedYear, Pipeline: artlot.Joined(CreatedYear)},
			{Field: artlot.FieldPrice, Pipeline: artlot.Each(st.locate, st.money, Amount)},
			{Field: artlot.FieldCurrency, Pipeline: artlot.Each(st.locate, st.money, Currency)},
			{Field: artlot.FieldTitle, Pipeline: artlot.Each(Text)},
			{Field: artlot.FieldSecondaryTitle},
			{Field: artlot.FieldNotes},
			{Field: artlot.FieldStyle, Pipeline: artlot.Each(st.style)},
			{Field: artlot.FieldExhibitedIn},
			{Field: artlot.FieldExhibitedInMuseums, Pipeline: artlot.Joined(st.museums)},
			{Field: artlot.FieldProvenance},
			{Field: artlot.FieldProvenanceEstateOf, Pipeline: artlot.Joined(Provenance)},
			{Field: artlot.FieldHeight, Pipeline: artlot.Each(Dimensions, Height)},
			{Field: artlot.FieldWidth, Pipeline: artlot.Each(Dimensions, Width)},
			{Field: artlot.FieldSizeUnit, Pipeline: artlot.Each(Dimensions, SizeUnit)},
			{Field: artlot.FieldImageURL, Pipeline: artlot.Each(Text)},
			{Field: artlot.FieldMinEstimatedPrice, Pipeline: artlot.Each(st.locate, st.estimate, EstimateMin)},
			{Field: artlot.FieldMaxEstimatedPrice, Pipeline: artlot.Each(st.locate, st.estimate, EstimateMax)},
			{Field: artlot.FieldEstimateCurrency, Pipeline: artlot.Each(st.locate, st.estimate, EstimateCurrency)},
		},
	}
}
