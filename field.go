package artlot

// Field names a column of a lot record.
type Field string

// Fields known to the built-in schemas.
const (
	FieldAuctionHouse         Field = "auction_house_name"
	FieldURL                  Field = "url"
	FieldSaleID               Field = "sale_id"
	FieldSaleTitle            Field = "sale_title"
	FieldSaleDate             Field = "sale_date"
	FieldSaleLocation         Field = "sale_location"
	FieldLotID                Field = "lot_id"
	FieldArtistName           Field = "artist_name"
	FieldArtistNameNormalized Field = "artist_name_normalized"
	FieldDescription          Field = "description"
	FieldCreatedYear          Field = "created_year"
	FieldPrice                Field = "price"
	FieldCurrency             Field = "currency"
	FieldTitle                Field = "title"
	FieldSecondaryTitle       Field = "secondary_title"
	FieldNotes                Field = "notes"
	FieldStyle                Field = "style"
	FieldExhibitedIn          Field = "exhibited_in"
	FieldExhibitedInMuseums   Field = "exhibited_in_museums"
	FieldProvenance           Field = "provenance"
	FieldProvenanceEstateOf   Field = "provenance_estate_of"
	FieldHeight               Field = "height"
	FieldWidth                Field = "width"
	FieldSizeUnit             Field = "size_unit"
	FieldImageURL             Field = "image_url"
	FieldMinEstimatedPrice    Field = "min_estimated_price"
	FieldMaxEstimatedPrice    Field = "max_estimated_price"
	FieldEstimateCurrency     Field = "estimate_currency"
)

// House identifies an auction house, and with it a schema and a set of
// selection rules.
type House string

// Supported auction houses.
const (
	HouseUnknown   House = ""
	HouseChristies House = "christies"
	HousePhillips  House = "phillips"
)

// Fragments maps a field to the raw text snippets a selection step found for
// it, in document order. A missing key and an empty slice mean the same thing.
type Fragments map[Field][]string

// Add appends snippets to a field.
func (f Fragments) Add(field Field, snippets ...string) {
	f[field] = append(f[field], snippets...)
}
