package artlot

// FieldValue is the resolved value of one field.
type FieldValue struct {
	Field   Field
	Value   any
	Matched bool
}

// Record is the assembled output for one lot page: exactly one value per
// schema field. A record is immutable once built.
type Record struct {
	house   House
	fields  []Field
	values  map[Field]any
	matched map[Field]bool
}

// NewRecord builds a record from resolved field values, keeping their order.
// A field listed twice keeps its last value.
func NewRecord(house House, values []FieldValue) *Record {
	r := &Record{
		house:   house,
		fields:  make([]Field, 0, len(values)),
		values:  make(map[Field]any, len(values)),
		matched: make(map[Field]bool, len(values)),
	}
	for _, fv := range values {
		if _, ok := r.values[fv.Field]; !ok {
			r.fields = append(r.fields, fv.Field)
		}
		r.values[fv.Field] = fv.Value
		r.matched[fv.Field] = fv.Matched
	}
	return r
}

// House returns the house whose schema produced the record.
func (r *Record) House() House {
	return r.house
}

// Fields returns the record's fields in schema order.
func (r *Record) Fields() []Field {
	return append([]Field(nil), r.fields...)
}

// Has reports whether the field is part of the record.
func (r *Record) Has(field Field) bool {
	_, ok := r.values[field]
	return ok
}

// Value returns the raw value of a field, or nil if the field is absent.
func (r *Record) Value(field Field) any {
	return r.values[field]
}

// Matched reports whether the field was parsed from the page rather than
// filled with its fallback. It lets callers tell a genuine zero from a miss.
func (r *Record) Matched(field Field) bool {
	return r.matched[field]
}

// String returns a string field, or "" for absent or non-string fields.
func (r *Record) String(field Field) string {
	s, _ := r.values[field].(string)
	return s
}

// Int returns an integer field, or 0 for absent or non-integer fields.
func (r *Record) Int(field Field) int64 {
	switch v := r.values[field].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case int32:
		return int64(v)
	}
	return 0
}

// Float returns a floating point field, or 0 for absent or non-numeric fields.
func (r *Record) Float(field Field) float64 {
	switch v := r.values[field].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Bool returns a boolean field, or false for absent or non-boolean fields.
func (r *Record) Bool(field Field) bool {
	b, _ := r.values[field].(bool)
	return b
}

// Map returns the record as a field-name keyed map.
func (r *Record) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	for f, v := range r.values {
		m[string(f)] = v
	}
	return m
}

// Lot maps the record onto the typed lot used for storage and output.
// Fields the record does not carry stay zero.
func (r *Record) Lot() *Lot {
	return &Lot{
		House:                r.house,
		AuctionHouse:         r.String(FieldAuctionHouse),
		URL:                  r.String(FieldURL),
		SaleID:               r.String(FieldSaleID),
		SaleTitle:            r.String(FieldSaleTitle),
		SaleDate:             r.String(FieldSaleDate),
		SaleLocation:         r.String(FieldSaleLocation),
		LotID:                r.String(FieldLotID),
		ArtistName:           r.String(FieldArtistName),
		ArtistNameNormalized: r.String(FieldArtistNameNormalized),
		Description:          r.String(FieldDescription),
		CreatedYear:          int(r.Int(FieldCreatedYear)),
		Price:                r.Int(FieldPrice),
		Currency:             r.String(FieldCurrency),
		Title:                r.String(FieldTitle),
		SecondaryTitle:       r.String(FieldSecondaryTitle),
		Notes:                r.String(FieldNotes),
		Style:                r.String(FieldStyle),
		ExhibitedIn:          r.String(FieldExhibitedIn),
		ExhibitedInMuseums:   int(r.Int(FieldExhibitedInMuseums)),
		Provenance:           r.String(FieldProvenance),
		ProvenanceEstateOf:   r.Bool(FieldProvenanceEstateOf),
		Height:               r.Float(FieldHeight),
		Width:                r.Float(FieldWidth),
		SizeUnit:             r.String(FieldSizeUnit),
		ImageURL:             r.String(FieldImageURL),
		MinEstimatedPrice:    r.Int(FieldMinEstimatedPrice),
		MaxEstimatedPrice:    r.Int(FieldMaxEstimatedPrice),
		EstimateCurrency:     r.String(FieldEstimateCurrency),
	}
}
