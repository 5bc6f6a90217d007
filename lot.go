package artlot

import (
	"context"
	"time"
)

// Lot is the typed form of an assembled record.
type Lot struct {
	ID                   string    `json:"id,omitempty"`
	House                House     `json:"house"`
	AuctionHouse         string    `json:"auction_house_name"`
	URL                  string    `json:"url"`
	SaleID               string    `json:"sale_id"`
	SaleTitle            string    `json:"sale_title"`
	SaleDate             string    `json:"sale_date"`
	SaleLocation         string    `json:"sale_location"`
	LotID                string    `json:"lot_id"`
	ArtistName           string    `json:"artist_name"`
	ArtistNameNormalized string    `json:"artist_name_normalized"`
	Description          string    `json:"description"`
	CreatedYear          int       `json:"created_year"`
	Price                int64     `json:"price"`
	Currency             string    `json:"currency"`
	Title                string    `json:"title"`
	SecondaryTitle       string    `json:"secondary_title"`
	Notes                string    `json:"notes"`
	Style                string    `json:"style"`
	ExhibitedIn          string    `json:"exhibited_in"`
	ExhibitedInMuseums   int       `json:"exhibited_in_museums"`
	Provenance           string    `json:"provenance"`
	ProvenanceEstateOf   bool      `json:"provenance_estate_of"`
	Height               float64   `json:"height"`
	Width                float64   `json:"width"`
	SizeUnit             string    `json:"size_unit"`
	ImageURL             string    `json:"image_url"`
	MinEstimatedPrice    int64     `json:"min_estimated_price"`
	MaxEstimatedPrice    int64     `json:"max_estimated_price"`
	EstimateCurrency     string    `json:"estimate_currency"`
	Source               string    `json:"source,omitempty"`
	ContentHash          string    `json:"content_hash,omitempty"`
	CreatedAt            time.Time `json:"created_at,omitzero"`
}

// Validate returns an error if the lot cannot be stored.
func (l *Lot) Validate() error {
	if l.House == HouseUnknown {
		return Errorf(EINVALID, "lot house required")
	}
	return nil
}

// LotWriter stores assembled lots.
type LotWriter interface {
	// CreateLot stores a new lot and sets its ID and creation time.
	CreateLot(ctx context.Context, lot *Lot) error
}

// LotValidator checks an assembled lot before it is stored.
type LotValidator interface {
	// ValidateLot returns EINVALID if the lot breaks a constraint.
	ValidateLot(lot *Lot) error
}

// LotService represents a service for managing stored lots.
type LotService interface {
	LotWriter

	// FindLotByID retrieves a lot by ID.
	// Returns ENOTFOUND if the lot does not exist.
	FindLotByID(ctx context.Context, id string) (*Lot, error)

	// FindLots retrieves lots matching the filter, newest first.
	FindLots(ctx context.Context, filter LotFilter) ([]*Lot, error)

	// DeleteLot permanently removes a lot.
	// Returns ENOTFOUND if the lot does not exist.
	DeleteLot(ctx context.Context, id string) error
}

// LotFilter represents a filter for FindLots.
type LotFilter struct {
	ID     *string `json:"id"`
	House  *House  `json:"house"`
	SaleID *string `json:"sale_id"`
	URL    *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
