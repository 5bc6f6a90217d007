package artlot

import (
	"context"
	"time"
)

// Sale groups the stored lots of one auction. Sales are created implicitly
// when their first lot is stored.
type Sale struct {
	ID        string    `json:"id"`
	House     House     `json:"house"`
	SaleID    string    `json:"sale_id"`
	Title     string    `json:"sale_title"`
	Date      string    `json:"sale_date"`
	Location  string    `json:"sale_location"`
	LotCount  int       `json:"lot_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaleService represents a service for browsing stored sales.
type SaleService interface {
	// FindSaleByID retrieves a sale by ID.
	// Returns ENOTFOUND if the sale does not exist.
	FindSaleByID(ctx context.Context, id string) (*Sale, error)

	// FindSales retrieves sales matching the filter, most recent sale date
	// first.
	FindSales(ctx context.Context, filter SaleFilter) ([]*Sale, error)

	// DeleteSale permanently removes a sale and all of its lots.
	// Returns ENOTFOUND if the sale does not exist.
	DeleteSale(ctx context.Context, id string) error
}

// SaleFilter represents a filter for FindSales.
type SaleFilter struct {
	House  *House  `json:"house"`
	SaleID *string `json:"sale_id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
