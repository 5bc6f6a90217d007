package mock

import (
	"context"

	"github.com/fwojciec/artlot"
)

var _ artlot.LotService = (*LotService)(nil)

// LotService is a mock implementation of artlot.LotService.
type LotService struct {
	CreateLotFn   func(ctx context.Context, lot *artlot.Lot) error
	FindLotByIDFn func(ctx context.Context, id string) (*artlot.Lot, error)
	FindLotsFn    func(ctx context.Context, filter artlot.LotFilter) ([]*artlot.Lot, error)
	DeleteLotFn   func(ctx context.Context, id string) error
}

func (s *LotService) CreateLot(ctx context.Context, lot *artlot.Lot) error {
	return s.CreateLotFn(ctx, lot)
}

func (s *LotService) FindLotByID(ctx context.Context, id string) (*artlot.Lot, error) {
	return s.FindLotByIDFn(ctx, id)
}

func (s *LotService) FindLots(ctx context.Context, filter artlot.LotFilter) ([]*artlot.Lot, error) {
	return s.FindLotsFn(ctx, filter)
}

func (s *LotService) DeleteLot(ctx context.Context, id string) error {
	return s.DeleteLotFn(ctx, id)
}

var _ artlot.SchemaRegistry = (*SchemaRegistry)(nil)

// SchemaRegistry is a mock implementation of artlot.SchemaRegistry.
type SchemaRegistry struct {
	GetFn      func(house artlot.House) *artlot.Schema
	RegisterFn func(schema *artlot.Schema)
	ListFn     func() []artlot.House
}

func (r *SchemaRegistry) Get(house artlot.House) *artlot.Schema {
	return r.GetFn(house)
}

func (r *SchemaRegistry) Register(schema *artlot.Schema) {
	r.RegisterFn(schema)
}

func (r *SchemaRegistry) List() []artlot.House {
	return r.ListFn()
}

var _ artlot.SaleService = (*SaleService)(nil)

// SaleService is a mock implementation of artlot.SaleService.
type SaleService struct {
	FindSaleByIDFn func(ctx context.Context, id string) (*artlot.Sale, error)
	FindSalesFn    func(ctx context.Context, filter artlot.SaleFilter) ([]*artlot.Sale, error)
	DeleteSaleFn   func(ctx context.Context, id string) error
}

func (s *SaleService) FindSaleByID(ctx context.Context, id string) (*artlot.Sale, error) {
	return s.FindSaleByIDFn(ctx, id)
}

func (s *SaleService) FindSales(ctx context.Context, filter artlot.SaleFilter) ([]*artlot.Sale, error) {
	return s.FindSalesFn(ctx, filter)
}

func (s *SaleService) DeleteSale(ctx context.Context, id string) error {
	return s.DeleteSaleFn(ctx, id)
}

var _ artlot.LotValidator = (*LotValidator)(nil)

// LotValidator is a mock implementation of artlot.LotValidator.
type LotValidator struct {
	ValidateLotFn func(lot *artlot.Lot) error
}

func (v *LotValidator) ValidateLot(lot *artlot.Lot) error {
	return v.ValidateLotFn(lot)
}
