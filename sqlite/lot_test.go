package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/artlot"
	"github.com/fwojciec/artlot/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLot(saleID, lotID string) *artlot.Lot {
	return &artlot.Lot{
		House:                artlot.HouseChristies,
		AuctionHouse:         "Christie's",
		URL:                  "https://www.christies.com/en/lot/lot-" + saleID + "-" + lotID,
		SaleID:               saleID,
		SaleTitle:            "Post-War to Present",
		SaleDate:             "2017-05-17",
		SaleLocation:         "New York",
		LotID:                lotID,
		ArtistName:           "Mark Rothko (1903-1970)",
		ArtistNameNormalized: "mark rothko",
		Description:          "oil on canvas",
		CreatedYear:          1955,
		Price:                12345000,
		Currency:             "USD",
		Title:                "Untitled",
		ExhibitedInMuseums:   2,
		ProvenanceEstateOf:   true,
		Height:               62.23,
		Width:                50.8,
		SizeUnit:             "in",
		MinEstimatedPrice:    8000000,
		MaxEstimatedPrice:    12000000,
		EstimateCurrency:     "USD",
	}
}

func TestLotService_CreateLot(t *testing.T) {
	t.Parallel()

	t.Run("stores lot and assigns ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewLotService(db)
		ctx := context.Background()

		lot := newLot("14240", "16")
		require.NoError(t, svc.CreateLot(ctx, lot))

		assert.NotEmpty(t, lot.ID)
		assert.False(t, lot.CreatedAt.IsZero())
		assert.NotEmpty(t, lot.ContentHash)

		got, err := svc.FindLotByID(ctx, lot.ID)
		require.NoError(t, err)
		assert.Equal(t, lot.URL, got.URL)
		assert.Equal(t, "16", got.LotID)
		assert.Equal(t, 1955, got.CreatedYear)
		assert.Equal(t, int64(12345000), got.Price)
		assert.Equal(t, 2, got.ExhibitedInMuseums)
		assert.True(t, got.ProvenanceEstateOf)
		assert.InDelta(t, 62.23, got.Height, 0.0001)
		assert.Equal(t, lot.ContentHash, got.ContentHash)
		assert.Equal(t, lot.CreatedAt.Unix(), got.CreatedAt.Unix())
	})

	t.Run("keeps a given content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewLotService(db)

		lot := newLot("14240", "16")
		lot.ContentHash = "abc123"
		require.NoError(t, svc.CreateLot(context.Background(), lot))

		assert.Equal(t, "abc123", lot.ContentHash)
	})

	t.Run("identical lots hash the same", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewLotService(db)
		ctx := context.Background()

		a := newLot("14240", "16")
		b := newLot("14240", "16")
		b.Source = "/tmp/lot-16.html"
		require.NoError(t, svc.CreateLot(ctx, a))
		require.NoError(t, svc.CreateLot(ctx, b))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("rejects lot without house", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewLotService(db)

		lot := newLot("14240", "16")
		lot.House = artlot.HouseUnknown
		err := svc.CreateLot(context.Background(), lot)

		assert.Equal(t, artlot.EINVALID, artlot.ErrorCode(err))
		assert.Empty(t, lot.ID)
	})

	t.Run("creates the sale of the lot", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		require.NoError(t, sqlite.NewLotService(db).CreateLot(ctx, newLot("14240", "16")))

		sales, err := sqlite.NewSaleService(db).FindSales(ctx, artlot.SaleFilter{})
		require.NoError(t, err)
		require.Len(t, sales, 1)
		assert.Equal(t, "14240", sales[0].SaleID)
		assert.Equal(t, "Post-War to Present", sales[0].Title)
		assert.Equal(t, 1, sales[0].LotCount)
	})
}

func TestLotService_FindLotByID(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewLotService(db)

		_, err := svc.FindLotByID(context.Background(), "nonexistent")

		assert.Equal(t, artlot.ENOTFOUND, artlot.ErrorCode(err))
	})
}

func TestLotService_FindLots(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.LotService {
		t.Helper()

		db := setupTestDB(t)
		svc := sqlite.NewLotService(db)
		ctx := context.Background()

		phillips := newLot("NY010117", "8")
		phillips.House = artlot.HousePhillips
		phillips.AuctionHouse = "Phillips"
		phillips.URL = "https://www.phillips.com/detail/NY010117/8"

		for _, lot := range []*artlot.Lot{newLot("14240", "16"), newLot("14240", "17"), phillips} {
			require.NoError(t, svc.CreateLot(ctx, lot))
		}
		return svc
	}

	t.Run("returns all lots without filter", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		lots, err := svc.FindLots(context.Background(), artlot.LotFilter{})

		require.NoError(t, err)
		assert.Len(t, lots, 3)
	})

	t.Run("filters by house", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		house := artlot.HousePhillips
		lots, err := svc.FindLots(context.Background(), artlot.LotFilter{House: &house})

		require.NoError(t, err)
		require.Len(t, lots, 1)
		assert.Equal(t, "8", lots[0].LotID)
	})

	t.Run("filters by sale", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		saleID := "14240"
		lots, err := svc.FindLots(context.Background(), artlot.LotFilter{SaleID: &saleID})

		require.NoError(t, err)
		assert.Len(t, lots, 2)
	})

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		url := "https://www.phillips.com/detail/NY010117/8"
		lots, err := svc.FindLots(context.Background(), artlot.LotFilter{URL: &url})

		require.NoError(t, err)
		require.Len(t, lots, 1)
		assert.Equal(t, artlot.HousePhillips, lots[0].House)
	})

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		lots, err := svc.FindLots(context.Background(), artlot.LotFilter{})

		require.NoError(t, err)
		require.Len(t, lots, 3)
		assert.Equal(t, "8", lots[0].LotID)
		assert.Equal(t, "16", lots[2].LotID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		lots, err := svc.FindLots(context.Background(), artlot.LotFilter{Limit: 1, Offset: 1})

		require.NoError(t, err)
		require.Len(t, lots, 1)
		assert.Equal(t, "17", lots[0].LotID)
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		lots, err := svc.FindLots(context.Background(), artlot.LotFilter{Offset: 1})

		require.NoError(t, err)
		require.Len(t, lots, 2)
		assert.Equal(t, "17", lots[0].LotID)
		assert.Equal(t, "16", lots[1].LotID)
	})

	t.Run("reports a malformed stored timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewLotService(db)
		ctx := context.Background()

		lot := newLot("14240", "16")
		require.NoError(t, svc.CreateLot(ctx, lot))
		_, err := db.ExecContext(ctx, "UPDATE lots SET created_at = 'yesterday' WHERE id = ?", lot.ID)
		require.NoError(t, err)

		_, err = svc.FindLotByID(ctx, lot.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lot "+lot.ID+" has a malformed timestamp")
	})
}

func TestLotService_DeleteLot(t *testing.T) {
	t.Parallel()

	t.Run("removes the lot", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewLotService(db)
		ctx := context.Background()

		lot := newLot("14240", "16")
		require.NoError(t, svc.CreateLot(ctx, lot))
		require.NoError(t, svc.DeleteLot(ctx, lot.ID))

		_, err := svc.FindLotByID(ctx, lot.ID)
		assert.Equal(t, artlot.ENOTFOUND, artlot.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewLotService(db)

		err := svc.DeleteLot(context.Background(), "nonexistent")

		assert.Equal(t, artlot.ENOTFOUND, artlot.ErrorCode(err))
	})
}
