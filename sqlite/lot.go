package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/artlot"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ artlot.LotService = (*LotService)(nil)

// LotService implements artlot.LotService using SQLite.
type LotService struct {
	db *DB
}

// NewLotService creates a new LotService.
func NewLotService(db *DB) *LotService {
	return &LotService{db: db}
}

const lotColumns = `id, house, auction_house, url, source, sale_id, sale_title, sale_date,
	sale_location, lot_id, artist_name, artist_name_normalized, description, created_year,
	price, currency, title, secondary_title, notes, style, exhibited_in, exhibited_in_museums,
	provenance, provenance_estate_of, height, width, size_unit, image_url, min_estimated_price,
	max_estimated_price, estimate_currency, content_hash, created_at`

// hashContent computes xxHash of content and returns hex string.
func hashContent(content []byte) string {
	h := xxhash.Sum64(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// hashLot hashes the extracted fields of a lot, leaving out the storage
// metadata.
func hashLot(lot *artlot.Lot) (string, error) {
	c := *lot
	c.ID, c.Source, c.ContentHash, c.CreatedAt = "", "", "", time.Time{}
	data, err := json.Marshal(&c)
	if err != nil {
		return "", err
	}
	return hashContent(data), nil
}

// CreateLot stores a new lot, creating or refreshing its sale. A lot without
// a content hash gets one computed from its fields.
func (s *LotService) CreateLot(ctx context.Context, lot *artlot.Lot) error {
	if err := lot.Validate(); err != nil {
		return err
	}

	if lot.ContentHash == "" {
		hash, err := hashLot(lot)
		if err != nil {
			return err
		}
		lot.ContentHash = hash
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	saleRef, err := upsertSale(ctx, tx, lot, now)
	if err != nil {
		return err
	}

	id := uuid.New().String()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO lots (sale_ref, `+lotColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, saleRef, id, lot.House, lot.AuctionHouse, lot.URL, lot.Source, lot.SaleID, lot.SaleTitle,
		lot.SaleDate, lot.SaleLocation, lot.LotID, lot.ArtistName, lot.ArtistNameNormalized,
		lot.Description, lot.CreatedYear, lot.Price, lot.Currency, lot.Title, lot.SecondaryTitle,
		lot.Notes, lot.Style, lot.ExhibitedIn, lot.ExhibitedInMuseums, lot.Provenance,
		lot.ProvenanceEstateOf, lot.Height, lot.Width, lot.SizeUnit, lot.ImageURL,
		lot.MinEstimatedPrice, lot.MaxEstimatedPrice, lot.EstimateCurrency, lot.ContentHash,
		now.Format(time.RFC3339))
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	lot.ID = id
	lot.CreatedAt = now
	return nil
}

// FindLotByID retrieves a lot by ID.
func (s *LotService) FindLotByID(ctx context.Context, id string) (*artlot.Lot, error) {
	lot, err := scanLot(s.db.QueryRowContext(ctx, "SELECT "+lotColumns+" FROM lots WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, artlot.Errorf(artlot.ENOTFOUND, "lot not found")
	}
	if err != nil {
		return nil, err
	}
	return lot, nil
}

// FindLots retrieves lots matching the filter, newest first.
func (s *LotService) FindLots(ctx context.Context, filter artlot.LotFilter) ([]*artlot.Lot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + lotColumns + " FROM lots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.House != nil {
		query.WriteString(" AND house = ?")
		args = append(args, *filter.House)
	}
	if filter.SaleID != nil {
		query.WriteString(" AND sale_id = ?")
		args = append(args, *filter.SaleID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	paginate(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lots []*artlot.Lot
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}

	return lots, rows.Err()
}

// DeleteLot permanently removes a lot. The sale stays, even when empty.
func (s *LotService) DeleteLot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM lots WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return artlot.Errorf(artlot.ENOTFOUND, "lot not found")
	}

	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanLot(row scanner) (*artlot.Lot, error) {
	var lot artlot.Lot
	var createdAt string

	if err := row.Scan(&lot.ID, &lot.House, &lot.AuctionHouse, &lot.URL, &lot.Source,
		&lot.SaleID, &lot.SaleTitle, &lot.SaleDate, &lot.SaleLocation, &lot.LotID,
		&lot.ArtistName, &lot.ArtistNameNormalized, &lot.Description, &lot.CreatedYear,
		&lot.Price, &lot.Currency, &lot.Title, &lot.SecondaryTitle, &lot.Notes, &lot.Style,
		&lot.ExhibitedIn, &lot.ExhibitedInMuseums, &lot.Provenance, &lot.ProvenanceEstateOf,
		&lot.Height, &lot.Width, &lot.SizeUnit, &lot.ImageURL, &lot.MinEstimatedPrice,
		&lot.MaxEstimatedPrice, &lot.EstimateCurrency, &lot.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if lot.CreatedAt, err = parseStoredTime("lot", lot.ID, createdAt); err != nil {
		return nil, err
	}
	return &lot, nil
}

// parseStoredTime parses a timestamp column written by this package.
func parseStoredTime(table, id, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %s has a malformed timestamp %q: %w", table, id, value, err)
	}
	return t, nil
}

// paginate appends LIMIT and OFFSET clauses for positive values. SQLite only
// accepts OFFSET after a LIMIT, so an offset alone gets LIMIT -1 (no limit).
func paginate(query *strings.Builder, args *[]any, limit, offset int) {
	switch {
	case limit > 0:
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	case offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
