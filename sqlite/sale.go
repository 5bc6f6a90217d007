package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/artlot"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ artlot.SaleService = (*SaleService)(nil)

// SaleService implements artlot.SaleService using SQLite.
type SaleService struct {
	db *DB
}

// NewSaleService creates a new SaleService.
func NewSaleService(db *DB) *SaleService {
	return &SaleService{db: db}
}

// upsertSale creates the sale of a lot or fills in sale details that were
// missing so far, returning the sale's ID. Empty values never overwrite
// stored ones.
func upsertSale(ctx context.Context, tx *sql.Tx, lot *artlot.Lot, now time.Time) (string, error) {
	ts := now.Format(time.RFC3339)
	_, err := tx.ExecContext(ctx, `
		INSERT INTO sales (id, house, sale_id, title, date, location, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (house, sale_id) DO UPDATE SET
			title = COALESCE(NULLIF(excluded.title, ''), sales.title),
			date = COALESCE(NULLIF(excluded.date, ''), sales.date),
			location = COALESCE(NULLIF(excluded.location, ''), sales.location),
			updated_at = excluded.updated_at
	`, uuid.New().String(), lot.House, lot.SaleID, lot.SaleTitle, lot.SaleDate, lot.SaleLocation, ts, ts)
	if err != nil {
		return "", err
	}

	var id string
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM sales WHERE house = ? AND sale_id = ?", lot.House, lot.SaleID,
	).Scan(&id)
	return id, err
}

const saleColumns = `s.id, s.house, s.sale_id, s.title, s.date, s.location,
	(SELECT COUNT(*) FROM lots l WHERE l.sale_ref = s.id), s.created_at, s.updated_at`

// FindSaleByID retrieves a sale by ID.
func (s *SaleService) FindSaleByID(ctx context.Context, id string) (*artlot.Sale, error) {
	sale, err := scanSale(s.db.QueryRowContext(ctx, "SELECT "+saleColumns+" FROM sales s WHERE s.id = ?", id))
	if err == sql.ErrNoRows {
		return nil, artlot.Errorf(artlot.ENOTFOUND, "sale not found")
	}
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// FindSales retrieves sales matching the filter, most recent sale date first.
func (s *SaleService) FindSales(ctx context.Context, filter artlot.SaleFilter) ([]*artlot.Sale, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + saleColumns + " FROM sales s WHERE 1=1")

	if filter.House != nil {
		query.WriteString(" AND s.house = ?")
		args = append(args, *filter.House)
	}
	if filter.SaleID != nil {
		query.WriteString(" AND s.sale_id = ?")
		args = append(args, *filter.SaleID)
	}

	query.WriteString(" ORDER BY s.date DESC, s.created_at DESC")
	paginate(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*artlot.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	return sales, rows.Err()
}

// DeleteSale permanently removes a sale. Its lots are removed by cascade.
func (s *SaleService) DeleteSale(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sales WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return artlot.Errorf(artlot.ENOTFOUND, "sale not found")
	}

	return nil
}

func scanSale(row scanner) (*artlot.Sale, error) {
	var sale artlot.Sale
	var createdAt, updatedAt string

	if err := row.Scan(&sale.ID, &sale.House, &sale.SaleID, &sale.Title, &sale.Date,
		&sale.Location, &sale.LotCount, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if sale.CreatedAt, err = parseStoredTime("sale", sale.ID, createdAt); err != nil {
		return nil, err
	}
	if sale.UpdatedAt, err = parseStoredTime("sale", sale.ID, updatedAt); err != nil {
		return nil, err
	}
	return &sale, nil
}
