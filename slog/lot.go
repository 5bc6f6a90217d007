package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/artlot"
)

// Ensure LoggingLotService implements artlot.LotService.
var _ artlot.LotService = (*LoggingLotService)(nil)

// LoggingLotService wraps a LotService with logging.
type LoggingLotService struct {
	next   artlot.LotService
	logger *slog.Logger
}

// NewLoggingLotService creates a new LoggingLotService.
func NewLoggingLotService(next artlot.LotService, logger *slog.Logger) *LoggingLotService {
	return &LoggingLotService{next: next, logger: logger}
}

// CreateLot delegates to the wrapped service and logs the stored lot.
func (s *LoggingLotService) CreateLot(ctx context.Context, lot *artlot.Lot) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create lot",
			"house", lot.House,
			"sale", lot.SaleID,
			"lot", lot.LotID,
			"id", lot.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateLot(ctx, lot)
}

// FindLotByID delegates to the wrapped service.
func (s *LoggingLotService) FindLotByID(ctx context.Context, id string) (lot *artlot.Lot, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find lot",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindLotByID(ctx, id)
}

// FindLots delegates to the wrapped service and logs the match count.
func (s *LoggingLotService) FindLots(ctx context.Context, filter artlot.LotFilter) (lots []*artlot.Lot, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find lots",
			"count", len(lots),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindLots(ctx, filter)
}

// DeleteLot delegates to the wrapped service.
func (s *LoggingLotService) DeleteLot(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete lot",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteLot(ctx, id)
}
