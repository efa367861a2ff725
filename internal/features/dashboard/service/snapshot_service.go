package service

import (
	"context"
	"time"

	"dispatch-board/internal/core/logger"
	"dispatch-board/internal/features/dashboard/domain"
	"dispatch-board/internal/features/dashboard/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options tunes the snapshot assembly.
type Options struct {
	// WindowDays is the shipment window size in days.
	WindowDays int
	// MaxRows bounds the shipment window read.
	MaxRows int
	// RecentLimit bounds the recent-shipments list.
	RecentLimit int
	// FinanceMaxRows bounds the month-to-date financial read.
	FinanceMaxRows int
}

// SnapshotService assembles dashboard snapshots. It is the only
// component exposed to the presentation layer; everything it depends on
// absorbs its own failures, so GetSnapshot always produces a complete
// snapshot, trading accuracy for availability.
type SnapshotService struct {
	shipments ports.ShipmentSource
	users     ports.UserSource
	finance   ports.FinanceSource
	cache     ports.SnapshotCache
	opts      Options
	logger    *zap.Logger
}

// NewSnapshotService creates a SnapshotService. cache may be nil, which
// disables snapshot reuse.
func NewSnapshotService(shipments ports.ShipmentSource, users ports.UserSource, finance ports.FinanceSource, cache ports.SnapshotCache, opts Options) *SnapshotService {
	return &SnapshotService{
		shipments: shipments,
		users:     users,
		finance:   finance,
		cache:     cache,
		opts:      opts,
		logger:    logger.Get(),
	}
}

// GetSnapshot returns one complete, immutable snapshot.
//
// The shipment window is fetched once, blocking, and every
// shipment-derived figure (counts, breakdowns, outstanding COD) comes
// synchronously from that single window so they are mutually
// consistent. The remaining aggregations (recent rows, user counts,
// month-to-date financials) run concurrently and write disjoint fields;
// a failure in any of them degrades that field to its zero value
// without touching the rest.
func (s *SnapshotService) GetSnapshot(ctx context.Context) *domain.Snapshot {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("Snapshot cache read failed, recomputing", zap.Error(err))
		} else if cached != nil {
			s.logger.Debug("Serving cached snapshot", zap.String("snapshot_id", cached.ID))
			return cached
		}
	}

	start := time.Now()
	window := s.shipments.FetchWindow(ctx, s.opts.WindowDays, s.opts.MaxRows)
	stats := aggregateShipments(window)

	snapshot := &domain.Snapshot{
		ID:                uuid.NewString(),
		GeneratedAt:       time.Now().UTC(),
		TotalShipments:    stats.Total,
		PendingPickups:    stats.PendingPickups,
		InTransit:         stats.InTransit,
		Delivered:         stats.Delivered,
		Exceptions:        stats.Exceptions,
		CODOutstanding:    outstandingCOD(window),
		PickupBreakdown:   stats.Pickup,
		DeliveryBreakdown: stats.Delivery,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snapshot.RecentShipments = projectRows(window, s.opts.RecentLimit)
		return nil
	})
	g.Go(func() error {
		snapshot.ActiveUsers = s.users.ActiveUsers(gctx)
		snapshot.ActiveRiders = s.users.ActiveRiders(gctx)
		return nil
	})
	g.Go(func() error {
		records := s.finance.MonthToDate(gctx, s.opts.FinanceMaxRows)
		snapshot.MTDRevenue, snapshot.MTDExpenses = summarizeFinancials(records)
		return nil
	})
	g.Wait()

	s.logger.Info("Snapshot assembled",
		zap.String("snapshot_id", snapshot.ID),
		zap.Int("total_shipments", snapshot.TotalShipments),
		zap.Duration("duration", time.Since(start)),
	)

	if s.cache != nil {
		if err := s.cache.Save(ctx, snapshot); err != nil {
			s.logger.Warn("Snapshot cache write failed", zap.Error(err))
		}
	}

	return snapshot
}
