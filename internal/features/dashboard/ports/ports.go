package ports

import (
	"context"

	"dispatch-board/internal/core/docstore"
	"dispatch-board/internal/features/dashboard/domain"
)

// SnapshotService defines the primary port for the dashboard feature.
type SnapshotService interface {
	// GetSnapshot assembles (or serves from cache) one complete
	// dashboard snapshot. It never fails: degraded sub-aggregations
	// surface as documented zero values inside the snapshot.
	GetSnapshot(ctx context.Context) *domain.Snapshot
}

// ShipmentSource supplies the time-windowed shipment records every
// shipment-derived figure is computed from.
type ShipmentSource interface {
	// FetchWindow returns at most maxRows records judged to be within
	// the last `days` days, conservatively including undated records.
	// Failures degrade to an empty window.
	FetchWindow(ctx context.Context, days, maxRows int) []docstore.Record
}

// UserSource supplies approved user and rider counts.
type UserSource interface {
	// ActiveUsers counts approved user accounts; failures degrade to 0.
	ActiveUsers(ctx context.Context) int64
	// ActiveRiders counts approved rider accounts; failures degrade to 0.
	ActiveRiders(ctx context.Context) int64
}

// FinanceSource supplies month-to-date financial records.
type FinanceSource interface {
	// MonthToDate returns at most maxRows records created since the
	// start of the current month. Failures degrade to an empty set.
	MonthToDate(ctx context.Context, maxRows int) []docstore.Record
}

// SnapshotCache is the secondary port for short-lived snapshot reuse.
type SnapshotCache interface {
	// Get returns the cached snapshot, or (nil, nil) on a miss.
	Get(ctx context.Context) (*domain.Snapshot, error)
	// Save stores the snapshot for the configured TTL.
	Save(ctx context.Context, snapshot *domain.Snapshot) error
}
