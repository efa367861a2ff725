package adapters

import (
	"context"
	"time"

	"dispatch-board/internal/core/docstore"
	"dispatch-board/internal/core/logger"
	"dispatch-board/internal/features/dashboard/domain"

	"go.uber.org/zap"
)

const shipmentCollection = "shipments"

// ShipmentReader fetches the bounded, time-windowed shipment set the
// snapshot engine aggregates over.
type ShipmentReader struct {
	querier *FallbackQuerier
	logger  *zap.Logger
}

// NewShipmentReader creates a ShipmentReader over the given store.
func NewShipmentReader(store docstore.Store) *ShipmentReader {
	return &ShipmentReader{
		querier: NewFallbackQuerier(store),
		logger:  logger.Get(),
	}
}

// FetchWindow returns at most maxRows shipment records whose resolved
// timestamp falls within [now-days, now]. Records with no resolvable
// timestamp are kept rather than silently dropped: given the field-name
// drift, completeness beats precision here.
func (r *ShipmentReader) FetchWindow(ctx context.Context, days, maxRows int) []docstore.Record {
	records := r.querier.FetchOrdered(ctx, shipmentCollection, domain.ShipmentDateFields, maxRows)

	now := time.Now()
	from := now.AddDate(0, 0, -days)

	window := make([]docstore.Record, 0, len(records))
	for _, rec := range records {
		resolved, ok := domain.AnyDateFrom(rec, domain.ShipmentDateFields)
		if !ok {
			window = append(window, rec)
			continue
		}
		if !resolved.Before(from) && !resolved.After(now) {
			window = append(window, rec)
		}
	}

	r.logger.Debug("Shipment window fetched",
		zap.Int("fetched", len(records)),
		zap.Int("in_window", len(window)),
		zap.Int("days", days),
	)
	return window
}
