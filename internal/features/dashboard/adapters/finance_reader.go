package adapters

import (
	"context"
	"time"

	"dispatch-board/internal/core/docstore"
	"dispatch-board/internal/core/logger"
	"dispatch-board/internal/features/dashboard/domain"

	"go.uber.org/zap"
)

const financeCollection = "transactions"

// FinanceReader fetches month-to-date financial records.
type FinanceReader struct {
	store   docstore.Store
	querier *FallbackQuerier
	logger  *zap.Logger
}

// NewFinanceReader creates a FinanceReader over the given store.
func NewFinanceReader(store docstore.Store) *FinanceReader {
	return &FinanceReader{
		store:   store,
		querier: NewFallbackQuerier(store),
		logger:  logger.Get(),
	}
}

// MonthToDate returns at most maxRows financial records created since
// the start of the current month. It prefers a server-side range filter
// ordered by creation time; when the store rejects that shape it falls
// back to the ordered-candidate ladder and filters client-side, keeping
// undated records.
func (r *FinanceReader) MonthToDate(ctx context.Context, maxRows int) []docstore.Record {
	start := startOfMonth(time.Now())

	records, err := r.store.Find(ctx, docstore.Query{
		Collection: financeCollection,
		Filters: []docstore.Filter{{
			Field: "createdAt",
			Op:    docstore.OpGreaterOrEqual,
			Value: docstore.Timestamp(start),
		}},
		OrderBy:    "createdAt",
		Descending: true,
		Limit:      maxRows,
	})
	if err == nil {
		return records
	}
	r.logger.Debug("Range-filtered finance read failed, falling back to candidate ladder", zap.Error(err))

	records = r.querier.FetchOrdered(ctx, financeCollection, domain.FinanceDateFields, maxRows)

	mtd := make([]docstore.Record, 0, len(records))
	for _, rec := range records {
		resolved, ok := domain.AnyDateFrom(rec, domain.FinanceDateFields)
		if !ok {
			mtd = append(mtd, rec)
			continue
		}
		if !resolved.Before(start) {
			mtd = append(mtd, rec)
		}
	}
	return mtd
}

// startOfMonth returns midnight on the first day of t's month.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
