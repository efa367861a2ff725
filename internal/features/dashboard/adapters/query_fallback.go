package adapters

import (
	"context"

	"dispatch-board/internal/core/docstore"
	"dispatch-board/internal/core/logger"

	"go.uber.org/zap"
)

// FallbackQuerier executes bounded reads through a ladder of degrading
// strategies: a descending-ordered read per candidate field, then a
// terminal unordered read. The ladder exists because the hosted store
// rejects orderings without a covering index, and provisioning an index
// per historical field-name variant is not worth exact recency ordering.
type FallbackQuerier struct {
	store  docstore.Store
	logger *zap.Logger
}

// NewFallbackQuerier creates a FallbackQuerier over the given store.
func NewFallbackQuerier(store docstore.Store) *FallbackQuerier {
	return &FallbackQuerier{
		store:  store,
		logger: logger.Get(),
	}
}

// FetchOrdered attempts a descending-ordered, bounded read using each
// candidate field in turn, then degrades to a plain bounded read with no
// ordering guarantee. It never returns an error; the worst outcome is an
// empty, unordered result. Results never exceed maxRows.
func (f *FallbackQuerier) FetchOrdered(ctx context.Context, collection string, orderFieldCandidates []string, maxRows int) []docstore.Record {
	for _, field := range orderFieldCandidates {
		records, err := f.store.Find(ctx, docstore.Query{
			Collection: collection,
			OrderBy:    field,
			Descending: true,
			Limit:      maxRows,
		})
		if err == nil {
			return records
		}
		f.logger.Debug("Ordered read rejected, trying next candidate",
			zap.String("collection", collection),
			zap.String("order_field", field),
			zap.Error(err),
		)
	}

	f.logger.Warn("All ordered reads rejected, degrading to unordered read",
		zap.String("collection", collection),
	)

	records, err := f.store.Find(ctx, docstore.Query{
		Collection: collection,
		Limit:      maxRows,
	})
	if err != nil {
		f.logger.Warn("Unordered read failed, returning empty result",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return nil
	}
	return records
}
