package adapters

import (
	"context"
	"strings"

	"dispatch-board/internal/core/docstore"
	"dispatch-board/internal/core/logger"
	"dispatch-board/internal/features/dashboard/domain"

	"go.uber.org/zap"
)

const userCollection = "users"

// Status and role variants cover casing drift across producer versions.
// Keeping these as single-field in-filters avoids composite indexes on
// the hosted store.
var (
	approvedStatusVariants = []string{"approved", "Approved", "APPROVED", "active", "Active"}
	riderRoleVariants      = []string{"rider", "Rider", "RIDER", "driver", "Driver"}
)

// UserReader counts approved users and riders with single-field filters
// and in-memory fallbacks.
type UserReader struct {
	store     docstore.Store
	scanLimit int
	logger    *zap.Logger
}

// NewUserReader creates a UserReader. scanLimit bounds the in-memory
// fallback fetch.
func NewUserReader(store docstore.Store, scanLimit int) *UserReader {
	return &UserReader{
		store:     store,
		scanLimit: scanLimit,
		logger:    logger.Get(),
	}
}

// ActiveUsers counts approved user accounts. It prefers a server-side
// approximate count; when the store rejects or fails that, it fetches a
// bounded set and counts in memory. A failed fetch degrades to 0.
func (r *UserReader) ActiveUsers(ctx context.Context) int64 {
	n, err := r.store.Count(ctx, docstore.Query{
		Collection: userCollection,
		Filters: []docstore.Filter{{
			Field:  "status",
			Op:     docstore.OpIn,
			Values: stringValues(approvedStatusVariants),
		}},
	})
	if err == nil {
		return n
	}
	r.logger.Debug("Server-side user count failed, falling back to in-memory count", zap.Error(err))

	records, err := r.store.Find(ctx, docstore.Query{
		Collection: userCollection,
		Limit:      r.scanLimit,
	})
	if err != nil {
		r.logger.Warn("User count fallback failed, reporting zero", zap.Error(err))
		return 0
	}

	var count int64
	for _, rec := range records {
		if isApproved(rec) {
			count++
		}
	}
	return count
}

// ActiveRiders counts approved rider accounts. The store is filtered by
// role only (a single-field filter) and approval is checked in memory.
// Unlike ActiveUsers there is no further fallback: a failed read
// degrades straight to 0.
func (r *UserReader) ActiveRiders(ctx context.Context) int64 {
	records, err := r.store.Find(ctx, docstore.Query{
		Collection: userCollection,
		Filters: []docstore.Filter{{
			Field:  "role",
			Op:     docstore.OpIn,
			Values: stringValues(riderRoleVariants),
		}},
		Limit: r.scanLimit,
	})
	if err != nil {
		r.logger.Warn("Rider fetch failed, reporting zero", zap.Error(err))
		return 0
	}

	var count int64
	for _, rec := range records {
		if isApproved(rec) {
			count++
		}
	}
	return count
}

// isApproved resolves the user's status across drifted field names and
// compares case-insensitively.
func isApproved(rec docstore.Record) bool {
	status := strings.ToLower(domain.PickFirstString(rec, domain.UserStatusFields, ""))
	return status == "approved" || status == "active"
}

// stringValues wraps plain strings as store values.
func stringValues(items []string) []docstore.Value {
	out := make([]docstore.Value, 0, len(items))
	for _, s := range items {
		out = append(out, docstore.String(s))
	}
	return out
}
