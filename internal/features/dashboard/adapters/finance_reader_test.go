package adapters

import (
	"context"
	"testing"
	"time"

	"dispatch-board/internal/core/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFinanceReader_MonthToDate_RangeFilter verifies the preferred
// server-side range-filtered path.
func TestFinanceReader_MonthToDate_RangeFilter(t *testing.T) {
	now := time.Now()
	store := docstore.NewMemoryAdapter()
	store.Seed("transactions",
		docstore.Record{"note": docstore.String("this_month"), "createdAt": docstore.Timestamp(now)},
		docstore.Record{"note": docstore.String("last_month"), "createdAt": docstore.Timestamp(now.AddDate(0, 0, -45))},
	)

	reader := NewFinanceReader(store)

	records := reader.MonthToDate(context.Background(), 10)
	require.Len(t, records, 1)
	assert.Equal(t, "this_month", records[0]["note"].Str)
}

// TestFinanceReader_MonthToDate_Fallback verifies the candidate-ladder
// fallback with client-side filtering and conservative inclusion of
// undated records.
func TestFinanceReader_MonthToDate_Fallback(t *testing.T) {
	now := time.Now()
	store := docstore.NewMemoryAdapter()
	store.Seed("transactions",
		docstore.Record{"note": docstore.String("this_month"), "createdAt": docstore.Timestamp(now)},
		docstore.Record{"note": docstore.String("this_month_snake"), "created_at": docstore.Timestamp(now)},
		docstore.Record{"note": docstore.String("last_month"), "createdAt": docstore.Timestamp(now.AddDate(0, 0, -45))},
		docstore.Record{"note": docstore.String("undated")},
	)
	// No orderable fields: the range-filtered ordered read and every
	// ordered candidate get rejected.
	store.AllowOrderBy("transactions")

	reader := NewFinanceReader(store)

	records := reader.MonthToDate(context.Background(), 10)
	require.Len(t, records, 3)

	notes := make([]string, 0, len(records))
	for _, rec := range records {
		notes = append(notes, rec["note"].Str)
	}
	assert.Contains(t, notes, "this_month")
	assert.Contains(t, notes, "this_month_snake")
	assert.Contains(t, notes, "undated")
	assert.NotContains(t, notes, "last_month")
}

// TestStartOfMonth verifies the month boundary computation.
func TestStartOfMonth(t *testing.T) {
	ref := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), startOfMonth(ref))
}
