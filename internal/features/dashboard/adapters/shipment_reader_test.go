package adapters

import (
	"context"
	"testing"
	"time"

	"dispatch-board/internal/core/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShipmentReader_FetchWindow verifies the time-window filter and the
// conservative inclusion of undated records.
func TestShipmentReader_FetchWindow(t *testing.T) {
	now := time.Now()
	store := docstore.NewMemoryAdapter()
	store.Seed("shipments",
		docstore.Record{"trackingId": docstore.String("fresh"), "updatedAt": docstore.Timestamp(now.Add(-24 * time.Hour))},
		docstore.Record{"trackingId": docstore.String("stale"), "updatedAt": docstore.Timestamp(now.AddDate(0, 0, -60))},
		docstore.Record{"trackingId": docstore.String("undated")},
		docstore.Record{"trackingId": docstore.String("snake"), "updated_at": docstore.String(now.Add(-48 * time.Hour).Format(time.RFC3339))},
	)

	reader := NewShipmentReader(store)

	window := reader.FetchWindow(context.Background(), 30, 10)
	require.Len(t, window, 3)

	ids := make([]string, 0, len(window))
	for _, rec := range window {
		ids = append(ids, rec["trackingId"].Str)
	}
	assert.Contains(t, ids, "fresh")
	assert.Contains(t, ids, "undated")
	assert.Contains(t, ids, "snake")
	assert.NotContains(t, ids, "stale")
}

// TestShipmentReader_FetchWindow_Bounded verifies the row bound.
func TestShipmentReader_FetchWindow_Bounded(t *testing.T) {
	now := time.Now()
	store := docstore.NewMemoryAdapter()
	for i := 0; i < 20; i++ {
		store.Seed("shipments", docstore.Record{
			"updatedAt": docstore.Timestamp(now.Add(-time.Duration(i) * time.Hour)),
		})
	}

	reader := NewShipmentReader(store)

	window := reader.FetchWindow(context.Background(), 30, 5)
	assert.Len(t, window, 5)
}
