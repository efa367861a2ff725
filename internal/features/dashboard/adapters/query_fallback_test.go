package adapters

import (
	"context"
	"errors"
	"testing"

	"dispatch-board/internal/core/docstore"

	"github.com/stretchr/testify/assert"
)

// TestFallbackQuerier_FirstCandidateWins verifies the happy path.
func TestFallbackQuerier_FirstCandidateWins(t *testing.T) {
	store := docstore.NewMemoryAdapter()
	store.Seed("shipments",
		docstore.Record{"trackingId": docstore.String("a"), "updatedAt": docstore.Number(2)},
		docstore.Record{"trackingId": docstore.String("b"), "updatedAt": docstore.Number(1)},
	)

	querier := NewFallbackQuerier(store)

	records := querier.FetchOrdered(context.Background(), "shipments", []string{"updatedAt", "updated_at"}, 10)
	assert.Len(t, records, 2)
	assert.Equal(t, "a", records[0]["trackingId"].Str)
}

// TestFallbackQuerier_DegradesThroughCandidates verifies that rejected
// orderings fall through to later candidates.
func TestFallbackQuerier_DegradesThroughCandidates(t *testing.T) {
	store := docstore.NewMemoryAdapter()
	store.Seed("shipments",
		docstore.Record{"trackingId": docstore.String("a"), "created_at": docstore.Number(1)},
		docstore.Record{"trackingId": docstore.String("b"), "created_at": docstore.Number(2)},
	)
	// Only created_at has a simulated index.
	store.AllowOrderBy("shipments", "created_at")

	querier := NewFallbackQuerier(store)

	records := querier.FetchOrdered(context.Background(), "shipments", []string{"updatedAt", "updated_at", "created_at"}, 10)
	assert.Len(t, records, 2)
	assert.Equal(t, "b", records[0]["trackingId"].Str)
}

// TestFallbackQuerier_AllOrderingsRejected verifies the terminal
// unordered read: bounded results, no error, no ordering guarantee.
func TestFallbackQuerier_AllOrderingsRejected(t *testing.T) {
	store := docstore.NewMemoryAdapter()
	for i := 0; i < 5; i++ {
		store.Seed("shipments", docstore.Record{"trackingId": docstore.String("x")})
	}
	// No orderable fields at all.
	store.AllowOrderBy("shipments")

	querier := NewFallbackQuerier(store)

	records := querier.FetchOrdered(context.Background(), "shipments", []string{"updatedAt", "updated_at"}, 3)
	assert.LessOrEqual(t, len(records), 3)
	assert.Len(t, records, 3)
}

// TestFallbackQuerier_TotalFailure verifies that even a failed terminal
// read yields an empty result rather than an error.
func TestFallbackQuerier_TotalFailure(t *testing.T) {
	store := docstore.NewMemoryAdapter()
	store.SetFindErr(errors.New("store unavailable"))

	querier := NewFallbackQuerier(store)

	records := querier.FetchOrdered(context.Background(), "shipments", []string{"updatedAt"}, 10)
	assert.Empty(t, records)
}
