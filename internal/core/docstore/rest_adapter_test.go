package docstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dispatch-board/internal/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(url string) *RESTAdapter {
	return NewRESTAdapter(config.StoreConfig{
		URL:            url,
		APIKey:         "sk_test",
		TimeoutSeconds: 2,
	})
}

// TestRESTAdapter_Find verifies query encoding and typed-value decoding.
func TestRESTAdapter_Find(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/collections/shipments:query", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		orderBy := body["orderBy"].(map[string]interface{})
		assert.Equal(t, "updatedAt", orderBy["field"])
		assert.Equal(t, "desc", orderBy["direction"])
		assert.Equal(t, float64(50), body["limit"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"documents": [
				{"fields": {
					"trackingId": {"stringValue": "AWB-1"},
					"codAmount": {"doubleValue": 1250.5},
					"attempts": {"integerValue": "3"},
					"isCod": {"booleanValue": true},
					"updatedAt": {"timestampValue": "2026-08-20T10:30:00Z"},
					"note": {}
				}}
			]
		}`))
	}))
	defer ts.Close()

	adapter := newTestAdapter(ts.URL)

	recs, err := adapter.Find(context.Background(), Query{
		Collection: "shipments",
		OrderBy:    "updatedAt",
		Descending: true,
		Limit:      50,
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, String("AWB-1"), rec["trackingId"])
	assert.Equal(t, Number(1250.5), rec["codAmount"])
	assert.Equal(t, Number(3), rec["attempts"])
	assert.Equal(t, Boolean(true), rec["isCod"])
	require.Equal(t, KindTime, rec["updatedAt"].Kind)
	assert.Equal(t, time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC), rec["updatedAt"].Time)
	assert.Equal(t, Null(), rec["note"])
}

// TestRESTAdapter_Find_UnsupportedQuery verifies that 400 maps to ErrUnsupportedQuery.
func TestRESTAdapter_Find_UnsupportedQuery(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"status": "FAILED_PRECONDITION", "message": "query requires an index on updated_at"}}`))
	}))
	defer ts.Close()

	adapter := newTestAdapter(ts.URL)

	_, err := adapter.Find(context.Background(), Query{
		Collection: "shipments",
		OrderBy:    "updated_at",
		Descending: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedQuery)
	assert.Contains(t, err.Error(), "requires an index")
}

// TestRESTAdapter_Find_ServerError verifies that non-400 failures are plain errors.
func TestRESTAdapter_Find_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"status": "INTERNAL", "message": "boom"}}`))
	}))
	defer ts.Close()

	adapter := newTestAdapter(ts.URL)

	_, err := adapter.Find(context.Background(), Query{Collection: "shipments"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedQuery)
}

// TestRESTAdapter_Count verifies filter encoding and count decoding.
func TestRESTAdapter_Count(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/collections/users:count", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		where := body["where"].([]interface{})
		require.Len(t, where, 1)
		filter := where[0].(map[string]interface{})
		assert.Equal(t, "status", filter["field"])
		assert.Equal(t, "in", filter["op"])
		assert.Equal(t, []interface{}{"approved", "active"}, filter["value"])

		w.Write([]byte(`{"count": 42}`))
	}))
	defer ts.Close()

	adapter := newTestAdapter(ts.URL)

	n, err := adapter.Count(context.Background(), Query{
		Collection: "users",
		Filters: []Filter{{
			Field:  "status",
			Op:     OpIn,
			Values: []Value{String("approved"), String("active")},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

// TestRESTAdapter_HealthCheck verifies the health endpoint handshake.
func TestRESTAdapter_HealthCheck(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		assert.NoError(t, newTestAdapter(ts.URL).HealthCheck())
	})

	t.Run("Unauthorized", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer ts.Close()

		err := newTestAdapter(ts.URL).HealthCheck()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status: 401")
	})
}
