package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dispatch-board/internal/core/config"
	"dispatch-board/internal/core/httpclient"
	"dispatch-board/internal/core/logger"

	"go.uber.org/zap"
)

// RESTAdapter implements the Store interface against the hosted
// document-store REST API. Documents travel as typed-value JSON so
// numeric, boolean, and timestamp fields survive the trip intact.
type RESTAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the store connection details.
	config config.StoreConfig
}

// NewRESTAdapter creates a new instance of RESTAdapter.
func NewRESTAdapter(cfg config.StoreConfig) *RESTAdapter {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RESTAdapter{
		client: httpclient.NewClient(timeout),
		config: cfg,
	}
}

// Find executes a bounded read via POST /v1/collections/{name}:query.
func (a *RESTAdapter) Find(ctx context.Context, q Query) ([]Record, error) {
	reqBody := queryRequest{
		Where: encodeFilters(q.Filters),
		Limit: q.Limit,
	}
	if q.OrderBy != "" {
		direction := "asc"
		if q.Descending {
			direction = "desc"
		}
		reqBody.OrderBy = &orderBy{Field: q.OrderBy, Direction: direction}
	}

	var resp queryResponse
	url := fmt.Sprintf("%s/v1/collections/%s:query", a.config.URL, q.Collection)
	if err := a.post(ctx, url, reqBody, &resp); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(resp.Documents))
	for _, doc := range resp.Documents {
		records = append(records, doc.toRecord())
	}
	return records, nil
}

// Count executes an approximate count via POST /v1/collections/{name}:count.
func (a *RESTAdapter) Count(ctx context.Context, q Query) (int64, error) {
	reqBody := countRequest{Where: encodeFilters(q.Filters)}

	var resp countResponse
	url := fmt.Sprintf("%s/v1/collections/%s:count", a.config.URL, q.Collection)
	if err := a.post(ctx, url, reqBody, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// HealthCheck verifies that the store API is reachable and credentials are valid.
func (a *RESTAdapter) HealthCheck() error {
	url := fmt.Sprintf("%s/v1/health", a.config.URL)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.config.APIKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}

// post sends a JSON request and decodes the JSON response, translating
// store rejections into ErrUnsupportedQuery.
func (a *RESTAdapter) post(ctx context.Context, url string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.config.APIKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		// The store answers 400 FAILED_PRECONDITION when the requested
		// ordering or filter has no covering index.
		if resp.StatusCode == http.StatusBadRequest {
			return fmt.Errorf("%w: %s", ErrUnsupportedQuery, apiErr.Error.Message)
		}
		return fmt.Errorf("store API returned status %d: %s", resp.StatusCode, apiErr.Error.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// encodeFilters converts filters to their wire representation.
func encodeFilters(filters []Filter) []wireFilter {
	out := make([]wireFilter, 0, len(filters))
	for _, f := range filters {
		wf := wireFilter{Field: f.Field, Op: string(f.Op)}
		if f.Op == OpIn {
			vals := make([]interface{}, 0, len(f.Values))
			for _, v := range f.Values {
				vals = append(vals, valueToWire(v))
			}
			wf.Value = vals
		} else {
			wf.Value = valueToWire(f.Value)
		}
		out = append(out, wf)
	}
	return out
}

// valueToWire renders a Value as a plain JSON scalar for filter payloads.
func valueToWire(v Value) interface{} {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	case KindTime:
		return v.Time.UTC().Format(time.RFC3339)
	default:
		return nil
	}
}

// wire structs for the store API

// queryRequest is the body of a :query call.
type queryRequest struct {
	Where   []wireFilter `json:"where,omitempty"`
	OrderBy *orderBy     `json:"orderBy,omitempty"`
	Limit   int          `json:"limit,omitempty"`
}

// orderBy names the sort field and direction of a query.
type orderBy struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// wireFilter is a single-field predicate on the wire.
type wireFilter struct {
	Field string      `json:"field"`
	Op    string      `json:"op"`
	Value interface{} `json:"value"`
}

// errorResponse is the store API's error envelope.
type errorResponse struct {
	Error struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// countRequest is the body of a :count call.
type countRequest struct {
	Where []wireFilter `json:"where,omitempty"`
}

// countResponse carries the approximate match count.
type countResponse struct {
	Count int64 `json:"count"`
}

// queryResponse carries the matched documents.
type queryResponse struct {
	Documents []storeDocument `json:"documents"`
}

// storeDocument is one document with typed field values.
type storeDocument struct {
	Fields map[string]storeValue `json:"fields"`
}

// toRecord converts the wire document into a Record.
func (d storeDocument) toRecord() Record {
	rec := make(Record, len(d.Fields))
	for name, v := range d.Fields {
		rec[name] = v.toValue()
	}
	return rec
}

// storeValue is the typed-value envelope the store uses per field.
// Exactly one member is expected to be set.
type storeValue struct {
	StringValue    *string  `json:"stringValue,omitempty"`
	DoubleValue    *float64 `json:"doubleValue,omitempty"`
	IntegerValue   *string  `json:"integerValue,omitempty"`
	BooleanValue   *bool    `json:"booleanValue,omitempty"`
	TimestampValue *string  `json:"timestampValue,omitempty"`
}

// toValue converts the wire envelope into a Value, tolerating malformed
// payloads: an unparsable timestamp or integer degrades to its raw string
// rather than dropping the field.
func (v storeValue) toValue() Value {
	switch {
	case v.StringValue != nil:
		return String(*v.StringValue)
	case v.DoubleValue != nil:
		return Number(*v.DoubleValue)
	case v.IntegerValue != nil:
		// Integers travel as strings to avoid float precision loss.
		if n, err := strconv.ParseFloat(*v.IntegerValue, 64); err == nil {
			return Number(n)
		}
		logger.Get().Warn("Unparsable integer value from store", zap.String("value", *v.IntegerValue))
		return String(*v.IntegerValue)
	case v.BooleanValue != nil:
		return Boolean(*v.BooleanValue)
	case v.TimestampValue != nil:
		if t, err := time.Parse(time.RFC3339, *v.TimestampValue); err == nil {
			return Timestamp(t)
		}
		logger.Get().Warn("Unparsable timestamp value from store", zap.String("value", *v.TimestampValue))
		return String(*v.TimestampValue)
	default:
		return Null()
	}
}
