package docstore

import (
	"context"
	"errors"
)

// ErrUnsupportedQuery is returned when the store rejects a query shape,
// typically an ordering or filter combination with no server-side index.
// Callers are expected to degrade to a simpler query rather than fail.
var ErrUnsupportedQuery = errors.New("unsupported query shape")

// Op is a filter comparison operator.
type Op string

const (
	// OpEqual matches documents whose field equals the filter value.
	OpEqual Op = "=="
	// OpIn matches documents whose field equals any of the filter values.
	OpIn Op = "in"
	// OpGreaterOrEqual matches documents whose field is >= the filter value.
	OpGreaterOrEqual Op = ">="
)

// Filter is a single-field predicate. Value is used by == and >=,
// Values by in. Composite (multi-field) filters are deliberately not
// modeled; the hosted store would require a provisioned index per
// combination.
type Filter struct {
	Field  string
	Op     Op
	Value  Value
	Values []Value
}

// Query describes a bounded read over a named collection. OrderBy is
// optional; when set with Descending, results come newest-first if the
// store accepts the ordering. Limit of 0 means store default.
type Query struct {
	Collection string
	Filters    []Filter
	OrderBy    string
	Descending bool
	Limit      int
}

// Store is the single external capability the aggregation engine depends
// on: bounded reads and approximate counts over a document collection.
// Either operation may fail for unsupported field/ordering/filter
// combinations; those failures surface as ErrUnsupportedQuery.
type Store interface {
	// Find executes a bounded read and returns the matching documents.
	Find(ctx context.Context, q Query) ([]Record, error)
	// Count returns an approximate count of documents matching the
	// query's filters without transferring document bodies.
	Count(ctx context.Context, q Query) (int64, error)
}
