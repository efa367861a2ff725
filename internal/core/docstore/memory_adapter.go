package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryAdapter is an in-memory Store used for local development and tests.
// It supports the same query surface as the hosted store and can be told
// to reject orderings on specific fields, which mirrors the hosted store's
// behavior when no index covers the requested sort.
type MemoryAdapter struct {
	mu          sync.RWMutex
	collections map[string][]Record
	// orderable maps collection -> set of fields with a simulated index.
	// A nil inner set means every ordering is accepted.
	orderable map[string]map[string]bool
	findErr   error
	countErr  error
}

// NewMemoryAdapter creates an empty in-memory store.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		collections: make(map[string][]Record),
		orderable:   make(map[string]map[string]bool),
	}
}

// Seed appends records to a collection.
func (m *MemoryAdapter) Seed(collection string, records ...Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], records...)
}

// AllowOrderBy restricts the orderable fields of a collection to the given
// list. Queries ordering by any other field fail with ErrUnsupportedQuery.
func (m *MemoryAdapter) AllowOrderBy(collection string, fields ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	m.orderable[collection] = set
}

// SetFindErr forces all subsequent Find calls to fail with err.
func (m *MemoryAdapter) SetFindErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.findErr = err
}

// SetCountErr forces all subsequent Count calls to fail with err.
func (m *MemoryAdapter) SetCountErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countErr = err
}

// Find implements Store.
func (m *MemoryAdapter) Find(ctx context.Context, q Query) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.findErr != nil {
		return nil, m.findErr
	}

	if q.OrderBy != "" {
		if allowed, restricted := m.orderable[q.Collection]; restricted && !allowed[q.OrderBy] {
			return nil, fmt.Errorf("%w: no index for ordering %s.%s", ErrUnsupportedQuery, q.Collection, q.OrderBy)
		}
	}

	var out []Record
	for _, rec := range m.collections[q.Collection] {
		if matchesAll(rec, q.Filters) {
			out = append(out, rec)
		}
	}

	if q.OrderBy != "" {
		field := q.OrderBy
		desc := q.Descending
		sort.SliceStable(out, func(i, j int) bool {
			vi, iok := out[i][field]
			vj, jok := out[j][field]
			// Records missing the sort field go last.
			if !iok || !jok {
				return iok && !jok
			}
			if desc {
				return vi.Compare(vj) > 0
			}
			return vi.Compare(vj) < 0
		})
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// Count implements Store.
func (m *MemoryAdapter) Count(ctx context.Context, q Query) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.countErr != nil {
		return 0, m.countErr
	}

	var n int64
	for _, rec := range m.collections[q.Collection] {
		if matchesAll(rec, q.Filters) {
			n++
		}
	}
	return n, nil
}

func matchesAll(rec Record, filters []Filter) bool {
	for _, f := range filters {
		if !matches(rec, f) {
			return false
		}
	}
	return true
}

func matches(rec Record, f Filter) bool {
	v, ok := rec[f.Field]
	if !ok {
		return false
	}
	switch f.Op {
	case OpEqual:
		return v.Equal(f.Value)
	case OpIn:
		for _, cand := range f.Values {
			if v.Equal(cand) {
				return true
			}
		}
		return false
	case OpGreaterOrEqual:
		if v.Kind != f.Value.Kind {
			return false
		}
		return v.Compare(f.Value) >= 0
	default:
		return false
	}
}
