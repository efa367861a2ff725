package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dispatch-board/internal/core/cache"
	"dispatch-board/internal/features/dashboard/domain"
)

const snapshotCacheKey = "dashboard_snapshot"

// RedisSnapshotCache implements ports.SnapshotCache on the core cache
// port. Dashboards refresh far more often than the data changes, so a
// short TTL absorbs most of the load.
type RedisSnapshotCache struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisSnapshotCache creates a new RedisSnapshotCache.
func NewRedisSnapshotCache(c cache.Cache, ttl time.Duration) *RedisSnapshotCache {
	return &RedisSnapshotCache{
		cache: c,
		ttl:   ttl,
	}
}

// Get retrieves the cached snapshot, returning (nil, nil) on a miss.
func (r *RedisSnapshotCache) Get(ctx context.Context) (*domain.Snapshot, error) {
	data, err := r.cache.Get(ctx, snapshotCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot from cache: %w", err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}

// Save stores the snapshot with the configured TTL.
func (r *RedisSnapshotCache) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := r.cache.Set(ctx, snapshotCacheKey, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save snapshot to cache: %w", err)
	}

	return nil
}
