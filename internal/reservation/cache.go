package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"meetingroom/internal/logger"
	"meetingroom/internal/metrics"
)

const roomCountKeyPrefix = "reservations:room_counts"

// CachedRepository caches per-room counts in Redis and delegates every other
// query to the wrapped repository. Cache failures never fail a query.
type CachedRepository struct {
	Repository
	redis *redis.Client
	ttl   time.Duration
}

func NewCachedRepository(inner Repository, client *redis.Client, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		Repository: inner,
		redis:      client,
		ttl:        ttl,
	}
}

func roomCountKey(from, to time.Time) string {
	return fmt.Sprintf("%s:%d:%d", roomCountKeyPrefix, from.UnixNano(), to.UnixNano())
}

func (c *CachedRepository) CountOverlappingPerRoom(ctx context.Context, from, to time.Time) ([]RoomCount, error) {
	key := roomCountKey(from, to)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var counts []RoomCount
		if err := json.Unmarshal(data, &counts); err == nil {
			metrics.RecordCacheLookup(metrics.CacheHit)
			return counts, nil
		}
		metrics.RecordCacheLookup(metrics.CacheError)
		logger.Warn("Discarding malformed room count cache entry", "key", key)
	case errors.Is(err, redis.Nil):
		metrics.RecordCacheLookup(metrics.CacheMiss)
	default:
		metrics.RecordCacheLookup(metrics.CacheError)
		logger.Warn("Room count cache read failed", "key", key, "error", err)
	}

	counts, err := c.Repository.CountOverlappingPerRoom(ctx, from, to)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(counts)
	if err != nil {
		logger.Errorf("Failed to marshal room counts: %v", err)
		return counts, nil
	}

	if err := c.redis.Set(ctx, key, string(payload), c.ttl).Err(); err != nil {
		logger.Warn("Room count cache write failed", "key", key, "error", err)
	}

	return counts, nil
}
