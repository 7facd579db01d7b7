package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// StatsCache is a best-effort redis cache for dashboard aggregates. A nil
// client (redis not configured or unreachable) disables caching and every
// lookup degrades to a recompute.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to redis at addr. An empty addr or a failed ping returns a
// disabled cache rather than an error; aggregation works without it.
func New(addr string, ttl time.Duration) *StatsCache {
	if addr == "" {
		log.Println("REDIS_ADDR not set, stats caching disabled")
		return &StatsCache{ttl: ttl}
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("failed to connect to redis at %s, stats caching disabled: %v", addr, err)
		return &StatsCache{ttl: ttl}
	}

	return &StatsCache{rdb: rdb, ttl: ttl}
}

// MonthlyStatsKey builds the cache key for one rep's monthly dashboard
func MonthlyStatsKey(orgSlug string, repID uuid.UUID, month string) string {
	return fmt.Sprintf("stats:monthly:%s:%s:%s", orgSlug, repID, month)
}

// Get unmarshals a cached value into dest; false on miss or disabled cache
func (c *StatsCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c.rdb == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false
	}
	return true
}

// Set stores a value under key with the cache TTL, best effort
func (c *StatsCache) Set(ctx context.Context, key string, value interface{}) {
	if c.rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("failed to cache %s: %v", key, err)
	}
}

// Invalidate drops cached entries, best effort
func (c *StatsCache) Invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("failed to invalidate cache keys: %v", err)
	}
}

// Close shuts down the redis connection if one was established
func (c *StatsCache) Close() {
	if c.rdb != nil {
		_ = c.rdb.Close()
	}
}
