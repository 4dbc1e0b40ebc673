package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
	"github.com/redis/go-redis/v9"
)

const statsKey = "stats:aggregate"

func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// StatsCache keeps the most recent stats aggregate in redis for a short
// TTL so repeated dashboard polls don't hammer the aggregate queries.
// A nil *StatsCache is a valid no-op cache.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatsCache(rdb *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached aggregate, or false on miss or any redis error.
func (c *StatsCache) Get(ctx context.Context) (*model.Stats, bool) {
	if c == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, statsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var stats model.Stats
	if err := json.Unmarshal(b, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

// Set stores the aggregate; errors are deliberately dropped, the cache
// is an optimization only.
func (c *StatsCache) Set(ctx context.Context, stats *model.Stats) {
	if c == nil {
		return
	}
	b, err := json.Marshal(stats)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, statsKey, b, c.ttl)
}

// Invalidate drops the cached aggregate after any write that changes it.
func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, statsKey)
}
