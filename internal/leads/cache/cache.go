// Package cache provides a redis-backed cache for the full lead listing used
// by reports and dashboards. The cached view is rebuilt wholesale on every
// miss and invalidated whenever a lead is registered; there is no partial
// update or merge logic.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"salon_leads_backend/internal/leads/domain"
	"salon_leads_backend/platform/config"
	"salon_leads_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

const leadsKey = "leads:all"

// NewClient builds a redis client from the configured URL. Returns nil when
// no URL is configured; a nil client simply disables caching.
func NewClient(cfg config.CacheConfig) (*redis.Client, error) {
	url := cfg.GetRedisURL()
	if url == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

// LeadCache caches the full lead listing. All methods are safe on a nil
// receiver or nil client, in which case the cache is a no-op.
type LeadCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

// New creates a lead cache with the given TTL.
func New(rdb *redis.Client, ttl time.Duration, log *logger.Logger) *LeadCache {
	return &LeadCache{rdb: rdb, ttl: ttl, log: log}
}

// Get returns the cached listing and whether it was present.
func (c *LeadCache) Get(ctx context.Context) ([]domain.StoredLead, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, leadsKey).Bytes()
	if err != nil {
		if err != redis.Nil && c.log != nil {
			c.log.Warn("lead cache read failed", "error", err)
		}
		return nil, false
	}

	var leads []domain.StoredLead
	if err := json.Unmarshal(raw, &leads); err != nil {
		if c.log != nil {
			c.log.Warn("lead cache payload corrupt, discarding", "error", err)
		}
		_ = c.rdb.Del(ctx, leadsKey).Err()
		return nil, false
	}

	return leads, true
}

// Set replaces the cached listing. Cache failures are logged, never surfaced:
// reports work without redis, just slower.
func (c *LeadCache) Set(ctx context.Context, leads []domain.StoredLead) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(leads)
	if err != nil {
		if c.log != nil {
			c.log.Warn("lead cache marshal failed", "error", err)
		}
		return
	}

	if err := c.rdb.Set(ctx, leadsKey, raw, c.ttl).Err(); err != nil && c.log != nil {
		c.log.Warn("lead cache write failed", "error", err)
	}
}

// Invalidate drops the cached listing.
func (c *LeadCache) Invalidate(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, leadsKey).Err()
}
