// Package cache holds the optional Redis-backed tenant config cache. The
// cache is read-mostly and advisory only: every error is surfaced to the
// provider, which swallows it and falls through to the registry.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/r8r-one/platform/internal/domain"
)

const keyPrefix = "tenant-config:"

type TenantConfigCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTenantConfigCache(addr, password string, db int, ttl time.Duration) *TenantConfigCache {
	return &TenantConfigCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

func (c *TenantConfigCache) Get(ctx context.Context, id string) (*domain.TenantConfig, error) {
	raw, err := c.rdb.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var cfg domain.TenantConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *TenantConfigCache) Set(ctx context.Context, id string, cfg *domain.TenantConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyPrefix+id, raw, c.ttl).Err()
}

func (c *TenantConfigCache) Close() error {
	return c.rdb.Close()
}
