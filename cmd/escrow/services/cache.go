package cmd

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"github.com/rampp2p/escrow/config"
	"github.com/rampp2p/escrow/internal/cache"
)

var ErrCacheUnknownType = errors.New("unknown cache type")

// NewCacheStore creates a new CacheStore based on the provided configuration.
func NewCacheStore(cacheConfig *config.CacheConfig) (cache.Store, error) {
	switch cacheConfig.Engine {
	case config.CacheEngineMemory:
		return cache.NewMemoryStore(), nil
	case config.CacheEngineRedis:
		c := redis.NewClient(&redis.Options{
			Addr:     cacheConfig.Redis.Addr,
			Password: cacheConfig.Redis.Password,
			DB:       cacheConfig.Redis.DB,
		})
		return cache.NewRedisStore(context.Background(), c), nil
	default:
		return nil, errors.Wrapf(ErrCacheUnknownType, "engine %q", cacheConfig.Engine)
	}
}
