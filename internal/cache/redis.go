package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore is a Store shared between instances through Redis.
type RedisStore struct {
	client redis.UniversalClient
	ctx    context.Context
}

func NewRedisStore(ctx context.Context, c redis.UniversalClient) *RedisStore {
	return &RedisStore{
		client: c,
		ctx:    ctx,
	}
}

func (r *RedisStore) Get(key string) ([]byte, error) {
	result, err := r.client.Get(r.ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheNotFound
	} else if err != nil {
		return nil, errors.Join(ErrCacheFailedToGet, err)
	}

	return result, nil
}

func (r *RedisStore) Set(key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(r.ctx, key, value, ttl).Err()
	if err != nil {
		return errors.Join(ErrCacheFailedToSet, err)
	}

	return nil
}

func (r *RedisStore) SetIfAbsent(key string, value []byte, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(r.ctx, key, value, ttl).Result()
	if err != nil {
		return false, errors.Join(ErrCacheFailedToSet, err)
	}

	return ok, nil
}

func (r *RedisStore) Del(keys ...string) error {
	_, err := r.client.Del(r.ctx, keys...).Result()
	if err != nil {
		return errors.Join(ErrCacheFailedToDel, err)
	}

	return nil
}
