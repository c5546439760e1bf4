package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultExpiration = 10 * time.Second
	cleanupInterval   = time.Minute
)

// MemoryStore is a process local Store.
type MemoryStore struct {
	cache *gocache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	value, found := s.cache.Get(key)
	if !found {
		return nil, ErrCacheNotFound
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, ErrCacheFailedToGet
	}

	return data, nil
}

func (s *MemoryStore) Set(key string, value []byte, ttl time.Duration) error {
	s.cache.Set(key, value, expiration(ttl))
	return nil
}

func (s *MemoryStore) SetIfAbsent(key string, value []byte, ttl time.Duration) (bool, error) {
	err := s.cache.Add(key, value, expiration(ttl))
	if err != nil {
		// key already present
		return false, nil
	}

	return true, nil
}

func (s *MemoryStore) Del(keys ...string) error {
	for _, key := range keys {
		s.cache.Delete(key)
	}
	return nil
}

func expiration(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return gocache.NoExpiration
	}
	return ttl
}
