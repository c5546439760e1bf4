package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"

	testutils "github.com/rampp2p/escrow/internal/test_utils"
)

func TestRedisStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, addr, err := testutils.RunRedis(pool, "6390")
	require.NoError(t, err)
	defer func() {
		_ = pool.Purge(resource)
	}()

	client := redis.NewClient(&redis.Options{Addr: addr})
	err = pool.Retry(func() error {
		return client.Ping(context.Background()).Err()
	})
	require.NoError(t, err)

	sut := NewRedisStore(context.Background(), client)

	// set and get
	require.NoError(t, sut.Set("example", []byte("hello world"), 5*time.Second))
	value, err := sut.Get("example")
	require.NoError(t, err)
	require.Equal(t, []byte("hello world"), value)

	// set if absent
	added, err := sut.SetIfAbsent("example", []byte("other"), 5*time.Second)
	require.NoError(t, err)
	require.False(t, added)
	added, err = sut.SetIfAbsent("fresh", []byte("other"), 5*time.Second)
	require.NoError(t, err)
	require.True(t, added)

	// delete
	require.NoError(t, sut.Del("example", "fresh"))
	_, err = sut.Get("example")
	require.ErrorIs(t, err, ErrCacheNotFound)
}
