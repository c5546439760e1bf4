package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		// given
		sut := NewMemoryStore()

		// when
		err := sut.Set("key", []byte("value"), time.Minute)
		require.NoError(t, err)

		// then
		value, err := sut.Get("key")
		require.NoError(t, err)
		require.Equal(t, []byte("value"), value)
	})

	t.Run("missing key", func(t *testing.T) {
		sut := NewMemoryStore()

		_, err := sut.Get("missing")

		require.ErrorIs(t, err, ErrCacheNotFound)
	})

	t.Run("expired key", func(t *testing.T) {
		// given
		sut := NewMemoryStore()
		require.NoError(t, sut.Set("key", []byte("value"), 10*time.Millisecond))

		// when
		time.Sleep(30 * time.Millisecond)

		// then
		_, err := sut.Get("key")
		require.ErrorIs(t, err, ErrCacheNotFound)
	})

	t.Run("set if absent", func(t *testing.T) {
		// given
		sut := NewMemoryStore()

		// when
		first, err := sut.SetIfAbsent("key", []byte("a"), time.Minute)
		require.NoError(t, err)
		second, err := sut.SetIfAbsent("key", []byte("b"), time.Minute)
		require.NoError(t, err)

		// then
		require.True(t, first)
		require.False(t, second)
		value, err := sut.Get("key")
		require.NoError(t, err)
		require.Equal(t, []byte("a"), value)
	})

	t.Run("delete", func(t *testing.T) {
		sut := NewMemoryStore()
		require.NoError(t, sut.Set("a", []byte("1"), 0))
		require.NoError(t, sut.Set("b", []byte("2"), 0))

		require.NoError(t, sut.Del("a", "b"))

		_, err := sut.Get("a")
		require.ErrorIs(t, err, ErrCacheNotFound)
		_, err = sut.Get("b")
		require.ErrorIs(t, err, ErrCacheNotFound)
	})
}
