package cache_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteboard/internal/server/adapters/cache"
	"noteboard/internal/server/config"
	cachePorts "noteboard/internal/server/ports/cache"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := &config.RedisConfig{
		Host:            host,
		Port:            port,
		ConnectTimeout:  5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		PoolSize:        10,
		MinIdle:         2,
		IdleTimeout:     5 * time.Minute,
		MaxConnLifetime: time.Hour,
		DefaultTTL:      15 * time.Minute,
	}
	return s, cfg
}

func TestNewRedisCache(t *testing.T) {
	t.Run("connects and implements the port", func(t *testing.T) {
		_, cfg := mockRedisServer(t)

		redisCache, err := cache.NewRedisCache(context.Background(), cfg)
		require.NoError(t, err)
		require.NotNil(t, redisCache)

		_, ok := redisCache.(cachePorts.Cache)
		assert.True(t, ok)
		assert.NoError(t, redisCache.Close())
	})

	t.Run("unreachable server", func(t *testing.T) {
		cfg := &config.RedisConfig{
			Host:           "localhost",
			Port:           1,
			ConnectTimeout: 100 * time.Millisecond,
			ReadTimeout:    100 * time.Millisecond,
			WriteTimeout:   100 * time.Millisecond,
		}

		redisCache, err := cache.NewRedisCache(context.Background(), cfg)
		require.Error(t, err)
		assert.Nil(t, redisCache)
		assert.Contains(t, err.Error(), cache.ErrFailedToConnect)
	})
}

func TestRedisCache_GetSet(t *testing.T) {
	s, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer redisCache.Close()

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, redisCache.Set(ctx, "noteboard:notes", `[{"id":1}]`, time.Minute))

		value, err := redisCache.Get(ctx, "noteboard:notes")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, value)
	})

	t.Run("miss returns an empty string and no error", func(t *testing.T) {
		value, err := redisCache.Get(ctx, "noteboard:missing")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("zero ttl falls back to the default", func(t *testing.T) {
		require.NoError(t, redisCache.Set(ctx, "noteboard:default-ttl", "v", 0))
		assert.Equal(t, cfg.DefaultTTL, s.TTL("noteboard:default-ttl"))
	})

	t.Run("entry expires", func(t *testing.T) {
		require.NoError(t, redisCache.Set(ctx, "noteboard:ephemeral", "v", time.Second))
		s.FastForward(2 * time.Second)

		value, err := redisCache.Get(ctx, "noteboard:ephemeral")
		require.NoError(t, err)
		assert.Empty(t, value)
	})
}

func TestRedisCache_Delete(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer redisCache.Close()

	require.NoError(t, redisCache.Set(ctx, "noteboard:notes", "a", time.Minute))
	require.NoError(t, redisCache.Set(ctx, "noteboard:categories", "b", time.Minute))

	t.Run("removes multiple keys", func(t *testing.T) {
		require.NoError(t, redisCache.Delete(ctx, "noteboard:notes", "noteboard:categories"))

		for _, key := range []string{"noteboard:notes", "noteboard:categories"} {
			value, err := redisCache.Get(ctx, key)
			require.NoError(t, err)
			assert.Empty(t, value)
		}
	})

	t.Run("no keys is a no-op", func(t *testing.T) {
		assert.NoError(t, redisCache.Delete(ctx))
	})
}
