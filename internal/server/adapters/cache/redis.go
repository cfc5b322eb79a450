// Package cache contains the Redis implementation of the cache port.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"noteboard/internal/server/config"
	"noteboard/internal/server/ports/cache"
	"noteboard/pkg/logger"
)

// Error messages.
const (
	ErrFailedToGet     = "failed to get value from redis"
	ErrFailedToSet     = "failed to set value in redis"
	ErrFailedToDelete  = "failed to delete value from redis"
	ErrFailedToClose   = "failed to close redis connection"
	ErrFailedToConnect = "failed to connect to redis"
)

// RedisCache implements the Cache port with Redis.
type RedisCache struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewRedisCache creates a Redis cache client and verifies connectivity.
func NewRedisCache(ctx context.Context, cfg *config.RedisConfig) (cache.Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            cfg.GetAddress(),
		Password:        cfg.Password,
		DB:              cfg.DB,
		DialTimeout:     cfg.ConnectTimeout,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdle,
		ConnMaxIdleTime: cfg.IdleTimeout,
		ConnMaxLifetime: cfg.MaxConnLifetime,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedToConnect, err)
	}

	return &RedisCache{
		client:     client,
		defaultTTL: cfg.DefaultTTL,
	}, nil
}

// Get returns the value for the key, or an empty string on a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", "RedisCache.Get"), zap.String("key", key))

	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		log.Error(ctx, ErrFailedToGet, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrFailedToGet, err)
	}

	return value, nil
}

// Set stores the value under the key. A zero ttl uses the configured default.
func (c *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	log := logger.Log(ctx).With(zap.String("method", "RedisCache.Set"), zap.String("key", key))

	if ttl == 0 {
		ttl = c.defaultTTL
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Error(ctx, ErrFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrFailedToSet, err)
	}

	return nil
}

// Delete removes the given keys.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	log := logger.Log(ctx).With(zap.String("method", "RedisCache.Delete"), zap.Strings("keys", keys))

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Error(ctx, ErrFailedToDelete, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrFailedToDelete, err)
	}

	return nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrFailedToClose, err)
	}
	return nil
}
