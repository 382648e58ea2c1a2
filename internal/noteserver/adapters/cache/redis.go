// Package cache содержит кэш сводки в Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"notesync/internal/noteserver/config"
	"notesync/internal/noteserver/ports/cache"
	"notesync/pkg/logger"
)

// SummaryKey - ключ, под которым хранится сводка.
const SummaryKey = "noteserver:summary"

// Константы для логирования.
const (
	LogMethodGet        = "get summary"
	LogMethodSet        = "set summary"
	LogMethodInvalidate = "invalidate summary"

	ErrorFailedToConnect    = "failed to connect to redis"
	ErrorFailedToGet        = "failed to get summary from redis"
	ErrorFailedToSet        = "failed to set summary in redis"
	ErrorFailedToInvalidate = "failed to delete summary from redis"
	ErrorFailedToClose      = "failed to close redis connection"
)

// RedisCache реализует cache.SummaryCache.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ cache.SummaryCache = (*RedisCache)(nil)

// NewRedisCache подключается к Redis и проверяет соединение.
func NewRedisCache(ctx context.Context, cfg *config.RedisConfig) (*RedisCache, error) {
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
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", ErrorFailedToConnect, err)
	}

	return &RedisCache{client: client, ttl: cfg.SummaryTTL}, nil
}

// GetSummary возвращает сводку из кэша. Отсутствие ключа не является ошибкой.
func (c *RedisCache) GetSummary(ctx context.Context) (string, bool, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGet))

	value, err := c.client.Get(ctx, SummaryKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return "", false, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	return value, true, nil
}

// SetSummary сохраняет сводку на время ttl.
func (c *RedisCache) SetSummary(ctx context.Context, summary string) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSet))

	if err := c.client.Set(ctx, SummaryKey, summary, c.ttl).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// Invalidate удаляет сводку.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodInvalidate))

	if err := c.client.Del(ctx, SummaryKey).Err(); err != nil {
		log.Error(ctx, ErrorFailedToInvalidate, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToInvalidate, err)
	}

	return nil
}

// Close закрывает соединение с Redis.
func (c *RedisCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
