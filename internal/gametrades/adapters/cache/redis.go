package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gametrades/internal/gametrades/ports/cache"
	"gametrades/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet         = "get"
	LogMethodSetIfAbsent = "set_if_absent"

	ErrorFailedToGet   = "failed to get value from redis"
	ErrorFailedToSet   = "failed to set value in redis"
	ErrorFailedToClose = "failed to close redis connection"
)

// RedisImageCache хранит URL обложек в Redis без срока жизни,
// что позволяет делить кэш между экземплярами сервиса.
type RedisImageCache struct {
	client *redis.Client
	prefix string
}

// NewRedisImageCache создает кэш с ключами вида prefix+gameID.
func NewRedisImageCache(client *redis.Client, prefix string) cache.ImageCache {
	return &RedisImageCache{client: client, prefix: prefix}
}

// Get получает URL по идентификатору игры.
func (c *RedisImageCache) Get(ctx context.Context, gameID string) (string, bool, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGet), zap.String("game_id", gameID))

	url, err := c.client.Get(ctx, c.prefix+gameID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return "", false, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	return url, true, nil
}

// SetIfAbsent записывает URL командой SETNX и возвращает значение,
// оказавшееся в кэше.
func (c *RedisImageCache) SetIfAbsent(ctx context.Context, gameID, url string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSetIfAbsent), zap.String("game_id", gameID))

	key := c.prefix + gameID
	set, err := c.client.SetNX(ctx, key, url, 0).Result()
	if err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}
	if set {
		return url, nil
	}

	existing, err := c.client.Get(ctx, key).Result()
	if err != nil {
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}
	return existing, nil
}

// Close закрывает соединение с Redis.
func (c *RedisImageCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
