package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gametrades/internal/gametrades/ports/storage"
	"gametrades/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet    = "get"
	LogMethodCommit = "commit"

	ErrorFailedToGet    = "failed to get value from redis"
	ErrorFailedToCommit = "failed to commit transaction in redis"
	ErrorFailedToClose  = "failed to close redis connection"

	msgCommitConflict = "conditional commit rejected"
)

// RedisStore реализует storage.KVStore поверх Redis. Условная запись
// выполняется оптимистичной транзакцией WATCH/MULTI/EXEC.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore создает хранилище, все ключи которого начинаются с prefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

// Get получает значение по ключу.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrKeyNotFound
		}
		logger.Log(ctx).Error(ctx, ErrorFailedToGet,
			zap.String("method", LogMethodGet), zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}
	return value, nil
}

// CommitIfAbsent наблюдает за ключами absent и записывает entries в одной
// транзакции. Изменение наблюдаемого ключа другим клиентом приводит к отказу.
func (s *RedisStore) CommitIfAbsent(ctx context.Context, absent []string, entries map[string][]byte) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodCommit))

	watched := make([]string, 0, len(absent))
	for _, k := range absent {
		watched = append(watched, s.key(k))
	}

	committed := false
	txf := func(tx *redis.Tx) error {
		if len(watched) > 0 {
			exists, err := tx.Exists(ctx, watched...).Result()
			if err != nil {
				return err
			}
			if exists > 0 {
				return nil
			}
		}

		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for k, v := range entries {
				pipe.Set(ctx, s.key(k), v, 0)
			}
			return nil
		})
		if err != nil {
			return err
		}
		committed = true
		return nil
	}

	err := s.client.Watch(ctx, txf, watched...)
	if errors.Is(err, redis.TxFailedErr) {
		log.Debug(ctx, msgCommitConflict)
		return false, nil
	}
	if err != nil {
		log.Error(ctx, ErrorFailedToCommit, zap.Error(err))
		return false, fmt.Errorf("%s: %w", ErrorFailedToCommit, err)
	}
	if !committed {
		log.Debug(ctx, msgCommitConflict)
	}
	return committed, nil
}

// Close закрывает соединение с Redis.
func (s *RedisStore) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
