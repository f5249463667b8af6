// Package factory собирает хранилища сервиса по конфигурации.
package factory

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gametrades/internal/gametrades/adapters/cache"
	"gametrades/internal/gametrades/adapters/kv"
	"gametrades/internal/gametrades/adapters/postgres"
	"gametrades/internal/gametrades/config"
	"gametrades/internal/gametrades/db"
	portcache "gametrades/internal/gametrades/ports/cache"
	"gametrades/internal/gametrades/ports/repositories"
	"gametrades/pkg/db/redis"
	"gametrades/pkg/logger"
)

const (
	LogStorageSelected = "storage selected"

	ErrInitRedis    = "failed to initialize redis"
	ErrInitPostgres = "failed to initialize postgres"
)

// RepositoryFactory владеет хранилищами и подключениями, которые для них открыты.
type RepositoryFactory struct {
	userRepo   repositories.UserRepository
	imageCache portcache.ImageCache

	redisClient *goredis.Client
	database    *db.DB
}

// NewRepositoryFactory открывает нужные подключения и создает хранилища.
// Redis-клиент общий для хранилища пользователей и кэша обложек.
func NewRepositoryFactory(ctx context.Context, cfg *config.Config) (*RepositoryFactory, error) {
	f := &RepositoryFactory{}

	if cfg.NeedsRedis() {
		client, err := redis.NewClient(ctx, cfg.Redis.ClientConfig())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrInitRedis, err)
		}
		f.redisClient = client
	}

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		database, err := db.New(ctx, &cfg.Postgres)
		if err != nil {
			_ = f.Close(ctx)
			return nil, fmt.Errorf("%s: %w", ErrInitPostgres, err)
		}
		f.database = database
		f.userRepo = postgres.NewUserRepository(database.Pool())
	case config.DriverRedis:
		f.userRepo = kv.NewUserRepository(kv.NewRedisStore(f.redisClient, cfg.Storage.RedisKeyPrefix))
	default:
		f.userRepo = kv.NewUserRepository(kv.NewMemoryStore())
	}

	if cfg.Scraper.CacheDriver == config.DriverRedis {
		f.imageCache = cache.NewRedisImageCache(f.redisClient, cfg.Scraper.CacheRedisPrefix)
	} else {
		f.imageCache = cache.NewMemoryImageCache()
	}

	logger.Log(ctx).Info(ctx, LogStorageSelected,
		zap.String("users", cfg.Storage.Driver),
		zap.String("image_cache", cfg.Scraper.CacheDriver))

	return f, nil
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// ImageCache возвращает кэш обложек.
func (f *RepositoryFactory) ImageCache() portcache.ImageCache {
	return f.imageCache
}

// Close закрывает открытые подключения.
func (f *RepositoryFactory) Close(ctx context.Context) error {
	var errs []error
	if f.redisClient != nil {
		if err := f.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing redis: %w", err))
		}
	}
	if f.database != nil {
		f.database.Close(ctx)
	}
	return errors.Join(errs...)
}
