// Package config содержит конфигурацию сервиса Game Trades Club.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	pkgconfig "gametrades/pkg/config"
	"gametrades/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	LogLoadingConfig    = "Loading gametrades service configuration"
	LogConfigLoaded     = "Configuration loaded successfully"
	ErrFailedLoadConfig = "Failed to load configuration"

	// EnvConfigPath задает необязательный файл конфигурации.
	EnvConfigPath = "GAMETRADES_CONFIG_PATH"

	serviceName = "gametrades"
)

// Драйверы хранилищ.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// ErrUnknownDriver возвращается для неподдерживаемого драйвера хранилища.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Config представляет полную конфигурацию сервиса.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
	Storage  StorageConfig  `yaml:"storage"`
	Redis    RedisConfig    `yaml:"redis"`
	Postgres PostgresConfig `yaml:"postgres"`
	Scraper  ScraperConfig  `yaml:"scraper"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// Load загружает конфигурацию из переменных окружения и, если задан
// GAMETRADES_CONFIG_PATH, из файла.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogLoadingConfig)

	cfg, err := pkgconfig.Load[Config](ctx, serviceName, os.Getenv(EnvConfigPath))
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout),
		zap.String("storage_driver", cfg.Storage.Driver),
		zap.String("image_cache_driver", cfg.Scraper.CacheDriver),
		zap.String("scraper_base_url", cfg.Scraper.BaseURL),
		zap.String("catalog_path", cfg.Catalog.Path),
		zap.Bool("metrics_enabled", cfg.Metrics.Enabled))

	return cfg, nil
}

// Validate проверяет значения, которые cleanenv не может проверить сам.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverRedis, DriverPostgres:
	default:
		return fmt.Errorf("%w: storage %q", ErrUnknownDriver, c.Storage.Driver)
	}

	switch c.Scraper.CacheDriver {
	case DriverMemory, DriverRedis:
	default:
		return fmt.Errorf("%w: image cache %q", ErrUnknownDriver, c.Scraper.CacheDriver)
	}

	return nil
}

// NeedsRedis сообщает, используется ли Redis хоть одним компонентом.
func (c *Config) NeedsRedis() bool {
	return c.Storage.Driver == DriverRedis || c.Scraper.CacheDriver == DriverRedis
}
