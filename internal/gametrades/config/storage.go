package config

import (
	"fmt"
	"time"

	"gametrades/pkg/db/postgres"
	"gametrades/pkg/db/redis"
)

// StorageConfig выбирает хранилище пользователей.
type StorageConfig struct {
	Driver         string `yaml:"driver" env:"GAMETRADES_STORAGE_DRIVER" env-default:"memory"`
	RedisKeyPrefix string `yaml:"redis_key_prefix" env:"GAMETRADES_STORAGE_REDIS_PREFIX" env-default:"gametrades:"`
}

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host            string        `yaml:"host" env:"GAMETRADES_REDIS_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"GAMETRADES_REDIS_PORT" env-default:"6379"`
	Password        string        `yaml:"password" env:"GAMETRADES_REDIS_PASSWORD" env-default:""`
	DB              int           `yaml:"db" env:"GAMETRADES_REDIS_DB" env-default:"0"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"GAMETRADES_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"GAMETRADES_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"GAMETRADES_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize        int           `yaml:"pool_size" env:"GAMETRADES_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle         int           `yaml:"min_idle" env:"GAMETRADES_REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"GAMETRADES_REDIS_IDLE_TIMEOUT" env-default:"5m"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"GAMETRADES_REDIS_MAX_CONN_LIFETIME" env-default:"1h"`
}

// ClientConfig преобразует настройки в конфигурацию клиента.
func (c *RedisConfig) ClientConfig() *redis.Config {
	return &redis.Config{
		Host:            c.Host,
		Port:            c.Port,
		Password:        c.Password,
		DB:              c.DB,
		PoolSize:        c.PoolSize,
		MinIdle:         c.MinIdle,
		ConnectTimeout:  c.ConnectTimeout,
		ReadTimeout:     c.ReadTimeout,
		WriteTimeout:    c.WriteTimeout,
		IdleTimeout:     c.IdleTimeout,
		MaxConnLifetime: c.MaxConnLifetime,
	}
}

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host          string `yaml:"host" env:"GAMETRADES_POSTGRES_HOST" env-default:"localhost"`
	Port          int    `yaml:"port" env:"GAMETRADES_POSTGRES_PORT" env-default:"5432"`
	User          string `yaml:"user" env:"GAMETRADES_POSTGRES_USER" env-default:"postgres"`
	Password      string `yaml:"password" env:"GAMETRADES_POSTGRES_PASSWORD" env-default:"postgres"`
	Database      string `yaml:"database" env:"GAMETRADES_POSTGRES_DB" env-default:"gametrades"`
	MinConn       int    `yaml:"min_conn" env:"GAMETRADES_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn       int    `yaml:"max_conn" env:"GAMETRADES_POSTGRES_MAX_CONN" env-default:"10"`
	MigrationsDir string `yaml:"migrations_dir" env:"GAMETRADES_POSTGRES_MIGRATIONS_DIR" env-default:"migrations/gametrades"`
}

// GetDSN возвращает строку подключения к PostgreSQL.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL возвращает URL-строку подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}

// PoolOptions возвращает параметры пула соединений.
func (p *PostgresConfig) PoolOptions() postgres.Options {
	return postgres.Options{
		DSN:     p.GetDSN(),
		MinConn: int32(p.MinConn), //nolint:gosec
		MaxConn: int32(p.MaxConn), //nolint:gosec
	}
}
