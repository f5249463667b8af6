package config

import "time"

// ScraperConfig содержит настройки поиска обложек на BoardGameGeek.
type ScraperConfig struct {
	BaseURL          string        `yaml:"base_url" env:"GAMETRADES_SCRAPER_BASE_URL" env-default:"https://boardgamegeek.com/boardgame/"`
	ImageMarker      string        `yaml:"image_marker" env:"GAMETRADES_SCRAPER_IMAGE_MARKER" env-default:"itemrep"`
	Timeout          time.Duration `yaml:"timeout" env:"GAMETRADES_SCRAPER_TIMEOUT" env-default:"10s"`
	UserAgent        string        `yaml:"user_agent" env:"GAMETRADES_SCRAPER_USER_AGENT" env-default:"gametrades/1.0"`
	CacheDriver      string        `yaml:"cache_driver" env:"GAMETRADES_IMAGE_CACHE_DRIVER" env-default:"memory"`
	CacheRedisPrefix string        `yaml:"cache_redis_prefix" env:"GAMETRADES_IMAGE_CACHE_REDIS_PREFIX" env-default:"gametrades:bgg_image:"`
}

// CatalogConfig содержит настройки каталога игр.
type CatalogConfig struct {
	Path  string `yaml:"path" env:"GAMETRADES_CATALOG_PATH" env-default:"data/boardgames.csv"`
	Limit int    `yaml:"limit" env:"GAMETRADES_CATALOG_LIMIT" env-default:"100"`
}

// MetricsConfig содержит настройки выдачи метрик.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"GAMETRADES_METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path" env:"GAMETRADES_METRICS_PATH" env-default:"/metrics"`
}
