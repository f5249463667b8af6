// Package cache содержит реализации кэша обложек игр.
package cache

import (
	"context"
	"sync"

	"gametrades/internal/gametrades/ports/cache"
)

// MemoryImageCache хранит URL обложек в памяти процесса до его остановки.
type MemoryImageCache struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryImageCache создает пустой кэш в памяти.
func NewMemoryImageCache() cache.ImageCache {
	return &MemoryImageCache{items: make(map[string]string)}
}

// Get возвращает URL по идентификатору игры.
func (c *MemoryImageCache) Get(_ context.Context, gameID string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	url, ok := c.items[gameID]
	return url, ok, nil
}

// SetIfAbsent сохраняет URL, если запись отсутствует. Первое значение побеждает.
func (c *MemoryImageCache) SetIfAbsent(_ context.Context, gameID, url string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.items[gameID]; ok {
		return existing, nil
	}
	c.items[gameID] = url
	return url, nil
}

func (c *MemoryImageCache) Close() error {
	return nil
}
