// Package cache определяет интерфейсы для кэширования.
package cache

import "context"

// ImageCache хранит найденные URL обложек без вытеснения и срока жизни.
type ImageCache interface {
	// Get возвращает URL и признак наличия записи.
	Get(ctx context.Context, gameID string) (string, bool, error)

	// SetIfAbsent сохраняет URL, только если ключ еще не занят,
	// и возвращает значение, оказавшееся в кэше.
	SetIfAbsent(ctx context.Context, gameID, url string) (string, error)

	Close() error
}
