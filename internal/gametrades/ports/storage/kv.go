// Package storage определяет транзакционное хранилище ключ-значение.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound возвращается, когда ключ отсутствует.
var ErrKeyNotFound = errors.New("key not found")

// KVStore - хранилище ключ-значение с атомарной условной записью.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)

	// CommitIfAbsent атомарно проверяет, что ни один из ключей absent
	// не существует, и записывает все entries. Возвращает false без
	// изменений, если хотя бы один ключ уже существует.
	CommitIfAbsent(ctx context.Context, absent []string, entries map[string][]byte) (bool, error)

	Close() error
}
