// Package kv содержит реализации хранилища ключ-значение и репозиторий
// пользователей поверх него.
package kv

import (
	"context"
	"sync"

	"gametrades/internal/gametrades/ports/storage"
)

// MemoryStore - хранилище в памяти процесса. Условная запись
// сериализуется одной блокировкой.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore создает пустое хранилище в памяти.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get возвращает копию значения по ключу.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

// CommitIfAbsent атомарно проверяет ключи absent и записывает entries.
func (s *MemoryStore) CommitIfAbsent(_ context.Context, absent []string, entries map[string][]byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range absent {
		if _, ok := s.data[key]; ok {
			return false, nil
		}
	}
	for key, value := range entries {
		s.data[key] = append([]byte(nil), value...)
	}
	return true, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
