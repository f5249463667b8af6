package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gametrades/internal/gametrades/domain/entities"
	"gametrades/internal/gametrades/domain/services"
	"gametrades/internal/gametrades/ports/repositories"
	"gametrades/internal/gametrades/ports/storage"
	"gametrades/pkg/logger"
)

// Пространства ключей пользователя. Каждое хранит полную запись.
const (
	PrefixUsers           = "users/"
	PrefixUsersByEmail    = "users_by_email/"
	PrefixUsersByUsername = "users_by_username/"
)

const (
	errCtxEncodeUser = "encoding user record"
	errCtxDecodeUser = "decoding user record"
	errCtxReadUser   = "reading user record"
	errCtxCommitUser = "committing user record"
)

// UserRepository реализует repositories.UserRepository поверх KVStore.
type UserRepository struct {
	store storage.KVStore
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(store storage.KVStore) repositories.UserRepository {
	return &UserRepository{store: store}
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.find(ctx, PrefixUsers+id)
}

// FindByEmail находит пользователя по email без учета регистра.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.find(ctx, PrefixUsersByEmail+entities.NormalizeEmail(email))
}

// FindByUsername находит пользователя по имени без учета регистра.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.find(ctx, PrefixUsersByUsername+entities.NormalizeUsername(username))
}

// Create записывает пользователя и оба индекса одной условной транзакцией.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	record, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxEncodeUser, err)
	}

	emailKey := PrefixUsersByEmail + entities.NormalizeEmail(user.Email)
	usernameKey := PrefixUsersByUsername + entities.NormalizeUsername(user.Username)

	ok, err := r.store.CommitIfAbsent(ctx,
		[]string{emailKey, usernameKey},
		map[string][]byte{
			PrefixUsers + user.ID: record,
			emailKey:              record,
			usernameKey:           record,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxCommitUser, err)
	}
	if !ok {
		log.Info(ctx, "user index already taken", zap.String("user_id", user.ID))
		return services.ErrStorageConflict
	}
	return nil
}

func (r *UserRepository) find(ctx context.Context, key string) (*entities.User, error) {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", errCtxReadUser, err)
	}

	var user entities.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", errCtxDecodeUser, entities.ErrMalformedUserRecord, err)
	}
	return &user, nil
}
