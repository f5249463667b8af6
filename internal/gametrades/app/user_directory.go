// Package app содержит сценарии использования сервиса Game Trades Club.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gametrades/internal/gametrades/domain/entities"
	"gametrades/internal/gametrades/domain/services"
	"gametrades/internal/gametrades/ports/api"
	"gametrades/internal/gametrades/ports/repositories"
	svc "gametrades/internal/gametrades/ports/services"
	"gametrades/pkg/logger"
)

const (
	methodCreate = "Create"

	msgStartCreate     = "creating user"
	msgEmailExists     = "user with this email already exists"
	msgUsernameExists  = "user with this username already exists"
	msgStorageConflict = "user index taken during commit"
	msgUserCreated     = "user created successfully"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"

	errCtxCheckingEmail    = "checking existing email"
	errCtxCheckingUsername = "checking existing username"
	errCtxEmailRegistered  = "email already registered"
	errCtxUsernameTaken    = "username already taken"
	errCtxHashingPassword  = "hashing password"
	errCtxCreatingUser     = "creating user"
)

// UserDirectoryImpl реализует интерфейс UserDirectory.
type UserDirectoryImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	now         func() time.Time
	newID       func() string
}

// NewUserDirectory создает каталог пользователей.
func NewUserDirectory(userRepo repositories.UserRepository, passwordSvc svc.PasswordService) api.UserDirectory {
	return &UserDirectoryImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}

// FindByEmail находит пользователя по email без учета регистра.
func (d *UserDirectoryImpl) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return d.userRepo.FindByEmail(ctx, entities.NormalizeEmail(email))
}

// FindByUsername находит пользователя по имени без учета регистра.
func (d *UserDirectoryImpl) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return d.userRepo.FindByUsername(ctx, entities.NormalizeUsername(username))
}

// FindByID находит пользователя по идентификатору.
func (d *UserDirectoryImpl) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return d.userRepo.FindByID(ctx, id)
}

// Create проверяет занятость email и имени, хэширует пароль и атомарно
// сохраняет запись. Возвращаемая запись не содержит хэша пароля.
func (d *UserDirectoryImpl) Create(ctx context.Context, email, username, password string) (*entities.User, error) {
	email = entities.NormalizeEmail(email)
	log := logger.Log(ctx).With(zap.String("method", methodCreate), zap.String("username", username))
	log.Debug(ctx, msgStartCreate)

	if err := d.ensureFree(ctx, log, email, username); err != nil {
		return nil, err
	}

	hash, err := d.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	user := &entities.User{
		ID:           d.newID(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    d.now(),
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, services.ErrStorageConflict) {
			log.Info(ctx, msgStorageConflict)
		} else {
			log.Error(ctx, msgErrCreateUser, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserCreated, zap.String("user_id", user.ID))
	return user.Public(), nil
}

func (d *UserDirectoryImpl) ensureFree(ctx context.Context, log *logger.Logger, email, username string) error {
	existing, err := d.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCheckingEmail, err)
	}
	if existing != nil {
		log.Debug(ctx, msgEmailExists)
		return fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrEmailAlreadyExists)
	}

	existing, err = d.userRepo.FindByUsername(ctx, entities.NormalizeUsername(username))
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCheckingUsername, err)
	}
	if existing != nil {
		log.Debug(ctx, msgUsernameExists)
		return fmt.Errorf("%s: %w", errCtxUsernameTaken, services.ErrUsernameAlreadyExists)
	}

	return nil
}
