// Package repositories определяет порты хранения данных.
package repositories

import (
	"context"

	"gametrades/internal/gametrades/domain/entities"
)

// UserRepository определяет операции хранения пользователей.
//
// Create атомарно проверяет, что email и username свободны, и сохраняет запись.
// Если индекс занят, возвращается services.ErrStorageConflict и ни одна
// из частей записи не становится видимой.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}
