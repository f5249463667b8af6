// Package api определяет порты сценариев использования.
package api

import (
	"context"

	"gametrades/internal/gametrades/domain/entities"
)

// UserDirectory хранит учетные записи с уникальными email и username.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	Create(ctx context.Context, email, username, password string) (*entities.User, error)
}
