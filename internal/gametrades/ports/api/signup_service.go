package api

import (
	"context"

	"gametrades/internal/gametrades/domain/entities"
)

// SignupUseCase проверяет данные регистрации и создает пользователя.
type SignupUseCase interface {
	Signup(ctx context.Context, email, username, password string) (*entities.User, error)
}
