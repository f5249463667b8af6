// Package services определяет порты вспомогательных сервисов.
package services

import "context"

// PasswordService определяет операции для манипулирования паролем.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	// Verify возвращает false для неверного пароля и для поврежденного хэша.
	Verify(ctx context.Context, password, hash string) bool
}
