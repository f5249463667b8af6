// Package services содержит реализации вспомогательных сервисов:
// хэширование паролей, загрузку страниц и разбор HTML.
package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"gametrades/internal/gametrades/domain/services"
	svc "gametrades/internal/gametrades/ports/services"
)

const (
	errMsgGenerateSalt = "failed to generate salt"
)

// ServicePBKDF2 реализует PasswordService на базе PBKDF2-HMAC-SHA256.
// Хэш хранится как base64(соль || ключ).
type ServicePBKDF2 struct {
	iterations int
	rand       io.Reader
}

// NewPBKDF2 создает сервис паролей. Неположительное число итераций
// заменяется значением по умолчанию.
func NewPBKDF2(iterations int) svc.PasswordService {
	if iterations <= 0 {
		iterations = services.PasswordIterations
	}
	return &ServicePBKDF2{iterations: iterations, rand: rand.Reader}
}

// Hash хэширует пароль со случайной солью.
func (s *ServicePBKDF2) Hash(_ context.Context, password string) (string, error) {
	if password == "" {
		return "", services.ErrInvalidPassword
	}

	salt := make([]byte, services.PasswordSaltLength)
	if _, err := io.ReadFull(s.rand, salt); err != nil {
		return "", fmt.Errorf("%s: %w", errMsgGenerateSalt, services.ErrHashingFailed)
	}

	key := pbkdf2.Key([]byte(password), salt, s.iterations, services.PasswordKeyLength, sha256.New)

	blob := make([]byte, 0, len(salt)+len(key))
	blob = append(blob, salt...)
	blob = append(blob, key...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Verify пересчитывает ключ с сохраненной солью и сравнивает за постоянное время.
func (s *ServicePBKDF2) Verify(_ context.Context, password, hash string) bool {
	blob, err := base64.StdEncoding.DecodeString(hash)
	if err != nil || len(blob) != services.PasswordSaltLength+services.PasswordKeyLength {
		return false
	}

	salt := blob[:services.PasswordSaltLength]
	stored := blob[services.PasswordSaltLength:]
	key := pbkdf2.Key([]byte(password), salt, s.iterations, services.PasswordKeyLength, sha256.New)

	return subtle.ConstantTimeCompare(key, stored) == 1
}
