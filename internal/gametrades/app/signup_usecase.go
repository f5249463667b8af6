package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"

	"go.uber.org/zap"

	"gametrades/internal/gametrades/domain/entities"
	"gametrades/internal/gametrades/domain/services"
	"gametrades/internal/gametrades/observability"
	"gametrades/internal/gametrades/ports/api"
	"gametrades/pkg/logger"
)

const (
	methodSignup = "Signup"

	msgSignupRejected = "signup input rejected"
	msgSignupFailed   = "signup failed"

	errCtxSignup = "signup"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// SignupUseCaseImpl реализует интерфейс SignupUseCase.
type SignupUseCaseImpl struct {
	directory api.UserDirectory
	metrics   *observability.Metrics
}

// NewSignupUseCase создает сценарий регистрации. metrics может быть nil.
func NewSignupUseCase(directory api.UserDirectory, metrics *observability.Metrics) api.SignupUseCase {
	return &SignupUseCaseImpl{directory: directory, metrics: metrics}
}

// Signup проверяет данные и создает пользователя. Ошибки валидации
// возвращаются без обертки.
func (s *SignupUseCaseImpl) Signup(ctx context.Context, email, username, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignup))

	if err := ValidateSignup(email, username, password); err != nil {
		log.Debug(ctx, msgSignupRejected, zap.Error(err))
		s.metrics.RecordSignup(observability.SignupInvalid)
		return nil, err
	}

	user, err := s.directory.Create(ctx, email, username, password)
	switch {
	case err == nil:
		s.metrics.RecordSignup(observability.SignupCreated)
		return user, nil
	case errors.Is(err, services.ErrEmailAlreadyExists), errors.Is(err, services.ErrUsernameAlreadyExists):
		s.metrics.RecordSignup(observability.SignupDuplicate)
	case errors.Is(err, services.ErrStorageConflict):
		s.metrics.RecordSignup(observability.SignupConflict)
	default:
		log.Error(ctx, msgSignupFailed, zap.Error(err))
		s.metrics.RecordSignup(observability.SignupError)
	}
	return nil, fmt.Errorf("%s: %w", errCtxSignup, err)
}

// ValidateSignup возвращает ошибку первого нарушенного правила.
// Длины считаются в кодовых единицах UTF-16, как в браузерной форме:
// символ вне BMP (например, эмодзи) занимает две единицы.
func ValidateSignup(email, username, password string) error {
	if !strings.Contains(email, "@") {
		return entities.ErrInvalidEmail
	}

	n := utf16Len(username)
	if n < entities.MinUsernameLength || n > entities.MaxUsernameLength {
		return entities.ErrUsernameLength
	}
	if !usernamePattern.MatchString(username) {
		return entities.ErrUsernameCharacters
	}

	if utf16Len(password) < entities.MinPasswordLength {
		return entities.ErrPasswordTooShort
	}
	return nil
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if size := utf16.RuneLen(r); size > 0 {
			n += size
		} else {
			n++
		}
	}
	return n
}
