package logger

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxRequestIDLength ограничивает длину идентификатора, пришедшего от клиента.
const MaxRequestIDLength = 64

type ctxKeyRequestID struct{}

// NewRequestIDContext кладет в контекст идентификатор запроса. Значение от
// клиента обрезается по пробелам; пустое, слишком длинное или содержащее
// посторонние символы заменяется новым UUID.
func NewRequestIDContext(ctx context.Context, candidate string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID{}, sanitizeRequestID(candidate))
}

func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKeyRequestID{}).(string)
	return id, ok
}

// GenerateRequestID возвращает случайный UUID v4.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID закрепляет request_id за логгером, если он есть в контексте.
func (l *Logger) WithRequestID(ctx context.Context) *Logger {
	id, ok := GetRequestID(ctx)
	if !ok {
		return l
	}
	return l.With(zap.String(RequestID, id))
}

func sanitizeRequestID(candidate string) string {
	id := strings.TrimSpace(candidate)
	if id == "" || len(id) > MaxRequestIDLength {
		return GenerateRequestID()
	}
	for _, r := range id {
		if !isRequestIDRune(r) {
			return GenerateRequestID()
		}
	}
	return id
}

// Допустимы символы, безопасные для заголовка и строки лога.
func isRequestIDRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_', r == '.', r == ':':
		return true
	}
	return false
}
