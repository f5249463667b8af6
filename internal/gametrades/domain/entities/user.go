// Package entities содержит сущности домена Game Trades Club.
package entities

import (
	"errors"
	"strings"
	"time"
)

// Ошибки валидации данных пользователя. Тексты показываются клиенту как есть.
var (
	ErrInvalidEmail        = errors.New("Valid email is required")
	ErrUsernameLength      = errors.New("Username must be between 3 and 20 characters")
	ErrUsernameCharacters  = errors.New("Username can only contain letters, numbers, and underscores")
	ErrPasswordTooShort    = errors.New("Password must be at least 8 characters")
	ErrUserNotFound        = errors.New("user not found")
	ErrMalformedUserRecord = errors.New("malformed user record")
)

// Ограничения на имя пользователя и пароль.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 8
)

// User представляет учетную запись участника клуба.
// Запись неизменяема после создания.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public возвращает копию пользователя без учетных данных.
func (u *User) Public() *User {
	public := *u
	public.PasswordHash = ""
	return &public
}

// NormalizeEmail приводит email к виду, используемому для индекса.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

// NormalizeUsername приводит имя пользователя к виду, используемому для индекса.
func NormalizeUsername(username string) string {
	return strings.ToLower(username)
}
