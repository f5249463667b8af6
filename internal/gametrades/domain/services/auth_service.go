// Package services содержит ошибки и константы доменных сервисов.
package services

import "errors"

// Ошибки регистрации. Тексты показываются клиенту как есть.
var (
	ErrEmailAlreadyExists    = errors.New("Email already registered")
	ErrUsernameAlreadyExists = errors.New("Username already taken")
	// ErrStorageConflict означает, что индекс email или username занят
	// между предварительной проверкой и атомарной записью.
	ErrStorageConflict = errors.New("Failed to create user. Please try again.")
)
