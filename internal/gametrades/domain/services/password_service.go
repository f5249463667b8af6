package services

import "errors"

// Ошибки, связанные с паролями.
var (
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrInvalidPassword = errors.New("invalid password")
)

// Параметры PBKDF2 для хранения паролей.
const (
	PasswordSaltLength = 16
	PasswordKeyLength  = 32
	PasswordIterations = 100_000
)
