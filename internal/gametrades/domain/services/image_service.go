package services

import (
	"errors"
	"fmt"
)

// Ошибки поиска обложек.
var (
	ErrMissingGameID = errors.New("Missing id parameter")
	ErrImageNotFound = errors.New("Image not found")
	ErrParseFailed   = errors.New("Failed to parse HTML")
)

// UpstreamError - ответ внешнего сайта со статусом не из диапазона 2xx.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Failed to fetch BGG page: %d", e.StatusCode)
}
