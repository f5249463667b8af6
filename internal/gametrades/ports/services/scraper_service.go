package services

import "context"

// PageFetcher загружает страницу игры на внешнем сайте.
type PageFetcher interface {
	Fetch(ctx context.Context, gameID string) ([]byte, error)
}

// ImageExtractor извлекает URL обложки из HTML страницы игры.
type ImageExtractor interface {
	Extract(page []byte) (string, error)
}
