package api

import "context"

// ImageLookup находит URL обложки игры по внешнему идентификатору.
type ImageLookup interface {
	Resolve(ctx context.Context, gameID string) (string, error)
}
