package services

import (
	"context"

	"gametrades/internal/gametrades/domain/entities"
)

// GameSource загружает рейтинг игр в порядке следования.
type GameSource interface {
	Load(ctx context.Context) ([]entities.BoardGame, error)
}
