package api

import (
	"context"

	"gametrades/internal/gametrades/domain/entities"
)

// CatalogUseCase отдает рейтинг лучших игр.
type CatalogUseCase interface {
	TopGames(ctx context.Context) ([]entities.BoardGame, error)
}
