package app

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"gametrades/internal/gametrades/domain/entities"
	"gametrades/internal/gametrades/ports/api"
	svc "gametrades/internal/gametrades/ports/services"
	"gametrades/pkg/logger"
)

const (
	msgErrLoadCatalog   = "failed to load game catalog"
	errCtxLoadingGames  = "loading games"
	DefaultCatalogLimit = 100
)

// CatalogUseCaseImpl отдает первые limit игр источника. Успешно
// загруженный список запоминается, неудачная загрузка повторяется
// при следующем запросе.
type CatalogUseCaseImpl struct {
	source svc.GameSource
	limit  int

	mu    sync.Mutex
	games []entities.BoardGame
}

// NewCatalogUseCase создает сценарий каталога. Неположительный limit
// заменяется DefaultCatalogLimit.
func NewCatalogUseCase(source svc.GameSource, limit int) api.CatalogUseCase {
	if limit <= 0 {
		limit = DefaultCatalogLimit
	}
	return &CatalogUseCaseImpl{source: source, limit: limit}
}

// TopGames возвращает рейтинг игр в порядке источника.
func (c *CatalogUseCaseImpl) TopGames(ctx context.Context) ([]entities.BoardGame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.games != nil {
		return c.games, nil
	}

	games, err := c.source.Load(ctx)
	if err != nil {
		logger.Log(ctx).Error(ctx, msgErrLoadCatalog, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxLoadingGames, err)
	}

	if len(games) > c.limit {
		games = games[:c.limit]
	}
	if games == nil {
		games = []entities.BoardGame{}
	}
	c.games = games
	return games, nil
}
