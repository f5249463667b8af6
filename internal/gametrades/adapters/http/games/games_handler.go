// Package games содержит HTTP обработчик рейтинга игр.
package games

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gametrades/internal/gametrades/adapters/http/middleware"
	"gametrades/internal/gametrades/app/dto"
	"gametrades/internal/gametrades/ports/api"
	"gametrades/pkg/logger"
)

// Handler содержит HTTP обработчик каталога.
type Handler struct {
	catalog api.CatalogUseCase
}

// NewHandler создает новый экземпляр обработчика каталога.
func NewHandler(catalog api.CatalogUseCase) *Handler {
	return &Handler{catalog: catalog}
}

// TopGames обрабатывает GET /api/top_games.
func (h *Handler) TopGames(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	games, err := h.catalog.TopGames(requestCtx)
	if err != nil {
		logger.Log(requestCtx).Error(requestCtx, "failed to list top games", zap.Error(err))
		if err := ctx.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"}); err != nil {
			return fmt.Errorf("error sending response: %w", err)
		}
		return nil
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewTopGamesResponse(games)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
