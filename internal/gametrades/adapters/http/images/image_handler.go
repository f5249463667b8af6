// Package images содержит HTTP обработчик поиска обложек игр.
package images

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gametrades/internal/gametrades/adapters/http/middleware"
	"gametrades/internal/gametrades/app/dto"
	"gametrades/internal/gametrades/domain/services"
	"gametrades/internal/gametrades/ports/api"
	"gametrades/pkg/logger"
)

// ErrorInternal - текст ответа на непредвиденную ошибку.
const ErrorInternal = "Internal Server Error"

// Handler содержит HTTP обработчик поиска обложек.
type Handler struct {
	lookup api.ImageLookup
}

// NewHandler создает новый экземпляр обработчика.
func NewHandler(lookup api.ImageLookup) *Handler {
	return &Handler{lookup: lookup}
}

// GetImage обрабатывает GET /api/bgg_image?id=<id>. Ошибки отдаются простым текстом.
func (h *Handler) GetImage(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	gameID := ctx.Query("id")

	url, err := h.lookup.Resolve(requestCtx, gameID)
	if err != nil {
		status, message := classify(err)
		if status == http.StatusInternalServerError {
			logger.Log(requestCtx).Error(requestCtx, "image lookup failed",
				zap.String("game_id", gameID), zap.Error(err))
		}
		if err := ctx.Status(status).SendString(message); err != nil {
			return fmt.Errorf("error sending response: %w", err)
		}
		return nil
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.ImageResponse{URL: url}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func classify(err error) (int, string) {
	var upstream *services.UpstreamError
	switch {
	case errors.Is(err, services.ErrMissingGameID):
		return http.StatusBadRequest, services.ErrMissingGameID.Error()
	case errors.As(err, &upstream):
		return http.StatusBadGateway, upstream.Error()
	case errors.Is(err, services.ErrImageNotFound):
		return http.StatusNotFound, services.ErrImageNotFound.Error()
	case errors.Is(err, services.ErrParseFailed):
		return http.StatusInternalServerError, services.ErrParseFailed.Error()
	default:
		return http.StatusInternalServerError, ErrorInternal
	}
}
