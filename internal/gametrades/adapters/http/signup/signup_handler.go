// Package signup содержит HTTP обработчик регистрации.
package signup

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gametrades/internal/gametrades/adapters/http/middleware"
	"gametrades/internal/gametrades/app/dto"
	"gametrades/internal/gametrades/domain/entities"
	"gametrades/internal/gametrades/domain/services"
	"gametrades/internal/gametrades/ports/api"
	"gametrades/pkg/logger"
)

// Константы ответов.
const (
	LogHandlerSignup = "signup handler"

	MsgAccountCreated   = "Account created successfully!"
	ErrorInvalidRequest = "Invalid request body"
	ErrorInternal       = "Internal server error"
)

// Ошибки, которые клиент может исправить сам. Их текст уходит в ответ как есть.
var clientErrors = []error{
	entities.ErrInvalidEmail,
	entities.ErrUsernameLength,
	entities.ErrUsernameCharacters,
	entities.ErrPasswordTooShort,
	services.ErrEmailAlreadyExists,
	services.ErrUsernameAlreadyExists,
	services.ErrStorageConflict,
}

// Handler содержит HTTP обработчик регистрации.
type Handler struct {
	signup api.SignupUseCase
}

// NewHandler создает новый экземпляр обработчика регистрации.
func NewHandler(signup api.SignupUseCase) *Handler {
	return &Handler{signup: signup}
}

// Signup обрабатывает POST /api/signup.
func (h *Handler) Signup(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerSignup)

	var req dto.SignupRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendJSON(ctx, http.StatusBadRequest, dto.ErrorResponse{Error: ErrorInvalidRequest})
	}

	_, err := h.signup.Signup(requestCtx, req.Email, req.Username, req.Password)
	if err != nil {
		for _, clientErr := range clientErrors {
			if errors.Is(err, clientErr) {
				return sendJSON(ctx, http.StatusBadRequest, dto.ErrorResponse{Error: clientErr.Error()})
			}
		}

		log.Error(requestCtx, ErrorInternal, zap.Error(err))
		return sendJSON(ctx, http.StatusInternalServerError, dto.ErrorResponse{
			Error:   ErrorInternal,
			Details: err.Error(),
		})
	}

	return sendJSON(ctx, http.StatusCreated, dto.SignupResponse{Success: true, Message: MsgAccountCreated})
}

func sendJSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
