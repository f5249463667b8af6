package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gametrades/pkg/logger"
)

// ErrorHandler отвечает JSON-ошибкой на ошибки, не обработанные в хендлерах.
func ErrorHandler(ctx fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else {
		requestCtx := RequestContext(ctx)
		logger.Log(requestCtx).Error(requestCtx, "unhandled request error", zap.Error(err))
	}

	return ctx.Status(code).JSON(fiber.Map{"error": message})
}
