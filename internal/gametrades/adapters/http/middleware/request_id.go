// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"gametrades/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

const localsRequestContext = "requestContext"

// NewRequestIDMiddleware берет идентификатор из заголовка или генерирует
// новый и сохраняет контекст запроса для обработчиков.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderRequestID))
		id, _ := logger.GetRequestID(requestCtx)

		ctx.Set(HeaderRequestID, id)
		ctx.Locals(localsRequestContext, requestCtx)

		return ctx.Next()
	}
}

// RequestContext возвращает контекст запроса с идентификатором,
// если он был установлен, иначе контекст fiber.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(localsRequestContext).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}
