// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"

	"gametrades/internal/gametrades/adapters/http/games"
	"gametrades/internal/gametrades/adapters/http/images"
	"gametrades/internal/gametrades/adapters/http/middleware"
	"gametrades/internal/gametrades/adapters/http/signup"
	"gametrades/internal/gametrades/observability"
	"gametrades/internal/gametrades/ports/api"
)

// Services содержит сценарии, которые обслуживает HTTP сервер.
type Services struct {
	Signup  api.SignupUseCase
	Images  api.ImageLookup
	Catalog api.CatalogUseCase
	// Metrics может быть nil, тогда эндпоинт метрик не регистрируется.
	Metrics     *observability.Metrics
	MetricsPath string
}

// NewApp создает fiber приложение с обработчиком ошибок сервиса.
func NewApp(cfg fiber.Config) *fiber.App {
	cfg.ErrorHandler = middleware.ErrorHandler
	return fiber.New(cfg)
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, svc Services) {
	signupHandler := signup.NewHandler(svc.Signup)
	imageHandler := images.NewHandler(svc.Images)
	gamesHandler := games.NewHandler(svc.Catalog)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if svc.Metrics != nil {
		path := svc.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(svc.Metrics.Handler()))
	}

	apiGroup := app.Group("/api")
	apiGroup.Post("/signup", signupHandler.Signup)
	apiGroup.Get("/bgg_image", imageHandler.GetImage)
	apiGroup.Get("/top_games", gamesHandler.TopGames)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
