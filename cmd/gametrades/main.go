package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gametrades/internal/gametrades/adapters/catalog"
	"gametrades/internal/gametrades/adapters/factory"
	httpServer "gametrades/internal/gametrades/adapters/http"
	"gametrades/internal/gametrades/adapters/scraper"
	"gametrades/internal/gametrades/adapters/services"
	"gametrades/internal/gametrades/app"
	"gametrades/internal/gametrades/config"
	"gametrades/internal/gametrades/observability"
	"gametrades/pkg/logger"
	"gametrades/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "GAMETRADES_LOGGER_MODE"
	EnvLoggerLevel = "GAMETRADES_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitStorage          = "failed to initialize storage"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "gametrades service started"
	LogServiceShutdownDone = "gametrades service shutdown complete"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingStorage      = "closing storage connections"
	LogInitStorage         = "initializing storage"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitStorage)
		repos, err := factory.NewRepositoryFactory(ctx, cfg)
		if err != nil {
			log.Error(ctx, ErrInitStorage, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitServices)
		var metrics *observability.Metrics
		if cfg.Metrics.Enabled {
			metrics = observability.NewMetrics()
		}

		directory := app.NewUserDirectory(repos.UserRepository(), services.NewPBKDF2(0))
		imageLookup := app.NewImageLookup(
			repos.ImageCache(),
			scraper.NewHTTPFetcher(cfg.Scraper.BaseURL, cfg.Scraper.UserAgent, cfg.Scraper.Timeout),
			scraper.NewHTMLExtractor(cfg.Scraper.ImageMarker),
			metrics,
		)
		catalogUseCase := app.NewCatalogUseCase(catalog.NewCSVLoader(cfg.Catalog.Path, cfg.Catalog.Limit), cfg.Catalog.Limit)

		log.Info(ctx, LogInitHTTPServer)
		server := httpServer.NewApp(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			BodyLimit:    cfg.HTTP.BodyLimit,
		})

		httpServer.SetupRouter(server, httpServer.Services{
			Signup:      app.NewSignupUseCase(directory, metrics),
			Images:      imageLookup,
			Catalog:     catalogUseCase,
			Metrics:     metrics,
			MetricsPath: cfg.Metrics.Path,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		serveCtx, stopServe := context.WithCancel(ctx)
		defer stopServe()

		listenErr := make(chan error, 1)
		go func() {
			if err := server.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
				listenErr <- err
				stopServe()
			}
		}()

		shutdown.Wait(serveCtx, cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return server.ShutdownWithContext(ctx)
			},
		)

		// Хранилища закрываются после того, как HTTP сервер перестал принимать запросы.
		shutdown.RunHooks(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingStorage)
				return repos.Close(ctx)
			},
		)

		select {
		case <-listenErr:
			exitCode = 1
		default:
		}

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
