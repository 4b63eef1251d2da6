package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saubb/artisan/config"
	"github.com/saubb/artisan/internal/controller"
	"github.com/saubb/artisan/internal/infrastructure/ai"
	"github.com/saubb/artisan/internal/infrastructure/tracing"
	"github.com/saubb/artisan/internal/middleware"
	"github.com/saubb/artisan/internal/repository"
	"github.com/saubb/artisan/internal/service"
)

type App struct {
	Config   *config.Config
	AIClient ai.Client
	Server   *echo.Echo
}

func (app *App) Start() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	e.HideBanner = true

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost, app.Config.Environment)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer(tracing.ServiceName())

			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	e.Use(echomiddleware.CORS())
	e.Use(middleware.Logger)
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.HideBanner = true
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start metrics server")
		}
	}()

	// Fail fast: a missing or corrupt catalog or reference dataset stops the
	// process here instead of surfacing on the first request.
	productRepo, err := repository.CreateNewJSONProductRepository(app.Config.StorageConfig.CatalogFile)
	if err != nil {
		return fmt.Errorf("initializing catalog store: %w", err)
	}

	imageRepo, err := repository.CreateNewDiskImageRepository(app.Config.StorageConfig.UploadsDir)
	if err != nil {
		return fmt.Errorf("initializing image store: %w", err)
	}

	referenceRepo, err := repository.CreateNewReferenceDataRepository(app.Config.StorageConfig.DataDir)
	if err != nil {
		return fmt.Errorf("loading reference datasets: %w", err)
	}

	if app.AIClient == nil {
		app.AIClient = ai.CreateNewOpenAIClient(app.Config.AIConfig)
	}

	productService := service.CreateNewProductService(productRepo, imageRepo, app.AIClient)
	analysisService := service.CreateNewAnalysisService(referenceRepo, app.AIClient)
	controller.CreateNewController(e, productService, analysisService)

	e.Static("/uploads", app.Config.StorageConfig.UploadsDir)

	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	app.Server = e

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
