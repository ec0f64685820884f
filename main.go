package main

import (
	"net/http"

	"github.com/eventhub/events-api/config"
	"github.com/eventhub/events-api/internal/handler"
	"github.com/eventhub/events-api/internal/middleware"
	"github.com/eventhub/events-api/internal/repository"
	"github.com/eventhub/events-api/internal/service"
	"github.com/eventhub/events-api/internal/validation"
	"github.com/eventhub/events-api/pkg/database"
	"github.com/eventhub/events-api/pkg/logger"
	"github.com/eventhub/events-api/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	log := logger.Logger.With().Str("service", "events-api").Logger()

	db := database.NewPostgresDB(cfg.DSN())

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Error().Err(err).Msg("rabbitmq unavailable, lifecycle notifications disabled")
		publisher = nil
	} else {
		defer publisher.Close()
	}

	eventRepo := repository.NewEventRepository(db)
	joinedRepo := repository.NewJoinedEventRepository(db)

	eventSvc := service.NewEventService(eventRepo, joinedRepo, publisher)
	joinedSvc := service.NewJoinedEventService(joinedRepo, eventRepo, publisher)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Server is running!")
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "events-api"})
	})

	handler.NewEventHandler(eventSvc).RegisterRoutes(e)
	handler.NewJoinedEventHandler(joinedSvc).RegisterRoutes(e)

	log.Info().Str("port", cfg.ServerPort).Msg("events API starting")
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
