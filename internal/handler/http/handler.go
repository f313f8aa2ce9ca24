package http

import (
	"time"

	"github.com/MKhiriev/todo-keeper/internal/config"
	"github.com/MKhiriev/todo-keeper/internal/logger"
	"github.com/MKhiriev/todo-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// production hides error stacks from responses.
	production     bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		production:     cfg.App.IsProduction(),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
