package http

import (
	"github.com/dicerhq/dicer-admin/internal/config"
	"github.com/dicerhq/dicer-admin/internal/logger"
	"github.com/dicerhq/dicer-admin/internal/service"
)

type Handler struct {
	services *service.Services

	// allowedOrigins is the CORS allow-list; "*" permits any origin.
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         logger,
	}
}
