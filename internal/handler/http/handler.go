package http

import (
	"github.com/mkarev/go-jwt-auth/internal/logger"
	"github.com/mkarev/go-jwt-auth/internal/service"
)

// Handler bundles the service layer and the base logger for all HTTP
// route handlers and middleware.
type Handler struct {
	services *service.Services

	staticDir string

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler. staticDir points at the
// browser client's assets; empty disables static serving.
func NewHandler(services *service.Services, staticDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		staticDir: staticDir,
		logger:    logger,
	}
}
