package http

import (
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/service"
)

// Handler carries the service layer and wires it to the chi router built by
// Init.
type Handler struct {
	services *service.Services

	appVersion string

	logger *logger.Logger
}

func NewHandler(services *service.Services, appVersion string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		appVersion: appVersion,
		logger:     logger,
	}
}
