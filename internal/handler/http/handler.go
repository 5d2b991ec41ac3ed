package http

import (
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// degraded reports that the process runs on the in-memory fallback
	// store; it is surfaced by the health endpoint.
	degraded bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, degraded bool, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		degraded: degraded,
		logger:   logger,
	}
}
