package http

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	config   *config.Config

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.Config, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		config:   cfg,
		logger:   logger,
	}
}
