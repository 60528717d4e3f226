package http

import (
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/metrics"
	"github.com/MKhiriev/go-key-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}
