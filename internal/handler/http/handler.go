package http

import (
	"time"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/service"
)

// maxUploadSize bounds multipart image uploads.
const maxUploadSize = 10 << 20

type Handler struct {
	services *service.Services

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Dur("request_timeout", cfg.RequestTimeout).Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
