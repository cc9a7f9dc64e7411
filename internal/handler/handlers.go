package handler

import (
	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/handler/http"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
