package service

import (
	"context"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/logger"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when cfg carries no
// version.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", cfg.Version).Msg("creating app info service")
	return &appInfoService{appVersion: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
