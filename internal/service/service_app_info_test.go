package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/logger"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr error
	}{
		{"release", "1.4.0", nil},
		{"dev build", "dev", nil},
		{"empty", "", ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())

			if tt.wantErr != nil {
				assert.Nil(t, svc)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.version, svc.GetAppVersion(context.Background()))
		})
	}
}
