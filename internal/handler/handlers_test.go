package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/service"
)

func TestNewHandlers(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080", RequestTimeout: time.Second}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHTTPAddress)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h1, err1 := NewHandlers(&service.Services{}, cfg, logger.Nop())
	h2, err2 := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
