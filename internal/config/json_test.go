package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"reset_token_duration": "5m",
			"time_zone": "Europe/Rome",
			"language": "en"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"storage": {
			"backend": "sqlite",
			"sqlite": { "path": "/var/diary.db" },
			"blobs": { "endpoint": "localhost:9000", "bucket": "images" }
		},
		"workers": { "session_sweep_interval": "1m", "session_ttl": "10m" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 5*time.Minute, cfg.App.ResetTokenDuration)
	assert.Equal(t, "Europe/Rome", cfg.App.TimeZone)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/var/diary.db", cfg.Storage.SQLite.Path)
	assert.Equal(t, "localhost:9000", cfg.Storage.Blobs.Endpoint)
	assert.Equal(t, "images", cfg.Storage.Blobs.Bucket)

	assert.Equal(t, time.Minute, cfg.Workers.SessionSweepInterval)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SessionTTL)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": {`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"request_timeout": "soon"}}`), 0o600))

	// Act
	_, err := parseJSON(p)

	// Assert
	require.Error(t, err)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "numeric.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"request_timeout": 1000000000}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
