package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier config is
// kept and that later configs only fill the gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:1111"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:2222", RequestTimeout: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:1111", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestWithDefaults_FillsUnsetFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{TokenSignKey: "key", TimeZone: "Europe/Paris"}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "Europe/Paris", cfg.App.TimeZone)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	require.NoError(t, cfg.validate())
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": "localhost:7777"},
	})
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "localhost:7777", b.configs[1].Server.HTTPAddress)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsFileIntoEnvironment(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_TOKEN_ISSUER=from-dotenv\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Cleanup(func() { _ = os.Unsetenv("APP_TOKEN_ISSUER") })

	b := newConfigBuilder().withDotEnv().withEnv()
	require.NoError(t, b.err)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.App.TokenIssuer)
}

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestStructuredConfig_Validate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaultConfig()
		cfg.App.TokenSignKey = "secret"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults with key", mutate: func(*StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "bad time zone", mutate: func(c *StructuredConfig) { c.App.TimeZone = "Mars/Olympus" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown backend", mutate: func(c *StructuredConfig) { c.Storage.Backend = "cassandra" }, wantErr: ErrInvalidStorageConfigs},
		{name: "postgres without dsn", mutate: func(c *StructuredConfig) { c.Storage.Backend = BackendPostgres }, wantErr: ErrInvalidStorageConfigs},
		{name: "firestore without project", mutate: func(c *StructuredConfig) { c.Storage.Backend = BackendFirestore }, wantErr: ErrInvalidStorageConfigs},
		{name: "blobs without bucket", mutate: func(c *StructuredConfig) {
			c.Storage.Blobs = Blobs{Endpoint: "localhost:9000"}
		}, wantErr: ErrInvalidStorageConfigs},
		{name: "no server address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no sweep interval", mutate: func(c *StructuredConfig) { c.Workers.SessionSweepInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		adapter ClientAdapter
		wantErr bool
	}{
		{name: "valid", adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: 5 * time.Second}},
		{name: "no address", adapter: ClientAdapter{RequestTimeout: time.Second}, wantErr: true},
		{name: "no timeout", adapter: ClientAdapter{HTTPAddress: "localhost:8080"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&ClientConfig{Adapter: tt.adapter}).validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
