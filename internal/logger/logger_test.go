package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// ─────────────────────────────────────────────
// constructors
// ─────────────────────────────────────────────

func TestNewLogger_Entry(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "diary-server")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "diary-server", entry["role"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry, "func")
	assert.Equal(t, "hello", entry["message"])
}

func TestNewLogger_DebugEnabled(t *testing.T) {
	require.NotNil(t, NewLogger("server"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewClientLogger_NotNil(t *testing.T) {
	assert.NotNil(t, NewClientLogger("client"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("dropped")

	assert.Empty(t, buf.String())
}

// ─────────────────────────────────────────────
// context helpers
// ─────────────────────────────────────────────

func TestFromContext(t *testing.T) {
	t.Run("nothing attached", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := zerolog.New(&buf).With().Str("diary_id", "d1").Logger().WithContext(context.Background())

		FromContext(ctx).Info().Msg("page saved")

		assert.Equal(t, "d1", decodeEntry(t, &buf)["diary_id"])
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}

	req := httptest.NewRequest(http.MethodGet, "/api/screens/home", nil)
	req = req.WithContext(l.WithTraceID("trace-7").WithContext(req.Context()))

	FromRequest(req).Info().Msg("home screen")

	assert.Equal(t, "trace-7", decodeEntry(t, &buf)["trace_id"])
}

func TestScopedFields(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}

	l.WithTraceID("trace-1").WithUserID("user-1").Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "trace-1", entry["trace_id"])
	assert.Equal(t, "user-1", entry["user_id"])
}
