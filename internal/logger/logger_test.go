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

// restoreGlobalLevel resets the zerolog global level after a test changes it.
func restoreGlobalLevel(t *testing.T) {
	t.Helper()
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	restoreGlobalLevel(t)

	var buf bytes.Buffer
	l := NewLogger("keeper-server")
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "keeper-server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WarnLevel(t *testing.T) {
	restoreGlobalLevel(t)

	l := NewClientLogger("keeper-cli")
	require.NotNil(t, l)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestSetLevel(t *testing.T) {
	restoreGlobalLevel(t)

	tests := []struct {
		name    string
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "error", level: "error", want: zerolog.ErrorLevel},
		{name: "info", level: "info", want: zerolog.InfoLevel},
		{name: "empty keeps current", level: "", want: zerolog.InfoLevel},
		{name: "unknown", level: "chatty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetLevel(tt.level)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetLevel_SuppressesLowerLevels(t *testing.T) {
	restoreGlobalLevel(t)

	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}
	require.NoError(t, SetLevel("warn"))

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.NotEmpty(t, buf.String())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Error().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	restoreGlobalLevel(t)

	var buf bytes.Buffer
	parent := NewLogger("purge-worker")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Logger = child.With().Str("trace_id", "abc").Logger()
	child.Info().Msg("child message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "purge-worker", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestFromContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "ctx-trace").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Error().Msg("from context")

	assert.Equal(t, "ctx-trace", decodeEntry(t, &buf)["trace_id"])
}

func TestFromRequest(t *testing.T) {
	assert.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req-trace").Logger()
	req := httptest.NewRequest(http.MethodGet, "/api/keys", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Error().Msg("from request")

	assert.Equal(t, "req-trace", decodeEntry(t, &buf)["trace_id"])
}
