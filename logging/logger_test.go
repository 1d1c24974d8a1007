package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureJSON(t *testing.T) {
	prev := *Default()
	t.Cleanup(func() { SetDefault(prev) })

	var buf bytes.Buffer
	logger := Configure(Config{Level: "warn", Format: "json", Output: &buf})

	logger.Info().Msg("dropped")
	logger.Error().Str("path", "/main/info").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "/main/info", entry["path"])
	assert.Equal(t, zerolog.WarnLevel, Default().GetLevel())
}

func TestConfigureInvalidLevel(t *testing.T) {
	prev := *Default()
	t.Cleanup(func() { SetDefault(prev) })

	var buf bytes.Buffer
	logger := Configure(Config{Level: "loud", Format: "json", Output: &buf})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")
	assert.Equal(t, zerolog.InfoLevel, levelFromEnv())

	t.Setenv("DEBUG", "1")
	assert.Equal(t, zerolog.DebugLevel, levelFromEnv())

	t.Setenv("LOG_LEVEL", "error")
	assert.Equal(t, zerolog.ErrorLevel, levelFromEnv())

	t.Setenv("LOG_LEVEL", "nonsense")
	assert.Equal(t, zerolog.InfoLevel, levelFromEnv())
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	logger.Error().Msg("boom")
	assert.Contains(t, buf.String(), `"message":"boom"`)
}
