package logger

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJSONFormat(t *testing.T) {
	t.Setenv(EnvLevel, "")
	t.Setenv(EnvFormat, "")
	var buf bytes.Buffer
	log := New(&buf, "info", FormatJSON).Named("validate")
	log.Info("validated", zap.String("file", "a.xml"))
	log.Debug("hidden")
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "validate", entry["component"])
	assert.Equal(t, "validated", entry["msg"])
	assert.Equal(t, "a.xml", entry["file"])
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvLevel, "DEBUG")
	t.Setenv(EnvFormat, "json")
	var buf bytes.Buffer
	log := New(&buf, "ERROR", FormatConsole)
	log.Debug("shown")
	require.NoError(t, log.Sync())
	assert.True(t, strings.HasPrefix(buf.String(), "{"), buf.String())
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestConsoleFormat(t *testing.T) {
	t.Setenv(EnvLevel, "")
	t.Setenv(EnvFormat, "")
	var buf bytes.Buffer
	log := New(&buf, "WARN", "bogus")
	log.Info("dropped")
	log.Warn("kept")
	require.NoError(t, log.Sync())
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), " | WARN | kept")
}
