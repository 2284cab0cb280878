package configs

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HELPDESK_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gpt-5-nano", cfg.OpenAIModel)
	assert.Equal(t, 10, cfg.MaxIterations)
	assert.Equal(t, 30*time.Second, cfg.ToolCallTimeout)
	assert.Equal(t, "info", cfg.LogLevel)

	require.Len(t, cfg.Servers, 5)
	assert.Equal(t, "ticket", cfg.Servers[0].Name)
	assert.Equal(t, "helpdesk-asset-server", cfg.Servers[4].Command)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "helpdesk.yaml")
	content := `servers:
  - name: ticket
    command: /opt/helpdesk/bin/helpdesk-ticket-server
  - name: kb
    command: helpdesk-kb-server
    args: ["--verbose"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("HELPDESK_CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	require.Len(t, cfg.Servers, 2)
	assert.Equal(t, "/opt/helpdesk/bin/helpdesk-ticket-server", cfg.Servers[0].Command)
	assert.Equal(t, []string{"--verbose"}, cfg.Servers[1].Args)
}

func TestLoad_RejectsIncompleteServerEntry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "helpdesk.yaml")
	content := `servers:
  - name: ticket
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("HELPDESK_CONFIG_FILE", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a name or command")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HELPDESK_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HELPDESK_OPENAI_MODEL", "gpt-5-mini")
	t.Setenv("HELPDESK_MAX_ITERATIONS", "3")
	t.Setenv("HELPDESK_TOOL_CALL_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gpt-5-mini", cfg.OpenAIModel)
	assert.Equal(t, 3, cfg.MaxIterations)
	assert.Equal(t, 5*time.Second, cfg.ToolCallTimeout)
}

func TestParsedLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := Config{LogLevel: tt.in}
		assert.Equal(t, tt.want, cfg.ParsedLogLevel(), tt.in)
	}
}
