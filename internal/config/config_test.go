package config_test

import (
	"os"
	"outreach/internal/config"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_DefaultsAndFileValues(t *testing.T) {
	p := writeConfig(t, "environment: production\ninbox:\n  batchLimit: 100\n")

	cfg, err := config.Load(p)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, 100, cfg.Inbox.BatchLimit)
	require.Equal(t, time.Second, cfg.Inbox.AutoReplyDelay)
	require.Equal(t, "Thanks for your message! How can I help?", cfg.Inbox.AutoReplyText)
	require.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Empty(t, cfg.Tracing.Endpoint)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeConfig(t, "llm:\n  model: from-file\n")
	t.Setenv("LLM_MODEL", "from-env")

	cfg, err := config.Load(p)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.LLM.Model)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestLoad_CORSOriginsFromEnv(t *testing.T) {
	p := writeConfig(t, "environment: development\n")
	t.Setenv("HTTP_CORS_ORIGINS", "https://app.example.com,https://admin.example.com")

	cfg, err := config.Load(p)
	require.NoError(t, err)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.HTTP.CORSOrigins)
}
