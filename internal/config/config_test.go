package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ADDR", "LOG_LEVEL", "STATIC_DIR", "CORS_ALLOWED_ORIGINS", "ENABLE_HSTS",
		"MAX_BODY_BYTES", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "TRUST_PROXY_HEADERS", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Addr:               ":3000",
		LogLevel:           "info",
		StaticDir:          "public",
		CORSAllowedOrigins: []string{"*"},
		MaxBodyBytes:       1 << 20,
		RateLimitRPS:       20,
		RateLimitBurst:     40,
		ShutdownTimeout:    10 * time.Second,
	}, cfg)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":8081")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("ENABLE_HSTS", "true")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.EnableHSTS)
	assert.Zero(t, cfg.RateLimitRPS)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.TrustProxyHeaders)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "lots")
	t.Setenv("RATE_LIMIT_BURST", "0")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_BODY_BYTES")
	assert.Contains(t, err.Error(), "RATE_LIMIT_BURST")
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, ".env")

	if err := os.WriteFile(p, []byte("APP_ADDR=from_file\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("APP_ADDR", "from_env")
	t.Chdir(tmp)

	LoadEnvFiles()

	if got := os.Getenv("APP_ADDR"); got != "from_env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}
