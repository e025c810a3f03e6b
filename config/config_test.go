package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every config variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SERVER_PORT", "ENVIRONMENT", "APP_URL", "STATIC_DIR", "THEME_FILE", "ALLOWED_ORIGINS", "RATE_LIMIT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:8080", cfg.AppURL)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "", cfg.ThemeFile)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 20.0, cfg.RateLimit)
	assert.False(t, cfg.IsProduction())
}

func TestParseOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("APP_URL", "https://cityhelper.example")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("RATE_LIMIT", "0")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 0.0, cfg.RateLimit)
}

func TestParseInvalid(t *testing.T) {
	clearEnv(t)

	t.Run("RelativeAppURL", func(t *testing.T) {
		t.Setenv("APP_URL", "/relative")
		_, err := Parse()
		assert.Error(t, err)
	})

	t.Run("NegativeRateLimit", func(t *testing.T) {
		t.Setenv("RATE_LIMIT", "-1")
		_, err := Parse()
		assert.Error(t, err)
	})

	t.Run("MalformedRateLimit", func(t *testing.T) {
		t.Setenv("RATE_LIMIT", "fast")
		_, err := Parse()
		assert.Error(t, err)
	})
}

func TestPageURL(t *testing.T) {
	cfg := &Config{AppURL: "https://cityhelper.example"}
	assert.Equal(t, "https://cityhelper.example/sitemap.xml", cfg.PageURL("/sitemap.xml"))
	assert.Equal(t, "https://cityhelper.example/", cfg.PageURL("/"))
}
