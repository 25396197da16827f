package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "gemini-2.5-flash", cfg.Draft.Model)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://cestas.example.com,https://www.cestas.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "redis.internal:6379", cfg.GetRedisAddr())
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, 30, cfg.Security.RateLimitPerMinute)
	assert.Equal(t,
		[]string{"https://cestas.example.com", "https://www.cestas.example.com"},
		cfg.Security.CORSAllowedOrigins)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"missing port", func(c *Config) { c.Server.Port = "" }, "APP_PORT"},
		{"missing redis host", func(c *Config) { c.Redis.Host = "" }, "REDIS_HOST"},
		{"zero session ttl", func(c *Config) { c.Session.TTL = 0 }, "SESSION_TTL"},
		{"missing draft base url", func(c *Config) { c.Draft.BaseURL = "" }, "GEMINI_BASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDraftAPIKeyIsOptional(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Draft.APIKey = ""
	assert.NoError(t, cfg.Validate())
}
