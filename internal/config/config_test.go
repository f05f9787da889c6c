package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SESSION_TTL_MINUTES", "")
	t.Setenv("S3_BUCKET", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.False(t, cfg.StorageEnabled())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL_MINUTES", "5")
	t.Setenv("CHECK_EMAIL_DOMAIN", "true")
	t.Setenv("ENV", "production")
	t.Setenv("S3_BUCKET", "studio-assets")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.CheckEmailDomain)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.StorageEnabled())
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MIN", "abc")
	t.Setenv("CHECK_EMAIL_DOMAIN", "talvez")

	cfg := Load()

	assert.Equal(t, 30, cfg.RateLimitPerMin)
	assert.False(t, cfg.CheckEmailDomain)
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " https://studio.example , ,http://localhost:5173")

	cfg := Load()

	assert.Equal(t, []string{"https://studio.example", "http://localhost:5173"}, cfg.CORSOrigins)
}
