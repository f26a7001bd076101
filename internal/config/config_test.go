package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	// PORT and HOST are common ambient variables; pin them so the test
	// observes the values viper resolves rather than leftovers.
	t.Setenv("PORT", "8388")
	t.Setenv("HOST", "0.0.0.0")

	cfg := NewConfig()

	assert.Equal(t, int32(8388), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
	assert.Equal(t, int64(50), cfg.Uploads.MaxFileSizeMB)
	assert.Equal(t, 24*time.Hour, cfg.Sessions.Lifetime)
	assert.True(t, cfg.Sessions.SecureCookies)
	assert.Empty(t, cfg.Sessions.CSRFSecret)
	assert.Equal(t, 2*time.Hour, cfg.Workspaces.TTL)
	assert.Equal(t, "*/15 * * * *", cfg.Workspaces.CleanupSchedule)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE_MB", "5")
	t.Setenv("WORKSPACE_TTL", "30m")
	t.Setenv("SECURE_COOKIES", "false")

	cfg := NewConfig()

	assert.Equal(t, int64(5), cfg.Uploads.MaxFileSizeMB)
	assert.Equal(t, 30*time.Minute, cfg.Workspaces.TTL)
	assert.False(t, cfg.Sessions.SecureCookies)
}

func TestMaxUploadBytes(t *testing.T) {
	cfg := &Config{Uploads: Uploads{MaxFileSizeMB: 3}}
	assert.Equal(t, int64(3*1024*1024), cfg.MaxUploadBytes())
}
