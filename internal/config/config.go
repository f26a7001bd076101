package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Uploads
		Sessions
		Workspaces
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Uploads struct {
		MaxFileSizeMB int64
	}
	Sessions struct {
		Lifetime      time.Duration
		SecureCookies bool // Set to false for local dev without HTTPS
		CSRFSecret    string
	}
	Workspaces struct {
		TTL             time.Duration
		CleanupSchedule string // Cron format: "*/15 * * * *" = every 15 minutes
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8388)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("max_upload_size_mb", 50)
	v.SetDefault("session_lifetime", "24h")
	v.SetDefault("secure_cookies", true)
	v.SetDefault("csrf_secret", "") // CSRF protection disabled if empty
	v.SetDefault("workspace_ttl", "2h")
	v.SetDefault("workspace_cleanup_schedule", "*/15 * * * *")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Uploads: Uploads{
			MaxFileSizeMB: v.GetInt64("MAX_UPLOAD_SIZE_MB"),
		},
		Sessions: Sessions{
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
			CSRFSecret:    v.GetString("CSRF_SECRET"),
		},
		Workspaces: Workspaces{
			TTL:             v.GetDuration("WORKSPACE_TTL"),
			CleanupSchedule: v.GetString("WORKSPACE_CLEANUP_SCHEDULE"),
		},
	}
}

// MaxUploadBytes returns the upload size cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.Uploads.MaxFileSizeMB * 1024 * 1024
}
