package http

import (
	"github.com/gin-gonic/gin"

	"github.com/justcomments/justcomments/internal/config"
	"github.com/justcomments/justcomments/internal/session"
	"github.com/justcomments/justcomments/internal/workspace"
)

// RouterConfig carries the router's dependencies.
type RouterConfig struct {
	Config   *config.Config
	Registry *workspace.Registry
	Sessions *session.Manager
	Open     OpenFunc
	Version  string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if secret := cfg.Config.Sessions.CSRFSecret; secret != "" {
		router.Use(CSRFMiddleware([]byte(secret), cfg.Config.Sessions.SecureCookies))
	}

	router.Use(cfg.Sessions.LoadSave())
	router.Use(WorkspaceMiddleware(cfg.Sessions, cfg.Registry))

	open := cfg.Open
	if open == nil {
		open = DefaultOpen
	}

	documents := NewDocumentsController(open, cfg.Config.MaxUploadBytes())
	comments := NewCommentsController()
	settings := NewSettingsController()
	exports := NewExportController()
	health := NewHealthController(cfg.Registry, cfg.Version)

	router.GET("/health", health.Status)

	api := router.Group("/api")
	{
		api.POST("/documents", documents.Upload)
		api.DELETE("/documents", documents.Unload)
		api.POST("/documents/reset", documents.Reset)

		api.GET("/comments", comments.List)
		api.PUT("/selection", settings.SetSelection)
		api.PUT("/columns", settings.SetColumns)

		api.GET("/export/csv", exports.DownloadCSV)
		api.GET("/export/txt", exports.DownloadText)
		api.GET("/export/xlsx", exports.DownloadXLSX)
		api.GET("/export/clipboard", exports.Clipboard)
	}

	return router
}
