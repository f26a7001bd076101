package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/justcomments/justcomments/internal/config"
	http_controllers "github.com/justcomments/justcomments/internal/http"
	"github.com/justcomments/justcomments/internal/session"
	"github.com/justcomments/justcomments/internal/workspace"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Run wires the application together and serves it until interrupted.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Just the Comments v%s", version)

	registry := workspace.NewRegistry()
	sessions := session.NewManager(cfg.Sessions)

	if cfg.Sessions.CSRFSecret == "" {
		log.Printf("WARNING: CSRF protection disabled. Set 'CSRF_SECRET' to enable it.")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Config:   cfg,
		Registry: registry,
		Sessions: sessions,
		Version:  version,
	})

	// Periodically drop workspaces nobody has touched for a while. Sessions
	// pointing at a purged workspace get a fresh one on next contact.
	scheduler := cron.New()
	_, err := scheduler.AddFunc(cfg.Workspaces.CleanupSchedule, func() {
		if purged := registry.PurgeIdle(cfg.Workspaces.TTL); purged > 0 {
			log.Printf("Purged %d idle workspace(s)", purged)
		}
	})
	if err != nil {
		log.Fatalf("Invalid workspace cleanup schedule %q: %v", cfg.Workspaces.CleanupSchedule, err)
	}
	scheduler.Start()

	Serve(router, cfg, func(ctx context.Context) {
		stopCtx := scheduler.Stop()
		select {
		case <-stopCtx.Done():
		case <-ctx.Done():
		}
	})
}

// Serve runs the HTTP server with graceful shutdown on SIGINT/SIGTERM.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}
