package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/justcomments/justcomments/internal/workspace"
)

type HealthResponse struct {
	Status     string `json:"status"`
	Time       string `json:"time"`
	Version    string `json:"version,omitempty"`
	Workspaces int    `json:"workspaces"`
}

type HealthController struct {
	registry *workspace.Registry
	version  string
}

func NewHealthController(registry *workspace.Registry, version string) *HealthController {
	return &HealthController{
		registry: registry,
		version:  version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, HealthResponse{
		Status:     "healthy",
		Time:       time.Now().Format(time.RFC3339),
		Version:    h.version,
		Workspaces: h.registry.Len(),
	})
}
