package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justcomments/justcomments/internal/workspace"
)

// contextKeyWorkspace is where the workspace middleware stores the resolved
// workspace for the request.
const contextKeyWorkspace = "workspace"

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondConflict sends a 409 Conflict response.
func respondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 response.
func respondInternalError(c *gin.Context, err error) {
	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// getWorkspace returns the request's workspace, installed by the workspace
// middleware.
func getWorkspace(c *gin.Context) *workspace.Workspace {
	ws, _ := c.MustGet(contextKeyWorkspace).(*workspace.Workspace)
	return ws
}
