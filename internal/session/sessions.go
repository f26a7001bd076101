// Package session tracks which workspace a browser is talking to. Sessions
// live in the scs in-memory store only; closing the server forgets every
// document session, which is exactly the lifetime the pipeline promises.
package session

import (
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/justcomments/justcomments/internal/config"
)

// SessionKeyWorkspaceID is the only value kept in a session: the ID of the
// workspace holding the records, selection and column settings.
const SessionKeyWorkspaceID = "workspace_id"

// Manager wraps scs.SessionManager with workspace-specific helpers.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates a session manager backed by the scs default in-memory
// store.
func NewManager(cfg config.Sessions) *Manager {
	sm := scs.New()

	sm.Lifetime = cfg.Lifetime
	sm.IdleTimeout = cfg.Lifetime / 2

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteStrictMode
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}
}

// WorkspaceID returns the workspace ID bound to the request's session, or
// "" when none has been assigned yet.
func (m *Manager) WorkspaceID(r *http.Request) string {
	return m.GetString(r.Context(), SessionKeyWorkspaceID)
}

// BindWorkspace associates the session with a workspace.
func (m *Manager) BindWorkspace(r *http.Request, workspaceID string) {
	m.Put(r.Context(), SessionKeyWorkspaceID, workspaceID)
}
