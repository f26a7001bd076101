package workspace

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Workspace pairs a session's store with its last-access stamp. Nothing here
// is persisted; an idle workspace is eventually purged.
type Workspace struct {
	ID    string
	Store *Store

	lastAccess time.Time
}

// Registry keeps the live workspaces, one per document session.
type Registry struct {
	mu         sync.Mutex
	workspaces map[string]*Workspace
	now        func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		workspaces: make(map[string]*Workspace),
		now:        time.Now,
	}
}

// Create allocates a fresh workspace and returns it.
func (r *Registry) Create() *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws := &Workspace{
		ID:         uuid.NewString(),
		Store:      NewStore(),
		lastAccess: r.now(),
	}
	r.workspaces[ws.ID] = ws
	return ws
}

// Get returns the workspace with the given ID and marks it as used.
func (r *Registry) Get(id string) (*Workspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, ok := r.workspaces[id]
	if ok {
		ws.lastAccess = r.now()
	}
	return ws, ok
}

// Remove discards a workspace.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workspaces, id)
}

// Len reports the number of live workspaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// PurgeIdle removes workspaces that have not been touched within ttl and
// returns how many were dropped. Called on a schedule by the entrypoint.
func (r *Registry) PurgeIdle(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-ttl)
	purged := 0
	for id, ws := range r.workspaces {
		if ws.lastAccess.Before(cutoff) {
			delete(r.workspaces, id)
			purged++
		}
	}
	return purged
}
