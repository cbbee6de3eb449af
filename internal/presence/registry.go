// Package presence tracks which live socket, if any, currently belongs to a
// key (a user id or a buddy-post author email). State is process-local and
// lost on restart; clients re-announce after reconnecting.
package presence

import "sync"

type Registry struct {
	mu    sync.RWMutex
	conns map[string]string
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]string)}
}

// Associate records socketID as the current connection for key, replacing
// any previous entry. Entries are never expired here; a stale socket id is
// simply one the hub no longer knows.
func (r *Registry) Associate(key, socketID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[key] = socketID
}

// Resolve returns the socket id on file for key.
func (r *Registry) Resolve(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.conns[key]
	return id, ok
}
