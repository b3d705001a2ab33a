package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"huddle/internal/core"
	"huddle/internal/domain"
)

// SessionTable binds live transport connections to their IDs. Unlike
// the registry it only ever holds connections that are currently open;
// registry entries outlive their table entries.
type SessionTable struct {
	mu    sync.RWMutex
	conns map[domain.ConnID]core.SignalConnection
}

func NewSessionTable() *SessionTable {
	return &SessionTable{conns: make(map[domain.ConnID]core.SignalConnection)}
}

func (t *SessionTable) Bind(id domain.ConnID, conn core.SignalConnection) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.conns[id] = conn
	log.Info().Str("module", "app.sessions").Str("conn", string(id)).Msg("bound session")
}

// Unbind reports whether the connection was still bound, so the caller
// can run the offline transition exactly once per close.
func (t *SessionTable) Unbind(id domain.ConnID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.conns[id]; !ok {
		return false
	}
	delete(t.conns, id)
	log.Info().Str("module", "app.sessions").Str("conn", string(id)).Msg("unbound session")
	return true
}

func (t *SessionTable) Get(id domain.ConnID) (core.SignalConnection, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	conn, ok := t.conns[id]
	return conn, ok
}

func (t *SessionTable) Conns() []core.SignalConnection {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]core.SignalConnection, 0, len(t.conns))
	for _, c := range t.conns {
		out = append(out, c)
	}
	return out
}

func (t *SessionTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.conns)
}
