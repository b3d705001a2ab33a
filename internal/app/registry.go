package app

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"huddle/internal/domain"
)

// Registry holds every identity this process has ever seen, in
// insertion order. Entries flip to offline on disconnect but are never
// removed, so a name lookup may hit a stale entry and duplicate names
// resolve to the first match.
type Registry struct {
	mu    sync.RWMutex
	users []*domain.User
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register inserts name or, if it is already known, points the entry at
// the new connection and flips it online. The second registration under
// a name wins: the previous connection keeps its socket but loses its
// name-based identity until it re-identifies.
func (r *Registry) Register(name string, id domain.ConnID) []domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, i, ok := lo.FindIndexOf(r.users, func(u *domain.User) bool { return u.Name == name }); ok {
		r.users[i].ConnID = id
		r.users[i].Status = domain.StatusOnline
		log.Info().Str("module", "app.registry").Str("name", name).Str("conn", string(id)).Msg("re-registered")
		return r.snapshotLocked()
	}
	r.users = append(r.users, &domain.User{Name: name, Status: domain.StatusOnline, ConnID: id})
	log.Info().Str("module", "app.registry").Str("name", name).Str("conn", string(id)).Msg("registered")
	return r.snapshotLocked()
}

// MarkOffline flips the entry registered under name to offline. With
// duplicate names this resolves to the first match by insertion order.
// An unknown name leaves the registry untouched.
func (r *Registry) MarkOffline(name string) []domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, i, ok := lo.FindIndexOf(r.users, func(u *domain.User) bool { return u.Name == name }); ok {
		r.users[i].Status = domain.StatusOffline
		log.Info().Str("module", "app.registry").Str("name", name).Msg("marked offline")
	}
	return r.snapshotLocked()
}

// MarkOfflineConn is the transport-disconnect path: the adapter knows
// the connection, not the name the client identified as. Reports false
// when no entry is bound to the connection.
func (r *Registry) MarkOfflineConn(id domain.ConnID) (string, []domain.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, i, ok := lo.FindIndexOf(r.users, func(u *domain.User) bool { return u.ConnID == id })
	if !ok {
		return "", r.snapshotLocked(), false
	}
	r.users[i].Status = domain.StatusOffline
	log.Info().Str("module", "app.registry").Str("name", u.Name).Str("conn", string(id)).Msg("marked offline by conn")
	return u.Name, r.snapshotLocked(), true
}

func (r *Registry) Snapshot() []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// snapshotLocked copies entries by value so callers never alias live
// registry state.
func (r *Registry) snapshotLocked() []domain.User {
	return lo.Map(r.users, func(u *domain.User, _ int) domain.User { return *u })
}
