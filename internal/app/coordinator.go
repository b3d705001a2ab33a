package app

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"huddle/internal/core"
	"huddle/internal/domain"
	"huddle/internal/protocol"
)

// Coordinator funnels every mutation of the shared registry and log
// through one mutex, so each broadcast observes exactly the state
// produced by the mutation that triggered it and nothing from a
// concurrently in-flight one.
//
// Fan-out is O(connections) per event. Fine for a small group chat,
// which is all this targets.
type Coordinator struct {
	mu       sync.Mutex
	Users    *Registry
	Log      *MessageLog
	Sessions *SessionTable
}

func NewCoordinator(users *Registry, msgs *MessageLog, sessions *SessionTable) *Coordinator {
	return &Coordinator{Users: users, Log: msgs, Sessions: sessions}
}

// Connect binds the transport and hydrates the new client: its assigned
// connection ID first, then the full current state, exactly once.
func (c *Coordinator) Connect(id domain.ConnID, conn core.SignalConnection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sessions.Bind(id, conn)
	c.sendTo(conn, protocol.AssignedID{Type: protocol.EvAssignedID, ConnID: id})
	c.sendTo(conn, protocol.Hydrate{
		Type:     protocol.EvHydrate,
		Users:    c.Users.Snapshot(),
		Messages: c.Log.Snapshot(),
	})
}

// Identify registers the display name for the connection and fans the
// updated presence list out to every client, the mutator included.
func (c *Coordinator) Identify(id domain.ConnID, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	users := c.Users.Register(name, id)
	c.broadcast(protocol.PresenceUpdate{Type: protocol.EvPresenceUpdate, Users: users})
}

// Chat appends to the log and broadcasts the full log to every client.
// Clients treat it as a replacement, never an append.
func (c *Coordinator) Chat(author, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	msgs := c.Log.Append(author, text)
	c.broadcast(protocol.ChatUpdate{Type: protocol.EvChatUpdate, Messages: msgs})
}

// Invite relays an opaque call offer to the target connection, tagged
// with the caller's identity. A stale or unknown target drops the relay
// silently; the caller is not told.
func (c *Coordinator) Invite(from, target domain.ConnID, payload json.RawMessage) {
	c.relay(target, protocol.IncomingInvite{Type: protocol.EvIncomingInvite, FromID: from, Payload: payload})
}

// Accept relays an opaque answer back to the original caller. The
// coordinator tracks no in-call state: invite and accept are
// independent one-way sends, not a synchronous exchange.
func (c *Coordinator) Accept(target domain.ConnID, payload json.RawMessage) {
	c.relay(target, protocol.InviteAccepted{Type: protocol.EvInviteAccepted, Payload: payload})
}

// GoOffline is the client-initiated offline transition. The connection
// stays open; only presence changes.
func (c *Coordinator) GoOffline(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	users := c.Users.MarkOffline(name)
	c.broadcast(protocol.PresenceUpdate{Type: protocol.EvPresenceUpdate, Users: users})
}

// Disconnect is the transport-close path. The Unbind guard makes the
// offline transition run once per connection close no matter how the
// close was initiated.
func (c *Coordinator) Disconnect(id domain.ConnID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.Sessions.Unbind(id) {
		return
	}
	name, users, ok := c.Users.MarkOfflineConn(id)
	if !ok {
		// Connected but never identified; nothing to announce.
		return
	}
	log.Info().Str("module", "app.coordinator").Str("name", name).Str("conn", string(id)).Msg("disconnected")
	c.broadcast(protocol.PresenceUpdate{Type: protocol.EvPresenceUpdate, Users: users})
}

func (c *Coordinator) relay(target domain.ConnID, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	conn, ok := c.Sessions.Get(target)
	if !ok {
		log.Debug().Str("module", "app.coordinator").Str("target", string(target)).Msg("relay target not connected, dropped")
		return
	}
	c.sendTo(conn, v)
}

func (c *Coordinator) broadcast(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.coordinator").Msg("broadcast marshal")
		return
	}
	for _, conn := range c.Sessions.Conns() {
		if err := conn.TrySend(b); err != nil {
			log.Warn().Err(err).Str("module", "app.coordinator").Msg("dropped broadcast frame")
		}
	}
}

func (c *Coordinator) sendTo(conn core.SignalConnection, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.coordinator").Msg("send marshal")
		return
	}
	if err := conn.TrySend(b); err != nil {
		log.Warn().Err(err).Str("module", "app.coordinator").Msg("dropped frame")
	}
}
