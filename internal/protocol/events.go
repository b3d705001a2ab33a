// Package protocol defines the wire events exchanged with clients.
// The event set is closed: the adapter dispatches over EventType in one
// switch, so adding an event is a visible change here rather than a
// stringly-typed handler registration.
package protocol

import (
	"encoding/json"

	"huddle/internal/domain"
)

type EventType string

// Client → server.
const (
	EvIdentify  EventType = "identify"
	EvInvite    EventType = "invite"
	EvAccept    EventType = "accept"
	EvChatSend  EventType = "chatSend"
	EvGoOffline EventType = "goOffline"
)

// Server → client.
const (
	EvAssignedID     EventType = "assignedId"
	EvHydrate        EventType = "hydrate"
	EvPresenceUpdate EventType = "presenceUpdate"
	EvChatUpdate     EventType = "chatUpdate"
	EvIncomingInvite EventType = "incomingInvite"
	EvInviteAccepted EventType = "inviteAccepted"
	EvError          EventType = "error"
)

// Envelope carries only the discriminator; handlers re-decode the full
// frame into their own payload type.
type Envelope struct {
	Type EventType `json:"type"`
}

type Identify struct {
	Type EventType `json:"type"`
	Name string    `json:"name"`
}

// Invite and Accept carry the signaling blob as json.RawMessage so it
// passes through the relay byte for byte, never parsed.
type Invite struct {
	Type     EventType       `json:"type"`
	TargetID domain.ConnID   `json:"targetId"`
	FromID   domain.ConnID   `json:"fromId"`
	Payload  json.RawMessage `json:"payload"`
}

type Accept struct {
	Type     EventType       `json:"type"`
	TargetID domain.ConnID   `json:"targetId"`
	Payload  json.RawMessage `json:"payload"`
}

type ChatSend struct {
	Type   EventType `json:"type"`
	Author string    `json:"author"`
	Text   string    `json:"text"`
}

type GoOffline struct {
	Type EventType `json:"type"`
	Name string    `json:"name"`
}

type AssignedID struct {
	Type   EventType     `json:"type"`
	ConnID domain.ConnID `json:"connId"`
}

// Hydrate is sent once per connection, right after AssignedID. Clients
// treat both lists as authoritative replacements.
type Hydrate struct {
	Type     EventType            `json:"type"`
	Users    []domain.User        `json:"users"`
	Messages []domain.ChatMessage `json:"messages"`
}

type PresenceUpdate struct {
	Type  EventType     `json:"type"`
	Users []domain.User `json:"users"`
}

type ChatUpdate struct {
	Type     EventType            `json:"type"`
	Messages []domain.ChatMessage `json:"messages"`
}

type IncomingInvite struct {
	Type    EventType       `json:"type"`
	FromID  domain.ConnID   `json:"fromId"`
	Payload json.RawMessage `json:"payload"`
}

type InviteAccepted struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type Error struct {
	Type  EventType `json:"type"`
	Error string    `json:"error"`
}
