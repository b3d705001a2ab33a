package app

import (
	"sync"

	"huddle/internal/domain"
)

// MessageLog is the single shared chat sequence. Server-side receipt
// order is the only ordering, and every mutation is broadcast as the
// entire log. No cap, no compaction: the log lives as long as the
// process.
type MessageLog struct {
	mu   sync.RWMutex
	msgs []domain.ChatMessage
}

func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// Append adds one entry and returns the whole log for broadcast.
// Text is deliberately not validated; empty and oversized messages
// are accepted.
func (l *MessageLog) Append(author, text string) []domain.ChatMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, domain.ChatMessage{Author: author, Text: text})
	return l.snapshotLocked()
}

func (l *MessageLog) Snapshot() []domain.ChatMessage {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshotLocked()
}

func (l *MessageLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.msgs)
}

func (l *MessageLog) snapshotLocked() []domain.ChatMessage {
	return append([]domain.ChatMessage(nil), l.msgs...)
}
