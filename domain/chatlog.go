package domain

import "github.com/google/uuid"

// ChatLogEntry is one immutable line of the shared chat log.
// Insertion order is the only ordering guarantee; entries from different
// identities carry no comparable timestamps.
type ChatLogEntry struct {
	ID   uuid.UUID
	Text string
}

func NewChatLogEntry(text string) ChatLogEntry {
	return ChatLogEntry{ID: uuid.New(), Text: text}
}
