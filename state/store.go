// Package state holds the shared application state: the ordered chat log
// and the identity status map. All mutation is serialized by one mutex;
// reads go through an immutable snapshot and never take the lock.
package state

import (
	"sync"
	"sync/atomic"

	"social-bridge/domain"
	"social-bridge/sink"
)

// Snapshot is an immutable view of the store. Readers may be stale by at
// most one pending mutation, which is acceptable because every mutation
// also triggers a refresh notification.
type Snapshot struct {
	Entries  []domain.ChatLogEntry
	Statuses map[string]domain.IdentityStatus
}

type Store struct {
	mu       sync.Mutex
	entries  []domain.ChatLogEntry
	statuses map[string]domain.IdentityStatus

	snapshot atomic.Pointer[Snapshot]
	notifier *sink.Notifier
}

func NewStore(notifier *sink.Notifier) *Store {
	s := &Store{
		statuses: make(map[string]domain.IdentityStatus),
		notifier: notifier,
	}
	s.snapshot.Store(&Snapshot{Statuses: map[string]domain.IdentityStatus{}})
	return s
}

// Append adds one entry to the chat log.
func (s *Store) Append(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, domain.NewChatLogEntry(text))
	s.publishLocked()
}

// SetStatus records a participant status change.
func (s *Store) SetStatus(name string, status domain.IdentityStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[name] = status
	s.publishLocked()
}

// Ban marks the participant banned and appends the admin notice in one
// critical section, so no reader can observe one without the other.
func (s *Store) Ban(name string, notice string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[name] = domain.StatusBanned
	s.entries = append(s.entries, domain.NewChatLogEntry(notice))
	s.publishLocked()
}

// Status reads from the current snapshot, lock-free.
func (s *Store) Status(name string) domain.IdentityStatus {
	if st, ok := s.snapshot.Load().Statuses[name]; ok {
		return st
	}
	return domain.StatusOnline
}

// Snapshot returns the latest published view, lock-free.
func (s *Store) Snapshot() Snapshot {
	return *s.snapshot.Load()
}

// Refresh exposes the notifier channel so a renderer can wait for changes.
func (s *Store) Refresh() <-chan struct{} {
	return s.notifier.Refresh()
}

func (s *Store) publishLocked() {
	entries := make([]domain.ChatLogEntry, len(s.entries))
	copy(entries, s.entries)
	statuses := make(map[string]domain.IdentityStatus, len(s.statuses))
	for name, status := range s.statuses {
		statuses[name] = status
	}
	s.snapshot.Store(&Snapshot{Entries: entries, Statuses: statuses})
	if s.notifier != nil {
		s.notifier.Notify()
	}
}
