package viewstate

import (
	"sync"
	"time"
)

// SessionKey identifies the open screen of one user.
type SessionKey struct {
	UserID string
	Screen string
}

// Sweeper evicts idle sessions.
type Sweeper interface {
	Sweep(now time.Time) int
}

type session[T any] struct {
	holder     *Holder[T]
	lastAccess time.Time
}

// Sessions keeps one [Holder] per open screen. Sessions not accessed for
// the configured TTL are closed by Sweep.
type Sessions[T any] struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[SessionKey]*session[T]
}

func NewSessions[T any](ttl time.Duration) *Sessions[T] {
	return &Sessions[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[SessionKey]*session[T]),
	}
}

// Open returns the holder of key, creating it in the loading state.
func (s *Sessions[T]) Open(key SessionKey) *Holder[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		entry = &session[T]{holder: NewHolder[T]()}
		s.entries[key] = entry
	}
	entry.lastAccess = s.now()

	return entry.holder
}

// Lookup returns the holder of an open session.
func (s *Sessions[T]) Lookup(key SessionKey) (*Holder[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	entry.lastAccess = s.now()

	return entry.holder, true
}

// Close closes and forgets the session of key.
func (s *Sessions[T]) Close(key SessionKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok {
		entry.holder.Close()
		delete(s.entries, key)
	}
}

// CloseUser closes every session of userID.
func (s *Sessions[T]) CloseUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, entry := range s.entries {
		if key.UserID == userID {
			entry.holder.Close()
			delete(s.entries, key)
		}
	}
}

// Sweep closes sessions idle for longer than the TTL and returns how many.
func (s *Sessions[T]) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, entry := range s.entries {
		if now.Sub(entry.lastAccess) > s.ttl {
			entry.holder.Close()
			delete(s.entries, key)
			evicted++
		}
	}

	return evicted
}

func (s *Sessions[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
