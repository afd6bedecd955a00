package impl

import (
	"sync"

	"connkeeper/internal/domain/entity"
)

// ZoneStateStore holds the last processed inside/outside state for every
// (member, place) pair seen during process lifetime. The state reflects the
// most recently processed evaluation, not necessarily the latest location
// update. It is process-local: a restart resets every pair to "outside",
// which can produce a spurious enter notification for members already inside
// a zone. Known gap, kept to match observed behavior.
type ZoneStateStore struct {
	mu    sync.RWMutex
	state map[entity.ZoneKey]bool
}

// NewZoneStateStore creates an empty store.
func NewZoneStateStore() *ZoneStateStore {
	return &ZoneStateStore{
		state: make(map[entity.ZoneKey]bool),
	}
}

// Get reports whether the pair was last seen inside. Unseen pairs are outside.
func (s *ZoneStateStore) Get(key entity.ZoneKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state[key]
}

// Set overwrites the stored state for the pair.
func (s *ZoneStateStore) Set(key entity.ZoneKey, inside bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state[key] = inside
}

// Swap stores the new state and returns the previous one in a single
// critical section, so two concurrently running cycles cannot lose an update
// for the same key.
func (s *ZoneStateStore) Swap(key entity.ZoneKey, inside bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state[key]
	s.state[key] = inside

	return prev
}
