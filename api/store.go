package api

import (
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/session"
)

// Store keeps sessions in memory, keyed by UUID.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session.Session
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*session.Session)}
}

// Add stores s under a fresh id.
func (st *Store) Add(s *session.Session) uuid.UUID {
	id := uuid.New()
	st.mu.Lock()
	st.sessions[id] = s
	st.mu.Unlock()
	return id
}

// Get returns the session stored under id.
func (st *Store) Get(id uuid.UUID) (*session.Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete removes id and reports whether it existed.
func (st *Store) Delete(id uuid.UUID) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	_, ok := st.sessions[id]
	delete(st.sessions, id)
	return ok
}

// Len returns the number of stored sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
