// Package session keeps per browser session state in memory.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"interviewdeck/internal/metrics"
	"interviewdeck/internal/playground"
	"interviewdeck/internal/search"
	"interviewdeck/internal/ticks"
)

// Session is the state one user builds up on the dashboard and playground.
type Session struct {
	ID         string
	Ticks      *ticks.Tracker
	Playground *playground.Workspace

	mu       sync.RWMutex
	search   search.State
	searchMu sync.Mutex
}

// Search returns a copy of the current search state.
func (s *Session) Search() search.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.search
}

// UpdateSearch serializes searches within the session. fn works on a copy
// that replaces the stored state once fn returns, so readers never observe
// a half applied search.
func (s *Session) UpdateSearch(fn func(state *search.State)) search.State {
	s.searchMu.Lock()
	defer s.searchMu.Unlock()

	state := s.Search()
	fn(&state)

	s.mu.Lock()
	s.search = state
	s.mu.Unlock()
	return state
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Store holds sessions that expire after ttl without use.
type Store struct {
	mu           sync.RWMutex
	sessions     map[string]*entry
	ttl          time.Duration
	newWorkspace func() *playground.Workspace
	logger       *zap.Logger
	now          func() time.Time
}

func NewStore(ttl time.Duration, newWorkspace func() *playground.Workspace, logger *zap.Logger) *Store {
	return &Store{
		sessions:     make(map[string]*entry),
		ttl:          ttl,
		newWorkspace: newWorkspace,
		logger:       logger,
		now:          time.Now,
	}
}

// Get returns a live session and refreshes its expiry.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok || s.expired(e) {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.session, true
}

// GetOrCreate returns the session for id, or a new one under a fresh id when
// id is empty, unknown or expired.
func (s *Store) GetOrCreate(id string) (*Session, bool) {
	if sess, ok := s.Get(id); ok {
		return sess, false
	}

	sess := &Session{
		ID:         uuid.NewString(),
		Ticks:      ticks.NewTracker(),
		Playground: s.newWorkspace(),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = &entry{session: sess, lastSeen: s.now()}
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.SetActiveSessions(n)
	s.logger.Debug("session created", zap.String("session_id", sess.ID))
	return sess, true
}

// Sweep drops expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if s.expired(e) {
			delete(s.sessions, id)
			removed++
		}
	}
	metrics.SetActiveSessions(len(s.sessions))
	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && s.now().Sub(e.lastSeen) > s.ttl
}
