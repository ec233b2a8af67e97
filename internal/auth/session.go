package auth

import "sync"

// Session is the provider-issued identity of the signed-in user. It is held
// in process only; the owner id is read from here on every operation rather
// than cached by callers.
type Session struct {
	UserID  string
	Email   string
	IDToken string
}

type SessionStore struct {
	mu      sync.RWMutex
	current *Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Set(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &session
}

func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// UserID returns the owning id of the active session, or "" when signed out.
func (s *SessionStore) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return ""
	}
	return s.current.UserID
}
