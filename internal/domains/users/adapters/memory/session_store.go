package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/users/ports"
)

var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore keeps sessions in memory with TTL expiry.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]session
	ttl      time.Duration
	now      func() time.Time
}

type session struct {
	username  string
	expiresAt time.Time
}

// DefaultTTL bounds how long an idle login stays valid.
const DefaultTTL = 3 * time.Hour

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SessionStore{sessions: map[string]session{}, ttl: ttl, now: time.Now}
}

func (s *SessionStore) Save(_ context.Context, token, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session{username: username, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *SessionStore) GetUsername(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return "", ports.ErrSessionNotFound
	}
	if s.now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return "", ports.ErrSessionNotFound
	}
	return sess.username, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *SessionStore) DeleteForUser(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, sess := range s.sessions {
		if sess.username == username {
			delete(s.sessions, token)
		}
	}
	return nil
}

func (s *SessionStore) PurgeExpired(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for token, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, token)
		}
	}
	return nil
}
