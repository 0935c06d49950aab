package memstore

import (
	"sync"
	"time"

	"swiss-virtual-airline/internal/domain/user"
	"swiss-virtual-airline/internal/pkg/errs"
	"swiss-virtual-airline/internal/pkg/token"
)

type session struct {
	userID    string
	expiresAt time.Time
}

// SessionStore maps opaque bearer tokens to verified identities. Expired
// sessions are evicted lazily on resolve; there is no background sweeper.
type SessionStore struct {
	mu         sync.Mutex
	ttl        time.Duration
	sessions   map[string]session
	identities map[string]user.Identity
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:        ttl,
		sessions:   make(map[string]session),
		identities: make(map[string]user.Identity),
	}
}

// Issue upserts the identity profile and returns a fresh opaque token.
func (s *SessionStore) Issue(identity user.Identity, now time.Time) (string, error) {
	tok, err := token.NewSessionToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.identities[identity.ID] = identity
	s.sessions[tok] = session{userID: identity.ID, expiresAt: now.Add(s.ttl)}
	return tok, nil
}

func (s *SessionStore) Resolve(tok string, now time.Time) (user.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[tok]
	if !ok {
		return user.Identity{}, errs.ErrInvalidSession
	}
	if now.After(sess.expiresAt) {
		delete(s.sessions, tok)
		return user.Identity{}, errs.ErrInvalidSession
	}

	identity, ok := s.identities[sess.userID]
	if !ok {
		return user.Identity{}, errs.ErrInvalidSession
	}
	return identity, nil
}

func (s *SessionStore) Revoke(tok string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tok)
}
