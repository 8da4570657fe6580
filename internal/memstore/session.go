// Package memstore keeps admin sessions and login attempt counters in process memory.
package memstore

import (
	"context"
	"sync"

	"github.com/memad/portfolio/internal/domain/session"
	"github.com/memad/portfolio/internal/repository"
)

// SessionRepository implements session.Repository. Sessions are lost on restart.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
	attempts map[string]session.Attempts
}

// NewSessionRepository returns an empty repository.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]session.Session),
		attempts: make(map[string]session.Attempts),
	}
}

func (r *SessionRepository) CreateSession(_ context.Context, sess *session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[sess.Token]; ok {
		return repository.ErrConflict
	}
	// Expired sessions are only ever dropped here, on the next login.
	for token, existing := range r.sessions {
		if existing.Expired(sess.CreatedAt) {
			delete(r.sessions, token)
		}
	}
	r.sessions[sess.Token] = *sess
	return nil
}

func (r *SessionRepository) GetSession(_ context.Context, token string) (*session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &sess, nil
}

func (r *SessionRepository) DeleteSession(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[token]; !ok {
		return repository.ErrNotFound
	}
	delete(r.sessions, token)
	return nil
}

func (r *SessionRepository) GetAttempts(_ context.Context, clientKey string) (session.Attempts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.attempts[clientKey]; ok {
		return a, nil
	}
	return session.Attempts{ClientKey: clientKey}, nil
}

func (r *SessionRepository) SaveAttempts(_ context.Context, attempts session.Attempts) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts[attempts.ClientKey] = attempts
	return nil
}

func (r *SessionRepository) ResetAttempts(_ context.Context, clientKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attempts, clientKey)
	return nil
}
