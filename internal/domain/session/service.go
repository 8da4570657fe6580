package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/repository"
)

// Service checks the admin password server-side and issues session tokens.
type Service struct {
	repo       Repository
	activities ActivityRepository
	cfg        Config
	logger     *slog.Logger
	now        func() time.Time

	// mu serialises the read-modify-write of attempt counters.
	mu sync.Mutex
}

// NewService creates a new session service. activities may be nil.
func NewService(repo Repository, activities ActivityRepository, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		repo:       repo,
		activities: activities,
		cfg:        cfg.withDefaults(),
		logger:     logger,
		now:        time.Now,
	}
}

// Enabled reports whether a password is configured. When disabled, every caller is admin.
func (s *Service) Enabled() bool {
	return s.cfg.PasswordHash != ""
}

// Login checks password for the client identified by clientKey.
// Rejections are returned as *LoginError wrapping ErrInvalidCredentials or ErrLockedOut.
func (s *Service) Login(ctx context.Context, clientKey, password string) (*Session, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("%w: admin password is not configured", ErrInvalidCredentials)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	attempts, err := s.repo.GetAttempts(ctx, clientKey)
	if err != nil {
		return nil, fmt.Errorf("loading login attempts: %w", err)
	}
	if attempts.Locked(now) {
		return nil, &LoginError{Err: ErrLockedOut, RetryAfter: attempts.LockedUntil.Sub(now)}
	}
	if !attempts.LockedUntil.IsZero() {
		// Lockout elapsed: start counting again.
		attempts = Attempts{ClientKey: clientKey}
	}

	if bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)) != nil {
		return nil, s.fail(ctx, clientKey, attempts, now)
	}

	if err := s.repo.ResetAttempts(ctx, clientKey); err != nil {
		return nil, fmt.Errorf("resetting login attempts: %w", err)
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}
	sess := &Session{
		Token:     token,
		ClientKey: clientKey,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}
	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	s.logger.Info("admin login", "client", clientKey)
	s.record(ctx, activity.TypeAdminLogin, clientKey, "admin signed in")
	return sess, nil
}

func (s *Service) fail(ctx context.Context, clientKey string, attempts Attempts, now time.Time) error {
	attempts.ClientKey = clientKey
	attempts.Failures++

	if attempts.Failures >= s.cfg.MaxAttempts {
		attempts.LockedUntil = now.Add(s.cfg.Lockout)
		if err := s.repo.SaveAttempts(ctx, attempts); err != nil {
			return fmt.Errorf("saving login attempts: %w", err)
		}
		s.logger.Warn("admin login locked out", "client", clientKey, "until", attempts.LockedUntil)
		s.record(ctx, activity.TypeAdminLockedOut, clientKey, "too many failed admin logins")
		return &LoginError{Err: ErrLockedOut, RetryAfter: s.cfg.Lockout}
	}

	if err := s.repo.SaveAttempts(ctx, attempts); err != nil {
		return fmt.Errorf("saving login attempts: %w", err)
	}
	s.logger.Warn("admin login failed", "client", clientKey, "failures", attempts.Failures)
	s.record(ctx, activity.TypeAdminLoginFailed, clientKey, "failed admin login")
	return &LoginError{Err: ErrInvalidCredentials, RemainingAttempts: s.cfg.MaxAttempts - attempts.Failures}
}

// Validate returns the live session for token.
func (s *Service) Validate(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	sess, err := s.repo.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	if sess.Expired(s.now()) {
		_ = s.repo.DeleteSession(ctx, token)
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Logout ends the session for token.
func (s *Service) Logout(ctx context.Context, token string) error {
	sess, err := s.Validate(ctx, token)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteSession(ctx, token); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("deleting session: %w", err)
	}
	s.record(ctx, activity.TypeAdminLogout, sess.ClientKey, "admin signed out")
	return nil
}

func (s *Service) record(ctx context.Context, typ activity.ActivityType, clientKey, summary string) {
	if s.activities == nil {
		return
	}
	entry := &activity.ActivityEntry{ActivityType: typ, Actor: clientKey, Summary: summary}
	if err := s.activities.Log(ctx, entry); err != nil {
		s.logger.Warn("failed to record activity", "type", typ, "error", err)
	}
}

// newToken creates a cryptographically secure random token.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
