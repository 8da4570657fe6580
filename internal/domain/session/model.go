package session

import "time"

// Session is an authenticated admin session identified by an opaque token.
type Session struct {
	Token     string    `json:"token"`
	ClientKey string    `json:"client_key"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Attempts tracks failed logins from one client.
type Attempts struct {
	ClientKey   string    `json:"client_key"`
	Failures    int       `json:"failures"`
	LockedUntil time.Time `json:"locked_until"`
}

// Locked reports whether the client is locked out at now.
func (a Attempts) Locked(now time.Time) bool {
	return now.Before(a.LockedUntil)
}

// Config controls the admin gate.
type Config struct {
	// PasswordHash is a bcrypt hash. An empty hash disables the gate.
	PasswordHash string
	SessionTTL   time.Duration
	MaxAttempts  int
	Lockout      time.Duration
}

const (
	DefaultSessionTTL  = 24 * time.Hour
	DefaultMaxAttempts = 5
	DefaultLockout     = 15 * time.Minute
)

func (c Config) withDefaults() Config {
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.Lockout <= 0 {
		c.Lockout = DefaultLockout
	}
	return c
}
