package session

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidCredentials indicates a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrLockedOut indicates too many failed attempts from the client.
	ErrLockedOut = errors.New("too many failed attempts")
	// ErrSessionNotFound indicates a missing, unknown or expired token.
	ErrSessionNotFound = errors.New("session not found")
)

// LoginError carries the lockout bookkeeping of a rejected login.
type LoginError struct {
	Err               error
	RemainingAttempts int
	RetryAfter        time.Duration
}

func (e *LoginError) Error() string {
	if errors.Is(e.Err, ErrLockedOut) {
		return fmt.Sprintf("%v: retry in %s", e.Err, e.RetryAfter.Round(time.Second))
	}
	return fmt.Sprintf("%v: %d attempts remaining", e.Err, e.RemainingAttempts)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}
