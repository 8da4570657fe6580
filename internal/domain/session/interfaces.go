package session

import (
	"context"

	"github.com/memad/portfolio/internal/domain/activity"
)

// Repository stores admin sessions and failed-login counters.
type Repository interface {
	CreateSession(ctx context.Context, sess *Session) error
	GetSession(ctx context.Context, token string) (*Session, error)
	DeleteSession(ctx context.Context, token string) error
	// GetAttempts returns a zero Attempts for unknown clients.
	GetAttempts(ctx context.Context, clientKey string) (Attempts, error)
	SaveAttempts(ctx context.Context, attempts Attempts) error
	ResetAttempts(ctx context.Context, clientKey string) error
}

// ActivityRepository records login events.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}
