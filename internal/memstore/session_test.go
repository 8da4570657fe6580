package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/memad/portfolio/internal/domain/session"
	"github.com/memad/portfolio/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	sess := &session.Session{Token: "abc", ClientKey: "10.0.0.1", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.CreateSession(ctx, sess))
	require.ErrorIs(t, repo.CreateSession(ctx, sess), repository.ErrConflict)

	got, err := repo.GetSession(ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, "10.0.0.1", got.ClientKey)

	require.NoError(t, repo.DeleteSession(ctx, "abc"))
	_, err = repo.GetSession(ctx, "abc")
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, repo.DeleteSession(ctx, "abc"), repository.ErrNotFound)
}

func TestSessionRepository_Attempts(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	a, err := repo.GetAttempts(ctx, "client")
	require.NoError(t, err)
	require.Equal(t, 0, a.Failures)
	require.Equal(t, "client", a.ClientKey)

	require.NoError(t, repo.SaveAttempts(ctx, session.Attempts{ClientKey: "client", Failures: 3}))
	a, err = repo.GetAttempts(ctx, "client")
	require.NoError(t, err)
	require.Equal(t, 3, a.Failures)

	require.NoError(t, repo.ResetAttempts(ctx, "client"))
	a, err = repo.GetAttempts(ctx, "client")
	require.NoError(t, err)
	require.Equal(t, 0, a.Failures)
}

func TestSessionRepository_CreatePurgesExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateSession(ctx, &session.Session{Token: "old", CreatedAt: now.Add(-25 * time.Hour), ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.CreateSession(ctx, &session.Session{Token: "live", CreatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repo.CreateSession(ctx, &session.Session{Token: "new", CreatedAt: now, ExpiresAt: now.Add(24 * time.Hour)}))

	_, err := repo.GetSession(ctx, "old")
	require.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.GetSession(ctx, "live")
	require.NoError(t, err)
}
