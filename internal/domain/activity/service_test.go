package activity_test

import (
	"context"
	"testing"

	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_LogActivitySetsTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ActivityRepository{}
	repo.On("Log", ctx, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return !e.CreatedAt.IsZero()
	})).Return(nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.LogActivity(ctx, &activity.ActivityEntry{ActivityType: activity.TypeProjectCreated}))
	repo.AssertExpectations(t)
}

func TestActivityService_LogActivityRequiresType(t *testing.T) {
	svc := activity.NewService(&mocks.ActivityRepository{}, nil)
	require.ErrorIs(t, svc.LogActivity(context.Background(), &activity.ActivityEntry{}), activity.ErrInvalidInput)
	require.ErrorIs(t, svc.LogActivity(context.Background(), nil), activity.ErrInvalidInput)
}

func TestActivityService_GetRecentActivityDefaultsLimit(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ActivityRepository{}
	repo.On("List", ctx, activity.ListActivityOptions{Limit: activity.DefaultListLimit}).
		Return([]activity.ActivityEntry{{ID: "a"}}, nil)

	svc := activity.NewService(repo, nil)
	entries, err := svc.GetRecentActivity(ctx, activity.ListActivityOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestActorContext(t *testing.T) {
	require.Empty(t, activity.ActorFromContext(context.Background()))
	ctx := activity.WithActor(context.Background(), "admin")
	require.Equal(t, "admin", activity.ActorFromContext(ctx))
}
