package project_test

import (
	"context"
	"errors"
	"testing"

	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/domain/project"
	"github.com/memad/portfolio/internal/repository"
	"github.com/memad/portfolio/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRequest() project.CreateRequest {
	return project.CreateRequest{
		Title:        "A",
		Description:  "d",
		Category:     "Web",
		Status:       project.StatusPlanning,
		Technologies: []string{"TS"},
	}
}

func TestProjectService_CreateAssignsID(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, mock.AnythingOfType("*project.Project")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*project.Project).ID = "generated"
		}).
		Return(nil)

	svc := project.NewService(repo, nil, nil)
	proj, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	require.Equal(t, "generated", proj.ID)
	require.Equal(t, "A", proj.Title)
	require.Equal(t, project.StatusPlanning, proj.Status)
	require.Equal(t, []string{"TS"}, proj.Technologies)
}

func TestProjectService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	cases := map[string]func(*project.CreateRequest){
		"missing title":      func(r *project.CreateRequest) { r.Title = "" },
		"blank description":  func(r *project.CreateRequest) { r.Description = "   " },
		"missing category":   func(r *project.CreateRequest) { r.Category = "" },
		"missing status":     func(r *project.CreateRequest) { r.Status = "" },
		"unknown status":     func(r *project.CreateRequest) { r.Status = "archived" },
		"bad start date":     func(r *project.CreateRequest) { r.StartDate = "15/09/2023" },
		"end before start":   func(r *project.CreateRequest) { r.StartDate = "2024-02-01"; r.EndDate = "2024-01-01" },
		"malformed end date": func(r *project.CreateRequest) { r.EndDate = "soon" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &mocks.ProjectRepository{}
			svc := project.NewService(repo, nil, nil)

			req := validRequest()
			mutate(&req)
			_, err := svc.Create(ctx, req)
			require.ErrorIs(t, err, project.ErrInvalidInput)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestProjectService_CreateNormalizesTechnologies(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := project.NewService(repo, nil, nil)
	req := validRequest()
	req.Technologies = nil
	req.Team = []string{" Mostafa ", ""}

	proj, err := svc.Create(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, proj.Technologies)
	require.Empty(t, proj.Technologies)
	require.Equal(t, []string{"Mostafa"}, proj.Team)
}

func TestProjectService_GetNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "missing").Return((*project.Project)(nil), repository.ErrNotFound)

	svc := project.NewService(repo, nil, nil)
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_ReplaceIDMismatch(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	svc := project.NewService(repo, nil, nil)

	proj := project.Project{ID: "6", Title: "A", Description: "d", Category: "Web", Status: project.StatusPlanning}
	_, err := svc.Replace(ctx, "5", proj)
	require.ErrorIs(t, err, project.ErrIDMismatch)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProjectService_ReplaceMissing(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("Update", ctx, mock.Anything).Return(repository.ErrNotFound)

	svc := project.NewService(repo, nil, nil)
	proj := project.Project{ID: "9", Title: "A", Description: "d", Category: "Web", Status: project.StatusCompleted}
	_, err := svc.Replace(ctx, "9", proj)
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_DeleteRecordsActivity(t *testing.T) {
	ctx := activity.WithActor(context.Background(), "127.0.0.1")
	repo := &mocks.ProjectRepository{}
	repo.On("Delete", ctx, "1").Return(nil)

	activities := &mocks.ActivityRepository{}
	activities.On("Log", ctx, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeProjectDeleted && e.SubjectID == "1" && e.Actor == "127.0.0.1"
	})).Return(nil)

	svc := project.NewService(repo, activities, nil)
	require.NoError(t, svc.Delete(ctx, "1"))
	activities.AssertExpectations(t)
}

func TestProjectService_ActivityFailureDoesNotFailMutation(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	activities := &mocks.ActivityRepository{}
	activities.On("Log", ctx, mock.Anything).Return(errors.New("disk full"))

	svc := project.NewService(repo, activities, nil)
	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
}

func TestProjectService_StorageFaultSurfaces(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, mock.Anything).Return(repository.ErrStorage)

	svc := project.NewService(repo, nil, nil)
	_, err := svc.Create(ctx, validRequest())
	require.ErrorIs(t, err, repository.ErrStorage)
}

func TestStatusValid(t *testing.T) {
	for _, s := range project.Statuses {
		require.True(t, s.Valid(), s)
	}
	require.False(t, project.Status("archived").Valid())
}

func TestSeedProjectsAreValid(t *testing.T) {
	seed := project.SeedProjects()
	require.Len(t, seed, 4)
	for _, p := range seed {
		require.NoError(t, project.Validate(p), p.ID)
	}
	seed[0].Title = "changed"
	require.NotEqual(t, "changed", project.SeedProjects()[0].Title)
}

func TestProjectService_ListFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx).Return(nil, repository.ErrStorage)

	svc := project.NewService(repo, nil, nil)
	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, project.SeedProjects(), projects)
}

func TestProjectService_GetFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "2").Return((*project.Project)(nil), repository.ErrStorage)
	repo.On("Get", ctx, "42").Return((*project.Project)(nil), repository.ErrStorage)

	svc := project.NewService(repo, nil, nil)
	proj, err := svc.Get(ctx, "2")
	require.NoError(t, err)
	require.Equal(t, project.SeedProjects()[1], *proj)

	_, err = svc.Get(ctx, "42")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}
