package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memad/portfolio/internal/client"
	"github.com/memad/portfolio/internal/domain/presentation"
	"github.com/memad/portfolio/internal/domain/project"
	"github.com/memad/portfolio/internal/testserver"
)

func sampleProject(title string) project.Project {
	return project.Project{
		Title:        title,
		Description:  "Built from the CLI",
		Category:     "Tooling",
		Status:       project.StatusPlanning,
		Technologies: []string{"Go"},
		StartDate:    "2025-04-01",
	}
}

func TestClient_ProjectCRUD(t *testing.T) {
	ts := testserver.New(t, testserver.Options{Password: "hunter2"})
	ctx := context.Background()
	c := client.New(ts.Server.URL + "/")

	projects, err := c.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 4)

	_, err = c.CreateProject(ctx, sampleProject("Denied"))
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)

	_, _, err = c.Login(ctx, "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, c.Token())

	created, err := c.CreateProject(ctx, sampleProject("CLI"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	created.Status = project.StatusCompleted
	created.EndDate = "2025-05-01"
	updated, err := c.ReplaceProject(ctx, *created)
	require.NoError(t, err)
	require.Equal(t, project.StatusCompleted, updated.Status)

	require.NoError(t, c.DeleteProject(ctx, created.ID))
	_, err = c.GetProject(ctx, created.ID)
	require.True(t, client.IsNotFound(err))

	entries, err := c.RecentActivity(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.NoError(t, c.Logout(ctx))
	require.Empty(t, c.Token())
}

func TestClient_LoginErrors(t *testing.T) {
	ts := testserver.New(t, testserver.Options{Password: "hunter2"})
	ctx := context.Background()
	c := client.New(ts.Server.URL)

	_, _, err := c.Login(ctx, "wrong")
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.NotNil(t, apiErr.RemainingAttempts)
	require.Equal(t, 4, *apiErr.RemainingAttempts)

	for i := 0; i < 4; i++ {
		_, _, err = c.Login(ctx, "wrong")
	}
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	require.Positive(t, apiErr.RetryAfter)
}

func TestClient_PlainErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := client.New(srv.URL).ListProjects(context.Background())
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestProjectState(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})
	ctx := context.Background()
	state := client.NewProjectState(client.New(ts.Server.URL))

	require.Empty(t, state.Snapshot().Items)
	require.NoError(t, state.Fetch(ctx))
	require.Len(t, state.Snapshot().Items, 4)

	created, err := state.Add(ctx, sampleProject("State"))
	require.NoError(t, err)
	snap := state.Snapshot()
	require.Len(t, snap.Items, 5)
	require.Equal(t, created.ID, snap.Items[4].ID)
	require.False(t, snap.Loading)

	created.Title = "State renamed"
	_, err = state.Update(ctx, *created)
	require.NoError(t, err)
	require.Equal(t, "State renamed", state.Snapshot().Items[4].Title)

	require.NoError(t, state.Delete(ctx, "1"))
	snap = state.Snapshot()
	require.Len(t, snap.Items, 4)
	require.Equal(t, "2", snap.Items[0].ID)

	err = state.Delete(ctx, "1")
	require.True(t, client.IsNotFound(err))
	snap = state.Snapshot()
	require.Len(t, snap.Items, 4, "failed calls leave the list alone")
	require.ErrorIs(t, snap.Err, err)

	snap.Items[0].Title = "mutated"
	require.NotEqual(t, "mutated", state.Snapshot().Items[0].Title)
}

func TestPresentationState(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})
	ctx := context.Background()
	state := client.NewPresentationState(client.New(ts.Server.URL))

	require.NoError(t, state.Fetch(ctx))
	before := len(state.Snapshot().Items)

	created, err := state.Add(ctx, presentation.Presentation{
		Title:        presentation.Text{En: "Talk"},
		Type:         presentation.TypeLink,
		Date:         "2025-05-05",
		ExternalLink: "https://example.com/talk",
	})
	require.NoError(t, err)
	require.Len(t, state.Snapshot().Items, before+1)

	created.Title.Ar = "محاضرة"
	_, err = state.Update(ctx, *created)
	require.NoError(t, err)

	require.NoError(t, state.Delete(ctx, created.ID))
	require.Len(t, state.Snapshot().Items, before)
}
