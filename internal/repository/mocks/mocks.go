package mocks

import (
	"context"

	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/domain/presentation"
	"github.com/memad/portfolio/internal/domain/project"
	"github.com/memad/portfolio/internal/domain/session"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// PresentationRepository is a mock for presentation.Repository.
type PresentationRepository struct {
	mock.Mock
}

func (m *PresentationRepository) List(ctx context.Context) ([]presentation.Presentation, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]presentation.Presentation); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PresentationRepository) Get(ctx context.Context, id string) (*presentation.Presentation, error) {
	args := m.Called(ctx, id)
	if pres, ok := args.Get(0).(*presentation.Presentation); ok {
		return pres, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PresentationRepository) Create(ctx context.Context, pres *presentation.Presentation) error {
	args := m.Called(ctx, pres)
	return args.Error(0)
}

func (m *PresentationRepository) Update(ctx context.Context, pres *presentation.Presentation) error {
	args := m.Called(ctx, pres)
	return args.Error(0)
}

func (m *PresentationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SessionRepository is a mock for session.Repository.
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) CreateSession(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *SessionRepository) GetSession(ctx context.Context, token string) (*session.Session, error) {
	args := m.Called(ctx, token)
	if sess, ok := args.Get(0).(*session.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionRepository) DeleteSession(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *SessionRepository) GetAttempts(ctx context.Context, clientKey string) (session.Attempts, error) {
	args := m.Called(ctx, clientKey)
	return args.Get(0).(session.Attempts), args.Error(1)
}

func (m *SessionRepository) SaveAttempts(ctx context.Context, attempts session.Attempts) error {
	args := m.Called(ctx, attempts)
	return args.Error(0)
}

func (m *SessionRepository) ResetAttempts(ctx context.Context, clientKey string) error {
	args := m.Called(ctx, clientKey)
	return args.Error(0)
}
