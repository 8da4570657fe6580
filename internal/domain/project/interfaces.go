package project

import (
	"context"

	"github.com/memad/portfolio/internal/domain/activity"
)

// Repository provides persistence for projects.
type Repository interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id string) (*Project, error)
	// Create stores proj, assigning proj.ID when it is empty.
	Create(ctx context.Context, proj *Project) error
	Update(ctx context.Context, proj *Project) error
	Delete(ctx context.Context, id string) error
}

// ActivityRepository records audit entries for project mutations.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}
