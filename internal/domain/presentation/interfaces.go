package presentation

import (
	"context"

	"github.com/memad/portfolio/internal/domain/activity"
)

// Repository provides persistence for presentations.
type Repository interface {
	List(ctx context.Context) ([]Presentation, error)
	Get(ctx context.Context, id string) (*Presentation, error)
	// Create stores pres, assigning pres.ID when it is empty.
	Create(ctx context.Context, pres *Presentation) error
	Update(ctx context.Context, pres *Presentation) error
	Delete(ctx context.Context, id string) error
}

// ActivityRepository records audit entries for presentation mutations.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}
