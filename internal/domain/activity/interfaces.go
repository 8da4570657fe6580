package activity

import "context"

// Repository provides persistence operations for activity entries.
// List returns the newest entries first.
type Repository interface {
	Log(ctx context.Context, entry *ActivityEntry) error
	List(ctx context.Context, opts ListActivityOptions) ([]ActivityEntry, error)
}
