package filestore

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/memad/portfolio/internal/domain/activity"
)

// MaxActivityEntries bounds activity.json; older entries are dropped first.
const MaxActivityEntries = 500

// ActivityRepository implements activity.Repository over activity.json.
type ActivityRepository struct {
	c *collection[activity.ActivityEntry]
}

func newActivityRepository(b blob, logger *slog.Logger) *ActivityRepository {
	return &ActivityRepository{c: &collection[activity.ActivityEntry]{
		blob:   b,
		key:    "activity",
		seed:   func() []activity.ActivityEntry { return []activity.ActivityEntry{} },
		idOf:   func(e *activity.ActivityEntry) string { return e.ID },
		setID:  func(e *activity.ActivityEntry, id string) { e.ID = id },
		logger: logger,
	}}
}

// Log appends entry, assigning its ID and timestamp when missing.
func (r *ActivityRepository) Log(_ context.Context, entry *activity.ActivityEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return r.c.update(func(entries []activity.ActivityEntry) []activity.ActivityEntry {
		entries = append(entries, *entry)
		if len(entries) > MaxActivityEntries {
			entries = entries[len(entries)-MaxActivityEntries:]
		}
		return entries
	})
}

// List returns entries newest first.
func (r *ActivityRepository) List(_ context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	entries := r.c.list()
	out := make([]activity.ActivityEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		if opts.ActivityType != nil && entries[i].ActivityType != *opts.ActivityType {
			continue
		}
		out = append(out, entries[i])
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}
