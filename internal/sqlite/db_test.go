package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully and are repeatable
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)
	require.NoError(t, db.RunMigrations())

	tables := []string{
		"projects",
		"presentations",
		"activity_log",
		"meta",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestProjectStatusConstraint verifies the closed status set is enforced by the schema too
func TestProjectStatusConstraint(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO projects (id, title, description, category, status) VALUES (?, ?, ?, ?, ?)`,
		"p1", "A", "d", "Web", "archived")
	require.Error(t, err, "should fail with invalid status")
}

// TestSeed verifies the sample data is inserted exactly once
func TestSeed(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Seed(ctx))

	projects := NewProjectRepository(db)
	all, err := projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	presentations, err := NewPresentationRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, presentations, 3)

	require.NoError(t, projects.Delete(ctx, "1"))
	require.NoError(t, db.Seed(ctx))

	all, err = projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3, "deleted seed records stay deleted")
}
