package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/memad/portfolio/internal/domain/project"
	"github.com/memad/portfolio/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, title, description, category, status, technologies, start_date, end_date, team, image_url`

// Create inserts a project, assigning a random ID when it has none
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	if proj.ID == "" {
		proj.ID = uuid.NewString()
	}
	return insertProject(ctx, r.db, proj)
}

func insertProject(ctx context.Context, db execer, proj *project.Project) error {
	technologies, err := jsonColumn(proj.Technologies)
	if err != nil {
		return fmt.Errorf("failed to encode technologies: %w", err)
	}
	team, err := jsonColumn(proj.Team)
	if err != nil {
		return fmt.Errorf("failed to encode team: %w", err)
	}

	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = db.ExecContext(ctx, query,
		proj.ID,
		proj.Title,
		proj.Description,
		proj.Category,
		proj.Status,
		technologies,
		proj.StartDate,
		proj.EndDate,
		team,
		proj.ImageURL,
	)
	if isUniqueViolation(err) {
		return repository.ErrConflict
	}
	if err != nil {
		return storageError("create project", err)
	}
	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	proj, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, storageError("get project", err)
	}
	return proj, nil
}

// List returns all projects in insertion order
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY rowid`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageError("list projects", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, storageError("scan project", err)
		}
		projects = append(projects, *proj)
	}

	if err = rows.Err(); err != nil {
		return nil, storageError("iterate project rows", err)
	}

	return projects, nil
}

// Update replaces every field of an existing project
func (r *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	technologies, err := jsonColumn(proj.Technologies)
	if err != nil {
		return fmt.Errorf("failed to encode technologies: %w", err)
	}
	team, err := jsonColumn(proj.Team)
	if err != nil {
		return fmt.Errorf("failed to encode team: %w", err)
	}

	query := `
		UPDATE projects
		SET title = ?, description = ?, category = ?, status = ?, technologies = ?,
		    start_date = ?, end_date = ?, team = ?, image_url = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		proj.Title,
		proj.Description,
		proj.Category,
		proj.Status,
		technologies,
		proj.StartDate,
		proj.EndDate,
		team,
		proj.ImageURL,
		proj.ID,
	)
	if err != nil {
		return storageError("update project", err)
	}

	return requireRow(result)
}

// Delete removes a project by ID
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return storageError("delete project", err)
	}
	return requireRow(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var proj project.Project
	var technologies, team string
	err := row.Scan(
		&proj.ID,
		&proj.Title,
		&proj.Description,
		&proj.Category,
		&proj.Status,
		&technologies,
		&proj.StartDate,
		&proj.EndDate,
		&team,
		&proj.ImageURL,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(technologies), &proj.Technologies); err != nil {
		return nil, fmt.Errorf("decoding technologies: %w", err)
	}
	if err := json.Unmarshal([]byte(team), &proj.Team); err != nil {
		return nil, fmt.Errorf("decoding team: %w", err)
	}
	if len(proj.Team) == 0 {
		proj.Team = nil
	}
	return &proj, nil
}

func requireRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError("get rows affected", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
