package filestore

import (
	"context"
	"log/slog"

	"github.com/memad/portfolio/internal/domain/project"
)

// ProjectRepository implements project.Repository over projects.json.
type ProjectRepository struct {
	c *collection[project.Project]
}

func newProjectRepository(b blob, logger *slog.Logger) *ProjectRepository {
	return &ProjectRepository{c: &collection[project.Project]{
		blob:   b,
		key:    "projects",
		seed:   project.SeedProjects,
		idOf:   func(p *project.Project) string { return p.ID },
		setID:  func(p *project.Project, id string) { p.ID = id },
		logger: logger,
	}}
}

// List returns all projects. A faulty document yields the seed projects, never an error.
func (r *ProjectRepository) List(_ context.Context) ([]project.Project, error) {
	return r.c.list(), nil
}

func (r *ProjectRepository) Get(_ context.Context, id string) (*project.Project, error) {
	proj, err := r.c.get(id)
	if err != nil {
		return nil, err
	}
	return &proj, nil
}

// Create stores proj and writes the assigned ID back into it.
func (r *ProjectRepository) Create(_ context.Context, proj *project.Project) error {
	saved, err := r.c.insert(*proj)
	if err != nil {
		return err
	}
	proj.ID = saved.ID
	return nil
}

func (r *ProjectRepository) Update(_ context.Context, proj *project.Project) error {
	return r.c.replace(*proj)
}

func (r *ProjectRepository) Delete(_ context.Context, id string) error {
	return r.c.remove(id)
}
