package filestore

import (
	"context"
	"log/slog"

	"github.com/memad/portfolio/internal/domain/presentation"
)

// PresentationRepository implements presentation.Repository over presentations.json.
type PresentationRepository struct {
	c *collection[presentation.Presentation]
}

func newPresentationRepository(b blob, logger *slog.Logger) *PresentationRepository {
	return &PresentationRepository{c: &collection[presentation.Presentation]{
		blob:   b,
		key:    "presentations",
		seed:   presentation.SeedPresentations,
		idOf:   func(p *presentation.Presentation) string { return p.ID },
		setID:  func(p *presentation.Presentation, id string) { p.ID = id },
		logger: logger,
	}}
}

func (r *PresentationRepository) List(_ context.Context) ([]presentation.Presentation, error) {
	return r.c.list(), nil
}

func (r *PresentationRepository) Get(_ context.Context, id string) (*presentation.Presentation, error) {
	pres, err := r.c.get(id)
	if err != nil {
		return nil, err
	}
	return &pres, nil
}

func (r *PresentationRepository) Create(_ context.Context, pres *presentation.Presentation) error {
	saved, err := r.c.insert(*pres)
	if err != nil {
		return err
	}
	pres.ID = saved.ID
	return nil
}

func (r *PresentationRepository) Update(_ context.Context, pres *presentation.Presentation) error {
	return r.c.replace(*pres)
}

func (r *PresentationRepository) Delete(_ context.Context, id string) error {
	return r.c.remove(id)
}
