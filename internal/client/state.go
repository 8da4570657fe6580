package client

import (
	"context"
	"sync"

	"github.com/memad/portfolio/internal/domain/presentation"
	"github.com/memad/portfolio/internal/domain/project"
)

// Snapshot is a point-in-time copy of a state holder.
type Snapshot[T any] struct {
	Items   []T
	Loading bool
	Err     error
}

// listState holds a fetched collection plus the status of the last call.
// Calls are not queued: a slow Fetch finishing after an Add overwrites the list.
type listState[T any] struct {
	mu      sync.Mutex
	items   []T
	loading bool
	err     error
	idOf    func(T) string
	clone   func(T) T
}

func (s *listState[T]) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *listState[T]) finish(err error, apply func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = err
	if err == nil && apply != nil {
		apply()
	}
	return err
}

// Snapshot returns a copy safe to read while other calls run.
func (s *listState[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]T, len(s.items))
	for i, item := range s.items {
		items[i] = s.clone(item)
	}
	return Snapshot[T]{Items: items, Loading: s.loading, Err: s.err}
}

func (s *listState[T]) replaceAll(items []T) {
	s.items = items
}

func (s *listState[T]) append(item T) {
	s.items = append(s.items, item)
}

func (s *listState[T]) replace(item T) {
	id := s.idOf(item)
	for i := range s.items {
		if s.idOf(s.items[i]) == id {
			s.items[i] = item
			return
		}
	}
}

func (s *listState[T]) remove(id string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if s.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// ProjectState is the project list as seen by one client.
type ProjectState struct {
	client *Client
	listState[project.Project]
}

// NewProjectState returns an empty state bound to c. Call Fetch to populate it.
func NewProjectState(c *Client) *ProjectState {
	return &ProjectState{
		client: c,
		listState: listState[project.Project]{
			idOf:  func(p project.Project) string { return p.ID },
			clone: project.Project.Clone,
		},
	}
}

func (s *ProjectState) Fetch(ctx context.Context) error {
	s.begin()
	items, err := s.client.ListProjects(ctx)
	return s.finish(err, func() { s.replaceAll(items) })
}

// Add creates proj on the server and appends the stored record.
func (s *ProjectState) Add(ctx context.Context, proj project.Project) (*project.Project, error) {
	s.begin()
	created, err := s.client.CreateProject(ctx, proj)
	return created, s.finish(err, func() { s.append(*created) })
}

// Update replaces proj on the server and in the local list.
func (s *ProjectState) Update(ctx context.Context, proj project.Project) (*project.Project, error) {
	s.begin()
	updated, err := s.client.ReplaceProject(ctx, proj)
	return updated, s.finish(err, func() { s.replace(*updated) })
}

func (s *ProjectState) Delete(ctx context.Context, id string) error {
	s.begin()
	err := s.client.DeleteProject(ctx, id)
	return s.finish(err, func() { s.remove(id) })
}

// PresentationState is the presentation list as seen by one client.
type PresentationState struct {
	client *Client
	listState[presentation.Presentation]
}

// NewPresentationState returns an empty state bound to c.
func NewPresentationState(c *Client) *PresentationState {
	return &PresentationState{
		client: c,
		listState: listState[presentation.Presentation]{
			idOf:  func(p presentation.Presentation) string { return p.ID },
			clone: presentation.Presentation.Clone,
		},
	}
}

func (s *PresentationState) Fetch(ctx context.Context) error {
	s.begin()
	items, err := s.client.ListPresentations(ctx)
	return s.finish(err, func() { s.replaceAll(items) })
}

func (s *PresentationState) Add(ctx context.Context, pres presentation.Presentation) (*presentation.Presentation, error) {
	s.begin()
	created, err := s.client.CreatePresentation(ctx, pres)
	return created, s.finish(err, func() { s.append(*created) })
}

func (s *PresentationState) Update(ctx context.Context, pres presentation.Presentation) (*presentation.Presentation, error) {
	s.begin()
	updated, err := s.client.ReplacePresentation(ctx, pres)
	return updated, s.finish(err, func() { s.replace(*updated) })
}

func (s *PresentationState) Delete(ctx context.Context, id string) error {
	s.begin()
	err := s.client.DeletePresentation(ctx, id)
	return s.finish(err, func() { s.remove(id) })
}
