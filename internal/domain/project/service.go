package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/repository"
)

// Service handles project operations.
type Service struct {
	repo       Repository
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new project service. activities may be nil.
func NewService(repo Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, activities: activities, logger: logger}
}

// CreateRequest defines project creation inputs. The ID is always assigned by storage.
type CreateRequest struct {
	Title        string
	Description  string
	Category     string
	Status       Status
	Technologies []string
	StartDate    string
	EndDate      string
	Team         []string
	ImageURL     string
}

// List returns every project in storage order. Storage faults degrade to the sample set.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	projects, err := s.repo.List(ctx)
	if errors.Is(err, repository.ErrStorage) {
		s.logger.Error("storage unavailable, serving sample projects", "error", err)
		return SeedProjects(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	if projects == nil {
		projects = []Project{}
	}
	return projects, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrProjectNotFound
	}
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		if errors.Is(err, repository.ErrStorage) {
			s.logger.Error("storage unavailable, serving sample project", "id", id, "error", err)
			return seedProject(id)
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

func seedProject(id string) (*Project, error) {
	for _, item := range SeedProjects() {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, ErrProjectNotFound
}

// Create validates and stores a new project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	proj := &Project{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Status:       req.Status,
		Technologies: req.Technologies,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Team:         req.Team,
		ImageURL:     req.ImageURL,
	}
	normalize(proj)
	if err := Validate(*proj); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.record(ctx, activity.TypeProjectCreated, proj.ID, "created project "+proj.Title)
	return proj, nil
}

// Replace overwrites the project stored under id with proj.
// The payload must carry the same ID; unknown IDs are never created.
func (s *Service) Replace(ctx context.Context, id string, proj Project) (*Project, error) {
	if proj.ID != id {
		return nil, ErrIDMismatch
	}
	normalize(&proj)
	if err := Validate(proj); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &proj); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("replacing project: %w", err)
	}

	s.record(ctx, activity.TypeProjectReplaced, proj.ID, "replaced project "+proj.Title)
	return &proj, nil
}

// Delete removes a project by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrProjectNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}

	s.record(ctx, activity.TypeProjectDeleted, id, "deleted project "+id)
	return nil
}

func (s *Service) record(ctx context.Context, typ activity.ActivityType, subjectID, summary string) {
	if s.activities == nil {
		return
	}
	entry := &activity.ActivityEntry{
		ActivityType: typ,
		SubjectID:    subjectID,
		Actor:        activity.ActorFromContext(ctx),
		Summary:      summary,
	}
	if err := s.activities.Log(ctx, entry); err != nil {
		s.logger.Warn("failed to record activity", "type", typ, "subject_id", subjectID, "error", err)
	}
}

func normalize(p *Project) {
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)
	p.Status = Status(strings.TrimSpace(string(p.Status)))
	p.Technologies = compact(p.Technologies)
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	p.Team = compact(p.Team)
}

// compact trims entries and drops blanks, keeping order.
func compact(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
