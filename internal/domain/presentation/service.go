package presentation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/repository"
)

// Service handles presentation operations.
type Service struct {
	repo       Repository
	activities ActivityRepository
	logger     *slog.Logger
	now        func() time.Time

	// slideMu serialises the get-modify-update sequence of slide operations.
	slideMu sync.Mutex
}

// NewService creates a new presentation service. activities may be nil.
func NewService(repo Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, activities: activities, logger: logger, now: time.Now}
}

// CreateRequest defines presentation creation inputs.
type CreateRequest struct {
	Title        Text
	Description  *Text
	Type         Type
	Slides       []Slide
	PDFURL       string
	ExternalLink string
	Date         string
	ThumbnailURL string
}

// List returns every presentation in storage order. Storage faults degrade to the sample set.
func (s *Service) List(ctx context.Context) ([]Presentation, error) {
	items, err := s.repo.List(ctx)
	if errors.Is(err, repository.ErrStorage) {
		s.logger.Error("storage unavailable, serving sample presentations", "error", err)
		return SeedPresentations(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing presentations: %w", err)
	}
	if items == nil {
		items = []Presentation{}
	}
	return items, nil
}

// Get fetches a presentation by ID.
func (s *Service) Get(ctx context.Context, id string) (*Presentation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrPresentationNotFound
	}
	pres, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPresentationNotFound
		}
		if errors.Is(err, repository.ErrStorage) {
			s.logger.Error("storage unavailable, serving sample presentation", "id", id, "error", err)
			return seedPresentation(id)
		}
		return nil, fmt.Errorf("getting presentation: %w", err)
	}
	return pres, nil
}

func seedPresentation(id string) (*Presentation, error) {
	for _, item := range SeedPresentations() {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, ErrPresentationNotFound
}

// Create validates and stores a new presentation. An empty date defaults to today.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Presentation, error) {
	pres := &Presentation{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Slides:       req.Slides,
		PDFURL:       req.PDFURL,
		ExternalLink: req.ExternalLink,
		Date:         req.Date,
		ThumbnailURL: req.ThumbnailURL,
	}
	if pres.Date == "" {
		pres.Date = s.now().Format(DateLayout)
	}
	normalize(pres)
	if err := Validate(*pres); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, pres); err != nil {
		return nil, fmt.Errorf("creating presentation: %w", err)
	}

	s.record(ctx, activity.TypePresentationCreated, pres.ID, "created presentation "+pres.Title.En)
	return pres, nil
}

// Replace overwrites the presentation stored under id.
func (s *Service) Replace(ctx context.Context, id string, pres Presentation) (*Presentation, error) {
	if pres.ID != id {
		return nil, ErrIDMismatch
	}
	normalize(&pres)
	if err := Validate(pres); err != nil {
		return nil, err
	}

	s.slideMu.Lock()
	defer s.slideMu.Unlock()
	if err := s.update(ctx, &pres); err != nil {
		return nil, err
	}

	s.record(ctx, activity.TypePresentationReplaced, pres.ID, "replaced presentation "+pres.Title.En)
	return &pres, nil
}

// Delete removes a presentation by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrPresentationNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPresentationNotFound
		}
		return fmt.Errorf("deleting presentation: %w", err)
	}

	s.record(ctx, activity.TypePresentationDeleted, id, "deleted presentation "+id)
	return nil
}

// AddSlide appends a slide to a slides presentation.
func (s *Service) AddSlide(ctx context.Context, id string, slide Slide) (*Presentation, error) {
	if err := ValidateSlide(slide); err != nil {
		return nil, err
	}
	return s.editSlides(ctx, id, func(slides []Slide) ([]Slide, error) {
		return append(slides, slide), nil
	})
}

// UpdateSlide replaces the slide at index.
func (s *Service) UpdateSlide(ctx context.Context, id string, index int, slide Slide) (*Presentation, error) {
	if err := ValidateSlide(slide); err != nil {
		return nil, err
	}
	return s.editSlides(ctx, id, func(slides []Slide) ([]Slide, error) {
		if index < 0 || index >= len(slides) {
			return nil, ErrSlideNotFound
		}
		slides[index] = slide
		return slides, nil
	})
}

// DeleteSlide removes the slide at index. The last remaining slide cannot be removed.
func (s *Service) DeleteSlide(ctx context.Context, id string, index int) (*Presentation, error) {
	return s.editSlides(ctx, id, func(slides []Slide) ([]Slide, error) {
		if index < 0 || index >= len(slides) {
			return nil, ErrSlideNotFound
		}
		if len(slides) == 1 {
			return nil, ErrLastSlide
		}
		return append(slides[:index], slides[index+1:]...), nil
	})
}

// ReorderSlides rearranges slides so that position i holds the slide previously at order[i].
func (s *Service) ReorderSlides(ctx context.Context, id string, order []int) (*Presentation, error) {
	return s.editSlides(ctx, id, func(slides []Slide) ([]Slide, error) {
		if err := ValidateOrder(order, len(slides)); err != nil {
			return nil, err
		}
		out := make([]Slide, len(slides))
		for i, idx := range order {
			out[i] = slides[idx]
		}
		return out, nil
	})
}

func (s *Service) editSlides(ctx context.Context, id string, edit func([]Slide) ([]Slide, error)) (*Presentation, error) {
	s.slideMu.Lock()
	defer s.slideMu.Unlock()

	pres, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if pres.Type != TypeSlides {
		return nil, fmt.Errorf("%w: presentation %s is not a slides presentation", ErrInvalidInput, id)
	}

	slides, err := edit(append([]Slide{}, pres.Slides...))
	if err != nil {
		return nil, err
	}
	pres.Slides = slides

	if err := s.update(ctx, pres); err != nil {
		return nil, err
	}
	s.record(ctx, activity.TypePresentationReplaced, pres.ID, "edited slides of "+pres.Title.En)
	return pres, nil
}

func (s *Service) update(ctx context.Context, pres *Presentation) error {
	if err := s.repo.Update(ctx, pres); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPresentationNotFound
		}
		return fmt.Errorf("replacing presentation: %w", err)
	}
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

// normalize clears the payload fields that do not belong to the presentation type.
func normalize(p *Presentation) {
	p.Type = Type(strings.TrimSpace(string(p.Type)))
	if p.Description != nil && p.Description.Empty() {
		p.Description = nil
	}
	switch p.Type {
	case TypeSlides:
		p.PDFURL = ""
		p.ExternalLink = ""
	case TypePDF:
		p.Slides = nil
		p.ExternalLink = ""
	case TypeLink:
		p.Slides = nil
		p.PDFURL = ""
	}
}
