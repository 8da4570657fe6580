package presentation

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format of Presentation.Date.
const DateLayout = "2006-01-02"

// Validate checks a presentation before it is stored.
func Validate(p Presentation) error {
	if p.Title.Empty() {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !p.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidInput, p.Type)
	}
	if p.Date != "" {
		if _, err := time.Parse(DateLayout, p.Date); err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}

	switch p.Type {
	case TypeSlides:
		if len(p.Slides) == 0 {
			return fmt.Errorf("%w: slides presentation needs at least one slide", ErrInvalidInput)
		}
		for i, slide := range p.Slides {
			if err := ValidateSlide(slide); err != nil {
				return fmt.Errorf("slide %d: %w", i, err)
			}
		}
	case TypePDF:
		if isBlank(p.PDFURL) {
			return fmt.Errorf("%w: pdfUrl is required", ErrInvalidInput)
		}
	case TypeLink:
		if isBlank(p.ExternalLink) {
			return fmt.Errorf("%w: externalLink is required", ErrInvalidInput)
		}
	}
	return nil
}

// ValidateSlide checks a single slide.
func ValidateSlide(s Slide) error {
	if s.Title.Empty() {
		return fmt.Errorf("%w: slide title is required", ErrInvalidInput)
	}
	return nil
}

// ValidateOrder checks that order is a permutation of 0..n-1.
func ValidateOrder(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: order must list all %d slides", ErrInvalidInput, n)
	}
	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n || seen[idx] {
			return fmt.Errorf("%w: order is not a permutation of slide indexes", ErrInvalidInput)
		}
		seen[idx] = true
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
