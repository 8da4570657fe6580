package presentation

import "errors"

var (
	// ErrPresentationNotFound indicates the presentation doesn't exist.
	ErrPresentationNotFound = errors.New("presentation not found")
	// ErrInvalidInput indicates invalid presentation input.
	ErrInvalidInput = errors.New("invalid presentation input")
	// ErrIDMismatch indicates the path ID and the payload ID differ.
	ErrIDMismatch = errors.New("presentation id mismatch")
	// ErrSlideNotFound indicates a slide index outside the slide list.
	ErrSlideNotFound = errors.New("slide not found")
	// ErrLastSlide indicates an attempt to remove the only slide.
	ErrLastSlide = errors.New("a slides presentation needs at least one slide")
)
