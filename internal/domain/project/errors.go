package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrIDMismatch indicates the path ID and the payload ID differ.
	ErrIDMismatch = errors.New("project id mismatch")
)
