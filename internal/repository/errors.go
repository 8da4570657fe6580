package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an entity with the same ID already exists
	ErrConflict = errors.New("conflict: entity already exists")

	// ErrStorage is returned when a mutation could not be durably persisted
	ErrStorage = errors.New("storage unavailable")
)
