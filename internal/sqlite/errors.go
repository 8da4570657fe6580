package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/memad/portfolio/internal/repository"
)

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// storageError marks err as a storage fault.
func storageError(op string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", op, repository.ErrStorage, err)
}

// jsonColumn encodes list columns. nil encodes as an empty list.
func jsonColumn[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
