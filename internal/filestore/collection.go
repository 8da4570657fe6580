package filestore

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/memad/portfolio/internal/repository"
)

// collection is one flat list of records persisted as a single JSON document.
// Every operation holds mu across the whole read-modify-write.
type collection[T any] struct {
	mu     sync.Mutex
	blob   blob
	key    string
	seed   func() []T
	idOf   func(*T) string
	setID  func(*T, string)
	logger *slog.Logger
}

// load reads the document, seeding it on first use.
// Faults are returned wrapped in repository.ErrStorage.
func (c *collection[T]) load() ([]T, error) {
	data, err := c.blob.read()
	if isNotExist(err) {
		items := c.seed()
		if err := c.save(items); err != nil {
			return items, err
		}
		c.logger.Info("seeded storage", "document", c.blob.String(), "records", len(items))
		return items, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", repository.ErrStorage, c.blob, err)
	}

	items, err := decodeDocument[T](c.key, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrStorage, c.blob, err)
	}
	return items, nil
}

func (c *collection[T]) save(items []T) error {
	data, err := encodeDocument(c.key, items)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrStorage, err)
	}
	if err := c.blob.write(data); err != nil {
		return fmt.Errorf("%w: writing %s: %v", repository.ErrStorage, c.blob, err)
	}
	return nil
}

// readable returns the stored records, or the seed set when storage is faulty.
func (c *collection[T]) readable() []T {
	items, err := c.load()
	if err != nil {
		c.logger.Error("storage read failed, serving seed data", "document", c.blob.String(), "error", err)
		return c.seed()
	}
	return items
}

func (c *collection[T]) list() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readable()
}

func (c *collection[T]) get(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.readable()
	if i := c.indexOf(items, id); i >= 0 {
		return items[i], nil
	}
	var zero T
	return zero, repository.ErrNotFound
}

// insert appends item, assigning a random ID when it has none.
func (c *collection[T]) insert(item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return item, err
	}
	if c.idOf(&item) == "" {
		c.setID(&item, uuid.NewString())
	} else if c.indexOf(items, c.idOf(&item)) >= 0 {
		return item, repository.ErrConflict
	}

	if err := c.save(append(items, item)); err != nil {
		return item, err
	}
	return item, nil
}

// replace overwrites the record with the same ID. Unknown IDs are never inserted.
func (c *collection[T]) replace(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}
	i := c.indexOf(items, c.idOf(&item))
	if i < 0 {
		return repository.ErrNotFound
	}
	items[i] = item
	return c.save(items)
}

func (c *collection[T]) remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}
	i := c.indexOf(items, id)
	if i < 0 {
		return repository.ErrNotFound
	}
	return c.save(append(items[:i], items[i+1:]...))
}

// update applies fn to the full record set and persists the result.
func (c *collection[T]) update(fn func([]T) []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}
	return c.save(fn(items))
}

func (c *collection[T]) indexOf(items []T, id string) int {
	for i := range items {
		if c.idOf(&items[i]) == id {
			return i
		}
	}
	return -1
}
