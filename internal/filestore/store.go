// Package filestore persists portfolio records as flat JSON documents, one file per collection.
package filestore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	projectsFile      = "projects.json"
	presentationsFile = "presentations.json"
	activityFile      = "activity.json"
)

// Options configures where documents are stored.
type Options struct {
	// DataDir is the preferred directory. Defaults to "data".
	DataDir string
	// FallbackDir is used when DataDir is not writable, as on read-only hosts.
	FallbackDir string
	Logger      *slog.Logger
}

// Store owns the repositories backed by one directory or by memory.
type Store struct {
	dir    string
	logger *slog.Logger

	projects      *ProjectRepository
	presentations *PresentationRepository
	activity      *ActivityRepository
}

// Open prepares a writable data directory. When neither DataDir nor FallbackDir can be written
// the store degrades to memory only and logs an error, so the site keeps serving seed data.
func Open(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.DataDir == "" {
		opts.DataDir = "data"
	}

	dir, err := prepareDir(opts.DataDir)
	if err != nil && opts.FallbackDir != "" {
		logger.Warn("data directory not writable, using fallback", "dir", opts.DataDir, "fallback", opts.FallbackDir, "error", err)
		dir, err = prepareDir(opts.FallbackDir)
	}
	if err != nil {
		logger.Error("no writable data directory, records will not survive a restart", "error", err)
		return OpenMemory(logger)
	}

	logger.Info("file store ready", "dir", dir)
	return newStore(dir, logger, func(name string) blob {
		return fileBlob{path: filepath.Join(dir, name)}
	})
}

// OpenMemory returns a store that keeps every document in process memory.
func OpenMemory(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return newStore("", logger, func(name string) blob {
		return &memBlob{name: name}
	})
}

func newStore(dir string, logger *slog.Logger, open func(name string) blob) *Store {
	return &Store{
		dir:           dir,
		logger:        logger,
		projects:      newProjectRepository(open(projectsFile), logger),
		presentations: newPresentationRepository(open(presentationsFile), logger),
		activity:      newActivityRepository(open(activityFile), logger),
	}
}

// Dir returns the directory in use, or "" for a memory store.
func (s *Store) Dir() string {
	return s.dir
}

// InMemory reports whether records are kept only in memory.
func (s *Store) InMemory() bool {
	return s.dir == ""
}

func (s *Store) Projects() *ProjectRepository {
	return s.projects
}

func (s *Store) Presentations() *PresentationRepository {
	return s.presentations
}

func (s *Store) Activity() *ActivityRepository {
	return s.activity
}

// prepareDir creates dir and checks that files can be created in it.
func prepareDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", abs, err)
	}
	probe, err := os.CreateTemp(abs, ".probe-*")
	if err != nil {
		return "", fmt.Errorf("%s is not writable: %w", abs, err)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return abs, nil
}
