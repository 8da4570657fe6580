// Package app assembles the portfolio services, storage backend and HTTP router from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/memad/portfolio/internal/config"
	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/domain/presentation"
	"github.com/memad/portfolio/internal/domain/project"
	"github.com/memad/portfolio/internal/domain/session"
	"github.com/memad/portfolio/internal/filestore"
	"github.com/memad/portfolio/internal/mcp"
	"github.com/memad/portfolio/internal/memstore"
	"github.com/memad/portfolio/internal/sqlite"
	"github.com/memad/portfolio/internal/transport"
)

// App is a fully wired portfolio server.
type App struct {
	Handler http.Handler
	// MCP is nil when the tool surface is disabled.
	MCP *sdkmcp.Server

	Projects      *project.Service
	Presentations *presentation.Service
	Sessions      *session.Service
	Activity      *activity.Service

	closers []func() error
}

type repositories struct {
	projects      project.Repository
	presentations presentation.Repository
	activity      activity.Repository
}

// New opens the configured backend and builds the router.
func New(ctx context.Context, cfg config.Config, version string, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	proxies, err := cfg.Server.TrustedProxyPrefixes()
	if err != nil {
		return nil, err
	}

	a := &App{}
	repos, err := a.openStore(ctx, cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	a.Activity = activity.NewService(repos.activity, logger)
	a.Projects = project.NewService(repos.projects, a.Activity, logger)
	a.Presentations = presentation.NewService(repos.presentations, a.Activity, logger)
	a.Sessions = session.NewService(memstore.NewSessionRepository(), a.Activity, session.Config{
		PasswordHash: cfg.Admin.PasswordHash,
		SessionTTL:   cfg.Admin.SessionTTL,
		MaxAttempts:  cfg.Admin.MaxAttempts,
		Lockout:      cfg.Admin.Lockout,
	}, logger)

	if !a.Sessions.Enabled() {
		logger.Warn("admin password hash not configured, mutations are open to everyone")
	}

	opts := transport.Options{
		Logger:         logger,
		SecureCookies:  cfg.Server.SecureCookies,
		TrustedProxies: proxies,
	}
	if cfg.MCP.Enabled {
		a.MCP = mcp.NewServer(mcp.Config{
			Services: mcp.Services{
				Projects:      a.Projects,
				Presentations: a.Presentations,
				Activity:      a.Activity,
			},
			Resolver: a.Sessions,
			Version:  version,
			Logger:   logger,
		})
		opts.MCP = mcp.NewHTTPHandler(a.MCP)
	}

	a.Handler = transport.NewServer(transport.Services{
		Projects:      a.Projects,
		Presentations: a.Presentations,
		Sessions:      a.Sessions,
		Activity:      a.Activity,
	}, opts)

	return a, nil
}

func (a *App) openStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (repositories, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		store := filestore.OpenMemory(logger)
		logger.Info("using in-memory store")
		return fileRepositories(store), nil

	case config.BackendSQLite:
		if err := ensureDBDir(cfg.SQLitePath); err != nil {
			return repositories{}, fmt.Errorf("prepare database path: %w", err)
		}
		db, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return repositories{}, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return repositories{}, err
		}
		if err := db.Seed(ctx); err != nil {
			db.Close()
			return repositories{}, err
		}
		a.closers = append(a.closers, db.Close)
		logger.Info("using sqlite store", "path", cfg.SQLitePath)
		return repositories{
			projects:      sqlite.NewProjectRepository(db),
			presentations: sqlite.NewPresentationRepository(db),
			activity:      sqlite.NewActivityRepository(db),
		}, nil

	default:
		store := filestore.Open(filestore.Options{
			DataDir:     cfg.DataDir,
			FallbackDir: cfg.FallbackDir,
			Logger:      logger,
		})
		if !store.InMemory() {
			logger.Info("using file store", "dir", store.Dir())
		}
		return fileRepositories(store), nil
	}
}

func fileRepositories(store *filestore.Store) repositories {
	return repositories{
		projects:      store.Projects(),
		presentations: store.Presentations(),
		activity:      store.Activity(),
	}
}

// Close releases the storage backend.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
