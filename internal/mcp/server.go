package mcp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/domain/presentation"
	"github.com/memad/portfolio/internal/domain/project"
	"github.com/memad/portfolio/internal/domain/session"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	List(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Replace(ctx context.Context, id string, proj project.Project) (*project.Project, error)
	Delete(ctx context.Context, id string) error
}

// PresentationService defines presentation operations needed by MCP.
type PresentationService interface {
	List(ctx context.Context) ([]presentation.Presentation, error)
	Get(ctx context.Context, id string) (*presentation.Presentation, error)
	Delete(ctx context.Context, id string) error
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// SessionResolver validates admin bearer tokens.
type SessionResolver interface {
	Enabled() bool
	Validate(ctx context.Context, token string) (*session.Session, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects      ProjectService
	Presentations PresentationService
	Activity      ActivityService
}

// Config contains server configuration.
type Config struct {
	Services Services
	// Resolver gates mutating tools. Nil or disabled leaves every caller admin.
	Resolver SessionResolver
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "portfolio",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	// Later middleware wraps earlier, so auth runs before traffic logging sees the actor.
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddReceivingMiddleware(authMiddleware(cfg.Resolver))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}

// NewHTTPHandler serves server over the streamable HTTP transport.
func NewHTTPHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
		},
	)
}
