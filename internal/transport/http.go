package transport

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/domain/presentation"
	"github.com/memad/portfolio/internal/domain/project"
	"github.com/memad/portfolio/internal/domain/session"
)

// ProjectService is the project API consumed by the handlers.
type ProjectService interface {
	List(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Replace(ctx context.Context, id string, proj project.Project) (*project.Project, error)
	Delete(ctx context.Context, id string) error
}

// PresentationService is the presentation API consumed by the handlers.
type PresentationService interface {
	List(ctx context.Context) ([]presentation.Presentation, error)
	Get(ctx context.Context, id string) (*presentation.Presentation, error)
	Create(ctx context.Context, req presentation.CreateRequest) (*presentation.Presentation, error)
	Replace(ctx context.Context, id string, pres presentation.Presentation) (*presentation.Presentation, error)
	Delete(ctx context.Context, id string) error
	AddSlide(ctx context.Context, id string, slide presentation.Slide) (*presentation.Presentation, error)
	UpdateSlide(ctx context.Context, id string, index int, slide presentation.Slide) (*presentation.Presentation, error)
	DeleteSlide(ctx context.Context, id string, index int) (*presentation.Presentation, error)
	ReorderSlides(ctx context.Context, id string, order []int) (*presentation.Presentation, error)
}

// SessionService is the admin gate.
type SessionService interface {
	SessionResolver
	Login(ctx context.Context, clientKey, password string) (*session.Session, error)
	Logout(ctx context.Context, token string) error
}

// ActivityService exposes the audit log.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Services groups the domain services behind the HTTP API.
type Services struct {
	Projects      ProjectService
	Presentations PresentationService
	Sessions      SessionService
	Activity      ActivityService
}

// Options tunes the router.
type Options struct {
	Logger *slog.Logger
	// MCP, when set, is mounted at /mcp.
	MCP http.Handler
	// SecureCookies marks the admin cookie Secure.
	SecureCookies bool
	// TrustedProxies lists the peers whose X-Forwarded-For and X-Real-IP
	// headers are honored. Other peers are keyed on their TCP address.
	TrustedProxies []netip.Prefix
}

// Server wires HTTP handlers.
type Server struct {
	svcs   Services
	logger *slog.Logger
	secure bool
}

// NewServer creates an HTTP server router with middleware.
func NewServer(svcs Services, opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	srv := &Server{svcs: svcs, logger: logger, secure: opts.SecureCookies}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(TrustedRealIP(opts.TrustedProxies))
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", srv.handleHealth)

	admin := RequireAdmin(svcs.Sessions)

	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", srv.listProjects)
		r.With(admin).Post("/", srv.createProject)
		r.Get("/{id}", srv.getProject)
		r.With(admin).Put("/{id}", srv.replaceProject)
		r.With(admin).Delete("/{id}", srv.deleteProject)
	})

	r.Route("/api/presentations", func(r chi.Router) {
		r.Get("/", srv.listPresentations)
		r.With(admin).Post("/", srv.createPresentation)
		r.Get("/{id}", srv.getPresentation)
		r.With(admin).Put("/{id}", srv.replacePresentation)
		r.With(admin).Delete("/{id}", srv.deletePresentation)

		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/{id}/slides", srv.addSlide)
			r.Put("/{id}/slides/order", srv.reorderSlides)
			r.Put("/{id}/slides/{index}", srv.updateSlide)
			r.Delete("/{id}/slides/{index}", srv.deleteSlide)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", srv.login)
		r.Post("/logout", srv.logout)
		r.Get("/session", srv.currentSession)
		r.With(admin).Get("/activity", srv.listActivity)
	})

	if opts.MCP != nil {
		r.Handle("/mcp", opts.MCP)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// TrustedRealIP applies middleware.RealIP only when the TCP peer is a trusted proxy.
func TrustedRealIP(trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(trusted) == 0 {
			return next
		}
		proxied := middleware.RealIP(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if peerTrusted(r.RemoteAddr, trusted) {
				proxied.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func peerTrusted(remoteAddr string, trusted []netip.Prefix) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// RequestLogger logs one line per request at debug level, and at warn for server errors.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			level := slog.LevelDebug
			if ww.Status() >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			logger.Log(r.Context(), level, "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
