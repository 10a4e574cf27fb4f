// Package web serves the admin table views over HTTP: full pages, HTMX
// partials, skeleton fragments and a JSON API.
package web

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/JonMunkholm/admintables/internal/catalog"
	"github.com/JonMunkholm/admintables/internal/config"
	"github.com/JonMunkholm/admintables/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:embed static
var staticFiles embed.FS

// limiterSweepInterval is how often idle rate limit buckets are dropped.
const limiterSweepInterval = time.Minute

// Server is the HTTP server for the admin tables.
type Server struct {
	store  *catalog.Store
	cfg    *config.Config
	router *chi.Mux
	server *http.Server

	limiter       *middleware.RateLimiter // nil when rate limiting is off
	reloadLimiter *middleware.RateLimiter
}

// NewServer wires the routes over store.
func NewServer(store *catalog.Store, cfg *config.Config) *Server {
	s := &Server{
		store:  store,
		cfg:    cfg,
		router: chi.NewRouter(),
	}
	if cfg.Rate.Enabled {
		s.limiter = middleware.NewRateLimiter(cfg.Rate.RequestsPerMinute, cfg.Rate.Burst)
		s.reloadLimiter = middleware.NewRateLimiter(cfg.Rate.ReloadLimit, 1)
	}
	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(middleware.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Compress(5))
	if s.cfg.Server.RequestTimeout > 0 {
		s.router.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))
	}
	s.router.Use(securityHeaders(s.cfg.Security.EnableCSP))
	if s.limiter != nil {
		s.router.Use(s.limiter.Handler)
	}
}

func (s *Server) setupRoutes() {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.router.Get("/", s.handleDashboard)
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/admin", func(r chi.Router) {
		r.Get("/", http.RedirectHandler("/", http.StatusFound).ServeHTTP)
		r.Get("/{view}", s.handleTablePage)
		r.Get("/{view}/skeleton", s.handleSkeleton)
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/views", s.handleListViews)
		r.Get("/views/{view}", s.handleViewData)
		r.Get("/views/{view}/skeleton", s.handleViewSkeleton)

		reload := r.With(middleware.APIKeyAuth(&s.cfg.Security))
		if s.reloadLimiter != nil {
			reload = reload.With(s.reloadLimiter.Handler)
		}
		reload.Post("/reload", s.handleReload)
	})
}

// Start serves until Shutdown. Rate limiter sweeps stop when ctx is done.
func (s *Server) Start(ctx context.Context) error {
	for _, l := range []*middleware.RateLimiter{s.limiter, s.reloadLimiter} {
		if l != nil {
			l.StartCleanup(ctx, limiterSweepInterval)
		}
	}
	slog.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// contentSecurityPolicy allows the htmx build and remote record images.
const contentSecurityPolicy = "default-src 'self'; script-src 'self' https://unpkg.com; " +
	"style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; connect-src 'self'; frame-ancestors 'none'"

func securityHeaders(enableCSP bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			if enableCSP {
				h.Set("Content-Security-Policy", contentSecurityPolicy)
			}
			next.ServeHTTP(w, r)
		})
	}
}
