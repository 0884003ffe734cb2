package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/brandkit/brandkit/internal/config"
	apperrors "github.com/brandkit/brandkit/internal/errors"
	"github.com/brandkit/brandkit/internal/observability"
	"github.com/brandkit/brandkit/internal/server/handlers"
	servermw "github.com/brandkit/brandkit/internal/server/middleware"
)

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	cfg    config.ServerConfig
}

// New creates a new HTTP server instance around the availability API.
func New(cfg config.ServerConfig, api *handlers.API) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(servermw.RequestID)
	r.Use(recovery)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		apperrors.RespondWithEnvelope(w, req, apperrors.NewNotFoundError("The requested resource was not found"))
	})

	s := &Server{
		router: r,
		cfg:    cfg,
	}
	s.registerRoutes(api)

	return s
}

func (s *Server) registerRoutes(api *handlers.API) {
	s.router.Get("/healthz", handlers.HealthHandler)
	s.router.Get("/version", handlers.VersionHandler)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/domains/{name}", api.CheckDomain)
		r.Get("/usernames/{name}", api.CheckUsername)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  orDefault(s.cfg.ReadTimeout, 30*time.Second),
		WriteTimeout: orDefault(s.cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:  orDefault(s.cfg.IdleTimeout, 120*time.Second),
	}

	if observability.ServerLogger != nil {
		observability.ServerLogger.Info("Starting HTTP server",
			zap.String("host", s.cfg.Host),
			zap.Int("port", s.cfg.Port),
			zap.String("addr", addr))
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if observability.ServerLogger != nil {
		observability.ServerLogger.Info("Shutting down HTTP server")
	}
	return s.server.Shutdown(ctx)
}

// Handler exposes the underlying router for testing
func (s *Server) Handler() http.Handler {
	return s.router
}

// recovery converts handler panics into JSON 500 responses.
func recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if observability.ServerLogger != nil {
					observability.ServerLogger.Error("Handler panic recovered",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path))
				}
				apperrors.RespondWithEnvelope(w, r, apperrors.NewInternalError("internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func orDefault(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}
