package api

import (
	"net/http"

	"finlens/internal/log"
	"finlens/internal/report"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server is the HTTP surface over the report composer.
type Server struct {
	router   chi.Router
	handlers *Handlers
}

func NewServer(composer *report.Composer, logger *log.Logger) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		handlers: NewHandlers(composer),
	}
	s.setupMiddleware(logger)
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware(logger *log.Logger) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(log.Middleware(logger.WithComponent(log.ComponentAPI)))
	s.router.Use(secureHeaders)
	s.router.Use(newRateLimiter(requestsPerMinute).middleware)

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handlers.HealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/home", s.handlers.Home)
		r.Route("/reports", func(r chi.Router) {
			r.Get("/spending", s.handlers.Spending)
			r.Get("/cashback", s.handlers.Cashback)
		})
		r.Get("/search", s.handlers.Search)
	})
}

// Handler returns the root http.Handler for mounting on an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}
