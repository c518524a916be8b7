package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/usecase"
)

// Server exposes the continuity records over a JSON API. It owns the current
// State; writes are serialized so each one starts from the result of the last.
type Server struct {
	router   *chi.Mux
	uc       *usecase.UseCases
	registry *prometheus.Registry
	metrics  *metrics

	mu    sync.RWMutex
	state *model.State
}

type Options func(*Server)

// WithRegistry collects the server metrics into the given registry instead of a
// fresh one
func WithRegistry(registry *prometheus.Registry) Options {
	return func(s *Server) {
		s.registry = registry
	}
}

func New(uc *usecase.UseCases, state *model.State, opts ...Options) *Server {
	r := chi.NewRouter()

	if state == nil {
		state = model.NewState()
	}

	s := &Server{
		router: r,
		uc:     uc,
		state:  state,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = newMetrics(s.registry, s.snapshot)

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))

		routeRecords(s, r, resourceRoutes(s))
		routeRecords(s, r, activityRoutes(s))
		routeRecords(s, r, riskRoutes(s))
		routeRecords(s, r, strategyRoutes(s))
		r.Post("/strategies/{id}/select", s.selectStrategyHandler)

		r.Get("/dashboard", s.dashboardHandler)
		r.Get("/report", s.reportHandler)
		r.Post("/report/publish", s.publishReportHandler)
		r.Post("/suggestions", s.suggestionHandler)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// State returns the current snapshot
func (s *Server) State() *model.State {
	return s.snapshot()
}

func (s *Server) snapshot() *model.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// update runs a write against the current state and installs the result. The
// returned state is installed even on failure; use cases hand back the state they
// were given in that case.
func (s *Server) update(ctx context.Context, fn func(ctx context.Context, state *model.State) (*model.State, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(ctx, s.state)
	if next != nil {
		s.state = next
	}
	return err
}
