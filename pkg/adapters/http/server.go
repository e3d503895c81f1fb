package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/aretw0/pathfinder"
	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/aretw0/pathfinder/pkg/grid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes one Session over JSON. Every request holds the session lock,
// so edits and searches never overlap.
type Server struct {
	mu         sync.Mutex
	Session    *pathfinder.Session
	Logger     *slog.Logger
	Gatherer   prometheus.Gatherer
	RunTimeout time.Duration
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics exposes g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithRunTimeout bounds each POST /run.
func WithRunTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.RunTimeout = d
	}
}

// NewHandler creates a new HTTP handler for the session.
func NewHandler(sess *pathfinder.Session, opts ...Option) http.Handler {
	s := &Server{
		Session:    sess,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		RunTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.GetHealth)
	r.Get("/grid", s.GetGrid)
	r.Put("/grid/obstacles", s.editAt(func(g *grid.Grid, p domain.Position) bool { return g.SetObstacle(p) }))
	r.Delete("/grid/obstacles", s.editAt(func(g *grid.Grid, p domain.Position) bool { return g.ClearObstacle(p) }))
	r.Put("/grid/start", s.editAt(func(g *grid.Grid, p domain.Position) bool { return g.SetStart(p) }))
	r.Put("/grid/finish", s.editAt(func(g *grid.Grid, p domain.Position) bool { return g.SetFinish(p) }))
	r.Delete("/grid/start", s.edit(func(g *grid.Grid) bool { return g.ClearStart() }))
	r.Delete("/grid/finish", s.edit(func(g *grid.Grid) bool { return g.ClearFinish() }))
	r.Post("/grid/clear", s.edit(func(g *grid.Grid) bool { g.Reset(); return true }))
	r.Post("/grid/scatter", s.Scatter)
	r.Post("/run", s.Run)
	r.Get("/run/stream", s.Stream)
	r.Post("/reset", s.Reset)

	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// GridView is the JSON form of a grid.
type GridView struct {
	Rows   int              `json:"rows"`
	Width  int              `json:"width"`
	Start  *domain.Position `json:"start,omitempty"`
	Finish *domain.Position `json:"finish,omitempty"`
	Cells  [][]domain.State `json:"cells"`
}

func viewOf(g *grid.Grid) GridView {
	v := GridView{Rows: g.Rows(), Width: g.Width(), Cells: make([][]domain.State, g.Rows())}
	if p, ok := g.Start(); ok {
		v.Start = &p
	}
	if p, ok := g.Finish(); ok {
		v.Finish = &p
	}
	for i, c := range g.Cells() {
		row := i / g.Rows()
		v.Cells[row] = append(v.Cells[row], c.State())
	}
	return v
}

// EditResponse reports whether an edit changed the grid. Edits on protected
// cells succeed with Changed=false.
type EditResponse struct {
	Changed bool `json:"changed"`
}

// ScatterRequest is the body of POST /grid/scatter.
type ScatterRequest struct {
	Count int `json:"count"`
}

// ScatterResponse reports how many new obstacles were placed.
type ScatterResponse struct {
	Placed int `json:"placed"`
}

// RunResponse is the JSON form of a search result.
type RunResponse struct {
	domain.Result
	Grid GridView `json:"grid"`
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": pathfinder.Version})
}

// GetGrid handles the GET /grid request.
func (s *Server) GetGrid(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view := viewOf(s.Session.Grid())
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) editAt(apply func(*grid.Grid, domain.Position) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pos domain.Position
		if err := json.NewDecoder(r.Body).Decode(&pos); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			s.Logger.Warn("edit: invalid request body", "path", r.URL.Path, "error", err)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		g := s.Session.Grid()
		if !g.InBounds(pos) {
			http.Error(w, fmt.Sprintf("%v: %s", domain.ErrOutOfBounds, pos), http.StatusBadRequest)
			return
		}
		changed := apply(g, pos)
		s.Logger.Debug("grid edited", "method", r.Method, "path", r.URL.Path, "pos", pos, "changed", changed)
		writeJSON(w, http.StatusOK, EditResponse{Changed: changed})
	}
}

func (s *Server) edit(apply func(*grid.Grid) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		changed := apply(s.Session.Grid())
		writeJSON(w, http.StatusOK, EditResponse{Changed: changed})
	}
}

// Scatter handles the POST /grid/scatter request.
func (s *Server) Scatter(w http.ResponseWriter, r *http.Request) {
	var body ScatterRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Count < 0 {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	placed := s.Session.Scatter(body.Count)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, ScatterResponse{Placed: placed})
}

// Run handles the POST /run request.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.RunTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.Session.Run(ctx)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrMissingStart) || errors.Is(err, domain.ErrMissingFinish) {
			status = http.StatusConflict
		}
		http.Error(w, err.Error(), status)
		s.Logger.Warn("run rejected", "error", err)
		return
	}
	writeJSON(w, http.StatusOK, RunResponse{Result: res, Grid: viewOf(s.Session.Grid())})
}

// Reset handles the POST /reset request: the grid is discarded and recreated.
func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.Session.Reset()
	view := viewOf(s.Session.Grid())
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
