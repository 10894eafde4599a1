package http

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/flight-traffic-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed static
var staticFS embed.FS

// ScheduleService answers schedule queries and reports readiness.
type ScheduleService interface {
	Day(ctx context.Context, airport, date string) (domain.ScheduleSnapshot, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the schedule API, the chart page, and the health, readiness,
// and metrics endpoints.
type Server struct {
	httpServer *http.Server
	svc        ScheduleService
	daysAhead  int
	loc        *time.Location
	logger     *slog.Logger
}

// NewServer creates the HTTP server and wires all routes.
func NewServer(addr string, svc ScheduleService, daysAhead int, loc *time.Location, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		svc:       svc,
		daysAhead: daysAhead,
		loc:       loc,
		logger:    logger,
	}

	mux.HandleFunc("GET /api/schedule", s.handleSchedule)
	mux.HandleFunc("GET /api/days", s.handleDays)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /{$}", s.handleIndex)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// scheduleResponse is the wire shape of a schedule query result.
type scheduleResponse struct {
	Airport     string              `json:"airport"`
	Date        string              `json:"date"`
	Source      string              `json:"source"`
	LastUpdated string              `json:"lastUpdated"`
	Data        []domain.HourBucket `json:"data"`
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	airport := r.URL.Query().Get("airport")
	date := r.URL.Query().Get("date")
	if airport == "" || date == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Missing airport or date parameter",
		})
		return
	}

	snap, err := s.svc.Day(r.Context(), airport, date)
	if err != nil {
		s.writeScheduleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, scheduleResponse{
		Airport:     snap.Airport,
		Date:        snap.Date,
		Source:      snap.Source,
		LastUpdated: snap.FetchedAt.Format(time.RFC3339),
		Data:        snap.Data,
	})
}

func (s *Server) writeScheduleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError
	var upstreamErr *domain.UpstreamError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": validationErr.Msg})
	case errors.Is(err, domain.ErrNoAPIKey):
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "API key not configured"})
	case errors.As(err, &upstreamErr):
		s.logger.Error("upstream fetch failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to fetch flight data",
			"details": upstreamErr.Error(),
		})
	default:
		s.logger.Error("schedule request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal error"})
	}
}

func (s *Server) handleDays(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.UpcomingDays(s.daysAhead, s.loc))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.svc.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}
