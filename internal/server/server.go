package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tahleel-ai/scout/internal/metrics"
	"github.com/tahleel-ai/scout/internal/news"
	"github.com/tahleel-ai/scout/internal/report"
)

// Status describes which external collaborators are configured; exposed
// for operability, never includes key material.
type Status struct {
	GeminiConfigured  bool `json:"geminiConfigured"`
	NewsAPIConfigured bool `json:"newsApiConfigured"`
	FeedCount         int  `json:"feedCount"`
}

// NewsFetcher is the raw-news operation exposed alongside full analysis.
type NewsFetcher interface {
	FetchTeamNews(ctx context.Context, team string, limit int) []news.Item
}

// Composer produces the tactical report for one opponent.
type Composer interface {
	Compose(ctx context.Context, team string) report.TacticalReport
}

type Server struct {
	log      *slog.Logger
	composer Composer
	news     NewsFetcher
	status   Status
	maxLimit int
}

func New(composer Composer, newsFetcher NewsFetcher, status Status, log *slog.Logger) *Server {
	return &Server{
		log:      log,
		composer: composer,
		news:     newsFetcher,
		status:   status,
		maxLimit: 50,
	}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)
	r.Route("/api", func(r chi.Router) {
		r.Post("/analysis", s.handleAnalysis)
		r.Get("/news/{team}", s.handleTeamNews)
		r.Get("/status", s.handleStatus)
	})
	return r
}

type analysisRequest struct {
	Opponent string `json:"opponent"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	opponent := strings.TrimSpace(req.Opponent)
	if opponent == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "opponent team name is required"})
		return
	}

	rep := s.composer.Compose(r.Context(), opponent)
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleTeamNews(w http.ResponseWriter, r *http.Request) {
	team := strings.TrimSpace(chi.URLParam(r, "team"))
	if team == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "team is required"})
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			limit = parsed
		}
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	items := s.news.FetchTeamNews(r.Context(), team, limit)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"team":      team,
		"count":     len(items),
		"news":      items,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"system":    "tactical scouting service",
		"services":  s.status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	code := http.StatusOK
	if healthy, ok := stats["is_healthy"].(bool); ok && !healthy {
		status = "error"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, metrics.Global.GetStats())
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
