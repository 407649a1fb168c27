// Package server exposes the people search HTTP API.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/people-search/internal/display"
	"github.com/sells-group/people-search/internal/profile"
	"github.com/sells-group/people-search/internal/search"
)

// PeopleSearcher is the orchestrator surface the API needs.
type PeopleSearcher interface {
	SearchPeople(ctx context.Context, req search.Request) *search.Result
	SearchWeb(ctx context.Context, req search.Request) []profile.Profile
}

// HealthInfo reports which vendors have credentials configured.
type HealthInfo struct {
	CoreSignalConfigured bool `json:"coresignal_configured"`
	ExaConfigured        bool `json:"exa_configured"`
}

type server struct {
	searcher PeopleSearcher
	health   HealthInfo
}

// New builds the HTTP handler.
func New(searcher PeopleSearcher, health HealthInfo) http.Handler {
	s := &server{searcher: searcher, health: health}

	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/api/health", s.handleHealth)
	r.Post("/api/search", s.handleSearch)

	return r
}

type searchRequest struct {
	Name       string `json:"name"`
	Company    string `json:"company"`
	Limit      int    `json:"limit"`
	IncludeWeb bool   `json:"include_web"`
}

type searchResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Results []display.Record `json:"results"`
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	query := search.Request{Name: req.Name, Company: req.Company, Limit: req.Limit}

	res := s.searcher.SearchPeople(r.Context(), query)
	if res.Failed() {
		status := res.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		writeError(w, status, res.Error)
		return
	}

	profiles := res.Profiles
	if req.IncludeWeb {
		profiles = append(profiles, s.searcher.SearchWeb(r.Context(), query)...)
	}

	records := make([]display.Record, 0, len(profiles))
	for _, p := range profiles {
		records = append(records, display.FromProfile(p))
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Success: true,
		Count:   len(records),
		Results: records,
	})
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		HealthInfo
	}{Status: "ok", HealthInfo: s.health})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requestLogger tags each request with an ID and logs its outcome.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		zap.L().Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// recoverer maps panics to a generic server error without leaking
// internal detail past the boundary.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				zap.L().Error("handler panic", zap.Any("panic", rec))
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
