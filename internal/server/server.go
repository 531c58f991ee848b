// Package server exposes the synthesis pipeline over HTTP.
//
// Endpoints:
//
//	POST /v1/synthesize  {"example": "..."} -> {"code", "width", "height", "cached"}
//	GET  /healthz        liveness probe
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/layoutsmith/layoutsmith/pkg/cache"
	"github.com/layoutsmith/layoutsmith/pkg/errors"
	"github.com/layoutsmith/layoutsmith/pkg/pipeline"
)

// Server handles synthesis requests over HTTP.
type Server struct {
	runner *pipeline.Runner
	cache  cache.Cache
	logger *log.Logger
	ttl    time.Duration
}

// Options configures a Server.
type Options struct {
	// Cache stores rendered code keyed by input hash. Nil disables caching.
	Cache cache.Cache

	// CacheTTL bounds cached entries. Zero uses cache.TTLCode.
	CacheTTL time.Duration

	// Logger receives request logs. Nil uses the default logger.
	Logger *log.Logger
}

// New creates a Server.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	c := opts.Cache
	if c == nil {
		c = cache.NewNullCache()
	}
	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = cache.TTLCode
	}
	return &Server{
		runner: pipeline.NewRunner(logger),
		cache:  c,
		logger: logger,
		ttl:    ttl,
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/synthesize", s.handleSynthesize)
	return r
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

// requestID tags each request with a UUID and logs its outcome.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		s.logger.Debug("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}

type synthesizeRequest struct {
	Example string `json:"example"`
}

type synthesizeResponse struct {
	Code   string `json:"code"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cached bool   `json:"cached"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req synthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "request body must be JSON with an \"example\" field"))
		return
	}
	if req.Example == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "example must not be empty"))
		return
	}

	key := cache.CodeKey(req.Example)
	if data, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		result, perr := s.runner.Parse(r.Context(), pipeline.Options{Input: req.Example, Logger: s.logger})
		if perr != nil {
			writeError(w, perr)
			return
		}
		writeJSON(w, http.StatusOK, synthesizeResponse{
			Code:   string(data),
			Width:  result[0].Width(),
			Height: result[0].Height(),
			Cached: true,
		})
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{Input: req.Example, Logger: s.logger})
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.cache.Set(r.Context(), key, []byte(result.Code), s.ttl); err != nil {
		s.logger.Warn("cache write failed", "error", err)
	}

	writeJSON(w, http.StatusOK, synthesizeResponse{
		Code:   result.Code,
		Width:  result.Examples[0].Width(),
		Height: result.Examples[0].Height(),
		Cached: false,
	})
}

// writeError maps structured error codes to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusBadRequest
	switch code {
	case errors.ErrCodeInternal, errors.ErrCodeSynthesisFailed:
		status = http.StatusInternalServerError
	case "":
		code = errors.ErrCodeInternal
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, errorResponse{Code: string(code), Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
