// Package api provides the HTTP API server for the architecture
// advisor. All endpoints are stateless; every request carries the full
// workload requirements.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"azure-architect/catalog"
	"azure-architect/decision/recommend"
	"azure-architect/export"
	"azure-architect/pkg/metrics"
	"azure-architect/pkg/workload"
)

// Server is the HTTP API server
type Server struct {
	httpServer *http.Server
	cat        *catalog.Catalog
	engine     *recommend.Engine
	exporter   *export.Manager
	metrics    *metrics.Registry
	logger     *zap.Logger
	config     *Config
}

// Config holds server configuration
type Config struct {
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestSize int64
	CORSOrigins    []string
}

// DefaultConfig returns default server configuration
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   60 * time.Second,
		MaxRequestSize: 1 * 1024 * 1024, // 1MB
		CORSOrigins:    []string{"*"},
	}
}

// NewServer creates a new API server
func NewServer(cat *catalog.Catalog, logger *zap.Logger, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		cat:      cat,
		engine:   recommend.NewEngine(cat, logger),
		exporter: export.NewManager(),
		metrics:  metrics.NewRegistry(),
		logger:   logger,
		config:   config,
	}
}

// Handler builds the full route tree with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", s.metrics.Handler())
	mux.HandleFunc("/api/v1/catalog", s.handleCatalog)
	mux.HandleFunc("/api/v1/patterns", s.handlePatterns)
	mux.HandleFunc("/api/v1/recommend", s.handleRecommend)
	mux.HandleFunc("/api/v1/export", s.handleExport)

	return s.corsMiddleware(s.loggingMiddleware(s.metrics.Middleware(mux)))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.logger.Info("API server starting", zap.Int("port", s.config.Port))
	return s.httpServer.ListenAndServe()
}

// StartWithGracefulShutdown starts server with graceful shutdown handling
func (s *Server) StartWithGracefulShutdown() error {
	errChan := make(chan error, 1)
	go func() {
		if err := s.Start(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-quit:
		s.logger.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(ctx)
	}
}

// =============================================================================
// MIDDLEWARE
// =============================================================================

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		allowed := false
		for _, o := range s.config.CORSOrigins {
			if o == "*" || o == origin {
				allowed = true
				break
			}
		}

		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400")
		}

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// HEALTH ENDPOINTS
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": export.ToolVersion,
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.cat == nil || s.cat.Len() == 0 {
		s.jsonError(w, http.StatusServiceUnavailable, "catalog not loaded")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

// =============================================================================
// CATALOG ENDPOINTS
// =============================================================================

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	category := r.URL.Query().Get("category")

	var services []catalog.Service
	if category != "" {
		services = s.cat.ByCategory(category)
		if len(services) == 0 {
			s.jsonError(w, http.StatusNotFound, fmt.Sprintf("unknown category: %s", category))
			return
		}
	} else {
		services = s.cat.Services()
	}

	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"count":    len(services),
		"services": services,
	})
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	patterns := s.cat.Patterns()
	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"count":    len(patterns),
		"patterns": patterns,
	})
}

// =============================================================================
// RECOMMEND ENDPOINT
// =============================================================================

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, ok := s.decodeRequirements(w, r)
	if !ok {
		return
	}

	report, err := s.engine.Recommend(r.Context(), req)
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.metrics.ObserveRecommendation()
	s.jsonResponse(w, http.StatusOK, report)
}

// =============================================================================
// EXPORT ENDPOINT
// =============================================================================

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, ok := s.decodeRequirements(w, r)
	if !ok {
		return
	}

	report, err := s.engine.Recommend(r.Context(), req)
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	bundle, err := s.exporter.Prepare(report)
	if err != nil {
		s.jsonError(w, http.StatusInternalServerError, fmt.Sprintf("export failed: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, bundle)
}

// =============================================================================
// HELPERS
// =============================================================================

func (s *Server) decodeRequirements(w http.ResponseWriter, r *http.Request) (workload.Requirements, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestSize)

	var req workload.Requirements
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return workload.Requirements{}, false
	}
	return req, true
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) jsonError(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
