// Package server provides the HTTP API around the analysis engine.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Aanishnithin07/FitForge/internal/analysis"
	"github.com/Aanishnithin07/FitForge/internal/cache"
	"github.com/Aanishnithin07/FitForge/internal/config"
	"github.com/Aanishnithin07/FitForge/internal/logger"
	"github.com/Aanishnithin07/FitForge/internal/observability"
	"github.com/Aanishnithin07/FitForge/internal/server/ratelimit"
	"github.com/google/uuid"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	analyzer    *analysis.Analyzer
	engine      analysis.Engine
	memo        *cache.Memo
	cacheName   string
	collector   *observability.Collector
	rateLimiter *ratelimit.Limiter
	log         logger.Logger
	maxBody     int64
	concurrency int
}

// Options holds the server's collaborators. Nil fields get defaults built
// from Config.
type Options struct {
	Config    *config.Config
	Analyzer  *analysis.Analyzer
	Collector *observability.Collector
	Cache     cache.Cache
	Logger    logger.Logger
}

// New creates a new server instance
func New(opts Options) (*Server, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	analyzer := opts.Analyzer
	if analyzer == nil {
		analyzer = analysis.New(nil, analysis.WithKeywordLimit(cfg.Analysis.KeywordLimit))
	}
	collector := opts.Collector
	if collector == nil {
		collector = observability.NewCollector()
		if err := collector.Init(); err != nil {
			return nil, fmt.Errorf("failed to init stats collector: %w", err)
		}
	}
	c := opts.Cache
	if c == nil {
		c = cache.Noop{}
	}

	s := &Server{
		analyzer:    analyzer,
		engine:      collector.Wrap(analyzer),
		collector:   collector,
		cacheName:   cacheName(c),
		rateLimiter: ratelimit.NewLimiter(ratelimit.FromConfig(cfg.RateLimit)),
		log:         log.With(logger.Fields{"component": "server"}),
		maxBody:     cfg.Server.MaxBodyBytes,
		concurrency: cfg.Leaderboard.Concurrency,
	}
	s.memo = cache.NewMemo(c, s.engine, analyzer.Fingerprint(), s.log)

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func cacheName(c cache.Cache) string {
	if _, ok := c.(cache.Noop); ok {
		return "disabled"
	}
	return "redis"
}

// Handler returns the routed handler with middleware applied
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /leaderboard", s.handleLeaderboard)
	mux.HandleFunc("POST /compare", s.handleCompare)
	mux.HandleFunc("POST /annotate", s.handleAnnotate)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /stats", s.handleStats)
	mux.Handle("GET /metrics", s.collector.Handler())

	return s.withRequestID(s.withLogging(s.withRateLimit(s.withCORS(mux))))
}

// Start listens until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", logger.Fields{"addr": s.httpServer.Addr})
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.rateLimiter.Stop()
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	defer s.rateLimiter.Stop()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("server stopped", nil)
	return nil
}

type contextKey string

const requestIDKey contextKey = "requestID"

// RequestID returns the ID assigned to the request by the server, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// withRequestID tags each request with an ID, reusing a client-supplied X-Request-ID
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request completed", logger.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  RequestID(r.Context()),
		})
	})
}

// extractClientID extracts the client identifier from the request.
// It uses the IP address from RemoteAddr; X-Forwarded-For is not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Round(time.Second).Seconds())
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	s.log.Warn("rate limit exceeded", logger.Fields{
		"client": s.extractClientID(r),
		"path":   r.URL.Path,
		"limit":  info.Limit,
	})

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", logger.Fields{"error": err.Error()})
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
