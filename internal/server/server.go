// Package server provides the HTTP interface of the KYP analysis tool: the
// advisor form, the report export endpoints and the fund catalog API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jonathan/kyp-analysis/internal/config"
	"github.com/jonathan/kyp-analysis/internal/funds"
	"github.com/jonathan/kyp-analysis/internal/rendering"
	"github.com/jonathan/kyp-analysis/internal/server/middleware"
	"github.com/jonathan/kyp-analysis/internal/server/ratelimit"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Server represents the HTTP server
type Server struct {
	router      *chi.Mux
	httpServer  *http.Server
	logger      *zerolog.Logger
	catalog     *funds.Catalog
	assembler   *rendering.Assembler
	docxOptions rendering.DOCXOptions
	rateLimiter *ratelimit.Limiter
	shutdown    time.Duration
}

// Option customizes a Server.
type Option func(*serverOptions)

type serverOptions struct {
	catalog *funds.Catalog
	now     func() time.Time
	limiter []ratelimit.Option
}

// WithCatalog replaces the embedded fund catalog.
func WithCatalog(catalog *funds.Catalog) Option {
	return func(o *serverOptions) {
		o.catalog = catalog
	}
}

// WithClock sets the clock used to date reports and meter requests.
func WithClock(now func() time.Time) Option {
	return func(o *serverOptions) {
		o.now = now
		o.limiter = append(o.limiter, ratelimit.WithClock(now))
	}
}

// New creates a new server instance
func New(cfg *config.Config, logger zerolog.Logger, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server config is nil")
	}

	o := serverOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.catalog == nil {
		catalog, err := funds.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load fund catalog: %w", err)
		}
		o.catalog = catalog
	}

	s := &Server{
		logger:      &logger,
		catalog:     o.catalog,
		assembler:   rendering.NewAssembler(o.catalog, o.now),
		docxOptions: rendering.DOCXOptions{Font: cfg.Report.Font, FontSize: cfg.Report.FontSize},
		rateLimiter: ratelimit.NewLimiter(ratelimit.FromConfig(cfg.RateLimit), o.limiter...),
		shutdown:    cfg.Server.ShutdownTimeout,
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger(s.logger))
	router.Use(chimiddleware.Recoverer)
	router.Use(s.withRateLimit)

	router.Get("/", s.handleIndex)
	router.Post(ratelimit.ReportPath, s.handleReport)
	router.Get("/health", s.handleHealth)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/funds", s.handleListFunds)
		r.Post("/report", s.handleAPIReport)
	})

	s.router = router
	s.httpServer = &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled or the listener fails, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.rateLimiter.Stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("starting server")
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdown)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Msg("graceful shutdown failed")
			if closeErr := s.httpServer.Close(); closeErr != nil {
				return fmt.Errorf("server close failed: %w", closeErr)
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		s.logger.Info().Msg("server stopped")
		return nil
	})

	return g.Wait()
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; forwarded headers are not trusted.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	err := &ErrRateLimited{}
	response := map[string]any{
		"error":     err.Error(),
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.UTC().Format(time.RFC3339)
	}
	if info.RetryAfter > 0 {
		seconds := int((info.RetryAfter + time.Second - 1) / time.Second)
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	zerolog.Ctx(r.Context()).Warn().
		Int("limit", info.Limit).
		Time("reset_at", info.ResetTime).
		Msg("rate limit exceeded")

	s.jsonResponse(w, r, HTTPStatus(err), response)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("error encoding JSON response")
	}
}

// errorResponse writes an error JSON response with the status HTTPStatus assigns to err
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	event := zerolog.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = zerolog.Ctx(r.Context()).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	s.jsonResponse(w, r, status, map[string]string{"error": err.Error()})
}

// Close releases background resources held by a server that was never run.
func (s *Server) Close() {
	s.rateLimiter.Stop()
}
