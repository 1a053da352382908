// Package server exposes the search engine over HTTP and a websocket stream.
//
// Routes:
//
//	POST /search     one search, JSON in and out
//	GET  /graph      locations, coordinates and edges
//	GET  /nearest    location nearest a layout-space point
//	GET  /ws/search  explored order streamed per node
//	GET  /healthz    liveness and graph size
//
// Every response carries CORS headers; requests are rate limited server-wide.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/addisroute/internal/config"
	"github.com/katalvlaran/addisroute/search"
	"github.com/katalvlaran/addisroute/spatial"
)

// ErrEngineNil is returned by New when no engine is given.
var ErrEngineNil = errors.New("server: engine is nil")

// maxRequestBody caps a decoded request body.
const maxRequestBody = 64 << 10

// Server serves one search engine.
type Server struct {
	engine        *search.Engine
	index         *spatial.Index
	cfg           config.ServerConfig
	maxExpansions int
	logger        *log.Logger
	limiter       *rate.Limiter
	handler       http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for request lines and internal errors.
// The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Server for engine configured by cfg.
func New(engine *search.Engine, cfg *config.Config, opts ...Option) (*Server, error) {
	if engine == nil {
		return nil, ErrEngineNil
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	index, err := spatial.NewIndex(engine.Graph())
	if err != nil {
		return nil, fmt.Errorf("server: building spatial index: %w", err)
	}

	s := &Server{
		engine:        engine,
		index:         index,
		cfg:           cfg.Server,
		maxExpansions: cfg.Search.MaxExpansions,
		logger:        log.New(io.Discard, "", 0),
		limiter:       rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst),
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /search", s.handleSearch)
	mux.HandleFunc("GET /graph", s.handleGraph)
	mux.HandleFunc("GET /nearest", s.handleNearest)
	mux.HandleFunc("GET /ws/search", s.handleWSSearch)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	s.handler = s.withLogging(s.withCORS(s.withRateLimit(mux)))

	return s, nil
}

// Handler returns the root handler with all middleware applied.
func (s *Server) Handler() http.Handler { return s.handler }

// ListenAndServe serves on cfg.Addr until ctx is done, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.logger.Printf("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}

// run executes one search under the configured timeout and expansion budget.
func (s *Server) run(ctx context.Context, req search.Request, opts ...search.Option) (*search.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.SearchTimeout)
	defer cancel()

	opts = append(opts, search.WithMaxExpansions(s.maxExpansions))

	return s.engine.Search(ctx, req, opts...)
}
