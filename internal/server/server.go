// Package server exposes the results catalog over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/ethpandaops/test-runs/internal/results"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Error messages returned to clients. Causes are only logged.
const (
	msgListFailed = "Failed to read test results"
	msgNotFound   = "Test result not found"
	msgNoRoute    = "Not found"
)

// Options configures the HTTP server.
type Options struct {
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

func (o *Options) setDefaults() {
	if o.ReadTimeout == 0 {
		o.ReadTimeout = 5 * time.Second
	}
	if o.ReadHeaderTimeout == 0 {
		o.ReadHeaderTimeout = 2 * time.Second
	}
	if o.WriteTimeout == 0 {
		o.WriteTimeout = 30 * time.Second
	}
	if o.IdleTimeout == 0 {
		o.IdleTimeout = 60 * time.Second
	}
	if o.ShutdownTimeout == 0 {
		o.ShutdownTimeout = 5 * time.Second
	}
}

// Server serves result listings and result documents.
type Server struct {
	catalog results.Catalog
	log     logrus.FieldLogger
	opts    Options
	http    *http.Server

	mu   sync.Mutex
	addr string
}

// NewServer wires the routes for catalog. Nothing listens until Run is called.
func NewServer(catalog results.Catalog, opts Options, log logrus.FieldLogger) *Server {
	opts.setDefaults()

	s := &Server{
		catalog: catalog,
		log:     log.WithField("component", "server"),
		opts:    opts,
	}

	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Handler(),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
	}

	return s
}

// Handler returns the routed handler with CORS and request logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/test-runs", s.handleListTestRuns)
	mux.HandleFunc("GET /api/test-runs/{$}", s.handleListTestRuns)
	mux.HandleFunc("GET /api/test-runs/{filename}", s.handleGetTestRun)

	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, msgNoRoute)
	})

	return withRequestLogging(withCORS(mux), s.log)
}

// Addr returns the bound listen address once Run has started listening.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run listens on the configured address and serves until ctx is cancelled or
// serving fails, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.opts.Addr, err)
	}

	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"addr":        s.Addr(),
		"results_dir": s.catalog.Dir(),
	}).Info("test results server running")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.http.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		return s.Stop()
	})

	return g.Wait()
}

// Stop gracefully shuts down the server, waiting up to ShutdownTimeout.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	s.log.Info("shutting down test results server")

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}

	return nil
}
