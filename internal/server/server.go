package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jackzampolin/skim/internal/api"
	"github.com/jackzampolin/skim/internal/config"
	"github.com/jackzampolin/skim/internal/home"
	"github.com/jackzampolin/skim/internal/outline"
	"github.com/jackzampolin/skim/internal/server/endpoints"
	"github.com/jackzampolin/skim/internal/svcctx"
)

// Server is the skim HTTP server. It owns the heading extractor and the
// uploads directory, and rebuilds the extractor when config changes.
type Server struct {
	httpServer *http.Server
	configMgr  *config.Manager
	home       *home.Dir
	logger     *slog.Logger

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// Home is the skim home directory for uploads
	Home *home.Dir
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Home == nil {
		d, err := home.New("")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.Home = d
	}

	s := &Server{
		configMgr: cfg.ConfigManager,
		home:      cfg.Home,
		logger:    cfg.Logger,
	}

	var maxUploadBytes int64
	if cfg.ConfigManager != nil {
		maxUploadBytes = int64(cfg.ConfigManager.Get().Server.MaxUploadMB) << 20

		// Rebuild the extractor when the worker count changes
		cfg.ConfigManager.OnChange(func(c *config.Config) {
			s.reloadServices(c)
			cfg.Logger.Info("configuration reloaded", "workers", c.Extract.Workers)
		})
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{MaxUploadBytes: maxUploadBytes}) {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      corsAllowAll(s.withServices(mux)),
		ReadTimeout:  5 * time.Minute, // Large uploads can be slow
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start starts the server. It blocks until the context is cancelled or
// an error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	if err := s.home.EnsureExists(); err != nil {
		s.setNotRunning()
		return fmt.Errorf("failed to create home directory: %w", err)
	}

	var workers int
	if s.configMgr != nil {
		workers = s.configMgr.Get().Extract.Workers
	}

	s.mu.Lock()
	s.services = &svcctx.Services{
		Extractor: outline.New(outline.Config{Workers: workers, Logger: s.logger}),
		Home:      s.home,
		Logger:    s.logger,
	}
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown performs graceful shutdown of the HTTP server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// reloadServices swaps in a new extractor built from the given config.
// No-op before Start has created the initial services.
func (s *Server) reloadServices(c *config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.services == nil {
		return
	}
	s.services = &svcctx.Services{
		Extractor: outline.New(outline.Config{Workers: c.Extract.Workers, Logger: s.logger}),
		Home:      s.home,
		Logger:    s.logger,
	}
}

// withServices wraps a handler to enrich the request context with services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		svc := s.services
		s.mu.RUnlock()

		ctx := r.Context()
		if svc != nil {
			ctx = svcctx.WithServices(ctx, svc)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// corsAllowAll permits cross-origin requests from any origin.
func corsAllowAll(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
