package main

import (
	"fmt"
	"time"

	"github.com/JaimeStill/brand-lab/internal/config"
	"github.com/JaimeStill/brand-lab/internal/infrastructure"
	"github.com/JaimeStill/brand-lab/internal/presentations"
	"github.com/JaimeStill/brand-lab/pkg/database"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	cfg     *config.Config
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    *httpServer
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"presentation_store", cfg.Presentations.Store,
		"storage_backend", cfg.Storage.Backend,
	)

	return &Server{
		cfg:     cfg,
		infra:   infra,
		modules: modules,
		http:    newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

// Start applies pending migrations when PostgreSQL is in use, then begins
// all subsystems and returns once they are registered.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if s.cfg.UsesDatabase() {
		err := database.Migrate(
			&s.cfg.Database,
			presentations.Migrations,
			presentations.MigrationsDir,
			s.infra.Logger.With("system", "migrate"),
		)
		if err != nil {
			return fmt.Errorf("migrate failed: %w", err)
		}
	}

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
