package api

import (
	"fmt"

	"github.com/JaimeStill/brand-lab/internal/analysis"
	"github.com/JaimeStill/brand-lab/internal/config"
	"github.com/JaimeStill/brand-lab/internal/documents"
	"github.com/JaimeStill/brand-lab/internal/extraction"
	"github.com/JaimeStill/brand-lab/internal/presentations"
	"github.com/JaimeStill/brand-lab/internal/sessions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Documents     documents.System
	Analysis      analysis.System
	Presentations presentations.System
	Sessions      sessions.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) (*Domain, error) {
	documentsSys := documents.New(
		runtime.Storage,
		cfg.Storage.MaxUploadSizeBytes(),
		runtime.Metrics,
		runtime.Logger,
	)

	extractor := extraction.New(documentsSys, runtime.Metrics, runtime.Logger)

	gen, err := analysis.NewGenerator(runtime.Lifecycle.Context(), &cfg.Analysis)
	if err != nil {
		return nil, fmt.Errorf("analysis generator: %w", err)
	}

	analysisSys := analysis.New(
		gen,
		extractor,
		cfg.Analysis.TimeoutDuration(),
		runtime.Metrics,
		runtime.Logger,
	)

	store, err := newPresentationStore(cfg, runtime)
	if err != nil {
		return nil, err
	}
	presentationsSys := presentations.New(store, runtime.Metrics, runtime.Logger)

	sessionsSys, err := sessions.New(
		cfg.Sessions.Capacity,
		documentsSys,
		analysisSys,
		presentationsSys,
		runtime.Logger,
	)
	if err != nil {
		return nil, err
	}

	return &Domain{
		Documents:     documentsSys,
		Analysis:      analysisSys,
		Presentations: presentationsSys,
		Sessions:      sessionsSys,
	}, nil
}

func newPresentationStore(cfg *config.Config, runtime *Runtime) (presentations.Store, error) {
	switch cfg.Presentations.Store {
	case config.StorePostgres:
		if runtime.Database == nil {
			return nil, fmt.Errorf("postgres presentation store requires a database")
		}
		return presentations.NewPostgresStore(runtime.Database.Connection(), runtime.Pagination), nil
	default:
		return presentations.NewMemoryStore(cfg.Presentations.Capacity, runtime.Pagination)
	}
}
