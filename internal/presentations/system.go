package presentations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/brand-lab/internal/analysis"
	"github.com/JaimeStill/brand-lab/internal/questionnaire"
	"github.com/JaimeStill/brand-lab/pkg/metrics"
	"github.com/JaimeStill/brand-lab/pkg/pagination"
)

// StageAssemble labels presentation assembly in pipeline metrics.
const StageAssemble = "assemble"

// System defines presentation operations.
type System interface {
	// Create validates q, assembles a presentation and stores it as the latest.
	Create(ctx context.Context, q questionnaire.Questionnaire, a *analysis.BrandAnalysis) (*Presentation, error)
	Get(ctx context.Context, id uuid.UUID) (*Presentation, error)
	Latest(ctx context.Context) (*Presentation, error)
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Summary], error)
}

type assembler struct {
	store   Store
	now     func() time.Time
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// New creates the presentation system over store.
func New(store Store, rec *metrics.Recorder, logger *slog.Logger) System {
	return &assembler{
		store:   store,
		now:     time.Now,
		metrics: rec,
		logger:  logger.With("system", "presentations"),
	}
}

func (s *assembler) Create(ctx context.Context, q questionnaire.Questionnaire, a *analysis.BrandAnalysis) (p *Presentation, err error) {
	defer func() { s.metrics.ObserveStage(StageAssemble, err) }()

	if err := q.Validate(); err != nil {
		return nil, err
	}
	if a != nil {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("%w: analysis: %w", ErrInvalidRequest, err)
		}
	}

	assembled := Assemble(q, a)
	assembled.ID = uuid.New()
	assembled.CreatedAt = s.now().UTC()

	if err := s.store.Put(ctx, &assembled); err != nil {
		return nil, fmt.Errorf("store presentation: %w", err)
	}

	s.logger.Info("presentation created",
		"id", assembled.ID,
		"source", assembled.Source,
		"company", assembled.CompanyName,
	)
	return &assembled, nil
}

func (s *assembler) Get(ctx context.Context, id uuid.UUID) (*Presentation, error) {
	return s.store.Get(ctx, id)
}

func (s *assembler) Latest(ctx context.Context) (*Presentation, error) {
	return s.store.Latest(ctx)
}

func (s *assembler) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Summary], error) {
	return s.store.List(ctx, page)
}
