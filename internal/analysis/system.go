package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/JaimeStill/brand-lab/pkg/metrics"
)

// StageAnalyze labels analysis outcomes in pipeline metrics and error bodies.
const StageAnalyze = "analyze"

// Request identifies a stored document to analyze, with optional hints.
type Request struct {
	DocumentURL string `json:"documentUrl"`
	FileType    string `json:"fileType"`
	FormData    *Hints `json:"formData,omitempty"`
}

// Extractor converts a stored document to plain text.
type Extractor interface {
	Extract(ctx context.Context, address, contentType string) (string, error)
}

// System defines brand analysis operations.
type System interface {
	// Analyze prompts the model with text and hints and parses its reply.
	Analyze(ctx context.Context, text string, hints *Hints) (*BrandAnalysis, error)

	// AnalyzeDocument extracts the referenced document and analyzes it.
	// Identical concurrent requests share a single model call.
	AnalyzeDocument(ctx context.Context, req Request) (*BrandAnalysis, error)
}

// checkpointCapacity bounds the pipeline runs retained in memory.
const checkpointCapacity = 128

type engine struct {
	generator   Generator
	extractor   Extractor
	timeout     time.Duration
	group       singleflight.Group
	checkpoints *Checkpoints
	observer    *LogObserver
	metrics     *metrics.Recorder
	logger      *slog.Logger
}

// New creates the analysis engine. Each model call, and each document
// pipeline run as a whole, is bounded by timeout.
func New(gen Generator, ext Extractor, timeout time.Duration, rec *metrics.Recorder, logger *slog.Logger) System {
	logger = logger.With("system", "analysis")
	return &engine{
		generator:   gen,
		extractor:   ext,
		timeout:     timeout,
		checkpoints: NewCheckpoints(checkpointCapacity),
		observer:    NewLogObserver(logger.With("pipeline", PipelineName)),
		metrics:     rec,
		logger:      logger,
	}
}

func (e *engine) Analyze(ctx context.Context, text string, hints *Hints) (result *BrandAnalysis, err error) {
	defer func() { e.metrics.ObserveStage(StageAnalyze, err) }()

	prompt, err := BuildPrompt(text, hints)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	raw, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelInvocation, err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrModelInvocation)
	}

	result, err = Parse(raw)
	if err != nil {
		e.logger.Warn("malformed model reply", "error", err, "chars", len(raw))
		return nil, err
	}

	e.logger.Info("brand analyzed",
		"company", result.BrandAnalysis.CompanyName,
		"duration", time.Since(start),
	)
	return result, nil
}

func (e *engine) AnalyzeDocument(ctx context.Context, req Request) (*BrandAnalysis, error) {
	if strings.TrimSpace(req.DocumentURL) == "" {
		return nil, fmt.Errorf("%w: no document URL provided", ErrInvalidRequest)
	}

	key, err := requestKey(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	// the shared call outlives any single caller and is bounded only by the timeout
	ch := e.group.DoChan(key, func() (any, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
		defer cancel()
		return e.run(shared, req)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			e.logger.Debug("analysis shared", "document", req.DocumentURL)
		}
		return res.Val.(*BrandAnalysis), nil
	}
}

func requestKey(req Request) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

