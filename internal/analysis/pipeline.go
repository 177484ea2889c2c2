package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/observability"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/JaimeStill/brand-lab/internal/extraction"
)

// PipelineName identifies the document analysis graph in checkpoints and logs.
const PipelineName = "analyze-document"

const (
	nodeExtract = "extract"
	nodeAnalyze = "analyze"

	keyDocumentURL = "document_url"
	keyFileType    = "file_type"
	keyText        = "text"
	keyImageOnly   = "image_only"
	keyResult      = "result"
)

// run executes the extract and analyze stages for req as a state graph.
// Node failures are returned unchanged so callers can classify them.
func (e *engine) run(ctx context.Context, req Request) (*BrandAnalysis, error) {
	cfg := config.DefaultGraphConfig(PipelineName)
	cfg.Checkpoint.Interval = 1
	cfg.Checkpoint.Preserve = false

	graph, err := state.NewGraphWithDeps(cfg, e.observer, e.checkpoints)
	if err != nil {
		return nil, fmt.Errorf("create pipeline: %w", err)
	}

	var failure error
	fail := func(s state.State, err error) (state.State, error) {
		failure = err
		return s, err
	}

	if err := graph.AddNode(nodeExtract, e.extractNode(fail)); err != nil {
		return nil, err
	}
	if err := graph.AddNode(nodeAnalyze, e.analyzeNode(req.FormData, fail)); err != nil {
		return nil, err
	}
	if err := graph.AddEdge(nodeExtract, nodeAnalyze, nil); err != nil {
		return nil, err
	}
	if err := graph.SetEntryPoint(nodeExtract); err != nil {
		return nil, err
	}
	if err := graph.SetExitPoint(nodeAnalyze); err != nil {
		return nil, err
	}

	initial := state.New(nil).
		Set(keyDocumentURL, req.DocumentURL).
		Set(keyFileType, req.FileType)
	initial.RunID = uuid.NewString()

	final, err := graph.Execute(ctx, initial)
	if failure != nil {
		return nil, failure
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrModelInvocation, ctx.Err())
		}
		return nil, fmt.Errorf("execute pipeline: %w", err)
	}

	v, ok := final.Get(keyResult)
	if !ok {
		return nil, fmt.Errorf("execute pipeline: %s produced no result", nodeAnalyze)
	}
	return v.(*BrandAnalysis), nil
}

type failFunc func(state.State, error) (state.State, error)

func (e *engine) extractNode(fail failFunc) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		address, _ := s.Get(keyDocumentURL)
		fileType, _ := s.Get(keyFileType)

		text, err := e.extractor.Extract(ctx, address.(string), fileType.(string))
		if err != nil {
			return fail(s, err)
		}

		return s.
			Set(keyText, text).
			Set(keyImageOnly, strings.TrimSpace(text) == extraction.ImageSentinel), nil
	})
}

func (e *engine) analyzeNode(hints *Hints, fail failFunc) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		text, _ := s.Get(keyText)
		if image, _ := s.Get(keyImageOnly); image == true {
			e.logger.Info("image document, analyzing from hints", "hints", hints != nil)
		}

		result, err := e.Analyze(ctx, text.(string), hints)
		if err != nil {
			return fail(s, err)
		}
		return s.Set(keyResult, result), nil
	})
}

// Checkpoints holds the most recent pipeline states in memory, keyed by run ID.
// Capacity bounds retention of runs that never reach their exit point.
type Checkpoints struct {
	cache *lru.Cache[string, state.State]
}

// NewCheckpoints creates a checkpoint store retaining up to capacity runs.
func NewCheckpoints(capacity int) *Checkpoints {
	capacity = max(capacity, 1)
	// lru.New only fails for a non-positive size
	cache, _ := lru.New[string, state.State](capacity)
	return &Checkpoints{cache: cache}
}

func (c *Checkpoints) Save(st state.State) error {
	c.cache.Add(st.RunID, st)
	return nil
}

func (c *Checkpoints) Load(runID string) (state.State, error) {
	st, ok := c.cache.Get(runID)
	if !ok {
		return state.State{}, fmt.Errorf("checkpoint not found: %s", runID)
	}
	return st, nil
}

func (c *Checkpoints) Delete(runID string) error {
	c.cache.Remove(runID)
	return nil
}

// List returns retained run IDs, oldest first.
func (c *Checkpoints) List() ([]string, error) {
	return c.cache.Keys(), nil
}

// LogObserver writes pipeline node and edge events to a structured logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an observer that logs at debug level, and at warn
// level for failed nodes.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnEvent(ctx context.Context, event observability.Event) {
	switch event.Type {
	case observability.EventNodeStart:
		o.logger.Debug("stage started", "node", event.Data["node"])
	case observability.EventNodeComplete:
		if failed, _ := event.Data["error"].(bool); failed {
			o.logger.Warn("stage failed", "node", event.Data["node"], "error", event.Data["error_message"])
			return
		}
		o.logger.Debug("stage completed", "node", event.Data["node"])
	case observability.EventEdgeTransition:
		o.logger.Debug("stage transition", "from", event.Data["from"], "to", event.Data["to"])
	default:
		o.logger.Debug("unhandled event", "type", event.Type, "source", event.Source)
	}
}
