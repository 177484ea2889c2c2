package analysis_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/go-agents-orchestration/pkg/observability"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/brand-lab/internal/analysis"
)

func TestCheckpoints_ImplementsInterface(t *testing.T) {
	var _ state.CheckpointStore = analysis.NewCheckpoints(4)
}

func TestCheckpoints_SaveLoadDelete(t *testing.T) {
	store := analysis.NewCheckpoints(2)

	for _, id := range []string{"run-a", "run-b", "run-c"} {
		st := state.New(nil).Set("document_url", "/storage/documents/"+id)
		st.RunID = id
		if err := store.Save(st); err != nil {
			t.Fatalf("Save(%s) error: %v", id, err)
		}
	}

	ids, err := store.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if diff := cmp.Diff([]string{"run-b", "run-c"}, ids); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	if _, err := store.Load("run-a"); err == nil {
		t.Error("Load(run-a) succeeded after eviction")
	}

	st, err := store.Load("run-c")
	if err != nil {
		t.Fatalf("Load(run-c) error: %v", err)
	}
	if v, _ := st.Get("document_url"); v != "/storage/documents/run-c" {
		t.Errorf("document_url = %v", v)
	}

	if err := store.Delete("run-c"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := store.Load("run-c"); err == nil {
		t.Error("Load(run-c) succeeded after Delete")
	}
}

func TestLogObserver_OnEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := analysis.NewLogObserver(logger)

	var _ observability.Observer = obs

	events := []observability.Event{
		{
			Type:      observability.EventNodeStart,
			Timestamp: time.Now(),
			Data:      map[string]any{"node": "extract", "iteration": 0},
		},
		{
			Type:      observability.EventEdgeTransition,
			Timestamp: time.Now(),
			Data:      map[string]any{"from": "extract", "to": "analyze", "predicate_result": true},
		},
		{
			Type:      observability.EventNodeComplete,
			Timestamp: time.Now(),
			Data: map[string]any{
				"node":          "analyze",
				"iteration":     0,
				"error":         true,
				"error_message": "model invocation failed",
			},
		},
	}
	for _, ev := range events {
		obs.OnEvent(context.Background(), ev)
	}

	out := buf.String()
	for _, want := range []string{
		"stage started",
		"node=extract",
		"stage transition",
		"to=analyze",
		"level=WARN msg=\"stage failed\"",
		"model invocation failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
