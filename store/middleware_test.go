package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonwraymond/bypass/observe"
)

// recordingMetrics captures RecordOp calls for assertions.
type recordingMetrics struct {
	mu   sync.Mutex
	ops  []observe.StoreMeta
	miss []bool
}

func (r *recordingMetrics) RecordOp(_ context.Context, meta observe.StoreMeta, _ time.Duration, miss bool) {
	r.mu.Lock()
	r.ops = append(r.ops, meta)
	r.miss = append(r.miss, miss)
	r.mu.Unlock()
}

func newTestObserved(t *testing.T) (*Observed, *recordingMetrics) {
	t.Helper()
	rec := &recordingMetrics{}
	mw := observe.NewMiddleware(observe.NewNoopTracer(), rec, observe.NoopLogger())
	return NewObserved(New(), "test-store", mw), rec
}

func TestObserved_RecordsOps(t *testing.T) {
	o, rec := newTestObserved(t)
	ctx := context.Background()

	o.Set(ctx, 1, "x")
	if v, ok := o.Get(ctx, 1); !ok || v != "x" {
		t.Fatalf("Get = (%v, %v), want (x, true)", v, ok)
	}
	o.Get(ctx, 2)
	o.Del(ctx, 1)
	o.List(ctx)

	wantOps := []string{"set", "get", "get", "del", "list"}
	if len(rec.ops) != len(wantOps) {
		t.Fatalf("recorded %d ops, want %d", len(rec.ops), len(wantOps))
	}
	for i, op := range wantOps {
		if rec.ops[i].Op != op {
			t.Errorf("op %d = %q, want %q", i, rec.ops[i].Op, op)
		}
		if rec.ops[i].Store != "test-store" {
			t.Errorf("op %d store = %q, want %q", i, rec.ops[i].Store, "test-store")
		}
	}
}

func TestObserved_RecordsMisses(t *testing.T) {
	o, rec := newTestObserved(t)
	ctx := context.Background()

	o.Set(ctx, 1, "x")
	o.Get(ctx, 1) // hit
	o.Get(ctx, 2) // miss

	want := []bool{false, false, true}
	if len(rec.miss) != len(want) {
		t.Fatalf("recorded %d ops, want %d", len(rec.miss), len(want))
	}
	for i := range want {
		if rec.miss[i] != want[i] {
			t.Errorf("miss[%d] = %v, want %v", i, rec.miss[i], want[i])
		}
	}
}

func TestObservedFromObserver(t *testing.T) {
	ctx := context.Background()

	obs, err := observe.NewObserver(ctx, observe.Config{
		ServiceName: "bypass-test",
		Metrics:     observe.MetricsConfig{Enabled: true, Exporter: "none"},
	})
	if err != nil {
		t.Fatalf("NewObserver failed: %v", err)
	}
	defer obs.Shutdown(ctx)

	o, err := ObservedFromObserver(New(), "docs", obs)
	if err != nil {
		t.Fatalf("ObservedFromObserver failed: %v", err)
	}

	o.Set(ctx, 5, map[string]any{"a": []any{1, 2, 3}, "b": "hi"})
	got, ok := o.Get(ctx, 5)
	if !ok {
		t.Fatal("Get(5) missed")
	}
	if !valueEqual(got, map[string]any{"a": []any{1, 2, 3}, "b": "hi"}) {
		t.Errorf("Get(5) = %#v", got)
	}
}

func TestObservedFromObserver_NilObserver(t *testing.T) {
	if _, err := ObservedFromObserver(New(), "docs", nil); err == nil {
		t.Error("expected error for nil observer")
	}
}
