package calllog

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fluentink/corrigo/internal/providers"
)

func TestRecorder(t *testing.T) {
	t.Run("records and lists in order", func(t *testing.T) {
		r := NewRecorder(0)
		r.Record(&Call{ID: "a"})
		r.Record(&Call{ID: "b"})
		r.Record(nil) // ignored

		calls := r.List()
		if len(calls) != 2 {
			t.Fatalf("Len = %d, want 2", len(calls))
		}
		if calls[0].ID != "a" || calls[1].ID != "b" {
			t.Errorf("order wrong: %v", calls)
		}
	})

	t.Run("caps retained calls", func(t *testing.T) {
		r := NewRecorder(2)
		r.Record(&Call{ID: "a"})
		r.Record(&Call{ID: "b"})
		r.Record(&Call{ID: "c"})

		calls := r.List()
		if len(calls) != 2 {
			t.Fatalf("Len = %d, want 2", len(calls))
		}
		if calls[0].ID != "b" || calls[1].ID != "c" {
			t.Errorf("expected oldest call evicted, got %v", calls)
		}
	})

	t.Run("writes JSONL", func(t *testing.T) {
		r := NewRecorder(0)
		r.Record(&Call{ID: "x", Provider: "mock"})

		var buf bytes.Buffer
		if err := r.WriteJSONL(&buf); err != nil {
			t.Fatalf("WriteJSONL() error = %v", err)
		}
		line := strings.TrimSpace(buf.String())
		if !strings.Contains(line, `"id":"x"`) {
			t.Errorf("unexpected JSONL line: %s", line)
		}
	})
}

func TestFromResult(t *testing.T) {
	result := &providers.GenerateResult{
		RequestID:        "req-1",
		Provider:         "mock",
		ModelUsed:        "m",
		PromptTokens:     10,
		CompletionTokens: 5,
		Duration:         1500 * time.Millisecond,
	}
	call := FromResult(result, CallOptions{Task: "minimal", Mode: "one_shot", Attempt: 1})
	if call.ID != "req-1" || !call.Success {
		t.Errorf("unexpected call: %+v", call)
	}
	if call.LatencyMs != 1500 {
		t.Errorf("LatencyMs = %d, want 1500", call.LatencyMs)
	}
	if FromResult(nil, CallOptions{}) != nil {
		t.Error("FromResult(nil) must return nil")
	}
}
