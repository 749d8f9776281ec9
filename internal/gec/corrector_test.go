package gec

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fluentink/corrigo/internal/calllog"
	"github.com/fluentink/corrigo/internal/prompts"
	"github.com/fluentink/corrigo/internal/providers"
)

func newTestCorrector(t *testing.T, gen providers.Generator, rec *calllog.Recorder) *Corrector {
	t.Helper()
	c, err := New(Config{Generator: gen, Recorder: rec})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestCorrector_Correct(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		mock := providers.NewMockGenerator()
		mock.ResponseText = "This is a test essay.\n" + prompts.EndOfTurn

		c := newTestCorrector(t, mock, nil)
		result, err := c.Correct(context.Background(), Request{
			Essay:    "This is a test esay.",
			Task:     prompts.TaskMinimal,
			Mode:     prompts.ModeOneShot,
			Language: "English",
		})
		if err != nil {
			t.Fatalf("Correct() error = %v", err)
		}
		if result.Corrected != "This is a test essay." {
			t.Errorf("Corrected = %q, want %q", result.Corrected, "This is a test essay.")
		}
		if result.Attempts != 1 {
			t.Errorf("Attempts = %d, want 1", result.Attempts)
		}
	})

	t.Run("missing marker retries once with doubled budget", func(t *testing.T) {
		mock := providers.NewMockGenerator()
		mock.Echo = false // output never contains the marker
		mock.ResponseText = "no marker here"

		c := newTestCorrector(t, mock, nil)
		_, err := c.Correct(context.Background(), Request{
			Essay:     "essay",
			Task:      prompts.TaskMinimal,
			Mode:      prompts.ModeZeroShot,
			MaxTokens: 100,
		})
		if !errors.Is(err, prompts.ErrMarkerNotFound) {
			t.Fatalf("Correct() error = %v, want ErrMarkerNotFound", err)
		}

		reqs := mock.Requests()
		if len(reqs) != 2 {
			t.Fatalf("generator saw %d requests, want 2", len(reqs))
		}
		if reqs[0].MaxTokens != 100 || reqs[1].MaxTokens != 200 {
			t.Errorf("budgets = %d, %d; want 100 then 200", reqs[0].MaxTokens, reqs[1].MaxTokens)
		}
	})

	t.Run("retry can recover a truncated first attempt", func(t *testing.T) {
		mock := providers.NewMockGenerator()
		mock.ResponseFunc = func(req *providers.GenerateRequest) string {
			if req.MaxTokens <= 4 {
				// Truncated before the echo reached the final assistant turn.
				return req.Prompt[:20]
			}
			return req.Prompt + "Fixed essay." + prompts.EndOfTurn
		}

		c := newTestCorrector(t, mock, nil)
		result, err := c.Correct(context.Background(), Request{
			Essay:     "essay",
			Task:      prompts.TaskFluency,
			Mode:      prompts.ModeZeroShot,
			MaxTokens: 4,
		})
		if err != nil {
			t.Fatalf("Correct() error = %v", err)
		}
		if result.Corrected != "Fixed essay." {
			t.Errorf("Corrected = %q", result.Corrected)
		}
		if result.Attempts != 2 {
			t.Errorf("Attempts = %d, want 2", result.Attempts)
		}
	})

	t.Run("generator failure is not retried", func(t *testing.T) {
		mock := providers.NewMockGenerator()
		mock.ShouldFail = true

		c := newTestCorrector(t, mock, nil)
		_, err := c.Correct(context.Background(), Request{
			Essay: "essay",
			Task:  prompts.TaskMinimal,
			Mode:  prompts.ModeZeroShot,
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if errors.Is(err, prompts.ErrMarkerNotFound) {
			t.Errorf("error = %v, must not be a marker error", err)
		}
		if got := mock.RequestCount(); got != 1 {
			t.Errorf("generator saw %d requests, want 1", got)
		}
	})

	t.Run("unknown task surfaces before any generation", func(t *testing.T) {
		mock := providers.NewMockGenerator()
		c := newTestCorrector(t, mock, nil)

		_, err := c.Correct(context.Background(), Request{
			Essay: "essay",
			Task:  prompts.Task("rewrite"),
			Mode:  prompts.ModeZeroShot,
		})
		if !errors.Is(err, prompts.ErrUnknownTask) {
			t.Fatalf("Correct() error = %v, want ErrUnknownTask", err)
		}
		if got := mock.RequestCount(); got != 0 {
			t.Errorf("generator saw %d requests, want 0", got)
		}
	})

	t.Run("records calls", func(t *testing.T) {
		mock := providers.NewMockGenerator()
		mock.ResponseText = "Done." + prompts.EndOfTurn
		rec := calllog.NewRecorder(0)

		c := newTestCorrector(t, mock, rec)
		_, err := c.Correct(context.Background(), Request{
			Essay: "essay",
			Task:  prompts.TaskMinimal,
			Mode:  prompts.ModeZeroShot,
		})
		if err != nil {
			t.Fatalf("Correct() error = %v", err)
		}

		calls := rec.List()
		if len(calls) != 1 {
			t.Fatalf("recorded %d calls, want 1", len(calls))
		}
		if calls[0].Task != "minimal" || calls[0].Mode != "zero_shot" || !calls[0].Success {
			t.Errorf("unexpected call record: %+v", calls[0])
		}
		if calls[0].Language != DefaultLanguage {
			t.Errorf("Language = %q, want default applied", calls[0].Language)
		}
	})

	t.Run("prompt passed to generator contains the essay", func(t *testing.T) {
		mock := providers.NewMockGenerator()
		mock.ResponseText = "ok" + prompts.EndOfTurn

		c := newTestCorrector(t, mock, nil)
		if _, err := c.Correct(context.Background(), Request{
			Essay: "a very particular essay",
			Task:  prompts.TaskMinimal,
			Mode:  prompts.ModeOneShot,
		}); err != nil {
			t.Fatalf("Correct() error = %v", err)
		}
		reqs := mock.Requests()
		if len(reqs) != 1 || !strings.Contains(reqs[0].Prompt, "a very particular essay") {
			t.Error("prompt sent to generator must contain the essay")
		}
	})
}

func TestNew_RequiresGenerator(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error for missing generator")
	}
}
