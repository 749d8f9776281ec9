// Package gec wires prompt construction, generation and response
// extraction into the single correction operation the rest of the system
// calls.
package gec

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/fluentink/corrigo/internal/calllog"
	"github.com/fluentink/corrigo/internal/prompts"
	"github.com/fluentink/corrigo/internal/providers"
)

const (
	// DefaultLanguage is used when a request does not name the essay language.
	DefaultLanguage = "English"

	// DefaultMaxTokens bounds the continuation when the caller does not.
	DefaultMaxTokens = 512

	// markerRetryAttempts is the total number of generation attempts when
	// the answer marker is missing: the original call plus one retry with a
	// doubled token budget. Truncation before the final assistant turn is
	// the common cause, so a larger budget usually recovers it.
	markerRetryAttempts = 2
)

// Corrector runs the correction pipeline against one generation backend.
// It is stateless across requests and safe for concurrent use.
type Corrector struct {
	gen      providers.Generator
	recorder *calllog.Recorder
	logger   *slog.Logger
}

// Config holds dependencies for a Corrector.
type Config struct {
	// Generator is the inference backend. Required.
	Generator providers.Generator
	// Recorder receives a record of every generation call. Optional.
	Recorder *calllog.Recorder
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// New creates a Corrector.
func New(cfg Config) (*Corrector, error) {
	if cfg.Generator == nil {
		return nil, errors.New("generator is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Corrector{
		gen:      cfg.Generator,
		recorder: cfg.Recorder,
		logger:   cfg.Logger,
	}, nil
}

// Request is one correction request.
type Request struct {
	// Essay is the learner-written text to correct.
	Essay string `json:"essay"`
	// Task selects the correction policy (minimal or fluency).
	Task prompts.Task `json:"task"`
	// Mode selects zero_shot or one_shot prompting.
	Mode prompts.Mode `json:"mode"`
	// Language is the language the essay is written in (default English).
	Language string `json:"language,omitempty"`
	// MaxTokens bounds the continuation (default DefaultMaxTokens).
	MaxTokens int `json:"max_tokens,omitempty"`
	// Temperature for sampling; zero uses the provider default.
	Temperature float64 `json:"temperature,omitempty"`
	// Model overrides the backend's default model if set.
	Model string `json:"model,omitempty"`
}

// Result is the outcome of one correction request.
type Result struct {
	// Corrected is the extracted corrected essay.
	Corrected string `json:"corrected"`
	// Prompt is the fully formatted prompt that was sent.
	Prompt string `json:"prompt,omitempty"`

	Provider  string `json:"provider"`
	Model     string `json:"model"`
	RequestID string `json:"request_id"`

	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`

	// Attempts is the number of generation calls made (2 when the marker
	// retry fired).
	Attempts int           `json:"attempts"`
	Duration time.Duration `json:"duration"`
}

// Correct builds the prompt, calls the generator and extracts the
// corrected essay.
//
// If the decoded output lacks the answer marker, the call is retried once
// with a doubled token budget before the error is surfaced. Every other
// error propagates unchanged on the first occurrence; nothing is swallowed.
func (c *Corrector) Correct(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	if req.Language == "" {
		req.Language = DefaultLanguage
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	prompt, err := prompts.Build(req.Mode, req.Task, req.Essay, req.Language)
	if err != nil {
		return nil, err
	}

	var (
		result  *Result
		attempt int
	)

	err = retry.Do(
		func() error {
			attempt++
			opts := calllog.CallOptions{
				Task:      string(req.Task),
				Mode:      string(req.Mode),
				Language:  req.Language,
				MaxTokens: maxTokens,
				Attempt:   attempt,
			}

			gres, genErr := c.gen.Generate(ctx, &providers.GenerateRequest{
				Prompt:      prompt,
				MaxTokens:   maxTokens,
				Temperature: req.Temperature,
				Model:       req.Model,
			})
			if genErr != nil {
				c.record(calllog.FromError(c.gen.Name(), genErr, opts))
				return fmt.Errorf("generate: %w", genErr)
			}
			c.record(calllog.FromResult(gres, opts))

			corrected, exErr := prompts.Extract(gres.Text)
			if exErr != nil {
				c.logger.Warn("answer marker missing from model output",
					"provider", gres.Provider,
					"finish_reason", gres.FinishReason,
					"max_tokens", maxTokens,
					"attempt", attempt)
				maxTokens *= 2
				return exErr
			}

			result = &Result{
				Corrected:        corrected,
				Prompt:           prompt,
				Provider:         gres.Provider,
				Model:            gres.ModelUsed,
				RequestID:        gres.RequestID,
				PromptTokens:     gres.PromptTokens,
				CompletionTokens: gres.CompletionTokens,
				Attempts:         attempt,
				Duration:         time.Since(start),
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(markerRetryAttempts),
		retry.LastErrorOnly(true),
		retry.Delay(time.Millisecond),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, prompts.ErrMarkerNotFound)
		}),
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Corrector) record(call *calllog.Call) {
	if c.recorder != nil {
		c.recorder.Record(call)
	}
}
