// Package providers holds text-generation backends for the correction
// pipeline. Every backend implements the narrow Generator contract: one
// prompt string in, one decoded sequence out.
package providers

import (
	"context"
	"time"
)

// Generator is the inference boundary of the pipeline.
//
// Implementations own model selection, transport, authentication and
// retry of transient transport failures. The pipeline treats a Generator
// as an opaque, possibly slow function and imposes no timeout of its own;
// callers bound the call through ctx.
type Generator interface {
	// Generate produces the decoded sequence for one prompt. The result's
	// Text follows local-decoder semantics: echoed prompt followed by the
	// model's continuation. Output may be truncated at the token budget
	// with no end-of-turn marker.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error)

	// Name returns the client identifier (e.g. "openrouter").
	Name() string
}

// GenerateRequest is a single generation call.
type GenerateRequest struct {
	// Prompt is the fully formatted prompt, chat scaffolding included.
	Prompt string `json:"prompt"`

	// MaxTokens bounds the continuation length.
	MaxTokens int `json:"max_tokens"`

	// Temperature for sampling. Zero means the provider default.
	Temperature float64 `json:"temperature,omitempty"`

	// Model overrides the client's default model if set.
	Model string `json:"model,omitempty"`

	// RequestID is generated if empty.
	RequestID string `json:"-"`
}

// GenerateResult is the complete response for one generation call.
type GenerateResult struct {
	// Text is the full decoded sequence: echoed prompt + continuation.
	Text string `json:"text"`

	// Token counts as reported by the backend.
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`

	// FinishReason is the backend's stop reason ("stop", "length", ...).
	FinishReason string `json:"finish_reason,omitempty"`

	// Provider info
	Provider  string `json:"provider"`
	ModelUsed string `json:"model_used"`

	// Request tracking
	RequestID string        `json:"request_id"`
	Duration  time.Duration `json:"duration"`
}

// Truncated reports whether generation stopped at the token budget.
func (r *GenerateResult) Truncated() bool {
	return r.FinishReason == "length"
}
