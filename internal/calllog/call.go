// Package calllog records generation calls for traceability. Every call
// into a provider is captured with its parameters, token usage and outcome.
package calllog

import (
	"time"

	"github.com/fluentink/corrigo/internal/providers"
)

// Call represents one recorded generation call.
type Call struct {
	// Unique identifier (the provider request ID).
	ID string `json:"id"`

	// Timing
	Timestamp time.Time `json:"timestamp"`
	LatencyMs int       `json:"latency_ms"`

	// Request parameters
	Task      string `json:"task"`
	Mode      string `json:"mode"`
	Language  string `json:"language"`
	MaxTokens int    `json:"max_tokens"`
	Attempt   int    `json:"attempt"`

	// Model info
	Provider string `json:"provider"`
	Model    string `json:"model"`

	// Token usage
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`

	// Status
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CallOptions provides request context for recording a call.
type CallOptions struct {
	Task      string
	Mode      string
	Language  string
	MaxTokens int
	Attempt   int
}

// FromResult creates a Call from a generation result. Returns nil if
// result is nil.
func FromResult(result *providers.GenerateResult, opts CallOptions) *Call {
	if result == nil {
		return nil
	}
	return &Call{
		ID:           result.RequestID,
		Timestamp:    time.Now(),
		LatencyMs:    int(result.Duration.Milliseconds()),
		Task:         opts.Task,
		Mode:         opts.Mode,
		Language:     opts.Language,
		MaxTokens:    opts.MaxTokens,
		Attempt:      opts.Attempt,
		Provider:     result.Provider,
		Model:        result.ModelUsed,
		InputTokens:  result.PromptTokens,
		OutputTokens: result.CompletionTokens,
		Success:      true,
	}
}

// FromError creates a failed Call record for a generation that returned
// an error.
func FromError(provider string, err error, opts CallOptions) *Call {
	c := &Call{
		Timestamp: time.Now(),
		Task:      opts.Task,
		Mode:      opts.Mode,
		Language:  opts.Language,
		MaxTokens: opts.MaxTokens,
		Attempt:   opts.Attempt,
		Provider:  provider,
		Success:   false,
	}
	if err != nil {
		c.Error = err.Error()
	}
	return c
}
