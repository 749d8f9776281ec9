package providers

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const MockGeneratorName = "mock"

// MockGenerator is a Generator for testing.
type MockGenerator struct {
	// Configurable behavior
	Latency      time.Duration
	ShouldFail   bool
	FailAfter    int // Fail after N requests (0 = never)
	ResponseText string

	// Echo controls whether the prompt is echoed before ResponseText,
	// matching real decoder output. A non-echoing mock simulates a
	// backend whose output never contains the answer marker.
	Echo bool

	// ResponseFunc, if set, overrides ResponseText and Echo entirely.
	ResponseFunc func(req *GenerateRequest) string

	// State
	requestCount atomic.Int64

	mu       sync.Mutex
	requests []GenerateRequest
}

// NewMockGenerator creates a mock with sensible defaults: it echoes the
// prompt and appends ResponseText.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{
		Latency:      time.Millisecond,
		ResponseText: "mock completion",
		Echo:         true,
	}
}

// Name returns the client identifier.
func (m *MockGenerator) Name() string {
	return MockGeneratorName
}

// Generate returns the configured response.
func (m *MockGenerator) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	start := time.Now()
	count := m.requestCount.Add(1)

	m.mu.Lock()
	m.requests = append(m.requests, *req)
	m.mu.Unlock()

	if m.ShouldFail {
		return nil, fmt.Errorf("mock generator configured to fail")
	}
	if m.FailAfter > 0 && int(count) > m.FailAfter {
		return nil, fmt.Errorf("mock generator failed after %d requests", m.FailAfter)
	}

	select {
	case <-time.After(m.Latency):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var text string
	switch {
	case m.ResponseFunc != nil:
		text = m.ResponseFunc(req)
	case m.Echo:
		text = req.Prompt + m.ResponseText
	default:
		text = m.ResponseText
	}

	// Rough token estimates, enough for metrics plumbing in tests.
	promptTokens := len(req.Prompt) / 4
	completionTokens := len(text[min(len(req.Prompt), len(text)):]) / 4

	return &GenerateResult{
		Text:             text,
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
		FinishReason:     "stop",
		Provider:         MockGeneratorName,
		ModelUsed:        req.Model,
		RequestID:        fmt.Sprintf("mock-%d", count),
		Duration:         time.Since(start),
	}, nil
}

// RequestCount returns the number of requests made.
func (m *MockGenerator) RequestCount() int64 {
	return m.requestCount.Load()
}

// Requests returns a copy of all requests seen so far.
func (m *MockGenerator) Requests() []GenerateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]GenerateRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// Reset clears the request history and counter.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	m.requests = nil
	m.mu.Unlock()
	m.requestCount.Store(0)
}

// Verify interface
var _ Generator = (*MockGenerator)(nil)
