package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func completionResponse(text, finishReason string) map[string]any {
	return map[string]any{
		"id":    "gen-test",
		"model": "meta-llama/llama-3.1-8b-instruct",
		"choices": []map[string]any{
			{"text": text, "finish_reason": finishReason},
		},
		"usage": map[string]int{
			"prompt_tokens":     42,
			"completion_tokens": 7,
			"total_tokens":      49,
		},
	}
}

func TestOpenRouterClient_Generate(t *testing.T) {
	t.Run("successful completion", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/completions" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
				t.Errorf("unexpected authorization: %s", auth)
			}

			var req openRouterRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}
			if req.Prompt != "the prompt" {
				t.Errorf("Prompt = %q", req.Prompt)
			}
			if req.MaxTokens != 128 {
				t.Errorf("MaxTokens = %d, want 128", req.MaxTokens)
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(completionResponse(" and the continuation", "stop"))
		}))
		defer server.Close()

		client := NewOpenRouterClient(OpenRouterConfig{
			APIKey:  "test-key",
			BaseURL: server.URL,
		})

		result, err := client.Generate(context.Background(), &GenerateRequest{
			Prompt:    "the prompt",
			MaxTokens: 128,
		})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if result.Text != "the prompt and the continuation" {
			t.Errorf("Text = %q, want echoed prompt plus continuation", result.Text)
		}
		if result.TotalTokens != 49 {
			t.Errorf("TotalTokens = %d, want 49", result.TotalTokens)
		}
		if result.Provider != OpenRouterName {
			t.Errorf("Provider = %q", result.Provider)
		}
		if result.RequestID == "" {
			t.Error("expected a generated request ID")
		}
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			json.NewEncoder(w).Encode(completionResponse("ok", "stop"))
		}))
		defer server.Close()

		client := NewOpenRouterClient(OpenRouterConfig{
			APIKey:     "test-key",
			BaseURL:    server.URL,
			RetryDelay: time.Millisecond,
		})

		result, err := client.Generate(context.Background(), &GenerateRequest{Prompt: "p"})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if got := calls.Load(); got != 2 {
			t.Errorf("server saw %d calls, want 2", got)
		}
		if result.Text != "pok" {
			t.Errorf("Text = %q", result.Text)
		}
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		var calls atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"bad model"}}`))
		}))
		defer server.Close()

		client := NewOpenRouterClient(OpenRouterConfig{
			APIKey:     "test-key",
			BaseURL:    server.URL,
			RetryDelay: time.Millisecond,
		})

		_, err := client.Generate(context.Background(), &GenerateRequest{Prompt: "p"})
		if err == nil {
			t.Fatal("expected error")
		}
		if got := calls.Load(); got != 1 {
			t.Errorf("server saw %d calls, want 1", got)
		}
		if !strings.Contains(err.Error(), "status 400") {
			t.Errorf("error = %v, want status 400 mention", err)
		}
	})

	t.Run("API-level error object", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":{"message":"model overloaded","code":502}}`))
		}))
		defer server.Close()

		client := NewOpenRouterClient(OpenRouterConfig{APIKey: "k", BaseURL: server.URL})
		_, err := client.Generate(context.Background(), &GenerateRequest{Prompt: "p"})
		if err == nil || !strings.Contains(err.Error(), "model overloaded") {
			t.Errorf("error = %v, want API error message", err)
		}
	})
}
