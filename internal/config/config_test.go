package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Providers) == 0 {
		t.Fatal("expected default providers")
	}
	if cfg.Providers["openrouter"].APIKey != "${OPENROUTER_API_KEY}" {
		t.Error("expected openrouter API key placeholder")
	}
	if !cfg.Providers["openrouter"].Enabled {
		t.Error("expected openrouter enabled by default")
	}
	if cfg.Defaults.Task != "minimal" || cfg.Defaults.Mode != "one_shot" {
		t.Errorf("unexpected request defaults: %+v", cfg.Defaults)
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Run("resolves environment variable", func(t *testing.T) {
		os.Setenv("TEST_API_KEY", "secret123")
		defer os.Unsetenv("TEST_API_KEY")

		result := ResolveEnvVars("${TEST_API_KEY}")
		if result != "secret123" {
			t.Errorf("expected secret123, got %s", result)
		}
	})

	t.Run("returns empty for missing env var", func(t *testing.T) {
		result := ResolveEnvVars("${DEFINITELY_NOT_SET_12345}")
		if result != "" {
			t.Errorf("expected empty string, got %s", result)
		}
	})

	t.Run("leaves literal values unchanged", func(t *testing.T) {
		result := ResolveEnvVars("literal-value")
		if result != "literal-value" {
			t.Errorf("expected literal-value, got %s", result)
		}
	})
}

func TestConfig_ToRegistryConfig(t *testing.T) {
	os.Setenv("TEST_OPENROUTER_KEY", "or-key-123")
	defer os.Unsetenv("TEST_OPENROUTER_KEY")

	cfg := &Config{
		Providers: map[string]ProviderCfg{
			"openrouter": {Type: "openrouter", APIKey: "${TEST_OPENROUTER_KEY}", Enabled: true},
			"local":      {Type: "openai", BaseURL: "http://localhost:8000/v1", Enabled: true},
		},
	}

	rc := cfg.ToRegistryConfig()
	if rc.Generators["openrouter"].APIKey != "or-key-123" {
		t.Errorf("APIKey = %q, want resolved env var", rc.Generators["openrouter"].APIKey)
	}
	if rc.Generators["local"].BaseURL != "http://localhost:8000/v1" {
		t.Errorf("BaseURL = %q", rc.Generators["local"].BaseURL)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# Corrigo configuration") {
		t.Error("expected header comment")
	}
	if !strings.Contains(content, "${OPENROUTER_API_KEY}") {
		t.Error("expected API key placeholder in written config")
	}
}

func TestNewManager(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
providers:
  openrouter:
    type: openrouter
    model: test-model
    api_key: literal-key
    enabled: true
defaults:
  task: fluency
`
	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	cfg := mgr.Get()
	if cfg.Providers["openrouter"].Model != "test-model" {
		t.Errorf("Model = %q", cfg.Providers["openrouter"].Model)
	}
	if cfg.Defaults.Task != "fluency" {
		t.Errorf("Defaults.Task = %q", cfg.Defaults.Task)
	}
}
