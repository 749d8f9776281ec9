package providers

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Registry holds references to generation clients. It supports
// config-driven instantiation, hot-reload, and thread-safe access.
type Registry struct {
	mu         sync.RWMutex
	generators map[string]Generator
	logger     *slog.Logger
}

// NewRegistry creates a new empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
		logger:     slog.Default(),
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Register registers a generator by name.
func (r *Registry) Register(name string, gen Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[name] = gen
	if r.logger != nil {
		r.logger.Info("registered generator", "name", name)
	}
}

// Get returns a generator by name.
func (r *Registry) Get(name string) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gen, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("generator not found: %s", name)
	}
	return gen, nil
}

// Has checks if a generator is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.generators[name]
	return ok
}

// List returns all registered generator names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegistryConfig defines the generators to instantiate from config.
type RegistryConfig struct {
	// Generators maps provider names to their config
	Generators map[string]GeneratorConfig
}

// GeneratorConfig matches config.ProviderCfg with resolved API key.
type GeneratorConfig struct {
	Type    string // "openrouter", "openai"
	Model   string // Model name
	APIKey  string // Resolved API key
	BaseURL string // Optional endpoint override (local servers)
	Enabled bool
}

// NewRegistryFromConfig creates a registry with generators based on
// configuration. Only enabled providers with valid API keys are registered;
// providers with a BaseURL override may omit the key (local servers do not
// check it).
func NewRegistryFromConfig(cfg RegistryConfig) *Registry {
	r := NewRegistry()
	r.Reload(cfg)
	return r
}

// Reload updates the registry based on new configuration. Providers that
// are no longer configured are unregistered; providers with changed
// settings are recreated.
func (r *Registry) Reload(cfg RegistryConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()

	want := make(map[string]bool)

	for name, genCfg := range cfg.Generators {
		if !genCfg.Enabled {
			continue
		}
		if genCfg.APIKey == "" && genCfg.BaseURL == "" {
			continue
		}
		want[name] = true

		existing, hasExisting := r.generators[name]
		if !hasExisting || needsUpdate(existing, genCfg) {
			gen := createGenerator(genCfg)
			if gen == nil {
				continue
			}
			r.generators[name] = gen
			if r.logger != nil {
				if hasExisting {
					r.logger.Info("updated generator", "name", name, "type", genCfg.Type)
				} else {
					r.logger.Info("registered generator", "name", name, "type", genCfg.Type)
				}
			}
		}
	}

	for name := range r.generators {
		if !want[name] {
			delete(r.generators, name)
			if r.logger != nil {
				r.logger.Info("unregistered generator", "name", name)
			}
		}
	}
}

// createGenerator creates a generation client based on provider type.
func createGenerator(cfg GeneratorConfig) Generator {
	switch cfg.Type {
	case "openrouter":
		return NewOpenRouterClient(OpenRouterConfig{
			APIKey:       cfg.APIKey,
			BaseURL:      cfg.BaseURL,
			DefaultModel: cfg.Model,
		})
	case "openai":
		return NewOpenAIClient(OpenAIConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
	default:
		return nil
	}
}

// needsUpdate checks if a generator needs to be recreated.
func needsUpdate(gen Generator, cfg GeneratorConfig) bool {
	switch g := gen.(type) {
	case *OpenRouterClient:
		return g.apiKey != cfg.APIKey ||
			g.defaultModel != cfg.Model ||
			(cfg.BaseURL != "" && g.baseURL != cfg.BaseURL)
	case *OpenAIClient:
		return g.apiKey != cfg.APIKey || g.model != cfg.Model
	default:
		return true
	}
}
