package config

// Config holds corrigo configuration.
// Loaded from ./config.yaml or ~/.corrigo/config.yaml.
type Config struct {
	Providers map[string]ProviderCfg `mapstructure:"providers" yaml:"providers"`
	Defaults  DefaultsCfg            `mapstructure:"defaults" yaml:"defaults"`
	Runtime   RuntimeCfg             `mapstructure:"runtime" yaml:"runtime"`
}

// ProviderCfg configures a generation provider.
type ProviderCfg struct {
	Type    string `mapstructure:"type" yaml:"type"`         // "openrouter", "openai"
	Model   string `mapstructure:"model" yaml:"model"`       // Model name
	APIKey  string `mapstructure:"api_key" yaml:"api_key"`   // API key (supports ${ENV_VAR} syntax)
	BaseURL string `mapstructure:"base_url" yaml:"base_url"` // Optional endpoint override
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
}

// DefaultsCfg specifies default request parameters.
type DefaultsCfg struct {
	Provider    string  `mapstructure:"provider" yaml:"provider"`       // Default generation provider
	Task        string  `mapstructure:"task" yaml:"task"`               // "minimal" or "fluency"
	Mode        string  `mapstructure:"mode" yaml:"mode"`               // "zero_shot" or "one_shot"
	Language    string  `mapstructure:"language" yaml:"language"`       // Essay language
	MaxTokens   int     `mapstructure:"max_tokens" yaml:"max_tokens"`   // Continuation budget
	Temperature float64 `mapstructure:"temperature" yaml:"temperature"` // Sampling temperature
}

// RuntimeCfg holds local inference container configuration.
type RuntimeCfg struct {
	// ContainerName is the Docker container name (default: corrigo-runtime)
	ContainerName string `mapstructure:"container_name" yaml:"container_name"`
	// Image is the Docker image to use (default: vllm/vllm-openai:latest)
	Image string `mapstructure:"image" yaml:"image"`
	// Port is the host port to bind (default: 8000)
	Port string `mapstructure:"port" yaml:"port"`
	// Model is the model the container serves
	Model string `mapstructure:"model" yaml:"model"`
	// CachePath is the host path mounted as the model cache
	CachePath string `mapstructure:"cache_path" yaml:"cache_path"`
}
