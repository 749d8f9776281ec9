package config

// DefaultConfig returns the configuration used when no config file exists.
// API keys reference environment variables so the file itself never holds
// secrets.
func DefaultConfig() *Config {
	return &Config{
		Providers: map[string]ProviderCfg{
			"openrouter": {
				Type:    "openrouter",
				Model:   "meta-llama/llama-3.1-8b-instruct",
				APIKey:  "${OPENROUTER_API_KEY}",
				Enabled: true,
			},
			"openai": {
				Type:    "openai",
				Model:   "gpt-3.5-turbo-instruct",
				APIKey:  "${OPENAI_API_KEY}",
				Enabled: false,
			},
			"local": {
				Type:    "openai",
				Model:   "meta-llama/Llama-3.1-8B-Instruct",
				BaseURL: "http://127.0.0.1:8000/v1",
				Enabled: false,
			},
		},
		Defaults: DefaultsCfg{
			Provider:    "openrouter",
			Task:        "minimal",
			Mode:        "one_shot",
			Language:    "English",
			MaxTokens:   512,
			Temperature: 0,
		},
		Runtime: RuntimeCfg{
			ContainerName: "corrigo-runtime",
			Image:         "vllm/vllm-openai:latest",
			Port:          "8000",
			Model:         "meta-llama/Llama-3.1-8B-Instruct",
		},
	}
}
