package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and parameterizes the model vendor. The zero value is not
// usable; start from DefaultConfig or ConfigFromEnv.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one request including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // any OpenAI-compatible endpoint
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff in WithRetry.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks cheap, fast models per vendor — interview prompts are
// short and feedback doesn't need a frontier model.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// envOr reads an env var into dst when it is set.
func envOr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv layers PREPDECK_* variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envOr(&cfg.Provider, "PREPDECK_LLM_PROVIDER")
	envOr(&cfg.Anthropic.APIKey, "PREPDECK_ANTHROPIC_API_KEY")
	envOr(&cfg.Anthropic.Model, "PREPDECK_ANTHROPIC_MODEL")
	envOr(&cfg.OpenAI.APIKey, "PREPDECK_OPENAI_API_KEY")
	envOr(&cfg.OpenAI.Model, "PREPDECK_OPENAI_MODEL")
	envOr(&cfg.OpenAI.BaseURL, "PREPDECK_OPENAI_BASE_URL")
	envOr(&cfg.Gemini.APIKey, "PREPDECK_GEMINI_API_KEY")
	envOr(&cfg.Gemini.Model, "PREPDECK_GEMINI_MODEL")
	envOr(&cfg.OpenRouter.APIKey, "PREPDECK_OPENROUTER_API_KEY")
	envOr(&cfg.OpenRouter.Model, "PREPDECK_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes the vendors' own key variables when nothing was
// configured explicitly, cheapest-first. Reports false when no key exists.
func DiscoverConfig() (Config, bool) {
	type probe struct {
		env      string
		provider string
		key      *string
	}

	cfg := DefaultConfig()
	probes := []probe{
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}

	for _, p := range probes {
		if v := os.Getenv(p.env); v != "" {
			cfg.Provider = p.provider
			*p.key = v
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks the selected provider has what it needs.
func (c Config) Validate() error {
	required := map[string]string{
		"anthropic":  c.Anthropic.APIKey,
		"openai":     c.OpenAI.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
	}
	key, known := required[c.Provider]
	if !known {
		if c.Provider == "mock" {
			return nil
		}
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("no API key configured for the %s provider (set PREPDECK_%s_API_KEY)",
			c.Provider, envSuffix(c.Provider))
	}
	return nil
}

func envSuffix(provider string) string {
	switch provider {
	case "anthropic":
		return "ANTHROPIC"
	case "openai":
		return "OPENAI"
	case "gemini":
		return "GEMINI"
	default:
		return "OPENROUTER"
	}
}
