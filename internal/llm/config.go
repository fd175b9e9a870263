package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures the model backend used by the classifier,
// the explainer and strategy suggestions.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
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

// RetryConfig configures exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns small, fast models for every backend. Screening
// calls are short and latency matters more than depth here.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 20 * time.Second,
	}
}

// envPrefix namespaces every variable read by ConfigFromEnv.
const envPrefix = "MINDCHECK_"

// ConfigFromEnv overlays MINDCHECK_* environment variables on DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	overrides := []struct {
		name string
		dst  *string
	}{
		{"LLM_PROVIDER", &cfg.Provider},
		{"ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{"ANTHROPIC_MODEL", &cfg.Anthropic.Model},
		{"OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{"OPENAI_MODEL", &cfg.OpenAI.Model},
		{"OPENAI_BASE_URL", &cfg.OpenAI.BaseURL},
		{"GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{"GEMINI_MODEL", &cfg.Gemini.Model},
		{"OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
		{"OPENROUTER_MODEL", &cfg.OpenRouter.Model},
		{"OPENROUTER_BASE_URL", &cfg.OpenRouter.BaseURL},
	}
	for _, o := range overrides {
		if v := os.Getenv(envPrefix + o.name); v != "" {
			*o.dst = v
		}
	}

	return cfg
}

// DiscoverConfig probes the vendors' standard API key variables in the
// order Gemini, OpenAI, Anthropic, OpenRouter and configures the first
// backend whose key is set. The second return is false when none is.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	probes := []struct {
		env      string
		provider string
		dst      *string
	}{
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.dst = k
			return cfg, true
		}
	}

	return Config{}, false
}

// Validate checks that the selected backend has an API key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s%s is required for the %s provider", envPrefix, env, c.Provider)
	}
	return nil
}

// ModelFor returns the configured model name of the selected backend.
func (c Config) ModelFor() string {
	switch c.Provider {
	case ProviderAnthropic:
		return c.Anthropic.Model
	case ProviderOpenAI:
		return c.OpenAI.Model
	case ProviderGemini:
		return c.Gemini.Model
	case ProviderOpenRouter:
		return c.OpenRouter.Model
	}
	return ProviderMock
}
