package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/mindcheck/internal/store"
)

// ErrNotConfigured is returned by NewProviderFromEnv when neither
// MINDCHECK_LLM_PROVIDER nor any vendor API key is set.
var ErrNotConfigured = errors.New("no LLM provider configured")

// NewProvider builds the configured backend and wraps it as
// caller → retry → logging → backend. A nil repo disables event logging.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo) (Provider, error) {
	var (
		base Provider
		err  error
	)

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := base
	if repo != nil {
		p = WithLogging(p, cfg.Provider, repo)
	}
	return WithRetry(p, cfg.Retry), nil
}

// NewProviderFromEnv resolves configuration from MINDCHECK_* variables when
// a provider is named explicitly and falls back to DiscoverConfig otherwise.
func NewProviderFromEnv(ctx context.Context, repo store.EventRepo) (Provider, error) {
	var cfg Config
	if os.Getenv(envPrefix+"LLM_PROVIDER") != "" {
		cfg = ConfigFromEnv()
	} else {
		var ok bool
		if cfg, ok = DiscoverConfig(); !ok {
			return nil, ErrNotConfigured
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, repo)
}
