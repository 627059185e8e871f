package llm

import (
	"fmt"

	"swiftdoc/internal/config"
	"swiftdoc/internal/llm/anthropic"
	"swiftdoc/internal/llm/lorem"
)

// NewProvider creates the provider named by cfg.DefaultProvider.
//
// Supported providers:
//   - "anthropic" - Claude models via the Anthropic API
//   - "lorem" - mock provider for testing (no API key required)
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.DefaultProvider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
		provider, err := anthropic.NewProvider(cfg.AnthropicAPIKey, cfg.DefaultModel)
		if err != nil {
			return nil, fmt.Errorf("create anthropic provider: %w", err)
		}
		return provider, nil

	case "lorem":
		return lorem.NewProvider(), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.DefaultProvider)
	}
}
