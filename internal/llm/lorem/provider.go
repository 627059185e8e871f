// Package lorem is a mock llm.Provider that generates lorem ipsum text.
// Used for tests and development without requiring real API keys.
package lorem

import (
	"context"
	"strings"

	loremgen "github.com/bozaro/golorem"
)

// Provider generates placeholder text shaped like real completions: a few
// paragraphs for section prompts, a short title list for outline prompts.
type Provider struct {
	generator *loremgen.Lorem
}

// NewProvider creates a new lorem ipsum provider.
func NewProvider() *Provider {
	return &Provider{
		generator: loremgen.New(),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "lorem"
}

// Complete generates lorem ipsum output matching the prompt's expected shape.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Outline prompts expect one title per line
	if strings.Contains(prompt, "document planner") {
		lines := make([]string, 0, 5)
		for i := 0; i < 5; i++ {
			lines = append(lines, p.generator.Sentence(2, 4))
		}
		return strings.Join(lines, "\n"), nil
	}

	paragraphs := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		paragraphs = append(paragraphs, p.generator.Paragraph(3, 5))
	}
	return strings.Join(paragraphs, "\n\n"), nil
}
