// Package llm abstracts the text-generation providers used for drafting and
// refining section content and for suggesting outlines.
package llm

import "context"

// Provider produces a completion for a single prompt.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Complete sends the prompt and returns the generated text.
	Complete(ctx context.Context, prompt string) (string, error)
}
