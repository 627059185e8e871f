package lorem_test

import (
	"context"
	"strings"
	"testing"

	"swiftdoc/internal/domain"
	"swiftdoc/internal/llm"
	"swiftdoc/internal/llm/lorem"
)

func TestCompleteSectionPrompt(t *testing.T) {
	p := lorem.NewProvider()

	prompt := llm.SectionPrompt(domain.DocTypeWord, "glaciers", "Introduction")
	out, err := p.Complete(context.Background(), prompt)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out == "" {
		t.Fatal("empty completion")
	}
	if len(strings.Split(out, "\n\n")) != 3 {
		t.Errorf("expected 3 paragraphs, got %q", out)
	}
}

func TestCompleteOutlinePrompt(t *testing.T) {
	p := lorem.NewProvider()

	prompt := llm.OutlinePrompt(domain.DocTypePowerPoint, "quarterly results")
	out, err := p.Complete(context.Background(), prompt)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	titles := llm.ParseOutline(out)
	if len(titles) != 5 {
		t.Errorf("expected 5 titles, got %d: %v", len(titles), titles)
	}
}

func TestCompleteHonorsCancellation(t *testing.T) {
	p := lorem.NewProvider()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Complete(ctx, "anything"); err == nil {
		t.Fatal("expected a context error")
	}
}
