package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/services"
)

func TestOutlineSuggest(t *testing.T) {
	t.Run("parses provider output into clean titles", func(t *testing.T) {
		provider := &stubProvider{response: "1. Introduction\n2. Methods\n\n- Results\n"}
		svc := NewOutlineService(provider, testLogger())

		resp, err := svc.Suggest(context.Background(), &services.SuggestOutlineRequest{
			Topic:   "glacier retreat",
			DocType: "docx",
		})
		if err != nil {
			t.Fatalf("suggest: %v", err)
		}
		want := []string{"Introduction", "Methods", "Results"}
		if !reflect.DeepEqual(resp.Outline, want) {
			t.Errorf("outline = %v, want %v", resp.Outline, want)
		}
	})

	t.Run("unusable output yields an empty list, not nil", func(t *testing.T) {
		provider := &stubProvider{response: "\n  \n"}
		svc := NewOutlineService(provider, testLogger())

		resp, err := svc.Suggest(context.Background(), &services.SuggestOutlineRequest{
			Topic:   "glacier retreat",
			DocType: "pptx",
		})
		if err != nil {
			t.Fatalf("suggest: %v", err)
		}
		if resp.Outline == nil || len(resp.Outline) != 0 {
			t.Errorf("outline = %#v, want empty non-nil slice", resp.Outline)
		}
	})

	t.Run("rejects blank topic and bad doc type", func(t *testing.T) {
		provider := &stubProvider{response: "ignored"}
		svc := NewOutlineService(provider, testLogger())

		cases := []services.SuggestOutlineRequest{
			{Topic: "", DocType: "docx"},
			{Topic: "   ", DocType: "docx"},
			{Topic: "topic", DocType: "html"},
		}
		for _, req := range cases {
			if _, err := svc.Suggest(context.Background(), &req); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Suggest(%+v) error = %v, want ErrValidation", req, err)
			}
		}
		if provider.callCount() != 0 {
			t.Errorf("provider calls = %d, want 0", provider.callCount())
		}
	})

	t.Run("doc type steers the prompt", func(t *testing.T) {
		provider := &stubProvider{response: "Overview"}
		svc := NewOutlineService(provider, testLogger())

		if _, err := svc.Suggest(context.Background(), &services.SuggestOutlineRequest{
			Topic:   "quarterly results",
			DocType: "pptx",
		}); err != nil {
			t.Fatalf("suggest: %v", err)
		}
		if !strings.Contains(provider.prompts[0], "pptx") {
			t.Error("prompt missing the doc type")
		}
	})
}
