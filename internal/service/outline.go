package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"swiftdoc/internal/config"
	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/services"
	"swiftdoc/internal/llm"
)

// outlineService implements the OutlineService interface
type outlineService struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewOutlineService creates a new outline service
func NewOutlineService(provider llm.Provider, logger *slog.Logger) services.OutlineService {
	return &outlineService{
		provider: provider,
		logger:   logger,
	}
}

// Suggest generates an ordered list of section titles for a topic.
// The response may be empty when the model produces nothing usable;
// callers treat that as "keep what you have".
func (s *outlineService) Suggest(ctx context.Context, req *services.SuggestOutlineRequest) (*services.SuggestOutlineResponse, error) {
	if err := s.validateSuggestRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	docType, err := domain.ParseDocType(req.DocType)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.Complete(ctx, llm.OutlinePrompt(docType, req.Topic))
	if err != nil {
		return nil, fmt.Errorf("suggest outline: %w", err)
	}

	titles := llm.ParseOutline(raw)
	if titles == nil {
		titles = []string{}
	}

	s.logger.Info("outline suggested",
		"doc_type", docType,
		"titles", len(titles),
		"provider", s.provider.Name(),
	)

	return &services.SuggestOutlineResponse{Outline: titles}, nil
}

func (s *outlineService) validateSuggestRequest(req *services.SuggestOutlineRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Topic,
			validation.Required,
			validation.By(notBlank),
			validation.Length(1, config.MaxTopicLength),
		),
		validation.Field(&req.DocType, validation.Required),
	)
}
