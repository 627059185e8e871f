package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"swiftdoc/internal/config"
	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/repositories"
	"swiftdoc/internal/domain/services"
	"swiftdoc/internal/llm"
)

// sectionService implements the SectionService interface
type sectionService struct {
	sectionRepo  repositories.SectionRepository
	projectRepo  repositories.ProjectRepository
	feedbackRepo repositories.FeedbackRepository
	provider     llm.Provider
	logger       *slog.Logger
}

// NewSectionService creates a new section service
func NewSectionService(
	sectionRepo repositories.SectionRepository,
	projectRepo repositories.ProjectRepository,
	feedbackRepo repositories.FeedbackRepository,
	provider llm.Provider,
	logger *slog.Logger,
) services.SectionService {
	return &sectionService{
		sectionRepo:  sectionRepo,
		projectRepo:  projectRepo,
		feedbackRepo: feedbackRepo,
		provider:     provider,
		logger:       logger,
	}
}

// Generate drafts fresh content for a section. The stored content is only
// touched after the provider call succeeds, so a failed generation leaves the
// section exactly as it was.
func (s *sectionService) Generate(ctx context.Context, sectionID, userID string) (string, error) {
	section, project, err := s.ownedSection(ctx, sectionID, userID)
	if err != nil {
		return "", err
	}

	prompt := llm.SectionPrompt(project.DocType, project.Topic, section.Title)
	content, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate section %s: %w", sectionID, err)
	}

	if err := s.sectionRepo.UpdateContent(ctx, sectionID, content); err != nil {
		return "", err
	}

	s.logger.Info("section generated",
		"section_id", sectionID,
		"project_id", project.ID,
		"provider", s.provider.Name(),
		"chars", len(content),
	)

	return content, nil
}

// Refine rewrites the section's current content per the user instruction.
func (s *sectionService) Refine(ctx context.Context, sectionID, userID string, req *services.RefineRequest) (string, error) {
	if err := s.validateRefineRequest(req); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	section, project, err := s.ownedSection(ctx, sectionID, userID)
	if err != nil {
		return "", err
	}

	prompt := llm.RefinePrompt(section.Content, strings.TrimSpace(req.Instruction))
	content, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("refine section %s: %w", sectionID, err)
	}

	if err := s.sectionRepo.UpdateContent(ctx, sectionID, content); err != nil {
		return "", err
	}

	s.logger.Info("section refined",
		"section_id", sectionID,
		"project_id", project.ID,
		"provider", s.provider.Name(),
		"chars", len(content),
	)

	return content, nil
}

// SubmitFeedback records a reaction to a section's content
func (s *sectionService) SubmitFeedback(ctx context.Context, sectionID, userID string, req *services.FeedbackRequest) error {
	if _, _, err := s.ownedSection(ctx, sectionID, userID); err != nil {
		return err
	}

	fb := &domain.Feedback{
		SectionID: sectionID,
		Liked:     req.Liked,
	}
	if req.Comment != nil {
		fb.Comment = *req.Comment
	}

	if err := s.feedbackRepo.Upsert(ctx, fb); err != nil {
		return err
	}

	s.logger.Info("feedback submitted", "section_id", sectionID)
	return nil
}

// ownedSection loads a section and its project, verifying the project belongs
// to the caller. Sections of other users' projects surface as not found.
func (s *sectionService) ownedSection(ctx context.Context, sectionID, userID string) (*domain.Section, *domain.Project, error) {
	section, err := s.sectionRepo.GetByID(ctx, sectionID)
	if err != nil {
		return nil, nil, err
	}

	project, err := s.projectRepo.GetByID(ctx, section.ProjectID, userID)
	if err != nil {
		return nil, nil, err
	}

	return section, project, nil
}

// validateRefineRequest rejects blank instructions before any provider call.
func (s *sectionService) validateRefineRequest(req *services.RefineRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Instruction,
			validation.Required,
			validation.By(notBlank),
			validation.Length(1, config.MaxInstructionLength),
		),
	)
}

// notBlank rejects strings that are empty after trimming.
func notBlank(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be blank")
	}
	return nil
}
