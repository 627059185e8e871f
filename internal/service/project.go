package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"swiftdoc/internal/config"
	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/repositories"
	"swiftdoc/internal/domain/services"
)

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo  repositories.ProjectRepository
	sectionRepo  repositories.SectionRepository
	feedbackRepo repositories.FeedbackRepository
	txManager    repositories.TransactionManager
	logger       *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	feedbackRepo repositories.FeedbackRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projectRepo:  projectRepo,
		sectionRepo:  sectionRepo,
		feedbackRepo: feedbackRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// CreateProject creates a project and one section per outline entry in a
// single transaction, so a half-created project is never observable.
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*domain.Project, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	docType, err := domain.ParseDocType(req.DocType)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	project := &domain.Project{
		UserID:    req.UserID,
		Title:     strings.TrimSpace(req.Title),
		DocType:   docType,
		Topic:     strings.TrimSpace(req.Topic),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.projectRepo.Create(txCtx, project); err != nil {
			return err
		}

		for idx, title := range req.Outline {
			section := &domain.Section{
				ProjectID:  project.ID,
				Title:      strings.TrimSpace(title),
				OrderIndex: idx,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := s.sectionRepo.Create(txCtx, section); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"title", project.Title,
		"doc_type", project.DocType,
		"sections", len(req.Outline),
		"user_id", req.UserID,
	)

	return project, nil
}

// GetProject retrieves a full project snapshot: the project plus its sections
// in outline order, each with any feedback attached.
func (s *projectService) GetProject(ctx context.Context, id, userID string) (*services.ProjectDetail, error) {
	project, err := s.projectRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	sections, err := s.sectionRepo.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}

	details := make([]services.SectionDetail, 0, len(sections))
	for i := range sections {
		fb, err := s.feedbackRepo.Get(ctx, sections[i].ID)
		if err != nil {
			return nil, err
		}
		details = append(details, services.SectionDetail{
			Section:  sections[i],
			Feedback: fb,
		})
	}

	return &services.ProjectDetail{
		Project:  project,
		Sections: details,
	}, nil
}

// ListProjects retrieves all projects for a user
func (s *projectService) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	return s.projectRepo.List(ctx, userID)
}

// DeleteProject deletes a project and cascades to its sections and feedback.
func (s *projectService) DeleteProject(ctx context.Context, id, userID string) error {
	// Verify project exists first (provides better error message)
	if _, err := s.projectRepo.GetByID(ctx, id, userID); err != nil {
		return err
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		return s.projectRepo.Delete(txCtx, id, userID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("project deleted",
		"id", id,
		"user_id", userID,
	)

	return nil
}

// validateCreateRequest validates a create project request. Title and topic
// may be empty (an untitled project is still a project); an empty outline is
// allowed too, since whether a contentless project is useful is the caller's
// policy decision, not the server's.
func (s *projectService) validateCreateRequest(req *services.CreateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Title,
			validation.Length(0, config.MaxTitleLength),
		),
		validation.Field(&req.DocType, validation.Required),
		validation.Field(&req.Topic,
			validation.Length(0, config.MaxTopicLength),
		),
		validation.Field(&req.Outline,
			validation.Length(0, config.MaxOutlineItems),
			validation.Each(validation.Length(0, config.MaxSectionTitleLength)),
		),
	)
}
