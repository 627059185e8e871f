package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"swiftdoc/internal/docgen"
	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/repositories"
	"swiftdoc/internal/domain/services"
)

// exportService implements the ExportService interface
type exportService struct {
	projectRepo repositories.ProjectRepository
	sectionRepo repositories.SectionRepository
	logger      *slog.Logger
}

// NewExportService creates a new export service
func NewExportService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	logger *slog.Logger,
) services.ExportService {
	return &exportService{
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

// Export renders the project to its doc_type format. The artifact is composed
// fresh on every call; nothing is cached server-side.
func (s *exportService) Export(ctx context.Context, projectID, userID string) ([]byte, string, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID, userID)
	if err != nil {
		return nil, "", err
	}

	sections, err := s.sectionRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	switch project.DocType {
	case domain.DocTypeWord:
		err = docgen.WriteDocx(&buf, project, sections)
	case domain.DocTypePowerPoint:
		err = docgen.WritePptx(&buf, project, sections)
	default:
		err = fmt.Errorf("%w: unknown doc_type %q", domain.ErrValidation, project.DocType)
	}
	if err != nil {
		return nil, "", fmt.Errorf("export project %s: %w", projectID, err)
	}

	filename := fmt.Sprintf("document.%s", project.DocType)

	s.logger.Info("project exported",
		"project_id", projectID,
		"doc_type", project.DocType,
		"bytes", buf.Len(),
	)

	return buf.Bytes(), filename, nil
}
