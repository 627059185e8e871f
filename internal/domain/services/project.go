package services

import (
	"context"

	"swiftdoc/internal/domain"
)

// CreateProjectRequest carries everything needed to create a project and its
// sections in one atomic call. Outline entries become sections in order.
type CreateProjectRequest struct {
	UserID  string   `json:"-"`
	Title   string   `json:"title"`
	DocType string   `json:"doc_type"`
	Topic   string   `json:"topic"`
	Outline []string `json:"outline"`
}

// ProjectDetail is a full project snapshot: the project plus its ordered sections.
type ProjectDetail struct {
	Project  *domain.Project `json:"project"`
	Sections []SectionDetail `json:"sections"`
}

// SectionDetail is a section with its feedback attached.
type SectionDetail struct {
	domain.Section
	Feedback *domain.Feedback `json:"feedback,omitempty"`
}

// ProjectService defines project business logic
type ProjectService interface {
	// CreateProject creates a project and one section per outline entry,
	// order preserved, atomically.
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*domain.Project, error)

	// GetProject retrieves a full project snapshot.
	GetProject(ctx context.Context, id, userID string) (*ProjectDetail, error)

	// ListProjects retrieves all projects for a user.
	ListProjects(ctx context.Context, userID string) ([]domain.Project, error)

	// DeleteProject removes a project and everything under it. Irreversible.
	DeleteProject(ctx context.Context, id, userID string) error
}
