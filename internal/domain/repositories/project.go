package repositories

import (
	"context"

	"swiftdoc/internal/domain"
)

// ProjectRepository persists projects.
type ProjectRepository interface {
	// Create inserts a project and fills in its generated fields.
	Create(ctx context.Context, project *domain.Project) error

	// GetByID retrieves a project owned by userID.
	GetByID(ctx context.Context, id, userID string) (*domain.Project, error)

	// List retrieves all projects for a user, most recently updated first.
	List(ctx context.Context, userID string) ([]domain.Project, error)

	// Delete removes a project and everything under it (sections, feedback).
	Delete(ctx context.Context, id, userID string) error
}

// SectionRepository persists the sections belonging to projects.
type SectionRepository interface {
	// Create inserts a section.
	Create(ctx context.Context, section *domain.Section) error

	// GetByID retrieves a section by ID.
	GetByID(ctx context.Context, id string) (*domain.Section, error)

	// ListByProject retrieves a project's sections ordered by order_index.
	ListByProject(ctx context.Context, projectID string) ([]domain.Section, error)

	// UpdateContent replaces a section's content wholesale.
	UpdateContent(ctx context.Context, id, content string) error
}

// FeedbackRepository persists per-section feedback.
type FeedbackRepository interface {
	// Get retrieves the feedback for a section, or nil if none exists.
	Get(ctx context.Context, sectionID string) (*domain.Feedback, error)

	// Upsert creates or merges feedback for a section. Nil Liked and empty
	// Comment fields leave the stored values unchanged.
	Upsert(ctx context.Context, fb *domain.Feedback) error
}

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts a user.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
