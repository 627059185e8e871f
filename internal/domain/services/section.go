package services

import (
	"context"

	"swiftdoc/internal/domain"
)

// RefineRequest carries the user instruction for a refine call.
// Instruction must be non-empty.
type RefineRequest struct {
	Instruction string `json:"instruction"`
}

// FeedbackRequest carries a feedback submission. Nil fields leave the stored
// values unchanged.
type FeedbackRequest struct {
	Liked   *bool   `json:"liked"`
	Comment *string `json:"comment"`
}

// SectionService defines the generate/refine/feedback operations on sections.
// Generation is atomic from the caller's perspective: success replaces the
// section content wholesale, failure leaves the prior content untouched.
type SectionService interface {
	// Generate drafts fresh content for a section from its project's topic
	// and doc type. Returns the new content.
	Generate(ctx context.Context, sectionID, userID string) (string, error)

	// Refine rewrites the section's current content per the instruction.
	// Returns the new content.
	Refine(ctx context.Context, sectionID, userID string, req *RefineRequest) (string, error)

	// SubmitFeedback records a reaction to a section's content.
	SubmitFeedback(ctx context.Context, sectionID, userID string, req *FeedbackRequest) error
}

// SuggestOutlineRequest asks for an AI-drafted outline.
type SuggestOutlineRequest struct {
	Topic   string `json:"topic"`
	DocType string `json:"doc_type"`
}

// SuggestOutlineResponse is the ordered list of suggested titles.
// May be empty when the model returns nothing usable.
type SuggestOutlineResponse struct {
	Outline []string `json:"outline"`
}

// OutlineService drafts outlines before a project exists.
type OutlineService interface {
	// Suggest generates an ordered list of section titles for a topic.
	Suggest(ctx context.Context, req *SuggestOutlineRequest) (*SuggestOutlineResponse, error)
}

// ExportService composes the downloadable artifact for a project.
type ExportService interface {
	// Export renders the project to its doc_type format. Returns the file
	// bytes and the filename the artifact should be saved under.
	Export(ctx context.Context, projectID, userID string) ([]byte, string, error)
}

// AuthService handles account registration and login.
type AuthService interface {
	// Register creates an account.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// Login checks credentials and returns a bearer token.
	Login(ctx context.Context, email, password string) (string, error)
}
