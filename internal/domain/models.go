package domain

import (
	"fmt"
	"time"
)

// DocType identifies the artifact format a project exports to.
type DocType string

const (
	DocTypeWord       DocType = "docx"
	DocTypePowerPoint DocType = "pptx"
)

// ParseDocType validates and converts a raw string into a DocType.
func ParseDocType(s string) (DocType, error) {
	switch DocType(s) {
	case DocTypeWord, DocTypePowerPoint:
		return DocType(s), nil
	default:
		return "", fmt.Errorf("%w: doc_type must be docx or pptx, got %q", ErrValidation, s)
	}
}

// User is an account that owns projects.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Project is a document-authoring unit: title, export format, topic used as
// AI context, and an ordered set of sections fixed at creation time.
// DocType is immutable after creation.
type Project struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	DocType   DocType   `json:"doc_type"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Section is a named content slot within a project. Content is empty until the
// first successful generation; a successful generate/refine replaces it
// wholesale, and a failed one leaves it untouched. OrderIndex is assigned at
// creation from the outline position and never renumbered.
type Section struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HasContent reports whether the section has ever been generated.
func (s *Section) HasContent() bool {
	return s.Content != ""
}

// Feedback is a user's reaction to a section's generated content.
// At most one feedback row exists per section; submissions upsert.
type Feedback struct {
	ID        string    `json:"-"`
	SectionID string    `json:"-"`
	Liked     *bool     `json:"liked"`
	Comment   string    `json:"comment"`
	UpdatedAt time.Time `json:"-"`
}
