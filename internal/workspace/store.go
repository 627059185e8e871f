// Package workspace is the client-side orchestration core: the active
// project snapshot, the per-section generation guard, and the export path.
package workspace

import (
	"context"
	"fmt"
	"sync"

	"swiftdoc/internal/client"
	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/services"
)

// API is the slice of the backend client the workspace needs.
// *client.Client satisfies it; tests substitute fakes.
type API interface {
	GetProject(ctx context.Context, session *client.Session, projectID string) (*services.ProjectDetail, error)
	DeleteProject(ctx context.Context, session *client.Session, projectID string) error
	GenerateSection(ctx context.Context, session *client.Session, sectionID string) error
	RefineSection(ctx context.Context, session *client.Session, sectionID, instruction string) error
	ExportProject(ctx context.Context, session *client.Session, projectID, docType string) ([]byte, string, error)
}

// ErrNoActiveProject is returned by operations that need a loaded project.
var ErrNoActiveProject = fmt.Errorf("%w: no active project loaded", domain.ErrNotFound)

// Snapshot is one consistent view of the active project as the backend
// reported it. It is immutable once installed; updates swap the whole
// pointer, never individual fields, so a reader that grabs a snapshot once
// can never observe a half-applied refresh.
type Snapshot struct {
	Project  domain.Project
	Sections []services.SectionDetail
}

// Section returns the section with the given id, or nil.
func (s *Snapshot) Section(sectionID string) *services.SectionDetail {
	for i := range s.Sections {
		if s.Sections[i].ID == sectionID {
			return &s.Sections[i]
		}
	}
	return nil
}

// SectionByIndex returns the section at display position i (outline order).
func (s *Snapshot) SectionByIndex(i int) (*services.SectionDetail, error) {
	if i < 0 || i >= len(s.Sections) {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("no section at index %d", i)}
	}
	return &s.Sections[i], nil
}

// Store holds the active project snapshot. Safe for concurrent use.
type Store struct {
	api API

	mu      sync.RWMutex
	current *Snapshot
	seq     uint64
}

// NewStore returns a store with no active project.
func NewStore(api API) *Store {
	return &Store{api: api}
}

// Snapshot returns the current snapshot, or nil when nothing is loaded.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Load fetches the project and installs it as the active snapshot.
func (s *Store) Load(ctx context.Context, session *client.Session, projectID string) (*Snapshot, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	return s.fetch(ctx, session, projectID, seq)
}

// Refresh re-fetches the active project and swaps the snapshot wholesale.
// A refresh that completes after a newer load or refresh was issued is
// dropped so an older backend state can never overwrite a newer one.
func (s *Store) Refresh(ctx context.Context, session *client.Session) (*Snapshot, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveProject
	}
	projectID := s.current.Project.ID
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	return s.fetch(ctx, session, projectID, seq)
}

func (s *Store) fetch(ctx context.Context, session *client.Session, projectID string, seq uint64) (*Snapshot, error) {
	detail, err := s.api.GetProject(ctx, session, projectID)
	if err != nil {
		return nil, fmt.Errorf("fetch project %s: %w", projectID, err)
	}
	if detail.Project == nil {
		return nil, fmt.Errorf("fetch project %s: response missing project", projectID)
	}

	snap := &Snapshot{
		Project:  *detail.Project,
		Sections: detail.Sections,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		// A newer fetch was issued while this one ran; keep its result.
		return s.current, nil
	}
	s.current = snap
	return snap, nil
}

// Remove deletes the project on the backend, then evicts it locally if it
// was the active one. Deletion is irreversible; confirming with the user
// is the caller's job.
func (s *Store) Remove(ctx context.Context, session *client.Session, projectID string) error {
	if err := s.api.DeleteProject(ctx, session, projectID); err != nil {
		return fmt.Errorf("delete project %s: %w", projectID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && s.current.Project.ID == projectID {
		s.current = nil
		s.seq++ // invalidate any fetch still in flight
	}
	return nil
}
