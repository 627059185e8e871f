package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/sync/errgroup"

	"swiftdoc/internal/client"
	"swiftdoc/internal/domain"
)

// ErrSectionBusy is returned when a generate or refine is requested for a
// section that already has one in flight.
var ErrSectionBusy = fmt.Errorf("%w: section operation already in progress", domain.ErrConflict)

// ErrEmptyInstruction is returned when a refine is requested without an
// instruction. Checked locally; no network call is made.
var ErrEmptyInstruction = fmt.Errorf("%w: refine instruction is required", domain.ErrValidation)

// SectionStatus is the derived lifecycle state of a section.
type SectionStatus string

const (
	// StatusBusy means a generate or refine is in flight for the section.
	StatusBusy SectionStatus = "busy"
	// StatusEmpty means the section has no content yet.
	StatusEmpty SectionStatus = "empty"
	// StatusReady means the section has content and no operation in flight.
	StatusReady SectionStatus = "ready"
)

// Orchestrator drives per-section AI operations against the backend. It
// serializes operations on the same section and lets different sections run
// concurrently. Every completed operation, successful or not, refreshes the
// store so the snapshot reflects whatever the backend now holds.
type Orchestrator struct {
	api    API
	store  *Store
	logger *slog.Logger

	mu   sync.Mutex
	busy map[string]struct{}
}

// NewOrchestrator wires an orchestrator to the api and store.
func NewOrchestrator(api API, store *Store, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		api:    api,
		store:  store,
		logger: logger,
		busy:   make(map[string]struct{}),
	}
}

// Busy reports whether the section has an operation in flight.
func (o *Orchestrator) Busy(sectionID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.busy[sectionID]
	return ok
}

// Status derives the section's state from the busy set and the current
// snapshot. Unknown sections report empty.
func (o *Orchestrator) Status(sectionID string) SectionStatus {
	if o.Busy(sectionID) {
		return StatusBusy
	}
	snap := o.store.Snapshot()
	if snap == nil {
		return StatusEmpty
	}
	if section := snap.Section(sectionID); section != nil && section.HasContent() {
		return StatusReady
	}
	return StatusEmpty
}

// Generate drafts content for one section. At most one operation runs per
// section at a time; a second request while one is in flight fails fast with
// ErrSectionBusy and causes no backend call.
func (o *Orchestrator) Generate(ctx context.Context, session *client.Session, sectionID string) error {
	if err := o.acquire(sectionID); err != nil {
		return err
	}
	defer o.release(ctx, session, sectionID)

	o.logger.Debug("generating section", "section_id", sectionID)
	if err := o.api.GenerateSection(ctx, session, sectionID); err != nil {
		return fmt.Errorf("generate section %s: %w", sectionID, err)
	}
	return nil
}

// Refine rewrites one section's content per the instruction. Blank
// instructions are rejected locally before any network traffic.
func (o *Orchestrator) Refine(ctx context.Context, session *client.Session, sectionID, instruction string) error {
	instruction = strings.TrimSpace(instruction)
	if err := validation.Validate(instruction, validation.Required); err != nil {
		return ErrEmptyInstruction
	}

	if err := o.acquire(sectionID); err != nil {
		return err
	}
	defer o.release(ctx, session, sectionID)

	o.logger.Debug("refining section", "section_id", sectionID)
	if err := o.api.RefineSection(ctx, session, sectionID, instruction); err != nil {
		return fmt.Errorf("refine section %s: %w", sectionID, err)
	}
	return nil
}

// GenerateAll drafts every section of the active project that has no content
// yet, running sections concurrently. Sections already busy are skipped.
// Returns the first error encountered; the remaining generations still run
// to completion so their results are not lost.
func (o *Orchestrator) GenerateAll(ctx context.Context, session *client.Session) error {
	snap := o.store.Snapshot()
	if snap == nil {
		return ErrNoActiveProject
	}

	var g errgroup.Group
	for _, section := range snap.Sections {
		if section.HasContent() {
			continue
		}
		sectionID := section.ID
		g.Go(func() error {
			err := o.Generate(ctx, session, sectionID)
			if err == nil || err == ErrSectionBusy {
				return nil
			}
			return err
		})
	}
	return g.Wait()
}

// acquire marks the section busy, failing if it already is.
func (o *Orchestrator) acquire(sectionID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.busy[sectionID]; ok {
		return ErrSectionBusy
	}
	o.busy[sectionID] = struct{}{}
	return nil
}

// release refreshes the snapshot and clears the busy mark. It runs deferred
// on both success and failure so a section can never be left stuck busy, and
// so a failed operation still re-syncs the snapshot with the backend.
func (o *Orchestrator) release(ctx context.Context, session *client.Session, sectionID string) {
	if _, err := o.store.Refresh(ctx, session); err != nil {
		o.logger.Warn("snapshot refresh failed after section operation",
			"section_id", sectionID, "error", err)
	}

	o.mu.Lock()
	delete(o.busy, sectionID)
	o.mu.Unlock()
}
