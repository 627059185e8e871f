package outline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"swiftdoc/internal/client"
	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/services"
)

// ErrEmptyTopic is returned when a suggestion is requested without a topic.
// Checked locally; no network call is made.
var ErrEmptyTopic = fmt.Errorf("%w: topic is required for outline suggestion", domain.ErrValidation)

// ErrTooFewItems is returned by Submit when the draft is below the
// composer's minimum entry policy.
var ErrTooFewItems = fmt.Errorf("%w: outline has too few entries", domain.ErrValidation)

// API is the slice of the backend client the composer needs.
// *client.Client satisfies it; tests substitute fakes.
type API interface {
	SuggestOutline(ctx context.Context, session *client.Session, topic, docType string) ([]string, error)
	CreateProject(ctx context.Context, session *client.Session, req *services.CreateProjectRequest) (*domain.Project, error)
}

// Composer owns the outline draft for a project being set up. Safe for
// concurrent use. A suggestion in flight never blocks manual edits, and a
// suggestion that finishes after a newer one was issued is discarded.
type Composer struct {
	api API

	// MinItems is the smallest outline Submit will accept. Zero means a
	// project may be created with no sections and have them generated later.
	MinItems int

	mu    sync.Mutex
	draft *Draft
	seq   uint64
}

// NewComposer returns a composer with an empty draft.
func NewComposer(api API) *Composer {
	return &Composer{api: api, draft: NewDraft()}
}

// Items returns the current draft entries in order.
func (c *Composer) Items() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Items()
}

// AddItem appends a manual entry to the draft.
func (c *Composer) AddItem(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.AddItem(title)
}

// RemoveItem deletes the draft entry at index i.
func (c *Composer) RemoveItem(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.RemoveItem(i)
}

// EditItem replaces the title of the draft entry at index i.
func (c *Composer) EditItem(i int, title string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.EditItem(i, title)
}

// Suggest asks the backend for an AI-drafted outline and replaces the draft
// wholesale with the result. An empty suggestion leaves the draft untouched,
// as does any failure. When suggestions overlap, only the latest issued one
// may land; earlier completions are dropped.
func (c *Composer) Suggest(ctx context.Context, session *client.Session, topic, docType string) ([]string, error) {
	topic = strings.TrimSpace(topic)
	if err := validation.Validate(topic, validation.Required); err != nil {
		return nil, ErrEmptyTopic
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	items, err := c.api.SuggestOutline(ctx, session, topic, docType)
	if err != nil {
		return nil, fmt.Errorf("suggest outline: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		// A newer suggestion was issued while this one ran.
		return nil, nil
	}
	if len(items) > 0 {
		c.draft.Replace(items)
	}
	return c.draft.Items(), nil
}

// Submit creates the project from the draft in one atomic backend call.
// On success the draft resets and the created project is returned; on any
// failure the draft is preserved so the user can retry or keep editing.
func (c *Composer) Submit(ctx context.Context, session *client.Session, title, docType, topic string) (*domain.Project, error) {
	c.mu.Lock()
	items := c.draft.Items()
	c.mu.Unlock()

	if len(items) < c.MinItems {
		return nil, ErrTooFewItems
	}

	req := &services.CreateProjectRequest{
		Title:   title,
		DocType: docType,
		Topic:   topic,
		Outline: items,
	}
	project, err := c.api.CreateProject(ctx, session, req)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	c.mu.Lock()
	c.draft.Clear()
	c.mu.Unlock()
	return project, nil
}
