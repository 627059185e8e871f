// Package outline holds the pre-project section plan: an ordered list of
// titles the user shapes by hand or from an AI suggestion before submitting
// the project for creation.
package outline

import (
	"fmt"

	"swiftdoc/internal/domain"
)

// DefaultItemTitle is the placeholder title for a manually added entry.
const DefaultItemTitle = "New Section"

// ErrIndexOutOfRange is returned for edits addressing a nonexistent entry.
// It matches domain.ErrValidation for callers classifying by taxonomy.
var ErrIndexOutOfRange = fmt.Errorf("%w: outline index out of range", domain.ErrValidation)

// Draft is the mutable, ordered outline being composed. It is not safe for
// concurrent use on its own; Composer provides the locking.
type Draft struct {
	items []string
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{}
}

// Items returns a copy of the current entries in order.
func (d *Draft) Items() []string {
	out := make([]string, len(d.items))
	copy(out, d.items)
	return out
}

// Len returns the number of entries.
func (d *Draft) Len() int {
	return len(d.items)
}

// AddItem appends an entry. Empty titles get the default placeholder.
func (d *Draft) AddItem(title string) {
	if title == "" {
		title = DefaultItemTitle
	}
	d.items = append(d.items, title)
}

// RemoveItem deletes the entry at index i, preserving the order of the rest.
func (d *Draft) RemoveItem(i int) error {
	if i < 0 || i >= len(d.items) {
		return ErrIndexOutOfRange
	}
	d.items = append(d.items[:i], d.items[i+1:]...)
	return nil
}

// EditItem replaces the title at index i.
func (d *Draft) EditItem(i int, title string) error {
	if i < 0 || i >= len(d.items) {
		return ErrIndexOutOfRange
	}
	if title == "" {
		title = DefaultItemTitle
	}
	d.items[i] = title
	return nil
}

// Replace swaps the entire outline for the given entries.
func (d *Draft) Replace(items []string) {
	d.items = make([]string, len(items))
	copy(d.items, items)
}

// Clear drops all entries.
func (d *Draft) Clear() {
	d.items = nil
}
