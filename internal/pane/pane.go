// Package pane holds the listing and cursor model for one side of the browser.
package pane

import (
	"errors"
	"path/filepath"
)

var errMalformedListing = errors.New("listing has no go-up entry")

// Opener handles activation of a regular file. It is supplied by the caller;
// the pane itself never touches files.
type Opener interface {
	Open(path string) error
}

// Pane is one directory listing with its own cursor.
//
// Invariants: items is never empty, items[0] is the go-up entry and
// items[cursor] is the only selected item.
type Pane struct {
	path    string
	items   []Item
	cursor  int
	focused bool
	dirty   bool
	lister  *Lister
}

// New creates a pane listing path. A nil lister uses DefaultLister.
func New(path string, lister *Lister) (*Pane, error) {
	if lister == nil {
		lister = DefaultLister()
	}
	p := &Pane{lister: lister}
	if err := p.LoadPath(path); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pane) Path() string    { return p.path }
func (p *Pane) Cursor() int     { return p.cursor }
func (p *Pane) Focused() bool   { return p.focused }
func (p *Pane) Dirty() bool     { return p.dirty }
func (p *Pane) Lister() *Lister { return p.lister }

// Len returns the number of items, go-up included.
func (p *Pane) Len() int { return len(p.items) }

// Items returns a copy of the current items.
func (p *Pane) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}

// Selected returns the item under the cursor.
func (p *Pane) Selected() Item {
	return p.items[p.cursor]
}

// MarkClean records that the pane has been drawn.
func (p *Pane) MarkClean() { p.dirty = false }

// Touch requests a redraw without changing state.
func (p *Pane) Touch() { p.dirty = true }

// LoadPath lists path and replaces the pane contents. On error the pane
// is left exactly as it was.
func (p *Pane) LoadPath(path string) error {
	listing, err := p.lister.List(path)
	if err != nil {
		return err
	}
	return p.Apply(listing)
}

// Apply installs a listing produced elsewhere, resetting the cursor to the
// go-up entry.
func (p *Pane) Apply(l Listing) error {
	if len(l.Items) == 0 || !l.Items[0].IsGoUp {
		return errMalformedListing
	}
	p.replace(l, 0)
	return nil
}

// Sync installs a fresh listing of the current path, keeping the cursor on
// the previously selected entry when it still exists.
func (p *Pane) Sync(l Listing) error {
	if filepath.Clean(l.Path) != p.path {
		return ErrStaleListing
	}
	if len(l.Items) == 0 || !l.Items[0].IsGoUp {
		return errMalformedListing
	}
	prev := p.Selected().Path
	cursor := -1
	for i, it := range l.Items {
		if i > 0 && it.Path == prev {
			cursor = i
			break
		}
	}
	if cursor < 0 {
		cursor = min(p.cursor, len(l.Items)-1)
	}
	p.replace(l, cursor)
	return nil
}

func (p *Pane) replace(l Listing, cursor int) {
	items := make([]Item, len(l.Items))
	copy(items, l.Items)
	for i := range items {
		items[i].Deselect()
	}
	items[cursor].Select()

	p.path = filepath.Clean(l.Path)
	p.items = items
	p.cursor = cursor
	p.dirty = true
}

// MoveCursor moves the cursor one step in the sign of direction, wrapping
// at both ends.
func (p *Pane) MoveCursor(direction int) {
	switch {
	case direction > 0:
		direction = 1
	case direction < 0:
		direction = -1
	default:
		return
	}
	n := len(p.items)
	next := ((p.cursor+direction)%n + n) % n
	p.items[p.cursor].Deselect()
	p.items[next].Select()
	p.cursor = next
	p.dirty = true
}

func (p *Pane) Focus() {
	p.focused = true
	p.dirty = true
}

func (p *Pane) Unfocus() {
	p.focused = false
	p.dirty = true
}

// Activate enters the selected directory or hands a file to opener.
// Going up from the filesystem root does nothing.
func (p *Pane) Activate(opener Opener) error {
	it := p.Selected()
	if it.IsDir {
		if it.IsGoUp && it.Path == p.path {
			return nil
		}
		return p.LoadPath(it.Path)
	}
	if opener == nil {
		return &ItemActivationError{Path: it.Path, Err: errors.New("no opener")}
	}
	if err := opener.Open(it.Path); err != nil {
		return &ItemActivationError{Path: it.Path, Err: err}
	}
	return nil
}
