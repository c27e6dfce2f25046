// Package nav owns the two panes and decides which one receives input.
package nav

import (
	"errors"
	"fmt"
	"io"

	"dd-commander/internal/pane"

	"github.com/sirupsen/logrus"
)

// StatusLine receives transient user-facing messages.
type StatusLine interface {
	Message(text string)
}

// Opener is the collaborator that handles Enter on a regular file.
type Opener = pane.Opener

// Controller holds both panes, their left/right order and the focus pointer.
// All methods must be called from the single event-handling goroutine.
type Controller struct {
	panes    [2]*pane.Pane
	focused  *pane.Pane
	quitting bool

	status  StatusLine
	opener  Opener
	actions Actions
	log     *logrus.Entry
}

// Option configures a Controller.
type Option func(*Controller)

func WithStatusLine(s StatusLine) Option { return func(c *Controller) { c.status = s } }
func WithOpener(o Opener) Option         { return func(c *Controller) { c.opener = o } }
func WithActions(a Actions) Option       { return func(c *Controller) { c.actions = a } }
func WithLogger(l *logrus.Entry) Option  { return func(c *Controller) { c.log = l } }

type discardStatus struct{}

func (discardStatus) Message(string) {}

// New builds a controller over left and right with left focused.
func New(left, right *pane.Pane, opts ...Option) (*Controller, error) {
	if left == nil || right == nil {
		return nil, errors.New("nav: both panes are required")
	}
	if left == right {
		return nil, errors.New("nav: panes must be distinct")
	}
	c := &Controller{
		panes:   [2]*pane.Pane{left, right},
		status:  discardStatus{},
		actions: Unsupported{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = logrus.NewEntry(l)
	}
	c.focused = left
	right.Unfocus()
	left.Focus()
	return c, nil
}

// Open creates both panes on dir, left focused. Failure to list dir is
// returned unchanged so startup can report it.
func Open(dir string, lister *pane.Lister, opts ...Option) (*Controller, error) {
	left, err := pane.New(dir, lister)
	if err != nil {
		return nil, err
	}
	right, err := pane.New(dir, lister)
	if err != nil {
		return nil, err
	}
	return New(left, right, opts...)
}

func (c *Controller) Left() *pane.Pane     { return c.panes[0] }
func (c *Controller) Right() *pane.Pane    { return c.panes[1] }
func (c *Controller) Focused() *pane.Pane  { return c.focused }
func (c *Controller) Quitting() bool       { return c.quitting }
func (c *Controller) Panes() [2]*pane.Pane { return c.panes }

// Other returns the pane that is not focused.
func (c *Controller) Other() *pane.Pane {
	if c.focused == c.panes[0] {
		return c.panes[1]
	}
	return c.panes[0]
}

// SwitchFocus moves focus to the other pane.
func (c *Controller) SwitchFocus() {
	if c.quitting {
		return
	}
	next := c.Other()
	c.focused.Unfocus()
	next.Focus()
	c.focused = next
}

// MoveFocused moves the focused pane's cursor.
func (c *Controller) MoveFocused(direction int) {
	if c.quitting {
		return
	}
	c.focused.MoveCursor(direction)
}

// ActivateFocused enters the selected directory or opens the selected file.
func (c *Controller) ActivateFocused() {
	if c.quitting {
		return
	}
	target := c.focused.Selected()
	if err := c.focused.Activate(c.opener); err != nil {
		c.report("activate", err)
		return
	}
	c.log.WithFields(logrus.Fields{"path": target.Path, "dir": target.IsDir}).Debug("activated")
}

// RefreshFocused reloads the focused pane's directory.
func (c *Controller) RefreshFocused() {
	if c.quitting {
		return
	}
	if err := c.focused.LoadPath(c.focused.Path()); err != nil {
		c.report("refresh", err)
	}
}

// SwapPanes exchanges which pane is drawn on the left. Pane state, focus
// included, is untouched.
func (c *Controller) SwapPanes() {
	if c.quitting {
		return
	}
	c.panes[0], c.panes[1] = c.panes[1], c.panes[0]
	c.panes[0].Touch()
	c.panes[1].Touch()
}

// Quit marks the controller finished. Every later call is a no-op.
func (c *Controller) Quit() {
	c.quitting = true
}

// Perform hands an external action for the focused selection to the
// Actions collaborator.
func (c *Controller) Perform(a Action) {
	if c.quitting {
		return
	}
	req := Request{
		Action: a,
		Target: c.focused.Selected(),
		Dir:    c.focused.Path(),
		Other:  c.Other().Path(),
	}
	if err := c.actions.Perform(req); err != nil {
		c.report(a.String(), err)
	}
}

// ApplyListing installs a listing produced off the event loop into every
// pane currently showing that path. Stale listings are dropped.
func (c *Controller) ApplyListing(l pane.Listing) {
	if c.quitting {
		return
	}
	applied := false
	for _, p := range c.panes {
		if err := p.Sync(l); err == nil {
			applied = true
		}
	}
	if !applied {
		c.log.WithField("path", l.Path).Debug("dropped stale listing")
	}
}

// Report surfaces an error from outside the controller on the status line.
func (c *Controller) Report(op string, err error) {
	c.report(op, err)
}

func (c *Controller) report(op string, err error) {
	c.log.WithError(err).WithField("op", op).Warn("operation failed")
	c.status.Message(fmt.Sprintf("%s: %v", op, err))
}
