package nav

import (
	"errors"
	"fmt"

	"dd-commander/internal/pane"
)

// ErrUnsupported is returned by collaborators that do not implement an action.
var ErrUnsupported = errors.New("not available")

// Action names a file operation owned by an external collaborator.
type Action int

const (
	ActionMenu Action = iota
	ActionView
	ActionEdit
	ActionCopy
	ActionMove
	ActionMkDir
	ActionDelete
	ActionCommandLine
)

var actionNames = [...]string{
	ActionMenu:        "Menu",
	ActionView:        "View",
	ActionEdit:        "Edit",
	ActionCopy:        "Copy",
	ActionMove:        "Move/Rename",
	ActionMkDir:       "MkDir",
	ActionDelete:      "Delete",
	ActionCommandLine: "CmdLine",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Request is what an Actions collaborator receives.
type Request struct {
	Action Action
	Target pane.Item // selection in the focused pane
	Dir    string    // focused pane's directory
	Other  string    // the other pane's directory, the usual copy/move destination
}

// Actions performs file operations on behalf of the browser.
type Actions interface {
	Perform(req Request) error
}

// ActionsFunc adapts a function to Actions.
type ActionsFunc func(req Request) error

func (f ActionsFunc) Perform(req Request) error { return f(req) }

// Unsupported rejects every action.
type Unsupported struct{}

func (Unsupported) Perform(req Request) error {
	return fmt.Errorf("%s %w", req.Action, ErrUnsupported)
}
