package pane

import (
	"errors"
	"fmt"
)

// ErrStaleListing is returned when a listing no longer matches the pane's path.
var ErrStaleListing = errors.New("stale listing")

// DirectoryUnreadableError reports a path that could not be listed.
type DirectoryUnreadableError struct {
	Path string
	Err  error
}

func (e *DirectoryUnreadableError) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryUnreadableError) Unwrap() error { return e.Err }

// ItemActivationError reports a failure of the external opener.
type ItemActivationError struct {
	Path string
	Err  error
}

func (e *ItemActivationError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *ItemActivationError) Unwrap() error { return e.Err }
