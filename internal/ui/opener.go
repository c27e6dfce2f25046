package ui

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoOpener is returned when no command is configured for opening files.
var ErrNoOpener = errors.New("no opener configured (set DDC_OPENER)")

// openDoneMsg reports the end of an external opener process.
type openDoneMsg struct {
	Path string
	Err  error
}

// ExecOpener opens a file by running a configured command with the file
// as its last argument. Open only prepares the process; the browser hands it
// to bubbletea, which suspends the UI while it runs.
type ExecOpener struct {
	argv    []string
	pending *exec.Cmd
	path    string
	lookup  func(string) (string, error)
}

// NewExecOpener parses command (e.g. "less -R"). An empty command yields an
// opener that always fails with ErrNoOpener.
func NewExecOpener(command string) *ExecOpener {
	return &ExecOpener{argv: strings.Fields(command), lookup: exec.LookPath}
}

// Open implements pane.Opener.
func (o *ExecOpener) Open(path string) error {
	if len(o.argv) == 0 {
		return ErrNoOpener
	}
	bin, err := o.lookup(o.argv[0])
	if err != nil {
		return fmt.Errorf("opener %q: %w", o.argv[0], err)
	}
	args := append(append([]string{}, o.argv[1:]...), path)
	o.pending = exec.Command(bin, args...)
	o.path = path
	return nil
}

// Take returns the command prepared by the last successful Open as a
// tea.Cmd, or nil when nothing is pending.
func (o *ExecOpener) Take() tea.Cmd {
	if o.pending == nil {
		return nil
	}
	cmd, path := o.pending, o.path
	o.pending, o.path = nil, ""
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return openDoneMsg{Path: path, Err: err}
	})
}
