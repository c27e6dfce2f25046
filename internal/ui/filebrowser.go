package ui

import (
	"dd-commander/internal/nav"
	"dd-commander/internal/pane"
	"dd-commander/internal/watch"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// dirChangedMsg is sent when the watcher reports a change in a shown directory.
type dirChangedMsg struct {
	Dir string
}

// listingMsg carries a listing produced outside the event loop.
type listingMsg struct {
	Dir     string
	Listing pane.Listing
	Err     error
}

type paneCache struct {
	view          string
	width, height int
}

// Options holds the optional parts of a FileBrowserModel.
type Options struct {
	Title   string
	Keys    *KeyMap
	Watcher *watch.Watcher
	Log     *logrus.Entry
}

// FileBrowserModel draws the two panes and routes keys to the controller.
type FileBrowserModel struct {
	ctrl    *nav.Controller
	status  *StatusLine
	opener  *ExecOpener
	watcher *watch.Watcher
	keys    KeyMap
	title   string
	log     *logrus.Entry

	width  int
	height int

	cache   map[*pane.Pane]*paneCache
	watched string
}

// NewFileBrowserModel wires a browser around ctrl. status must be the same
// StatusLine the controller reports to; opener may be nil.
func NewFileBrowserModel(ctrl *nav.Controller, status *StatusLine, opener *ExecOpener, opts Options) FileBrowserModel {
	m := FileBrowserModel{
		ctrl:    ctrl,
		status:  status,
		opener:  opener,
		watcher: opts.Watcher,
		keys:    DefaultKeyMap(),
		title:   opts.Title,
		log:     opts.Log,
		cache:   map[*pane.Pane]*paneCache{},
	}
	if opts.Keys != nil {
		m.keys = *opts.Keys
	}
	if m.log == nil {
		m.log = logrus.NewEntry(logrus.StandardLogger())
	}
	if m.status == nil {
		m.status = NewStatusLine()
	}
	m.syncWatch()
	return m
}

// Controller exposes the navigation state, mainly for tests.
func (m FileBrowserModel) Controller() *nav.Controller { return m.ctrl }

// Status exposes the status line.
func (m FileBrowserModel) Status() *StatusLine { return m.status }

// Keys returns the active key map.
func (m FileBrowserModel) Keys() KeyMap { return m.keys }

// SetDimensions sets the width and height for the file browser.
func (m *FileBrowserModel) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}

func (m FileBrowserModel) Init() tea.Cmd {
	return waitForChange(m.watcher)
}

func waitForChange(w *watch.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		dir, ok := <-w.Changes()
		if !ok {
			return nil
		}
		return dirChangedMsg{Dir: dir}
	}
}

// listCmd enumerates dir off the event loop using the lister of the pane
// showing it.
func (m FileBrowserModel) listCmd(dir string) tea.Cmd {
	p := m.showing(dir)
	if p == nil {
		return nil
	}
	lister := p.Lister()
	return func() tea.Msg {
		l, err := lister.List(dir)
		return listingMsg{Dir: dir, Listing: l, Err: err}
	}
}

func (m FileBrowserModel) showing(dir string) *pane.Pane {
	for _, p := range m.ctrl.Panes() {
		if p.Path() == dir {
			return p
		}
	}
	return nil
}

// syncWatch points the watcher at the directories currently shown.
func (m *FileBrowserModel) syncWatch() {
	if m.watcher == nil {
		return
	}
	l, r := m.ctrl.Left().Path(), m.ctrl.Right().Path()
	set := l + "\x00" + r
	if set == m.watched {
		return
	}
	m.watched = set
	if err := m.watcher.Set(l, r); err != nil {
		m.log.WithError(err).Warn("watch directories")
	}
}

func (m FileBrowserModel) Update(msg tea.Msg) (FileBrowserModel, tea.Cmd) {
	seq := m.status.seq
	m, cmd := m.update(msg)
	cmds := []tea.Cmd{cmd}
	if m.status.seq != seq && m.status.text != "" {
		cmds = append(cmds, m.status.expireCmd())
	}
	m.syncWatch()
	return m, tea.Batch(cmds...)
}

func (m FileBrowserModel) update(msg tea.Msg) (FileBrowserModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case clearStatusMsg:
		m.status.expire(msg)

	case dirChangedMsg:
		return m, tea.Batch(m.listCmd(msg.Dir), waitForChange(m.watcher))

	case listingMsg:
		if msg.Err != nil {
			if m.showing(msg.Dir) != nil {
				m.ctrl.Report("reload", msg.Err)
			}
			return m, nil
		}
		m.ctrl.ApplyListing(msg.Listing)

	case openDoneMsg:
		if msg.Err != nil {
			m.ctrl.Report("open", &pane.ItemActivationError{Path: msg.Path, Err: msg.Err})
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m FileBrowserModel) handleKey(msg tea.KeyMsg) (FileBrowserModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.ctrl.MoveFocused(-1)

	case key.Matches(msg, m.keys.Down):
		m.ctrl.MoveFocused(+1)

	case key.Matches(msg, m.keys.Switch):
		m.ctrl.SwitchFocus()

	case key.Matches(msg, m.keys.Open):
		m.ctrl.ActivateFocused()
		if m.opener != nil {
			return m, m.opener.Take()
		}

	case key.Matches(msg, m.keys.Quit, m.keys.Abort):
		m.ctrl.Quit()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Swap):
		m.ctrl.SwapPanes()

	case key.Matches(msg, m.keys.Refresh):
		m.ctrl.RefreshFocused()

	default:
		if a, ok := m.keys.actionFor(msg); ok {
			m.ctrl.Perform(a)
		}
	}
	return m, nil
}

// paneView returns the drawn pane, re-rendering only when the pane is dirty
// or the size changed.
func (m FileBrowserModel) paneView(p *pane.Pane, width, height int) string {
	c := m.cache[p]
	if c == nil {
		c = &paneCache{}
		m.cache[p] = c
	}
	if p.Dirty() || c.view == "" || c.width != width || c.height != height {
		c.view = renderPane(p, width, height)
		c.width, c.height = width, height
		p.MarkClean()
	}
	return c.view
}

func (m FileBrowserModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	leftWidth := m.width/2 - 2
	rightWidth := m.width - m.width/2 - 2
	panelHeight := max(m.height-4, 3)

	left := m.paneView(m.ctrl.Left(), leftWidth, panelHeight)
	right := m.paneView(m.ctrl.Right(), rightWidth, panelHeight)
	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	title := RenderTitleBar(m.title, m.ctrl.Left(), m.ctrl.Right(), m.width)
	return lipgloss.JoinVertical(lipgloss.Left, title, panels, m.status.View(m.keys, m.width))
}
