package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var helpContent = `
  Navigation
  ↑/↓       Move the cursor (wraps at both ends)
  Tab       Switch between left and right panels
  Enter     Enter directory / open file with $DDC_OPENER
  ..        First entry of every listing, goes to the parent directory
  Ctrl+U    Swap left and right panels
  Ctrl+R    Re-read the focused directory

  File operations
  F1 Help   F2 Menu   F3 View   F4 Edit
  F5 Copy   F6 Move/Rename   F7 MkDir   F8 Delete
  Ctrl+O    Command line

  F10       Quit
  Ctrl+C    Quit

  Settings (environment)
  DDC_SORT         dirs-first | name | none
  DDC_SHOW_HIDDEN  show dotfiles (default true)
  DDC_HIDE         comma separated name patterns to hide
  DDC_OPENER       command used to open files (default $PAGER)
  DDC_WATCH        reload panels when directories change (default true)
  DDC_LOG_LEVEL    debug log level

  Esc, q or F1 closes this help.
`

var helpStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#7D56F4")).
	Padding(1, 3).
	Bold(false)

// HelpOverlay is a scrollable help box drawn over the panels.
type HelpOverlay struct {
	vp      viewport.Model
	visible bool
}

func NewHelpOverlay() HelpOverlay {
	vp := viewport.New(0, 0)
	vp.SetContent(helpContent)
	return HelpOverlay{vp: vp}
}

func (h HelpOverlay) Visible() bool { return h.visible }

func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
	h.vp.GotoTop()
}

func (h *HelpOverlay) Close() { h.visible = false }

// Resize fits the viewport inside a screen of width x height.
func (h *HelpOverlay) Resize(width, height int) {
	h.vp.Width = max(min(lipgloss.Width(helpContent)+1, width-8), 1)
	h.vp.Height = max(min(lipgloss.Height(helpContent), height-4), 1)
}

func (h HelpOverlay) Update(msg tea.Msg) (HelpOverlay, tea.Cmd) {
	var cmd tea.Cmd
	h.vp, cmd = h.vp.Update(msg)
	return h, cmd
}

// View returns the overlay centred in width x height.
func (h HelpOverlay) View(width, height int) string {
	box := helpStyle.Render(h.vp.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
