package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusTTL is how long a status message stays visible.
const StatusTTL = 4 * time.Second

type clearStatusMsg struct{ seq int }

// StatusLine is the single informational line under the panes. It shows the
// latest message, if any, followed by the key legend.
type StatusLine struct {
	text string
	seq  int
	help help.Model
}

// NewStatusLine returns an empty status line.
func NewStatusLine() *StatusLine {
	h := help.New()
	h.ShortSeparator = " "
	h.Styles.ShortKey = legendKeyStyle
	h.Styles.ShortDesc = legendDescStyle
	h.Styles.Ellipsis = legendDescStyle
	return &StatusLine{help: h}
}

// Message replaces the current message.
func (s *StatusLine) Message(text string) {
	s.text = text
	s.seq++
}

// Text returns the current message.
func (s *StatusLine) Text() string { return s.text }

// expireCmd clears the current message after StatusTTL unless a newer one
// has replaced it.
func (s *StatusLine) expireCmd() tea.Cmd {
	seq := s.seq
	return tea.Tick(StatusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (s *StatusLine) expire(msg clearStatusMsg) {
	if msg.seq == s.seq {
		s.text = ""
	}
}

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#444444"))

	statusMsgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Background(lipgloss.Color("#444444")).
			Bold(true)

	legendKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#444444")).
			Bold(true)

	legendDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BBBBBB")).
			Background(lipgloss.Color("#444444"))
)

// View renders the line at the given width.
func (s *StatusLine) View(keys KeyMap, width int) string {
	prefix := ""
	if s.text != "" {
		prefix = statusMsgStyle.Render(" "+truncate(s.text, max(width/2, 10))) + statusBarStyle.Render(" │")
	}
	s.help.Width = max(width-lipgloss.Width(prefix)-1, 0)
	legend := s.help.ShortHelpView(keys.ShortHelp())
	return statusBarStyle.Width(width).Render(prefix + " " + legend)
}
