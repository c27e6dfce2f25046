package ui

import (
	"strings"

	"dd-commander/internal/pane"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2)

	titlePathActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#1A1A1A")).
				Padding(0, 1)

	titlePathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1)

	titleBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#0F0F0F"))
)

// RenderTitleBar renders the application name followed by the left and
// right paths, the focused one highlighted.
func RenderTitleBar(name string, left, right *pane.Pane, width int) string {
	title := titleStyle.Render(name)
	// Each path part carries a two-cell marker and two cells of padding,
	// and the parts are joined by single spaces.
	room := max((width-lipgloss.Width(title)-2)/2-4, 1)

	parts := []string{title}
	for _, p := range []*pane.Pane{left, right} {
		st := titlePathStyle
		label := "○ " + truncatePath(p.Path(), room)
		if p.Focused() {
			st = titlePathActiveStyle
			label = "● " + truncatePath(p.Path(), room)
		}
		parts = append(parts, st.Render(label))
	}

	bar := strings.Join(parts, " ")
	if lipgloss.Width(bar) > width {
		bar = lipgloss.NewStyle().MaxWidth(width).Render(bar)
	}
	if pad := width - lipgloss.Width(bar); pad > 0 {
		bar += strings.Repeat(" ", pad)
	}
	return titleBarStyle.Width(width).Render(bar)
}
