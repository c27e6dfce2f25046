package ui

import (
	"strings"
	"unicode"

	"dd-commander/internal/pane"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)

	activePanelStyle = panelStyle.
				BorderForeground(lipgloss.Color("#7D56F4"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#AAAAAA")).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#444444"))

	activeHeaderStyle = headerStyle.
				Foreground(lipgloss.Color("#FFFFFF"))

	dirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#56D1F4")).
			Bold(true)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	// Cursor row in the focused pane.
	focusedCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#7D56F4")).
				Foreground(lipgloss.Color("#FFFFFF"))

	// Cursor row in the pane that does not have focus.
	unfocusedCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#3A3A3A")).
				Foreground(lipgloss.Color("#DDDDDD"))
)

// rowStyle maps a presentation state and entry kind onto a style.
func rowStyle(r pane.Row) lipgloss.Style {
	switch r.Presentation {
	case pane.FocusedSelected:
		return focusedCursorStyle
	case pane.UnfocusedSelected:
		return unfocusedCursorStyle
	}
	if r.IsDir {
		return dirStyle
	}
	return fileStyle
}

func rowLabel(r pane.Row) string {
	switch {
	case r.IsGoUp:
		return "▴ " + r.Name
	case r.IsDir:
		return "▸ " + r.Name + "/"
	}
	return "  " + r.Name
}

// visibleWindow returns the first row to draw so the cursor stays on screen.
func visibleWindow(cursor, rows int) int {
	if rows < 1 || cursor < rows {
		return 0
	}
	return cursor - rows + 1
}

// renderPane draws one pane at panelWidth x panelHeight (border excluded).
func renderPane(p *pane.Pane, panelWidth, panelHeight int) string {
	style, hdr := panelStyle, headerStyle
	if p.Focused() {
		style, hdr = activePanelStyle, activeHeaderStyle
	}
	inner := max(panelWidth-2, 1)

	header := hdr.Width(inner).Render(truncatePath(p.Path(), inner))

	visible := max(panelHeight-2, 1)
	rows := p.DisplayModel()
	start := visibleWindow(p.Cursor(), visible)

	lines := make([]string, 0, visible)
	for i := start; i < len(rows) && i < start+visible; i++ {
		r := rows[i]
		lines = append(lines, rowStyle(r).Width(inner).Render(truncate(rowLabel(r), inner)))
	}

	content := header + "\n" + strings.Join(lines, "\n")
	return style.Width(panelWidth).Height(panelHeight).Render(content)
}

// printable replaces control characters with '?', as ls does, so a name
// never spans more than one row.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '?'
		}
		return r
	}, s)
}

// truncate shortens s to n display cells, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return runewidth.Truncate(printable(s), n, "…")
}

// truncatePath keeps the tail of a path, which is the part that tells
// directories apart.
func truncatePath(s string, n int) string {
	if n <= 0 {
		return ""
	}
	s = printable(s)
	if runewidth.StringWidth(s) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	runes := []rune(s)
	w := 0
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > n-1 {
			break
		}
		w += rw
		i--
	}
	return "…" + string(runes[i:])
}
