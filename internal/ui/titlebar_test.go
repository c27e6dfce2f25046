package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dd-commander/internal/nav"
	"dd-commander/internal/pane"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTitleBar(t *testing.T) {
	a, err := pane.New(t.TempDir(), nil)
	require.NoError(t, err)
	b, err := pane.New(t.TempDir(), nil)
	require.NoError(t, err)
	a.Focus()

	got := RenderTitleBar("dd-commander", a, b, 200)
	assert.Contains(t, got, "dd-commander")
	assert.Contains(t, got, "● "+a.Path())
	assert.Contains(t, got, "○ "+b.Path())
}

func TestRenderTitleBarFillsWidth(t *testing.T) {
	a, err := pane.New(t.TempDir(), nil)
	require.NoError(t, err)
	b, err := pane.New(t.TempDir(), nil)
	require.NoError(t, err)

	got := RenderTitleBar("dd", a, b, 300)
	assert.Equal(t, 300, lipgloss.Width(got))
	assert.False(t, strings.Contains(got, "●"), "no pane focused")
}

func deepDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), strings.Repeat("a", 40), strings.Repeat("b", 40), strings.Repeat("c", 40))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}

func TestRenderTitleBarLongPathsStayOnOneLine(t *testing.T) {
	dir := deepDir(t)
	a, err := pane.New(dir, nil)
	require.NoError(t, err)
	b, err := pane.New(dir, nil)
	require.NoError(t, err)
	a.Focus()

	for _, w := range []int{20, 40, 80, 120} {
		got := RenderTitleBar("dd-commander", a, b, w)
		assert.Equal(t, 1, lipgloss.Height(got), "width %d", w)
		assert.Equal(t, w, lipgloss.Width(got), "width %d", w)
	}
}

func TestViewFitsTerminalWithLongPaths(t *testing.T) {
	ctrl, err := nav.Open(deepDir(t), nil)
	require.NoError(t, err)
	m := NewFileBrowserModel(ctrl, NewStatusLine(), nil, Options{Title: "dd-commander"})

	for _, size := range [][2]int{{80, 24}, {120, 30}, {60, 12}} {
		m.SetDimensions(size[0], size[1])
		view := m.View()
		assert.Equal(t, size[1], lipgloss.Height(view), "%dx%d", size[0], size[1])
		assert.LessOrEqual(t, lipgloss.Width(view), size[0], "%dx%d", size[0], size[1])
	}
}
