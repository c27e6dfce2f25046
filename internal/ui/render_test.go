package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dd-commander/internal/pane"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hi", truncate("hi", 10))
	assert.Equal(t, "hello", truncate("hello", 5))
	assert.Equal(t, "hell…", truncate("helloworld!", 5))
	assert.Equal(t, "", truncate("hello", 0))
}

func TestTruncateWideRunes(t *testing.T) {
	got := truncate("日本語のファイル.txt", 8)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 8)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "/home/u", truncatePath("/home/u", 20))

	got := truncatePath("/very/long/deep/nested/directory/path/here", 15)
	assert.True(t, strings.HasPrefix(got, "…"))
	assert.True(t, strings.HasSuffix(got, "path/here"))
	assert.Equal(t, 15, runewidth.StringWidth(got))

	assert.Equal(t, "…", truncatePath("/abc", 1))
	assert.Equal(t, "", truncatePath("/abc", 0))
}

func TestVisibleWindow(t *testing.T) {
	assert.Equal(t, 0, visibleWindow(0, 10))
	assert.Equal(t, 0, visibleWindow(9, 10))
	assert.Equal(t, 1, visibleWindow(10, 10))
	assert.Equal(t, 41, visibleWindow(50, 10))
	assert.Equal(t, 0, visibleWindow(5, 0))
}

func TestRowLabel(t *testing.T) {
	assert.Equal(t, "▴ ..", rowLabel(pane.Row{Name: "..", IsDir: true, IsGoUp: true}))
	assert.Equal(t, "▸ src/", rowLabel(pane.Row{Name: "src", IsDir: true}))
	assert.Equal(t, "  main.go", rowLabel(pane.Row{Name: "main.go"}))
}

func TestRowStyleFollowsPresentation(t *testing.T) {
	assert.Equal(t, focusedCursorStyle.GetBackground(), rowStyle(pane.Row{Presentation: pane.FocusedSelected}).GetBackground())
	assert.Equal(t, unfocusedCursorStyle.GetBackground(), rowStyle(pane.Row{Presentation: pane.UnfocusedSelected}).GetBackground())
	assert.Equal(t, dirStyle.GetForeground(), rowStyle(pane.Row{IsDir: true, Presentation: pane.FocusedUnselected}).GetForeground())
	assert.Equal(t, fileStyle.GetForeground(), rowStyle(pane.Row{Presentation: pane.UnfocusedUnselected}).GetForeground())
}

func TestRenderPaneScrollsToCursor(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 30; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(root, fmt.Sprintf("f%02d", i)), nil, 0o644))
	}
	p, err := pane.New(root, nil)
	require.NoError(t, err)

	out := renderPane(p, 40, 10)
	assert.Contains(t, out, "..")
	assert.NotContains(t, out, "f29")

	p.MoveCursor(-1)
	out = renderPane(p, 40, 10)
	assert.Contains(t, out, "f29")
	assert.NotContains(t, out, "▴ ..")
}

func TestPrintable(t *testing.T) {
	assert.Equal(t, "a?b", printable("a\nb"))
	assert.Equal(t, "tab?bell?", printable("tab\tbell\a"))
	assert.Equal(t, "日本.txt", printable("日本.txt"))
}

func TestRenderPaneControlCharactersKeepRowsAligned(t *testing.T) {
	root := filepath.Join(t.TempDir(), "x\ty")
	require.NoError(t, os.Mkdir(root, 0o755))
	for i := 0; i < 20; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(root, fmt.Sprintf("f%02d", i)), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "a\nb"), nil, 0o644))
	p, err := pane.New(root, nil)
	require.NoError(t, err)

	out := renderPane(p, 40, 10)
	assert.Equal(t, 12, lipgloss.Height(out))
	assert.Contains(t, out, "a?b")
	assert.Contains(t, out, "x?y")

	names := make([]string, 0, p.Len())
	for _, it := range p.Items() {
		names = append(names, it.Name)
	}
	assert.Contains(t, names, "a\nb", "item names stay as read from disk")
}
