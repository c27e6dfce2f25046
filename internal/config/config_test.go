package config

import (
	"path/filepath"
	"testing"

	"dd-commander/internal/pane"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SORT", "SHOW_HIDDEN", "HIDE", "OPENER", "WATCH", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(EnvPrefix+"_"+k, "")
	}
	t.Setenv("PAGER", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, pane.SortDirsFirst, s.Sort)
	assert.True(t, s.ShowHidden)
	assert.Empty(t, s.Hide)
	assert.Empty(t, s.Opener)
	assert.True(t, s.Watch)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DDC_SORT", "name")
	t.Setenv("DDC_SHOW_HIDDEN", "false")
	t.Setenv("DDC_HIDE", "*.pyc, node_modules ,,")
	t.Setenv("DDC_OPENER", "  bat --paging=always ")
	t.Setenv("DDC_WATCH", "0")
	t.Setenv("DDC_LOG_LEVEL", "debug")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, pane.SortName, s.Sort)
	assert.False(t, s.ShowHidden)
	assert.Equal(t, []string{"*.pyc", "node_modules"}, s.Hide)
	assert.Equal(t, "bat --paging=always", s.Opener)
	assert.False(t, s.Watch)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestOpenerFallsBackToPager(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAGER", "less")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "less", s.Opener)
}

func TestLoadRejectsUnknownSort(t *testing.T) {
	clearEnv(t)
	t.Setenv("DDC_SORT", "mtime")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DDC_SORT")
}

func TestListerFromSettings(t *testing.T) {
	s := &Settings{Sort: pane.SortNone, Hide: []string{"*.o"}}
	l, err := s.Lister()
	require.NoError(t, err)
	assert.Equal(t, pane.SortNone, l.Sort)
	assert.False(t, l.ShowHidden)

	s.Hide = []string{"[unclosed"}
	_, err = s.Lister()
	assert.ErrorContains(t, err, "DDC_HIDE")
}

func TestLogPathExplicit(t *testing.T) {
	s := &Settings{LogFile: "/tmp/ddc.log"}
	assert.Equal(t, "/tmp/ddc.log", s.LogPath())
}

func TestLogPathDefault(t *testing.T) {
	s := &Settings{}
	got := s.LogPath()
	assert.Equal(t, "debug.log", filepath.Base(got))
	assert.True(t, filepath.IsAbs(got) || got == filepath.Join(".logs", "debug.log"))
}

func TestWithin(t *testing.T) {
	tests := []struct {
		dir, root string
		want      bool
	}{
		{"/home/u/proj", "/home/u/proj", true},
		{"/home/u/proj/bin", "/home/u/proj", true},
		{"/home/u/proj2/bin", "/home/u/proj", false},
		{"/usr/local/bin", "/home/u/proj", false},
		{"/usr/local/bin", "/", false},
		{"/home/u/proj/bin", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, within(tt.dir, tt.root), "%s in %s", tt.dir, tt.root)
	}
}
