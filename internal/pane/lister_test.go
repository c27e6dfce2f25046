package pane

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(l Listing) []string {
	var out []string
	for _, it := range l.Items[1:] {
		out = append(out, it.Name)
	}
	return out
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SortMode
		wantErr bool
	}{
		{"", SortDirsFirst, false},
		{"dirs-first", SortDirsFirst, false},
		{" Name ", SortName, false},
		{"none", SortNone, false},
		{"size", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSortMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestListSortModes(t *testing.T) {
	root := mkTree(t, "Beta.txt", "alpha.txt", "zdir/", "Adir/")

	l, err := NewLister(SortDirsFirst, true, nil)
	require.NoError(t, err)
	got, err := l.List(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Adir", "zdir", "alpha.txt", "Beta.txt"}, names(got))

	l.Sort = SortName
	got, err = l.List(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Adir", "alpha.txt", "Beta.txt", "zdir"}, names(got))

	l.Sort = SortNone
	got, err = l.List(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Adir", "alpha.txt", "Beta.txt", "zdir"}, names(got))
}

func TestListHiddenAndPatterns(t *testing.T) {
	root := mkTree(t, ".git/", ".env", "main.go", "main.pyc", "node_modules/")

	l, err := NewLister(SortDirsFirst, false, []string{"*.pyc", " node_modules ", ""})
	require.NoError(t, err)
	got, err := l.List(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, names(got))

	l.ShowHidden = true
	got, err = l.List(root)
	require.NoError(t, err)
	assert.Equal(t, []string{".git", ".env", "main.go"}, names(got))
}

func TestListAllHiddenYieldsOnlyGoUp(t *testing.T) {
	root := mkTree(t, ".a", ".b")
	l, err := NewLister(SortDirsFirst, false, nil)
	require.NoError(t, err)
	got, err := l.List(root)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].IsGoUp)
}

func TestNewListerBadPattern(t *testing.T) {
	_, err := NewLister(SortDirsFirst, true, []string{"[abc"})
	assert.Error(t, err)
}

func TestListClassifiesSymlinks(t *testing.T) {
	root := mkTree(t, "target/")
	require.NoError(t, os.Symlink(filepath.Join(root, "target"), filepath.Join(root, "link")))
	require.NoError(t, os.Symlink(filepath.Join(root, "nowhere"), filepath.Join(root, "dangling")))

	got, err := DefaultLister().List(root)
	require.NoError(t, err)
	kinds := map[string]bool{}
	for _, it := range got.Items[1:] {
		kinds[it.Name] = it.IsDir
	}
	assert.Equal(t, map[string]bool{"target": true, "link": true, "dangling": false}, kinds)
}

func TestListRelativePathIsMadeAbsolute(t *testing.T) {
	root := mkTree(t, "sub/")
	wd, err := os.Getwd()
	require.NoError(t, err)
	chdirTo := root
	require.NoError(t, os.Chdir(chdirTo))
	t.Setenv("PWD", chdirTo)
	t.Cleanup(func() { _ = os.Chdir(wd) })

	got, err := DefaultLister().List("sub")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "sub"), got.Path)
	assert.Equal(t, root, got.Items[0].Path)
}
