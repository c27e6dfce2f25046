package pane

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// ErrNotDirectory is wrapped by DirectoryUnreadableError when the path is a file.
var ErrNotDirectory = errors.New("not a directory")

// SortMode controls the order of entries after the go-up item.
type SortMode string

const (
	SortDirsFirst SortMode = "dirs-first"
	SortName      SortMode = "name"
	SortNone      SortMode = "none"
)

// ParseSortMode maps a setting value onto a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortDirsFirst:
		return SortDirsFirst, nil
	case SortName:
		return SortName, nil
	case SortNone:
		return SortNone, nil
	}
	return "", fmt.Errorf("unknown sort mode %q", s)
}

// Listing is the complete result of enumerating one directory.
type Listing struct {
	Path  string
	Items []Item
}

// Lister enumerates directories into listings.
type Lister struct {
	Sort       SortMode
	ShowHidden bool
	hide       []glob.Glob
}

// NewLister returns a lister hiding names that match any of patterns.
func NewLister(mode SortMode, showHidden bool, patterns []string) (*Lister, error) {
	l := &Lister{Sort: mode, ShowHidden: showHidden}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("hide pattern %q: %w", p, err)
		}
		l.hide = append(l.hide, g)
	}
	return l, nil
}

// DefaultLister shows everything, directories first.
func DefaultLister() *Lister {
	return &Lister{Sort: SortDirsFirst, ShowHidden: true}
}

func (l *Lister) hidden(name string) bool {
	if !l.ShowHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range l.hide {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// List enumerates dir. The returned listing always starts with the go-up item.
func (l *Lister) List(dir string) (Listing, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Listing{}, &DirectoryUnreadableError{Path: dir, Err: err}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return Listing{}, &DirectoryUnreadableError{Path: abs, Err: err}
	}
	if !info.IsDir() {
		return Listing{}, &DirectoryUnreadableError{Path: abs, Err: ErrNotDirectory}
	}

	f, err := os.Open(abs)
	if err != nil {
		return Listing{}, &DirectoryUnreadableError{Path: abs, Err: err}
	}
	// Read in enumeration order; os.ReadDir would sort by name.
	entries, err := f.ReadDir(-1)
	_ = f.Close()
	if err != nil {
		return Listing{}, &DirectoryUnreadableError{Path: abs, Err: err}
	}

	children := make([]Item, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if l.hidden(name) {
			continue
		}
		children = append(children, NewItem(abs, name, isDir(filepath.Join(abs, name))))
	}
	l.order(children)

	items := make([]Item, 0, len(children)+1)
	items = append(items, GoUpItem(abs))
	items = append(items, children...)
	return Listing{Path: abs, Items: items}, nil
}

// isDir follows symlinks; anything that cannot be stat'ed is a file.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (l *Lister) order(items []Item) {
	switch l.Sort {
	case SortNone:
		return
	case SortName:
		sort.SliceStable(items, func(i, j int) bool {
			return lessName(items[i].Name, items[j].Name)
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].IsDir != items[j].IsDir {
				return items[i].IsDir
			}
			return lessName(items[i].Name, items[j].Name)
		})
	}
}

func lessName(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
