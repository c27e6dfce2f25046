package pane

import "path/filepath"

// GoUpCaption is the caption shown for the synthetic parent entry.
const GoUpCaption = ".."

// Item is a single entry in a pane listing.
type Item struct {
	Path     string
	Name     string
	IsDir    bool
	IsGoUp   bool
	Selected bool
}

// NewItem builds the entry for name inside parent.
func NewItem(parent, name string, isDir bool) Item {
	return Item{
		Path:  filepath.Join(parent, name),
		Name:  name,
		IsDir: isDir,
	}
}

// GoUpItem builds the ".." entry for dir. At the filesystem root the
// entry points back at the root itself.
func GoUpItem(dir string) Item {
	return Item{
		Path:   filepath.Dir(dir),
		Name:   GoUpCaption,
		IsDir:  true,
		IsGoUp: true,
	}
}

// Caption returns the text shown for the item.
func (i Item) Caption() string {
	if i.IsGoUp {
		return GoUpCaption
	}
	return i.Name
}

func (i *Item) Select()   { i.Selected = true }
func (i *Item) Deselect() { i.Selected = false }
