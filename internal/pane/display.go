package pane

// Presentation is the drawing state of a row. The renderer maps each value
// to a concrete style.
type Presentation int

const (
	UnfocusedUnselected Presentation = iota
	UnfocusedSelected
	FocusedUnselected
	FocusedSelected
)

func (s Presentation) Selected() bool { return s == UnfocusedSelected || s == FocusedSelected }
func (s Presentation) Focused() bool  { return s == FocusedUnselected || s == FocusedSelected }

func presentationOf(focused, selected bool) Presentation {
	switch {
	case focused && selected:
		return FocusedSelected
	case focused:
		return FocusedUnselected
	case selected:
		return UnfocusedSelected
	}
	return UnfocusedUnselected
}

// Row is what the renderer needs to draw one item.
type Row struct {
	Name         string
	Selected     bool
	IsDir        bool
	IsGoUp       bool
	Presentation Presentation
}

// DisplayModel returns one row per item, in order.
func (p *Pane) DisplayModel() []Row {
	rows := make([]Row, len(p.items))
	for i, it := range p.items {
		rows[i] = Row{
			Name:         it.Caption(),
			Selected:     it.Selected,
			IsDir:        it.IsDir,
			IsGoUp:       it.IsGoUp,
			Presentation: presentationOf(p.focused, it.Selected),
		}
	}
	return rows
}
