package layout

// Element is anything that can be arranged by a Stack.
// The engine only reads these values during a call and keeps no reference
// to the element afterwards.
type Element interface {
	// MinSize returns the smallest size the element can be given.
	MinSize() Size

	// PreferredSize returns the size the element would like to have.
	PreferredSize() Size

	// MaxSize returns the largest size the element can use.
	MaxSize() Size

	// Alignment returns where the element sits in its cross-axis band,
	// from 0 (leading edge) to 1 (trailing edge).
	Alignment() float64

	// Visible reports whether the element takes part in layout.
	// Invisible elements keep their slot but get a zero-area Rect.
	Visible() bool
}

// requirements returns the primary- and cross-axis requirements of e for a
// stack running in direction d.
func requirements(e Element, d Direction) (primary, cross Requirement) {
	if !e.Visible() {
		return Requirement{}, Requirement{}
	}

	minSize, prefSize, maxSize := e.MinSize(), e.PreferredSize(), e.MaxSize()
	width := Requirement{Min: minSize.Width, Preferred: prefSize.Width, Max: maxSize.Width}
	height := Requirement{Min: minSize.Height, Preferred: prefSize.Height, Max: maxSize.Height}

	if d == Row {
		primary, cross = width, height
	} else {
		primary, cross = height, width
	}
	cross.Alignment = e.Alignment()
	return primary.Normalize(), cross.Normalize()
}
