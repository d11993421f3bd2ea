package layout

// Size is a width/height pair in cells.
type Size struct {
	Width, Height int
}

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns a new Rect moved by (dx, dy). Coordinates saturate
// instead of wrapping.
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: satAdd(r.X, dx), Y: satAdd(r.Y, dy), Width: r.Width, Height: r.Height}
}

// Inset returns a new Rect shrunk by the given Edges.
// The result never has a negative width or height.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  max(r.Width-edges.Horizontal(), 0),
		Height: max(r.Height-edges.Vertical(), 0),
	}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	width := right - x
	height := bottom - y

	if width <= 0 || height <= 0 {
		return Rect{}
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Edges represents insets for the four sides of a container.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() int {
	return satAdd(e.Left, e.Right)
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() int {
	return satAdd(e.Top, e.Bottom)
}

// Add returns the side-by-side sum of two Edges.
func (e Edges) Add(other Edges) Edges {
	return Edges{
		Top:    satAdd(e.Top, other.Top),
		Right:  satAdd(e.Right, other.Right),
		Bottom: satAdd(e.Bottom, other.Bottom),
		Left:   satAdd(e.Left, other.Left),
	}
}

// clamped returns e with negative sides raised to zero.
func (e Edges) clamped() Edges {
	return Edges{
		Top:    max(e.Top, 0),
		Right:  max(e.Right, 0),
		Bottom: max(e.Bottom, 0),
		Left:   max(e.Left, 0),
	}
}
