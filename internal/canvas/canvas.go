// Package canvas draws laid-out stack trees onto a grid of character cells.
package canvas

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/grindlemire/go-stack"
)

// Cell represents a single character cell on the canvas.
// Wide characters occupy two cells; the second is a continuation with
// Width 0 and Rune 0.
type Cell struct {
	Rune  rune
	Layer int   // Tree depth of the node that drew the cell
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// IsContinuation returns true if this cell is a continuation of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

var blank = Cell{Rune: ' ', Width: 1}

// Canvas is a 2D grid of cells.
type Canvas struct {
	cells  []Cell
	width  int
	height int
}

// New creates a canvas of the given dimensions filled with spaces.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blank
	}
	return &Canvas{cells: cells, width: width, height: height}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.height
}

// Rect returns the canvas bounds as a Rect starting at (0, 0).
func (c *Canvas) Rect() stack.Rect {
	return stack.NewRect(0, 0, c.width, c.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (c *Canvas) idx(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

// Cell returns the cell at (x, y), or an empty Cell if out of bounds.
func (c *Canvas) Cell(x, y int) Cell {
	i := c.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return c.cells[i]
}

// SetRune sets a single-width rune at (x, y). Out-of-bounds writes are ignored.
func (c *Canvas) SetRune(x, y int, r rune, layer int) {
	i := c.idx(x, y)
	if i < 0 {
		return
	}
	c.clearWideAt(x, y)
	c.cells[i] = Cell{Rune: r, Layer: layer, Width: 1}
}

// clearWideAt blanks both halves of a wide character covering (x, y).
func (c *Canvas) clearWideAt(x, y int) {
	cell := c.Cell(x, y)
	switch {
	case cell.IsContinuation() && x > 0:
		c.cells[c.idx(x-1, y)] = blank
		c.cells[c.idx(x, y)] = blank
	case cell.Width == 2 && x+1 < c.width:
		c.cells[c.idx(x+1, y)] = blank
	}
}

// SetString writes s starting at (x, y), clipped to clip and to the canvas.
// Returns the display width written.
func (c *Canvas) SetString(x, y int, s string, layer int, clip stack.Rect) int {
	clip = clip.Intersect(c.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	written := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := max(g.Width(), 1)
		if x+w > clip.Right() {
			break
		}
		if x >= clip.X {
			c.SetRune(x, y, g.Runes()[0], layer)
			if w == 2 {
				c.clearWideAt(x+1, y)
				c.cells[c.idx(x, y)].Width = 2
				c.cells[c.idx(x+1, y)] = Cell{Layer: layer}
			}
			written += w
		}
		x += w
	}
	return written
}

// Fill sets every cell of rect (clipped to the canvas) to r.
func (c *Canvas) Fill(rect stack.Rect, r rune, layer int) {
	rect = rect.Intersect(c.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			c.SetRune(x, y, r, layer)
		}
	}
}

// String returns the canvas rows joined by newlines, with trailing spaces
// trimmed from each row.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var row strings.Builder
		for x := 0; x < c.width; x++ {
			cell := c.cells[c.idx(x, y)]
			if cell.IsContinuation() {
				continue
			}
			row.WriteRune(cell.Rune)
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
	}
	return sb.String()
}
