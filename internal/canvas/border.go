package canvas

import "github.com/grindlemire/go-stack"

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for a border style.
func Chars(b stack.BorderStyle) BorderChars {
	switch b {
	case stack.BorderSingle:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	case stack.BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case stack.BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case stack.BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	default:
		return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	}
}

// DrawBox draws a box border on the canvas at rect.
// Boxes smaller than 2x2 and BorderNone are not drawn. The box is clipped
// to the canvas.
func DrawBox(c *Canvas, rect stack.Rect, border stack.BorderStyle, layer int) {
	drawBox(c, rect, border, layer, c.Rect())
}

// drawBox draws the parts of a box border that fall inside clip.
func drawBox(c *Canvas, rect stack.Rect, border stack.BorderStyle, layer int, clip stack.Rect) {
	if rect.Width < 2 || rect.Height < 2 || border == stack.BorderNone {
		return
	}

	clip = clip.Intersect(c.Rect())
	set := func(x, y int, r rune) {
		if x >= clip.X && x < clip.Right() && y >= clip.Y && y < clip.Bottom() {
			c.SetRune(x, y, r, layer)
		}
	}

	chars := Chars(border)
	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	// Draw corners
	set(left, top, chars.TopLeft)
	set(right, top, chars.TopRight)
	set(left, bottom, chars.BottomLeft)
	set(right, bottom, chars.BottomRight)

	// Draw top and bottom edges
	for x := max(left+1, clip.X); x < right && x < clip.Right(); x++ {
		set(x, top, chars.Top)
		set(x, bottom, chars.Bottom)
	}

	// Draw left and right edges
	for y := max(top+1, clip.Y); y < bottom && y < clip.Bottom(); y++ {
		set(left, y, chars.Left)
		set(right, y, chars.Right)
	}
}
