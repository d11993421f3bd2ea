package canvas

import "github.com/grindlemire/go-stack"

// LeafFill is the rune used to shade borderless leaf nodes.
const LeafFill = '·'

// DrawTree draws every visible node of a laid-out tree.
// Bordered nodes get a box with their name in the top edge; borderless
// leaves are shaded with LeafFill and labelled in their top-left corner.
// Hidden nodes and their subtrees are skipped. Each node is clipped to the
// content area of its parent, so children that overflow never draw over a
// parent's border. Each cell's Layer is the depth of the node that drew it.
func DrawTree(c *Canvas, root *stack.Node) {
	if root == nil {
		return
	}
	drawNode(c, root, 0, c.Rect())
}

func drawNode(c *Canvas, n *stack.Node, depth int, clip stack.Rect) {
	if !n.Visible() {
		return
	}
	bounds := n.Bounds()
	if bounds.IsEmpty() || clip.IsEmpty() {
		return
	}

	switch {
	case n.Border() != stack.BorderNone:
		drawBox(c, bounds, n.Border(), depth, clip)
		if bounds.Width > 4 {
			title := stack.NewRect(bounds.X+2, bounds.Y, bounds.Width-4, 1)
			c.SetString(title.X, title.Y, n.Name(), depth, title.Intersect(clip))
		}
	case !n.IsContainer():
		visible := bounds.Intersect(clip)
		c.Fill(visible, LeafFill, depth)
		c.SetString(bounds.X, bounds.Y, n.Name(), depth, visible)
	}

	inner := n.ContentBounds().Intersect(clip)
	for _, child := range n.Children() {
		drawNode(c, child, depth+1, inner)
	}
}
