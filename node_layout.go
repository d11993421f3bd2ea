package stack

// Calculate lays out the tree rooted at root inside a width x height area
// at the origin. Every node's Bounds are updated and OnLayout callbacks run
// parent first. Negative dimensions are treated as zero.
//
// Cached size requirements are reused, so calling Calculate again after a
// resize only repeats the positioning pass.
func Calculate(root *Node, width, height int) {
	if root == nil {
		return
	}
	root.setBounds(NewRect(0, 0, max(width, 0), max(height, 0)))
}

// Relayout repeats the positioning pass for n's subtree within its current
// bounds, for use after mutating a subtree.
func (n *Node) Relayout() {
	n.setBounds(n.bounds)
}

func (n *Node) setBounds(r Rect) {
	n.bounds = r
	for _, fn := range n.onLayout {
		fn(n)
	}
	n.layoutChildren()
}

// layoutChildren positions the children within the node's bounds.
func (n *Node) layoutChildren() {
	if n.layout == nil || len(n.children) == 0 {
		return
	}

	rects := n.layout.Layout(n.elements(), n.bounds.Size(), n.Insets())
	for i, child := range n.children {
		child.setBounds(rects[i].Translate(n.bounds.X, n.bounds.Y))
	}
}
