package stack

import (
	"slices"
	"strconv"
	"strings"
)

// AddChild appends children to this Node and invalidates cached sizes.
// A child that already has a parent is moved.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		child.detach()
		child.parent = n
		n.children = append(n.children, child)
	}
	n.Invalidate()
}

// InsertChild inserts child at index i, clamped to the valid range.
func (n *Node) InsertChild(i int, child *Node) {
	child.detach()
	i = max(0, min(i, len(n.children)))
	child.parent = n
	n.children = slices.Insert(n.children, i, child)
	n.Invalidate()
}

// RemoveChild removes a child from this Node, keeping the order of the rest.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	n.Invalidate()
	return true
}

// RemoveAllChildren removes all children from this Node.
func (n *Node) RemoveAllChildren() {
	for _, child := range n.children {
		child.parent = nil
	}
	n.children = nil
	n.Invalidate()
}

// Children returns the child nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil if this is the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, child := range n.children {
		if child.name == name {
			return child
		}
	}
	return nil
}

// Path returns the node's position in its tree as slash-separated names.
// Unnamed nodes appear as "#i", their index in the parent.
func (n *Node) Path() string {
	var parts []string
	for node := n; node != nil; node = node.parent {
		parts = append(parts, node.segment())
	}
	slices.Reverse(parts)
	return strings.Join(parts, "/")
}

func (n *Node) segment() string {
	if n.name != "" {
		return n.name
	}
	if n.parent == nil {
		return "#0"
	}
	return "#" + strconv.Itoa(slices.Index(n.parent.children, n))
}

func (n *Node) detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Walk visits root and its descendants depth-first in child order.
// depth is 0 for root. Returning false from fn skips the node's children.
func Walk(root *Node, fn func(node *Node, depth int) bool) {
	walk(root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, child := range n.children {
		walk(child, depth+1, fn)
	}
}

// --- Mutations ---

// SetVisible shows or hides the node.
func (n *Node) SetVisible(visible bool) {
	if n.hidden == !visible {
		return
	}
	n.hidden = !visible
	n.Invalidate()
}

// SetMinSize sets the minimum size of a leaf.
func (n *Node) SetMinSize(width, height int) {
	n.minSize = Size{Width: width, Height: height}
	n.Invalidate()
}

// SetPreferredSize sets the preferred size of a leaf.
func (n *Node) SetPreferredSize(width, height int) {
	n.prefSize = Size{Width: width, Height: height}
	n.Invalidate()
}

// SetMaxSize sets the maximum size of a leaf.
func (n *Node) SetMaxSize(width, height int) {
	n.maxSize = Size{Width: width, Height: height}
	n.Invalidate()
}

// SetAlignment sets the cross-axis alignment fraction.
func (n *Node) SetAlignment(fraction float64) {
	n.alignment = fraction
	n.Invalidate()
}

// SetInsets sets the space between the node's bounds and its children.
func (n *Node) SetInsets(e Edges) {
	n.insets = e
	n.Invalidate()
}

// SetBorder sets the border style.
func (n *Node) SetBorder(b BorderStyle) {
	n.border = b
	n.Invalidate()
}

// OnLayout registers fn to run each time the node receives new bounds.
func (n *Node) OnLayout(fn func(*Node)) {
	n.onLayout = append(n.onLayout, fn)
}

// Invalidate discards cached size requirements on this node and all of its
// ancestors. Mutating methods call it automatically.
func (n *Node) Invalidate() {
	for node := n; node != nil; node = node.parent {
		if node.layout != nil {
			node.layout.Invalidate()
		}
	}
}
