package stack

// Node is an element of a layout tree.
//
// A leaf node reports the sizes it was configured with. A container node
// (created with WithStack) arranges its children with its own Layout and
// reports the aggregate sizes of its children plus its insets, so containers
// nest like any other element.
type Node struct {
	// Tree structure
	children []*Node
	parent   *Node

	name string

	// Size hints for leaves
	minSize   Size
	prefSize  Size
	maxSize   Size
	alignment float64
	hidden    bool

	// Container properties
	layout *Layout
	insets Edges
	border BorderStyle

	// Computed by Calculate
	bounds Rect

	onLayout []func(*Node)
}

// Compile-time check that Node implements Element
var _ Element = (*Node)(nil)

// New creates a new Node with the given options.
// By default a node is a visible leaf with zero minimum and preferred size
// and an unbounded maximum size.
func New(opts ...Option) *Node {
	n := &Node{
		maxSize: Size{Width: Unbounded, Height: Unbounded},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

// IsContainer reports whether the node stacks children.
func (n *Node) IsContainer() bool {
	return n.layout != nil
}

// Layout returns the node's stacking engine, or nil for a leaf.
func (n *Node) Layout() *Layout {
	return n.layout
}

// Border returns the node's border style.
func (n *Node) Border() BorderStyle {
	return n.border
}

// Insets returns the space between the node's bounds and its children,
// including one cell per side for a border.
func (n *Node) Insets() Edges {
	return n.insets.Add(n.border.edges())
}

// Bounds returns the rectangle assigned by the last Calculate, in absolute
// coordinates.
func (n *Node) Bounds() Rect {
	return n.bounds
}

// ContentBounds returns Bounds minus Insets.
func (n *Node) ContentBounds() Rect {
	return n.bounds.Inset(n.Insets())
}

// --- Element implementation ---

// MinSize returns the smallest size the node can be given.
func (n *Node) MinSize() Size {
	if n.layout != nil {
		return n.layout.MinimumSize(n.elements(), n.Insets())
	}
	return n.minSize
}

// PreferredSize returns the size the node would like to have.
func (n *Node) PreferredSize() Size {
	if n.layout != nil {
		return n.layout.PreferredSize(n.elements(), n.Insets())
	}
	return n.prefSize
}

// MaxSize returns the largest size the node can use.
func (n *Node) MaxSize() Size {
	if n.layout != nil {
		return n.layout.MaximumSize(n.elements(), n.Insets())
	}
	return n.maxSize
}

// Alignment returns the node's cross-axis alignment fraction.
func (n *Node) Alignment() float64 {
	return n.alignment
}

// Visible reports whether the node takes part in layout.
func (n *Node) Visible() bool {
	return !n.hidden
}

// elements returns the children as layout elements.
func (n *Node) elements() []Element {
	result := make([]Element, len(n.children))
	for i, child := range n.children {
		result[i] = child
	}
	return result
}
