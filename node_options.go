package stack

// Option configures a Node.
type Option func(*Node)

// WithName sets the node's name, used in paths and when drawing.
func WithName(name string) Option {
	return func(n *Node) {
		n.name = name
	}
}

// --- Size Options ---

// WithMinSize sets the minimum size in cells.
func WithMinSize(width, height int) Option {
	return func(n *Node) {
		n.minSize = Size{Width: width, Height: height}
	}
}

// WithPreferredSize sets the preferred size in cells.
func WithPreferredSize(width, height int) Option {
	return func(n *Node) {
		n.prefSize = Size{Width: width, Height: height}
	}
}

// WithMaxSize sets the maximum size in cells. Use Unbounded for no limit.
func WithMaxSize(width, height int) Option {
	return func(n *Node) {
		n.maxSize = Size{Width: width, Height: height}
	}
}

// WithSize sets minimum, preferred and maximum size to the same value,
// making the node rigid.
func WithSize(width, height int) Option {
	return func(n *Node) {
		s := Size{Width: width, Height: height}
		n.minSize, n.prefSize, n.maxSize = s, s, s
	}
}

// WithAlignment sets where the node sits in its parent's cross-axis band,
// from 0 (leading edge) to 1 (trailing edge).
func WithAlignment(fraction float64) Option {
	return func(n *Node) {
		n.alignment = fraction
	}
}

// WithHidden makes the node invisible. It keeps its slot but gets no space.
func WithHidden() Option {
	return func(n *Node) {
		n.hidden = true
	}
}

// --- Container Options ---

// WithStack makes the node a container that stacks its children in
// direction d using policy.
func WithStack(policy Policy, d Direction) Option {
	return func(n *Node) {
		n.layout = NewLayout(policy, WithLayoutDirection(d))
	}
}

// WithInsets sets the space between the node's bounds and its children.
func WithInsets(e Edges) Option {
	return func(n *Node) {
		n.insets = e
	}
}

// WithBorder sets the border style. A border adds one cell of inset per side.
func WithBorder(b BorderStyle) Option {
	return func(n *Node) {
		n.border = b
	}
}

// --- Callback Options ---

// WithOnLayout registers fn to run each time the node receives new bounds.
func WithOnLayout(fn func(*Node)) Option {
	return func(n *Node) {
		n.onLayout = append(n.onLayout, fn)
	}
}

// WithChildren appends children to the node.
func WithChildren(children ...*Node) Option {
	return func(n *Node) {
		n.AddChild(children...)
	}
}
