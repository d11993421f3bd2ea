// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package stack

import "github.com/grindlemire/go-stack/internal/layout"

// Policy selects how a container uses the space along its primary axis.
type Policy = layout.Policy

const (
	FromStart = layout.FromStart
	FromEnd   = layout.FromEnd
	Fill      = layout.Fill
)

// Direction specifies the axis along which children are stacked.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Axis selects the primary or cross axis of a stack.
type Axis = layout.Axis

const (
	Primary = layout.Primary
	Cross   = layout.Cross
)

// Requirement describes the space something asks for along one axis.
type Requirement = layout.Requirement

// Element is anything that can be arranged by a Layout.
type Element = layout.Element

// Layout is the stacking engine for one container.
type Layout = layout.Stack

// LayoutOption configures a Layout.
type LayoutOption = layout.Option

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents insets on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Unbounded is the largest extent an element can ask for.
const Unbounded = layout.Unbounded

// NewLayout creates a stacking engine with the given policy.
func NewLayout(policy Policy, opts ...LayoutOption) *Layout {
	return layout.New(policy, opts...)
}

// WithLayoutDirection sets the primary axis of a Layout. The default is Column.
func WithLayoutDirection(d Direction) LayoutOption {
	return layout.WithDirection(d)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
