package layout

import "sync"

// Stack arranges elements along one axis according to a Policy.
//
// Aggregate requirements are computed lazily and cached until Invalidate is
// called or the number of elements changes. Changing the container size does
// not invalidate them. A Stack is safe for concurrent use; one Stack should
// serve one container.
type Stack struct {
	policy    Policy
	direction Direction

	mu           sync.Mutex
	dirty        bool
	count        int
	primary      []Requirement
	cross        []Requirement
	primaryTotal Requirement
	crossTotal   Requirement
}

// Option configures a Stack.
type Option func(*Stack)

// WithDirection sets the primary axis. The default is Column.
func WithDirection(d Direction) Option {
	return func(s *Stack) {
		s.direction = d
	}
}

// New creates a Stack using the given policy.
func New(policy Policy, opts ...Option) *Stack {
	s := &Stack{
		policy:    policy,
		direction: Column,
		dirty:     true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy returns the stacking policy.
func (s *Stack) Policy() Policy {
	return s.policy
}

// Direction returns the primary axis direction.
func (s *Stack) Direction() Direction {
	return s.direction
}

// Invalidate discards cached requirements. Hosts call it when an element is
// added or removed, or when an element's sizes or visibility change.
func (s *Stack) Invalidate() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

// Requirement returns the aggregate requirement of elems along axis.
func (s *Stack) Requirement(axis Axis, elems []Element) Requirement {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkRequests(elems)
	if axis == Cross {
		return s.crossTotal
	}
	return s.primaryTotal
}

// LayoutAlignment returns the aggregate alignment of elems along axis.
func (s *Stack) LayoutAlignment(axis Axis, elems []Element) float64 {
	return s.Requirement(axis, elems).Alignment
}

// MinimumSize returns the smallest container size, insets included.
func (s *Stack) MinimumSize(elems []Element, insets Edges) Size {
	return s.containerSize(elems, insets, func(r Requirement) int { return r.Min })
}

// PreferredSize returns the preferred container size, insets included.
func (s *Stack) PreferredSize(elems []Element, insets Edges) Size {
	return s.containerSize(elems, insets, func(r Requirement) int { return r.Preferred })
}

// MaximumSize returns the largest useful container size, insets included.
func (s *Stack) MaximumSize(elems []Element, insets Edges) Size {
	return s.containerSize(elems, insets, func(r Requirement) int { return r.Max })
}

func (s *Stack) containerSize(elems []Element, insets Edges, pick func(Requirement) int) Size {
	s.mu.Lock()
	s.checkRequests(elems)
	primary, cross := pick(s.primaryTotal), pick(s.crossTotal)
	s.mu.Unlock()

	insets = insets.clamped()
	size := s.toSize(primary, cross)
	return Size{
		Width:  satAdd(size.Width, insets.Horizontal()),
		Height: satAdd(size.Height, insets.Vertical()),
	}
}

// Layout computes one Rect per element, in input order, for a container of
// the given size. Rects are in container-local coordinates with insets
// already applied. Negative sizes and insets are treated as zero.
func (s *Stack) Layout(elems []Element, size Size, insets Edges) []Rect {
	n := len(elems)
	if n == 0 {
		return []Rect{}
	}

	insets = insets.clamped()
	primaryAlloc, crossAlloc := s.split(Size{
		Width:  max(max(size.Width, 0)-insets.Horizontal(), 0),
		Height: max(max(size.Height, 0)-insets.Vertical(), 0),
	})

	primaryOffsets := make([]int, n)
	primarySpans := make([]int, n)
	crossOffsets := make([]int, n)
	crossSpans := make([]int, n)

	s.mu.Lock()
	s.checkRequests(elems)
	switch s.policy {
	case FromEnd:
		start := max(primaryAlloc-s.primaryTotal.Preferred, 0)
		fixedPositions(start, s.primary, primaryOffsets, primarySpans)
		alignedPositions(crossAlloc, s.crossTotal, s.cross, crossOffsets, crossSpans)
	case Fill:
		tiledPositions(primaryAlloc, s.primary, primaryOffsets, primarySpans)
		tiledPositions(crossAlloc, s.cross, crossOffsets, crossSpans)
	default:
		fixedPositions(0, s.primary, primaryOffsets, primarySpans)
		alignedPositions(crossAlloc, s.crossTotal, s.cross, crossOffsets, crossSpans)
	}
	s.mu.Unlock()

	rects := make([]Rect, n)
	for i := range rects {
		pos := s.toSize(primaryOffsets[i], crossOffsets[i])
		span := s.toSize(primarySpans[i], crossSpans[i])
		rects[i] = Rect{
			X:      satAdd(insets.Left, pos.Width),
			Y:      satAdd(insets.Top, pos.Height),
			Width:  span.Width,
			Height: span.Height,
		}
	}
	return rects
}

// checkRequests refreshes the cached requirements if they are stale.
// Caller must hold mu.
func (s *Stack) checkRequests(elems []Element) {
	if !s.dirty && s.count == len(elems) {
		return
	}

	n := len(elems)
	s.primary = make([]Requirement, n)
	s.cross = make([]Requirement, n)
	for i, e := range elems {
		s.primary[i], s.cross[i] = requirements(e, s.direction)
	}

	if s.policy == Fill {
		s.primaryTotal = Aligned(s.primary)
	} else {
		s.primaryTotal = Tiled(s.primary)
	}
	s.crossTotal = Aligned(s.cross)

	s.count = n
	s.dirty = false
}

// split maps a width/height pair onto (primary, cross).
func (s *Stack) split(size Size) (primary, cross int) {
	if s.direction == Row {
		return size.Width, size.Height
	}
	return size.Height, size.Width
}

// toSize maps a (primary, cross) pair back onto width/height.
func (s *Stack) toSize(primary, cross int) Size {
	if s.direction == Row {
		return Size{Width: primary, Height: cross}
	}
	return Size{Width: cross, Height: primary}
}
