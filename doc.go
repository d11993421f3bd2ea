// Package stack provides a linear stack layout engine and a small element
// tree that hosts it.
//
// A container [Node] stacks its children along one axis with one of three
// policies: [FromStart], [FromEnd] or [Fill]. Leaf nodes describe themselves
// with minimum, preferred and maximum sizes plus a cross-axis alignment;
// containers derive theirs from their children, so trees nest. [Calculate]
// assigns bounds to every node of a tree.
//
// The engine itself is available as [Layout] for hosts with their own
// element types: anything implementing [Element] can be arranged.
package stack
