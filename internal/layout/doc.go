// Package layout implements a pure-Go linear stack layout engine.
//
// A [Stack] arranges an ordered list of [Element] values along one axis using
// one of three policies: [FromStart] and [FromEnd] stack every element at its
// preferred extent against the leading or trailing edge, [Fill] distributes
// the whole allocation across the elements according to their flexibility.
// Elements describe themselves with minimum, preferred and maximum sizes and
// a cross-axis alignment fraction.
//
// Aggregate [Requirement] values are cached on the Stack until it is
// invalidated; resizing the container only repeats the positioning pass.
// Types are re-exported through the root stack package for public consumption.
package layout
