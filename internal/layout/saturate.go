package layout

import "math"

// Unbounded is the largest extent an element can ask for. Sums that would
// exceed it saturate instead of wrapping.
const Unbounded = math.MaxInt

const unboundedFloat = float64(math.MaxInt)

// satAdd returns a+b clamped to the int range.
func satAdd(a, b int) int {
	s := a + b
	if a > 0 && b > 0 && s < 0 {
		return math.MaxInt
	}
	if a < 0 && b < 0 && s >= 0 {
		return math.MinInt
	}
	return s
}

// toInt truncates f toward zero, clamping to [0, Unbounded].
func toInt(f float64) int {
	switch {
	case f != f || f <= 0:
		return 0
	case f >= unboundedFloat:
		return Unbounded
	default:
		return int(f)
	}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins.
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
