package layout

// Requirement describes the space something asks for along one axis.
//
// Min <= Preferred <= Max holds for every Requirement the engine produces.
// Alignment is a fraction in [0, 1]: 0 is the leading edge, 1 the trailing
// edge, 0.5 centered.
type Requirement struct {
	Min       int
	Preferred int
	Max       int
	Alignment float64
}

// Normalize clamps r into a valid Requirement: negative extents become zero,
// Preferred is raised to Min, Max is raised to Preferred and Alignment is
// clamped into [0, 1].
func (r Requirement) Normalize() Requirement {
	r.Min = max(r.Min, 0)
	r.Preferred = max(r.Preferred, r.Min)
	r.Max = max(r.Max, r.Preferred)
	switch {
	case r.Alignment != r.Alignment || r.Alignment < 0:
		r.Alignment = 0
	case r.Alignment > 1:
		r.Alignment = 1
	}
	return r
}

// Tiled combines requirements of elements that occupy disjoint intervals
// along an axis: extents are summed (saturating) and alignment is 0.
func Tiled(children []Requirement) Requirement {
	var total Requirement
	for _, c := range children {
		total.Min = satAdd(total.Min, c.Min)
		total.Preferred = satAdd(total.Preferred, c.Preferred)
		total.Max = satAdd(total.Max, c.Max)
	}
	return total
}

// Aligned combines requirements of elements that share the same band along
// an axis: each extent is the largest among the children. Alignment comes
// from the first child with the largest preferred extent.
func Aligned(children []Requirement) Requirement {
	var total Requirement
	for i, c := range children {
		total.Min = max(total.Min, c.Min)
		total.Max = max(total.Max, c.Max)
		if i == 0 || c.Preferred > total.Preferred {
			total.Preferred = c.Preferred
			total.Alignment = c.Alignment
		}
	}
	return total
}
