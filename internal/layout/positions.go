package layout

import "math/big"

// fixedPositions gives every child its preferred extent, packing them one
// after another starting at offset.
func fixedPositions(offset int, children []Requirement, offsets, spans []int) {
	for i, req := range children {
		offsets[i] = offset
		spans[i] = req.Preferred
		offset = satAdd(offset, spans[i])
	}
}

// tiledPositions distributes allocated across children that occupy disjoint
// intervals. Spans move from Min through Preferred to Max as the allocation
// grows, each child taking a share proportional to its flexibility. Within
// [total Min, total Max] the spans never add up to more than allocated.
// Outside it every child sits at its bound and the rest of the allocation is
// left unused or overflows.
//
// Totals are exact rather than saturated: several Unbounded children must
// still split the play between them.
func tiledPositions(allocated int, children []Requirement, offsets, spans []int) {
	pref := sum(children, func(r Requirement) int { return r.Preferred })
	alloc := big.NewInt(int64(allocated))

	if alloc.Cmp(pref) >= 0 {
		room := sum(children, func(r Requirement) int { return r.Max - r.Preferred })
		play := minBig(new(big.Int).Sub(alloc, pref), room)
		tile(children, offsets, spans, func(r Requirement) int {
			return r.Preferred + share(play, r.Max-r.Preferred, room, false)
		})
		return
	}

	room := sum(children, func(r Requirement) int { return r.Preferred - r.Min })
	play := minBig(new(big.Int).Sub(pref, alloc), room)
	tile(children, offsets, spans, func(r Requirement) int {
		return r.Preferred - share(play, r.Preferred-r.Min, room, true)
	})
}

// tile packs children one after another with the given spans.
func tile(children []Requirement, offsets, spans []int, span func(Requirement) int) {
	offset := 0
	for i, req := range children {
		offsets[i] = offset
		spans[i] = span(req)
		offset = satAdd(offset, spans[i])
	}
}

// sum adds f over children without saturating.
func sum(children []Requirement, f func(Requirement) int) *big.Int {
	total := new(big.Int)
	for _, req := range children {
		total.Add(total, big.NewInt(int64(f(req))))
	}
	return total
}

// share returns play*part/whole, the part of play owed to one child.
// Expansion rounds down and compression rounds up, so rounding never pushes
// the spans past the allocation. The result is within [0, part] because
// play <= whole.
func share(play *big.Int, part int, whole *big.Int, roundUp bool) int {
	if whole.Sign() == 0 || part == 0 {
		return 0
	}
	num := new(big.Int).Mul(play, big.NewInt(int64(part)))
	if roundUp {
		num.Add(num, whole)
		num.Sub(num, big.NewInt(1))
	}
	return int(num.Quo(num, whole).Int64())
}

func minBig(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// alignedPositions places children that share one band of width allocated.
// Each span follows the child's preferred extent scaled by the ratio between
// allocated and the aggregate preferred extent, kept within the child's own
// [Min, Max]. The child's alignment then splits the slack: 0 is flush with
// the leading edge, 1 with the trailing edge.
func alignedPositions(allocated int, total Requirement, children []Requirement, offsets, spans []int) {
	for i, req := range children {
		target := req.Preferred
		if total.Preferred > 0 && allocated != total.Preferred {
			target = toInt(float64(req.Preferred) * float64(allocated) / float64(total.Preferred))
		}
		span := clamp(target, req.Min, req.Max)
		spans[i] = span
		offsets[i] = 0
		if slack := allocated - span; slack > 0 {
			offsets[i] = toInt(req.Alignment * float64(slack))
		}
	}
}
