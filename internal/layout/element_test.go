package layout

// testElement is a minimal Element implementation for exercising the engine.
type testElement struct {
	min, pref, max Size
	align          float64
	hidden         bool
	calls          int // number of PreferredSize calls
}

func (e *testElement) MinSize() Size { return e.min }

func (e *testElement) PreferredSize() Size {
	e.calls++
	return e.pref
}

func (e *testElement) MaxSize() Size      { return e.max }
func (e *testElement) Alignment() float64 { return e.align }
func (e *testElement) Visible() bool      { return !e.hidden }

// rigid creates an element whose min, preferred and max sizes are all w x h.
func rigid(w, h int) *testElement {
	s := Size{Width: w, Height: h}
	return &testElement{min: s, pref: s, max: s}
}

// column creates an element for a Column stack: heights are (minH, prefH,
// maxH) and the width is fixed at w.
func column(w, minH, prefH, maxH int) *testElement {
	return &testElement{
		min:  Size{Width: w, Height: minH},
		pref: Size{Width: w, Height: prefH},
		max:  Size{Width: w, Height: maxH},
	}
}

func elements(es ...*testElement) []Element {
	result := make([]Element, len(es))
	for i, e := range es {
		result[i] = e
	}
	return result
}
