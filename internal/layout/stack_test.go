package layout

import (
	"slices"
	"sync"
	"testing"
)

func TestStack_FromStart_InsetsOffsets(t *testing.T) {
	type tc struct {
		size Size
	}

	tests := map[string]tc{
		"large container": {size: Size{Width: 100, Height: 100}},
		"exact container": {size: Size{Width: 9, Height: 34}},
		"tiny container":  {size: Size{Width: 3, Height: 3}},
		"empty container": {size: Size{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := New(FromStart)
			elems := elements(rigid(5, 10), rigid(5, 20))

			rects := s.Layout(elems, tt.size, EdgeAll(2))

			want := []Rect{
				NewRect(2, 2, 5, 10),
				NewRect(2, 12, 5, 20),
			}
			if !slices.Equal(rects, want) {
				t.Errorf("Layout() = %v, want %v", rects, want)
			}
		})
	}
}

func TestStack_FromStart_LeavesTrailingSlack(t *testing.T) {
	s := New(FromStart)
	elems := elements(column(5, 0, 10, 50), column(5, 0, 20, 50))

	rects := s.Layout(elems, Size{Width: 5, Height: 100}, Edges{})

	if rects[0].Height != 10 || rects[1].Height != 20 {
		t.Errorf("heights = %d, %d, want preferred 10, 20", rects[0].Height, rects[1].Height)
	}
	if bottom := rects[1].Bottom(); bottom != 30 {
		t.Errorf("last element bottom = %d, want 30", bottom)
	}
}

func TestStack_FromEnd(t *testing.T) {
	type tc struct {
		size    Size
		insets  Edges
		wantTop []int
	}

	tests := map[string]tc{
		"pushed to trailing edge": {
			size:    Size{Width: 5, Height: 100},
			wantTop: []int{70, 80},
		},
		"pushed to trailing edge with insets": {
			size:    Size{Width: 9, Height: 100},
			insets:  EdgeTRBL(3, 2, 7, 2),
			wantTop: []int{63, 73},
		},
		"exact fit": {
			size:    Size{Width: 5, Height: 30},
			wantTop: []int{0, 10},
		},
		"overflow starts at leading edge": {
			size:    Size{Width: 5, Height: 20},
			wantTop: []int{0, 10},
		},
		"negative size treated as zero": {
			size:    Size{Width: -5, Height: -20},
			wantTop: []int{0, 10},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := New(FromEnd)
			elems := elements(rigid(5, 10), rigid(5, 20))

			rects := s.Layout(elems, tt.size, tt.insets)

			for i, want := range tt.wantTop {
				if rects[i].Y != want {
					t.Errorf("rects[%d].Y = %d, want %d", i, rects[i].Y, want)
				}
			}
			if rects[0].Height != 10 || rects[1].Height != 20 {
				t.Errorf("heights = %d, %d, want 10, 20", rects[0].Height, rects[1].Height)
			}
		})
	}
}

func TestStack_FromEnd_OverflowPastTrailingEdge(t *testing.T) {
	s := New(FromEnd)
	elems := elements(rigid(5, 10), rigid(5, 20))

	rects := s.Layout(elems, Size{Width: 5, Height: 20}, Edges{})

	if rects[0].Y < 0 {
		t.Errorf("leading offset = %d, must not be negative", rects[0].Y)
	}
	if bottom := rects[1].Bottom(); bottom <= 20 {
		t.Errorf("last element bottom = %d, want past the trailing edge at 20", bottom)
	}
}

func TestStack_Fill(t *testing.T) {
	s := New(Fill)
	elems := elements(
		column(0, 10, 20, 30),
		column(0, 5, 15, 25),
		column(0, 0, 10, 100),
	)

	rects := s.Layout(elems, Size{Width: 0, Height: 45}, Edges{})

	wantY := []int{0, 20, 35}
	wantH := []int{20, 15, 10}
	sum := 0
	for i, r := range rects {
		if r.Y != wantY[i] || r.Height != wantH[i] {
			t.Errorf("rects[%d] = y %d h %d, want y %d h %d", i, r.Y, r.Height, wantY[i], wantH[i])
		}
		sum += r.Height
	}
	if sum != 45 {
		t.Errorf("heights sum to %d, want 45", sum)
	}
}

func TestStack_Fill_UnboundedStaysInside(t *testing.T) {
	s := New(Fill)
	open := func() *testElement {
		return &testElement{
			pref: Size{Width: 5, Height: 3},
			max:  Size{Width: Unbounded, Height: Unbounded},
		}
	}
	elems := elements(open(), open())

	rects := s.Layout(elems, Size{Width: 20, Height: 30}, Edges{})

	want := []Rect{
		NewRect(0, 0, 10, 15),
		NewRect(10, 15, 10, 15),
	}
	if !slices.Equal(rects, want) {
		t.Errorf("Layout() = %v, want %v", rects, want)
	}
	if last := rects[len(rects)-1]; last.Right() > 20 || last.Bottom() > 30 {
		t.Errorf("last rect %v ends past the 20x30 container", last)
	}
}

func TestStack_Fill_TilesCrossAxis(t *testing.T) {
	s := New(Fill)
	elems := elements(
		&testElement{min: Size{Width: 0, Height: 1}, pref: Size{Width: 10, Height: 1}, max: Size{Width: 20, Height: 1}},
		&testElement{min: Size{Width: 0, Height: 1}, pref: Size{Width: 10, Height: 1}, max: Size{Width: 20, Height: 1}},
	)

	rects := s.Layout(elems, Size{Width: 30, Height: 2}, Edges{})

	want := []Rect{
		NewRect(0, 0, 15, 1),
		NewRect(15, 1, 15, 1),
	}
	if !slices.Equal(rects, want) {
		t.Errorf("Layout() = %v, want %v", rects, want)
	}
}

func TestStack_Row(t *testing.T) {
	s := New(FromStart, WithDirection(Row))
	a := &testElement{min: Size{Width: 10, Height: 0}, pref: Size{Width: 10, Height: 5}, max: Size{Width: 10, Height: 5}, align: 1}
	b := &testElement{min: Size{Width: 20, Height: 0}, pref: Size{Width: 20, Height: 5}, max: Size{Width: 20, Height: 5}, align: 0}

	rects := s.Layout(elements(a, b), Size{Width: 50, Height: 9}, Edges{})

	want := []Rect{
		NewRect(0, 4, 10, 5),
		NewRect(10, 0, 20, 5),
	}
	if !slices.Equal(rects, want) {
		t.Errorf("Layout() = %v, want %v", rects, want)
	}
	if s.Direction() != Row {
		t.Errorf("Direction() = %v, want row", s.Direction())
	}
}

func TestStack_CrossAlignment(t *testing.T) {
	type tc struct {
		align float64
		wantX int
	}

	tests := map[string]tc{
		"leading":  {align: 0, wantX: 0},
		"centered": {align: 0.5, wantX: 15},
		"trailing": {align: 1, wantX: 30},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for _, policy := range []Policy{FromStart, FromEnd} {
				s := New(policy)
				e := rigid(10, 5)
				e.align = tt.align

				rects := s.Layout(elements(e), Size{Width: 40, Height: 5}, Edges{})

				if rects[0].X != tt.wantX || rects[0].Width != 10 {
					t.Errorf("%v: rect = %v, want x %d width 10", policy, rects[0], tt.wantX)
				}
			}
		})
	}
}

func TestStack_InvisibleElementsKeepSlot(t *testing.T) {
	s := New(FromStart)
	hidden := rigid(5, 10)
	hidden.hidden = true
	elems := elements(rigid(5, 10), hidden, rigid(5, 10))

	rects := s.Layout(elems, Size{Width: 20, Height: 50}, Edges{})

	if len(rects) != 3 {
		t.Fatalf("len(rects) = %d, want 3", len(rects))
	}
	if rects[1].Width != 0 || rects[1].Height != 0 {
		t.Errorf("hidden rect = %v, want zero area", rects[1])
	}
	if rects[2].Y != 10 {
		t.Errorf("rects[2].Y = %d, want 10", rects[2].Y)
	}
	if got := s.Requirement(Primary, elems).Preferred; got != 20 {
		t.Errorf("primary preferred = %d, want 20", got)
	}
}

func TestStack_Requirement(t *testing.T) {
	a := &testElement{min: Size{Width: 2, Height: 10}, pref: Size{Width: 8, Height: 20}, max: Size{Width: 9, Height: 30}, align: 0.25}
	b := &testElement{min: Size{Width: 4, Height: 5}, pref: Size{Width: 6, Height: 15}, max: Size{Width: 50, Height: 25}, align: 0.75}

	type tc struct {
		policy      Policy
		wantPrimary Requirement
		wantCross   Requirement
	}

	tests := map[string]tc{
		"from-start tiles primary": {
			policy:      FromStart,
			wantPrimary: Requirement{Min: 15, Preferred: 35, Max: 55},
			wantCross:   Requirement{Min: 4, Preferred: 8, Max: 50, Alignment: 0.25},
		},
		"from-end tiles primary": {
			policy:      FromEnd,
			wantPrimary: Requirement{Min: 15, Preferred: 35, Max: 55},
			wantCross:   Requirement{Min: 4, Preferred: 8, Max: 50, Alignment: 0.25},
		},
		"fill aligns primary": {
			policy:      Fill,
			wantPrimary: Requirement{Min: 10, Preferred: 20, Max: 30},
			wantCross:   Requirement{Min: 4, Preferred: 8, Max: 50, Alignment: 0.25},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := New(tt.policy)
			elems := elements(a, b)

			if got := s.Requirement(Primary, elems); got != tt.wantPrimary {
				t.Errorf("Requirement(Primary) = %+v, want %+v", got, tt.wantPrimary)
			}
			if got := s.Requirement(Cross, elems); got != tt.wantCross {
				t.Errorf("Requirement(Cross) = %+v, want %+v", got, tt.wantCross)
			}
			if got := s.LayoutAlignment(Cross, elems); got != tt.wantCross.Alignment {
				t.Errorf("LayoutAlignment(Cross) = %v, want %v", got, tt.wantCross.Alignment)
			}
		})
	}
}

func TestStack_ContainerSizes(t *testing.T) {
	s := New(FromStart)
	elems := elements(
		&testElement{min: Size{Width: 1, Height: 2}, pref: Size{Width: 5, Height: 10}, max: Size{Width: 7, Height: 12}},
		&testElement{min: Size{Width: 3, Height: 4}, pref: Size{Width: 8, Height: 20}, max: Size{Width: 9, Height: Unbounded}},
	)
	insets := EdgeTRBL(1, 2, 3, 4)

	if got, want := s.MinimumSize(elems, insets), (Size{Width: 9, Height: 10}); got != want {
		t.Errorf("MinimumSize() = %+v, want %+v", got, want)
	}
	if got, want := s.PreferredSize(elems, insets), (Size{Width: 14, Height: 34}); got != want {
		t.Errorf("PreferredSize() = %+v, want %+v", got, want)
	}
	if got, want := s.MaximumSize(elems, insets), (Size{Width: 15, Height: Unbounded}); got != want {
		t.Errorf("MaximumSize() = %+v, want %+v", got, want)
	}
}

func TestStack_NoElements(t *testing.T) {
	for _, policy := range []Policy{FromStart, FromEnd, Fill} {
		s := New(policy)

		if got := s.Requirement(Primary, nil); got != (Requirement{}) {
			t.Errorf("%v: Requirement(Primary) = %+v, want zero", policy, got)
		}
		if got := s.Requirement(Cross, nil); got != (Requirement{}) {
			t.Errorf("%v: Requirement(Cross) = %+v, want zero", policy, got)
		}
		rects := s.Layout(nil, Size{Width: 10, Height: 10}, Edges{})
		if rects == nil || len(rects) != 0 {
			t.Errorf("%v: Layout() = %v, want empty slice", policy, rects)
		}
	}
}

func TestStack_CachesRequirements(t *testing.T) {
	a, b := rigid(5, 10), rigid(5, 20)
	s := New(FromStart)
	elems := elements(a, b)

	s.Requirement(Primary, elems)
	s.Requirement(Cross, elems)
	s.Layout(elems, Size{Width: 10, Height: 100}, Edges{})
	s.Layout(elems, Size{Width: 80, Height: 7}, EdgeAll(1))
	s.PreferredSize(elems, Edges{})

	if a.calls != 1 || b.calls != 1 {
		t.Fatalf("calls = %d, %d, want 1, 1 (resize must not recompute)", a.calls, b.calls)
	}

	b.pref.Height = 40
	if got := s.Requirement(Primary, elems).Preferred; got != 30 {
		t.Errorf("stale preferred = %d, want cached 30", got)
	}

	s.Invalidate()
	if got := s.Requirement(Primary, elems).Preferred; got != 50 {
		t.Errorf("preferred after Invalidate = %d, want 50", got)
	}
	if a.calls != 2 {
		t.Errorf("calls after Invalidate = %d, want 2", a.calls)
	}

	c := rigid(5, 1)
	elems = append(elems, c)
	if got := s.Requirement(Primary, elems).Preferred; got != 51 {
		t.Errorf("preferred after element count change = %d, want 51", got)
	}
}

func TestStack_LayoutIdempotent(t *testing.T) {
	for _, policy := range []Policy{FromStart, FromEnd, Fill} {
		s := New(policy)
		elems := elements(column(4, 10, 20, 30), column(6, 5, 15, 25), column(8, 0, 10, 100))
		size := Size{Width: 20, Height: 60}

		first := s.Layout(elems, size, EdgeAll(1))
		second := s.Layout(elems, size, EdgeAll(1))

		if !slices.Equal(first, second) {
			t.Errorf("%v: Layout() not idempotent: %v then %v", policy, first, second)
		}
	}
}

func TestStack_SaturatesOffsets(t *testing.T) {
	s := New(FromStart)
	elems := elements(rigid(1, Unbounded), rigid(1, Unbounded), rigid(1, 3))

	rects := s.Layout(elems, Size{Width: 1, Height: 10}, EdgeAll(5))

	if rects[2].Y != Unbounded {
		t.Errorf("rects[2].Y = %d, want saturated %d", rects[2].Y, Unbounded)
	}
	if got := s.Requirement(Primary, elems).Preferred; got != Unbounded {
		t.Errorf("preferred = %d, want saturated %d", got, Unbounded)
	}
}

func TestStack_ConcurrentAccess(t *testing.T) {
	s := New(Fill)
	elems := elements(column(4, 10, 20, 30), column(6, 5, 15, 25))

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(height int) {
			defer wg.Done()
			for range 100 {
				s.Layout(elems, Size{Width: 10, Height: height}, Edges{})
				s.Invalidate()
				s.Requirement(Cross, elems)
			}
		}(20 + i*10)
	}
	wg.Wait()
}
