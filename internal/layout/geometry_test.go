package layout

import "testing"

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  int
		bottom int
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect     Rect
		edges    Edges
		expected Rect
	}

	tests := map[string]tc{
		"uniform inset": {
			rect:     NewRect(0, 0, 100, 50),
			edges:    EdgeAll(5),
			expected: NewRect(5, 5, 90, 40),
		},
		"asymmetric inset": {
			rect:     NewRect(10, 10, 100, 50),
			edges:    EdgeTRBL(1, 2, 3, 4),
			expected: NewRect(14, 11, 94, 46),
		},
		"inset larger than rect": {
			rect:     NewRect(0, 0, 4, 4),
			edges:    EdgeAll(3),
			expected: NewRect(3, 3, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.expected {
				t.Errorf("Inset() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: NewRect(5, 5, 5, 5),
		},
		"contained": {
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: NewRect(5, 5, 5, 5),
		},
		"disjoint": {
			a:        NewRect(0, 0, 5, 5),
			b:        NewRect(10, 10, 5, 5),
			expected: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.expected {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestEdges(t *testing.T) {
	e := EdgeTRBL(1, 2, 3, 4)

	if got := e.Horizontal(); got != 6 {
		t.Errorf("Horizontal() = %d, want 6", got)
	}
	if got := e.Vertical(); got != 4 {
		t.Errorf("Vertical() = %d, want 4", got)
	}
	if got := e.Add(EdgeAll(1)); got != EdgeTRBL(2, 3, 4, 5) {
		t.Errorf("Add() = %+v, want {2 3 4 5}", got)
	}
	if got := EdgeTRBL(-1, 2, -3, 4).clamped(); got != EdgeTRBL(0, 2, 0, 4) {
		t.Errorf("clamped() = %+v, want {0 2 0 4}", got)
	}
}
