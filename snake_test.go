package mydiff

import "testing"

func TestBox(t *testing.T) {
	tests := []struct {
		name                        string
		bx                          box
		width, height, size, delta int
	}{
		{"empty", box{0, 0, 0, 0}, 0, 0, 0, 0},
		{"square", box{0, 0, 3, 3}, 3, 3, 6, 0},
		{"wide", box{1, 2, 6, 4}, 5, 2, 7, 3},
		{"tall", box{2, 0, 3, 5}, 1, 5, 6, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bx.width(); got != tt.width {
				t.Errorf("width() = %d, want %d", got, tt.width)
			}
			if got := tt.bx.height(); got != tt.height {
				t.Errorf("height() = %d, want %d", got, tt.height)
			}
			if got := tt.bx.size(); got != tt.size {
				t.Errorf("size() = %d, want %d", got, tt.size)
			}
			if got := tt.bx.delta(); got != tt.delta {
				t.Errorf("delta() = %d, want %d", got, tt.delta)
			}
		})
	}
}

func TestMidpoint_EmptyBox(t *testing.T) {
	ctx := newDiffContext(nil, nil)

	if s, ok := ctx.midpoint(box{0, 0, 0, 0}); ok {
		t.Errorf("midpoint of empty box = %v, want none", s)
	}
}

func TestMidpoint_Equal(t *testing.T) {
	a := []byte("abc")
	ctx := newDiffContext(a, a)

	s, ok := ctx.midpoint(box{0, 0, 3, 3})
	if !ok {
		t.Fatal("midpoint not found for equal sequences")
	}
	if s.start != (point{0, 0}) || s.end != (point{3, 3}) {
		t.Errorf("snake = %v -> %v, want (0,0) -> (3,3)", s.start, s.end)
	}
	// A pure diagonal crossing carries no edit step.
	if dx, dy := s.end.x-s.start.x, s.end.y-s.start.y; dx != dy {
		t.Errorf("equal sequences produced a non-diagonal snake: dx=%d dy=%d", dx, dy)
	}
}

func TestMidpoint_SingleMismatch(t *testing.T) {
	ctx := newDiffContext([]byte("a"), []byte("b"))

	s, ok := ctx.midpoint(box{0, 0, 1, 1})
	if !ok {
		t.Fatal("midpoint not found")
	}
	want := snake{start: point{0, 1}, end: point{1, 1}, forward: false}
	if s != want {
		t.Errorf("midpoint() = %+v, want %+v", s, want)
	}
}

func TestMidpoint_InsideBounds(t *testing.T) {
	a := []byte("abcabba")
	b := []byte("cbabac")
	ctx := newDiffContext(a, b)

	bx := box{0, 0, len(a), len(b)}
	s, ok := ctx.midpoint(bx)
	if !ok {
		t.Fatal("midpoint not found")
	}

	for _, p := range []point{s.start, s.end} {
		if p.x < bx.left || p.x > bx.right || p.y < bx.top || p.y > bx.bottom {
			t.Errorf("snake point %v outside box %+v", p, bx)
		}
	}
	if s.end.x < s.start.x || s.end.y < s.start.y {
		t.Errorf("snake runs backward: %v -> %v", s.start, s.end)
	}
	// The snake is one edit step plus a diagonal run.
	dx, dy := s.end.x-s.start.x, s.end.y-s.start.y
	if d := dx - dy; d < -1 || d > 1 {
		t.Errorf("snake spans %d non-diagonal steps, want at most 1", d)
	}
}
