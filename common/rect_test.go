package common

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 25, Y: 25, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 12, Y: 12, Width: 2, Height: 2}, true},
		{"touching_right_edge", Rect{X: 30, Y: 10, Width: 5, Height: 5}, false},
		{"touching_bottom_edge", Rect{X: 10, Y: 30, Width: 5, Height: 5}, false},
		{"apart", Rect{X: 100, Y: 100, Width: 5, Height: 5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Intersects(tc.other); got != tc.want {
				t.Fatalf("Intersects = %v, want %v", got, tc.want)
			}
			if got := tc.other.Intersects(base); got != tc.want {
				t.Fatalf("Intersects is not symmetric")
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 50, Y: 510, Width: 40, Height: 50}
	if r.Right() != 90 || r.Bottom() != 560 {
		t.Fatalf("unexpected edges right=%v bottom=%v", r.Right(), r.Bottom())
	}
	if r.CenterX() != 70 || r.CenterY() != 535 {
		t.Fatalf("unexpected center %v,%v", r.CenterX(), r.CenterY())
	}
	if !r.Valid() || (Rect{Width: 0, Height: 1}).Valid() {
		t.Fatalf("Valid mismatch")
	}
}
