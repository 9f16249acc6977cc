package geom

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 5, Y: 5, W: 10, H: 10},
			want: true,
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, W: 100, H: 100},
			b:    Rect{X: 40, Y: 40, W: 10, H: 10},
			want: true,
		},
		{
			name: "disjoint horizontally",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 20, Y: 0, W: 10, H: 10},
			want: false,
		},
		{
			name: "disjoint vertically",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 0, Y: 30, W: 10, H: 10},
			want: false,
		},
		{
			name: "touching edges do not intersect",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 10, Y: 0, W: 10, H: 10},
			want: false,
		},
		{
			name: "identical",
			a:    Rect{X: 3, Y: 4, W: 5, H: 6},
			b:    Rect{X: 3, Y: 4, W: 5, H: 6},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectPad(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	got := r.Pad(5, 2)
	want := Rect{X: 5, Y: 18, W: 40, H: 44}

	if got != want {
		t.Errorf("Pad() = %+v, want %+v", got, want)
	}
}

func TestRectAround(t *testing.T) {
	got := RectAround(Pt(50, 50), 20, 10)
	want := Rect{X: 40, Y: 45, W: 20, H: 10}

	if got != want {
		t.Errorf("RectAround() = %+v, want %+v", got, want)
	}
}

func TestRectWithin(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 100, H: 100}

	tests := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"fully inside", Rect{X: 10, Y: 10, W: 20, H: 20}, true},
		{"flush with edges", Rect{X: 0, Y: 0, W: 100, H: 100}, true},
		{"sticking out right", Rect{X: 90, Y: 0, W: 20, H: 20}, false},
		{"sticking out top", Rect{X: 0, Y: -5, W: 20, H: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inner.Within(outer); got != tt.want {
				t.Errorf("Within() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	if !r.Contains(Pt(5, 5)) {
		t.Error("Contains(center) = false, want true")
	}
	if !r.Contains(Pt(10, 10)) {
		t.Error("Contains(corner) = false, want true")
	}
	if r.Contains(Pt(11, 5)) {
		t.Error("Contains(outside) = true, want false")
	}
}
