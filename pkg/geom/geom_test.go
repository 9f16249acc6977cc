package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func vecsAlmostEqual(a, b r2.Vec) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestPolarToCartesian(t *testing.T) {
	center := Pt(100, 100)

	tests := []struct {
		name   string
		radius float64
		angle  float64
		want   r2.Vec
	}{
		{
			name:   "zero degrees points up",
			radius: 50,
			angle:  0,
			want:   Pt(100, 50),
		},
		{
			name:   "90 degrees counter-clockwise points left",
			radius: 50,
			angle:  90,
			want:   Pt(50, 100),
		},
		{
			name:   "180 degrees points down",
			radius: 50,
			angle:  180,
			want:   Pt(100, 150),
		},
		{
			name:   "270 degrees points right",
			radius: 50,
			angle:  270,
			want:   Pt(150, 100),
		},
		{
			name:   "negative angle turns clockwise",
			radius: 50,
			angle:  -90,
			want:   Pt(150, 100),
		},
		{
			name:   "zero radius stays at center",
			radius: 0,
			angle:  45,
			want:   center,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolarToCartesian(center, tt.radius, tt.angle)
			if !vecsAlmostEqual(got, tt.want) {
				t.Errorf("PolarToCartesian() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolarToCartesianPeriodicity(t *testing.T) {
	center := Pt(0, 0)
	for _, angle := range []float64{0, 33.5, 90, 181, 275.25} {
		a := PolarToCartesian(center, 120, angle)
		b := PolarToCartesian(center, 120, angle+360)
		if !vecsAlmostEqual(a, b) {
			t.Errorf("angle %v: %v != %v (period 360 violated)", angle, a, b)
		}
	}
}

func TestPolarToCartesianDegenerate(t *testing.T) {
	center := Pt(10, 20)

	tests := []struct {
		name   string
		radius float64
		angle  float64
	}{
		{"NaN radius", math.NaN(), 0},
		{"infinite radius", math.Inf(1), 0},
		{"NaN angle", 50, math.NaN()},
		{"infinite angle", 50, math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolarToCartesian(center, tt.radius, tt.angle)
			if got != center {
				t.Errorf("PolarToCartesian() = %v, want sentinel %v", got, center)
			}
		})
	}
}

func TestArcEndpoints(t *testing.T) {
	center := Pt(200, 200)
	const radius, start, end = 80.0, -30.0, 30.0

	pts := ArcPoints(center, radius, start, end)
	if len(pts) < 2 {
		t.Fatalf("ArcPoints returned %d points, want at least 2", len(pts))
	}

	wantFirst := PolarToCartesian(center, radius, start)
	if !vecsAlmostEqual(pts[0], wantFirst) {
		t.Errorf("first point = %v, want %v", pts[0], wantFirst)
	}

	wantLast := PolarToCartesian(center, radius, end)
	if !vecsAlmostEqual(pts[len(pts)-1], wantLast) {
		t.Errorf("last point = %v, want %v", pts[len(pts)-1], wantLast)
	}
}

func TestArcDeterminism(t *testing.T) {
	center := Pt(0, 0)
	a := ArcPoints(center, 55, 10, 170)
	b := ArcPoints(center, 55, 10, 170)

	if len(a) != len(b) {
		t.Fatalf("point counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestArcRestartable(t *testing.T) {
	seq := Arc(Pt(0, 0), 40, 0, 90)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}

	first, second := count(), count()
	if first != second {
		t.Errorf("second iteration yielded %d points, first yielded %d", second, first)
	}
	if first == 0 {
		t.Error("arc sequence is empty")
	}
}

func TestArcSegments(t *testing.T) {
	tests := []struct {
		name string
		span float64
		want int
	}{
		{"tiny span uses minimum", 5, 30},
		{"30 degree span uses minimum", 30, 30},
		{"one segment per degree above minimum", 90, 90},
		{"fractional span rounds up", 90.5, 91},
		{"negative span uses magnitude", -120, 120},
		{"full circle", 360, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArcSegments(tt.span); got != tt.want {
				t.Errorf("ArcSegments(%v) = %d, want %d", tt.span, got, tt.want)
			}
		})
	}
}

func TestArcDegenerate(t *testing.T) {
	pts := ArcPoints(Pt(0, 0), math.NaN(), 0, 90)
	if len(pts) != 0 {
		t.Errorf("arc with NaN radius yielded %d points, want 0", len(pts))
	}
}

func TestIsoProject(t *testing.T) {
	cos30 := math.Cos(30 * math.Pi / 180)
	sin30 := 0.5

	tests := []struct {
		name string
		p    r3.Vec
		want r2.Vec
	}{
		{
			name: "origin",
			p:    r3.Vec{},
			want: r2.Vec{},
		},
		{
			name: "unit x",
			p:    r3.Vec{X: 1},
			want: Pt(cos30, sin30),
		},
		{
			name: "unit y",
			p:    r3.Vec{Y: 1},
			want: Pt(-cos30, sin30),
		},
		{
			name: "unit z maps straight up",
			p:    r3.Vec{Z: 1},
			want: Pt(0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsoProject(tt.p)
			if !vecsAlmostEqual(got, tt.want) {
				t.Errorf("IsoProject(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestIsoProjectStable(t *testing.T) {
	p := r3.Vec{X: 12.5, Y: -3, Z: 40}
	first := IsoProject(p)
	for i := 0; i < 10; i++ {
		if got := IsoProject(p); got != first {
			t.Fatalf("call %d returned %v, first call returned %v", i, got, first)
		}
	}
}

func TestIsoProjectDegenerate(t *testing.T) {
	got := IsoProject(r3.Vec{X: math.NaN(), Y: 1, Z: 1})
	if got != (r2.Vec{}) {
		t.Errorf("IsoProject with NaN = %v, want zero vector", got)
	}
}

func TestIsoProjectAt(t *testing.T) {
	origin := Pt(500, 300)
	p := r3.Vec{X: 10, Y: 10, Z: 0}

	got := IsoProjectAt(origin, p, 2)
	want := Pt(500, 300+2*10*2*0.5) // x components cancel, y doubles the sin terms

	if !vecsAlmostEqual(got, want) {
		t.Errorf("IsoProjectAt() = %v, want %v", got, want)
	}
}
