package geom

import "gonum.org/v1/gonum/spatial/r2"

// Rect is an axis-aligned rectangle on the drawing surface.
// X and Y locate the top-left corner; W and H are non-negative extents.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns the rectangle of the given size centered on p.
func RectAround(p r2.Vec, w, h float64) Rect {
	return Rect{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() r2.Vec {
	return r2.Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Pad returns a copy of r grown by px on the left and right and py on the
// top and bottom. Negative padding shrinks the rectangle.
func (r Rect) Pad(px, py float64) Rect {
	return Rect{
		X: r.X - px,
		Y: r.Y - py,
		W: r.W + 2*px,
		H: r.H + 2*py,
	}
}

// Intersects reports whether r and o overlap. Rectangles that merely touch
// along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p r2.Vec) bool {
	return p.X >= r.X && p.X <= r.Right() &&
		p.Y >= r.Y && p.Y <= r.Bottom()
}

// Within reports whether r lies entirely inside o (edges inclusive).
func (r Rect) Within(o Rect) bool {
	return r.X >= o.X && r.Y >= o.Y &&
		r.Right() <= o.Right() && r.Bottom() <= o.Bottom()
}
