package bezier

import (
	"golang.org/x/exp/constraints"
)

type Rect[F constraints.Float] struct {
	X0, Y0 F
	X1, Y1 F
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints[F constraints.Float](p0, p1 Point[F]) Rect[F] {
	return Rect[F]{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// BoundingRect returns the smallest rectangle enclosing all points. It
// returns false if pts is empty.
func BoundingRect[F constraints.Float](pts []Point[F]) (Rect[F], bool) {
	if len(pts) == 0 {
		return Rect[F]{}, false
	}
	r := Rect[F]{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r, true
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect[F]) Abs() Rect[F] {
	return Rect[F]{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect[F]) Width() F {
	return r.X1 - r.X0
}

// Height returns the rectangle's heigth, defined as Y1 − Y0. It may be negative.
func (r Rect[F]) Height() F {
	return r.Y1 - r.Y0
}

func (r Rect[F]) Center() Point[F] {
	return Point[F]{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect[F]) Union(o Rect[F]) Rect[F] {
	return Rect[F]{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect[F]) UnionPoint(pt Point[F]) Rect[F] {
	return Rect[F]{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}
