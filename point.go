package bezier

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is a location in 2D space.
type Point[F constraints.Float] struct {
	X F
	Y F
}

// Pt returns the point (x, y).
func Pt[F constraints.Float](x, y F) Point[F] {
	return Point[F]{X: x, Y: y}
}

func (pt Point[F]) Splat() (F, F) {
	return pt.X, pt.Y
}

func (pt Point[F]) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point[F]) Translate(o Vec2[F]) Point[F] {
	return Point[F]{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point[F]) Transform(aff Affine[F]) Point[F] {
	return Point[F]{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point[F]) Sub(o Point[F]) Vec2[F] {
	return Vec2[F]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points, computing pt·(1−t) + o·t.
func (pt Point[F]) Lerp(o Point[F], t F) Point[F] {
	return Point[F](Vec2[F](pt).Lerp(Vec2[F](o), t))
}

// Reflect returns the reflection of pt through center, that is 2·center − pt.
func (pt Point[F]) Reflect(center Point[F]) Point[F] {
	return Point[F]{
		X: 2*center.X - pt.X,
		Y: 2*center.Y - pt.Y,
	}
}
