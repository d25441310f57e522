package bezier

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Vec2 is a displacement in 2D space, such as the difference between two
// points or a coefficient of a polynomial curve.
type Vec2[F constraints.Float] struct {
	X F
	Y F
}

// Vec returns the vector ⟨x, y⟩.
func Vec[F constraints.Float](x, y F) Vec2[F] {
	return Vec2[F]{
		X: x,
		Y: y,
	}
}

func (v Vec2[F]) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Hypot returns the magnitude of the vector.
func (v Vec2[F]) Hypot() F {
	return F(math.Hypot(float64(v.X), float64(v.Y)))
}

// Lerp linearly interpolates between two vectors.
func (v Vec2[F]) Lerp(o Vec2[F], t F) Vec2[F] {
	// v·(1−t) + o·t, which is exact at both ends
	return v.Mul(1 - t).Add(o.Mul(t))
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2[F]) Add(o Vec2[F]) Vec2[F] {
	return Vec2[F]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2[F]) Sub(o Vec2[F]) Vec2[F] {
	return Vec2[F]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2[F]) Mul(f F) Vec2[F] {
	return Vec2[F]{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2[F]) Negate() Vec2[F] {
	return Vec2[F]{
		X: -v.X,
		Y: -v.Y,
	}
}
