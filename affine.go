package bezier

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The convention is that (A * B) * v == A * (B * v).
type Affine[F constraints.Float] struct {
	N0, N1, N2, N3, N4, N5 F
}

// Identity returns the identity transform.
func Identity[F constraints.Float]() Affine[F] {
	return Affine[F]{1, 0, 0, 1, 0, 0}
}

// FlipY returns a transform that is flipped on the y-axis. Useful for
// converting between y-up and y-down spaces.
func FlipY[F constraints.Float]() Affine[F] {
	return Affine[F]{1, 0, 0, -1, 0, 0}
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale[F constraints.Float](x, y F) Affine[F] {
	return Affine[F]{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate[F constraints.Float](v Vec2[F]) Affine[F] {
	return Affine[F]{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. Thus, in a Y-down coordinate
// system (as is common for graphics), it is a clockwise rotation, and
// in Y-up (traditional for math), it is anti-clockwise.
//
// The angle th is expressed in radians.
func Rotate[F constraints.Float](th F) Affine[F] {
	sin, cos := math.Sincos(float64(th))
	return Affine[F]{F(cos), F(sin), F(-sin), F(cos), 0, 0}
}

func (aff Affine[F]) Mul(o Affine[F]) Affine[F] {
	return Affine[F]{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotate creates aff followed by a rotation of th.
//
// Equivalent to "Rotate(th) * aff"
func (aff Affine[F]) ThenRotate(th F) Affine[F] {
	return Rotate(th).Mul(aff)
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine[F]) ThenScale(x, y F) Affine[F] {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine[F]) ThenTranslate(v Vec2[F]) Affine[F] {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}
