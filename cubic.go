package bezier

import (
	"golang.org/x/exp/constraints"
)

// CubicBez is a single cubic Bézier segment.
type CubicBez[F constraints.Float] struct {
	P0 Point[F]
	P1 Point[F]
	P2 Point[F]
	P3 Point[F]
}

// Coefficients returns the power-basis coefficients of the cubic, such that
// the curve is c0 + c1·t + c2·t² + c3·t³.
func (c CubicBez[F]) Coefficients() PowerBasis[F] {
	c1 := c.P1.Sub(c.P0).Mul(3)
	c2 := c.P2.Sub(c.P1).Mul(3).Sub(c1)
	c0 := Vec2[F](c.P0)
	c3 := Vec2[F](c.P3).Sub(c0).Sub(c1).Sub(c2)
	return PowerBasis[F]{c0, c1, c2, c3}
}

// Eval evaluates the curve at t using its power-basis form.
func (c CubicBez[F]) Eval(t F) Point[F] {
	return c.Coefficients().Eval(t)
}

// EvalBernstein evaluates the curve at t by weighting the control points with
// the cubic Bernstein polynomials. It is slower than [CubicBez.Eval] but
// numerically closer to the control polygon near the ends.
func (c CubicBez[F]) EvalBernstein(t F) Point[F] {
	mt := 1 - t
	a := Vec2[F](c.P0).Mul(mt * mt * mt)
	b := Vec2[F](c.P1).Mul(3 * t * mt * mt)
	d := Vec2[F](c.P2).Mul(3 * t * t * mt)
	e := Vec2[F](c.P3).Mul(t * t * t)
	return Point[F](a.Add(b).Add(d).Add(e))
}

// SplitAt splits the cubic at t using de Casteljau's algorithm. The two
// halves trace exactly the same path as c.
func (c CubicBez[F]) SplitAt(t F) (CubicBez[F], CubicBez[F]) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	p0123 := p012.Lerp(p123, t)
	return CubicBez[F]{c.P0, p01, p012, p0123},
		CubicBez[F]{p0123, p123, p23, c.P3}
}

func (c CubicBez[F]) End() Point[F] {
	return c.P3
}

func (c CubicBez[F]) Transform(aff Affine[F]) CubicBez[F] {
	return CubicBez[F]{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// PowerBasis holds the coefficients of a cubic polynomial curve,
// c[0] + c[1]·t + c[2]·t² + c[3]·t³.
type PowerBasis[F constraints.Float] [4]Vec2[F]

// Eval evaluates the polynomial at t using Horner's scheme.
func (pb PowerBasis[F]) Eval(t F) Point[F] {
	v := pb[3].Mul(t).Add(pb[2]).Mul(t).Add(pb[1]).Mul(t).Add(pb[0])
	return Point[F](v)
}

// Sample writes len(dst) evaluations of the polynomial to dst, at
// t = k/len(dst) for k in [0, len(dst)). The end of the curve, t = 1, is never
// sampled.
func (pb PowerBasis[F]) Sample(dst []Point[F]) {
	n := F(len(dst))
	for k := range dst {
		dst[k] = pb.Eval(F(k) / n)
	}
}
