package bezier

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0.0, 0.0).Translate(Vec(-10.0, 0.0)), Pt(-10.0, 0.0))
	diff(t, Pt(3.0, 4.0).Sub(Pt(1.0, 1.0)), Vec(2.0, 3.0))
	diff(t, Pt(1.0, 1.0).Reflect(Pt(2.0, 3.0)), Pt(3.0, 5.0))
	diff(t, Pt(0.0, 0.0).Lerp(Pt(4.0, 8.0), 0.25), Pt(1.0, 2.0))
}

func TestVecArithmetic(t *testing.T) {
	v := Vec(3.0, 4.0)
	if h := v.Hypot(); h != 5 {
		t.Errorf("got magnitude %v, want 5", h)
	}
	diff(t, Vec(4.0, 6.0), v.Add(Vec(1.0, 2.0)))
	diff(t, Vec(2.0, 2.0), v.Sub(Vec(1.0, 2.0)))
	diff(t, Vec(6.0, 8.0), v.Mul(2))
	diff(t, Vec(-3.0, -4.0), v.Negate())
	// Lerp must hit both ends exactly
	a, b := Vec(0.1, 0.7), Vec(0.3, -1.9)
	diff(t, a, a.Lerp(b, 0))
	diff(t, b, a.Lerp(b, 1))
}

func TestPointSplat(t *testing.T) {
	x, y := Pt[float32](1.5, -2).Splat()
	if x != 1.5 || y != -2 {
		t.Errorf("got (%v, %v), want (1.5, -2)", x, y)
	}
}

func TestPointString(t *testing.T) {
	if s := Pt(1.5, -2.0).String(); s != "(1.5, -2)" {
		t.Errorf("got %q", s)
	}
	if s := Vec(1.5, -2.0).String(); s != "⟨1.5, -2⟩" {
		t.Errorf("got %q", s)
	}
}
