package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func pointComparer(epsilon float64) cmp.Option {
	return cmp.Comparer(func(p1, p2 Point[float64]) bool {
		return p1.Sub(p2).Hypot() <= epsilon
	})
}
