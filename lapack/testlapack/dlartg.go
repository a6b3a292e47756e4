// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"math"
	"math/rand/v2"
	"testing"
)

type Dlartger interface {
	Dlartg(f, g float64) (cs, sn, r float64)
}

func DlartgTest(t *testing.T, impl Dlartger) {
	const tol = 1e-14
	rnd := rand.New(rand.NewPCG(1, 1))

	for i := 0; i < 1000; i++ {
		// Random magnitudes spanning a wide range of exponents, with
		// random signs.
		f := math.Ldexp(rnd.Float64()+0.5, rnd.IntN(600)-300)
		if rnd.IntN(2) == 0 {
			f = -f
		}
		g := math.Ldexp(rnd.Float64()+0.5, rnd.IntN(600)-300)
		if rnd.IntN(2) == 0 {
			g = -g
		}

		cs, sn, r := impl.Dlartg(f, g)

		if d := math.Abs(cs*cs + sn*sn - 1); d > tol {
			t.Errorf("f=%g g=%g: cs²+sn²=1 violated by %g", f, g, d)
		}
		if cs < 0 {
			t.Errorf("f=%g g=%g: cs=%g is negative", f, g, cs)
		}
		scale := math.Max(math.Abs(f), math.Abs(g))
		if d := math.Abs(cs*f + sn*g - r); d > tol*scale {
			t.Errorf("f=%g g=%g: cs*f+sn*g=%g, want r=%g", f, g, cs*f+sn*g, r)
		}
		if d := math.Abs(-sn*f + cs*g); d > tol*scale {
			t.Errorf("f=%g g=%g: -sn*f+cs*g=%g not annihilated", f, g, d)
		}
	}

	// Special cases.
	for _, f := range []float64{-2, -1, 0, 1, 2} {
		cs, sn, r := impl.Dlartg(f, 0)
		if cs != 1 || sn != 0 || r != f {
			t.Errorf("f=%g g=0: got cs=%g sn=%g r=%g, want 1, 0, %g", f, cs, sn, r, f)
		}
	}
	for _, g := range []float64{-2, -1, 1, 2} {
		cs, sn, r := impl.Dlartg(0, g)
		if cs != 0 || sn != math.Copysign(1, g) || r != math.Abs(g) {
			t.Errorf("f=0 g=%g: got cs=%g sn=%g r=%g, want 0, %g, %g",
				g, cs, sn, r, math.Copysign(1, g), math.Abs(g))
		}
	}
}
