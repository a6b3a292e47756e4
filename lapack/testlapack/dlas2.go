// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"math"
	"math/rand/v2"
	"testing"
)

type Dlas2er interface {
	Dlas2(f, g, h float64) (ssmin, ssmax float64)
}

func Dlas2Test(t *testing.T, impl Dlas2er) {
	const tol = 1e-13
	rnd := rand.New(rand.NewPCG(1, 1))

	// The classic 3-4-5 construction has exact singular values 5 and 0.
	ssmin, ssmax := impl.Dlas2(3, 4, 0)
	if ssmin != 0 {
		t.Errorf("Dlas2(3,4,0): ssmin=%g, want 0", ssmin)
	}
	if math.Abs(ssmax-5) > tol {
		t.Errorf("Dlas2(3,4,0): ssmax=%g, want 5", ssmax)
	}

	// A diagonal matrix has its diagonal magnitudes as singular values.
	ssmin, ssmax = impl.Dlas2(-2, 0, 7)
	if math.Abs(ssmin-2) > tol || math.Abs(ssmax-7) > tol {
		t.Errorf("Dlas2(-2,0,7): got (%g,%g), want (2,7)", ssmin, ssmax)
	}

	for i := 0; i < 1000; i++ {
		f := 10 * rnd.NormFloat64()
		g := 10 * rnd.NormFloat64()
		h := 10 * rnd.NormFloat64()

		ssmin, ssmax := impl.Dlas2(f, g, h)

		if ssmin < 0 || ssmax < ssmin {
			t.Errorf("f=%g g=%g h=%g: invalid ordering ssmin=%g ssmax=%g", f, g, h, ssmin, ssmax)
		}
		// The singular values must reproduce the Frobenius norm and the
		// determinant magnitude of the 2×2 matrix.
		frob := f*f + g*g + h*h
		if d := math.Abs(ssmin*ssmin + ssmax*ssmax - frob); d > tol*frob {
			t.Errorf("f=%g g=%g h=%g: ssmin²+ssmax²=%g, want %g", f, g, h, ssmin*ssmin+ssmax*ssmax, frob)
		}
		det := math.Abs(f * h)
		if d := math.Abs(ssmin*ssmax - det); d > tol*math.Max(1, det) {
			t.Errorf("f=%g g=%g h=%g: ssmin*ssmax=%g, want %g", f, g, h, ssmin*ssmax, det)
		}
	}
}
