// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"math"
	"math/rand/v2"
	"testing"
)

type Dlasv2er interface {
	Dlasv2(f, g, h float64) (ssmin, ssmax, snr, csr, snl, csl float64)
}

func Dlasv2Test(t *testing.T, impl Dlasv2er) {
	const tol = 1e-13
	rnd := rand.New(rand.NewPCG(1, 1))

	// The classic 3-4-5 construction.
	ssmin, ssmax, snr, csr, snl, csl := impl.Dlasv2(3, 4, 0)
	if ssmin != 0 || math.Abs(math.Abs(ssmax)-5) > tol {
		t.Errorf("Dlasv2(3,4,0): got singular values (%g,%g), want magnitudes (0,5)", ssmin, ssmax)
	}
	checkDlasv2(t, 3, 4, 0, ssmin, ssmax, snr, csr, snl, csl, tol)

	for i := 0; i < 1000; i++ {
		f := 10 * rnd.NormFloat64()
		g := 10 * rnd.NormFloat64()
		h := 10 * rnd.NormFloat64()

		ssmin, ssmax, snr, csr, snl, csl := impl.Dlasv2(f, g, h)

		if math.Abs(ssmin) > math.Abs(ssmax) {
			t.Errorf("f=%g g=%g h=%g: |ssmin|=%g > |ssmax|=%g", f, g, h, math.Abs(ssmin), math.Abs(ssmax))
		}
		if d := math.Abs(csl*csl + snl*snl - 1); d > tol {
			t.Errorf("f=%g g=%g h=%g: left rotation not orthogonal: csl²+snl²=1 violated by %g", f, g, h, d)
		}
		if d := math.Abs(csr*csr + snr*snr - 1); d > tol {
			t.Errorf("f=%g g=%g h=%g: right rotation not orthogonal: csr²+snr²=1 violated by %g", f, g, h, d)
		}
		checkDlasv2(t, f, g, h, ssmin, ssmax, snr, csr, snl, csl, tol)
	}
}

// checkDlasv2 verifies the defining identity of Dlasv2,
//
//	[ csl snl] [f g] [csr -snr]   [ssmax     0]
//	[-snl csl] [0 h] [snr  csr] = [    0 ssmin]
func checkDlasv2(t *testing.T, f, g, h, ssmin, ssmax, snr, csr, snl, csl, tol float64) {
	t.Helper()

	// A = L * B.
	a00 := csl * f
	a01 := csl*g + snl*h
	a10 := -snl * f
	a11 := -snl*g + csl*h
	// D = A * R.
	d00 := a00*csr + a01*snr
	d01 := -a00*snr + a01*csr
	d10 := a10*csr + a11*snr
	d11 := -a10*snr + a11*csr

	scale := math.Max(1, math.Abs(ssmax))
	if math.Abs(d00-ssmax) > tol*scale {
		t.Errorf("f=%g g=%g h=%g: (L*B*R)[0,0]=%g, want ssmax=%g", f, g, h, d00, ssmax)
	}
	if math.Abs(d11-ssmin) > tol*scale {
		t.Errorf("f=%g g=%g h=%g: (L*B*R)[1,1]=%g, want ssmin=%g", f, g, h, d11, ssmin)
	}
	if math.Abs(d01) > tol*scale || math.Abs(d10) > tol*scale {
		t.Errorf("f=%g g=%g h=%g: off-diagonal not annihilated: %g, %g", f, g, h, d01, d10)
	}
}
