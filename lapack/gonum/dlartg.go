// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gonum

import "math"

// Dlartg generates a plane rotation so that
//
//	[ cs sn] [f]   [r]
//	[-sn cs] [g] = [0]
//
// where cs*cs + sn*sn = 1.
//
// This is a more accurate version of BLAS Drotg that uses scaling to avoid
// overflow or underflow, with the other differences that
//   - cs >= 0
//   - if g = 0, then cs = 1 and sn = 0
//   - if f = 0 and g != 0, then cs = 0 and sn = sign(1, g)
//
// Dlartg is an internal routine. It is exported for testing purposes.
func (impl Implementation) Dlartg(f, g float64) (cs, sn, r float64) {
	if g == 0 {
		return 1, 0, f
	}

	g1 := math.Abs(g)

	if f == 0 {
		return 0, math.Copysign(1, g), g1
	}

	const (
		safmn2 = 0x1p-511
		safmx2 = 0x1p511
	)

	f1 := math.Abs(f)

	if safmn2 < f1 && f1 < safmx2 && safmn2 < g1 && g1 < safmx2 {
		d := math.Sqrt(f*f + g*g)
		cs = f1 / d
		r = math.Copysign(d, f)
		sn = g / r
		return cs, sn, r
	}

	u := math.Min(safmx2, math.Max(safmn2, math.Max(f1, g1)))
	fs := f / u
	gs := g / u
	d := math.Sqrt(fs*fs + gs*gs)
	cs = math.Abs(fs) / d
	r = math.Copysign(d, f)
	sn = gs / r
	r *= u

	return cs, sn, r
}
