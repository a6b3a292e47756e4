// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gonum

import "math"

// Dlasv2 computes the singular value decomposition of a 2×2 matrix.
//
//	[ csl snl] [f g] [csr -snr] = [ssmax     0]
//	[-snl csl] [0 h] [snr  csr] = [    0 ssmin]
//
// ssmax is the larger absolute singular value, and ssmin is the smaller
// absolute singular value. snl, csl, snr, and csr are the sines and cosines
// of the left and right rotations, respectively. ssmax and ssmin carry signs
// chosen so that the identity above holds exactly; their magnitudes are the
// singular values.
//
// Dlasv2 is an internal routine. It is exported for testing purposes.
func (impl Implementation) Dlasv2(f, g, h float64) (ssmin, ssmax, snr, csr, snl, csl float64) {
	ft := f
	fa := math.Abs(ft)
	ht := h
	ha := math.Abs(h)
	// pmax points to the largest absolute element of the matrix:
	// 1 if F largest, 2 if G largest, 3 if H largest.
	pmax := 1
	swap := ha > fa
	if swap {
		pmax = 3
		ft, ht = ht, ft
		fa, ha = ha, fa
		// Now fa >= ha.
	}
	gt := g
	ga := math.Abs(gt)
	var clt, crt, slt, srt float64
	if ga == 0 {
		// Diagonal matrix.
		ssmin = ha
		ssmax = fa
		clt = 1
		crt = 1
		slt = 0
		srt = 0
	} else {
		gasmall := true
		if ga > fa {
			pmax = 2
			if (fa / ga) < dlamchE {
				// Case of very large ga.
				gasmall = false
				ssmax = ga
				if ha > 1 {
					ssmin = fa / (ga / ha)
				} else {
					ssmin = (fa / ga) * ha
				}
				clt = 1
				slt = ht / gt
				srt = 1
				crt = ft / gt
			}
		}
		if gasmall {
			// Normal case.
			d := fa - ha
			var l float64
			if d == fa {
				// Copes with infinite f or h.
				l = 1
			} else {
				l = d / fa
			}
			m := gt / ft
			t := 2 - l
			mm := m * m
			tt := t * t
			s := math.Sqrt(tt + mm)
			var r float64
			if l == 0 {
				r = math.Abs(m)
			} else {
				r = math.Sqrt(l*l + mm)
			}
			a := 0.5 * (s + r)
			ssmin = ha / a
			ssmax = fa * a
			if mm == 0 {
				// m is very tiny.
				if l == 0 {
					t = math.Copysign(2, ft) * math.Copysign(1, gt)
				} else {
					t = gt/math.Copysign(d, ft) + m/t
				}
			} else {
				t = (m/(s+t) + m/(r+l)) * (1 + a)
			}
			l = math.Sqrt(t*t + 4)
			crt = 2 / l
			srt = t / l
			clt = (crt + srt*m) / a
			slt = (ht / ft) * srt / a
		}
	}
	if swap {
		csl = srt
		snl = crt
		csr = slt
		snr = clt
	} else {
		csl = clt
		snl = slt
		csr = crt
		snr = srt
	}
	// Correct the signs of ssmax and ssmin.
	var tsign float64
	switch pmax {
	case 1:
		tsign = math.Copysign(1, csr) * math.Copysign(1, csl) * math.Copysign(1, f)
	case 2:
		tsign = math.Copysign(1, snr) * math.Copysign(1, csl) * math.Copysign(1, g)
	case 3:
		tsign = math.Copysign(1, snr) * math.Copysign(1, snl) * math.Copysign(1, h)
	}
	ssmax = math.Copysign(ssmax, tsign)
	ssmin = math.Copysign(ssmin, tsign*math.Copysign(1, f)*math.Copysign(1, h))
	return ssmin, ssmax, snr, csr, snl, csl
}
