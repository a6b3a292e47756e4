// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gonum

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Dbdsqr computes the singular values and, optionally, the left and/or right
// singular vectors of an n×n bidiagonal matrix B using the implicit-shift QR
// algorithm. The SVD of B has the form
//
//	B = Q * S * Pᵀ
//
// where S is the diagonal matrix of singular values, Q is an orthogonal
// matrix of left singular vectors, and P is an orthogonal matrix of right
// singular vectors. If right singular vectors are requested, this routine
// returns Pᵀ*VT instead of Pᵀ, and, if left singular vectors are requested,
// it returns U*Q instead of Q, for given input matrices U and VT. When U and
// VT are the orthogonal matrices that reduce a general matrix A to bidiagonal
// form, A = U*B*VT, then
//
//	A = (U*Q) * S * (Pᵀ*VT)
//
// is the SVD of A.
//
// uplo indicates whether B is upper or lower bidiagonal. d and e contain the
// diagonal and off-diagonal elements of B and must have length n and n-1,
// respectively. On successful return, d contains the singular values of B in
// decreasing order and e is zeroed.
//
// vt is an n×ncvt matrix whose rows are rotated by the accumulated right
// rotations, and u is an nru×n matrix whose columns are rotated by the
// accumulated left rotations. Right vectors are accumulated only if ncvt > 0
// and left vectors only if nru > 0; when a count is zero the corresponding
// matrix is not referenced and may be nil.
//
// Dbdsqr performs at most 30*n iterations of the outer loop. If the active
// block has not fully deflated within this budget, Dbdsqr returns the
// positive boundary index of the unconverged block in unconverged; the
// elements of d and e then contain the diagonal and off-diagonal elements of
// a bidiagonal matrix orthogonally equivalent to B. On convergence,
// unconverged is 0.
//
// See "Computing Small Singular Values of Bidiagonal Matrices With
// Guaranteed High Relative Accuracy" by J. Demmel and W. Kahan, LAPACK
// Working Note #3 (SIAM J. Sci. Statist. Comput. vol. 11, no. 5,
// pp. 873-912, Sept 1990) for a description of the algorithm.
//
// Dbdsqr is an internal routine. It is exported for testing purposes.
func (impl Implementation) Dbdsqr(uplo blas.Uplo, n, ncvt, nru int, d, e []float64, vt []float64, ldvt int, u []float64, ldu int) (unconverged int) {
	wantu := nru > 0
	wantvt := ncvt > 0

	switch {
	case uplo != blas.Upper && uplo != blas.Lower:
		panic(badUplo)
	case n < 0:
		panic(nLT0)
	case ncvt < 0:
		panic(ncvtLT0)
	case nru < 0:
		panic(nruLT0)
	case ldvt < 1, wantvt && ldvt < ncvt:
		panic(badLdVT)
	case ldu < 1, wantu && ldu < max(1, n):
		panic(badLdU)
	}

	// Quick return if possible.
	if n == 0 {
		return 0
	}

	switch {
	case len(d) < n:
		panic(shortD)
	case len(e) < n-1:
		panic(shortE)
	case wantvt && len(vt) < (n-1)*ldvt+ncvt:
		panic(shortVT)
	case wantu && len(u) < (nru-1)*ldu+n:
		panic(shortU)
	}

	bi := blas64.Implementation()

	eps := dlamchE
	tol := 10 * eps

	// If the matrix is lower bidiagonal, apply a sequence of left rotations
	// to make it upper bidiagonal.
	if uplo == blas.Lower {
		for i := 0; i < n-1; i++ {
			cs, sn, r := impl.Dlartg(d[i], e[i])
			d[i] = r
			e[i] = sn * d[i+1]
			d[i+1] = cs * d[i+1]
			if wantu {
				bi.Drot(nru, u[i:], ldu, u[i+1:], ldu, cs, sn)
			}
		}
	}

	// istart and istop delimit the active block [istart,istop).
	istart := 0
	istop := n

	itmax := 30 * n
	for iter := 0; ; iter++ {
		if iter == itmax {
			// The QR algorithm failed to fully deflate within the
			// iteration budget.
			return istop
		}

		if istop <= 1 {
			// All singular values have been found.
			break
		}

		// Scan for a negligible off-diagonal element, which splits off a
		// smaller active block.
		for i := istop - 1; i > istart; i-- {
			if math.Abs(e[i-1]) <= tol*math.Abs(d[i]) {
				e[i-1] = 0
				istart = i
				break
			}
		}

		if istart == istop-1 {
			// A singular value has split off, reduce istop and restart
			// the search at the top of the remaining problem.
			istop--
			istart = 0
			continue
		}

		if istart == istop-2 {
			// A 2×2 block has split off, handle it in closed form.
			sigmn, sigmx, snr, csr, snl, csl := impl.Dlasv2(d[istart], e[istart], d[istart+1])
			d[istart] = sigmx
			d[istart+1] = sigmn
			e[istart] = 0
			if wantu {
				bi.Drot(nru, u[istart:], ldu, u[istart+1:], ldu, csl, snl)
			}
			if wantvt {
				bi.Drot(ncvt, vt[istart*ldvt:], 1, vt[(istart+1)*ldvt:], 1, csr, snr)
			}
			istop -= 2
			istart = 0
			continue
		}

		// Compute the shift from the singular values of the trailing 2×2
		// submatrix, taking the smaller of the two. If shifting would ruin
		// the relative accuracy of the small singular values, use a zero
		// shift instead.
		sll := math.Abs(d[istart])
		shift, _ := impl.Dlas2(d[istop-2], e[istop-2], d[istop-1])
		if sll > 0 && (shift/sll)*(shift/sll) < eps {
			shift = 0
		}

		if shift == 0 {
			// Demmel-Kahan zero-shift sweep. The chased rotation pair is
			// carried between steps in (cs,sn) and (oldcs,oldsn).
			cs := 1.0
			oldcs := 1.0
			var sn, oldsn, r float64
			for i := istart; i < istop-1; i++ {
				cs, sn, r = impl.Dlartg(d[i]*cs, e[i])
				if i > istart {
					e[i-1] = oldsn * r
				}
				oldcs, oldsn, d[i] = impl.Dlartg(oldcs*r, d[i+1]*sn)
				if wantu {
					bi.Drot(nru, u[i:], ldu, u[i+1:], ldu, oldcs, oldsn)
				}
				if wantvt {
					bi.Drot(ncvt, vt[i*ldvt:], 1, vt[(i+1)*ldvt:], 1, cs, sn)
				}
			}
			h := d[istop-1] * cs
			d[istop-1] = h * oldcs
			e[istop-2] = h * oldsn
		} else {
			// Shifted sweep. The bulge is carried between steps in (f,g).
			f := (math.Abs(d[istart]) - shift) * (math.Copysign(1, d[istart]) + shift/d[istart])
			g := e[istart]
			for i := istart; i < istop-1; i++ {
				csr, snr, r := impl.Dlartg(f, g)
				if i > istart {
					e[i-1] = r
				}
				f = csr*d[i] + snr*e[i]
				e[i] = csr*e[i] - snr*d[i]
				g = snr * d[i+1]
				d[i+1] = csr * d[i+1]

				csl, snl, r := impl.Dlartg(f, g)
				d[i] = r
				f = csl*e[i] + snl*d[i+1]
				d[i+1] = csl*d[i+1] - snl*e[i]
				if i+1 < istop-1 {
					g = snl * e[i+1]
					e[i+1] = csl * e[i+1]
				}
				if wantu {
					bi.Drot(nru, u[i:], ldu, u[i+1:], ldu, csl, snl)
				}
				if wantvt {
					bi.Drot(ncvt, vt[i*ldvt:], 1, vt[(i+1)*ldvt:], 1, csr, snr)
				}
			}
			e[istop-2] = f
		}
	}

	// All singular values converged, make them positive.
	for i := 0; i < n; i++ {
		if d[i] < 0 {
			d[i] = -d[i]
			if wantvt {
				bi.Dscal(ncvt, -1, vt[i*ldvt:], 1)
			}
		}
	}

	// Sort the singular values into decreasing order by selection,
	// permuting the singular vectors in lock-step.
	for i := 0; i < n-1; i++ {
		imax := i + bi.Idamax(n-i, d[i:], 1)
		if imax == i {
			continue
		}
		d[i], d[imax] = d[imax], d[i]
		if wantu {
			bi.Dswap(nru, u[imax:], ldu, u[i:], ldu)
		}
		if wantvt {
			bi.Dswap(ncvt, vt[imax*ldvt:], 1, vt[i*ldvt:], 1)
		}
	}

	return 0
}
