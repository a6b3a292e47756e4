// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

type Dbdsqrer interface {
	Dbdsqr(uplo blas.Uplo, n, ncvt, nru int, d, e []float64, vt []float64, ldvt int, u []float64, ldu int) (unconverged int)
}

func DbdsqrTest(t *testing.T, impl Dbdsqrer) {
	rnd := rand.New(rand.NewPCG(1, 1))

	// n = 0 must return immediately with no mutation. The nil matrices also
	// verify that nothing is referenced when no vectors are requested.
	if unconverged := impl.Dbdsqr(blas.Upper, 0, 0, 0, nil, nil, nil, 1, nil, 1); unconverged != 0 {
		t.Errorf("unexpected failure for n=0: unconverged=%v", unconverged)
	}

	testDbdsqr2x2(t, impl)
	testDbdsqr1x1(t, impl)
	testDbdsqrDiagonal(t, impl)
	testDbdsqrNonconvergence(t, impl)

	for _, uplo := range []blas.Uplo{blas.Upper, blas.Lower} {
		for _, n := range []int{1, 2, 3, 4, 5, 10, 20, 50} {
			for trial := 0; trial < 10; trial++ {
				testDbdsqrRandom(t, impl, uplo, n, rnd)
			}
		}
	}
}

// testDbdsqr2x2 checks the classic 3-4-5 construction, whose singular values
// are exactly {5, 0}, without accumulating vectors.
func testDbdsqr2x2(t *testing.T, impl Dbdsqrer) {
	const tol = 1e-14
	d := []float64{3, 0}
	e := []float64{4}
	unconverged := impl.Dbdsqr(blas.Upper, 2, 0, 0, d, e, nil, 1, nil, 1)
	if unconverged != 0 {
		t.Errorf("3-4-5 case: unexpected failure: unconverged=%v", unconverged)
	}
	if math.Abs(d[0]-5) > tol || d[1] != 0 {
		t.Errorf("3-4-5 case: got singular values %v, want [5 0]", d)
	}
	if e[0] != 0 {
		t.Errorf("3-4-5 case: off-diagonal not zeroed: %v", e[0])
	}
}

// testDbdsqr1x1 checks sign normalization of a single negative value.
func testDbdsqr1x1(t *testing.T, impl Dbdsqrer) {
	d := []float64{-3}
	e := []float64{}
	vt := []float64{1, 2}
	unconverged := impl.Dbdsqr(blas.Upper, 1, 2, 0, d, e, vt, 2, nil, 1)
	if unconverged != 0 {
		t.Errorf("1×1 case: unexpected failure: unconverged=%v", unconverged)
	}
	if d[0] != 3 {
		t.Errorf("1×1 case: got d=%v, want [3]", d)
	}
	if vt[0] != -1 || vt[1] != -2 {
		t.Errorf("1×1 case: VT row not negated with d: got %v, want [-1 -2]", vt)
	}
}

// testDbdsqrDiagonal checks that an already-diagonal input is only
// sign-flipped and sorted, with the vector matrices permuted in lock-step.
func testDbdsqrDiagonal(t *testing.T, impl Dbdsqrer) {
	n := 4
	d := []float64{-2, 5, -1, 3}
	e := []float64{0, 0, 0}
	b := constructBidiagonal(blas.Upper, n, d, e)
	u := eye(n, n)
	vt := eye(n, n)

	unconverged := impl.Dbdsqr(blas.Upper, n, n, n, d, e, vt.Data, vt.Stride, u.Data, u.Stride)
	if unconverged != 0 {
		t.Errorf("diagonal case: unexpected failure: unconverged=%v", unconverged)
	}
	want := []float64{5, 3, 2, 1}
	if !floats.Equal(d, want) {
		t.Errorf("diagonal case: got d=%v, want %v", d, want)
	}
	checkDbdsqrResult(t, "diagonal case", n, b, d, e, u, vt)
}

// testDbdsqrNonconvergence checks the failure path. A NaN diagonal entry can
// never satisfy the deflation tolerance, so the iteration budget must be
// exhausted and reported rather than looping forever.
func testDbdsqrNonconvergence(t *testing.T, impl Dbdsqrer) {
	d := []float64{1, math.NaN(), 1}
	e := []float64{1, 1}
	unconverged := impl.Dbdsqr(blas.Upper, 3, 0, 0, d, e, nil, 1, nil, 1)
	if unconverged <= 0 {
		t.Errorf("non-convergent case: got unconverged=%v, want a positive block boundary", unconverged)
	}
}

// testDbdsqrRandom runs Dbdsqr on a random n×n bidiagonal matrix with
// identity-initialized accumulators and verifies the decomposition.
func testDbdsqrRandom(t *testing.T, impl Dbdsqrer, uplo blas.Uplo, n int, rnd *rand.Rand) {
	d := randomSlice(n, rnd)
	e := randomSlice(n-1, rnd)
	b := constructBidiagonal(uplo, n, d, e)
	u := eye(n, n)
	vt := eye(n, n)

	unconverged := impl.Dbdsqr(uplo, n, n, n, d, e, vt.Data, vt.Stride, u.Data, u.Stride)
	if unconverged != 0 {
		t.Errorf("uplo=%c n=%v: unexpected failure: unconverged=%v", uplo, n, unconverged)
		return
	}
	checkDbdsqrResult(t, "random case", n, b, d, e, u, vt)
}

// checkDbdsqrResult verifies the contract of a successful Dbdsqr call with
// identity-initialized accumulators: d is sorted decreasing and non-negative,
// e is zeroed, U and VT remain orthogonal, and U*diag(d)*VT reconstructs B.
func checkDbdsqrResult(t *testing.T, name string, n int, b blas64.General, d, e []float64, u, vt blas64.General) {
	t.Helper()

	for i := 0; i < n; i++ {
		if d[i] < 0 {
			t.Errorf("%s n=%v: negative singular value d[%v]=%v", name, n, i, d[i])
		}
		if i > 0 && d[i] > d[i-1] {
			t.Errorf("%s n=%v: singular values not sorted: d[%v]=%v > d[%v]=%v", name, n, i, d[i], i-1, d[i-1])
		}
	}
	for i := 0; i < n-1; i++ {
		if e[i] != 0 {
			t.Errorf("%s n=%v: off-diagonal e[%v]=%v not driven to zero", name, n, i, e[i])
		}
	}

	orthTol := 1e-13 * float64(n)
	if res := residualOrthogonal(u); res > orthTol {
		t.Errorf("%s n=%v: U is not orthogonal: residual=%v", name, n, res)
	}
	if res := residualOrthogonal(vt); res > orthTol {
		t.Errorf("%s n=%v: VT is not orthogonal: residual=%v", name, n, res)
	}

	// U * diag(d) * VT must reconstruct B. The sweep always chases
	// top-to-bottom (there is no direction heuristic), so the smallest
	// singular values are accurate only relative to ‖B‖, not to
	// themselves; the tolerance is therefore scaled by ‖B‖.
	us := cloneGeneral(u)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			us.Data[i*us.Stride+j] *= d[j]
		}
	}
	prod := blas64.General{Rows: n, Cols: n, Stride: max(1, n), Data: make([]float64, n*n)}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, us, vt, 0, prod)
	bnorm := floats.Norm(b.Data, math.Inf(1))
	tol := 1e-12 * float64(n) * math.Max(1, bnorm)
	if diff := maxAbsDiffGeneral(prod, b); diff > tol {
		t.Errorf("%s n=%v: |U*diag(d)*VT - B|=%v exceeds %v", name, n, diff, tol)
	}
}
