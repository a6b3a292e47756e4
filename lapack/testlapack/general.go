// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testlapack implements a set of testing routines for LAPACK
// functions.
package testlapack

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

const (
	// dlamchE is the machine epsilon. For IEEE this is 2^{-53}.
	dlamchE = 0x1p-53
	// dlamchS is the smallest normal number. For IEEE this is 2^{-1022}.
	dlamchS = 0x1p-1022
)

// randomSlice returns a slice of length n filled with random values from rnd.
func randomSlice(n int, rnd *rand.Rand) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rnd.NormFloat64()
	}
	return s
}

// eye returns an identity matrix of the given order and stride.
func eye(n, stride int) blas64.General {
	ans := blas64.General{
		Rows:   n,
		Cols:   n,
		Stride: stride,
		Data:   make([]float64, max(0, (n-1)*stride+n)),
	}
	for i := 0; i < n; i++ {
		ans.Data[i*stride+i] = 1
	}
	return ans
}

// cloneGeneral returns a deep copy of a.
func cloneGeneral(a blas64.General) blas64.General {
	c := a
	c.Data = make([]float64, len(a.Data))
	copy(c.Data, a.Data)
	return c
}

// constructBidiagonal constructs a bidiagonal matrix with the given diagonal
// and off-diagonal elements.
func constructBidiagonal(uplo blas.Uplo, n int, d, e []float64) blas64.General {
	bMat := blas64.General{
		Rows:   n,
		Cols:   n,
		Stride: max(1, n),
		Data:   make([]float64, n*n),
	}
	for i := 0; i < n-1; i++ {
		bMat.Data[i*bMat.Stride+i] = d[i]
		if uplo == blas.Upper {
			bMat.Data[i*bMat.Stride+i+1] = e[i]
		} else {
			bMat.Data[(i+1)*bMat.Stride+i] = e[i]
		}
	}
	if n > 0 {
		bMat.Data[(n-1)*bMat.Stride+n-1] = d[n-1]
	}
	return bMat
}

// maxAbsDiffGeneral returns the largest absolute difference between
// corresponding elements of a and b. a and b must have the same dimensions.
func maxAbsDiffGeneral(a, b blas64.General) float64 {
	var diff float64
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			diff = math.Max(diff, math.Abs(a.Data[i*a.Stride+j]-b.Data[i*b.Stride+j]))
		}
	}
	return diff
}

// residualOrthogonal returns the residual ‖Qᵀ*Q - I‖₁, a measure of how far
// the columns of q are from orthonormality.
func residualOrthogonal(q blas64.General) float64 {
	if q.Rows == 0 || q.Cols == 0 {
		return 0
	}
	qm := mat.NewDense(q.Rows, q.Cols, nil)
	for i := 0; i < q.Rows; i++ {
		for j := 0; j < q.Cols; j++ {
			qm.Set(i, j, q.Data[i*q.Stride+j])
		}
	}
	var res mat.Dense
	res.Mul(qm.T(), qm)
	for i := 0; i < q.Cols; i++ {
		res.Set(i, i, res.At(i, i)-1)
	}
	return mat.Norm(&res, 1)
}
