// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gonum is a pure-go implementation of LAPACK routines for the
// singular value decomposition of real bidiagonal matrices. It is built on
// top of calls to the return of blas64.Implementation() for the elementary
// vector operations, so while this code is pure Go, the underlying BLAS
// implementation may not be.
package gonum

// Implementation is the native Go implementation of the LAPACK routines in
// this package. The routines are built on the blas64 implementation
// registered with gonum.org/v1/gonum/blas/blas64.
type Implementation struct{}

// Machine parameters for IEEE double precision, following the values
// returned by LAPACK's dlamch.
const (
	// dlamchE is the machine epsilon. For IEEE this is 2^{-53}.
	dlamchE = 0x1p-53

	// dlamchB is the radix of the machine (the base of the number system).
	dlamchB = 2

	// dlamchP is base * eps.
	dlamchP = dlamchB * dlamchE

	// dlamchS is the "safe minimum", that is, the lowest number such that
	// 1/dlamchS does not overflow. For IEEE this is the smallest normal
	// number, 2^{-1022}.
	dlamchS = 0x1p-1022
)
