// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gonum

// Panic strings used during parameter checks.
const (
	// Panic strings for bad enumeration values.
	badUplo = "lapack: illegal value of uplo"

	// Panic strings for bad numerical and string values.
	nLT0    = "lapack: n < 0"
	ncvtLT0 = "lapack: ncvt < 0"
	nruLT0  = "lapack: nru < 0"

	// Panic strings for bad leading dimensions of matrices.
	badLdU  = "lapack: bad leading dimension of U"
	badLdVT = "lapack: bad leading dimension of VT"

	// Panic strings for insufficient slice lengths.
	shortD  = "lapack: insufficient length of d"
	shortE  = "lapack: insufficient length of e"
	shortU  = "lapack: insufficient length of U"
	shortVT = "lapack: insufficient length of VT"
)
