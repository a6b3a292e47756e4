// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gonum

import (
	"testing"

	"github.com/codingonion/tlapack/lapack/testlapack"
)

var impl = Implementation{}

func TestDbdsqr(t *testing.T) {
	t.Parallel()
	testlapack.DbdsqrTest(t, impl)
}

func TestDlartg(t *testing.T) {
	t.Parallel()
	testlapack.DlartgTest(t, impl)
}

func TestDlas2(t *testing.T) {
	t.Parallel()
	testlapack.Dlas2Test(t, impl)
}

func TestDlasv2(t *testing.T) {
	t.Parallel()
	testlapack.Dlasv2Test(t, impl)
}
