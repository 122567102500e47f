// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug

package node

import "github.com/cpmech/gosl/chk"

// Debug tells whether index and ordering assertions are compiled in
const Debug = true

func checkIndex(fcn string, i, n int) {
	if i < 0 || i >= n {
		chk.Panic("%s: index %d is out of range [0, %d)", fcn, i, n)
	}
}

func checkIndex2(fcn string, mat [][]float64, i, j int) {
	if i < 0 || i >= len(mat) {
		chk.Panic("%s: variable index %d is out of range [0, %d)", fcn, i, len(mat))
	}
	if j < 0 || j >= len(mat[i]) {
		chk.Panic("%s: dimension index %d is out of range [0, %d)", fcn, j, len(mat[i]))
	}
}

func checkLen(fcn string, m, n int) {
	if m != n {
		chk.Panic("%s: slice has length %d but %d is required", fcn, m, n)
	}
}
