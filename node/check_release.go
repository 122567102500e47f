// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !debug

package node

// Debug tells whether index and ordering assertions are compiled in
const Debug = false

func checkIndex(fcn string, i, n int) {}
func checkIndex2(fcn string, mat [][]float64, i, j int) {}
func checkLen(fcn string, m, n int) {}
