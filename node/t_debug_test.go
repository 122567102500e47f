// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug

package node

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

func Test_debug01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("debug01. index assertions")

	require.True(tst, Debug)
	o := NewWithSolution(2, []float64{1, 2, 3, 4})
	require.PanicsWithValue(tst, "GetSolution: index 9 is out of range [0, 4)", func() { o.GetSolution(9) })
	require.PanicsWithValue(tst, "SetSolutionVar: index -1 is out of range [0, 4)", func() { o.SetSolutionVar(-1, 0) })
	require.PanicsWithValue(tst, "SetTimeNVar: index 4 is out of range [0, 4)", func() { o.SetTimeNVar(4, 0) })
	require.PanicsWithValue(tst, "SetSolution: slice has length 3 but 4 is required", func() { o.SetSolution([]float64{1, 2, 3}) })
	require.PanicsWithValue(tst, "SetGradient: dimension index 2 is out of range [0, 2)", func() { o.SetGradient(0, 2, 1) })
	require.PanicsWithValue(tst, "SetGradient: variable index 5 is out of range [0, 4)", func() { o.SetGradient(5, 0, 1) })

	// valid indices do not panic
	require.NotPanics(tst, func() {
		o.SetSolutionVar(3, 7)
		o.SetTimeN1Var(0, 1)
		o.SetGradient(3, 1, 2)
	})
	chk.Float64(tst, "U[3]", 1e-17, o.GetSolution(3), 7)
}
