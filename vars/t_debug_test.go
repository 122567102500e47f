// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug

package vars

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

func Test_debug01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("debug01. stale primitive variables")

	cfg := newConfig(tst, "euler", 2)
	o, err := NewEuler(2, cfg, 1, []float64{1, 0}, 2.5)
	require.NoError(tst, err)
	require.NotPanics(tst, func() { o.GetPressure() })

	// any mutation of Solution invalidates the primitive variables
	o.AddSolution(3, 0.1)
	require.True(tst, o.Stale())
	require.PanicsWithValue(tst,
		"GetPressure: primitive variables of euler are stale; call ReconstructPrimitive after changing Solution",
		func() { o.GetPressure() })
	require.Panics(tst, func() { o.GetVelocityVec() })
	require.Panics(tst, func() { o.ReconstructSecondary() })

	// direct writes are only seen after Touch
	require.True(tst, o.ReconstructPrimitive())
	o.Solution[3] = 2.5
	require.NotPanics(tst, func() { o.GetPressure() })
	o.Touch()
	require.Panics(tst, func() { o.GetDensity() })
	require.True(tst, o.ReconstructPrimitive())
	chk.Float64(tst, "P", 1e-15, o.GetPressure(), 0.8)

	// bad indices of the point storage
	require.PanicsWithValue(tst, "GetSolution: index 9 is out of range [0, 4)", func() { o.GetSolution(9) })
}
