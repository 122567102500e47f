// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"context"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/go-cmp/cmp"
	"github.com/jholland1/gofv/adjoint"
	"github.com/jholland1/gofv/inp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// uniform returns n copies of the conservative state U
func uniform(n int, U []float64) (sols [][]float64) {
	sols = make([][]float64, n)
	for i := range sols {
		sols[i] = append([]float64{}, U...)
	}
	return
}

func Test_field01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field01. parallel reconstruction")

	cfg, err := inp.NewConfig("euler", 2)
	require.NoError(tst, err)
	o, err := New(cfg, uniform(101, []float64{1, 1, 0, 2.5}))
	require.NoError(tst, err)
	chk.Int(tst, "size", o.Size(), 101)

	core, logs := observer.New(zapcore.DebugLevel)
	o.Log = zap.New(core)

	// corrupt some points
	bad := []int{0, 17, 50, 100}
	for _, i := range bad {
		o.Vars[i].SetSolutionVar(0, -1)
	}
	for _, nworkers := range []int{0, 1, 3, 8, 1000} {
		n, err := o.Reconstruct(context.Background(), nworkers)
		require.NoError(tst, err)
		chk.Int(tst, "non-physical", n, len(bad))
		if diff := cmp.Diff(bad, o.NonPhysical()); diff != "" {
			tst.Errorf("non-physical points mismatch (-want +got):\n%s", diff)
			return
		}
	}
	require.Equal(tst, 5, logs.FilterMessage("non-physical points").Len())
	entry := logs.FilterMessage("non-physical points").All()[0]
	require.Equal(tst, int64(len(bad)), entry.ContextMap()["count"])

	// all points are fresh and good points are consistent
	for i, v := range o.Vars {
		require.False(tst, v.Stale(), "point %d", i)
	}
	if diff := cmp.Diff(o.Vars[1].Primitive, o.Vars[99].Primitive); diff != "" {
		tst.Errorf("uniform field mismatch:\n%s", diff)
	}

	// recovery
	for _, i := range bad {
		o.Vars[i].SetSolutionVar(0, 1)
	}
	n, err := o.Reconstruct(context.Background(), 4)
	require.NoError(tst, err)
	chk.Int(tst, "non-physical", n, 0)
	require.NoError(tst, o.ReconstructSecondary(context.Background(), 4))
	require.Empty(tst, o.NonPhysical())
}

func Test_field02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field02. cancellation and errors")

	cfg, err := inp.NewConfig("euler", 3)
	require.NoError(tst, err)
	_, err = New(cfg, [][]float64{{1, 0, 0, 0, 2.5}, {1, 2}})
	require.Error(tst, err)

	o, err := New(cfg, uniform(10, []float64{1, 0, 0, 0, 2.5}))
	require.NoError(tst, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = o.Reconstruct(ctx, 2)
	require.ErrorIs(tst, err, context.Canceled)

	// empty field
	o, err = New(cfg, nil)
	require.NoError(tst, err)
	n, err := o.Reconstruct(context.Background(), 4)
	require.NoError(tst, err)
	chk.Int(tst, "non-physical", n, 0)

	// a point that was never admissible has no secondary variables
	cfg, err = inp.NewConfig("ns", 2)
	require.NoError(tst, err)
	sols := uniform(6, []float64{1, 1, 0, 2.5})
	sols[4] = []float64{-1, 0, 0, 2.5}
	o, err = New(cfg, sols)
	require.NoError(tst, err)
	require.Equal(tst, []int{4}, o.NonPhysical())
	require.False(tst, o.Vars[4].Admitted())
	err = o.ReconstructSecondary(context.Background(), 1)
	require.ErrorContains(tst, err, "point 4")
	for _, i := range []int{0, 1, 2, 3} {
		require.Greater(tst, o.Vars[i].GetdPdrhoE(), 0.0, "point %d", i)
	}

	// once admissible, it stays so
	o.Vars[4].SetSolution([]float64{1, 1, 0, 2.5})
	n, err = o.Reconstruct(context.Background(), 2)
	require.NoError(tst, err)
	chk.Int(tst, "non-physical", n, 0)
	o.Vars[4].SetSolutionVar(0, -1)
	n, err = o.Reconstruct(context.Background(), 2)
	require.NoError(tst, err)
	chk.Int(tst, "non-physical", n, 1)
	require.True(tst, o.Vars[4].Admitted())
	require.NoError(tst, o.ReconstructSecondary(context.Background(), 3))
}

func Test_field03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field03. history sweeps")

	cfg, err := inp.NewConfig("euler", 2)
	require.NoError(tst, err)
	o, err := New(cfg, uniform(3, []float64{1, 1, 0, 2.5}))
	require.NoError(tst, err)
	for _, v := range o.Vars {
		v.SetSolutionVar(3, 3)
	}
	o.FreezeOld()
	o.FreezeTimeN()
	o.FreezeTimeN1()
	for _, v := range o.Vars {
		v.SetSolutionVar(3, 4)
	}
	o.ShiftTimeHistory()
	for i, v := range o.Vars {
		chk.Float64(tst, io.Sf("old[%d]", i), 1e-17, v.SolutionOld[3], 3)
		chk.Float64(tst, io.Sf("n[%d]", i), 1e-17, v.SolutionTimeN[3], 4)
		chk.Float64(tst, io.Sf("n1[%d]", i), 1e-17, v.SolutionTimeN1[3], 3)
	}
}

func Test_field04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field04. structural loads and adjoint registration")

	cfg, err := inp.NewConfig("fea", 2)
	require.NoError(tst, err)
	o, err := New(cfg, uniform(4, []float64{0, 0}))
	require.NoError(tst, err)
	for _, v := range o.Vars {
		v.Structure.AddSurfaceLoadRes([]float64{1, 2})
		v.Structure.AddBodyForcesRes([]float64{0, -1})
	}
	o.ClearLoads()
	for _, v := range o.Vars {
		chk.Array(tst, "surface", 1e-17, v.Structure.GetSurfaceLoadRes(), []float64{0, 0})
		chk.Array(tst, "body", 1e-17, v.Structure.GetBodyForcesRes(), []float64{0, 0})
	}

	cfg, err = inp.NewConfig("adjeuler", 2)
	require.NoError(tst, err)
	o, err = New(cfg, uniform(3, []float64{0.1, 0.2, 0.3, 0.4}))
	require.NoError(tst, err)
	tape := adjoint.NewRecorder("field")
	o.RegisterSolution(tape, true)
	chk.Int(tst, "inputs", tape.NumInputs(), 12)
	for _, v := range o.Vars {
		require.True(tst, v.Ledger.Registered())
	}
}
