// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package closure

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/jholland1/gofv/inp"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newClosure allocates and initialises a closure with default configuration
func newClosure(tst *testing.T, kind string, ndim int) (Closure, *inp.Config) {
	cfg, err := inp.NewConfig(kind, ndim)
	require.NoError(tst, err)
	clo, err := New(kind)
	require.NoError(tst, err)
	require.NoError(tst, clo.Init(ndim, cfg))
	return clo, cfg
}

func Test_euler01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("euler01. uniform flow in 2D")

	clo, cfg := newClosure(tst, "euler", 2)
	sz := clo.Sizes()
	chk.Int(tst, "nvar", sz.Nvar, 4)
	chk.Int(tst, "nprim", sz.Nprim, 11)
	require.Equal(tst, CompressibleFlow, clo.Tag())

	lay := clo.Layout()
	prim := make([]float64, sz.Nprim)
	ok := clo.Reconstruct(prim, []float64{1.0, 1.0, 0.0, 2.5}, nil)
	io.Pforan("prim = %v\n", prim)
	require.True(tst, ok)
	chk.Array(tst, "v", 1e-15, prim[lay.Vel:lay.Vel+2], []float64{1, 0})
	chk.Float64(tst, "P", 1e-15, prim[lay.P], 0.4*(2.5-0.5))
	chk.Float64(tst, "T", 1e-15, prim[lay.T], 0.8/cfg.Gas.R)
	chk.Float64(tst, "ρ", 1e-15, prim[lay.Rho], 1)
	chk.Float64(tst, "h", 1e-15, prim[lay.H], 3.3)
	chk.Float64(tst, "c", 1e-15, prim[lay.C], math.Sqrt(1.4*0.8))
	chk.Float64(tst, "cp", 1e-12, prim[lay.Cp], cfg.Gas.Cp)
	chk.Float64(tst, "μ", 1e-17, prim[lay.Mu], 0)

	// idempotence
	again := make([]float64, sz.Nprim)
	require.True(tst, clo.Reconstruct(again, []float64{1.0, 1.0, 0.0, 2.5}, nil))
	require.Equal(tst, prim, again)
}

func Test_euler02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("euler02. non-physical states")

	clo, _ := newClosure(tst, "euler", 3)
	prim := make([]float64, clo.Sizes().Nprim)
	for i, U := range [][]float64{
		{-1.0, 1, 0, 0, 2.5},         // negative density
		{0, 0, 0, 0, 2.5},            // zero density
		{1.0, 1, 0, 0, 0.1},          // negative internal energy
		{1.0, math.NaN(), 0, 0, 2.5}, // not a number
		{1.0, 0, 0, 0, math.Inf(1)},  // infinite energy
	} {
		if clo.Reconstruct(prim, U, nil) {
			tst.Errorf("state %d should be non-physical\n", i)
		}
	}
}

func Test_ns01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ns01. transport properties and secondary variables")

	clo, cfg := newClosure(tst, "ns", 2)
	sz := clo.Sizes()
	chk.Int(tst, "nsec", sz.Nsec, 8)
	lay := clo.Layout()

	rho, u, ke := 1.2, 50.0, 10.0
	e := 2.1e5
	U := []float64{rho, rho * u, 0, rho * (e + 0.5*u*u + ke)}
	prim := make([]float64, sz.Nprim)
	require.True(tst, clo.Reconstruct(prim, U, &Inputs{MuT: 3e-4, Ke: ke}))

	T := e / cfg.Gas.Cv
	mu := 1.716e-5 * math.Pow(T/273.15, 1.5) * (273.15 + 110.4) / (T + 110.4)
	chk.Float64(tst, "T", 1e-10, prim[lay.T], T)
	chk.Float64(tst, "P", 1e-8, prim[lay.P], 0.4*rho*e)
	chk.Float64(tst, "μ", 1e-15, prim[lay.Mu], mu)
	chk.Float64(tst, "μt", 1e-17, prim[lay.MuT], 3e-4)
	chk.Float64(tst, "κ", 1e-12, prim[lay.K], mu*cfg.Gas.Cp/0.72)

	// secondary
	sc, ok := clo.(SecondaryCloser)
	require.True(tst, ok)
	sec := make([]float64, sz.Nsec)
	sc.Secondary(sec, prim)
	io.Pforan("sec = %v\n", sec)
	chk.Float64(tst, "∂p/∂ρ|e", 1e-8, sec[0], 0.4*e)
	chk.Float64(tst, "∂p/∂e|ρ", 1e-14, sec[1], 0.4*rho)
	chk.Float64(tst, "∂T/∂ρ|e", 1e-17, sec[2], 0)
	chk.Float64(tst, "∂T/∂e|ρ", 1e-15, sec[3], 1/cfg.Gas.Cv)
	chk.Float64(tst, "∂μ/∂ρ|T", 1e-17, sec[4], 0)
	chk.Float64(tst, "∂μ/∂T|ρ", 1e-18, sec[5], mu*(1.5/T-1/(T+110.4)))
	chk.Float64(tst, "∂κ/∂T|ρ", 1e-15, sec[7], sec[5]*cfg.Gas.Cp/0.72)
}

func Test_ns02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ns02. van der Waals gas")

	cfg, err := inp.NewConfig("ns", 2)
	require.NoError(tst, err)
	cfg.Gas.Model = "vdw"
	cfg.Gas.A = 162.0
	cfg.Gas.B = 1.26e-3
	clo, err := New("ns")
	require.NoError(tst, err)
	require.NoError(tst, clo.Init(2, cfg))
	lay := clo.Layout()

	rho, e := 50.0, 1.5e5
	prim := make([]float64, clo.Sizes().Nprim)
	require.True(tst, clo.Reconstruct(prim, []float64{rho, 0, 0, rho * e}, nil))
	T := (e + 162.0*rho) / cfg.Gas.Cv
	chk.Float64(tst, "T", 1e-10, prim[lay.T], T)
	chk.Float64(tst, "P", 1e-6, prim[lay.P], rho*cfg.Gas.R*T/(1-1.26e-3*rho)-162.0*rho*rho)

	// beyond the co-volume limit
	require.False(tst, clo.Reconstruct(prim, []float64{1000, 0, 0, 1000 * e}, nil))
}
