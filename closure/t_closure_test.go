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

func Test_closure01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("closure01. database")

	kinds := Kinds()
	io.Pforan("kinds = %v\n", kinds)
	require.Equal(tst, []string{
		"adjeuler", "adjinceuler", "adjincns", "adjns", "adjturb", "discadj",
		"euler", "fea", "heat", "inceuler", "incns", "lm", "ns", "potential",
		"sa", "saml", "sst", "tne2", "wave",
	}, kinds)

	_, err := New("lbm")
	require.Error(tst, err)

	tags := map[string]Tag{
		"euler": CompressibleFlow, "incns": IncompressibleFlow, "sst": Turbulence,
		"fea": Structural, "adjns": Adjoint, "heat": Scalar,
	}
	for kind, tag := range tags {
		clo, _ := newClosure(tst, kind, 2)
		require.Equal(tst, tag, clo.Tag(), kind)
	}
	require.Equal(tst, "Turbulence", Turbulence.String())
}

func Test_inc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inc01. artificial compressibility")

	for _, kind := range []string{"inceuler", "incns"} {
		clo, cfg := newClosure(tst, kind, 2)
		cfg.Inc.DensityInf = 1.25
		require.NoError(tst, clo.Init(2, cfg))
		sz := clo.Sizes()
		chk.Int(tst, "nvar", sz.Nvar, 3)
		chk.Int(tst, "nprim", sz.Nprim, 7)
		lay := clo.Layout()

		prim := make([]float64, sz.Nprim)
		require.True(tst, clo.Reconstruct(prim, []float64{-3, 2.5, 5}, &Inputs{MuT: 0.1}))
		chk.Float64(tst, "P", 1e-17, prim[lay.P], -3)
		chk.Array(tst, "v", 1e-15, prim[lay.Vel:lay.Vel+2], []float64{2, 4})
		chk.Float64(tst, "ρ", 1e-17, prim[lay.Rho], 1.25)
		chk.Float64(tst, "β²", 1e-17, prim[lay.Beta2], cfg.Inc.ArtComp)
		if kind == "incns" {
			chk.Float64(tst, "μ", 1e-17, prim[lay.Mu], cfg.Inc.ViscosityInf)
			chk.Float64(tst, "μt", 1e-17, prim[lay.MuT], 0.1)
		} else {
			chk.Float64(tst, "μ", 1e-17, prim[lay.Mu], 0)
			chk.Float64(tst, "μt", 1e-17, prim[lay.MuT], 0)
		}
		require.False(tst, clo.Reconstruct(prim, []float64{math.NaN(), 0, 0}, nil))
	}

	cfg, _ := inp.NewConfig("inceuler", 2)
	cfg.Inc.DensityInf = 0
	require.Error(tst, new(Incompressible).Init(2, cfg))
}

func Test_scalar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scalar01. potential, wave, heat and elastic")

	pot, _ := newClosure(tst, "potential", 3)
	prim := make([]float64, pot.Sizes().Nprim)
	grad := [][]float64{{1, -2, 3}}
	require.True(tst, pot.Reconstruct(prim, []float64{7}, &Inputs{Grad: grad}))
	chk.Array(tst, "[φ, ∇φ]", 1e-17, prim, []float64{7, 1, -2, 3})
	require.True(tst, pot.Reconstruct(prim, []float64{7}, nil))
	chk.Array(tst, "[φ, 0]", 1e-17, prim, []float64{7, 0, 0, 0})

	wave, _ := newClosure(tst, "wave", 2)
	prim = make([]float64, 2)
	require.True(tst, wave.Reconstruct(prim, []float64{0.5, -1}, nil))
	chk.Array(tst, "[u, ut]", 1e-17, prim, []float64{0.5, -1})

	heat, _ := newClosure(tst, "heat", 2)
	prim = make([]float64, 1)
	require.True(tst, heat.Reconstruct(prim, []float64{300}, nil))
	require.False(tst, heat.Reconstruct(prim, []float64{0}, nil))
	require.False(tst, heat.Reconstruct(prim, []float64{-5}, nil))
	chk.Float64(tst, "T (unchanged)", 1e-17, prim[0], 300)

	fea, _ := newClosure(tst, "fea", 3)
	prim = make([]float64, fea.Sizes().Nprim)
	require.True(tst, fea.Reconstruct(prim, []float64{1e-3, -2e-3, math.NaN()}, nil))
	chk.Float64(tst, "u0", 1e-17, prim[0], 1e-3)
}

func Test_turb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("turb01. admissibility of turbulence variables")

	cases := []struct {
		kind string
		U    []float64
		ok   bool
	}{
		{"sa", []float64{1e-4}, true},
		{"sa", []float64{0}, true},
		{"sa", []float64{-1e-9}, false},
		{"saml", []float64{-1e-9}, false},
		{"sst", []float64{1e-3, 10}, true},
		{"sst", []float64{0, 10}, true},
		{"sst", []float64{-1e-3, 10}, false},
		{"sst", []float64{1e-3, 0}, false},
		{"lm", []float64{1, 100}, true},
		{"lm", []float64{-0.1, 100}, false},
		{"lm", []float64{1, -1}, false},
	}
	for _, c := range cases {
		clo, _ := newClosure(tst, c.kind, 2)
		prim := make([]float64, clo.Sizes().Nprim)
		require.Equal(tst, c.ok, clo.Reconstruct(prim, c.U, nil), "%s %v", c.kind, c.U)
		if c.ok {
			chk.Array(tst, c.kind, 1e-17, prim, c.U)
		}
	}

	sst, _ := newClosure(tst, "sst", 2)
	require.NotNil(tst, sst.(*Rans).Sst)
	chk.Float64(tst, "a1", 1e-17, sst.(*Rans).Sst.A1, 0.31)
}

func Test_adjoint01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("adjoint01. co-state bound and primal closure")

	clo, cfg := newClosure(tst, "adjeuler", 2)
	sz := clo.Sizes()
	chk.Int(tst, "nvar", sz.Nvar, 4)
	pc, ok := clo.(PrimalCloser)
	require.True(tst, ok)
	require.Equal(tst, CompressibleFlow, pc.Primal().Tag())

	prim := make([]float64, sz.Nprim)
	require.True(tst, clo.Reconstruct(prim, []float64{-2, 1, 0, 3}, nil))
	chk.Array(tst, "ψ", 1e-17, prim, []float64{-2, 1, 0, 3})
	require.False(tst, clo.Reconstruct(prim, []float64{2 * cfg.Adjoint.Limit, 0, 0, 0}, nil))
	require.False(tst, clo.Reconstruct(prim, []float64{0, math.Inf(-1), 0, 0}, nil))

	// primal closure works on the primal solution
	pp := make([]float64, pc.Primal().Sizes().Nprim)
	require.True(tst, pc.Primal().Reconstruct(pp, []float64{1, 1, 0, 2.5}, nil))

	// discrete adjoint
	cfg, _ = inp.NewConfig("discadj", 3)
	disc, _ := New("discadj")
	require.Error(tst, disc.Init(3, cfg))
	cfg.Adjoint.Primal = "adjns"
	disc, _ = New("discadj")
	require.Error(tst, disc.Init(3, cfg))
	cfg.Adjoint.Primal = "sst"
	disc, _ = New("discadj")
	require.NoError(tst, disc.Init(3, cfg))
	chk.Int(tst, "nvar", disc.Sizes().Nvar, 2)
	require.Equal(tst, Turbulence, disc.(PrimalCloser).Primal().Tag())

	turb, _ := newClosure(tst, "adjturb", 2)
	chk.Int(tst, "nvar", turb.Sizes().Nvar, 1)
}
