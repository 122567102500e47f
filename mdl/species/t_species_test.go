// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package species

import (
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

func air2() []*inp.SpeciesData {
	return []*inp.SpeciesData{
		{Name: "N2", M: 28.0134, ThetaV: 3395},
		{Name: "N", M: 14.0067, Monatomic: true, Hf: 3.36e7},
	}
}

func Test_species01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("species01. constants and heat capacities")

	mix, err := NewMixture(air2())
	require.NoError(tst, err)
	chk.Int(tst, "ns", mix.Ns, 2)
	chk.Float64(tst, "R(N2)", 1e-12, mix.Rs[0], Ru/28.0134)
	chk.Float64(tst, "cvtr(N2)", 1e-12, mix.Cvtr[0], 2.5*Ru/28.0134)
	chk.Float64(tst, "cvtr(N)", 1e-12, mix.Cvtr[1], 1.5*Ru/14.0067)
	chk.Float64(tst, "eve(N)", 1e-17, mix.Eve(1, 5000), 0)
	chk.Float64(tst, "hf(N)", 1e-17, mix.Hf(1), 3.36e7)

	// cv_ve = d(e_ve)/dT
	for _, T := range []float64{300, 2000, 10000} {
		cvve := mix.CvVe(0, T)
		chk.DerivScaSca(tst, io.Sf("cvve @ %g", T), 1e-6*(1+cvve), cvve, T, 1e-3*T, chk.Verbose, func(x float64) float64 {
			return mix.Eve(0, x)
		})
	}

	// high temperature limit: cv_ve → R
	chk.Float64(tst, "cvve(∞)", 1e-3*mix.Rs[0], mix.CvVe(0, 1e6), mix.Rs[0])

	_, err = NewMixture(nil)
	require.Error(tst, err)
	_, err = NewMixture([]*inp.SpeciesData{{Name: "X"}})
	require.Error(tst, err)
}

func Test_species02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("species02. vibrational temperature")

	mix, err := NewMixture(air2())
	require.NoError(tst, err)

	rhos := []float64{0.02, 0.005}
	for _, Tref := range []float64{400, 3000, 12000} {
		rhoEve := mix.RhoEve(rhos, Tref)
		for _, guess := range []float64{300, 5000, 0} {
			T, ok := mix.Tve(rhos, rhoEve, guess)
			require.True(tst, ok)
			chk.Float64(tst, io.Sf("Tve(%g) from %g", Tref, guess), 1e-7*Tref, T, Tref)
		}
	}

	// unattainable energy
	_, ok := mix.Tve(rhos, -1.0, 300)
	require.False(tst, ok)

	// atoms only: guess is returned
	T, ok := mix.Tve([]float64{0, 1}, 0, 777)
	require.True(tst, ok)
	chk.Float64(tst, "Tve(atoms)", 1e-17, T, 777)

	// mixture sums
	chk.Float64(tst, "ρ", 1e-17, mix.Density(rhos), 0.025)
	chk.Float64(tst, "ρR", 1e-12, mix.RhoR(rhos), 0.02*mix.Rs[0]+0.005*mix.Rs[1])
	chk.Float64(tst, "ρcvtr", 1e-12, mix.RhoCvtr(rhos), 0.02*mix.Cvtr[0]+0.005*mix.Cvtr[1])
}
