// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package species implements the thermochemistry of multi-species two-temperature gases.
// The translational-rotational modes are fully excited and the vibrational-electronic mode
// of molecules is a harmonic oscillator:
//
//   cv_tr(s) = 3/2 R_s (atoms) or 5/2 R_s (molecules)
//   e_ve(s)  = R_s θv / (exp(θv/Tve) - 1)
//
package species

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/inp"
)

// Ru is the universal gas constant [J/(kmol K)]
const Ru = 8314.462618

// Newton iteration controls for Tve
const (
	TveTol   = 1e-11 // relative tolerance
	TveMaxIt = 60    // maximum number of iterations
)

// Mixture holds species data and derived constants
type Mixture struct {
	Data []*inp.SpeciesData // species data
	Ns   int                // number of species
	Rs   []float64          // [ns] specific gas constants
	Cvtr []float64          // [ns] translational-rotational specific heats
}

// NewMixture returns a new mixture
func NewMixture(data []*inp.SpeciesData) (o *Mixture, err error) {
	if len(data) == 0 {
		return nil, chk.Err("mixture requires at least one species")
	}
	o = new(Mixture)
	o.Data = data
	o.Ns = len(data)
	o.Rs = make([]float64, o.Ns)
	o.Cvtr = make([]float64, o.Ns)
	for s, d := range data {
		if d.M <= 0 {
			return nil, chk.Err("species %q must have positive molar mass", d.Name)
		}
		if d.ThetaV < 0 {
			return nil, chk.Err("species %q must have non-negative θv", d.Name)
		}
		o.Rs[s] = Ru / d.M
		if d.Monatomic {
			o.Cvtr[s] = 1.5 * o.Rs[s]
		} else {
			o.Cvtr[s] = 2.5 * o.Rs[s]
		}
	}
	return
}

// vibrating tells whether species s has a vibrational mode
func (o *Mixture) vibrating(s int) bool {
	return !o.Data[s].Monatomic && o.Data[s].ThetaV > 0
}

// Eve returns the vibrational-electronic energy of species s per unit mass
func (o *Mixture) Eve(s int, Tve float64) float64 {
	if !o.vibrating(s) || Tve <= 0 {
		return 0
	}
	th := o.Data[s].ThetaV
	return o.Rs[s] * th / (math.Exp(th/Tve) - 1.0)
}

// CvVe returns d(e_ve)/dTve of species s
func (o *Mixture) CvVe(s int, Tve float64) float64 {
	if !o.vibrating(s) || Tve <= 0 {
		return 0
	}
	th := o.Data[s].ThetaV
	x := th / Tve
	ex := math.Exp(x)
	return o.Rs[s] * x * x * ex / ((ex - 1.0) * (ex - 1.0))
}

// Hf returns the formation enthalpy of species s
func (o *Mixture) Hf(s int) float64 { return o.Data[s].Hf }

// Density returns Σ ρs
func (o *Mixture) Density(rhos []float64) (rho float64) {
	for s := 0; s < o.Ns; s++ {
		rho += rhos[s]
	}
	return
}

// RhoR returns Σ ρs R_s
func (o *Mixture) RhoR(rhos []float64) (res float64) {
	for s := 0; s < o.Ns; s++ {
		res += rhos[s] * o.Rs[s]
	}
	return
}

// RhoCvtr returns Σ ρs cv_tr(s)
func (o *Mixture) RhoCvtr(rhos []float64) (res float64) {
	for s := 0; s < o.Ns; s++ {
		res += rhos[s] * o.Cvtr[s]
	}
	return
}

// RhoEve returns Σ ρs e_ve(s)
func (o *Mixture) RhoEve(rhos []float64, Tve float64) (res float64) {
	for s := 0; s < o.Ns; s++ {
		res += rhos[s] * o.Eve(s, Tve)
	}
	return
}

// RhoCvve returns Σ ρs cv_ve(s)
func (o *Mixture) RhoCvve(rhos []float64, Tve float64) (res float64) {
	for s := 0; s < o.Ns; s++ {
		res += rhos[s] * o.CvVe(s, Tve)
	}
	return
}

// Tve computes the vibrational-electronic temperature such that RhoEve(rhos, Tve) = rhoEve.
// A Newton iteration safeguarded by bisection is used; guess seeds the bracket and is returned
// when no species vibrates. ok is false if rhoEve is not attainable or the iterations did not converge
func (o *Mixture) Tve(rhos []float64, rhoEve, guess float64) (Tve float64, ok bool) {

	// no vibrational mode
	vib := false
	for s := 0; s < o.Ns; s++ {
		if o.vibrating(s) && rhos[s] > 0 {
			vib = true
			break
		}
	}
	if !vib {
		return guess, true
	}
	if !(rhoEve > 0) {
		return 0, false
	}

	// bracket
	if !(guess > 0) {
		guess = 1000
	}
	lo, hi := 0.0, guess
	for it := 0; o.RhoEve(rhos, hi) < rhoEve; it++ {
		if it > 200 {
			return 0, false
		}
		lo = hi
		hi *= 2
	}

	// iterations
	Tve = hi
	for it := 0; it < TveMaxIt; it++ {
		f := o.RhoEve(rhos, Tve) - rhoEve
		if f < 0 {
			lo = Tve
		} else {
			hi = Tve
		}
		df := o.RhoCvve(rhos, Tve)
		next := 0.5 * (lo + hi)
		if df > 0 {
			if n := Tve - f/df; n > lo && n < hi {
				next = n
			}
		}
		if math.Abs(next-Tve) <= TveTol*Tve {
			return next, true
		}
		Tve = next
	}
	return Tve, false
}
