// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package closure

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/inp"
	"github.com/jholland1/gofv/mdl/species"
)

// TwoTemperature implements the closure of multi-species flows in thermal non-equilibrium
//   U    = [ρs, ρv, ρE, ρEve]
//   prim = [ρs, T, Tve, v, P, ρ, h, c, ρcv_tr, ρcv_ve]
// with
//   ρE = Σ ρs (cv_tr(s) T + e_ve(s) + hf(s)) + ½ ρ |v|²
//   P  = T Σ ρs R_s
type TwoTemperature struct {
	Mix *species.Mixture // species thermochemistry

	// internal
	ndim int    // space dimension
	ns   int    // number of species
	lay  Layout // primitive layout
}

// add closure to factory
func init() {
	register("tne2", func() Closure { return new(TwoTemperature) })
}

// Init initialises closure
func (o *TwoTemperature) Init(ndim int, cfg *inp.Config) (err error) {
	if len(cfg.Species) == 0 {
		return chk.Err("two-temperature variables require species data")
	}
	o.Mix, err = species.NewMixture(cfg.Species)
	if err != nil {
		return
	}
	o.ndim = ndim
	o.ns = o.Mix.Ns
	o.lay = NoLayout()
	o.lay.Species = 0
	o.lay.T = o.ns
	o.lay.Tve = o.ns + 1
	o.lay.Vel = o.ns + 2
	o.lay.P = o.ns + ndim + 2
	o.lay.Rho = o.ns + ndim + 3
	o.lay.H = o.ns + ndim + 4
	o.lay.C = o.ns + ndim + 5
	o.lay.RhoCvtr = o.ns + ndim + 6
	o.lay.RhoCvve = o.ns + ndim + 7
	return
}

// Tag returns the classification
func (o *TwoTemperature) Tag() Tag { return CompressibleFlow }

// Sizes returns variable counts
func (o *TwoTemperature) Sizes() Sizes {
	return Sizes{Nvar: o.ns + o.ndim + 2, Nprim: o.ns + o.ndim + 8, NprimGrad: o.ns + o.ndim + 6}
}

// Layout returns positions of named primitive quantities
func (o *TwoTemperature) Layout() Layout { return o.lay }

// Reconstruct computes primitive variables
func (o *TwoTemperature) Reconstruct(prim, U []float64, in *Inputs) bool {
	if !finite(U) {
		return false
	}

	// species densities
	rhos := U[:o.ns]
	for s := 0; s < o.ns; s++ {
		if rhos[s] < 0 {
			return false
		}
	}
	rho := o.Mix.Density(rhos)
	if !(rho > 0) {
		return false
	}

	// velocity
	vel2 := 0.0
	for d := 0; d < o.ndim; d++ {
		v := U[o.ns+d] / rho
		prim[o.lay.Vel+d] = v
		vel2 += v * v
	}

	// translational-rotational temperature
	rhoE := U[o.ns+o.ndim]
	rhoEve := U[o.ns+o.ndim+1]
	rhoCvtr := o.Mix.RhoCvtr(rhos)
	rhoHf := 0.0
	for s := 0; s < o.ns; s++ {
		rhoHf += rhos[s] * o.Mix.Hf(s)
	}
	T := (rhoE - rhoEve - rhoHf - 0.5*rho*vel2) / rhoCvtr
	if !(T > 0) {
		return false
	}

	// vibrational-electronic temperature
	Tve, ok := o.Mix.Tve(rhos, rhoEve, T)
	if !ok || !(Tve > 0) {
		return false
	}

	// pressure and sound speed
	rhoR := o.Mix.RhoR(rhos)
	P := rhoR * T
	a2 := (1.0 + rhoR/rhoCvtr) * P / rho

	copy(prim[o.lay.Species:], rhos)
	prim[o.lay.T] = T
	prim[o.lay.Tve] = Tve
	prim[o.lay.P] = P
	prim[o.lay.Rho] = rho
	prim[o.lay.H] = (rhoE + P) / rho
	prim[o.lay.C] = math.Sqrt(a2)
	prim[o.lay.RhoCvtr] = rhoCvtr
	prim[o.lay.RhoCvve] = o.Mix.RhoCvve(rhos, Tve)
	return true
}

// Jacobians computes ∂P/∂U, ∂T/∂U and ∂Tve/∂U from an admissible primitive state. All
// arrays have length nvar
func (o *TwoTemperature) Jacobians(dPdU, dTdU, dTvedU, prim []float64) {

	// auxiliary
	T, Tve := prim[o.lay.T], prim[o.lay.Tve]
	rhoCvtr, rhoCvve := prim[o.lay.RhoCvtr], prim[o.lay.RhoCvve]
	rhos := prim[o.lay.Species : o.lay.Species+o.ns]
	rhoR := o.Mix.RhoR(rhos)
	vel2 := 0.0
	for d := 0; d < o.ndim; d++ {
		vel2 += prim[o.lay.Vel+d] * prim[o.lay.Vel+d]
	}
	iE, iEve := o.ns+o.ndim, o.ns+o.ndim+1

	// temperatures
	for s := 0; s < o.ns; s++ {
		dTdU[s] = (-o.Mix.Hf(s) + 0.5*vel2 - o.Mix.Cvtr[s]*T) / rhoCvtr
		dTvedU[s] = 0
		if rhoCvve > 0 {
			dTvedU[s] = -o.Mix.Eve(s, Tve) / rhoCvve
		}
	}
	for d := 0; d < o.ndim; d++ {
		dTdU[o.ns+d] = -prim[o.lay.Vel+d] / rhoCvtr
		dTvedU[o.ns+d] = 0
	}
	dTdU[iE] = 1.0 / rhoCvtr
	dTdU[iEve] = -1.0 / rhoCvtr
	dTvedU[iE] = 0
	dTvedU[iEve] = 0
	if rhoCvve > 0 {
		dTvedU[iEve] = 1.0 / rhoCvve
	}

	// pressure
	for i := 0; i < iEve+1; i++ {
		dPdU[i] = rhoR * dTdU[i]
	}
	for s := 0; s < o.ns; s++ {
		dPdU[s] += o.Mix.Rs[s] * T
	}
}
