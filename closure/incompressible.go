// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package closure

import (
	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/inp"
)

// Incompressible implements the closure of incompressible Euler and Navier-Stokes variables
// solved with artificial compressibility. Density is constant
//   U    = [P, ρv]
//   prim = [P, v, ρ, β², μ, μt]
type Incompressible struct {
	Viscous bool // Navier-Stokes

	// internal
	ndim  int     // space dimension
	lay   Layout  // primitive layout
	rho   float64 // freestream density
	beta2 float64 // artificial compressibility
	mu    float64 // laminar viscosity
}

// add closures to factory
func init() {
	register("inceuler", func() Closure { return new(Incompressible) })
	register("incns", func() Closure { return &Incompressible{Viscous: true} })
}

// Init initialises closure
func (o *Incompressible) Init(ndim int, cfg *inp.Config) (err error) {
	if cfg.Inc.DensityInf <= 0 {
		return chk.Err("freestream density must be positive. %g is invalid", cfg.Inc.DensityInf)
	}
	if cfg.Inc.ArtComp <= 0 {
		return chk.Err("artificial compressibility must be positive. %g is invalid", cfg.Inc.ArtComp)
	}
	o.ndim = ndim
	o.rho = cfg.Inc.DensityInf
	o.beta2 = cfg.Inc.ArtComp
	if o.Viscous {
		o.mu = cfg.Inc.ViscosityInf
	}
	o.lay = NoLayout()
	o.lay.P = 0
	o.lay.Vel = 1
	o.lay.Rho = ndim + 1
	o.lay.Beta2 = ndim + 2
	o.lay.Mu = ndim + 3
	o.lay.MuT = ndim + 4
	return
}

// Tag returns the classification
func (o *Incompressible) Tag() Tag { return IncompressibleFlow }

// Sizes returns variable counts
func (o *Incompressible) Sizes() Sizes {
	return Sizes{Nvar: o.ndim + 1, Nprim: o.ndim + 5, NprimGrad: o.ndim + 3}
}

// Layout returns positions of named primitive quantities
func (o *Incompressible) Layout() Layout { return o.lay }

// Reconstruct computes primitive variables. Pressure is a gauge value, thus any finite state
// is admissible
func (o *Incompressible) Reconstruct(prim, U []float64, in *Inputs) bool {
	if !finite(U) {
		return false
	}
	prim[o.lay.P] = U[0]
	for d := 0; d < o.ndim; d++ {
		prim[o.lay.Vel+d] = U[1+d] / o.rho
	}
	prim[o.lay.Rho] = o.rho
	prim[o.lay.Beta2] = o.beta2
	prim[o.lay.Mu] = o.mu
	prim[o.lay.MuT] = 0
	if o.Viscous && in != nil {
		prim[o.lay.MuT] = in.MuT
	}
	return true
}
