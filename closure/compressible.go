// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package closure

import (
	"math"

	"github.com/jholland1/gofv/inp"
	"github.com/jholland1/gofv/mdl/fluid"
)

// Compressible implements the closure of compressible Euler and Navier-Stokes variables
//   U    = [ρ, ρv, ρE]
//   prim = [T, v, P, ρ, h, c, μ, μt, κ, cp]
//   sec  = [∂p/∂ρ|e, ∂p/∂e|ρ, ∂T/∂ρ|e, ∂T/∂e|ρ, ∂μ/∂ρ|T, ∂μ/∂T|ρ, ∂κ/∂ρ|T, ∂κ/∂T|ρ]
// Navier-Stokes variables subtract the turbulent kinetic energy from the total energy
type Compressible struct {
	Viscous bool // Navier-Stokes

	// internal
	ndim int                // space dimension
	lay  Layout             // primitive layout
	eos  fluid.Model        // equation of state
	visc fluid.Viscosity    // laminar viscosity (viscous only)
	cond fluid.Conductivity // laminar conductivity (viscous only)
}

// add closures to factory
func init() {
	register("euler", func() Closure { return new(Compressible) })
	register("ns", func() Closure { return &Compressible{Viscous: true} })
}

// Init initialises closure
func (o *Compressible) Init(ndim int, cfg *inp.Config) (err error) {
	o.ndim = ndim
	o.eos, err = fluid.New(cfg.Gas.Model)
	if err != nil {
		return
	}
	err = o.eos.Init(&cfg.Gas)
	if err != nil {
		return
	}
	if o.Viscous {
		o.visc, err = fluid.NewViscosity(cfg.Transport.Viscosity)
		if err != nil {
			return
		}
		err = o.visc.Init(&cfg.Transport)
		if err != nil {
			return
		}
		o.cond = fluid.Conductivity{Pr: cfg.Transport.PrLam}
	}
	o.lay = NoLayout()
	o.lay.T = 0
	o.lay.Vel = 1
	o.lay.P = ndim + 1
	o.lay.Rho = ndim + 2
	o.lay.H = ndim + 3
	o.lay.C = ndim + 4
	o.lay.Mu = ndim + 5
	o.lay.MuT = ndim + 6
	o.lay.K = ndim + 7
	o.lay.Cp = ndim + 8
	return
}

// Tag returns the classification
func (o *Compressible) Tag() Tag { return CompressibleFlow }

// Sizes returns variable counts
func (o *Compressible) Sizes() Sizes {
	s := Sizes{Nvar: o.ndim + 2, Nprim: o.ndim + 9, NprimGrad: o.ndim + 4, Nsec: 4, NsecGrad: 2}
	if o.Viscous {
		s.Nsec = 8
	}
	return s
}

// Layout returns positions of named primitive quantities
func (o *Compressible) Layout() Layout { return o.lay }

// EOS returns the equation of state
func (o *Compressible) EOS() fluid.Model { return o.eos }

// Reconstruct computes primitive variables
func (o *Compressible) Reconstruct(prim, U []float64, in *Inputs) bool {

	// density and velocity
	rho := U[0]
	if !(rho > 0) || !finite(U) {
		return false
	}
	vel2 := 0.0
	for d := 0; d < o.ndim; d++ {
		v := U[1+d] / rho
		prim[o.lay.Vel+d] = v
		vel2 += v * v
	}

	// static energy
	rhoE := U[o.ndim+1]
	e := rhoE/rho - 0.5*vel2
	if o.Viscous && in != nil {
		e -= in.Ke
	}

	// thermodynamic state
	var st fluid.State
	o.eos.CalcRhoE(&st, rho, e)
	if !(st.P > 0) || !(st.T > 0) || !(st.C2 > 0) {
		return false
	}
	prim[o.lay.T] = st.T
	prim[o.lay.P] = st.P
	prim[o.lay.Rho] = rho
	prim[o.lay.H] = (rhoE + st.P) / rho
	prim[o.lay.C] = math.Sqrt(st.C2)
	prim[o.lay.Cp] = st.Cp

	// transport properties
	prim[o.lay.Mu], prim[o.lay.MuT], prim[o.lay.K] = 0, 0, 0
	if o.Viscous {
		mu := o.visc.Mu(st.T)
		prim[o.lay.Mu] = mu
		prim[o.lay.K] = o.cond.K(mu, st.Cp)
		if in != nil {
			prim[o.lay.MuT] = in.MuT
		}
	}
	return true
}

// Secondary computes thermodynamic and transport derivatives from an admissible primitive
// state
func (o *Compressible) Secondary(sec, prim []float64) {
	rho, T := prim[o.lay.Rho], prim[o.lay.T]
	var st fluid.State
	o.eos.CalcRhoE(&st, rho, o.eos.Energy(rho, T))
	sec[0] = st.DpDrhoE
	sec[1] = st.DpDeRho
	sec[2] = st.DTDrhoE
	sec[3] = st.DTDeRho
	if o.Viscous {
		dmudT := o.visc.DmuDT(T)
		sec[4] = 0
		sec[5] = dmudT
		sec[6] = 0
		sec[7] = o.cond.DkDT(dmudT, prim[o.lay.Cp])
	}
}
