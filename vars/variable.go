// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vars implements the variables of one mesh point. A variable composes the point
// storage (node.State), the closure of its kind and the extensions its physics requires:
//
//   CompressibleFlow, IncompressibleFlow -- primitive/secondary sets and β correction
//   Turbulence                           -- diagnostics and β correction
//   Adjoint                              -- adjoint ledger and primal primitive set
//   Structural                           -- structural extension and boundary tractions
//
// Primitive variables are valid for the generation of Solution they were reconstructed from.
// Builds with the debug tag panic when stale primitives are read
package vars

import (
	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/adjoint"
	"github.com/jholland1/gofv/closure"
	"github.com/jholland1/gofv/fsi"
	"github.com/jholland1/gofv/inp"
	"github.com/jholland1/gofv/mdl/solid"
	"github.com/jholland1/gofv/node"
	"github.com/jholland1/gofv/turb"
)

// Variable holds the variables of one point
type Variable struct {
	*node.State // unknowns, history and conservative reconstruction data

	// kind
	Kind  string          // kind of variable; e.g. euler, sst, fea
	Tag   closure.Tag     // classification
	Cfg   *inp.Config     // configuration
	Clo   closure.Closure // closure
	Lay   closure.Layout  // positions of named primitive quantities
	Sizes closure.Sizes   // variable counts

	// derived sets
	Primitive []float64      // [nprim] primitive variables
	PrimRecon *node.Recon    // gradient, limiter and bounds of primitive variables
	Secondary []float64      // [nsec] secondary variables
	SecRecon  *node.Recon    // gradient, limiter and bounds of secondary variables
	In        closure.Inputs // parameters supplied by other solvers

	// flow
	Vort      [3]float64 // vorticity
	StrainMag float64    // strain rate magnitude

	// compressible flow
	PrecondBeta float64   // low-Mach preconditioner parameter
	WindGust    []float64 // [ndim] gust velocity
	WindGustDer []float64 // [ndim+1] gust derivatives; spatial then time
	HbSource    []float64 // [nvar] harmonic balance source term

	// Jacobians of closures implementing closure.JacobianCloser
	DPdU   []float64 // [nvar] ∂P/∂U
	DTdU   []float64 // [nvar] ∂T/∂U
	DTvedU []float64 // [nvar] ∂Tve/∂U

	// extensions
	Diag            *turb.Diagnostics // turbulence diagnostics
	Beta            *turb.Correction  // field-inversion correction (flow and turbulence)
	Ledger          *adjoint.Ledger   // reverse-mode bookkeeping (adjoint)
	PrimalPrimitive []float64         // primitive variables of SolutionDirect (adjoint)
	Structure       *fsi.Structure    // structural extension (structural)
	Boundary        *fsi.Boundary     // boundary tractions (structural with boundary elements)

	// internal
	scratch  []float64 // reconstruction buffer
	dscratch []float64 // reconstruction buffer of the primal solution
	primGen  uint64    // generation of Solution the primitive variables belong to
	primDone bool      // primitive variables were computed at least once
	admitted bool      // primitive variables came from an admissible or configured state at least once
}

// New allocates a variable of kind cfg.Kind. sol holds the initial unknowns of all history
// slots; nil means zero unknowns. Primitive variables are reconstructed before returning
func New(ndim int, cfg *inp.Config, sol []float64) (o *Variable, err error) {
	return newKind(cfg.Kind, ndim, cfg, sol)
}

// NewEuler allocates a compressible flow variable from density, velocity and total energy
// per unit volume. cfg.Kind must be euler or ns
func NewEuler(ndim int, cfg *inp.Config, rho float64, vel []float64, rhoE float64) (o *Variable, err error) {
	if cfg.Kind != "euler" && cfg.Kind != "ns" {
		return nil, chk.Err("compressible flow variables require kind euler or ns. %q is invalid", cfg.Kind)
	}
	if len(vel) != ndim {
		return nil, chk.Err("velocity must have %d components. %d is invalid", ndim, len(vel))
	}
	sol := make([]float64, ndim+2)
	sol[0] = rho
	for d := 0; d < ndim; d++ {
		sol[1+d] = rho * vel[d]
	}
	sol[ndim+1] = rhoE
	return newKind(cfg.Kind, ndim, cfg, sol)
}

// NewIncompressible allocates an incompressible flow variable from pressure and velocity.
// cfg.Kind must be inceuler or incns
func NewIncompressible(ndim int, cfg *inp.Config, P float64, vel []float64) (o *Variable, err error) {
	if cfg.Kind != "inceuler" && cfg.Kind != "incns" {
		return nil, chk.Err("incompressible flow variables require kind inceuler or incns. %q is invalid", cfg.Kind)
	}
	if len(vel) != ndim {
		return nil, chk.Err("velocity must have %d components. %d is invalid", ndim, len(vel))
	}
	sol := make([]float64, ndim+1)
	sol[0] = P
	for d := 0; d < ndim; d++ {
		sol[1+d] = cfg.Inc.DensityInf * vel[d]
	}
	return newKind(cfg.Kind, ndim, cfg, sol)
}

// NewSA allocates a Spalart-Allmaras variable. The kind is saml if cfg.Kind is saml and sa
// otherwise
func NewSA(ndim int, cfg *inp.Config, nuTilde, muT float64) (o *Variable, err error) {
	kind := "sa"
	if cfg.Kind == "saml" {
		kind = "saml"
	}
	o, err = newKind(kind, ndim, cfg, []float64{nuTilde})
	if err != nil {
		return
	}
	o.Diag.MuT = muT
	return
}

// NewSST allocates a Menter SST variable from turbulent kinetic energy and specific
// dissipation
func NewSST(ndim int, cfg *inp.Config, k, omega, muT float64) (o *Variable, err error) {
	o, err = newKind("sst", ndim, cfg, []float64{k, omega})
	if err != nil {
		return
	}
	o.Diag.MuT = muT
	return
}

// NewElastic allocates a structural variable from displacements
func NewElastic(ndim int, cfg *inp.Config, u []float64) (o *Variable, err error) {
	return newKind("fea", ndim, cfg, u)
}

// NewAdjoint allocates an adjoint variable of kind cfg.Kind from co-states and the primal
// solution
func NewAdjoint(ndim int, cfg *inp.Config, psi, direct []float64) (o *Variable, err error) {
	clo, err := closure.New(cfg.Kind)
	if err != nil {
		return
	}
	if clo.Tag() != closure.Adjoint {
		return nil, chk.Err("adjoint variables require an adjoint kind. %q is invalid", cfg.Kind)
	}
	o, err = build(cfg.Kind, clo, ndim, cfg, psi, direct)
	return
}

// newKind allocates a variable of given kind
func newKind(kind string, ndim int, cfg *inp.Config, sol []float64) (o *Variable, err error) {
	clo, err := closure.New(kind)
	if err != nil {
		return
	}
	return build(kind, clo, ndim, cfg, sol, nil)
}

// build allocates a variable with given closure
func build(kind string, clo closure.Closure, ndim int, cfg *inp.Config, sol, direct []float64) (o *Variable, err error) {

	// closure
	if ndim != 2 && ndim != 3 {
		return nil, chk.Err("ndim must be 2 or 3. %d is invalid", ndim)
	}
	err = clo.Init(ndim, cfg)
	if err != nil {
		return
	}
	sz := clo.Sizes()
	if sol == nil {
		sol = make([]float64, sz.Nvar)
	}
	if len(sol) != sz.Nvar {
		return nil, chk.Err("%s variables have %d unknowns. %d were given", kind, sz.Nvar, len(sol))
	}
	if cfg.Fallback.Policy == "state" && len(cfg.Fallback.Primitive) != sz.Nprim {
		return nil, chk.Err("fallback state of %s variables must have %d primitive values. %d were given",
			kind, sz.Nprim, len(cfg.Fallback.Primitive))
	}

	// storage
	o = new(Variable)
	o.State = node.NewWithSolution(ndim, sol)
	o.Kind = kind
	o.Tag = clo.Tag()
	o.Cfg = cfg
	o.Clo = clo
	o.Lay = clo.Layout()
	o.Sizes = sz
	o.Primitive = make([]float64, sz.Nprim)
	o.scratch = make([]float64, sz.Nprim)
	o.PrimRecon = node.NewRecon(ndim, sz.NprimGrad)
	if sz.Nsec > 0 {
		o.Secondary = make([]float64, sz.Nsec)
		o.SecRecon = node.NewRecon(ndim, sz.NsecGrad)
	}
	if _, ok := clo.(closure.JacobianCloser); ok {
		o.DPdU = make([]float64, sz.Nvar)
		o.DTdU = make([]float64, sz.Nvar)
		o.DTvedU = make([]float64, sz.Nvar)
	}
	o.In.Grad = o.State.Grad

	// extensions
	switch o.Tag {
	case closure.CompressibleFlow:
		o.Beta = turb.NewCorrection()
		o.WindGust = make([]float64, ndim)
		o.WindGustDer = make([]float64, ndim+1)
		o.HbSource = make([]float64, sz.Nvar)
	case closure.IncompressibleFlow:
		o.Beta = turb.NewCorrection()
	case closure.Turbulence:
		o.Diag = new(turb.Diagnostics)
		o.Beta = turb.NewCorrection()
	case closure.Adjoint:
		o.Ledger = adjoint.NewLedger(o.State)
		primal := clo.(closure.PrimalCloser).Primal()
		o.PrimalPrimitive = make([]float64, primal.Sizes().Nprim)
		o.dscratch = make([]float64, primal.Sizes().Nprim)
		if direct != nil {
			if len(direct) != sz.Nvar {
				return nil, chk.Err("primal solution must have %d values. %d were given", sz.Nvar, len(direct))
			}
			o.SetSolutionDirect(direct)
		}
	case closure.Structural:
		o.Structure = fsi.NewStructure(o.State, &cfg.Struct)
		if cfg.Struct.Material != "" {
			o.Structure.Material, err = solid.New(cfg.Struct.Material)
			if err != nil {
				return nil, err
			}
			err = o.Structure.Material.Init(ndim, &cfg.Struct)
			if err != nil {
				return nil, err
			}
		}
		if cfg.Struct.NelBound > 0 {
			o.Boundary = fsi.NewBoundary(sz.Nvar, cfg.Struct.NelBound)
		}
	}

	// initial primitive variables
	o.ReconstructPrimitive()
	return
}
