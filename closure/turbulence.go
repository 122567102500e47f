// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package closure

import (
	"github.com/jholland1/gofv/inp"
	"github.com/jholland1/gofv/mdl/rans"
)

// Rans implements the closure of turbulence model variables. Primitive and conservative
// variables coincide and only the admissibility is checked
//   sa, saml: U = [ν̃]      ν̃ ≥ 0
//   sst:      U = [k, ω]   k ≥ 0, ω > 0
//   lm:       U = [γ, Reθ] γ ≥ 0, Reθ ≥ 0
type Rans struct {
	Model string    // sa, saml, sst or lm
	Sst   *rans.Sst // SST constants (sst only)

	// internal
	ndim int
	nvar int
}

// add closures to factory
func init() {
	for _, name := range []string{"sa", "saml", "sst", "lm"} {
		model := name
		register(model, func() Closure { return &Rans{Model: model} })
	}
}

// Init initialises closure
func (o *Rans) Init(ndim int, cfg *inp.Config) (err error) {
	o.ndim = ndim
	switch o.Model {
	case "sa", "saml":
		o.nvar = 1
	case "sst":
		o.nvar = 2
		o.Sst, err = rans.NewSst(cfg.Turb.Sst)
	case "lm":
		o.nvar = 2
	}
	return
}

// Tag returns the classification
func (o *Rans) Tag() Tag { return Turbulence }

// Sizes returns variable counts
func (o *Rans) Sizes() Sizes { return Sizes{Nvar: o.nvar, Nprim: o.nvar, NprimGrad: o.nvar} }

// Layout returns positions of named primitive quantities
func (o *Rans) Layout() Layout { return NoLayout() }

// Reconstruct copies the unknowns after checking admissibility
func (o *Rans) Reconstruct(prim, U []float64, in *Inputs) bool {
	if !finite(U[:o.nvar]) {
		return false
	}
	switch o.Model {
	case "sa", "saml":
		if U[0] < 0 {
			return false
		}
	case "sst":
		if U[0] < 0 || !(U[1] > 0) {
			return false
		}
	case "lm":
		if U[0] < 0 || U[1] < 0 {
			return false
		}
	}
	copy(prim, U[:o.nvar])
	return true
}
