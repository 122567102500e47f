// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package closure

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/inp"
)

// AdjointFlow implements the closure of adjoint (co-state) variables. The co-state ψ is
// copied into the primitive array after a bound check on its first component; the closure of
// the primal problem evaluated on the stored primal solution supplies the primal-dependent
// Jacobian blocks
type AdjointFlow struct {
	PrimalKind string  // kind of the primal problem
	Limit      float64 // bound of |ψ[0]|

	// internal
	primal Closure // primal closure
	nvar   int     // number of co-states
}

// adjoint kinds and their primal problems; discadj reads the primal kind from the
// configuration
var adjointPrimals = map[string]string{
	"adjeuler":    "euler",
	"adjns":       "ns",
	"adjinceuler": "inceuler",
	"adjincns":    "incns",
	"adjturb":     "sa",
	"discadj":     "",
}

// add closures to factory
func init() {
	for name, primal := range adjointPrimals {
		kind := primal
		register(name, func() Closure { return &AdjointFlow{PrimalKind: kind} })
	}
}

// Init initialises closure
func (o *AdjointFlow) Init(ndim int, cfg *inp.Config) (err error) {
	if o.PrimalKind == "" {
		o.PrimalKind = cfg.Adjoint.Primal
	}
	if o.PrimalKind == "" {
		return chk.Err("discrete adjoint requires the kind of the primal problem")
	}
	if _, ok := adjointPrimals[o.PrimalKind]; ok {
		return chk.Err("primal problem cannot be an adjoint problem. %q is invalid", o.PrimalKind)
	}
	o.primal, err = New(o.PrimalKind)
	if err != nil {
		return
	}
	err = o.primal.Init(ndim, cfg)
	if err != nil {
		return
	}
	o.Limit = cfg.Adjoint.Limit
	o.nvar = o.primal.Sizes().Nvar
	return
}

// Tag returns the classification
func (o *AdjointFlow) Tag() Tag { return Adjoint }

// Sizes returns variable counts
func (o *AdjointFlow) Sizes() Sizes { return Sizes{Nvar: o.nvar, Nprim: o.nvar, NprimGrad: o.nvar} }

// Layout returns positions of named primitive quantities
func (o *AdjointFlow) Layout() Layout { return NoLayout() }

// Primal returns the closure of the primal problem
func (o *AdjointFlow) Primal() Closure { return o.primal }

// Reconstruct copies the co-states after checking the bound
func (o *AdjointFlow) Reconstruct(prim, U []float64, in *Inputs) bool {
	if !finite(U[:o.nvar]) || math.Abs(U[0]) > o.Limit {
		return false
	}
	copy(prim, U[:o.nvar])
	return true
}
