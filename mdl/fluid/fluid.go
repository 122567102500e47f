// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements equations of state and transport models for compressible flows.
// Equations of state are written in terms of density ρ and specific internal energy e:
//
//   p = p(ρ, e)    T = T(ρ, e)    c² = ∂p/∂ρ|e + (p/ρ²) ∂p/∂e|ρ
//
package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/inp"
)

// State holds thermodynamic quantities and partial derivatives at (ρ, e)
type State struct {
	P       float64 // pressure
	T       float64 // temperature
	C2      float64 // squared speed of sound
	Cp      float64 // specific heat at constant pressure
	DpDrhoE float64 // ∂p/∂ρ|e
	DpDeRho float64 // ∂p/∂e|ρ
	DTDrhoE float64 // ∂T/∂ρ|e
	DTDeRho float64 // ∂T/∂e|ρ
}

// Model defines equations of state
type Model interface {
	Init(gas *inp.GasData) error         // initialises model
	CalcRhoE(res *State, rho, e float64) // computes state for given density and energy
	Energy(rho, T float64) float64       // specific internal energy for given density and temperature
	GetPrms() (gamma, R, cv float64)     // returns γ, R and cv
}

// New returns a new equation of state
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'fluid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available equations of state
var allocators = map[string]func() Model{}
