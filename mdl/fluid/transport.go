// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/inp"
)

// Viscosity defines laminar viscosity models μ(T). Density dependence is not modelled, thus
// ∂μ/∂ρ|T = 0
type Viscosity interface {
	Init(tr *inp.TransportData) error // initialises model
	Mu(T float64) float64             // viscosity
	DmuDT(T float64) float64          // ∂μ/∂T|ρ
}

// NewViscosity returns a new viscosity model
func NewViscosity(name string) (model Viscosity, err error) {
	allocator, ok := viscAllocators[name]
	if !ok {
		return nil, chk.Err("viscosity model %q is not available in 'fluid' database", name)
	}
	return allocator(), nil
}

// viscAllocators holds all available viscosity models
var viscAllocators = map[string]func() Viscosity{
	"constant":   func() Viscosity { return new(ConstantViscosity) },
	"sutherland": func() Viscosity { return new(Sutherland) },
}

// ConstantViscosity implements μ = μref
type ConstantViscosity struct {
	MuRef float64
}

// Init initialises model
func (o *ConstantViscosity) Init(tr *inp.TransportData) (err error) {
	if tr.MuRef < 0 {
		return chk.Err("viscosity must be non-negative. %g is invalid", tr.MuRef)
	}
	o.MuRef = tr.MuRef
	return
}

// Mu returns the viscosity
func (o *ConstantViscosity) Mu(T float64) float64 { return o.MuRef }

// DmuDT returns ∂μ/∂T
func (o *ConstantViscosity) DmuDT(T float64) float64 { return 0 }

// Sutherland implements Sutherland's law
//   μ = μref (T/Tref)^(3/2) (Tref + S) / (T + S)
type Sutherland struct {
	MuRef float64 // viscosity at Tref
	Tref  float64 // reference temperature
	S     float64 // Sutherland constant
}

// Init initialises model
func (o *Sutherland) Init(tr *inp.TransportData) (err error) {
	if tr.MuRef <= 0 || tr.Tref <= 0 || tr.S < 0 {
		return chk.Err("Sutherland's law requires μref>0, Tref>0 and S≥0. μref=%g, Tref=%g, S=%g", tr.MuRef, tr.Tref, tr.S)
	}
	o.MuRef = tr.MuRef
	o.Tref = tr.Tref
	o.S = tr.S
	return
}

// Mu returns the viscosity
func (o *Sutherland) Mu(T float64) float64 {
	return o.MuRef * math.Pow(T/o.Tref, 1.5) * (o.Tref + o.S) / (T + o.S)
}

// DmuDT returns ∂μ/∂T
func (o *Sutherland) DmuDT(T float64) float64 {
	return o.Mu(T) * (1.5/T - 1.0/(T+o.S))
}

// Conductivity implements the constant Prandtl number model
//   κ = μ cp / Pr
type Conductivity struct {
	Pr float64 // Prandtl number
}

// K returns the thermal conductivity
func (o Conductivity) K(mu, cp float64) float64 { return mu * cp / o.Pr }

// DkDT returns ∂κ/∂T|ρ for constant cp
func (o Conductivity) DkDT(dmudT, cp float64) float64 { return dmudT * cp / o.Pr }
