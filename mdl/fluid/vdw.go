// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/inp"
)

// VanDerWaals implements the van der Waals gas with constant cv
//   p = ρ R T / (1 - b ρ) - a ρ²    e = cv T - a ρ
type VanDerWaals struct {
	Gamma float64 // ratio of ideal-gas specific heats (defines cv)
	R     float64 // gas constant
	Cv    float64 // specific heat at constant volume
	A     float64 // attraction coefficient
	B     float64 // co-volume
}

// add model to factory
func init() {
	allocators["vdw"] = func() Model { return new(VanDerWaals) }
}

// Init initialises model
func (o *VanDerWaals) Init(gas *inp.GasData) (err error) {
	if gas.A < 0 || gas.B < 0 {
		return chk.Err("van der Waals coefficients must be non-negative. a=%g, b=%g", gas.A, gas.B)
	}
	o.Gamma = gas.Gamma
	o.R = gas.R
	o.Cv = o.R / (o.Gamma - 1.0)
	o.A = gas.A
	o.B = gas.B
	return
}

// GetPrms returns γ, R and cv
func (o *VanDerWaals) GetPrms() (gamma, R, cv float64) {
	return o.Gamma, o.R, o.Cv
}

// CalcRhoE computes state for given density and energy
func (o *VanDerWaals) CalcRhoE(res *State, rho, e float64) {

	// temperature
	res.T = (e + o.A*rho) / o.Cv
	res.DTDeRho = 1.0 / o.Cv
	res.DTDrhoE = o.A / o.Cv

	// pressure
	den := 1.0 - o.B*rho
	res.P = rho*o.R*res.T/den - o.A*rho*rho
	res.DpDeRho = rho * o.R / den * res.DTDeRho
	res.DpDrhoE = o.R*res.T/(den*den) + rho*o.R/den*res.DTDrhoE - 2.0*o.A*rho

	// sound speed
	res.C2 = res.DpDrhoE + res.P/(rho*rho)*res.DpDeRho

	// cp = cv + T (∂p/∂T|v)² / (-∂p/∂v|T) with v = 1/ρ
	v := 1.0 / rho
	dpdT := o.R / (v - o.B)
	dpdv := -o.R*res.T/((v-o.B)*(v-o.B)) + 2.0*o.A/(v*v*v)
	res.Cp = o.Cv + res.T*dpdT*dpdT/(-dpdv)
}

// Energy returns the specific internal energy
func (o *VanDerWaals) Energy(rho, T float64) float64 {
	return o.Cv*T - o.A*rho
}
