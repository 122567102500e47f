// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import "github.com/jholland1/gofv/inp"

// IdealGas implements the calorically perfect gas
//   p = (γ-1) ρ e    T = e / cv
type IdealGas struct {
	Gamma float64 // ratio of specific heats
	R     float64 // gas constant
	Cv    float64 // specific heat at constant volume
}

// add model to factory
func init() {
	allocators["ideal"] = func() Model { return new(IdealGas) }
}

// Init initialises model
func (o *IdealGas) Init(gas *inp.GasData) (err error) {
	o.Gamma = gas.Gamma
	o.R = gas.R
	o.Cv = o.R / (o.Gamma - 1.0)
	return
}

// GetPrms returns γ, R and cv
func (o *IdealGas) GetPrms() (gamma, R, cv float64) {
	return o.Gamma, o.R, o.Cv
}

// CalcRhoE computes state for given density and energy
func (o *IdealGas) CalcRhoE(res *State, rho, e float64) {
	gm1 := o.Gamma - 1.0
	res.P = gm1 * rho * e
	res.T = e / o.Cv
	res.C2 = o.Gamma * gm1 * e
	res.Cp = o.Gamma * o.Cv
	res.DpDrhoE = gm1 * e
	res.DpDeRho = gm1 * rho
	res.DTDrhoE = 0
	res.DTDeRho = 1.0 / o.Cv
}

// Energy returns the specific internal energy
func (o *IdealGas) Energy(rho, T float64) float64 {
	return o.Cv * T
}
