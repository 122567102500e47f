// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vars

import (
	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/closure"
)

// prim returns the primitive variable at idx
func (o *Variable) prim(fcn string, idx int) float64 {
	if idx < 0 {
		chk.Panic("%s: %s variables have no such primitive variable", fcn, o.Kind)
	}
	o.checkFresh(fcn)
	return o.Primitive[idx]
}

// vec returns n primitive variables starting at idx
func (o *Variable) vec(fcn string, idx, n int) []float64 {
	if idx < 0 {
		chk.Panic("%s: %s variables have no such primitive variables", fcn, o.Kind)
	}
	o.checkFresh(fcn)
	return o.Primitive[idx : idx+n]
}

// GetDensity returns the density
func (o *Variable) GetDensity() float64 { return o.prim("GetDensity", o.Lay.Rho) }

// GetPressure returns the pressure
func (o *Variable) GetPressure() float64 { return o.prim("GetPressure", o.Lay.P) }

// GetTemperature returns the (translational-rotational) temperature
func (o *Variable) GetTemperature() float64 { return o.prim("GetTemperature", o.Lay.T) }

// GetTemperatureVe returns the vibrational-electronic temperature
func (o *Variable) GetTemperatureVe() float64 { return o.prim("GetTemperatureVe", o.Lay.Tve) }

// GetSoundSpeed returns the speed of sound
func (o *Variable) GetSoundSpeed() float64 { return o.prim("GetSoundSpeed", o.Lay.C) }

// GetEnthalpy returns the specific total enthalpy
func (o *Variable) GetEnthalpy() float64 { return o.prim("GetEnthalpy", o.Lay.H) }

// GetLaminarViscosity returns the laminar viscosity
func (o *Variable) GetLaminarViscosity() float64 { return o.prim("GetLaminarViscosity", o.Lay.Mu) }

// GetThermalConductivity returns the thermal conductivity
func (o *Variable) GetThermalConductivity() float64 { return o.prim("GetThermalConductivity", o.Lay.K) }

// GetSpecificHeatCp returns the specific heat at constant pressure
func (o *Variable) GetSpecificHeatCp() float64 { return o.prim("GetSpecificHeatCp", o.Lay.Cp) }

// GetBetaInc2 returns the artificial compressibility β²
func (o *Variable) GetBetaInc2() float64 { return o.prim("GetBetaInc2", o.Lay.Beta2) }

// GetRhoCvtr returns the translational-rotational heat capacity per unit volume
func (o *Variable) GetRhoCvtr() float64 { return o.prim("GetRhoCvtr", o.Lay.RhoCvtr) }

// GetRhoCvve returns the vibrational-electronic heat capacity per unit volume
func (o *Variable) GetRhoCvve() float64 { return o.prim("GetRhoCvve", o.Lay.RhoCvve) }

// GetPotential returns the velocity potential
func (o *Variable) GetPotential() float64 { return o.prim("GetPotential", o.Lay.Phi) }

// GetSpeciesDensity returns the density of species s
func (o *Variable) GetSpeciesDensity(s int) float64 {
	return o.vec("GetSpeciesDensity", o.Lay.Species, len(o.Cfg.Species))[s]
}

// GetEnergy returns the specific total energy of compressible flows
func (o *Variable) GetEnergy() float64 {
	if o.Tag != closure.CompressibleFlow {
		chk.Panic("GetEnergy: %s variables have no total energy", o.Kind)
	}
	return o.Solution[o.Sizes.Nvar-1-o.nEve()] / o.GetDensity()
}

// nEve returns 1 if the last unknown is the vibrational-electronic energy
func (o *Variable) nEve() int {
	if o.Lay.Tve >= 0 {
		return 1
	}
	return 0
}

// velocity ////////////////////////////////////////////////////////////////////////////////////

// GetVelocity returns one velocity component
func (o *Variable) GetVelocity(d int) float64 { return o.vec("GetVelocity", o.Lay.Vel, o.Ndim)[d] }

// GetVelocityVec returns the velocity; the slice refers to the primitive array
func (o *Variable) GetVelocityVec() []float64 { return o.vec("GetVelocityVec", o.Lay.Vel, o.Ndim) }

// GetVelocity2 returns the squared velocity magnitude
func (o *Variable) GetVelocity2() (v2 float64) {
	for _, v := range o.GetVelocityVec() {
		v2 += v * v
	}
	return
}

// GetProjVel returns the velocity projected on the (not necessarily unit) vector n
func (o *Variable) GetProjVel(n []float64) (vn float64) {
	for d, v := range o.GetVelocityVec() {
		vn += v * n[d]
	}
	return
}

// eddy viscosity //////////////////////////////////////////////////////////////////////////////

// SetEddyViscosity sets the eddy viscosity. Flow variables use it from the next
// reconstruction on
func (o *Variable) SetEddyViscosity(muT float64) {
	if o.Diag != nil {
		o.Diag.MuT = muT
		return
	}
	o.In.MuT = muT
	if o.Lay.MuT >= 0 {
		o.Primitive[o.Lay.MuT] = muT
	}
}

// GetEddyViscosity returns the eddy viscosity
func (o *Variable) GetEddyViscosity() float64 {
	if o.Diag != nil {
		return o.Diag.MuT
	}
	return o.prim("GetEddyViscosity", o.Lay.MuT)
}

// SetTurbKineticEnergy sets the turbulent kinetic energy used by the next reconstruction
func (o *Variable) SetTurbKineticEnergy(ke float64) { o.In.Ke = ke }

// SetWallDist sets the distance to the nearest wall
func (o *Variable) SetWallDist(dist float64) {
	o.In.Dist = dist
	if o.Diag != nil {
		o.Diag.WallDist = dist
	}
}

// GetWallDist returns the distance to the nearest wall
func (o *Variable) GetWallDist() float64 { return o.In.Dist }

// secondary variables /////////////////////////////////////////////////////////////////////////

// sec returns the secondary variable i
func (o *Variable) sec(fcn string, i int) float64 {
	if i >= len(o.Secondary) {
		chk.Panic("%s: %s variables have no such secondary variable", fcn, o.Kind)
	}
	return o.Secondary[i]
}

// GetdPdrhoE returns ∂p/∂ρ|e
func (o *Variable) GetdPdrhoE() float64 { return o.sec("GetdPdrhoE", 0) }

// GetdPdeRho returns ∂p/∂e|ρ
func (o *Variable) GetdPdeRho() float64 { return o.sec("GetdPdeRho", 1) }

// GetdTdrhoE returns ∂T/∂ρ|e
func (o *Variable) GetdTdrhoE() float64 { return o.sec("GetdTdrhoE", 2) }

// GetdTdeRho returns ∂T/∂e|ρ
func (o *Variable) GetdTdeRho() float64 { return o.sec("GetdTdeRho", 3) }

// GetdmudrhoT returns ∂μ/∂ρ|T
func (o *Variable) GetdmudrhoT() float64 { return o.sec("GetdmudrhoT", 4) }

// GetdmudTRho returns ∂μ/∂T|ρ
func (o *Variable) GetdmudTRho() float64 { return o.sec("GetdmudTRho", 5) }

// GetdktdrhoT returns ∂κ/∂ρ|T
func (o *Variable) GetdktdrhoT() float64 { return o.sec("GetdktdrhoT", 6) }

// GetdktdTRho returns ∂κ/∂T|ρ
func (o *Variable) GetdktdTRho() float64 { return o.sec("GetdktdTRho", 7) }
