// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vars

import (
	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/closure"
)

// compressible checks that the variable belongs to a compressible flow
func (o *Variable) compressible(fcn string) {
	if o.Tag != closure.CompressibleFlow {
		chk.Panic("%s: %s variables are not compressible", fcn, o.Kind)
	}
}

// SetPreconditionerBeta sets the low-Mach preconditioner parameter
func (o *Variable) SetPreconditionerBeta(val float64) {
	o.compressible("SetPreconditionerBeta")
	o.PrecondBeta = val
}

// GetPreconditionerBeta returns the low-Mach preconditioner parameter
func (o *Variable) GetPreconditionerBeta() float64 {
	o.compressible("GetPreconditionerBeta")
	return o.PrecondBeta
}

// SetWindGust sets the gust velocity
func (o *Variable) SetWindGust(vel []float64) {
	o.compressible("SetWindGust")
	if len(vel) != o.Ndim {
		chk.Panic("SetWindGust: gust velocity must have %d components. %d were given", o.Ndim, len(vel))
	}
	copy(o.WindGust, vel)
}

// GetWindGust returns the gust velocity; the slice refers to internal storage
func (o *Variable) GetWindGust() []float64 {
	o.compressible("GetWindGust")
	return o.WindGust
}

// SetWindGustDer sets the gust derivatives: ndim spatial derivatives followed by the time
// derivative
func (o *Variable) SetWindGustDer(der []float64) {
	o.compressible("SetWindGustDer")
	if len(der) != o.Ndim+1 {
		chk.Panic("SetWindGustDer: gust derivatives must have %d components. %d were given", o.Ndim+1, len(der))
	}
	copy(o.WindGustDer, der)
}

// GetWindGustDer returns the gust derivatives; the slice refers to internal storage
func (o *Variable) GetWindGustDer() []float64 {
	o.compressible("GetWindGustDer")
	return o.WindGustDer
}

// SetHarmonicBalanceSource sets one component of the harmonic balance source term
func (o *Variable) SetHarmonicBalanceSource(v int, val float64) {
	o.compressible("SetHarmonicBalanceSource")
	o.HbSource[v] = val
}

// GetHarmonicBalanceSource returns one component of the harmonic balance source term
func (o *Variable) GetHarmonicBalanceSource(v int) float64 {
	o.compressible("GetHarmonicBalanceSource")
	return o.HbSource[v]
}

// SetEnergyResTruncErrorZero zeroes the total energy component of the truncation error. For
// two-temperature flows this is the component before the vibrational-electronic energy
func (o *Variable) SetEnergyResTruncErrorZero() {
	if o.Tag != closure.CompressibleFlow {
		o.State.SetEnergyResTruncErrorZero()
		return
	}
	o.TruncError[o.Sizes.Nvar-1-o.nEve()] = 0
}

// SetVelResTruncErrorZero zeroes the momentum components of the truncation error. Momentum
// follows the species densities of two-temperature flows
func (o *Variable) SetVelResTruncErrorZero() {
	if o.Tag != closure.CompressibleFlow {
		o.State.SetVelResTruncErrorZero()
		return
	}
	start := o.Sizes.Nvar - o.Ndim - 1 - o.nEve()
	for d := 0; d < o.Ndim; d++ {
		o.TruncError[start+d] = 0
	}
}
