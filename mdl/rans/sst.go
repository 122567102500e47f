// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rans

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// eps is the small number added to denominators of the blending arguments
const eps = 1e-16

// Sst holds the constants of the Menter SST model. Set 1 is the inner (k-ω) set and set 2 the
// outer (k-ε) set
type Sst struct {
	SigmaK1  float64 // σk1
	SigmaK2  float64 // σk2
	SigmaOm1 float64 // σω1
	SigmaOm2 float64 // σω2
	Beta1    float64 // β1
	Beta2    float64 // β2
	BetaStar float64 // β*
	A1       float64 // a1
}

// NewSst returns the SST constants from {σk1, σk2, σω1, σω2, β1, β2, β*, a1}
func NewSst(c []float64) (o *Sst, err error) {
	if len(c) != 8 {
		return nil, chk.Err("SST requires 8 constants; %d were given", len(c))
	}
	o = &Sst{c[0], c[1], c[2], c[3], c[4], c[5], c[6], c[7]}
	return
}

// Blending holds the SST blending functions
type Blending struct {
	F1   float64 // blends k-ω (F1=1) and k-ε (F1=0)
	F2   float64 // activates the shear stress limiter
	CDkw float64 // positive part of the cross-diffusion term
}

// Blend computes the blending functions
//  Input:
//   k, omega -- turbulent kinetic energy and specific dissipation
//   gradK, gradOm -- gradients of k and ω [ndim]
//   rho, mu -- density and laminar viscosity
//   dist -- distance to the nearest wall
func (o *Sst) Blend(k, omega float64, gradK, gradOm []float64, rho, mu, dist float64) (b Blending) {
	dot := 0.0
	for i := range gradK {
		dot += gradK[i] * gradOm[i]
	}
	b.CDkw = math.Max(2.0*rho*o.SigmaOm2/omega*dot, 1e-20)
	arg2A := math.Sqrt(k) / (o.BetaStar*omega*dist + eps*eps)
	arg2B := 500.0 * mu / (rho*dist*dist*omega + eps*eps)
	arg2 := math.Max(2.0*arg2A, arg2B)
	b.F2 = math.Tanh(arg2 * arg2)
	arg1 := math.Min(math.Max(arg2A, arg2B), 4.0*rho*o.SigmaOm2*k/(b.CDkw*dist*dist+eps*eps))
	b.F1 = math.Tanh(math.Pow(arg1, 4.0))
	return
}

// SigmaK returns the blended σk
func (o *Sst) SigmaK(F1 float64) float64 { return F1*o.SigmaK1 + (1-F1)*o.SigmaK2 }

// SigmaOm returns the blended σω
func (o *Sst) SigmaOm(F1 float64) float64 { return F1*o.SigmaOm1 + (1-F1)*o.SigmaOm2 }

// Beta returns the blended β
func (o *Sst) Beta(F1 float64) float64 { return F1*o.Beta1 + (1-F1)*o.Beta2 }

// EddyViscosity returns the limited eddy viscosity
//   μt = a1 ρ k / max(a1 ω, S F2)
// where S is the strain rate magnitude
func (o *Sst) EddyViscosity(rho, k, omega, strainMag, F2 float64) float64 {
	return o.A1 * rho * k / math.Max(o.A1*omega, strainMag*F2)
}
