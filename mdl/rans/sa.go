// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rans implements closure relations of the Reynolds-averaged turbulence models:
// Spalart-Allmaras, Menter SST and the Langtry-Menter transition model
package rans

import "math"

// SaCv1 is the Spalart-Allmaras viscous damping constant
const SaCv1 = 7.1

// SaFv1 returns the viscous damping function
//   fv1 = χ³ / (χ³ + cv1³)
func SaFv1(chi float64) float64 {
	chi3 := chi * chi * chi
	return chi3 / (chi3 + SaCv1*SaCv1*SaCv1)
}

// SaEddyViscosity returns μt = ρ ν̃ fv1(χ) with χ = ρ ν̃ / μ
func SaEddyViscosity(rho, nuTilde, mu float64) (muT, chi float64) {
	chi = rho * nuTilde / mu
	muT = rho * nuTilde * SaFv1(chi)
	return
}

// LmEffectiveIntermittency returns max(γ, γsep)
func LmEffectiveIntermittency(gamma, gammaSep float64) float64 {
	return math.Max(gamma, gammaSep)
}
