// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vars

import (
	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/closure"
	"github.com/jholland1/gofv/mdl/rans"
)

// model returns the turbulence closure
func (o *Variable) model(fcn string) *closure.Rans {
	m, ok := o.Clo.(*closure.Rans)
	if !ok {
		chk.Panic("%s: %s variables are not turbulence variables", fcn, o.Kind)
	}
	return m
}

// SetBlendingFunc computes the SST blending functions from k, ω and their gradients
//  Input:
//   mu   -- laminar viscosity
//   dist -- distance to the nearest wall
//   rho  -- density
func (o *Variable) SetBlendingFunc(mu, dist, rho float64) {
	m := o.model("SetBlendingFunc")
	if m.Sst == nil {
		chk.Panic("SetBlendingFunc: %s variables have no blending functions", o.Kind)
	}
	b := m.Sst.Blend(o.Solution[0], o.Solution[1], o.Grad[0], o.Grad[1], rho, mu, dist)
	o.Diag.F1, o.Diag.F2, o.Diag.CDkw = b.F1, b.F2, b.CDkw
	o.SetWallDist(dist)
}

// GetF1Blending returns the SST blending function F1
func (o *Variable) GetF1Blending() float64 { return o.Diag.F1 }

// GetF2Blending returns the SST blending function F2
func (o *Variable) GetF2Blending() float64 { return o.Diag.F2 }

// GetCrossDiff returns the positive part of the SST cross diffusion
func (o *Variable) GetCrossDiff() float64 { return o.Diag.CDkw }

// UpdateEddyViscosity computes and stores the eddy viscosity
//  sa, saml: μt = ρ ν̃ fv1(ρ ν̃/μ)
//  sst:      μt = a1 ρ k / max(a1 ω, S F2)
//  Input:
//   rho, mu   -- density and laminar viscosity of the flow
//   strainMag -- strain rate magnitude of the flow (sst only)
func (o *Variable) UpdateEddyViscosity(rho, mu, strainMag float64) (muT float64, err error) {
	m := o.model("UpdateEddyViscosity")
	switch m.Model {
	case "sa", "saml":
		if !(mu > 0) {
			return 0, chk.Err("laminar viscosity must be positive. %g is invalid", mu)
		}
		muT, o.Diag.ChiSA = rans.SaEddyViscosity(rho, o.Solution[0], mu)
	case "sst":
		o.Diag.StrainMag = strainMag
		muT = m.Sst.EddyViscosity(rho, o.Solution[0], o.Solution[1], strainMag, o.Diag.F2)
	default:
		return 0, chk.Err("%s variables do not define an eddy viscosity", o.Kind)
	}
	o.Diag.MuT = muT
	return
}

// GetIntermittencyEff returns the effective intermittency max(γ, γsep) of transition
// variables
func (o *Variable) GetIntermittencyEff() float64 {
	if o.model("GetIntermittencyEff").Model != "lm" {
		chk.Panic("GetIntermittencyEff: %s variables have no intermittency", o.Kind)
	}
	o.Diag.GammaTrans = rans.LmEffectiveIntermittency(o.Solution[0], o.Cfg.Turb.GammaSep)
	return o.Diag.GammaTrans
}
