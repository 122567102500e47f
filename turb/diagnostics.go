// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package turb implements the diagnostics of turbulence variables and the field-inversion
// (machine learning) correction of turbulence source terms
package turb

// FeatureNames holds the names of the quantities returned by Diagnostics.Features
var FeatureNames = []string{
	"production",
	"destruction",
	"stilde_sa",
	"chi_sa",
	"delta_criterion",
	"fw_sa",
	"r_sa",
	"strain_magnitude",
	"vorticity_magnitude",
	"wall_dist",
	"gamma_trans",
	"k_salsa",
	"des_fd",
	"f1",
	"f2",
	"cdkw",
	"mu_t",
}

// Diagnostics holds scalar quantities written during source term assembly. No computation is
// performed here
type Diagnostics struct {
	Production     float64 // production term
	Destruction    float64 // destruction term
	STildeSA       float64 // modified vorticity S̃ of SA
	ChiSA          float64 // χ = ν̃/ν of SA
	DeltaCriterion float64 // delta criterion
	FwSA           float64 // wall destruction function f_w of SA
	RSA            float64 // r of SA
	StrainMag      float64 // strain rate magnitude
	VorticityMag   float64 // vorticity magnitude
	WallDist       float64 // distance to the nearest wall
	GammaTrans     float64 // intermittency of transition models
	KSALSA         float64 // k of the SALSA model
	DesFd          float64 // DES shielding function
	F1             float64 // SST blending function F1
	F2             float64 // SST blending function F2
	CDkw           float64 // SST cross diffusion
	MuT            float64 // eddy viscosity
}

// Features returns the quantities in the order of FeatureNames
func (o *Diagnostics) Features() []float64 {
	return []float64{
		o.Production,
		o.Destruction,
		o.STildeSA,
		o.ChiSA,
		o.DeltaCriterion,
		o.FwSA,
		o.RSA,
		o.StrainMag,
		o.VorticityMag,
		o.WallDist,
		o.GammaTrans,
		o.KSALSA,
		o.DesFd,
		o.F1,
		o.F2,
		o.CDkw,
		o.MuT,
	}
}

// FeatureMap returns the quantities keyed by name
func (o *Diagnostics) FeatureMap() map[string]float64 {
	m := make(map[string]float64, len(FeatureNames))
	for i, v := range o.Features() {
		m[FeatureNames[i]] = v
	}
	return m
}
