// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/inp"
)

// LinElast implements isotropic linear elasticity
type LinElast struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient

	// derived
	Ndim int     // space dimension
	L    float64 // Lamé's λ
	G    float64 // shear modulus
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(ndim int, prms *inp.StructData) (err error) {
	if !(prms.E > 0) {
		return chk.Err("Young's modulus must be positive. %g is invalid", prms.E)
	}
	if prms.Nu <= -1 || prms.Nu >= 0.5 {
		return chk.Err("Poisson's coefficient must be in (-1, 0.5). %g is invalid", prms.Nu)
	}
	o.Ndim, o.E, o.Nu = ndim, prms.E, prms.Nu
	o.L = o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	return
}

// Update computes stresses for given strains
func (o *LinElast) Update(sig, eps []float64) {
	if o.Ndim == 2 {
		c := o.E / (1.0 - o.Nu*o.Nu)
		sig[0] = c * (eps[0] + o.Nu*eps[1])
		sig[1] = c * (o.Nu*eps[0] + eps[1])
		sig[2] = o.G * eps[2]
		return
	}
	tr := eps[0] + eps[1] + eps[2]
	for i := 0; i < 3; i++ {
		sig[i] = o.L*tr + 2.0*o.G*eps[i]
		sig[3+i] = o.G * eps[3+i]
	}
}

// CalcD computes D = dσ/dε
func (o *LinElast) CalcD(D [][]float64) {
	for i := range D {
		for j := range D[i] {
			D[i][j] = 0
		}
	}
	if o.Ndim == 2 {
		c := o.E / (1.0 - o.Nu*o.Nu)
		D[0][0], D[0][1] = c, c*o.Nu
		D[1][0], D[1][1] = c*o.Nu, c
		D[2][2] = o.G
		return
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			D[i][j] = o.L
		}
		D[i][i] += 2.0 * o.G
		D[3+i][3+i] = o.G
	}
}
