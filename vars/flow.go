// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vars

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// velGrad returns the gradient of velocity components from the primitive gradients:
// g[i][j] = ∂v_i/∂x_j
func (o *Variable) velGrad(fcn string) [][]float64 {
	if o.Lay.Vel < 0 {
		chk.Panic("%s: %s variables have no velocity", fcn, o.Kind)
	}
	return o.PrimRecon.Grad[o.Lay.Vel : o.Lay.Vel+o.Ndim]
}

// SetVorticity computes the vorticity from the gradient of primitive variables. In 2D only
// the z component is non-zero
func (o *Variable) SetVorticity() {
	g := o.velGrad("SetVorticity")
	o.Vort = [3]float64{0, 0, g[1][0] - g[0][1]}
	if o.Ndim == 3 {
		o.Vort[0] = g[2][1] - g[1][2]
		o.Vort[1] = g[0][2] - g[2][0]
	}
}

// GetVorticity returns the vorticity
func (o *Variable) GetVorticity() [3]float64 { return o.Vort }

// GetVorticityMag returns the magnitude of the vorticity
func (o *Variable) GetVorticityMag() float64 {
	return math.Sqrt(o.Vort[0]*o.Vort[0] + o.Vort[1]*o.Vort[1] + o.Vort[2]*o.Vort[2])
}

// SetStrainMag computes the magnitude of the deviatoric strain rate
//   S = sqrt(2 Sd:Sd)   Sd = ½(∇v + ∇vᵀ) - ⅓ (∇·v) I
// In 2D the out-of-plane normal component -⅓ ∇·v is included
func (o *Variable) SetStrainMag() {
	g := o.velGrad("SetStrainMag")
	div := 0.0
	for i := 0; i < o.Ndim; i++ {
		div += g[i][i]
	}
	s2 := 0.0
	for i := 0; i < o.Ndim; i++ {
		s2 += math.Pow(g[i][i]-div/3.0, 2)
		for j := i + 1; j < o.Ndim; j++ {
			s2 += 2.0 * math.Pow(0.5*(g[i][j]+g[j][i]), 2)
		}
	}
	if o.Ndim == 2 {
		s2 += math.Pow(div/3.0, 2)
	}
	o.StrainMag = math.Sqrt(2.0 * s2)
}

// GetStrainMag returns the strain rate magnitude
func (o *Variable) GetStrainMag() float64 { return o.StrainMag }
