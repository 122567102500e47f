// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package closure

import "github.com/jholland1/gofv/inp"

// Potential implements the closure of potential flow variables
//   U    = [φ]
//   prim = [φ, ∇φ]
// The velocity ∇φ is taken from Inputs.Grad; it is zero when no gradient is supplied
type Potential struct {
	ndim int
	lay  Layout
}

// Wave implements the closure of the scalar wave equation written as a first order system.
// Primitive and conservative variables coincide
//   U = prim = [u, ∂u/∂t]
type Wave struct {
	ndim int
}

// Heat implements the closure of heat conduction. Primitive and conservative variables
// coincide and the temperature must be positive
//   U = prim = [T]
type Heat struct {
	ndim int
	lay  Layout
}

// Elastic implements the (identity) closure of structural displacements
//   U = prim = [u]
type Elastic struct {
	ndim int
}

// add closures to factory
func init() {
	register("potential", func() Closure { return new(Potential) })
	register("wave", func() Closure { return new(Wave) })
	register("heat", func() Closure { return new(Heat) })
	register("fea", func() Closure { return new(Elastic) })
}

// potential ///////////////////////////////////////////////////////////////////////////////////

// Init initialises closure
func (o *Potential) Init(ndim int, cfg *inp.Config) (err error) {
	o.ndim = ndim
	o.lay = NoLayout()
	o.lay.Phi = 0
	o.lay.Vel = 1
	return
}

// Tag returns the classification
func (o *Potential) Tag() Tag { return Scalar }

// Sizes returns variable counts
func (o *Potential) Sizes() Sizes {
	return Sizes{Nvar: 1, Nprim: 1 + o.ndim, NprimGrad: 1}
}

// Layout returns positions of named primitive quantities
func (o *Potential) Layout() Layout { return o.lay }

// Reconstruct computes primitive variables
func (o *Potential) Reconstruct(prim, U []float64, in *Inputs) bool {
	if !finite(U) {
		return false
	}
	prim[0] = U[0]
	for d := 0; d < o.ndim; d++ {
		prim[1+d] = 0
		if in != nil && len(in.Grad) > 0 {
			prim[1+d] = in.Grad[0][d]
		}
	}
	return finite(prim[:1+o.ndim])
}

// wave ////////////////////////////////////////////////////////////////////////////////////////

// Init initialises closure
func (o *Wave) Init(ndim int, cfg *inp.Config) (err error) {
	o.ndim = ndim
	return
}

// Tag returns the classification
func (o *Wave) Tag() Tag { return Scalar }

// Sizes returns variable counts
func (o *Wave) Sizes() Sizes { return Sizes{Nvar: 2, Nprim: 2, NprimGrad: 2} }

// Layout returns positions of named primitive quantities
func (o *Wave) Layout() Layout { return NoLayout() }

// Reconstruct copies the unknowns
func (o *Wave) Reconstruct(prim, U []float64, in *Inputs) bool {
	if !finite(U) {
		return false
	}
	copy(prim, U[:2])
	return true
}

// heat ////////////////////////////////////////////////////////////////////////////////////////

// Init initialises closure
func (o *Heat) Init(ndim int, cfg *inp.Config) (err error) {
	o.ndim = ndim
	o.lay = NoLayout()
	o.lay.T = 0
	return
}

// Tag returns the classification
func (o *Heat) Tag() Tag { return Scalar }

// Sizes returns variable counts
func (o *Heat) Sizes() Sizes { return Sizes{Nvar: 1, Nprim: 1, NprimGrad: 1} }

// Layout returns positions of named primitive quantities
func (o *Heat) Layout() Layout { return o.lay }

// Reconstruct copies the temperature
func (o *Heat) Reconstruct(prim, U []float64, in *Inputs) bool {
	if !(U[0] > 0) || !finite(U[:1]) {
		return false
	}
	prim[0] = U[0]
	return true
}

// elastic /////////////////////////////////////////////////////////////////////////////////////

// Init initialises closure
func (o *Elastic) Init(ndim int, cfg *inp.Config) (err error) {
	o.ndim = ndim
	return
}

// Tag returns the classification
func (o *Elastic) Tag() Tag { return Structural }

// Sizes returns variable counts
func (o *Elastic) Sizes() Sizes { return Sizes{Nvar: o.ndim, Nprim: o.ndim} }

// Layout returns positions of named primitive quantities
func (o *Elastic) Layout() Layout { return NoLayout() }

// Reconstruct copies the displacements. Structural states are always admissible
func (o *Elastic) Reconstruct(prim, U []float64, in *Inputs) bool {
	copy(prim, U[:o.ndim])
	return true
}
