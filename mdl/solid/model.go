// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements stress-strain models for structural points. Stresses and strains
// use Voigt notation with engineering shear strains:
//
//   2D: {xx, yy, xy}            (plane stress)
//   3D: {xx, yy, zz, xy, yz, zx}
//
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/inp"
)

// Model defines the interface for solid models
type Model interface {
	Init(ndim int, prms *inp.StructData) error // initialises model
	Update(sig, eps []float64)                 // computes stresses for given strains
	CalcD(D [][]float64)                       // computes D = dσ/dε
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
