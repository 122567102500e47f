// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsi

import "github.com/cpmech/gosl/utl"

// Boundary holds the traction applied to a boundary point by each boundary element sharing it
type Boundary struct {
	Nvar     int         // number of components
	NelBound int         // number of boundary elements
	Traction [][]float64 // [nvar][nelbound] tractions
}

// NewBoundary returns a new boundary extension
func NewBoundary(nvar, nelBound int) (o *Boundary) {
	o = new(Boundary)
	o.Nvar = nvar
	o.NelBound = nelBound
	o.Traction = utl.Alloc(nvar, nelBound)
	return
}

// SetTraction sets the traction component v of element e
func (o *Boundary) SetTraction(v, e int, val float64) { o.Traction[v][e] = val }

// AddTraction adds to the traction component v of element e
func (o *Boundary) AddTraction(v, e int, val float64) { o.Traction[v][e] += val }

// GetTraction returns the traction component v of element e
func (o *Boundary) GetTraction(v, e int) float64 { return o.Traction[v][e] }

// ClearTraction zeroes all tractions
func (o *Boundary) ClearTraction() {
	for _, row := range o.Traction {
		zero(row)
	}
}

// TotalTraction returns the traction component v summed over all elements
func (o *Boundary) TotalTraction(v int) (sum float64) {
	for _, t := range o.Traction[v] {
		sum += t
	}
	return
}
