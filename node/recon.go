// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Recon holds gradient, limiter and bounds of one set of variables for second-order
// reconstruction. The bounds are set once per sweep from the neighbours' extrema;
// Min[v] ≤ value[v] ≤ Max[v] is the caller's responsibility.
type Recon struct {
	Grad [][]float64 // [n][ndim] gradient
	Lim  []float64   // [n] limiter
	Max  []float64   // [n] maximum among neighbours
	Min  []float64   // [n] minimum among neighbours
}

// NewRecon allocates a new Recon for n variables
func NewRecon(ndim, n int) (o *Recon) {
	o = new(Recon)
	o.Alloc(ndim, n)
	return
}

// Alloc allocates arrays
func (o *Recon) Alloc(ndim, n int) {
	o.Grad = utl.Alloc(n, ndim)
	o.Lim = make([]float64, n)
	o.Max = make([]float64, n)
	o.Min = make([]float64, n)
}

// Nvars returns the number of variables
func (o *Recon) Nvars() int { return len(o.Lim) }

// Set copies another Recon of the same size into this one
func (o *Recon) Set(r *Recon) {
	for i := range o.Grad {
		copy(o.Grad[i], r.Grad[i])
	}
	copy(o.Lim, r.Lim)
	copy(o.Max, r.Max)
	copy(o.Min, r.Min)
}

// SetGradientZero zeroes the whole gradient
func (o *Recon) SetGradientZero() {
	for i := range o.Grad {
		for j := range o.Grad[i] {
			o.Grad[i][j] = 0
		}
	}
}

// SetGradientZeroVar zeroes the gradient of one variable
func (o *Recon) SetGradientZeroVar(v int) {
	checkIndex("SetGradientZeroVar", v, len(o.Grad))
	for j := range o.Grad[v] {
		o.Grad[v][j] = 0
	}
}

// SetGradientAll copies a full gradient matrix
func (o *Recon) SetGradientAll(grad [][]float64) {
	checkLen("SetGradientAll", len(grad), len(o.Grad))
	for i := range o.Grad {
		copy(o.Grad[i], grad[i])
	}
}

// SetGradient sets one component of the gradient
func (o *Recon) SetGradient(v, d int, val float64) {
	checkIndex2("SetGradient", o.Grad, v, d)
	o.Grad[v][d] = val
}

// AddGradient adds to one component of the gradient
func (o *Recon) AddGradient(v, d int, val float64) {
	checkIndex2("AddGradient", o.Grad, v, d)
	o.Grad[v][d] += val
}

// SubtractGradient subtracts from one component of the gradient
func (o *Recon) SubtractGradient(v, d int, val float64) {
	checkIndex2("SubtractGradient", o.Grad, v, d)
	o.Grad[v][d] -= val
}

// Gradient returns one component of the gradient
func (o *Recon) Gradient(v, d int) float64 {
	checkIndex2("Gradient", o.Grad, v, d)
	return o.Grad[v][d]
}

// GradientOf returns the gradient of one variable (shared slice)
func (o *Recon) GradientOf(v int) []float64 {
	checkIndex("GradientOf", v, len(o.Grad))
	return o.Grad[v]
}

// SetLimiter sets the limiter of one variable
func (o *Recon) SetLimiter(v int, val float64) {
	checkIndex("SetLimiter", v, len(o.Lim))
	o.Lim[v] = val
}

// Limiter returns the limiter of one variable
func (o *Recon) Limiter(v int) float64 {
	checkIndex("Limiter", v, len(o.Lim))
	return o.Lim[v]
}

// SetLimiterAll sets all limiters to val
func (o *Recon) SetLimiterAll(val float64) {
	for i := range o.Lim {
		o.Lim[i] = val
	}
}

// SetMax sets the upper bound of one variable
func (o *Recon) SetMax(v int, val float64) {
	checkIndex("SetMax", v, len(o.Max))
	o.Max[v] = val
}

// SetMin sets the lower bound of one variable
func (o *Recon) SetMin(v int, val float64) {
	checkIndex("SetMin", v, len(o.Min))
	o.Min[v] = val
}

// GetMax returns the upper bound of one variable
func (o *Recon) GetMax(v int) float64 {
	checkIndex("GetMax", v, len(o.Max))
	return o.Max[v]
}

// GetMin returns the lower bound of one variable
func (o *Recon) GetMin(v int) float64 {
	checkIndex("GetMin", v, len(o.Min))
	return o.Min[v]
}

// ResetBounds sets Max to -∞ and Min to +∞ so that neighbour extrema can be accumulated
func (o *Recon) ResetBounds() {
	for i := range o.Max {
		o.Max[i] = math.Inf(-1)
		o.Min[i] = math.Inf(+1)
	}
}

// UpdateBounds widens the bounds of one variable to include val
func (o *Recon) UpdateBounds(v int, val float64) {
	checkIndex("UpdateBounds", v, len(o.Max))
	o.Max[v] = utl.Max(o.Max[v], val)
	o.Min[v] = utl.Min(o.Min[v], val)
}
