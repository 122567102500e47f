// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turb

import "github.com/jholland1/gofv/adjoint"

// Correction holds the field-inversion factor β multiplying a turbulence source term. β is
// registered on its own tape so that d(objective)/dβ is extracted independently of the flow
// adjoint
type Correction struct {
	Beta      float64 // correction factor
	BetaGrad  float64 // gradient of β
	BetaTrain float64 // target β for training

	// adjoint
	adjBeta float64      // adjoint of β when not registered
	tape    adjoint.Tape // tape holding β; nil if not registered
	id      adjoint.ID   // identifier of β on tape
}

// NewCorrection returns a neutral correction (β = 1)
func NewCorrection() *Correction {
	return &Correction{Beta: 1, BetaTrain: 1}
}

// Apply returns the corrected term β・term
func (o *Correction) Apply(term float64) float64 { return o.Beta * term }

// RegisterBeta marks β as a leaf (isInput) or dependent value on tape
func (o *Correction) RegisterBeta(tape adjoint.Tape, isInput bool) {
	o.tape = tape
	if isInput {
		o.id = tape.RegisterInput(o.Beta)
	} else {
		o.id = tape.RegisterOutput(o.Beta)
	}
}

// Registered tells whether β is registered on a tape
func (o *Correction) Registered() bool { return o.tape != nil }

// Unregister forgets the tape membership
func (o *Correction) Unregister() { o.tape = nil }

// SetAdjointBeta sets the adjoint of β
func (o *Correction) SetAdjointBeta(val float64) {
	o.adjBeta = val
	if o.tape != nil {
		o.tape.SetGradient(o.id, val)
	}
}

// AdjointBeta returns the adjoint of β; read from the tape after the reverse sweep
func (o *Correction) AdjointBeta() float64 {
	if o.tape != nil {
		o.adjBeta = o.tape.Gradient(o.id)
	}
	return o.adjBeta
}
