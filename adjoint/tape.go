// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package adjoint implements the reverse-mode bookkeeping of point variables: registration of
// unknowns on a differentiation tape and exchange of their adjoint values
package adjoint

import "github.com/cpmech/gosl/chk"

// ID identifies a value registered on a tape
type ID int

// Tape defines the membership contract of a reverse-mode differentiation tape. Recording and
// interpreting the tape are done elsewhere
type Tape interface {
	RegisterInput(x float64) ID   // marks x as a leaf
	RegisterOutput(x float64) ID  // marks x as a dependent value
	SetGradient(id ID, g float64) // seeds the adjoint of a registered value
	Gradient(id ID) float64       // reads the adjoint of a registered value
}

// Recorder is an in-memory tape holding registered values and their adjoints
type Recorder struct {
	Name   string    // name of the tape; e.g. "flow" or "beta"
	values []float64 // registered values
	input  []bool    // value is a leaf
	grads  []float64 // adjoints
}

// NewRecorder returns a new empty tape
func NewRecorder(name string) *Recorder {
	return &Recorder{Name: name}
}

// RegisterInput marks x as a leaf
func (o *Recorder) RegisterInput(x float64) ID { return o.add(x, true) }

// RegisterOutput marks x as a dependent value
func (o *Recorder) RegisterOutput(x float64) ID { return o.add(x, false) }

// SetGradient seeds the adjoint of a registered value
func (o *Recorder) SetGradient(id ID, g float64) {
	o.check(id)
	o.grads[id] = g
}

// Gradient reads the adjoint of a registered value
func (o *Recorder) Gradient(id ID) float64 {
	o.check(id)
	return o.grads[id]
}

// Value returns the registered value
func (o *Recorder) Value(id ID) float64 {
	o.check(id)
	return o.values[id]
}

// IsInput tells whether id is a leaf
func (o *Recorder) IsInput(id ID) bool {
	o.check(id)
	return o.input[id]
}

// Len returns the number of registered values
func (o *Recorder) Len() int { return len(o.values) }

// NumInputs returns the number of leaves
func (o *Recorder) NumInputs() (n int) {
	for _, in := range o.input {
		if in {
			n++
		}
	}
	return
}

// NumOutputs returns the number of dependent values
func (o *Recorder) NumOutputs() int { return o.Len() - o.NumInputs() }

// ClearAdjoints zeroes all adjoints and keeps the registrations
func (o *Recorder) ClearAdjoints() {
	for i := range o.grads {
		o.grads[i] = 0
	}
}

// Reset removes all registrations
func (o *Recorder) Reset() {
	o.values = o.values[:0]
	o.input = o.input[:0]
	o.grads = o.grads[:0]
}

// add registers a new value
func (o *Recorder) add(x float64, input bool) ID {
	o.values = append(o.values, x)
	o.input = append(o.input, input)
	o.grads = append(o.grads, 0)
	return ID(len(o.values) - 1)
}

// check panics if id is not registered
func (o *Recorder) check(id ID) {
	if id < 0 || int(id) >= len(o.values) {
		chk.Panic("tape %q: identifier %d is not registered (%d values)", o.Name, id, len(o.values))
	}
}
