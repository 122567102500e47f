// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsi

import "github.com/cpmech/gosl/chk"

// accumulator identifies a load residual
type accumulator int

const (
	surfaceLoad accumulator = iota
	bodyForces
)

func (o accumulator) String() string {
	if o == surfaceLoad {
		return "surface load"
	}
	return "body force"
}

// Pass accumulates one load residual during a coupling iteration. Beginning a pass clears the
// residual; Commit publishes the accumulated values. Only one pass per residual may be open
type Pass struct {
	s    *Structure  // owner
	kind accumulator // residual
	acc  []float64   // accumulated values
	done bool        // pass was committed or aborted
}

// BeginSurfaceLoad clears the surface load residual and opens an accumulation pass
func (o *Structure) BeginSurfaceLoad() *Pass { return o.begin(surfaceLoad) }

// BeginBodyForces clears the body force residual and opens an accumulation pass
func (o *Structure) BeginBodyForces() *Pass { return o.begin(bodyForces) }

// Add adds a contribution
func (o *Pass) Add(vals []float64) {
	if o.done {
		chk.Panic("cannot add to a closed %s pass", o.kind)
	}
	addTo(o.acc, vals)
}

// Commit publishes the accumulated values into the residual and closes the pass
func (o *Pass) Commit() {
	if o.done {
		chk.Panic("%s pass was already closed", o.kind)
	}
	copy(o.s.target(o.kind), o.acc)
	o.close()
}

// Abort closes the pass without publishing; the residual remains cleared
func (o *Pass) Abort() {
	if o.done {
		chk.Panic("%s pass was already closed", o.kind)
	}
	o.close()
}

func (o *Pass) close() {
	o.done = true
	o.s.passes[o.kind] = nil
}

func (o *Structure) begin(kind accumulator) *Pass {
	if o.passes[kind] != nil {
		chk.Panic("%s pass is already open", kind)
	}
	zero(o.target(kind))
	acc := o.accums[kind]
	zero(acc)
	p := &Pass{s: o, kind: kind, acc: acc}
	o.passes[kind] = p
	return p
}

func (o *Structure) target(kind accumulator) []float64 {
	if kind == surfaceLoad {
		return o.SurfaceLoadRes
	}
	return o.BodyForceRes
}
