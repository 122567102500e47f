// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adjoint

import (
	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/node"
)

// slot holds the adjoint image of one history array and its tape membership
type slot struct {
	adj  []float64 // adjoint values
	tape Tape      // tape the array is registered on; nil if not registered
	ids  []ID      // identifiers on tape
}

// Ledger decorates a point state with reverse-mode bookkeeping
type Ledger struct {
	State               *node.State // decorated state
	Sensitivity         []float64   // [ndim] shape sensitivity
	SolutionDirect      []float64   // [nvar] snapshot of the primal solution
	DualTimeDerivative  []float64   // [nvar] dual time coefficient of time n
	DualTimeDerivativeN []float64   // [nvar] dual time coefficient of time n-1

	// adjoint images
	sol   slot // Solution
	solN  slot // SolutionTimeN
	solN1 slot // SolutionTimeN1
}

// NewLedger returns a new ledger attached to st
func NewLedger(st *node.State) (o *Ledger) {
	o = new(Ledger)
	o.State = st
	o.Sensitivity = make([]float64, st.Ndim)
	o.SolutionDirect = make([]float64, st.Nvar)
	o.DualTimeDerivative = make([]float64, st.Nvar)
	o.DualTimeDerivativeN = make([]float64, st.Nvar)
	o.sol.adj = make([]float64, st.Nvar)
	o.solN.adj = make([]float64, st.Nvar)
	o.solN1.adj = make([]float64, st.Nvar)
	return
}

// registration ////////////////////////////////////////////////////////////////////////////////

// RegisterSolution marks Solution as leaves (isInput) or dependent values on tape
func (o *Ledger) RegisterSolution(tape Tape, isInput bool) {
	o.sol.register(tape, o.State.Solution, isInput)
}

// RegisterSolutionTimeN marks SolutionTimeN as leaves on tape
func (o *Ledger) RegisterSolutionTimeN(tape Tape) {
	o.solN.register(tape, o.State.SolutionTimeN, true)
}

// RegisterSolutionTimeN1 marks SolutionTimeN1 as leaves on tape
func (o *Ledger) RegisterSolutionTimeN1(tape Tape) {
	o.solN1.register(tape, o.State.SolutionTimeN1, true)
}

// Registered tells whether Solution is registered on a tape
func (o *Ledger) Registered() bool { return o.sol.tape != nil }

// Unregister forgets all tape memberships. Adjoint images are kept
func (o *Ledger) Unregister() {
	o.sol.tape, o.sol.ids = nil, nil
	o.solN.tape, o.solN.ids = nil, nil
	o.solN1.tape, o.solN1.ids = nil, nil
}

// adjoint exchange ////////////////////////////////////////////////////////////////////////////

// SetAdjointSolution sets the adjoints of Solution from buf
func (o *Ledger) SetAdjointSolution(buf []float64) { o.sol.set("SetAdjointSolution", buf) }

// AdjointSolution copies the adjoints of Solution into buf
func (o *Ledger) AdjointSolution(buf []float64) { o.sol.get("AdjointSolution", buf) }

// SetAdjointSolutionTimeN sets the adjoints of SolutionTimeN from buf
func (o *Ledger) SetAdjointSolutionTimeN(buf []float64) { o.solN.set("SetAdjointSolutionTimeN", buf) }

// AdjointSolutionTimeN copies the adjoints of SolutionTimeN into buf
func (o *Ledger) AdjointSolutionTimeN(buf []float64) { o.solN.get("AdjointSolutionTimeN", buf) }

// SetAdjointSolutionTimeN1 sets the adjoints of SolutionTimeN1 from buf
func (o *Ledger) SetAdjointSolutionTimeN1(buf []float64) {
	o.solN1.set("SetAdjointSolutionTimeN1", buf)
}

// AdjointSolutionTimeN1 copies the adjoints of SolutionTimeN1 into buf
func (o *Ledger) AdjointSolutionTimeN1(buf []float64) { o.solN1.get("AdjointSolutionTimeN1", buf) }

// GetAdjointSolution returns the adjoint of one unknown
func (o *Ledger) GetAdjointSolution(v int) float64 {
	if o.sol.tape != nil {
		return o.sol.tape.Gradient(o.sol.ids[v])
	}
	return o.sol.adj[v]
}

// primal snapshot, sensitivities and dual time ////////////////////////////////////////////////

// SetSolutionDirect stores a snapshot of the primal solution
func (o *Ledger) SetSolutionDirect(vals []float64) {
	if len(vals) != len(o.SolutionDirect) {
		chk.Panic("SetSolutionDirect: length %d differs from nvar=%d", len(vals), len(o.SolutionDirect))
	}
	copy(o.SolutionDirect, vals)
}

// GetSolutionDirect returns one component of the primal snapshot
func (o *Ledger) GetSolutionDirect(v int) float64 { return o.SolutionDirect[v] }

// SetSensitivity sets one component of the sensitivity
func (o *Ledger) SetSensitivity(d int, val float64) { o.Sensitivity[d] = val }

// GetSensitivity returns one component of the sensitivity
func (o *Ledger) GetSensitivity(d int) float64 { return o.Sensitivity[d] }

// SetDualTime sets the dual time coefficients of times n and n-1
func (o *Ledger) SetDualTime(deriv, derivN []float64) {
	copy(o.DualTimeDerivative, deriv)
	copy(o.DualTimeDerivativeN, derivN)
}

// slot ////////////////////////////////////////////////////////////////////////////////////////

func (o *slot) register(tape Tape, vals []float64, isInput bool) {
	o.tape = tape
	o.ids = make([]ID, len(vals))
	for i, x := range vals {
		if isInput {
			o.ids[i] = tape.RegisterInput(x)
		} else {
			o.ids[i] = tape.RegisterOutput(x)
		}
	}
}

func (o *slot) set(fcn string, buf []float64) {
	if len(buf) < len(o.adj) {
		chk.Panic("%s: buffer has %d entries; %d are required", fcn, len(buf), len(o.adj))
	}
	copy(o.adj, buf)
	if o.tape != nil {
		for i, id := range o.ids {
			o.tape.SetGradient(id, buf[i])
		}
	}
}

func (o *slot) get(fcn string, buf []float64) {
	if len(buf) < len(o.adj) {
		chk.Panic("%s: buffer has %d entries; %d are required", fcn, len(buf), len(o.adj))
	}
	if o.tape != nil {
		for i, id := range o.ids {
			o.adj[i] = o.tape.Gradient(id)
		}
	}
	copy(buf, o.adj)
}
