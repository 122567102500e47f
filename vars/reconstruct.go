// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vars

import (
	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/closure"
	"github.com/jholland1/gofv/node"
)

// ReconstructPrimitive computes the primitive variables from Solution. If the state is not
// admissible, NonPhysical is set, the primitive variables are replaced according to the
// fallback policy and false is returned:
//   "previous" -- primitive variables keep their values
//   "state"    -- primitive variables are set to the configured fallback state
// With Fallback.RestoreSolution, Solution is also reset to SolutionOld. In all cases the
// resulting primitive variables are considered valid for the current Solution. Under the
// "previous" policy, a variable that was never admissible has no primitive variables to keep;
// see Admitted
func (o *Variable) ReconstructPrimitive() bool {
	if o.Clo.Reconstruct(o.scratch, o.Solution, &o.In) {
		copy(o.Primitive, o.scratch)
		o.NonPhysical = false
		o.admitted = true
		o.markFresh()
		return true
	}
	o.NonPhysical = true
	if o.Cfg.Fallback.Policy == "state" {
		copy(o.Primitive, o.Cfg.Fallback.Primitive)
		o.admitted = true
	}
	if o.Cfg.Fallback.RestoreSolution {
		o.RestoreFromOld()
	}
	o.markFresh()
	return false
}

// ReconstructSecondary computes thermodynamic and transport derivatives from the primitive
// variables. An error is returned if the primitive variables never came from an admissible state
func (o *Variable) ReconstructSecondary() (err error) {
	sc, ok := o.Clo.(closure.SecondaryCloser)
	if !ok {
		return chk.Err("%s variables have no secondary variables", o.Kind)
	}
	if err = o.checkAdmitted("ReconstructSecondary"); err != nil {
		return
	}
	o.checkFresh("ReconstructSecondary")
	sc.Secondary(o.Secondary, o.Primitive)
	return
}

// Jacobians computes ∂P/∂U, ∂T/∂U and ∂Tve/∂U from the primitive variables. An error is
// returned if the primitive variables never came from an admissible state
func (o *Variable) Jacobians() (err error) {
	jc, ok := o.Clo.(closure.JacobianCloser)
	if !ok {
		return chk.Err("%s variables have no analytical Jacobians", o.Kind)
	}
	if err = o.checkAdmitted("Jacobians"); err != nil {
		return
	}
	o.checkFresh("Jacobians")
	jc.Jacobians(o.DPdU, o.DTdU, o.DTvedU, o.Primitive)
	return
}

// SetSolutionDirect stores the primal solution of an adjoint variable and computes its
// primitive variables with the primal closure. It returns false if the primal state is not
// admissible
func (o *Variable) SetSolutionDirect(direct []float64) bool {
	if o.Ledger == nil {
		chk.Panic("%s variables have no primal solution", o.Kind)
	}
	o.Ledger.SetSolutionDirect(direct)
	return o.ReconstructDirect()
}

// ReconstructDirect computes the primitive variables of the stored primal solution. They are
// left unchanged if the primal state is not admissible
func (o *Variable) ReconstructDirect() bool {
	if o.Ledger == nil {
		chk.Panic("%s variables have no primal solution", o.Kind)
	}
	primal := o.Clo.(closure.PrimalCloser).Primal()
	if !primal.Reconstruct(o.dscratch, o.Ledger.SolutionDirect, &o.In) {
		return false
	}
	copy(o.PrimalPrimitive, o.dscratch)
	return true
}

// Stale tells whether Solution changed after the last reconstruction of primitive variables
func (o *Variable) Stale() bool {
	return !o.primDone || o.primGen != o.Generation()
}

// Admitted tells whether the primitive variables were ever computed from an admissible state
// or set to the configured fallback state
func (o *Variable) Admitted() bool {
	return o.admitted
}

func (o *Variable) checkAdmitted(fcn string) error {
	if !o.admitted {
		return chk.Err("%s: %s variables have no admissible primitive state; solution = %v", fcn, o.Kind, o.Solution)
	}
	return nil
}

// markFresh records that the primitive variables belong to the current Solution
func (o *Variable) markFresh() {
	o.primGen = o.Generation()
	o.primDone = true
}

// checkFresh panics in debug builds if the primitive variables are stale
func (o *Variable) checkFresh(fcn string) {
	if node.Debug && o.Stale() {
		chk.Panic("%s: primitive variables of %s are stale; call ReconstructPrimitive after changing Solution", fcn, o.Kind)
	}
}
