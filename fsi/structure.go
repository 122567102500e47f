// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fsi implements the structural extension of point variables: velocity and
// acceleration history, the fluid-structure predictor and the load accumulators.
//
//   Solution (node.State)  -- displacements u            [nvar]
//   SolutionVel            -- velocities v = du/dt       [nvar]
//   SolutionAccel          -- accelerations a = d²u/dt²  [nvar]
//   Stress                 -- Voigt stress               [3] (2D) or [6] (3D)
//
// Voigt order: {σxx, σyy, σxy} in 2D and {σxx, σyy, σzz, σxy, σyz, σzx} in 3D
package fsi

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/inp"
	"github.com/jholland1/gofv/mdl/solid"
	"github.com/jholland1/gofv/node"
)

// Structure holds the structural data of one point
type Structure struct {
	State *node.State // displacements and their history

	// flags
	Dynamic bool // velocities and accelerations are integrated in time
	Fsi     bool // predictor/corrector coupling with a flow field

	// dynamics
	SolutionVel        []float64 // [nvar] velocities
	SolutionVelTimeN   []float64 // [nvar] velocities at time n
	SolutionAccel      []float64 // [nvar] accelerations
	SolutionAccelTimeN []float64 // [nvar] accelerations at time n
	NmBeta             float64   // Newmark β
	NmGamma            float64   // Newmark γ

	// fluid-structure coupling
	SolutionPred    []float64 // [nvar] predicted displacements
	SolutionPredOld []float64 // [nvar] predicted displacements of the previous coupling iteration
	FlowTraction    []float64 // [nvar] traction from the flow
	FlowTractionN   []float64 // [nvar] traction from the flow at time n

	// loads
	SurfaceLoadRes  []float64 // [nvar] surface load residual
	SurfaceLoadResN []float64 // [nvar] surface load residual at time n
	BodyForceRes    []float64 // [nvar] body force residual
	Prestretch      []float64 // [nvar] prestretch of membranes/fibres

	// stresses
	Material solid.Model // stress-strain model; may be nil
	Stress   []float64   // [nstress] Voigt stress
	VonMises float64     // von Mises equivalent stress

	// internal
	phase  Phase        // coupling phase
	passes [2]*Pass     // open accumulation passes
	accums [2][]float64 // accumulation buffers of passes
}

// NewStructure returns a new structural extension of st
func NewStructure(st *node.State, cfg *inp.StructData) (o *Structure) {
	o = new(Structure)
	o.State = st
	o.Dynamic = cfg.Dynamic
	o.Fsi = cfg.Fsi
	o.NmBeta = cfg.Beta
	o.NmGamma = cfg.Gamma
	n := st.Nvar
	o.SolutionVel = make([]float64, n)
	o.SolutionVelTimeN = make([]float64, n)
	o.SolutionAccel = make([]float64, n)
	o.SolutionAccelTimeN = make([]float64, n)
	o.SolutionPred = make([]float64, n)
	o.SolutionPredOld = make([]float64, n)
	o.FlowTraction = make([]float64, n)
	o.FlowTractionN = make([]float64, n)
	o.SurfaceLoadRes = make([]float64, n)
	o.SurfaceLoadResN = make([]float64, n)
	o.BodyForceRes = make([]float64, n)
	o.Prestretch = make([]float64, n)
	o.Stress = make([]float64, NumStress(st.Ndim))
	o.phase = Commit
	o.accums[surfaceLoad] = make([]float64, n)
	o.accums[bodyForces] = make([]float64, n)
	return
}

// NumStress returns the number of Voigt stress components
func NumStress(ndim int) int {
	if ndim == 2 {
		return 3
	}
	return 6
}

// surface loads ///////////////////////////////////////////////////////////////////////////////

// AddSurfaceLoadRes adds a surface load contribution
func (o *Structure) AddSurfaceLoadRes(vals []float64) { addTo(o.SurfaceLoadRes, vals) }

// ClearSurfaceLoadRes zeroes the surface load residual
func (o *Structure) ClearSurfaceLoadRes() { zero(o.SurfaceLoadRes) }

// GetSurfaceLoadRes returns the surface load residual
func (o *Structure) GetSurfaceLoadRes() []float64 { return o.SurfaceLoadRes }

// SetSurfaceLoadResN freezes the surface load residual into time n
func (o *Structure) SetSurfaceLoadResN() { copy(o.SurfaceLoadResN, o.SurfaceLoadRes) }

// GetSurfaceLoadResN returns the surface load residual at time n
func (o *Structure) GetSurfaceLoadResN() []float64 { return o.SurfaceLoadResN }

// body forces /////////////////////////////////////////////////////////////////////////////////

// AddBodyForcesRes adds a body force contribution
func (o *Structure) AddBodyForcesRes(vals []float64) { addTo(o.BodyForceRes, vals) }

// ClearBodyForcesRes zeroes the body force residual
func (o *Structure) ClearBodyForcesRes() { zero(o.BodyForceRes) }

// GetBodyForcesRes returns the body force residual
func (o *Structure) GetBodyForcesRes() []float64 { return o.BodyForceRes }

// flow traction ///////////////////////////////////////////////////////////////////////////////

// SetFlowTraction sets the traction from the flow
func (o *Structure) SetFlowTraction(vals []float64) { copy(o.FlowTraction, vals) }

// AddFlowTraction adds a traction contribution from the flow
func (o *Structure) AddFlowTraction(vals []float64) { addTo(o.FlowTraction, vals) }

// ClearFlowTraction zeroes the traction from the flow
func (o *Structure) ClearFlowTraction() { zero(o.FlowTraction) }

// GetFlowTraction returns the traction from the flow
func (o *Structure) GetFlowTraction() []float64 { return o.FlowTraction }

// SetFlowTractionN freezes the flow traction into time n
func (o *Structure) SetFlowTractionN() { copy(o.FlowTractionN, o.FlowTraction) }

// GetFlowTractionN returns the flow traction at time n
func (o *Structure) GetFlowTractionN() []float64 { return o.FlowTractionN }

// predictor ///////////////////////////////////////////////////////////////////////////////////

// SetPred stores the current displacements as predictor
func (o *Structure) SetPred() { copy(o.SolutionPred, o.State.Solution) }

// SetPredOld stores the predictor of the current coupling iteration
func (o *Structure) SetPredOld() { copy(o.SolutionPredOld, o.SolutionPred) }

// dynamics ////////////////////////////////////////////////////////////////////////////////////

// SetVel sets the velocities
func (o *Structure) SetVel(vals []float64) { copy(o.SolutionVel, vals) }

// SetAccel sets the accelerations
func (o *Structure) SetAccel(vals []float64) { copy(o.SolutionAccel, vals) }

// SetVelTimeN freezes the velocities into time n
func (o *Structure) SetVelTimeN() { copy(o.SolutionVelTimeN, o.SolutionVel) }

// SetAccelTimeN freezes the accelerations into time n
func (o *Structure) SetAccelTimeN() { copy(o.SolutionAccelTimeN, o.SolutionAccel) }

// UpdateNewmark computes accelerations and velocities from the current displacements with
// Newmark's method
//   a = (u - uₙ) / (β Δt²) - vₙ / (β Δt) - (1/(2β) - 1) aₙ
//   v = vₙ + Δt ((1-γ) aₙ + γ a)
// Static structures have no velocities and accelerations; then nothing is done
func (o *Structure) UpdateNewmark(dt float64) {
	if !o.Dynamic {
		return
	}
	if !(dt > 0) {
		chk.Panic("UpdateNewmark: time step must be positive. %g is invalid", dt)
	}
	β, γ := o.NmBeta, o.NmGamma
	u, un := o.State.Solution, o.State.SolutionTimeN
	for i := range u {
		vn, an := o.SolutionVelTimeN[i], o.SolutionAccelTimeN[i]
		a := (u[i]-un[i])/(β*dt*dt) - vn/(β*dt) - (0.5/β-1.0)*an
		o.SolutionAccel[i] = a
		o.SolutionVel[i] = vn + dt*((1.0-γ)*an+γ*a)
	}
}

// CommitTimeN freezes displacements, velocities, accelerations, surface loads and flow
// traction into time n
func (o *Structure) CommitTimeN() {
	o.State.FreezeTimeN()
	o.SetVelTimeN()
	o.SetAccelTimeN()
	o.SetSurfaceLoadResN()
	o.SetFlowTractionN()
}

// prestretch //////////////////////////////////////////////////////////////////////////////////

// SetPrestretch sets the prestretch
func (o *Structure) SetPrestretch(vals []float64) { copy(o.Prestretch, vals) }

// GetPrestretch returns one component of the prestretch
func (o *Structure) GetPrestretch(v int) float64 { return o.Prestretch[v] }

// stresses ////////////////////////////////////////////////////////////////////////////////////

// SetStress sets the Voigt stress
func (o *Structure) SetStress(vals []float64) { copy(o.Stress, vals) }

// AddStress adds to one Voigt stress component
func (o *Structure) AddStress(i int, val float64) { o.Stress[i] += val }

// ClearStress zeroes the stress
func (o *Structure) ClearStress() { zero(o.Stress) }

// ComputeStress computes the stress from the Voigt strain eps with the material model
func (o *Structure) ComputeStress(eps []float64) {
	if o.Material == nil {
		chk.Panic("ComputeStress: structural point has no material model")
	}
	o.Material.Update(o.Stress, eps)
}

// ComputeVonMises computes and stores the von Mises equivalent stress. In 2D, σzz = 0
func (o *Structure) ComputeVonMises() float64 {
	s := o.Stress
	var sxx, syy, szz, sxy, syz, szx float64
	if len(s) == 3 {
		sxx, syy, sxy = s[0], s[1], s[2]
	} else {
		sxx, syy, szz, sxy, syz, szx = s[0], s[1], s[2], s[3], s[4], s[5]
	}
	a := (sxx-syy)*(sxx-syy) + (syy-szz)*(syy-szz) + (szz-sxx)*(szz-sxx)
	b := 6.0 * (sxy*sxy + syz*syz + szx*szx)
	o.VonMises = math.Sqrt(0.5 * (a + b))
	return o.VonMises
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////

func addTo(dst, vals []float64) {
	for i := range dst {
		dst[i] += vals[i]
	}
}

func zero(dst []float64) {
	for i := range dst {
		dst[i] = 0
	}
}
