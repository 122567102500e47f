// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package node implements the fixed-size storage of one mesh point: unknowns, integration
// history, reconstruction arrays and stability fields. It carries no physics knowledge.
//
//   Solution        -- current conservative unknowns             [nvar]
//   SolutionOld     -- start of the current (Runge-Kutta) stage   [nvar]
//   SolutionTimeN   -- physical time n   (dual time stepping)     [nvar]
//   SolutionTimeN1  -- physical time n-1 (dual time stepping)     [nvar]
//
// The history slots are written only by the explicit Freeze* calls; nothing is copied
// implicitly.
package node

import "github.com/cpmech/gosl/utl"

// State holds the per-point unknowns and auxiliary arrays
type State struct {
	Recon // gradient, limiter and bounds of the conservative unknowns

	// sizes
	Ndim int // space dimension
	Nvar int // number of conservative unknowns

	// unknowns and history
	Solution       []float64 // [nvar] current unknowns
	SolutionOld    []float64 // [nvar] unknowns at the beginning of the stage
	SolutionTimeN  []float64 // [nvar] unknowns at time n
	SolutionTimeN1 []float64 // [nvar] unknowns at time n-1

	// residual smoothing and multigrid
	TruncError         []float64 // [nvar] truncation error (multigrid)
	ResidualOld        []float64 // [nvar] residual smoothing: previous residual
	ResidualSum        []float64 // [nvar] residual smoothing: accumulated residual
	UndividedLaplacian []float64 // [nvar] undivided Laplacian (central schemes)

	// auxiliary variable used by gradient computations
	AuxVar         float64   // auxiliary variable
	AuxVarGradient []float64 // [ndim] gradient of AuxVar

	// stability control
	MaxLambda     float64 // maximum eigenvalue
	MaxLambdaInv  float64 // maximum inviscid eigenvalue
	MaxLambdaVisc float64 // maximum viscous eigenvalue
	Lambda        float64 // eigenvalue (central schemes)
	Sensor        float64 // pressure sensor
	DeltaTime     float64 // local time step
	NonPhysical   bool    // point failed reconstruction; force first order

	// derived-data tracking
	gen uint64 // incremented whenever Solution changes
}

// New allocates a new State. Sizes never change after allocation
func New(ndim, nvar int) (o *State) {
	o = new(State)
	o.Ndim = ndim
	o.Nvar = nvar
	o.Recon.Alloc(ndim, nvar)
	o.Solution = make([]float64, nvar)
	o.SolutionOld = make([]float64, nvar)
	o.SolutionTimeN = make([]float64, nvar)
	o.SolutionTimeN1 = make([]float64, nvar)
	o.TruncError = make([]float64, nvar)
	o.ResidualOld = make([]float64, nvar)
	o.ResidualSum = make([]float64, nvar)
	o.UndividedLaplacian = make([]float64, nvar)
	o.AuxVarGradient = make([]float64, ndim)
	return
}

// NewWithSolution allocates a new State and initialises all history slots with sol
func NewWithSolution(ndim int, sol []float64) (o *State) {
	o = New(ndim, len(sol))
	copy(o.Solution, sol)
	copy(o.SolutionOld, sol)
	copy(o.SolutionTimeN, sol)
	copy(o.SolutionTimeN1, sol)
	return
}

// Generation returns a counter that changes whenever Solution is mutated through State
func (o *State) Generation() uint64 { return o.gen }

// Touch marks Solution as modified. Call it after writing into Solution directly
func (o *State) Touch() { o.gen++ }

// solution ////////////////////////////////////////////////////////////////////////////////////

// SetSolution copies vals into Solution
func (o *State) SetSolution(vals []float64) {
	checkLen("SetSolution", len(vals), o.Nvar)
	copy(o.Solution, vals)
	o.gen++
}

// SetSolutionVar sets one unknown
func (o *State) SetSolutionVar(v int, val float64) {
	checkIndex("SetSolutionVar", v, o.Nvar)
	o.Solution[v] = val
	o.gen++
}

// GetSolution returns one unknown
func (o *State) GetSolution(v int) float64 {
	checkIndex("GetSolution", v, o.Nvar)
	return o.Solution[v]
}

// AddSolution adds delta to one unknown
func (o *State) AddSolution(v int, delta float64) {
	checkIndex("AddSolution", v, o.Nvar)
	o.Solution[v] += delta
	o.gen++
}

// AddDeltaSolution adds delta to one unknown (alias kept for update loops written in ΔU form)
func (o *State) AddDeltaSolution(v int, delta float64) {
	o.AddSolution(v, delta)
}

// AddClippedSolution sets Solution[v] = clamp(Solution[v] + delta, lower, upper)
func (o *State) AddClippedSolution(v int, delta, lower, upper float64) {
	checkIndex("AddClippedSolution", v, o.Nvar)
	o.Solution[v] = clamp(o.Solution[v]+delta, lower, upper)
	o.gen++
}

// AddConservativeSolution updates a density-weighted unknown when density changed in the
// same update:
//   Solution[v] = clamp((Solution[v]*ρOld + delta) / ρ, lower, upper)
func (o *State) AddConservativeSolution(v int, delta, density, densityOld, lower, upper float64) {
	checkIndex("AddConservativeSolution", v, o.Nvar)
	o.Solution[v] = clamp((o.Solution[v]*densityOld+delta)/density, lower, upper)
	o.gen++
}

// SetSolutionZero zeroes all unknowns
func (o *State) SetSolutionZero() {
	for i := 0; i < o.Nvar; i++ {
		o.Solution[i] = 0
	}
	o.gen++
}

// SetSolutionZeroVar zeroes one unknown
func (o *State) SetSolutionZeroVar(v int) {
	checkIndex("SetSolutionZeroVar", v, o.Nvar)
	o.Solution[v] = 0
	o.gen++
}

// SetVelSolutionZero zeroes the momentum/velocity slots [1, ndim]
func (o *State) SetVelSolutionZero() {
	for d := 0; d < o.Ndim; d++ {
		o.Solution[d+1] = 0
	}
	o.gen++
}

// SetVelSolutionVector sets the momentum/velocity slots [1, ndim]
func (o *State) SetVelSolutionVector(vel []float64) {
	checkLen("SetVelSolutionVector", len(vel), o.Ndim)
	for d := 0; d < o.Ndim; d++ {
		o.Solution[d+1] = vel[d]
	}
	o.gen++
}

// SetVelSolutionOldZero zeroes the momentum/velocity slots of SolutionOld
func (o *State) SetVelSolutionOldZero() {
	for d := 0; d < o.Ndim; d++ {
		o.SolutionOld[d+1] = 0
	}
}

// SetVelSolutionOldVector sets the momentum/velocity slots of SolutionOld
func (o *State) SetVelSolutionOldVector(vel []float64) {
	checkLen("SetVelSolutionOldVector", len(vel), o.Ndim)
	for d := 0; d < o.Ndim; d++ {
		o.SolutionOld[d+1] = vel[d]
	}
}

// history /////////////////////////////////////////////////////////////////////////////////////

// FreezeOld copies Solution into SolutionOld
func (o *State) FreezeOld() { copy(o.SolutionOld, o.Solution) }

// FreezeTimeN copies Solution into SolutionTimeN
func (o *State) FreezeTimeN() { copy(o.SolutionTimeN, o.Solution) }

// FreezeTimeN1 copies Solution into SolutionTimeN1
func (o *State) FreezeTimeN1() { copy(o.SolutionTimeN1, o.Solution) }

// ShiftTimeHistory moves time n into n-1 and then freezes Solution into time n. This is the
// sequence dual time drivers run at the end of a physical step
func (o *State) ShiftTimeHistory() {
	copy(o.SolutionTimeN1, o.SolutionTimeN)
	copy(o.SolutionTimeN, o.Solution)
}

// RestoreFromOld copies SolutionOld back into Solution
func (o *State) RestoreFromOld() {
	copy(o.Solution, o.SolutionOld)
	o.gen++
}

// SetSolutionOld sets the old solution
func (o *State) SetSolutionOld(vals []float64) {
	checkLen("SetSolutionOld", len(vals), o.Nvar)
	copy(o.SolutionOld, vals)
}

// SetSolutionOldVar sets one old unknown
func (o *State) SetSolutionOldVar(v int, val float64) {
	checkIndex("SetSolutionOldVar", v, o.Nvar)
	o.SolutionOld[v] = val
}

// GetSolutionOld returns one old unknown
func (o *State) GetSolutionOld(v int) float64 {
	checkIndex("GetSolutionOld", v, o.Nvar)
	return o.SolutionOld[v]
}

// SetTimeN sets the time n slot from given values
func (o *State) SetTimeN(vals []float64) {
	checkLen("SetTimeN", len(vals), o.Nvar)
	copy(o.SolutionTimeN, vals)
}

// SetTimeN1 sets the time n-1 slot from given values
func (o *State) SetTimeN1(vals []float64) {
	checkLen("SetTimeN1", len(vals), o.Nvar)
	copy(o.SolutionTimeN1, vals)
}

// SetTimeNVar sets one unknown of the time n slot
func (o *State) SetTimeNVar(v int, val float64) {
	checkIndex("SetTimeNVar", v, o.Nvar)
	o.SolutionTimeN[v] = val
}

// SetTimeN1Var sets one unknown of the time n-1 slot
func (o *State) SetTimeN1Var(v int, val float64) {
	checkIndex("SetTimeN1Var", v, o.Nvar)
	o.SolutionTimeN1[v] = val
}

// GetSolutionTimeN returns one unknown at time n
func (o *State) GetSolutionTimeN(v int) float64 {
	checkIndex("GetSolutionTimeN", v, o.Nvar)
	return o.SolutionTimeN[v]
}

// GetSolutionTimeN1 returns one unknown at time n-1
func (o *State) GetSolutionTimeN1(v int) float64 {
	checkIndex("GetSolutionTimeN1", v, o.Nvar)
	return o.SolutionTimeN1[v]
}

// residuals ///////////////////////////////////////////////////////////////////////////////////

// SetResidualOld sets the residual of the previous smoothing iteration
func (o *State) SetResidualOld(res []float64) {
	checkLen("SetResidualOld", len(res), o.Nvar)
	copy(o.ResidualOld, res)
}

// AddResidualSum accumulates res into ResidualSum
func (o *State) AddResidualSum(res []float64) {
	checkLen("AddResidualSum", len(res), o.Nvar)
	for i := 0; i < o.Nvar; i++ {
		o.ResidualSum[i] += res[i]
	}
}

// SetResidualSumZero zeroes ResidualSum
func (o *State) SetResidualSumZero() {
	for i := 0; i < o.Nvar; i++ {
		o.ResidualSum[i] = 0
	}
}

// AddResTruncError adds to the truncation error
func (o *State) AddResTruncError(te []float64) {
	checkLen("AddResTruncError", len(te), o.Nvar)
	for i := 0; i < o.Nvar; i++ {
		o.TruncError[i] += te[i]
	}
}

// SubtractResTruncError subtracts from the truncation error
func (o *State) SubtractResTruncError(te []float64) {
	checkLen("SubtractResTruncError", len(te), o.Nvar)
	for i := 0; i < o.Nvar; i++ {
		o.TruncError[i] -= te[i]
	}
}

// SetResTruncErrorZero zeroes the truncation error
func (o *State) SetResTruncErrorZero() {
	for i := 0; i < o.Nvar; i++ {
		o.TruncError[i] = 0
	}
}

// SetResTruncErrorZeroVar zeroes one component of the truncation error
func (o *State) SetResTruncErrorZeroVar(v int) {
	checkIndex("SetResTruncErrorZeroVar", v, o.Nvar)
	o.TruncError[v] = 0
}

// SetVelResTruncErrorZero zeroes components 1..ndim of the truncation error, i.e. the
// momentum of layouts with a single density unknown first
func (o *State) SetVelResTruncErrorZero() {
	for d := 0; d < o.Ndim; d++ {
		o.TruncError[d+1] = 0
	}
}

// SetEnergyResTruncErrorZero zeroes the last component of the truncation error. This is the
// energy of single-temperature flows only; vars.Variable selects the energy of other layouts
func (o *State) SetEnergyResTruncErrorZero() {
	o.TruncError[o.Nvar-1] = 0
}

// SetUndividedLaplacianZero zeroes the undivided Laplacian
func (o *State) SetUndividedLaplacianZero() {
	for i := 0; i < o.Nvar; i++ {
		o.UndividedLaplacian[i] = 0
	}
}

// AddUndividedLaplacian accumulates one component of the undivided Laplacian
func (o *State) AddUndividedLaplacian(v int, val float64) {
	checkIndex("AddUndividedLaplacian", v, o.Nvar)
	o.UndividedLaplacian[v] += val
}

// auxiliary variable //////////////////////////////////////////////////////////////////////////

// SetAuxVarGradientZero zeroes the gradient of AuxVar
func (o *State) SetAuxVarGradientZero() {
	for d := 0; d < o.Ndim; d++ {
		o.AuxVarGradient[d] = 0
	}
}

// SetAuxVarGradient sets one component of the gradient of AuxVar
func (o *State) SetAuxVarGradient(d int, val float64) {
	checkIndex("SetAuxVarGradient", d, o.Ndim)
	o.AuxVarGradient[d] = val
}

// AddAuxVarGradient adds to one component of the gradient of AuxVar
func (o *State) AddAuxVarGradient(d int, val float64) {
	checkIndex("AddAuxVarGradient", d, o.Ndim)
	o.AuxVarGradient[d] += val
}

// SubtractAuxVarGradient subtracts from one component of the gradient of AuxVar
func (o *State) SubtractAuxVarGradient(d int, val float64) {
	checkIndex("SubtractAuxVarGradient", d, o.Ndim)
	o.AuxVarGradient[d] -= val
}

// stability ///////////////////////////////////////////////////////////////////////////////////

// SetMaxLambdaInv sets the maximum inviscid eigenvalue
func (o *State) SetMaxLambdaInv(val float64) { o.MaxLambdaInv = val }

// SetMaxLambdaVisc sets the maximum viscous eigenvalue
func (o *State) SetMaxLambdaVisc(val float64) { o.MaxLambdaVisc = val }

// AddMaxLambdaInv accumulates the maximum inviscid eigenvalue
func (o *State) AddMaxLambdaInv(val float64) { o.MaxLambdaInv += val }

// AddMaxLambdaVisc accumulates the maximum viscous eigenvalue
func (o *State) AddMaxLambdaVisc(val float64) { o.MaxLambdaVisc += val }

// SetMaxLambda sets MaxLambda = MaxLambdaInv + MaxLambdaVisc
func (o *State) SetMaxLambda() { o.MaxLambda = o.MaxLambdaInv + o.MaxLambdaVisc }

// AddLambda accumulates Lambda
func (o *State) AddLambda(val float64) { o.Lambda += val }

// limiter bounds //////////////////////////////////////////////////////////////////////////////

// SetSolutionMax sets the maximum of one unknown among the neighbours
func (o *State) SetSolutionMax(v int, val float64) { o.Recon.SetMax(v, val) }

// SetSolutionMin sets the minimum of one unknown among the neighbours
func (o *State) SetSolutionMin(v int, val float64) { o.Recon.SetMin(v, val) }

// GetSolutionMax returns the maximum of one unknown among the neighbours
func (o *State) GetSolutionMax(v int) float64 { return o.Recon.GetMax(v) }

// GetSolutionMin returns the minimum of one unknown among the neighbours
func (o *State) GetSolutionMin(v int) float64 { return o.Recon.GetMin(v) }

// GetCopy returns a deep copy of State, generation included
func (o *State) GetCopy() *State {
	c := NewWithSolution(o.Ndim, o.Solution)
	copy(c.SolutionOld, o.SolutionOld)
	copy(c.SolutionTimeN, o.SolutionTimeN)
	copy(c.SolutionTimeN1, o.SolutionTimeN1)
	copy(c.TruncError, o.TruncError)
	copy(c.ResidualOld, o.ResidualOld)
	copy(c.ResidualSum, o.ResidualSum)
	copy(c.UndividedLaplacian, o.UndividedLaplacian)
	copy(c.AuxVarGradient, o.AuxVarGradient)
	c.Recon.Set(&o.Recon)
	c.AuxVar = o.AuxVar
	c.MaxLambda = o.MaxLambda
	c.MaxLambdaInv = o.MaxLambdaInv
	c.MaxLambdaVisc = o.MaxLambdaVisc
	c.Lambda = o.Lambda
	c.Sensor = o.Sensor
	c.DeltaTime = o.DeltaTime
	c.NonPhysical = o.NonPhysical
	c.gen = o.gen
	return c
}

// clamp returns x limited to [lower, upper]
func clamp(x, lower, upper float64) float64 {
	return utl.Min(utl.Max(x, lower), upper)
}
