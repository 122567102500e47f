// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package closure implements the conversion of conservative unknowns into primitive and
// secondary quantities for each kind of physical variable. Closures are read-only after Init
// and may be shared by all points of a field
package closure

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/inp"
)

// Tag classifies variables
type Tag int

// tags
const (
	CompressibleFlow Tag = iota
	IncompressibleFlow
	Turbulence
	Structural
	Adjoint
	Scalar
)

// String returns the name of the tag
func (t Tag) String() string {
	switch t {
	case CompressibleFlow:
		return "CompressibleFlow"
	case IncompressibleFlow:
		return "IncompressibleFlow"
	case Turbulence:
		return "Turbulence"
	case Structural:
		return "Structural"
	case Adjoint:
		return "Adjoint"
	case Scalar:
		return "Scalar"
	}
	return "Unknown"
}

// Sizes holds the number of variables of each set. Sizes never change after Init
type Sizes struct {
	Nvar      int // conservative unknowns
	Nprim     int // primitive variables
	NprimGrad int // primitive variables with gradients
	Nsec      int // secondary variables
	NsecGrad  int // secondary variables with gradients
}

// Layout holds the position of named quantities in the primitive array; -1 means absent.
// Velocity components occupy [Vel, Vel+ndim) and species densities [Species, Species+ns)
type Layout struct {
	T       int // temperature
	Tve     int // vibrational-electronic temperature
	Vel     int // first velocity component
	P       int // pressure
	Rho     int // density
	H       int // specific total enthalpy
	C       int // speed of sound
	Mu      int // laminar viscosity
	MuT     int // eddy viscosity
	K       int // thermal conductivity
	Cp      int // specific heat at constant pressure
	Beta2   int // artificial compressibility
	RhoCvtr int // translational-rotational heat capacity per unit volume
	RhoCvve int // vibrational-electronic heat capacity per unit volume
	Species int // first species density
	Phi     int // potential
}

// NoLayout returns a layout without named quantities
func NoLayout() Layout {
	return Layout{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}
}

// Inputs holds parameters supplied by other solvers at reconstruction time
type Inputs struct {
	MuT  float64     // eddy viscosity
	Ke   float64     // turbulent kinetic energy
	Grad [][]float64 // gradient of the unknowns [nvar][ndim]
	Dist float64     // distance to the nearest wall
}

// Closure defines the conservative-to-primitive conversion of one kind of variable
type Closure interface {
	Init(ndim int, cfg *inp.Config) error           // initialises closure
	Tag() Tag                                       // classification
	Sizes() Sizes                                   // variable counts
	Layout() Layout                                 // positions of named primitive quantities
	Reconstruct(prim, U []float64, in *Inputs) bool // fills prim from U; false if not admissible
}

// SecondaryCloser is implemented by closures that provide thermodynamic and transport
// derivatives
type SecondaryCloser interface {
	Secondary(sec, prim []float64)
}

// JacobianCloser is implemented by closures that provide analytical derivatives of pressure
// and temperatures with respect to the unknowns
type JacobianCloser interface {
	Jacobians(dPdU, dTdU, dTvedU, prim []float64)
}

// PrimalCloser is implemented by adjoint closures
type PrimalCloser interface {
	Primal() Closure
}

// New returns a new closure
func New(name string) (model Closure, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("closure %q is not available in 'closure' database", name)
	}
	return allocator(), nil
}

// Kinds returns the sorted names of all available closures
func Kinds() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available closures
var allocators = map[string]func() Closure{}

// register adds a closure to the database
func register(name string, allocator func() Closure) {
	if _, ok := allocators[name]; ok {
		chk.Panic("closure %q is already registered", name)
	}
	allocators[name] = allocator
}

// finite tells whether all values are finite numbers
func finite(vals []float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
