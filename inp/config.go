// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the configuration handle consumed by the point variables: physical
// model selectors and reference constants. It is read from a YAML or JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// GasData holds equation of state data
type GasData struct {
	Model string  `json:"model" yaml:"model"` // equation of state: "ideal" or "vdw"
	Gamma float64 `json:"gamma" yaml:"gamma"` // ratio of specific heats
	R     float64 `json:"r" yaml:"r"`         // specific gas constant [J/(kg K)]
	A     float64 `json:"a" yaml:"a"`         // van der Waals attraction coefficient [Pa m⁶/kg²]
	B     float64 `json:"b" yaml:"b"`         // van der Waals co-volume [m³/kg]

	// derived
	Cv float64 `json:"-" yaml:"-"` // specific heat at constant volume
	Cp float64 `json:"-" yaml:"-"` // specific heat at constant pressure
}

// TransportData holds data for transport properties
type TransportData struct {
	Viscosity string  `json:"viscosity" yaml:"viscosity"` // viscosity model: "constant" or "sutherland"
	MuRef     float64 `json:"muref" yaml:"muref"`         // reference (or constant) viscosity [Pa s]
	Tref      float64 `json:"tref" yaml:"tref"`           // Sutherland reference temperature [K]
	S         float64 `json:"s" yaml:"s"`                 // Sutherland constant [K]
	PrLam     float64 `json:"prlam" yaml:"prlam"`         // laminar Prandtl number
	PrTurb    float64 `json:"prturb" yaml:"prturb"`       // turbulent Prandtl number
}

// IncData holds data for incompressible (artificial compressibility) variables
type IncData struct {
	DensityInf   float64 `json:"densityinf" yaml:"densityinf"`     // freestream density
	ViscosityInf float64 `json:"viscosityinf" yaml:"viscosityinf"` // freestream viscosity
	ArtComp      float64 `json:"artcomp" yaml:"artcomp"`           // artificial compressibility factor β²
}

// SpeciesData holds data of one species in multi-species two-temperature flows
type SpeciesData struct {
	Name      string  `json:"name" yaml:"name"`           // e.g. N2
	M         float64 `json:"m" yaml:"m"`                 // molar mass [kg/kmol]
	Monatomic bool    `json:"monatomic" yaml:"monatomic"` // atoms have no rotational/vibrational modes
	ThetaV    float64 `json:"thetav" yaml:"thetav"`       // characteristic vibrational temperature [K]
	Hf        float64 `json:"hf" yaml:"hf"`               // formation enthalpy [J/kg]
}

// TurbData holds turbulence model data
type TurbData struct {
	Sst      []float64 `json:"sst" yaml:"sst"`           // SST constants {σk1, σk2, σω1, σω2, β1, β2, β*, a1}
	GammaSep float64   `json:"gammasep" yaml:"gammasep"` // LM separation-induced intermittency
	KeInf    float64   `json:"keinf" yaml:"keinf"`       // freestream turbulent kinetic energy
	NuInf    float64   `json:"nuinf" yaml:"nuinf"`       // freestream ν̃ for SA
}

// AdjointData holds data for adjoint variables
type AdjointData struct {
	Limit  float64 `json:"limit" yaml:"limit"`   // bound of the adjoint density co-state
	Primal string  `json:"primal" yaml:"primal"` // kind of the primal problem; e.g. "euler"
}

// FallbackData holds the policy applied when reconstruction yields a non-physical state
type FallbackData struct {
	Policy          string    `json:"policy" yaml:"policy"`                   // "previous" (keep primitive) or "state" (use Primitive)
	Primitive       []float64 `json:"primitive" yaml:"primitive"`             // configured fallback primitive state
	RestoreSolution bool      `json:"restoresolution" yaml:"restoresolution"` // also copy SolutionOld into Solution
}

// StructData holds data for structural points
type StructData struct {
	Dynamic  bool    `json:"dynamic" yaml:"dynamic"`   // dynamic analysis: velocity/acceleration history
	Fsi      bool    `json:"fsi" yaml:"fsi"`           // coupled with a flow field
	NelBound int     `json:"nelbound" yaml:"nelbound"` // number of boundary elements sharing the point
	Beta     float64 `json:"beta" yaml:"beta"`         // Newmark β
	Gamma    float64 `json:"gamma" yaml:"gamma"`       // Newmark γ
	Material string  `json:"material" yaml:"material"` // stress-strain model; e.g. "lin-elast". empty means none
	E        float64 `json:"e" yaml:"e"`               // Young's modulus
	Nu       float64 `json:"nu" yaml:"nu"`             // Poisson's coefficient
}

// Config holds the configuration handle
type Config struct {
	Desc      string         `json:"desc" yaml:"desc"`           // description
	Kind      string         `json:"kind" yaml:"kind"`           // kind of variable; e.g. euler, ns, sst, fea, discadj
	Ndim      int            `json:"ndim" yaml:"ndim"`           // space dimension
	Unsteady  bool           `json:"unsteady" yaml:"unsteady"`   // dual time stepping
	Gas       GasData        `json:"gas" yaml:"gas"`             // equation of state
	Transport TransportData  `json:"transport" yaml:"transport"` // transport properties
	Inc       IncData        `json:"inc" yaml:"inc"`             // incompressible data
	Species   []*SpeciesData `json:"species" yaml:"species"`     // species for two-temperature flows
	Turb      TurbData       `json:"turb" yaml:"turb"`           // turbulence
	Adjoint   AdjointData    `json:"adjoint" yaml:"adjoint"`     // adjoint
	Fallback  FallbackData   `json:"fallback" yaml:"fallback"`   // non-physical fallback
	Struct    StructData     `json:"struct" yaml:"struct"`       // structural
}

// SetDefault sets default values (air at standard conditions, SI units)
func (o *Config) SetDefault() {
	o.Kind = "euler"
	o.Ndim = 2
	o.Gas.Model = "ideal"
	o.Gas.Gamma = 1.4
	o.Gas.R = 287.058
	o.Transport.Viscosity = "sutherland"
	o.Transport.MuRef = 1.716e-5
	o.Transport.Tref = 273.15
	o.Transport.S = 110.4
	o.Transport.PrLam = 0.72
	o.Transport.PrTurb = 0.9
	o.Inc.DensityInf = 1.0
	o.Inc.ViscosityInf = 1.0e-3
	o.Inc.ArtComp = 1.0
	o.Turb.Sst = []float64{0.85, 1.0, 0.5, 0.856, 0.075, 0.0828, 0.09, 0.31}
	o.Adjoint.Limit = 1e6
	o.Fallback.Policy = "previous"
	o.Struct.Beta = 0.25
	o.Struct.Gamma = 0.5
}

// PostProcess computes derived constants and validates the configuration
func (o *Config) PostProcess() (err error) {
	if o.Ndim != 2 && o.Ndim != 3 {
		return chk.Err("ndim must be 2 or 3. %d is invalid", o.Ndim)
	}
	if o.Kind == "" {
		return chk.Err("kind of variable must be given")
	}
	if o.Gas.Gamma <= 1 {
		return chk.Err("gamma must be greater than 1. %g is invalid", o.Gas.Gamma)
	}
	if o.Gas.R <= 0 {
		return chk.Err("gas constant must be positive. %g is invalid", o.Gas.R)
	}
	if o.Transport.PrLam <= 0 || o.Transport.PrTurb <= 0 {
		return chk.Err("Prandtl numbers must be positive")
	}
	if len(o.Turb.Sst) != 8 {
		return chk.Err("SST requires 8 constants; %d were given", len(o.Turb.Sst))
	}
	if o.Struct.Beta <= 0 || o.Struct.Gamma <= 0 {
		return chk.Err("Newmark coefficients must be positive. β=%g, γ=%g", o.Struct.Beta, o.Struct.Gamma)
	}
	if o.Struct.NelBound < 0 {
		return chk.Err("number of boundary elements must be non-negative. %d is invalid", o.Struct.NelBound)
	}
	if !(o.Adjoint.Limit > 0) {
		return chk.Err("adjoint limit must be positive. %g is invalid", o.Adjoint.Limit)
	}
	switch o.Fallback.Policy {
	case "previous", "state":
	default:
		return chk.Err("fallback policy %q is invalid; use \"previous\" or \"state\"", o.Fallback.Policy)
	}
	o.Gas.Cv = o.Gas.R / (o.Gas.Gamma - 1.0)
	o.Gas.Cp = o.Gas.Gamma * o.Gas.Cv
	for i, s := range o.Species {
		if s.M <= 0 {
			return chk.Err("species %d (%q) must have positive molar mass", i, s.Name)
		}
	}
	return
}

// NewConfig returns a Config with defaults that have been post-processed
func NewConfig(kind string, ndim int) (o *Config, err error) {
	o = new(Config)
	o.SetDefault()
	o.Kind = kind
	o.Ndim = ndim
	err = o.PostProcess()
	return
}

// ReadConfig reads a configuration file. Files ending in .yaml or .yml are decoded as YAML,
// everything else as JSON
func ReadConfig(path string) (o *Config, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read configuration file %q:\n%v", path, err)
	}
	o = new(Config)
	o.SetDefault()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("cannot decode configuration file %q:\n%v", path, err)
	}
	err = o.PostProcess()
	return
}
