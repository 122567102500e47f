// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/jholland1/gofv/inp"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// checkDerivs compares analytical derivatives with central differences
func checkDerivs(tst *testing.T, mdl Model, rho, e, tol float64) {
	var s, tmp State
	mdl.CalcRhoE(&s, rho, e)
	hr, he := 1e-3*rho, 1e-3*e
	chk.DerivScaSca(tst, "dp/dρ|e", tol*(1+math.Abs(s.DpDrhoE)), s.DpDrhoE, rho, hr, chk.Verbose, func(x float64) float64 {
		mdl.CalcRhoE(&tmp, x, e)
		return tmp.P
	})
	chk.DerivScaSca(tst, "dp/de|ρ", tol*(1+math.Abs(s.DpDeRho)), s.DpDeRho, e, he, chk.Verbose, func(x float64) float64 {
		mdl.CalcRhoE(&tmp, rho, x)
		return tmp.P
	})
	chk.DerivScaSca(tst, "dT/dρ|e", tol*(1+math.Abs(s.DTDrhoE)), s.DTDrhoE, rho, hr, chk.Verbose, func(x float64) float64 {
		mdl.CalcRhoE(&tmp, x, e)
		return tmp.T
	})
	chk.DerivScaSca(tst, "dT/de|ρ", tol*(1+math.Abs(s.DTDeRho)), s.DTDeRho, e, he, chk.Verbose, func(x float64) float64 {
		mdl.CalcRhoE(&tmp, rho, x)
		return tmp.T
	})
	chk.Float64(tst, "c²", tol*s.C2, s.C2, s.DpDrhoE+s.P/(rho*rho)*s.DpDeRho)
}

func Test_fld01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld01. ideal gas")

	gas := &inp.GasData{Gamma: 1.4, R: 287.058}
	mdl, err := New("ideal")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	mdl.Init(gas)

	var s State
	rho, e := 1.0, 2.0
	mdl.CalcRhoE(&s, rho, e)
	chk.Float64(tst, "p", 1e-15, s.P, 0.4*rho*e)
	chk.Float64(tst, "c²", 1e-15, s.C2, 1.4*s.P/rho)
	chk.Float64(tst, "T", 1e-15, s.T, s.P/(rho*gas.R))
	chk.Float64(tst, "e(ρ,T)", 1e-14, mdl.Energy(rho, s.T), e)

	gamma, R, cv := mdl.GetPrms()
	chk.Float64(tst, "γ", 1e-15, gamma, 1.4)
	chk.Float64(tst, "R", 1e-15, R, 287.058)
	chk.Float64(tst, "cp-cv", 1e-10, s.Cp-cv, R)

	checkDerivs(tst, mdl, 1.2, 2.1e5, 1e-7)

	_, err = New("steam")
	if err == nil {
		tst.Errorf("unknown model should fail\n")
	}
}

func Test_fld02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld02. van der Waals")

	mdl, err := New("vdw")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	err = mdl.Init(&inp.GasData{Gamma: 1.4, R: 287.058, A: 162.0, B: 1.26e-3})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	checkDerivs(tst, mdl, 1.2, 2.1e5, 1e-6)
	checkDerivs(tst, mdl, 50.0, 1.5e5, 1e-6)

	// reduces to the ideal gas
	ideal, _ := New("ideal")
	ideal.Init(&inp.GasData{Gamma: 1.4, R: 287.058})
	vdw0, _ := New("vdw")
	vdw0.Init(&inp.GasData{Gamma: 1.4, R: 287.058})
	var a, b State
	ideal.CalcRhoE(&a, 1.1, 2e5)
	vdw0.CalcRhoE(&b, 1.1, 2e5)
	chk.Float64(tst, "p", 1e-9, b.P, a.P)
	chk.Float64(tst, "c²", 1e-9, b.C2, a.C2)
	chk.Float64(tst, "cp", 1e-9, b.Cp, a.Cp)

	err = vdw0.Init(&inp.GasData{Gamma: 1.4, R: 287.058, A: -1})
	if err == nil {
		tst.Errorf("negative attraction coefficient should fail\n")
	}
}

func Test_fld03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld03. viscosity and conductivity")

	tr := &inp.TransportData{MuRef: 1.716e-5, Tref: 273.15, S: 110.4, PrLam: 0.72}
	suth, err := NewViscosity("sutherland")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	suth.Init(tr)
	chk.Float64(tst, "μ(Tref)", 1e-20, suth.Mu(273.15), 1.716e-5)

	for _, T := range []float64{200, 300, 1500} {
		chk.DerivScaSca(tst, io.Sf("dμ/dT @ %g", T), 1e-14, suth.DmuDT(T), T, 1e-3*T, chk.Verbose, suth.Mu)
	}

	cst, _ := NewViscosity("constant")
	cst.Init(tr)
	chk.Float64(tst, "μ", 1e-20, cst.Mu(1000), 1.716e-5)
	chk.Float64(tst, "dμ/dT", 1e-20, cst.DmuDT(1000), 0)

	k := Conductivity{Pr: tr.PrLam}
	chk.Float64(tst, "κ", 1e-15, k.K(1.8e-5, 1004.5), 1.8e-5*1004.5/0.72)
	chk.Float64(tst, "dκ/dT", 1e-15, k.DkDT(5e-8, 1004.5), 5e-8*1004.5/0.72)

	_, err = NewViscosity("power")
	if err == nil {
		tst.Errorf("unknown viscosity model should fail\n")
	}
}
