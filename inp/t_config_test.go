// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func Test_config01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config01. defaults")

	cfg, err := NewConfig("euler", 2)
	require.NoError(tst, err)
	chk.Float64(tst, "cv", 1e-12, cfg.Gas.Cv, 287.058/0.4)
	chk.Float64(tst, "cp", 1e-12, cfg.Gas.Cp, 1.4*287.058/0.4)
	require.Equal(tst, "previous", cfg.Fallback.Policy)
	require.Len(tst, cfg.Turb.Sst, 8)

	_, err = NewConfig("euler", 1)
	require.Error(tst, err)
	_, err = NewConfig("", 2)
	require.Error(tst, err)
}

func Test_config02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config02. read yaml")

	cfg, err := ReadConfig("data/ns3d.yaml")
	require.NoError(tst, err)
	io.Pforan("cfg = %+v\n", cfg)
	require.Equal(tst, "ns", cfg.Kind)
	require.Equal(tst, 3, cfg.Ndim)
	require.True(tst, cfg.Unsteady)
	require.Equal(tst, "state", cfg.Fallback.Policy)
	require.Len(tst, cfg.Fallback.Primitive, 12)
	chk.Float64(tst, "prlam (default)", 1e-15, cfg.Transport.PrLam, 0.72)

	_, err = ReadConfig("data/bad.yaml")
	require.Error(tst, err)
	_, err = ReadConfig("data/missing.yaml")
	require.Error(tst, err)
}

func Test_config03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config03. read json")

	cfg, err := ReadConfig("data/tne2.json")
	require.NoError(tst, err)
	require.Equal(tst, "tne2", cfg.Kind)
	require.Len(tst, cfg.Species, 2)
	require.Equal(tst, "N2", cfg.Species[0].Name)
	require.True(tst, cfg.Species[1].Monatomic)
	chk.Float64(tst, "θv(N2)", 1e-15, cfg.Species[0].ThetaV, 3395)
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}
