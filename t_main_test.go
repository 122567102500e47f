// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

func Test_main01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main01. commands")

	cmd := rootCmd()
	cmd.SetArgs([]string{"kinds"})
	require.NoError(tst, cmd.Execute())

	cmd = rootCmd()
	cmd.SetArgs([]string{"recon", "inp/data/ns3d.yaml", "--sol", "1.2,12,0,0,300000", "--npoints", "4", "--workers", "2"})
	require.NoError(tst, cmd.Execute())

	cmd = rootCmd()
	cmd.SetArgs([]string{"recon", "inp/data/ns3d.yaml", "--npoints", "0"})
	require.Error(tst, cmd.Execute())

	cmd = rootCmd()
	cmd.SetArgs([]string{"recon", "inp/data/missing.yaml"})
	require.Error(tst, cmd.Execute())
}
