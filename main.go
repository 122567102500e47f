// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/jholland1/gofv/closure"
	"github.com/jholland1/gofv/field"
	"github.com/jholland1/gofv/inp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd returns the gofv command
func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gofv",
		Short: "point variables of finite volume multi-physics solvers",
	}
	root.AddCommand(kindsCmd(), reconCmd())
	return root
}

// kindsCmd returns the command listing the available kinds of variables
func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "list available kinds of variables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := inp.NewConfig("euler", 2)
			if err != nil {
				return err
			}
			for _, kind := range closure.Kinds() {
				clo, err := closure.New(kind)
				if err != nil {
					return err
				}
				cfg.Kind = kind
				tag := "(requires configuration)"
				if clo.Init(cfg.Ndim, cfg) == nil {
					tag = clo.Tag().String()
				}
				io.Pf("%-12s %s\n", kind, tag)
			}
			return nil
		},
	}
}

// reconCmd returns the command that reconstructs primitive variables of a uniform field
func reconCmd() *cobra.Command {
	var (
		sol      []float64
		npoints  int
		nworkers int
		debug    bool
	)
	cmd := &cobra.Command{
		Use:   "recon [config]",
		Short: "reconstruct primitive variables from conservative unknowns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := inp.ReadConfig(args[0])
			if err != nil {
				return err
			}
			log := zap.NewNop()
			if debug {
				log, err = zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer log.Sync()
			}
			log.Info("configuration", zap.String("file", args[0]), zap.String("kind", cfg.Kind), zap.Int("ndim", cfg.Ndim))

			// field
			if npoints < 1 {
				return chk.Err("number of points must be positive. %d is invalid", npoints)
			}
			sols := make([][]float64, npoints)
			for i := range sols {
				sols[i] = sol
			}
			f, err := field.New(cfg, sols)
			if err != nil {
				return err
			}
			f.Log = log
			nbad, err := f.Reconstruct(context.Background(), nworkers)
			if err != nil {
				return err
			}

			// results
			v := f.Vars[0]
			io.Pf("kind        = %s (%v)\n", v.Kind, v.Tag)
			io.Pf("unknowns    = %v\n", v.Solution)
			io.Pforan("primitive   = %v\n", v.Primitive)
			if v.NonPhysical {
				io.PfRed("non-physical state: %d of %d points\n", nbad, f.Size())
				return nil
			}
			if v.Secondary != nil {
				if err = v.ReconstructSecondary(); err == nil {
					io.Pforan("secondary   = %v\n", v.Secondary)
				}
			}
			if v.DPdU != nil {
				if err = v.Jacobians(); err == nil {
					io.Pf("dP/dU       = %v\n", v.DPdU)
					io.Pf("dT/dU       = %v\n", v.DTdU)
					io.Pf("dTve/dU     = %v\n", v.DTvedU)
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&sol, "sol", nil, "conservative unknowns; zero if not given")
	cmd.Flags().IntVar(&npoints, "npoints", 1, "number of points")
	cmd.Flags().IntVar(&nworkers, "workers", 1, "number of goroutines")
	cmd.Flags().BoolVar(&debug, "log", false, "write structured log messages")
	return cmd
}
