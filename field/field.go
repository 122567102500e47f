// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field implements the array of point variables owned by one solver partition
package field

import (
	"context"
	"sync/atomic"

	"github.com/cpmech/gosl/chk"
	"github.com/jholland1/gofv/adjoint"
	"github.com/jholland1/gofv/inp"
	"github.com/jholland1/gofv/vars"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Field holds the variables of all points of a partition. Sweeps run over disjoint index
// ranges, thus each variable is touched by one goroutine only
type Field struct {
	Vars []*vars.Variable // variables of each point
	Log  *zap.Logger      // logger
}

// New allocates a field of kind cfg.Kind with given initial unknowns per point
func New(cfg *inp.Config, sols [][]float64) (o *Field, err error) {
	o = &Field{Vars: make([]*vars.Variable, len(sols)), Log: zap.NewNop()}
	for i, sol := range sols {
		o.Vars[i], err = vars.New(cfg.Ndim, cfg, sol)
		if err != nil {
			return nil, chk.Err("cannot allocate variables of point %d:\n%v", i, err)
		}
	}
	return
}

// Size returns the number of points
func (o *Field) Size() int { return len(o.Vars) }

// Reconstruct computes the primitive variables of all points using nworkers goroutines and
// returns the number of non-physical points. nworkers < 1 means one worker
func (o *Field) Reconstruct(ctx context.Context, nworkers int) (nonPhysical int, err error) {
	var count int64
	err = o.sweep(ctx, nworkers, func(i int, v *vars.Variable) error {
		if !v.ReconstructPrimitive() {
			atomic.AddInt64(&count, 1)
		}
		return nil
	})
	if err != nil {
		return
	}
	nonPhysical = int(count)
	if nonPhysical > 0 {
		o.Log.Warn("non-physical points", zap.Int("count", nonPhysical), zap.Int("npoints", len(o.Vars)))
	} else {
		o.Log.Debug("reconstruction", zap.Int("npoints", len(o.Vars)))
	}
	return
}

// ReconstructSecondary computes the secondary variables of all points. It fails at the first
// point whose primitive variables never came from an admissible state
func (o *Field) ReconstructSecondary(ctx context.Context, nworkers int) error {
	return o.sweep(ctx, nworkers, func(i int, v *vars.Variable) error {
		if err := v.ReconstructSecondary(); err != nil {
			return chk.Err("point %d:\n%v", i, err)
		}
		return nil
	})
}

// NonPhysical returns the indices of points flagged as non-physical
func (o *Field) NonPhysical() (ids []int) {
	for i, v := range o.Vars {
		if v.NonPhysical {
			ids = append(ids, i)
		}
	}
	return
}

// FreezeOld copies Solution into SolutionOld at all points
func (o *Field) FreezeOld() {
	for _, v := range o.Vars {
		v.FreezeOld()
	}
}

// FreezeTimeN copies Solution into SolutionTimeN at all points
func (o *Field) FreezeTimeN() {
	for _, v := range o.Vars {
		v.FreezeTimeN()
	}
}

// FreezeTimeN1 copies Solution into SolutionTimeN1 at all points
func (o *Field) FreezeTimeN1() {
	for _, v := range o.Vars {
		v.FreezeTimeN1()
	}
}

// ShiftTimeHistory shifts n-1 <- n <- Solution at all points
func (o *Field) ShiftTimeHistory() {
	for _, v := range o.Vars {
		v.ShiftTimeHistory()
	}
}

// ClearLoads clears the surface loads and body forces of structural points
func (o *Field) ClearLoads() {
	for _, v := range o.Vars {
		if v.Structure != nil {
			v.Structure.ClearSurfaceLoadRes()
			v.Structure.ClearBodyForcesRes()
		}
	}
}

// RegisterSolution registers the unknowns of all adjoint points on the tape. Tapes are not
// safe for concurrent use, thus this sweep is sequential
func (o *Field) RegisterSolution(tape adjoint.Tape, isInput bool) {
	for _, v := range o.Vars {
		if v.Ledger != nil {
			v.Ledger.RegisterSolution(tape, isInput)
		}
	}
}

// sweep runs fcn over all variables split into nworkers disjoint ranges
func (o *Field) sweep(ctx context.Context, nworkers int, fcn func(i int, v *vars.Variable) error) error {
	n := len(o.Vars)
	if nworkers < 1 {
		nworkers = 1
	}
	if nworkers > n {
		nworkers = n
	}
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < nworkers; w++ {
		start, end := w*n/nworkers, (w+1)*n/nworkers
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fcn(i, o.Vars[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
