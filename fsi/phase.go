// Copyright 2018 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsi

import "github.com/cpmech/gosl/chk"

// Phase is a stage of one physical time step of a structural point
type Phase int

// phases
const (
	Predict Phase = iota // predictor ← displacements
	Solve                // structural solve
	Correct              // previous predictor ← predictor
	Commit               // history ← current values
)

// String returns the name of the phase
func (p Phase) String() string {
	switch p {
	case Predict:
		return "predict"
	case Solve:
		return "solve"
	case Correct:
		return "correct"
	case Commit:
		return "commit"
	}
	return "unknown"
}

// Phase returns the current phase. New structures start at Commit
func (o *Structure) Phase() Phase { return o.phase }

// Advance moves to the next phase and performs its action. Valid transitions with
// fluid-structure coupling:
//   Commit → Predict → Solve → Correct → Predict (next coupling iteration) or Commit
// and without:
//   Commit → Solve → Commit
func (o *Structure) Advance(next Phase) (err error) {
	ok := false
	switch o.phase {
	case Commit:
		ok = (o.Fsi && next == Predict) || (!o.Fsi && next == Solve)
	case Predict:
		ok = next == Solve
	case Solve:
		ok = (o.Fsi && next == Correct) || (!o.Fsi && next == Commit)
	case Correct:
		ok = next == Predict || next == Commit
	}
	if !ok {
		return chk.Err("invalid structural phase transition: %v → %v (fsi=%v)", o.phase, next, o.Fsi)
	}
	switch next {
	case Predict:
		o.SetPred()
	case Correct:
		o.SetPredOld()
	case Commit:
		o.CommitTimeN()
	}
	o.phase = next
	return
}
