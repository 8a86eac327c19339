// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the post-processing of simple shear simulations: series of results
// from the summary, statistics of yield events and plots
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/tdegeus/FrictionQPotGooseFEM/fem"
)

// Global variables
var (
	Analysis *fem.FEM     // the fem structure
	Sum      *fem.Summary // summary read from disk
)

// Start starts handling of results given a simulation input file
func Start(simfnpath string) (err error) {

	// fem structure
	Analysis, err = fem.NewFEM(simfnpath, "", false, false, false)
	if err != nil {
		return
	}

	// summary
	Sum = new(fem.Summary)
	err = Sum.Read(Analysis.Sim.DirOut, Analysis.Sim.Key, Analysis.Sim.EncType)
	if err != nil {
		return chk.Err("cannot read summary:\n%v", err)
	}
	if len(Sum.Incs) < 1 {
		return chk.Err("summary of %q has no increments", Analysis.Sim.Key)
	}
	return
}

// LoadState loads the state of increment tidx into Analysis.Sys
func LoadState(tidx int) (err error) {
	if Analysis == nil || Sum == nil {
		return chk.Err("Start must be called first")
	}
	if tidx < 0 || tidx >= len(Sum.Incs) {
		return chk.Err("increment %d is out of range [0,%d)", tidx, len(Sum.Incs))
	}
	return Analysis.Sys.ReadState(Analysis.Sim.DirOut, Analysis.Sim.Key, Analysis.Sim.EncType, tidx)
}
