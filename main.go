// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/tdegeus/FrictionQPotGooseFEM/fem"
	"github.com/tdegeus/FrictionQPotGooseFEM/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	saveSummary := io.ArgToBool(3, true)
	plotResults := io.ArgToBool(4, false)
	alias := io.ArgToString(5, "")

	// message
	if verbose {
		io.PfWhite("\nFrictionQPotGooseFEM -- shear of an elasto-plastic layer\n\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"save summary", "saveSummary", saveSummary,
			"plot results", "plotResults", plotResults,
			"word to add to results", "alias", alias,
		))
	}

	// analysis data
	analysis, err := fem.NewFEM(fnamepath, alias, erasePrev, saveSummary, verbose)
	if err != nil {
		chk.Panic("NewFEM failed:\n%v", err)
	}

	// run simulation
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	if !plotResults || !saveSummary {
		return
	}

	// stress-strain response
	out.Analysis, out.Sum = analysis, analysis.Summary
	dirout := analysis.Sim.DirOut
	key := analysis.Sim.Key
	err = out.PlotRes("gamma", "sigxy", dirout, key+"-sigxy.png")
	if err != nil {
		chk.Panic("cannot plot stress-strain response:\n%v", err)
	}

	// energy landscape of the final state
	dgamma := utl.LinSpace(0, 10*analysis.Sim.Load.Dgamma, 101)
	E, err := analysis.Sys.PlasticEnergyLandscapeSimpleShear(dgamma, true)
	if err != nil {
		chk.Panic("cannot compute energy landscape:\n%v", err)
	}
	err = out.PlotLandscape(dgamma, E, nil, dirout, key+"-landscape.png")
	if err != nil {
		chk.Panic("cannot plot energy landscape:\n%v", err)
	}
}
