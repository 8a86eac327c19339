// Copyright 2012 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tdegeus/FrictionQPotGooseFEM/out"
	"gonum.org/v1/gonum/stat"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	simfn, fnkey := io.ArgToFilename(0, "layer", ".sim", true)
	skip := io.ArgToInt(1, 0)
	dirout := io.ArgToString(2, "/tmp/fqpfem")
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"simulation filename", "simfn", simfn,
		"number of initial increments to skip", "skip", skip,
		"directory for figures", "dirout", dirout,
	))

	// read summary
	err := out.Start(simfn)
	if err != nil {
		chk.Panic("%v", err)
	}
	if skip >= len(out.Sum.Incs) {
		chk.Panic("cannot skip %d increments out of %d", skip, len(out.Sum.Incs))
	}

	// number of time steps per increment
	niter, err := out.Series(out.Sum.Incs[skip:], "niter")
	if err != nil {
		chk.Panic("%v", err)
	}
	mean, std := stat.MeanStdDev(niter, nil)
	nconv := 0
	for _, inc := range out.Sum.Incs[skip:] {
		if inc.Converged {
			nconv++
		}
	}
	io.Pf("%d increments (%d converged): niter = %g ± %g\n", len(niter), nconv, mean, std)

	// figure
	err = out.PlotRes("gamma", "niter", dirout, fnkey+"-niter.png")
	if err != nil {
		chk.Panic("%v", err)
	}
}
