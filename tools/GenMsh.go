// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tdegeus/FrictionQPotGooseFEM/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	nx := io.ArgToInt(0, 20)
	nbelow := io.ArgToInt(1, 5)
	nabove := io.ArgToInt(2, 5)
	h := io.ArgToFloat(3, 1.0)
	periodic := io.ArgToBool(4, true)
	dirout := io.ArgToString(5, "/tmp/fqpfem")
	fn := io.ArgToString(6, "layer.msh")
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"number of cells along x", "nx", nx,
		"elastic layers below the plastic layer", "nbelow", nbelow,
		"elastic layers above the plastic layer", "nabove", nabove,
		"size of cells", "h", h,
		"left and right boundaries share DOFs", "periodic", periodic,
		"directory for output", "dirout", dirout,
		"mesh filename", "fn", fn,
	))

	// mesh
	msh, err := inp.NewRegularMesh(nx, nbelow, nabove, h, periodic)
	if err != nil {
		chk.Panic("%v", err)
	}
	msh.WriteMsh(dirout, fn)
	io.Pf("%d vertices, %d cells (%d plastic), %d prescribed DOFs\n", msh.Nnode(), msh.Nelem(), len(msh.Plastic), len(msh.Iip))
}
