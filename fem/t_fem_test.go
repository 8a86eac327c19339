// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_fem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem01. event driven simple shear")

	// run
	analysis, err := NewFEM("data/event.sim", "", true, true, chk.Verbose)
	if err != nil {
		tst.Errorf("NewFEM failed:\n%v", err)
		return
	}
	err = analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// check increments
	incs := analysis.Summary.Incs
	chk.Int(tst, "ninc", len(incs), 4)
	chk.Float64(tst, "γ0", 1e-17, incs[0].Gamma, 0)
	for i := 1; i < len(incs); i++ {
		io.Pforan("%d : %+v\n", i, incs[i])
		if !incs[i].Converged {
			tst.Errorf("increment %d did not converge", i)
		}
		if !(incs[i].Gamma > incs[i-1].Gamma) {
			tst.Errorf("γ must increase: %g <= %g", incs[i].Gamma, incs[i-1].Gamma)
		}
		if incs[i].Nyield < 1 {
			tst.Errorf("increment %d: at least one point must yield", i)
		}
	}

	// read summary back
	var sum Summary
	err = sum.Read(analysis.Sim.DirOut, analysis.Sim.Key, analysis.Sim.EncType)
	if err != nil {
		tst.Errorf("Read failed:\n%v", err)
		return
	}
	chk.Int(tst, "ninc (file)", len(sum.Incs), 4)
	chk.Float64(tst, "γ (file)", 1e-17, sum.Incs[3].Gamma, incs[3].Gamma)
}

func Test_fem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem02. simple shear with constant increments")

	analysis, err := NewFEM("data/fixed.sim", "", true, false, chk.Verbose)
	if err != nil {
		tst.Errorf("NewFEM failed:\n%v", err)
		return
	}
	msh := analysis.Sim.Mesh.Msh
	chk.Float64(tst, "dt", 1e-15, analysis.Sys.Dt(), 0.1*0.5/math.Sqrt(10))
	for i := 1; i <= 2; i++ {
		inc, err := analysis.Step()
		if err != nil {
			tst.Errorf("Step failed:\n%v", err)
			return
		}
		chk.Float64(tst, io.Sf("γ%d", i), 1e-15, inc.Gamma, float64(i)*1e-3)
		if !inc.Converged {
			tst.Errorf("increment %d did not converge", i)
		}
		chk.Int(tst, io.Sf("nyield%d", i), inc.Nyield, 0)

		// top boundary follows the imposed shear
		for _, n := range msh.Top {
			chk.Float64(tst, io.Sf("ux%d", n), 1e-15, analysis.Sys.U()[n][0], inc.Gamma*(msh.Ymax-msh.Ymin))
		}
	}

	// invalid file
	_, err = NewFEM("data/notfound.sim", "", false, false, false)
	if err == nil {
		tst.Errorf("NewFEM must fail")
	}
}
