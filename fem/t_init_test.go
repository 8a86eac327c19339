// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tdegeus/FrictionQPotGooseFEM/inp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// unitSquare returns one qua4 cell of unit size with prescribed bottom DOFs
func unitSquare() (coor [][]float64, conn, dofs [][]int, iip []int) {
	coor = [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	conn = [][]int{{0, 1, 2, 3}}
	dofs = [][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}}
	iip = []int{0, 1, 2, 3}
	return
}

// twoCells returns two qua4 cells side by side with prescribed bottom DOFs
//
//   3 ----- 4 ----- 5
//   |   0   |   1   |
//   0 ----- 1 ----- 2
func twoCells() (coor [][]float64, conn, dofs [][]int, iip []int) {
	coor = [][]float64{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	conn = [][]int{{0, 1, 4, 3}, {1, 2, 5, 4}}
	dofs = [][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}, {8, 9}, {10, 11}}
	iip = []int{0, 1, 2, 3, 4, 5}
	return
}

// layered returns a periodic mesh with one plastic layer
func layered(tst *testing.T, nx, nbelow, nabove int) *inp.Mesh {
	msh, err := inp.NewRegularMesh(nx, nbelow, nabove, 1.0, true)
	if err != nil {
		tst.Fatalf("NewRegularMesh failed:\n%v", err)
	}
	return msh
}

// sysdata holds the parameters of test systems
type sysdata struct {
	K, G       float64   // moduli of all cells
	epsy       []float64 // yield strains of all plastic cells
	rho, alpha float64   // density and damping
	dt         float64   // time step
}

// newSystem returns a system that is ready for time integration
func newSystem(tst *testing.T, coor [][]float64, conn, dofs [][]int, iip, elastic, plastic []int, d sysdata) *System {
	sys, err := NewSystem(coor, conn, dofs, iip, elastic, plastic)
	if err != nil {
		tst.Fatalf("NewSystem failed:\n%v", err)
	}
	nelem := len(conn)
	err = sys.SetMassMatrix(fillv(nelem, d.rho))
	if err != nil {
		tst.Fatalf("SetMassMatrix failed:\n%v", err)
	}
	err = sys.SetDampingMatrix(fillv(nelem, d.alpha))
	if err != nil {
		tst.Fatalf("SetDampingMatrix failed:\n%v", err)
	}
	err = sys.SetElastic(fillv(len(elastic), d.K), fillv(len(elastic), d.G))
	if err != nil {
		tst.Fatalf("SetElastic failed:\n%v", err)
	}
	epsy := make([][]float64, len(plastic))
	for i := range epsy {
		epsy[i] = d.epsy
	}
	err = sys.SetPlastic(fillv(len(plastic), d.K), fillv(len(plastic), d.G), epsy)
	if err != nil {
		tst.Fatalf("SetPlastic failed:\n%v", err)
	}
	err = sys.SetDt(d.dt)
	if err != nil {
		tst.Fatalf("SetDt failed:\n%v", err)
	}
	return sys
}

// shear returns the nodal displacements of a simple shear γ
func shear(coor [][]float64, γ float64) (u [][]float64) {
	u = make([][]float64, len(coor))
	for n, x := range coor {
		u[n] = []float64{γ * x[1], 0}
	}
	return
}

// periodicShear returns a simple shear γ of a periodic mesh; nodes sharing DOFs get equal values
func periodicShear(msh *inp.Mesh, γ float64) (u [][]float64) {
	u = shear(msh.Coor, γ)
	for k, r := range msh.Right {
		copy(u[r], u[msh.Left[k]])
	}
	return
}
