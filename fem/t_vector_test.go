// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_vector01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vector01. conversions and assembly")

	_, conn, dofs, iip := twoCells()
	iip = []int{0, 1, 2, 3, 4, 5}
	vec, err := NewVector(conn, dofs, iip)
	if err != nil {
		tst.Errorf("NewVector failed:\n%v", err)
		return
	}
	chk.Int(tst, "nelem", vec.Nelem, 2)
	chk.Int(tst, "nne", vec.Nne, 4)
	chk.Int(tst, "nnode", vec.Nnode, 6)
	chk.Int(tst, "ndof", vec.Ndof, 12)
	chk.Ints(tst, "iiu", vec.Iiu(), []int{6, 7, 8, 9, 10, 11})

	// nodal => DOFs => nodal
	u := vec.AllocNode()
	for n := range u {
		u[n][0], u[n][1] = float64(n), -float64(n)
	}
	dofval := make([]float64, vec.Ndof)
	vec.AsDofs(u, dofval)
	chk.Array(tst, "dofval", 1e-17, dofval, []float64{0, 0, 1, -1, 2, -2, 3, -3, 4, -4, 5, -5})
	w := vec.AllocNode()
	vec.AsNode(dofval, w)
	for n := range w {
		chk.Array(tst, io.Sf("w%d", n), 1e-17, w[n], u[n])
	}

	// element vectors
	ue := vec.AllocElem()
	vec.AsElement(u, ue)
	chk.Array(tst, "ue[1][2]", 1e-17, ue[1][2], []float64{5, -5})
	chk.Array(tst, "ue[0][3]", 1e-17, ue[0][3], []float64{3, -3})

	// assembly: shared nodes receive both contributions
	for e := range ue {
		for m := range ue[e] {
			ue[e][m][0], ue[e][m][1] = 1, 2
		}
	}
	f := vec.AllocNode()
	vec.AssembleNode(ue, f)
	for n, mult := range []float64{1, 2, 1, 1, 2, 1} {
		chk.Array(tst, io.Sf("f%d", n), 1e-17, f[n], []float64{mult, 2 * mult})
	}

	// copy prescribed
	g := vec.AllocNode()
	vec.CopyP(u, g)
	for n := range g {
		if n < 3 {
			chk.Array(tst, io.Sf("g%d", n), 1e-17, g[n], u[n])
		} else {
			chk.Array(tst, io.Sf("g%d", n), 1e-17, g[n], []float64{0, 0})
		}
	}
}

func Test_vector02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vector02. periodic numbering")

	msh := layered(tst, 2, 0, 0)
	vec, err := NewVector(msh.Conn, msh.Dofs, msh.Iip)
	if err != nil {
		tst.Errorf("NewVector failed:\n%v", err)
		return
	}
	chk.Int(tst, "nnode", vec.Nnode, 6)
	chk.Int(tst, "ndof", vec.Ndof, 8)
	chk.Ints(tst, "dofs of node 2", vec.Dofs[2], vec.Dofs[0])
	chk.Ints(tst, "dofs of node 5", vec.Dofs[5], vec.Dofs[3])

	// each node is shared by two cells
	fe := vec.AllocElem()
	for e := range fe {
		for m := range fe[e] {
			fe[e][m][0], fe[e][m][1] = 1, -1
		}
	}
	f := vec.AllocNode()
	vec.AssembleNode(fe, f)
	for n := range f {
		chk.Array(tst, io.Sf("f%d", n), 1e-17, f[n], []float64{2, -2})
	}

	// selection keeps numbering
	sel := vec.Select([]int{1})
	chk.Int(tst, "sel: nelem", sel.Nelem, 1)
	chk.Int(tst, "sel: ndof", sel.Ndof, 8)
	fe = sel.AllocElem()
	for m := range fe[0] {
		fe[0][m][0] = 1
	}
	sel.AssembleNode(fe, f)
	for n, val := range []float64{1, 1, 1, 1, 1, 1} {
		chk.Float64(tst, io.Sf("sel: f%d", n), 1e-17, f[n][0], val)
	}
}

func Test_vector03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vector03. invalid numbering")

	_, conn, dofs, iip := unitSquare()
	for i, c := range []struct {
		conn, dofs [][]int
		iip        []int
	}{
		{nil, dofs, iip},
		{[][]int{{0, 1, 2, 4}}, dofs, iip},
		{conn, [][]int{{0, 1}, {2, 3}, {4, 5}, {6, -1}}, iip},
		{conn, dofs, []int{8}},
	} {
		_, err := NewVector(c.conn, c.dofs, c.iip)
		if !errors.Is(err, ErrConfig) {
			tst.Errorf("test %d: ErrConfig expected; got %v", i, err)
		}
	}
}
