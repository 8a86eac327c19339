// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tdegeus/FrictionQPotGooseFEM/msolid"
	"github.com/tdegeus/FrictionQPotGooseFEM/shp"
)

// distorted returns two cells with a displaced shared vertex
func distorted() (x [][][]float64, vec *Vector) {
	coor, conn, dofs, iip := twoCells()
	coor[4] = []float64{1.2, 1.1}
	x = make([][][]float64, len(conn))
	for e := range conn {
		for _, n := range conn[e] {
			x[e] = append(x[e], []float64{coor[n][0], coor[n][1]})
		}
	}
	vec, _ = NewVector(conn, dofs, iip)
	return
}

func Test_quad01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad01. volumes and symmetric gradient")

	x, vec := distorted()
	ips, _ := shp.GetIps("qua4", "gauss")
	quad, err := NewQuadrature(x, ips)
	if err != nil {
		tst.Errorf("NewQuadrature failed:\n%v", err)
		return
	}
	chk.Int(tst, "nip", quad.Nip, 4)

	// volumes
	for e, area := range []float64{1.15, 0.95} {
		vol := 0.0
		for _, dV := range quad.DV()[e] {
			vol += dV
		}
		io.Pforan("vol%d = %v\n", e, vol)
		chk.Float64(tst, io.Sf("vol%d", e), 1e-14, vol, area)
	}

	// affine displacement field => uniform strain
	a, b, c, d := 0.1, 0.2, -0.3, 0.05
	ue := vec.AllocElem()
	for e := range x {
		for m, X := range x[e] {
			ue[e][m][0] = a*X[0] + b*X[1]
			ue[e][m][1] = c*X[0] + d*X[1]
		}
	}
	eps := quad.AllocTen2()
	quad.SymGradN(ue, eps)
	for e := range eps {
		for q := range eps[e] {
			chk.Array(tst, io.Sf("ε%d%d", e, q), 1e-14, flat(eps[e][q]), []float64{a, (b + c) / 2, (b + c) / 2, d})
		}
	}

	// selection
	sel := quad.Select([]int{1})
	chk.Int(tst, "sel: nelem", sel.Nelem, 1)
	chk.Array(tst, "sel: dV", 1e-17, sel.DV()[0], quad.DV()[1])
}

func Test_quad02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad02. integration of forces and matrices")

	coor, conn, _, _ := unitSquare()
	x := [][][]float64{{coor[conn[0][0]], coor[conn[0][1]], coor[conn[0][2]], coor[conn[0][3]]}}
	ips, _ := shp.GetIps("qua4", "gauss")
	quad, err := NewQuadrature(x, ips)
	if err != nil {
		tst.Errorf("NewQuadrature failed:\n%v", err)
		return
	}

	// uniform σ_xx
	sig := quad.AllocTen2()
	for q := range sig[0] {
		sig[0][q][0][0] = 1
	}
	fe := [][][]float64{alloc(4, 2)}
	quad.IntGradNDotTensor2(sig, fe)
	for m, fx := range []float64{-0.5, 0.5, 0.5, -0.5} {
		chk.Array(tst, io.Sf("f%d", m), 1e-15, fe[0][m], []float64{fx, 0})
	}

	// consistent mass: total mass per direction
	rho := [][]float64{{2, 2, 2, 2}}
	M := quad.AllocMat()
	quad.IntNScalarNT(rho, M)
	for i := 0; i < 2; i++ {
		sum := 0.0
		for m := 0; m < 4; m++ {
			for n := 0; n < 4; n++ {
				sum += M[0][m*2+i][n*2+i]
			}
		}
		chk.Float64(tst, io.Sf("mass%d", i), 1e-15, sum, 2)
	}
	chk.Float64(tst, "M01", 1e-15, M[0][0][1], 0)

	// lumped mass
	ips, _ = shp.GetIps("qua4", "nodal")
	nodal, err := NewQuadrature(x, ips)
	if err != nil {
		tst.Errorf("NewQuadrature failed:\n%v", err)
		return
	}
	nodal.IntNScalarNT(rho, M)
	for r := range M[0] {
		for c := range M[0][r] {
			if r == c {
				chk.Float64(tst, io.Sf("M%d%d", r, c), 1e-15, M[0][r][c], 0.5)
			} else {
				chk.Float64(tst, io.Sf("M%d%d", r, c), 1e-15, M[0][r][c], 0)
			}
		}
	}

	// stiffness: rigid body motions produce no force
	C := quad.AllocTen4()
	for q := range C[0] {
		C[0][q] = msolid.NewLinElast(10, 1).CalcD()
	}
	K := quad.AllocMat()
	quad.IntGradNDotTensor4DotGradNT(C, K)
	for _, u := range [][]float64{
		{1, 0, 1, 0, 1, 0, 1, 0},   // translation x
		{0, 1, 0, 1, 0, 1, 0, 1},   // translation y
		{0, 0, 0, 1, -1, 1, -1, 0}, // rotation
	} {
		for r := range K[0] {
			f := 0.0
			for c := range K[0][r] {
				f += K[0][r][c] * u[c]
			}
			chk.Float64(tst, io.Sf("K⋅u[%d]", r), 1e-14, f, 0)
		}
	}

	// symmetry
	for r := range K[0] {
		for c := range K[0][r] {
			chk.Float64(tst, io.Sf("K%d%d-K%d%d", r, c, c, r), 1e-14, K[0][r][c], K[0][c][r])
		}
	}
}

// flat returns the components of a tensor in row order
func flat(A msolid.Ten2) []float64 {
	return []float64{A[0][0], A[0][1], A[1][0], A[1][1]}
}
