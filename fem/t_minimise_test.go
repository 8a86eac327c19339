// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tdegeus/FrictionQPotGooseFEM/ana"
	"gonum.org/v1/gonum/floats"
)

func Test_minimise01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("minimise01. elastic system returns to rest")

	coor, conn, dofs, iip := twoCells()
	sys := newSystem(tst, coor, conn, dofs, iip, []int{0, 1}, nil, sysdata{
		K: 1, G: 1, rho: 1, alpha: 1, dt: 0.01,
	})

	// small velocity of the free nodes
	v := sys.vec.AllocNode()
	for _, n := range []int{3, 4, 5} {
		v[n][0] = 1e-6
	}
	err := sys.SetV(v)
	if err != nil {
		tst.Errorf("SetV failed:\n%v", err)
		return
	}

	// minimise
	converged, niter, err := sys.Minimise(DefaultMinimiseOptions())
	if err != nil {
		tst.Errorf("Minimise failed:\n%v", err)
		return
	}
	io.Pforan("niter = %d, t = %g\n", niter, sys.T())
	if !converged {
		tst.Errorf("Minimise did not converge")
		return
	}
	chk.Float64(tst, "t", 1e-12, sys.T(), float64(niter)*0.01)
	sys.vec.AsDofs(sys.U(), sys.dofval)
	chk.Float64(tst, "|u|", 1e-8, floats.Norm(sys.dofval, 2), 0)
	for n := range sys.V() {
		chk.Array(tst, io.Sf("v%d", n), 1e-17, sys.V()[n], []float64{0, 0})
	}
}

func Test_minimise02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("minimise02. perturbed layered system")

	msh := layered(tst, 4, 1, 1)
	epsy := make([]float64, 50)
	for i := range epsy {
		epsy[i] = 0.01 + 0.02*float64(i)
	}
	sys := newSystem(tst, msh.Coor, msh.Conn, msh.Dofs, msh.Iip, msh.Elastic, msh.Plastic, sysdata{
		K: 10, G: 1, epsy: epsy, rho: 1, alpha: 0.5, dt: 0.05,
	})

	// layered shear at equilibrium with the plastic layer in its second well
	γ := 0.025
	γ0, err := ana.WellCentre(epsy, 1)
	if err != nil {
		tst.Errorf("WellCentre failed:\n%v", err)
		return
	}
	sol, err := ana.NewLayeredShear([]float64{1, 1, 1}, []float64{1, 1, 1}, []float64{0, γ0, 0})
	if err != nil {
		tst.Errorf("NewLayeredShear failed:\n%v", err)
		return
	}
	τ, _ := sol.Solve(γ)
	u := sys.vec.AllocNode()
	for n, x := range msh.Coor {
		u[n][0] = sol.Displacement(γ, x[1])
	}

	// perturbation of the free DOFs
	sys.vec.AsDofs(u, sys.dofval)
	for _, eq := range sys.vec.Iiu() {
		sys.dofval[eq] += 1e-4 * math.Sin(float64(3*eq))
	}
	sys.vec.AsNode(sys.dofval, u)
	err = sys.SetU(u)
	if err != nil {
		tst.Errorf("SetU failed:\n%v", err)
		return
	}

	// number of steps is limited
	opts := DefaultMinimiseOptions()
	opts.MaxIter = 5
	converged, niter, err := sys.Minimise(opts)
	if err != nil {
		tst.Errorf("Minimise failed:\n%v", err)
		return
	}
	if converged {
		tst.Errorf("Minimise must not converge in %d steps", opts.MaxIter)
	}
	chk.Int(tst, "niter", niter, 5)

	// terminate
	t0 := sys.T()
	opts.MaxIter = 200000
	converged, niter, err = sys.Minimise(opts)
	if err != nil {
		tst.Errorf("Minimise failed:\n%v", err)
		return
	}
	io.Pforan("converged = %v, niter = %d, t = %g\n", converged, niter, sys.T())
	if niter > opts.MaxIter {
		tst.Errorf("too many steps: %d", niter)
	}
	if sys.T() < t0 {
		tst.Errorf("time must not decrease: %g < %g", sys.T(), t0)
	}
	if !converged {
		tst.Errorf("Minimise did not converge")
		return
	}

	// all plastic points remain in the second well
	for e, row := range sys.PlasticCurrentIndex() {
		chk.Ints(tst, io.Sf("idx%d", e), row, []int{1, 1, 1, 1})
	}

	// equilibrium: all layers carry the same shear stress
	io.Pforan("σxy = %v\n", sys.PlasticSigxy())
	chk.Float64(tst, "σxy", 1e-6, sys.PlasticSigxy(), τ)
	err = sys.ComputeStress()
	if err != nil {
		tst.Errorf("ComputeStress failed:\n%v", err)
		return
	}
	for e, row := range sys.Sig() {
		for q := range row {
			chk.Float64(tst, io.Sf("σxy%d%d", e, q), 1e-6, row[q][0][1], τ)
		}
	}
}
