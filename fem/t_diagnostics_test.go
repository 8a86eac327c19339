// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tdegeus/FrictionQPotGooseFEM/msolid"
)

func Test_diag01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diag01. energy landscape and barriers at zero strain")

	coor, conn, dofs, iip := unitSquare()
	sys := newSystem(tst, coor, conn, dofs, iip, nil, []int{0}, sysdata{
		K: 1, G: 1, epsy: []float64{0.01, 0.03, 0.05}, rho: 1, alpha: 0.1, dt: 0.1,
	})

	// landscape: ΔE = (Δγ/2)² in the first well; NaN beyond the last yield strain
	dgamma := []float64{0, 0.01, 0.019, 0.2}
	for _, tilted := range []bool{false, true} {
		E, err := sys.PlasticEnergyLandscapeSimpleShear(dgamma, tilted)
		if err != nil {
			tst.Errorf("PlasticEnergyLandscapeSimpleShear failed:\n%v", err)
			return
		}
		io.Pforan("E = %v\n", E)
		chk.Int(tst, "nplastic", len(E), 1)
		chk.Array(tst, io.Sf("E(tilted=%v)", tilted), 1e-15, E[0][:3], []float64{0, 2.5e-5, 0.0095 * 0.0095})
		if !math.IsNaN(E[0][3]) {
			tst.Errorf("energy beyond the last yield strain must be NaN; got %g", E[0][3])
		}
	}

	// yield barrier
	B, err := sys.PlasticYieldBarrierSimpleShear(0, 0)
	if err != nil {
		tst.Errorf("PlasticYieldBarrierSimpleShear failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Δγ", 1e-15, B[0].Dgamma, 0.02)
	chk.Float64(tst, "ΔE", 1e-15, B[0].DE, 1e-4)

	// yield barrier with kick: (0.011-0.02)² - 0.01² - (-0.01²)
	B, err = sys.PlasticYieldBarrierSimpleShear(0.001, 3)
	if err != nil {
		tst.Errorf("PlasticYieldBarrierSimpleShear failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Δγ(kick)", 1e-15, B[0].Dgamma, 0.022)
	chk.Float64(tst, "ΔE(kick)", 1e-15, B[0].DE, 0.009*0.009)

	// energy barrier
	for _, tilted := range []bool{false, true} {
		B, err = sys.PlasticEnergyBarrierSimpleShear(tilted, 100, 1e-12)
		if err != nil {
			tst.Errorf("PlasticEnergyBarrierSimpleShear failed:\n%v", err)
			return
		}
		chk.Float64(tst, io.Sf("Δγ(tilted=%v)", tilted), 1e-12, B[0].Dgamma, 0.02)
		chk.Float64(tst, io.Sf("ΔE(tilted=%v)", tilted), 1e-12, B[0].DE, 1e-4)
	}

	// the state is not modified
	chk.Ints(tst, "idx", sys.PlasticCurrentIndex()[0], []int{0, 0, 0, 0})
	chk.Array(tst, "u2", 1e-17, sys.U()[2], []float64{0, 0})

	// errors
	if _, err = sys.PlasticYieldBarrierSimpleShear(0, 4); !errors.Is(err, ErrConfig) {
		tst.Errorf("ErrConfig expected; got %v", err)
	}
	if _, err = sys.PlasticEnergyBarrierSimpleShear(false, 100, 0); !errors.Is(err, ErrConfig) {
		tst.Errorf("ErrConfig expected; got %v", err)
	}
}

func Test_diag02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diag02. barriers of a sheared element")

	coor, conn, dofs, iip := unitSquare()
	sys := newSystem(tst, coor, conn, dofs, iip, nil, []int{0}, sysdata{
		K: 1, G: 1, epsy: []float64{0.01, 0.03, 0.05}, rho: 1, alpha: 0.1, dt: 0.1,
	})
	err := sys.SetU(shear(coor, 0.03))
	if err != nil {
		tst.Errorf("SetU failed:\n%v", err)
		return
	}
	chk.Ints(tst, "idx", sys.PlasticCurrentIndex()[0], []int{1, 1, 1, 1})

	// εeq = 0.015 in the well [0.01, 0.03]: W0 = 0.005² - 0.01²
	W0 := 0.005*0.005 - 1e-4
	B, err := sys.PlasticYieldBarrierSimpleShear(0, 0)
	if err != nil {
		tst.Errorf("PlasticYieldBarrierSimpleShear failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Δγ", 1e-15, B[0].Dgamma, 0.03)
	chk.Float64(tst, "ΔE", 1e-15, B[0].DE, -W0)

	// the tilt removes the work of the current stress σxy = -0.005
	B, err = sys.PlasticEnergyBarrierSimpleShear(true, 100, 1e-12)
	if err != nil {
		tst.Errorf("PlasticEnergyBarrierSimpleShear failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Δγ(tilted)", 1e-12, B[0].Dgamma, 0.03)
	chk.Float64(tst, "ΔE(tilted)", 1e-12, B[0].DE, -W0+0.005*0.03)

	// landscape: first point after the cusp is lower than the cusp
	E, err := sys.PlasticEnergyLandscapeSimpleShear([]float64{0.03, 0.031}, true)
	if err != nil {
		tst.Errorf("PlasticEnergyLandscapeSimpleShear failed:\n%v", err)
		return
	}
	if !(E[0][1] < E[0][0]) {
		tst.Errorf("energy must decrease after the cusp: %v", E[0])
	}
}

func Test_diag03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diag03. no barrier within the yield strains")

	coor, conn, dofs, iip := unitSquare()
	sys := newSystem(tst, coor, conn, dofs, iip, nil, []int{0}, sysdata{
		K: 1, G: 1, epsy: []float64{0.01}, rho: 1, alpha: 0.1, dt: 0.1,
	})
	B, err := sys.PlasticEnergyBarrierSimpleShear(false, 100, 1e-12)
	if err != nil {
		tst.Errorf("PlasticEnergyBarrierSimpleShear failed:\n%v", err)
		return
	}
	if !math.IsNaN(B[0].Dgamma) || !math.IsNaN(B[0].DE) {
		tst.Errorf("barrier must be NaN; got %+v", B[0])
	}
}

func Test_diag04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diag04. landscape of a layered system")

	msh := layered(tst, 4, 1, 1)
	sys := newSystem(tst, msh.Coor, msh.Conn, msh.Dofs, msh.Iip, msh.Elastic, msh.Plastic, sysdata{
		K: 10, G: 1, epsy: []float64{0.01, 0.03, 0.05}, rho: 1, alpha: 0.1, dt: 0.05,
	})
	err := sys.SetU(periodicShear(msh, 0.004))
	if err != nil {
		tst.Errorf("SetU failed:\n%v", err)
		return
	}
	E, err := sys.PlasticEnergyLandscapeSimpleShear([]float64{-0.002, 0, 0.002}, true)
	if err != nil {
		tst.Errorf("PlasticEnergyLandscapeSimpleShear failed:\n%v", err)
		return
	}
	chk.Int(tst, "nplastic", len(E), 4)

	// quadratic well: tilted landscape is (Δγ/2)² for all elements
	for e := range E {
		chk.Array(tst, io.Sf("E%d", e), 1e-15, E[e], []float64{1e-6, 0, 1e-6})
	}
	B, err := sys.PlasticYieldBarrierSimpleShear(0, 0)
	if err != nil {
		tst.Errorf("PlasticYieldBarrierSimpleShear failed:\n%v", err)
		return
	}
	for e := range B {
		chk.Float64(tst, io.Sf("Δγ%d", e), 1e-15, B[e].Dgamma, 0.016)
	}
}

func Test_diag05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diag05. energy barrier: yield exceeded gives NaN; other errors are returned")

	coor, conn, dofs, iip := unitSquare()
	sys := newSystem(tst, coor, conn, dofs, iip, nil, []int{0}, sysdata{
		K: 1, G: 1, epsy: []float64{0.01, 0.03}, rho: 1, alpha: 0.1, dt: 0.1,
	})

	// beyond the last yield strain after the first cusp
	err := sys.SetU(shear(coor, 0.05))
	if err != nil {
		tst.Errorf("SetU failed:\n%v", err)
		return
	}
	B, err := sys.PlasticEnergyBarrierSimpleShear(false, 100, 1e-12)
	if err != nil {
		tst.Errorf("PlasticEnergyBarrierSimpleShear failed:\n%v", err)
		return
	}
	if !math.IsNaN(B[0].Dgamma) || !math.IsNaN(B[0].DE) {
		tst.Errorf("barrier must be NaN; got %+v", B[0])
	}

	// a point of the plastic element without yield strains
	sys.plas.Mat.Models[0][1] = msolid.NewLinElast(1, 1)
	B, err = sys.PlasticEnergyBarrierSimpleShear(false, 100, 1e-12)
	if !errors.Is(err, ErrConfig) {
		tst.Errorf("ErrConfig expected; got %v", err)
		return
	}
	if B != nil {
		tst.Errorf("barriers must be nil on error; got %v", B)
	}
}
