// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_layered01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("layered01. elastic layers")

	sol, err := NewLayeredShear([]float64{1, 2}, []float64{1, 4}, nil)
	if err != nil {
		tst.Errorf("NewLayeredShear failed:\n%v", err)
		return
	}
	chk.Float64(tst, "H", 1e-17, sol.Height(), 3)

	// σxy = 0.03 / (2 + 1) = 0.01
	sigxy, gammas := sol.Solve(0.01)
	io.Pforan("σxy = %v, γ = %v\n", sigxy, gammas)
	chk.Float64(tst, "σxy", 1e-15, sigxy, 0.01)
	chk.Array(tst, "γ", 1e-15, gammas, []float64{0.02, 0.005})
	chk.Float64(tst, "u(0)", 1e-15, sol.Displacement(0.01, 0), 0)
	chk.Float64(tst, "u(0.5)", 1e-15, sol.Displacement(0.01, 0.5), 0.01)
	chk.Float64(tst, "u(2)", 1e-15, sol.Displacement(0.01, 2), 0.025)
	chk.Float64(tst, "u(3)", 1e-15, sol.Displacement(0.01, 3), 0.03)

	// errors
	_, err = NewLayeredShear([]float64{1}, []float64{1, 2}, nil)
	if err == nil {
		tst.Errorf("NewLayeredShear must fail with inconsistent moduli")
		return
	}
	_, err = NewLayeredShear([]float64{1}, []float64{0}, nil)
	if err == nil {
		tst.Errorf("NewLayeredShear must fail with zero modulus")
		return
	}
	_, err = NewLayeredShear([]float64{1}, []float64{1}, []float64{0, 0})
	if err == nil {
		tst.Errorf("NewLayeredShear must fail with inconsistent well strains")
	}
}

func Test_layered02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("layered02. plastic layer between elastic layers")

	epsy := []float64{0.01, 0.03, 0.05}
	γ0, err := WellCentre(epsy, 1)
	if err != nil {
		tst.Errorf("WellCentre failed:\n%v", err)
		return
	}
	chk.Float64(tst, "γ0", 1e-15, γ0, 0.04)
	γ0first, _ := WellCentre(epsy, 0)
	chk.Float64(tst, "γ0(first)", 1e-17, γ0first, 0)
	_, err = WellCentre(epsy, 3)
	if err == nil {
		tst.Errorf("WellCentre must fail with index out of range")
		return
	}

	sol, err := NewLayeredShear([]float64{1, 1, 1}, []float64{1, 1, 1}, []float64{0, γ0, 0})
	if err != nil {
		tst.Errorf("NewLayeredShear failed:\n%v", err)
		return
	}
	γ := 0.025
	sigxy, gammas := sol.Solve(γ)
	γe := (3*γ - 0.04) / 3
	chk.Float64(tst, "σxy", 1e-15, sigxy, γe/2)
	chk.Array(tst, "γ", 1e-15, gammas, []float64{γe, γe + 0.04, γe})
	chk.Float64(tst, "u(H)", 1e-15, sol.Displacement(γ, 3), 3*γ)
}
