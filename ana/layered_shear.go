// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"github.com/cpmech/gosl/chk"
)

// LayeredShear implements the equilibrium of a stack of horizontal layers under simple shear
//
//      y ^        γ H
//        |   ----------→
//        |   |  G_n-1 | h_n-1
//        |   |  ...   |
//        |   |  G_1   | h_1
//        |   |  G_0   | h_0
//        |   ----------
//        |   △△△△△△△△△△        ---> x
//
// All layers carry the same shear stress
//
//  σxy = G_i (γ_i - γ0_i) / 2
//
// where γ0_i is the shear strain at the bottom of the current well of a plastic layer
// (see WellCentre) and γ0_i = 0 for elastic layers
type LayeredShear struct {
	h  []float64 // thicknesses
	g  []float64 // shear moduli
	γ0 []float64 // shear strains at the bottom of wells
	ht float64   // total height
}

// NewLayeredShear returns a new LayeredShear structure. gamma0 may be nil (all layers elastic)
func NewLayeredShear(h, G, gamma0 []float64) (o *LayeredShear, err error) {
	if len(h) < 1 || len(G) != len(h) {
		return nil, chk.Err("number of thicknesses (%d) and moduli (%d) must be equal and positive", len(h), len(G))
	}
	if gamma0 == nil {
		gamma0 = make([]float64, len(h))
	}
	if len(gamma0) != len(h) {
		return nil, chk.Err("number of well strains (%d) must be equal to the number of layers (%d)", len(gamma0), len(h))
	}
	o = &LayeredShear{h: h, g: G, γ0: gamma0}
	for i := range h {
		if !(h[i] > 0) || !(G[i] > 0) {
			return nil, chk.Err("layer %d: thickness and modulus must be positive; h=%g, G=%g", i, h[i], G[i])
		}
		o.ht += h[i]
	}
	return
}

// Solve computes the shear stress and the shear strain of each layer for an imposed
// average shear strain γ; i.e. the top displacement is γ H
//
//  Σ h_i γ_i = γ H    =>    σxy = (γ H - Σ h_i γ0_i) / Σ (2 h_i / G_i)
func (o *LayeredShear) Solve(γ float64) (sigxy float64, gammas []float64) {
	num, den := γ*o.ht, 0.0
	for i := range o.h {
		num -= o.h[i] * o.γ0[i]
		den += 2.0 * o.h[i] / o.g[i]
	}
	sigxy = num / den
	gammas = make([]float64, len(o.h))
	for i := range o.h {
		gammas[i] = o.γ0[i] + 2.0*sigxy/o.g[i]
	}
	return
}

// Displacement computes the horizontal displacement at height y (measured from the bottom)
// for an imposed average shear strain γ
func (o *LayeredShear) Displacement(γ, y float64) (ux float64) {
	_, gammas := o.Solve(γ)
	y0 := 0.0
	for i := range o.h {
		if y <= y0+o.h[i] || i == len(o.h)-1 {
			return ux + gammas[i]*(y-y0)
		}
		ux += gammas[i] * o.h[i]
		y0 += o.h[i]
	}
	return
}

// Height returns the total height of the stack
func (o *LayeredShear) Height() float64 { return o.ht }

// WellCentre returns the shear strain γ0 = 2 εmin at the bottom of well idx of the cusp
// potential with yield strains epsy; εmin = (εy_left + εy_right)/2 where the yield strain
// left of the first well is -epsy[0]
func WellCentre(epsy []float64, idx int) (γ0 float64, err error) {
	if idx < 0 || idx >= len(epsy) {
		return 0, chk.Err("well index %d is out of range [0,%d)", idx, len(epsy))
	}
	if idx == 0 {
		return 0, nil
	}
	return epsy[idx-1] + epsy[idx], nil
}
