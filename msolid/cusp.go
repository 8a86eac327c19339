// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// CuspModel implements an elasto-plastic model with a cusp potential
//
//  The deviatoric potential is a sequence of parabolas centred between consecutive yield strains:
//
//   W = K εm² + G [ (εeq - εmin)² - (Δεy/2)² ]    for    εy[i] <= εeq < εy[i+1]
//   σ = K εm I + G (1 - εmin/εeq) εd
//
//  with εmin = (εy[i] + εy[i+1])/2 and Δεy = εy[i+1] - εy[i]. The index i is the current yield
//  index; it is updated (searching from its previous value) each time the strain is set.
type CuspModel struct {
	K     float64   // bulk modulus
	G     float64   // shear modulus
	Epsy  []float64 // yield strains (including the leading -εy[0])
	state State
}

// NewCuspModel returns a new cusp model at zero strain
//  epsy -- sorted yield strains; -epsy[0] is prepended such that zero strain is in the first well
func NewCuspModel(k, g float64, epsy []float64) (o *CuspModel, err error) {
	if len(epsy) < 1 {
		return nil, chk.Err("cusp model requires at least one yield strain")
	}
	if epsy[0] <= 0 {
		return nil, chk.Err("first yield strain must be positive. εy[0] = %g is invalid", epsy[0])
	}
	for i := 1; i < len(epsy); i++ {
		if epsy[i] <= epsy[i-1] {
			return nil, chk.Err("yield strains must be strictly increasing. εy[%d]=%g <= εy[%d]=%g", i, epsy[i], i-1, epsy[i-1])
		}
	}
	o = &CuspModel{K: k, G: g}
	o.Epsy = make([]float64, len(epsy)+1)
	o.Epsy[0] = -epsy[0]
	copy(o.Epsy[1:], epsy)
	return
}

// Kind returns Cusp
func (o *CuspModel) Kind() Kind { return Cusp }

// Set sets moduli
func (o *CuspModel) Set(k, g float64) {
	o.K, o.G = k, g
	o.state.Sig = o.stress(o.state.Eps)
}

// Moduli returns K and G
func (o *CuspModel) Moduli() (k, g float64) { return o.K, o.G }

// SetStrain updates the yield index and the stress for given strain
func (o *CuspModel) SetStrain(ε Ten2) error {
	i, err := o.locate(Epsd(ε))
	if err != nil {
		return err
	}
	o.state.Idx = i
	o.state.Eps = ε
	o.state.Sig = o.stress(ε)
	return nil
}

// State returns the current state
func (o *CuspModel) State() *State { return &o.state }

// CurrentIndex returns the index of the current yield interval
func (o *CuspModel) CurrentIndex() int { return o.state.Idx }

// CurrentYieldLeft returns the yield strain to the left of the current strain
func (o *CuspModel) CurrentYieldLeft() float64 { return o.Epsy[o.state.Idx] }

// CurrentYieldRight returns the yield strain to the right of the current strain
func (o *CuspModel) CurrentYieldRight() float64 { return o.Epsy[o.state.Idx+1] }

// EpsMin returns the equivalent strain at the bottom of the current well
func (o *CuspModel) EpsMin() float64 {
	return 0.5 * (o.CurrentYieldLeft() + o.CurrentYieldRight())
}

// Energy returns the energy density
func (o *CuspModel) Energy() float64 {
	εm := Epsm(o.state.Eps)
	εeq := Epsd(o.state.Eps)
	Δεy := o.CurrentYieldRight() - o.CurrentYieldLeft()
	x := εeq - o.EpsMin()
	return o.K*εm*εm + o.G*(x*x-0.25*Δεy*Δεy)
}

// GetCopy returns a copy
func (o *CuspModel) GetCopy() Model {
	p := *o
	p.Epsy = make([]float64, len(o.Epsy))
	copy(p.Epsy, o.Epsy)
	return &p
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// locate finds i such that εy[i] <= εeq < εy[i+1], starting from the current index
func (o *CuspModel) locate(εeq float64) (i int, err error) {
	n := len(o.Epsy)
	if εeq >= o.Epsy[n-1] {
		return o.state.Idx, fmt.Errorf("%w: εeq = %g >= εy[last] = %g", ErrYieldExceeded, εeq, o.Epsy[n-1])
	}
	i = o.state.Idx
	for i < n-2 && εeq >= o.Epsy[i+1] {
		i++
	}
	for i > 0 && εeq < o.Epsy[i] {
		i--
	}
	return
}

func (o *CuspModel) stress(ε Ten2) (σ Ten2) {
	εm := Epsm(ε)
	εeq := Epsd(ε)
	var c float64
	if εeq > 0 {
		c = o.G * (1.0 - o.EpsMin()/εeq)
	}
	εd := ε.Deviator()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			σ[i][j] = c * εd[i][j]
		}
		σ[i][i] += o.K * εm
	}
	return
}
