// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// LinElast implements a linear elastic model
//
//  σ = K εm I + G εd    with    εm = tr(ε)/2 ,  εd = ε - εm I
//  W = K εm² + G εeq²   with    εeq = sqrt(εd:εd / 2)
type LinElast struct {
	K     float64 // bulk modulus
	G     float64 // shear modulus
	state State
}

// NewLinElast returns a new linear elastic model at zero strain
func NewLinElast(k, g float64) *LinElast {
	return &LinElast{K: k, G: g}
}

// Kind returns Elastic
func (o *LinElast) Kind() Kind { return Elastic }

// Set sets moduli
func (o *LinElast) Set(k, g float64) {
	o.K, o.G = k, g
	o.state.Sig = o.stress(o.state.Eps)
}

// Moduli returns K and G
func (o *LinElast) Moduli() (k, g float64) { return o.K, o.G }

// SetStrain updates the stress for given strain
func (o *LinElast) SetStrain(ε Ten2) error {
	o.state.Eps = ε
	o.state.Sig = o.stress(ε)
	return nil
}

// State returns the current state
func (o *LinElast) State() *State { return &o.state }

// Energy returns the energy density
func (o *LinElast) Energy() float64 {
	εm := Epsm(o.state.Eps)
	εeq := Epsd(o.state.Eps)
	return o.K*εm*εm + o.G*εeq*εeq
}

// GetCopy returns a copy
func (o *LinElast) GetCopy() Model {
	p := *o
	return &p
}

// CalcD computes the (constant) tangent D = dσ/dε
func (o *LinElast) CalcD() (D Ten4) {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				for l := 0; l < 2; l++ {
					var II, I4s float64
					if i == j && k == l {
						II = 1
					}
					if i == l && j == k {
						I4s += 0.5
					}
					if i == k && j == l {
						I4s += 0.5
					}
					D[i][j][k][l] = 0.5*o.K*II + o.G*(I4s-0.5*II)
				}
			}
		}
	}
	return
}

func (o *LinElast) stress(ε Ten2) (σ Ten2) {
	εm := Epsm(ε)
	εd := ε.Deviator()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			σ[i][j] = o.G * εd[i][j]
		}
		σ[i][i] += o.K * εm
	}
	return
}
