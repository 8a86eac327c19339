// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdegeus/FrictionQPotGooseFEM/msolid"
)

// Barrier holds the shear strain increment to reach a barrier and the corresponding change
// of energy of one element
type Barrier struct {
	Dgamma float64 // increment of shear strain γ
	DE     float64 // change of energy
}

// PlasticEnergyLandscapeSimpleShear computes the change of energy of each plastic element when
// a simple shear Δγ is added to the strain of all its points
//
//  ΔE(Δγ) = Σ_q [ W(ε + Δε(Δγ)) - W(ε) - tilt ] dV    with    tilt = σ_xy Δγ if tilted
//
// Points are evaluated on copies; thus, the state of the System is not modified. An increment
// that moves a point beyond its last yield strain gives NaN.
//  Output:
//   E -- [len(plastic)][len(dgamma)] energy changes
func (o *System) PlasticEnergyLandscapeSimpleShear(dgamma []float64, tilted bool) (E [][]float64, err error) {
	err = o.diagnosticsPrepare()
	if err != nil {
		return
	}
	E = make([][]float64, o.plas.Nelem())
	for e := range E {
		E[e] = make([]float64, len(dgamma))
		for i, dγ := range dgamma {
			E[e][i], err = o.shearEnergy(e, dγ, tilted)
			if err != nil {
				return nil, err
			}
		}
	}
	return
}

// PlasticYieldBarrierSimpleShear computes, for each plastic element, the simple shear increment
// that brings the equivalent strain of point iquad to the next yield strain (plus depsKick), and
// the corresponding (not tilted) change of energy of the element
func (o *System) PlasticYieldBarrierSimpleShear(depsKick float64, iquad int) (B []Barrier, err error) {
	if iquad < 0 || iquad >= o.quad.Nip {
		return nil, fmt.Errorf("%w: integration point %d is out of range [0,%d)", ErrConfig, iquad, o.quad.Nip)
	}
	err = o.diagnosticsPrepare()
	if err != nil {
		return
	}
	B = make([]Barrier, o.plas.Nelem())
	right := o.plas.Mat.CurrentYieldRight()
	for e := range B {
		B[e].Dgamma = yieldShear(o.plas.Eps[e][iquad], right[e][iquad]+depsKick)
		B[e].DE, err = o.shearEnergy(e, B[e].Dgamma, false)
		if err != nil {
			return nil, err
		}
	}
	return
}

// PlasticEnergyBarrierSimpleShear searches, for each plastic element, the smallest simple shear
// increment at which the (tilted) energy landscape reaches a maximum. The search steps from one
// yield strain (cusp) to the next one; the barrier is found when the energy decreases just after
// a cusp (checked with the given perturbation of Δγ). Elements for which no barrier is found
// within maxIter cusps, or before the last yield strain, get NaN. Other errors are returned
func (o *System) PlasticEnergyBarrierSimpleShear(tilted bool, maxIter int, perturbation float64) (B []Barrier, err error) {
	if !(perturbation > 0) {
		return nil, fmt.Errorf("%w: perturbation must be positive; %g is invalid", ErrConfig, perturbation)
	}
	err = o.diagnosticsPrepare()
	if err != nil {
		return
	}
	B = make([]Barrier, o.plas.Nelem())
	for e := range B {
		B[e] = Barrier{math.NaN(), math.NaN()}
		var γ, dγ, Ec, Ep float64
		for it := 0; it < maxIter; it++ {
			dγ, err = o.nextCusp(e, γ)
			if errors.Is(err, msolid.ErrYieldExceeded) {
				err = nil
				break
			}
			if err != nil {
				return nil, err
			}
			if !(dγ > 0) {
				dγ = perturbation
			}
			γ += dγ
			Ec, err = o.shearEnergy(e, γ, tilted)
			if err != nil {
				return nil, err
			}
			if math.IsNaN(Ec) {
				break
			}
			Ep, err = o.shearEnergy(e, γ+perturbation, tilted)
			if err != nil {
				return nil, err
			}
			if math.IsNaN(Ep) {
				break
			}
			if Ep < Ec {
				B[e] = Barrier{γ, Ec}
				break
			}
			γ += perturbation
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// diagnosticsPrepare refreshes the strains and stresses of the plastic elements
func (o *System) diagnosticsPrepare() error {
	if !o.kelasDone {
		return fmt.Errorf("%w: elastic and plastic parameters must be set first", ErrNotReady)
	}
	return o.plas.ComputeStrain(o.u)
}

// shearEnergy returns the change of energy of plastic element e after a simple shear dγ
func (o *System) shearEnergy(e int, dγ float64, tilted bool) (ΔE float64, err error) {
	Δε := msolid.SimpleShear(dγ)
	dV := o.plas.Quad.Vol[e]
	for q := 0; q < o.plas.Quad.Nip; q++ {
		m := o.plas.Mat.Trial(e, q)
		W0 := m.Energy()
		err = m.SetStrain(o.plas.Eps[e][q].Add(1, Δε))
		if errors.Is(err, msolid.ErrYieldExceeded) {
			return math.NaN(), nil
		}
		if err != nil {
			return
		}
		ΔE += (m.Energy() - W0) * dV[q]
		if tilted {
			ΔE -= o.plas.Sig[e][q][0][1] * dγ * dV[q]
		}
	}
	return
}

// nextCusp returns the smallest increment from γ that brings a point of element e to a yield strain
func (o *System) nextCusp(e int, γ float64) (dγ float64, err error) {
	dγ = math.Inf(1)
	Δε := msolid.SimpleShear(γ)
	for q := 0; q < o.plas.Quad.Nip; q++ {
		m, ok := o.plas.Mat.Trial(e, q).(*msolid.CuspModel)
		if !ok {
			return 0, fmt.Errorf("%w: plastic element %d has a point (%d) that is not plastic", ErrConfig, e, q)
		}
		ε := o.plas.Eps[e][q].Add(1, Δε)
		err = m.SetStrain(ε)
		if err != nil {
			return
		}
		dγ = math.Min(dγ, yieldShear(ε, m.CurrentYieldRight()))
	}
	return
}

// yieldShear returns the simple shear increment that brings the equivalent strain to epsy
//  εeq² = εd_xx² + εd_xy²   =>   Δγ = 2 ( sqrt(epsy² - εd_xx²) - εd_xy )
func yieldShear(ε msolid.Ten2, epsy float64) float64 {
	εd := ε.Deviator()
	return 2.0 * (math.Sqrt(epsy*epsy-εd[0][0]*εd[0][0]) - εd[0][1])
}
