// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"errors"
	"fmt"
)

// ErrAssign is returned on contradictory or incomplete assignments of laws to points
var ErrAssign = errors.New("msolid: invalid material assignment")

// Array holds one model per integration point of a set of elements
type Array struct {
	Nelem  int       // number of elements
	Nip    int       // number of integration points per element
	Models [][]Model // [nelem][nip] models; nil if unset
}

// NewArray returns a new array without assigned models
func NewArray(nelem, nip int) *Array {
	o := &Array{Nelem: nelem, Nip: nip}
	o.Models = make([][]Model, nelem)
	for e := 0; e < nelem; e++ {
		o.Models[e] = make([]Model, nip)
	}
	return o
}

// SetElastic assigns linear elastic models
//  I   -- [nelem][nip] selection of points
//  idx -- [nelem][nip] index in the K and G lists of each selected point
func (o *Array) SetElastic(I [][]bool, idx [][]int, K, G []float64) (err error) {
	if len(K) != len(G) {
		return fmt.Errorf("%w: len(K)=%d != len(G)=%d", ErrAssign, len(K), len(G))
	}
	err = o.forEach(I, idx, len(K), Elastic, func(e, q, i int) error {
		if m, ok := o.Models[e][q].(*LinElast); ok {
			m.Set(K[i], G[i])
			return nil
		}
		o.Models[e][q] = NewLinElast(K[i], G[i])
		return nil
	})
	return
}

// SetCusp assigns cusp models
//  I    -- [nelem][nip] selection of points
//  idx  -- [nelem][nip] index in the K, G and epsy lists of each selected point
//  epsy -- [n][nyield] yield strains
func (o *Array) SetCusp(I [][]bool, idx [][]int, K, G []float64, epsy [][]float64) (err error) {
	if len(K) != len(G) || len(K) != len(epsy) {
		return fmt.Errorf("%w: len(K)=%d, len(G)=%d and len(epsy)=%d must be equal", ErrAssign, len(K), len(G), len(epsy))
	}
	tmpl := make([]*CuspModel, len(K))
	for i := range K {
		tmpl[i], err = NewCuspModel(K[i], G[i], epsy[i])
		if err != nil {
			return fmt.Errorf("%w: parameters %d: %v", ErrAssign, i, err)
		}
	}
	err = o.forEach(I, idx, len(K), Cusp, func(e, q, i int) error {
		o.Models[e][q] = tmpl[i].GetCopy()
		return nil
	})
	return
}

// Check checks that all points have one model assigned
func (o *Array) Check() error {
	for e := 0; e < o.Nelem; e++ {
		for q := 0; q < o.Nip; q++ {
			if o.Models[e][q] == nil {
				return fmt.Errorf("%w: point (e=%d, q=%d) has no model", ErrAssign, e, q)
			}
		}
	}
	return nil
}

// SetStrain sets the strain of all points (and updates stresses and histories)
func (o *Array) SetStrain(eps [][]Ten2) (err error) {
	for e := 0; e < o.Nelem; e++ {
		for q := 0; q < o.Nip; q++ {
			err = o.Models[e][q].SetStrain(eps[e][q])
			if err != nil {
				return fmt.Errorf("cannot set strain (e=%d, q=%d): %w", e, q, err)
			}
		}
	}
	return
}

// Stress copies the stress of all points into sig
func (o *Array) Stress(sig [][]Ten2) {
	for e := 0; e < o.Nelem; e++ {
		for q := 0; q < o.Nip; q++ {
			sig[e][q] = o.Models[e][q].State().Sig
		}
	}
}

// Tangent copies the tangent of all points into C. Only linear elastic points have a constant tangent.
func (o *Array) Tangent(C [][]Ten4) error {
	for e := 0; e < o.Nelem; e++ {
		for q := 0; q < o.Nip; q++ {
			m, ok := o.Models[e][q].(*LinElast)
			if !ok {
				return fmt.Errorf("%w: point (e=%d, q=%d) is not linear elastic; tangent is not available", ErrAssign, e, q)
			}
			C[e][q] = m.CalcD()
		}
	}
	return nil
}

// Energy returns the energy density at all points [nelem][nip]
func (o *Array) Energy() (W [][]float64) {
	W = make([][]float64, o.Nelem)
	for e := 0; e < o.Nelem; e++ {
		W[e] = make([]float64, o.Nip)
		for q := 0; q < o.Nip; q++ {
			W[e][q] = o.Models[e][q].Energy()
		}
	}
	return
}

// Kinds returns the kind of law at all points [nelem][nip]
func (o *Array) Kinds() (k [][]Kind) {
	k = make([][]Kind, o.Nelem)
	for e := 0; e < o.Nelem; e++ {
		k[e] = make([]Kind, o.Nip)
		for q := 0; q < o.Nip; q++ {
			if o.Models[e][q] != nil {
				k[e][q] = o.Models[e][q].Kind()
			}
		}
	}
	return
}

// CurrentIndex returns the yield index at all points [nelem][nip]. Non-cusp points get -1
func (o *Array) CurrentIndex() (idx [][]int) {
	idx = make([][]int, o.Nelem)
	for e := 0; e < o.Nelem; e++ {
		idx[e] = make([]int, o.Nip)
		for q := 0; q < o.Nip; q++ {
			idx[e][q] = -1
			if m, ok := o.Models[e][q].(*CuspModel); ok {
				idx[e][q] = m.CurrentIndex()
			}
		}
	}
	return
}

// CurrentYieldLeft returns the yield strain left of the current strain [nelem][nip]
func (o *Array) CurrentYieldLeft() [][]float64 {
	return o.yieldBound(func(m *CuspModel) float64 { return m.CurrentYieldLeft() })
}

// CurrentYieldRight returns the yield strain right of the current strain [nelem][nip]
func (o *Array) CurrentYieldRight() [][]float64 {
	return o.yieldBound(func(m *CuspModel) float64 { return m.CurrentYieldRight() })
}

// Trial returns a copy of the model of a point such that it can be evaluated without
// modifying the committed state
func (o *Array) Trial(e, q int) Model {
	return o.Models[e][q].GetCopy()
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// forEach validates a selection and calls fcn for each selected point
func (o *Array) forEach(I [][]bool, idx [][]int, n int, kind Kind, fcn func(e, q, i int) error) (err error) {
	if len(I) != o.Nelem || len(idx) != o.Nelem {
		return fmt.Errorf("%w: selection must have %d rows", ErrAssign, o.Nelem)
	}
	for e := 0; e < o.Nelem; e++ {
		if len(I[e]) != o.Nip || len(idx[e]) != o.Nip {
			return fmt.Errorf("%w: selection must have %d columns (e=%d)", ErrAssign, o.Nip, e)
		}
		for q := 0; q < o.Nip; q++ {
			if !I[e][q] {
				continue
			}
			if idx[e][q] < 0 || idx[e][q] >= n {
				return fmt.Errorf("%w: index %d of point (e=%d, q=%d) is out of range [0,%d)", ErrAssign, idx[e][q], e, q, n)
			}
			if m := o.Models[e][q]; m != nil && m.Kind() != kind {
				return fmt.Errorf("%w: point (e=%d, q=%d) is already %v; cannot set %v", ErrAssign, e, q, m.Kind(), kind)
			}
		}
	}
	for e := 0; e < o.Nelem; e++ {
		for q := 0; q < o.Nip; q++ {
			if I[e][q] {
				err = fcn(e, q, idx[e][q])
				if err != nil {
					return
				}
			}
		}
	}
	return
}

func (o *Array) yieldBound(get func(m *CuspModel) float64) (v [][]float64) {
	v = make([][]float64, o.Nelem)
	for e := 0; e < o.Nelem; e++ {
		v[e] = make([]float64, o.Nip)
		for q := 0; q < o.Nip; q++ {
			if m, ok := o.Models[e][q].(*CuspModel); ok {
				v[e][q] = get(m)
			}
		}
	}
	return
}

// Select returns an array restricted to a list of elements. The rows are shared with this
// array; thus, assignments and strain updates are seen by both arrays
func (o *Array) Select(elems []int) *Array {
	p := &Array{Nelem: len(elems), Nip: o.Nip}
	p.Models = make([][]Model, len(elems))
	for i, e := range elems {
		p.Models[i] = o.Models[e]
	}
	return p
}
