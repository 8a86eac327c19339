// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements models for solids based on continuum mechanics
//
//  Elastic -- linear elastic law: σ = K tr(ε)/2 I + G εd
//  Cusp    -- elasto-plastic law with a potential made of parabolic wells
//             separated by cusps located at the yield strains εy
package msolid

import "errors"

// ErrYieldExceeded is returned when the strain moves beyond the last yield strain
var ErrYieldExceeded = errors.New("msolid: yield strain sequence exceeded")

// Kind identifies the law of an integration point
type Kind int

const (
	Unset   Kind = iota // no law assigned
	Elastic             // linear elastic
	Cusp                // cusp potential plasticity
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case Elastic:
		return "elastic"
	case Cusp:
		return "cusp"
	}
	return "unset"
}

// Model defines point-wise strain to stress maps
type Model interface {
	Kind() Kind             // returns the kind of law
	SetStrain(ε Ten2) error // sets the strain and updates the stress (and history)
	State() *State          // returns the current state
	Energy() float64        // returns the energy density at the current strain
	GetCopy() Model         // returns a deep copy; e.g. for trial evaluations
	Set(k, g float64)       // sets the bulk and shear moduli
	Moduli() (k, g float64) // returns the bulk and shear moduli
}
