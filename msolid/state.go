// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// State holds the state of one integration point
type State struct {
	Eps Ten2 // ε: current strain tensor
	Sig Ten2 // σ: current stress tensor (consistent with Eps)
	Idx int  // index of the current yield interval (plasticity only)
}

// Set copies states
func (o *State) Set(other *State) {
	*o = *other
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := new(State)
	other.Set(o)
	return other
}
