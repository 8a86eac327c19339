// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/tdegeus/FrictionQPotGooseFEM/inp"

// StepperFixed increases the shear strain by constant increments
type StepperFixed struct {
	Dgamma float64
}

// set factory of steppers
func init() {
	stepperallocators["fixed"] = func(sim *inp.Simulation) Stepper {
		return &StepperFixed{sim.Load.Dgamma}
	}
}

// Increment returns the constant increment
func (o *StepperFixed) Increment(sys *System) (dgamma float64, err error) {
	return o.Dgamma, nil
}
