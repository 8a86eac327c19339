// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/tdegeus/FrictionQPotGooseFEM/inp"
)

// StepperEvent increases the shear strain such that the weakest plastic point just reaches its
// next yield strain (plus a kick)
type StepperEvent struct {
	Kick float64 // equivalent strain added beyond the yield strain
}

// set factory of steppers
func init() {
	stepperallocators["event"] = func(sim *inp.Simulation) Stepper {
		return &StepperEvent{sim.Load.Kick}
	}
}

// Increment returns the smallest yield barrier over all plastic points
func (o *StepperEvent) Increment(sys *System) (dgamma float64, err error) {
	dgamma = math.Inf(1)
	for q := 0; q < sys.Nip(); q++ {
		B, err := sys.PlasticYieldBarrierSimpleShear(o.Kick, q)
		if err != nil {
			return 0, err
		}
		for _, b := range B {
			dgamma = math.Min(dgamma, b.Dgamma)
		}
	}
	if math.IsInf(dgamma, 1) || !(dgamma > 0) {
		return 0, chk.Err("cannot find next yield event; dγ = %g", dgamma)
	}
	return
}
