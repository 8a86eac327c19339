// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/tdegeus/FrictionQPotGooseFEM/fem"
)

// getters of results of one increment
var resgetters = map[string]func(inc *fem.Increment) float64{
	"gamma":  func(inc *fem.Increment) float64 { return inc.Gamma },
	"t":      func(inc *fem.Increment) float64 { return inc.T },
	"sigxy":  func(inc *fem.Increment) float64 { return inc.Sigxy },
	"niter":  func(inc *fem.Increment) float64 { return float64(inc.Niter) },
	"nyield": func(inc *fem.Increment) float64 { return float64(inc.Nyield) },
	"Ekin":   func(inc *fem.Increment) float64 { return inc.Energy.Kinetic },
	"Eelas":  func(inc *fem.Increment) float64 { return inc.Energy.Elastic },
	"Eplas":  func(inc *fem.Increment) float64 { return inc.Energy.Plastic },
	"E":      func(inc *fem.Increment) float64 { return inc.Energy.Total() },
}

// ResKeys returns all available keys of results
func ResKeys() (keys []string) {
	for key := range resgetters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}

// GetRes returns the series of results corresponding to key over all increments
//  key -- "gamma", "t", "sigxy", "niter", "nyield", "Ekin", "Eelas", "Eplas" or "E"
func GetRes(key string) (res []float64, err error) {
	if Sum == nil {
		return nil, chk.Err("Start must be called first")
	}
	return Series(Sum.Incs, key)
}

// Series returns the series of results corresponding to key of a list of increments
func Series(incs []fem.Increment, key string) (res []float64, err error) {
	get, ok := resgetters[key]
	if !ok {
		return nil, chk.Err("cannot find results with key %q; available keys are %v", key, ResKeys())
	}
	res = make([]float64, len(incs))
	for i := range incs {
		res[i] = get(&incs[i])
	}
	return
}
