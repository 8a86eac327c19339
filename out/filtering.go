// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/tdegeus/FrictionQPotGooseFEM/fem"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Events returns the indices of the increments in which at least minNyield points yielded
func Events(incs []fem.Increment, minNyield int) (idx []int) {
	for i, inc := range incs {
		if inc.Nyield >= minNyield && inc.Nyield > 0 {
			idx = append(idx, i)
		}
	}
	return
}

// EventStats holds statistics of yield events
type EventStats struct {
	Count   int     // number of events
	Mean    float64 // mean number of yielding points
	StdDev  float64 // standard deviation of the number of yielding points
	Largest int     // largest number of yielding points
	DropMax float64 // largest drop of σxy during one increment
}

// GetEventStats computes the statistics of the events of a list of increments
func GetEventStats(incs []fem.Increment, minNyield int) (o EventStats) {
	idx := Events(incs, minNyield)
	o.Count = len(idx)
	if o.Count == 0 {
		return
	}
	sizes := make([]float64, len(idx))
	for k, i := range idx {
		sizes[k] = float64(incs[i].Nyield)
		if i > 0 {
			o.DropMax = math.Max(o.DropMax, incs[i-1].Sigxy-incs[i].Sigxy)
		}
	}
	o.Mean, o.StdDev = stat.MeanStdDev(sizes, nil)
	if o.Count == 1 {
		o.StdDev = 0
	}
	o.Largest = int(floats.Max(sizes))
	return
}
