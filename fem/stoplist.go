// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "math"

// StopList holds the last n residuals and signals convergence when all of them are below
// a tolerance; i.e. a transient crossing of the tolerance does not stop the iterations
type StopList struct {
	res []float64 // last residuals; the oldest first
}

// NewStopList returns a new list of n residuals. n < 1 is taken as 1
func NewStopList(n int) (o *StopList) {
	if n < 1 {
		n = 1
	}
	o = &StopList{res: make([]float64, n)}
	o.Reset()
	return
}

// Reset discards all residuals
func (o *StopList) Reset() {
	for i := range o.res {
		o.res[i] = math.Inf(1)
	}
}

// Stop appends a residual and tells whether all stored residuals are smaller than tol
func (o *StopList) Stop(res, tol float64) bool {
	copy(o.res, o.res[1:])
	o.res[len(o.res)-1] = res
	for _, r := range o.res {
		if !(r < tol) {
			return false
		}
	}
	return true
}
