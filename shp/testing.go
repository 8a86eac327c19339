// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"gonum.org/v1/gonum/mat"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	for n := 0; n < shape.Nverts; n++ {

		// compute function @ vertex
		shape.Func(shape.S, shape.DSdR, shape.NatCoords[0][n], shape.NatCoords[1][n], false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
	}
}

// CheckDSdR checks dSdR derivatives of shape structures using central differences
func CheckDSdR(tst *testing.T, shape *Shape, r, s, tol float64, verbose bool) {

	// analytical
	shape.Func(shape.S, shape.DSdR, r, s, true)
	dSdR := alloc(shape.Nverts, shape.Gndim)
	for m := 0; m < shape.Nverts; m++ {
		copy(dSdR[m], shape.DSdR[m])
	}

	// numerical
	S := make([]float64, shape.Nverts)
	for m := 0; m < shape.Nverts; m++ {
		for i := 0; i < shape.Gndim; i++ {
			dnum := num.DerivCen5(natural(r, s)[i], 1e-1, func(t float64) float64 {
				R := natural(r, s)
				R[i] = t
				shape.Func(S, nil, R[0], R[1], false)
				return S[m]
			})
			if verbose {
				io.Pfgrey("  dS%ddR%d @ [%5.2f,%5.2f] = %v (num: %v)\n", m, i, r, s, dSdR[m][i], dnum)
			}
			if math.Abs(dnum-dSdR[m][i]) > tol {
				tst.Errorf("%s dS%d/dR%d failed: %g != %g\n", shape.Type, m, i, dSdR[m][i], dnum)
			}
		}
	}
}

// CheckDSdx checks G=dSdx derivatives of shape structures at the natural coordinates {r,s}.
// dxdR and dSdR are computed with central differences and G = dSdR * inv(dxdR) is compared
// with the analytical values
func CheckDSdx(tst *testing.T, shape *Shape, xmat [][]float64, r, s, tol float64, verbose bool) {

	// numerical dxdR and dSdR
	ndim := len(xmat)
	dxdR := mat.NewDense(ndim, shape.Gndim, nil)
	dSdR := alloc(shape.Nverts, shape.Gndim)
	S := make([]float64, shape.Nverts)
	for j := 0; j < shape.Gndim; j++ {
		at := func(t float64) Ipoint {
			R := natural(r, s)
			R[j] = t
			return Ipoint{R[0], R[1], 1}
		}
		for i := 0; i < ndim; i++ {
			dxdR.Set(i, j, num.DerivCen5(natural(r, s)[j], 1e-1, func(t float64) float64 {
				return shape.IpRealCoords(xmat, at(t))[i]
			}))
		}
		for m := 0; m < shape.Nverts; m++ {
			dSdR[m][j] = num.DerivCen5(natural(r, s)[j], 1e-1, func(t float64) float64 {
				ip := at(t)
				shape.Func(S, nil, ip.R, ip.S, false)
				return S[m]
			})
		}
	}
	var dRdx mat.Dense
	err := dRdx.Inverse(dxdR)
	if err != nil {
		tst.Errorf("inverse of numerical dxdR failed:\n%v", err)
		return
	}

	// analytical
	err = shape.CalcAtIp(xmat, Ipoint{r, s, 1}, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}

	// compare
	for m := 0; m < shape.Nverts; m++ {
		for j := 0; j < ndim; j++ {
			var gnum float64
			for i := 0; i < shape.Gndim; i++ {
				gnum += dSdR[m][i] * dRdx.At(i, j)
			}
			if verbose {
				io.Pfgrey("  G[%d][%d] = %v (num: %v)\n", m, j, shape.G[m][j], gnum)
			}
			if math.Abs(gnum-shape.G[m][j]) > tol {
				tst.Errorf("%s G[%d][%d] failed: %g != %g\n", shape.Type, m, j, shape.G[m][j], gnum)
			}
		}
	}
}

// natural returns the natural coordinates as a slice
func natural(r, s float64) []float64 {
	return []float64{r, s}
}
