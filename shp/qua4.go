// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shape
func init() {
	o := &Shape{
		Type:    "qua4",
		Func:    Qua4,
		Gndim:   2,
		Nverts:  4,
		VtkCode: 9, // VTK_QUAD
		NatCoords: [][]float64{
			{-1, 1, 1, -1},
			{-1, -1, 1, 1},
		},
	}
	o.init_scratchpad()
	factory["qua4"] = o
}

// Qua4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua4
// elements at {r,s} natural coordinates. The derivatives are calculated only if derivs==true.
//
//   3-----------2
//   |     s     |
//   |     |     |
//   |     +--r  |
//   |           |
//   |           |
//   0-----------1
//
func Qua4(S []float64, dSdR [][]float64, r, s float64, derivs bool) {
	S[0] = (1.0 - r - s + r*s) / 4.0
	S[1] = (1.0 + r - s - r*s) / 4.0
	S[2] = (1.0 + r + s + r*s) / 4.0
	S[3] = (1.0 - r + s - r*s) / 4.0
	if !derivs {
		return
	}
	dSdR[0][0] = (-1.0 + s) / 4.0
	dSdR[1][0] = (+1.0 - s) / 4.0
	dSdR[2][0] = (+1.0 + s) / 4.0
	dSdR[3][0] = (-1.0 - s) / 4.0

	dSdR[0][1] = (-1.0 + r) / 4.0
	dSdR[1][1] = (-1.0 - r) / 4.0
	dSdR[2][1] = (+1.0 + r) / 4.0
	dSdR[3][1] = (+1.0 - r) / 4.0
}
