// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "math"

// Ten2 is a second order tensor in 2D Cartesian coordinates
type Ten2 [2][2]float64

// Ten4 is a fourth order tensor in 2D Cartesian coordinates
type Ten4 [2][2][2][2]float64

// I2 returns the second order identity
func I2() (I Ten2) {
	I[0][0], I[1][1] = 1, 1
	return
}

// Trace returns tr(A)
func (A Ten2) Trace() float64 {
	return A[0][0] + A[1][1]
}

// Hydrostatic returns the mean value; i.e. tr(A)/2
func (A Ten2) Hydrostatic() float64 {
	return 0.5 * A.Trace()
}

// Deviator returns A - tr(A)/2 * I
func (A Ten2) Deviator() (D Ten2) {
	m := A.Hydrostatic()
	D = A
	D[0][0] -= m
	D[1][1] -= m
	return
}

// DDot returns A : B
func (A Ten2) DDot(B Ten2) float64 {
	return A[0][0]*B[0][0] + A[0][1]*B[0][1] + A[1][0]*B[1][0] + A[1][1]*B[1][1]
}

// Add returns A + α B
func (A Ten2) Add(α float64, B Ten2) (C Ten2) {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			C[i][j] = A[i][j] + α*B[i][j]
		}
	}
	return
}

// Epsm returns the volumetric strain tr(ε)/2
func Epsm(ε Ten2) float64 {
	return ε.Hydrostatic()
}

// Epsd returns the equivalent deviatoric strain sqrt(εd:εd / 2)
func Epsd(ε Ten2) float64 {
	εd := ε.Deviator()
	return math.Sqrt(0.5 * εd.DDot(εd))
}

// Sigm returns the mean stress tr(σ)/2
func Sigm(σ Ten2) float64 {
	return σ.Hydrostatic()
}

// Sigd returns the equivalent deviatoric stress sqrt(2 σd:σd)
func Sigd(σ Ten2) float64 {
	σd := σ.Deviator()
	return math.Sqrt(2.0 * σd.DDot(σd))
}

// SimpleShear returns the strain increment of a simple shear Δγ in the x-y plane
func SimpleShear(Δγ float64) (Δε Ten2) {
	Δε[0][1] = 0.5 * Δγ
	Δε[1][0] = 0.5 * Δγ
	return
}

// DDotT2 returns C : A
func (C *Ten4) DDotT2(A Ten2) (B Ten2) {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				for l := 0; l < 2; l++ {
					B[i][j] += C[i][j][k][l] * A[l][k]
				}
			}
		}
	}
	return
}
