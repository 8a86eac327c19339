// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/tdegeus/FrictionQPotGooseFEM/msolid"
	"github.com/tdegeus/FrictionQPotGooseFEM/shp"
)

// Quadrature holds shape functions, gradients and integration volumes at all integration points
// of a set of elements
type Quadrature struct {
	Nelem int             // number of elements
	Nne   int             // number of nodes per element
	Ndim  int             // space dimension
	Nip   int             // number of integration points per element
	N     [][]float64     // [nip][nne] shape functions
	DNx   [][][][]float64 // [nelem][nip][nne][ndim] gradients of shape functions w.r.t real coordinates
	Vol   [][]float64     // [nelem][nip] integration volume: w * det(dxdR)
}

// NewQuadrature computes the quadrature data of qua4 elements
//  Input:
//   x   -- [nelem][nne][ndim] nodal coordinates of each element
//   ips -- integration points; e.g. from shp.GetIps
func NewQuadrature(x [][][]float64, ips []shp.Ipoint) (o *Quadrature, err error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: quadrature requires at least one element", ErrConfig)
	}
	sh := shp.Get("qua4", 0)
	if sh == nil {
		return nil, chk.Err("cannot find shape qua4")
	}
	sh = sh.GetCopy()
	o = &Quadrature{Nelem: len(x), Nne: sh.Nverts, Ndim: sh.Gndim, Nip: len(ips)}
	if len(x[0]) != o.Nne || len(x[0][0]) != o.Ndim {
		return nil, fmt.Errorf("%w: elements must have %d nodes with %d coordinates", ErrConfig, o.Nne, o.Ndim)
	}

	// shape functions
	o.N = make([][]float64, o.Nip)
	for q, ip := range ips {
		sh.CalcAtIp(nil, ip, false)
		o.N[q] = make([]float64, o.Nne)
		copy(o.N[q], sh.S)
	}

	// gradients and volumes
	xt := alloc(o.Ndim, o.Nne)
	o.DNx = make([][][][]float64, o.Nelem)
	o.Vol = make([][]float64, o.Nelem)
	for e := 0; e < o.Nelem; e++ {
		for m := 0; m < o.Nne; m++ {
			for i := 0; i < o.Ndim; i++ {
				xt[i][m] = x[e][m][i]
			}
		}
		o.DNx[e] = make([][][]float64, o.Nip)
		o.Vol[e] = make([]float64, o.Nip)
		for q, ip := range ips {
			err = sh.CalcAtIp(xt, ip, true)
			if err != nil {
				return nil, fmt.Errorf("%w: element %d: %v", ErrConfig, e, err)
			}
			o.DNx[e][q] = alloc(o.Nne, o.Ndim)
			for m := 0; m < o.Nne; m++ {
				copy(o.DNx[e][q][m], sh.G[m])
			}
			o.Vol[e][q] = ip.W * sh.J
		}
	}
	return
}

// Select returns the quadrature of a list of elements. Data is shared with this object
func (o *Quadrature) Select(elems []int) *Quadrature {
	p := *o
	p.Nelem = len(elems)
	p.DNx = make([][][][]float64, len(elems))
	p.Vol = make([][]float64, len(elems))
	for i, e := range elems {
		p.DNx[i] = o.DNx[e]
		p.Vol[i] = o.Vol[e]
	}
	return &p
}

// DV returns the integration volumes [nelem][nip]
func (o *Quadrature) DV() [][]float64 { return o.Vol }

// AllocTen2 allocates a tensor at each integration point
func (o *Quadrature) AllocTen2() (A [][]msolid.Ten2) {
	A = make([][]msolid.Ten2, o.Nelem)
	for e := 0; e < o.Nelem; e++ {
		A[e] = make([]msolid.Ten2, o.Nip)
	}
	return
}

// AllocTen4 allocates a fourth order tensor at each integration point
func (o *Quadrature) AllocTen4() (A [][]msolid.Ten4) {
	A = make([][]msolid.Ten4, o.Nelem)
	for e := 0; e < o.Nelem; e++ {
		A[e] = make([]msolid.Ten4, o.Nip)
	}
	return
}

// AllocMat allocates element matrices [nelem][nne*ndim][nne*ndim]
func (o *Quadrature) AllocMat() (K [][][]float64) {
	K = make([][][]float64, o.Nelem)
	for e := 0; e < o.Nelem; e++ {
		K[e] = alloc(o.Nne*o.Ndim, o.Nne*o.Ndim)
	}
	return
}

// SymGradN computes the symmetric gradient of element vectors
//  ε_ij = (dN_m,i u_mj + dN_m,j u_mi) / 2
func (o *Quadrature) SymGradN(elemvec [][][]float64, eps [][]msolid.Ten2) {
	for e := 0; e < o.Nelem; e++ {
		u := elemvec[e]
		for q := 0; q < o.Nip; q++ {
			dN := o.DNx[e][q]
			var g msolid.Ten2
			for m := 0; m < o.Nne; m++ {
				for i := 0; i < 2; i++ {
					for j := 0; j < 2; j++ {
						g[i][j] += dN[m][i] * u[m][j]
					}
				}
			}
			eps[e][q][0][0] = g[0][0]
			eps[e][q][1][1] = g[1][1]
			eps[e][q][0][1] = 0.5 * (g[0][1] + g[1][0])
			eps[e][q][1][0] = eps[e][q][0][1]
		}
	}
}

// IntGradNDotTensor2 integrates stresses into element forces
//  f_mj = Σ_q dN_m,i σ_ij dV
func (o *Quadrature) IntGradNDotTensor2(sig [][]msolid.Ten2, elemvec [][][]float64) {
	for e := 0; e < o.Nelem; e++ {
		f := elemvec[e]
		for m := 0; m < o.Nne; m++ {
			f[m][0], f[m][1] = 0, 0
		}
		for q := 0; q < o.Nip; q++ {
			dN := o.DNx[e][q]
			dV := o.Vol[e][q]
			σ := &sig[e][q]
			for m := 0; m < o.Nne; m++ {
				for i := 0; i < 2; i++ {
					for j := 0; j < 2; j++ {
						f[m][j] += dN[m][i] * σ[i][j] * dV
					}
				}
			}
		}
	}
}

// IntGradNDotTensor4DotGradNT integrates tangents into element stiffness matrices
//  K_(m,j),(n,k) = Σ_q dN_m,i C_ijkl dN_n,l dV
func (o *Quadrature) IntGradNDotTensor4DotGradNT(C [][]msolid.Ten4, elemmat [][][]float64) {
	nd := o.Ndim
	for e := 0; e < o.Nelem; e++ {
		K := elemmat[e]
		for r := range K {
			for c := range K[r] {
				K[r][c] = 0
			}
		}
		for q := 0; q < o.Nip; q++ {
			dN := o.DNx[e][q]
			dV := o.Vol[e][q]
			D := &C[e][q]
			for m := 0; m < o.Nne; m++ {
				for n := 0; n < o.Nne; n++ {
					for i := 0; i < 2; i++ {
						for j := 0; j < 2; j++ {
							for k := 0; k < 2; k++ {
								for l := 0; l < 2; l++ {
									K[m*nd+j][n*nd+k] += dN[m][i] * D[i][j][k][l] * dN[n][l] * dV
								}
							}
						}
					}
				}
			}
		}
	}
}

// IntNScalarNT integrates a scalar field into element matrices
//  M_(m,i),(n,i) = Σ_q N_m ρ N_n dV
//  Input:
//   rho -- [nelem][nip] scalar at each integration point
func (o *Quadrature) IntNScalarNT(rho [][]float64, elemmat [][][]float64) {
	nd := o.Ndim
	for e := 0; e < o.Nelem; e++ {
		M := elemmat[e]
		for r := range M {
			for c := range M[r] {
				M[r][c] = 0
			}
		}
		for q := 0; q < o.Nip; q++ {
			N := o.N[q]
			dV := o.Vol[e][q]
			for m := 0; m < o.Nne; m++ {
				for n := 0; n < o.Nne; n++ {
					for i := 0; i < nd; i++ {
						M[m*nd+i][n*nd+i] += N[m] * rho[e][q] * N[n] * dV
					}
				}
			}
		}
	}
}
