// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/tdegeus/FrictionQPotGooseFEM/msolid"
)

// Projection is a view of the mesh restricted to a set of elements. All projections of one
// System share numbering, quadrature data and material points
type Projection struct {
	Elems []int           // selected elements (indices in the full mesh)
	Vec   *Vector         // numbering restricted to Elems
	Quad  *Quadrature     // quadrature restricted to Elems
	Mat   *msolid.Array   // material points of Elems
	Eps   [][]msolid.Ten2 // [nelem][nip] strain
	Sig   [][]msolid.Ten2 // [nelem][nip] stress

	ue [][][]float64 // [nelem][nne][ndim] element displacements
	fe [][][]float64 // [nelem][nne][ndim] element forces
}

// newProjection returns the projection of all elements
func newProjection(vec *Vector, quad *Quadrature, mat *msolid.Array) (o *Projection) {
	elems := make([]int, vec.Nelem)
	for e := range elems {
		elems[e] = e
	}
	o = &Projection{Elems: elems, Vec: vec, Quad: quad, Mat: mat}
	o.alloc()
	return
}

// Select returns the projection of a set of elements
func (o *Projection) Select(elems []int) (p *Projection) {
	sel := make([]int, len(elems))
	for i, e := range elems {
		sel[i] = o.Elems[e]
	}
	p = &Projection{
		Elems: sel,
		Vec:   o.Vec.Select(elems),
		Quad:  o.Quad.Select(elems),
		Mat:   o.Mat.Select(elems),
	}
	p.alloc()
	return
}

// Nelem returns the number of selected elements
func (o *Projection) Nelem() int { return len(o.Elems) }

// ComputeStrain computes strains from nodal displacements and updates the stresses
func (o *Projection) ComputeStrain(u [][]float64) (err error) {
	o.Vec.AsElement(u, o.ue)
	o.Quad.SymGradN(o.ue, o.Eps)
	err = o.Mat.SetStrain(o.Eps)
	if err != nil {
		return
	}
	o.Mat.Stress(o.Sig)
	return
}

// InternalForce assembles the nodal forces corresponding to the current stresses
func (o *Projection) InternalForce(f [][]float64) {
	o.Quad.IntGradNDotTensor2(o.Sig, o.fe)
	o.Vec.AssembleNode(o.fe, f)
}

// Stiffness computes the element stiffness matrices from the material tangent
func (o *Projection) Stiffness() (K [][][]float64, err error) {
	C := o.Quad.AllocTen4()
	err = o.Mat.Tangent(C)
	if err != nil {
		return
	}
	K = o.Quad.AllocMat()
	o.Quad.IntGradNDotTensor4DotGradNT(C, K)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func (o *Projection) alloc() {
	o.Eps = o.Quad.AllocTen2()
	o.Sig = o.Quad.AllocTen2()
	o.ue = o.Vec.AllocElem()
	o.fe = o.Vec.AllocElem()
}
