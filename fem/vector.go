// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
)

// Vector converts between nodal vectors [nnode][ndim], DOF vectors [ndof] and element
// vectors [nelem][nne][ndim]. Nodes may share DOFs (e.g. periodic meshes)
type Vector struct {
	Conn  [][]int // [nelem][nne] connectivity
	Dofs  [][]int // [nnode][ndim] DOF numbers
	Iip   []int   // prescribed DOFs
	Nelem int     // number of elements
	Nne   int     // number of nodes per element
	Nnode int     // number of nodes
	Ndim  int     // space dimension
	Ndof  int     // number of DOFs

	isP []bool    // [ndof] prescribed flags
	buf []float64 // [ndof] scratchpad for assembly
}

// NewVector returns a new Vector
func NewVector(conn, dofs [][]int, iip []int) (o *Vector, err error) {
	if len(conn) == 0 || len(dofs) == 0 {
		return nil, fmt.Errorf("%w: connectivity and DOFs must not be empty", ErrConfig)
	}
	o = &Vector{Conn: conn, Dofs: dofs, Iip: iip}
	o.Nelem, o.Nne = len(conn), len(conn[0])
	o.Nnode, o.Ndim = len(dofs), len(dofs[0])
	for n, d := range dofs {
		if len(d) != o.Ndim {
			return nil, fmt.Errorf("%w: node %d has %d DOFs; expected %d", ErrConfig, n, len(d), o.Ndim)
		}
		for _, eq := range d {
			if eq < 0 {
				return nil, fmt.Errorf("%w: node %d has negative DOF number %d", ErrConfig, n, eq)
			}
			if eq+1 > o.Ndof {
				o.Ndof = eq + 1
			}
		}
	}
	for e, c := range conn {
		if len(c) != o.Nne {
			return nil, fmt.Errorf("%w: element %d has %d nodes; expected %d", ErrConfig, e, len(c), o.Nne)
		}
		for _, n := range c {
			if n < 0 || n >= o.Nnode {
				return nil, fmt.Errorf("%w: element %d refers to invalid node %d", ErrConfig, e, n)
			}
		}
	}
	o.isP = make([]bool, o.Ndof)
	for _, eq := range iip {
		if eq < 0 || eq >= o.Ndof {
			return nil, fmt.Errorf("%w: prescribed DOF %d is out of range [0,%d)", ErrConfig, eq, o.Ndof)
		}
		o.isP[eq] = true
	}
	o.buf = make([]float64, o.Ndof)
	return
}

// Select returns a Vector restricted to a list of elements. Node and DOF numbering are kept
func (o *Vector) Select(elems []int) *Vector {
	p := *o
	p.Conn = make([][]int, len(elems))
	for i, e := range elems {
		p.Conn[i] = o.Conn[e]
	}
	p.Nelem = len(elems)
	p.buf = make([]float64, o.Ndof)
	return &p
}

// IsPrescribed tells whether a DOF is prescribed
func (o *Vector) IsPrescribed(eq int) bool { return o.isP[eq] }

// Iiu returns the free DOFs
func (o *Vector) Iiu() (iiu []int) {
	for eq := 0; eq < o.Ndof; eq++ {
		if !o.isP[eq] {
			iiu = append(iiu, eq)
		}
	}
	return
}

// AllocNode allocates a nodal vector
func (o *Vector) AllocNode() [][]float64 {
	return alloc(o.Nnode, o.Ndim)
}

// AllocElem allocates an element vector
func (o *Vector) AllocElem() (v [][][]float64) {
	v = make([][][]float64, o.Nelem)
	for e := 0; e < o.Nelem; e++ {
		v[e] = alloc(o.Nne, o.Ndim)
	}
	return
}

// AsDofs converts a nodal vector to a DOF vector. Nodes sharing DOFs must hold equal values
func (o *Vector) AsDofs(nodevec [][]float64, dofval []float64) {
	for n := 0; n < o.Nnode; n++ {
		for i := 0; i < o.Ndim; i++ {
			dofval[o.Dofs[n][i]] = nodevec[n][i]
		}
	}
}

// AsNode converts a DOF vector to a nodal vector
func (o *Vector) AsNode(dofval []float64, nodevec [][]float64) {
	for n := 0; n < o.Nnode; n++ {
		for i := 0; i < o.Ndim; i++ {
			nodevec[n][i] = dofval[o.Dofs[n][i]]
		}
	}
}

// AsElement extracts element vectors from a nodal vector
func (o *Vector) AsElement(nodevec [][]float64, elemvec [][][]float64) {
	for e := 0; e < o.Nelem; e++ {
		for m, n := range o.Conn[e] {
			for i := 0; i < o.Ndim; i++ {
				elemvec[e][m][i] = nodevec[n][i]
			}
		}
	}
}

// AssembleDofs sums element vectors into a DOF vector
func (o *Vector) AssembleDofs(elemvec [][][]float64, dofval []float64) {
	for eq := range dofval {
		dofval[eq] = 0
	}
	for e := 0; e < o.Nelem; e++ {
		for m, n := range o.Conn[e] {
			for i := 0; i < o.Ndim; i++ {
				dofval[o.Dofs[n][i]] += elemvec[e][m][i]
			}
		}
	}
}

// AssembleNode sums element vectors into a nodal vector. Contributions to shared DOFs are
// summed first; thus, all nodes sharing a DOF receive the same value
func (o *Vector) AssembleNode(elemvec [][][]float64, nodevec [][]float64) {
	o.AssembleDofs(elemvec, o.buf)
	o.AsNode(o.buf, nodevec)
}

// CopyP copies the values of prescribed DOFs from src into dst
func (o *Vector) CopyP(src, dst [][]float64) {
	for n := 0; n < o.Nnode; n++ {
		for i := 0; i < o.Ndim; i++ {
			if o.isP[o.Dofs[n][i]] {
				dst[n][i] = src[n][i]
			}
		}
	}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func alloc(m, n int) (a [][]float64) {
	buf := make([]float64, m*n)
	a = make([][]float64, m)
	for i := 0; i < m; i++ {
		a[i] = buf[i*n : (i+1)*n]
	}
	return
}

func copyNode(dst, src [][]float64) {
	for n := range src {
		copy(dst[n], src[n])
	}
}

func zeroNode(a [][]float64) {
	for n := range a {
		for i := range a[n] {
			a[n][i] = 0
		}
	}
}
