// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/la"
)

// MatrixDiagonal implements a diagonal matrix acting on nodal vectors
type MatrixDiagonal struct {
	Vec  *Vector   // numbering
	Data []float64 // [ndof] diagonal

	x, b []float64 // [ndof] scratchpad
}

// NewMatrixDiagonal returns a new (zero) diagonal matrix
func NewMatrixDiagonal(vec *Vector) *MatrixDiagonal {
	return &MatrixDiagonal{
		Vec:  vec,
		Data: make([]float64, vec.Ndof),
		x:    make([]float64, vec.Ndof),
		b:    make([]float64, vec.Ndof),
	}
}

// Assemble sums element matrices into the diagonal. The element matrices must be diagonal.
// The matrix is not modified if an error occurs
//  Input:
//   vec     -- numbering of the elements of elemmat (may be a selection of o.Vec)
//   elemmat -- [nelem][nne*ndim][nne*ndim]
func (o *MatrixDiagonal) Assemble(vec *Vector, elemmat [][][]float64) (err error) {
	d, err := o.assemble(vec, elemmat)
	if err != nil {
		return
	}
	copy(o.Data, d)
	return
}

// Dot computes b := A * x with nodal vectors
func (o *MatrixDiagonal) Dot(x, b [][]float64) {
	o.Vec.AsDofs(x, o.x)
	for eq, d := range o.Data {
		o.b[eq] = d * o.x[eq]
	}
	o.Vec.AsNode(o.b, b)
}

// MatrixDiagonalPartitioned implements a diagonal matrix that is solved for the free DOFs only
type MatrixDiagonalPartitioned struct {
	MatrixDiagonal
}

// NewMatrixDiagonalPartitioned returns a new (zero) partitioned diagonal matrix
func NewMatrixDiagonalPartitioned(vec *Vector) *MatrixDiagonalPartitioned {
	return &MatrixDiagonalPartitioned{*NewMatrixDiagonal(vec)}
}

// Assemble sums element matrices into the diagonal and checks that all free DOFs can be solved
// for. The matrix is not modified if an error occurs
func (o *MatrixDiagonalPartitioned) Assemble(vec *Vector, elemmat [][][]float64) (err error) {
	d, err := o.assemble(vec, elemmat)
	if err != nil {
		return
	}
	for eq, v := range d {
		if !o.Vec.IsPrescribed(eq) && (v == 0 || math.IsNaN(v)) {
			return fmt.Errorf("%w: diagonal of free DOF %d is %g", ErrConfig, eq, v)
		}
	}
	copy(o.Data, d)
	return
}

// Solve solves A * x = b for the free DOFs; prescribed DOFs of x are not modified
func (o *MatrixDiagonalPartitioned) Solve(b, x [][]float64) {
	o.Vec.AsDofs(b, o.b)
	o.Vec.AsDofs(x, o.x)
	for eq, d := range o.Data {
		if !o.Vec.IsPrescribed(eq) {
			o.x[eq] = o.b[eq] / d
		}
	}
	o.Vec.AsNode(o.x, x)
}

// Matrix implements a sparse matrix acting on nodal vectors
type Matrix struct {
	Vec *Vector      // numbering
	T   la.Triplet   // entries; duplicates are summed
	C   *la.CCMatrix // compressed form of T

	x, b []float64 // [ndof] scratchpad
}

// NewMatrix returns a new (empty) sparse matrix
func NewMatrix(vec *Vector) *Matrix {
	return &Matrix{
		Vec: vec,
		x:   make([]float64, vec.Ndof),
		b:   make([]float64, vec.Ndof),
	}
}

// Assemble puts element matrices into the sparse matrix; previous entries are discarded.
// An empty selection of elements results in the zero matrix
//  Input:
//   vec     -- numbering of the elements of elemmat (may be a selection of o.Vec)
//   elemmat -- [nelem][nne*ndim][nne*ndim]
func (o *Matrix) Assemble(vec *Vector, elemmat [][][]float64) (err error) {
	if len(elemmat) != vec.Nelem {
		return fmt.Errorf("%w: number of element matrices (%d) must equal the number of elements (%d)", ErrConfig, len(elemmat), vec.Nelem)
	}
	o.C = nil
	if vec.Nelem == 0 {
		return
	}
	nd := vec.Ndim
	nen := vec.Nne * nd
	o.T.Init(o.Vec.Ndof, o.Vec.Ndof, vec.Nelem*nen*nen)
	for e := 0; e < vec.Nelem; e++ {
		K := elemmat[e]
		for m, n := range vec.Conn[e] {
			for i := 0; i < nd; i++ {
				r := vec.Dofs[n][i]
				for k, p := range vec.Conn[e] {
					for j := 0; j < nd; j++ {
						if v := K[m*nd+i][k*nd+j]; v != 0 {
							o.T.Put(r, vec.Dofs[p][j], v)
						}
					}
				}
			}
		}
	}
	o.C = o.T.ToMatrix(nil)
	return
}

// Dot computes b := A * x with nodal vectors
func (o *Matrix) Dot(x, b [][]float64) {
	o.Vec.AsDofs(x, o.x)
	for eq := range o.b {
		o.b[eq] = 0
	}
	if o.C != nil {
		la.SpMatVecMulAdd(o.b, 1, o.C, o.x) // b += 1 * C * x
	}
	o.Vec.AsNode(o.b, b)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// assemble returns the sum of the diagonals of the element matrices
func (o *MatrixDiagonal) assemble(vec *Vector, elemmat [][][]float64) (d []float64, err error) {
	if len(elemmat) != vec.Nelem {
		return nil, fmt.Errorf("%w: number of element matrices (%d) must equal the number of elements (%d)", ErrConfig, len(elemmat), vec.Nelem)
	}
	nd := vec.Ndim
	d = make([]float64, len(o.Data))
	for e := 0; e < vec.Nelem; e++ {
		M := elemmat[e]
		for r := range M {
			for c, v := range M[r] {
				if r != c && v != 0 {
					return nil, fmt.Errorf("%w: element %d: matrix is not diagonal; M[%d][%d] = %g", ErrConfig, e, r, c, v)
				}
			}
		}
		for m, n := range vec.Conn[e] {
			for i := 0; i < nd; i++ {
				d[vec.Dofs[n][i]] += M[m*nd+i][m*nd+i]
			}
		}
	}
	return
}
