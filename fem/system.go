// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the mechanical system of a 2D solid made of elastic elements and a set
// of elasto-plastic (cusp potential) elements, and its explicit time integration
package fem

import (
	"fmt"

	"github.com/cpmech/gosl/io"
	"github.com/tdegeus/FrictionQPotGooseFEM/msolid"
	"github.com/tdegeus/FrictionQPotGooseFEM/shp"
	"gonum.org/v1/gonum/floats"
)

// System holds the mesh, the material points, the linear operators and the kinematic state
// of a mechanical system. A System must not be used concurrently
type System struct {

	// options
	Verbose bool // show messages

	// mesh
	coor    [][]float64   // [nnode][ndim] coordinates
	conn    [][]int       // [nelem][nne] connectivity
	dofs    [][]int       // [nnode][ndim] DOF numbers
	iip     []int         // prescribed DOFs
	elastic []int         // elastic elements
	plastic []int         // plastic elements
	x       [][][]float64 // [nelem][nne][ndim] element coordinates

	// projections: all elements, elastic elements and plastic elements
	vec  *Vector
	quad *Quadrature
	mat  *msolid.Array
	full *Projection
	elas *Projection
	plas *Projection

	// operators
	M     *MatrixDiagonalPartitioned // mass
	D     *MatrixDiagonal            // damping
	Kelas *Matrix                    // stiffness of elastic elements

	// state
	t     float64     // time
	dt    float64     // time step
	u     [][]float64 // displacement
	v     [][]float64 // velocity
	a     [][]float64 // acceleration
	un    [][]float64 // displacement at the beginning of the step
	vn    [][]float64 // velocity at the beginning of the step
	an    [][]float64 // acceleration at the beginning of the step
	felas [][]float64 // internal force of elastic elements
	fplas [][]float64 // internal force of plastic elements
	fdamp [][]float64 // damping force
	fint  [][]float64 // internal force
	fext  [][]float64 // external force
	fres  [][]float64 // residual force

	// scratchpad
	dofval []float64 // [ndof]

	// configuration
	ready     Readiness
	kelasDone bool
}

// NewSystem returns a new System
//  Input:
//   coor    -- [nnode][ndim] nodal coordinates
//   conn    -- [nelem][nne] connectivity (qua4)
//   dofs    -- [nnode][ndim] DOF numbers; nodes may share DOFs
//   iip     -- prescribed DOFs
//   elastic -- elastic elements
//   plastic -- plastic elements
//  Note: each element must be in exactly one of elastic and plastic. An element in neither set
//        has no material and is rejected with ErrConfig
func NewSystem(coor [][]float64, conn, dofs [][]int, iip, elastic, plastic []int) (o *System, err error) {

	// numbering
	vec, err := NewVector(conn, dofs, iip)
	if err != nil {
		return
	}
	if len(coor) != vec.Nnode {
		return nil, fmt.Errorf("%w: number of nodes in coor (%d) and dofs (%d) must be equal", ErrConfig, len(coor), vec.Nnode)
	}
	for n := range coor {
		if len(coor[n]) != vec.Ndim {
			return nil, fmt.Errorf("%w: node %d has %d coordinates; expected %d", ErrConfig, n, len(coor[n]), vec.Ndim)
		}
	}

	// element sets
	owner := make([]int, vec.Nelem) // 0: none, 1: elastic, 2: plastic
	for k, set := range [][]int{elastic, plastic} {
		for _, e := range set {
			if e < 0 || e >= vec.Nelem {
				return nil, fmt.Errorf("%w: element %d is out of range [0,%d)", ErrConfig, e, vec.Nelem)
			}
			if owner[e] != 0 {
				return nil, fmt.Errorf("%w: element %d is listed twice in elastic and plastic sets", ErrConfig, e)
			}
			owner[e] = k + 1
		}
	}
	for e, k := range owner {
		if k == 0 {
			return nil, fmt.Errorf("%w: element %d is neither elastic nor plastic", ErrConfig, e)
		}
	}

	// quadrature
	x := make([][][]float64, vec.Nelem)
	for e := 0; e < vec.Nelem; e++ {
		x[e] = alloc(vec.Nne, vec.Ndim)
		for m, n := range conn[e] {
			copy(x[e][m], coor[n])
		}
	}
	ips, err := shp.GetIps("qua4", "gauss")
	if err != nil {
		return
	}
	quad, err := NewQuadrature(x, ips)
	if err != nil {
		return
	}

	// system
	o = &System{
		coor:    coor,
		conn:    conn,
		dofs:    dofs,
		iip:     iip,
		elastic: elastic,
		plastic: plastic,
		x:       x,
		vec:     vec,
		quad:    quad,
		mat:     msolid.NewArray(vec.Nelem, quad.Nip),
	}
	o.full = newProjection(o.vec, o.quad, o.mat)
	o.elas = o.full.Select(elastic)
	o.plas = o.full.Select(plastic)
	o.M = NewMatrixDiagonalPartitioned(vec)
	o.D = NewMatrixDiagonal(vec)
	o.Kelas = NewMatrix(vec)
	o.dofval = make([]float64, vec.Ndof)
	for _, ptr := range []*[][]float64{&o.u, &o.v, &o.a, &o.un, &o.vn, &o.an, &o.felas, &o.fplas, &o.fdamp, &o.fint, &o.fext, &o.fres} {
		*ptr = vec.AllocNode()
	}
	return
}

// SetMassMatrix sets the (lumped) mass matrix from the density of each element. The mass matrix
// is not modified if a free DOF would get a zero mass
func (o *System) SetMassMatrix(rho []float64) (err error) {
	elemmat, err := o.lumped(rho)
	if err != nil {
		return
	}
	err = o.M.Assemble(o.vec, elemmat)
	if err != nil {
		return
	}
	o.ready.Set(FlagMass)
	return
}

// SetDampingMatrix sets the (lumped) damping matrix from the damping coefficient of each element
func (o *System) SetDampingMatrix(alpha []float64) (err error) {
	for e, a := range alpha {
		if !(a >= 0) {
			return fmt.Errorf("%w: damping coefficient of element %d must be non-negative; %g is invalid", ErrConfig, e, a)
		}
	}
	elemmat, err := o.lumped(alpha)
	if err != nil {
		return
	}
	err = o.D.Assemble(o.vec, elemmat)
	if err != nil {
		return
	}
	o.ready.Set(FlagDamping)
	return
}

// SetElastic sets the bulk and shear moduli of the elastic elements
//  Input:
//   K, G -- [len(elastic)] moduli of each elastic element
func (o *System) SetElastic(K, G []float64) (err error) {
	if len(K) != len(o.elastic) || len(G) != len(o.elastic) {
		return fmt.Errorf("%w: K and G must have %d entries (one per elastic element); len(K)=%d, len(G)=%d", ErrConfig, len(o.elastic), len(K), len(G))
	}
	I, idx := o.selection(o.elastic)
	err = o.mat.SetElastic(I, idx, K, G)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	o.kelasDone = false
	o.ready.Set(FlagElastic)
	return o.initMaterial()
}

// SetPlastic sets the moduli and the yield strains of the plastic elements
//  Input:
//   K, G -- [len(plastic)] moduli of each plastic element
//   epsy -- [len(plastic)][nyield] sorted yield strains of each plastic element
func (o *System) SetPlastic(K, G []float64, epsy [][]float64) (err error) {
	n := len(o.plastic)
	if len(K) != n || len(G) != n || len(epsy) != n {
		return fmt.Errorf("%w: K, G and epsy must have %d entries (one per plastic element); len(K)=%d, len(G)=%d, len(epsy)=%d", ErrConfig, n, len(K), len(G), len(epsy))
	}
	I, idx := o.selection(o.plastic)
	err = o.mat.SetCusp(I, idx, K, G, epsy)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	o.ready.Set(FlagPlastic)
	return o.initMaterial()
}

// SetDt sets the time step
func (o *System) SetDt(dt float64) (err error) {
	if !(dt > 0) {
		return fmt.Errorf("%w: time step must be positive; dt = %g is invalid", ErrConfig, dt)
	}
	o.dt = dt
	o.ready.Set(FlagDt)
	return
}

// SetU sets the displacements and updates strains, stresses and forces. The displacements are
// not modified if the stresses cannot be computed
func (o *System) SetU(u [][]float64) (err error) {
	err = o.checkNode("u", u)
	if err != nil {
		return
	}
	if !o.kelasDone {
		copyNode(o.u, u)
		return
	}
	copyNode(o.un, o.u)
	copyNode(o.u, u)
	err = o.ComputeStressPlastic()
	if err != nil {
		copyNode(o.u, o.un)
		o.ComputeStressPlastic()
	}
	return
}

// SetV sets the velocities
func (o *System) SetV(v [][]float64) (err error) {
	err = o.checkNode("v", v)
	if err != nil {
		return
	}
	copyNode(o.v, v)
	return
}

// SetA sets the accelerations
func (o *System) SetA(a [][]float64) (err error) {
	err = o.checkNode("a", a)
	if err != nil {
		return
	}
	copyNode(o.a, a)
	return
}

// Quench sets velocities and accelerations to zero
func (o *System) Quench() {
	zeroNode(o.v)
	zeroNode(o.a)
}

// ComputeStress updates strains and stresses of all elements
func (o *System) ComputeStress() error {
	return o.full.ComputeStrain(o.u)
}

// ComputeStressPlastic updates strains and stresses of the plastic elements, the internal force
// of the plastic elements (by integration) and the internal force of the elastic elements (with
// the stiffness matrix)
func (o *System) ComputeStressPlastic() (err error) {
	if !o.kelasDone {
		return fmt.Errorf("%w: elastic and plastic parameters must be set first", ErrNotReady)
	}
	err = o.plas.ComputeStrain(o.u)
	if err != nil {
		return
	}
	o.plas.InternalForce(o.fplas)
	o.Kelas.Dot(o.u, o.felas)
	return
}

// Energies holds the energies of a System
type Energies struct {
	Kinetic float64 // ½ vᵀ M v
	Elastic float64 // energy stored in elastic elements
	Plastic float64 // energy stored in plastic elements
}

// Total returns the total mechanical energy
func (o Energies) Total() float64 {
	return o.Kinetic + o.Elastic + o.Plastic
}

// Energy computes the energies at the current state
func (o *System) Energy() (E Energies, err error) {
	if !o.ready.Has(FlagMass) {
		return E, fmt.Errorf("%w: mass matrix must be set first", ErrNotReady)
	}
	o.vec.AsDofs(o.v, o.dofval)
	for eq, m := range o.M.Data {
		E.Kinetic += 0.5 * m * o.dofval[eq] * o.dofval[eq]
	}
	for _, p := range []*Projection{o.elas, o.plas} {
		err = p.ComputeStrain(o.u)
		if err != nil {
			return
		}
	}
	E.Elastic = integrate(o.elas)
	E.Plastic = integrate(o.plas)
	return
}

// accessors ///////////////////////////////////////////////////////////////////////////////////////

// Stage returns the configuration stage
func (o *System) Stage() Stage { return o.ready.Stage() }

// T returns the current time
func (o *System) T() float64 { return o.t }

// Dt returns the time step
func (o *System) Dt() float64 { return o.dt }

// U returns the displacements [nnode][ndim]
func (o *System) U() [][]float64 { return o.u }

// V returns the velocities [nnode][ndim]
func (o *System) V() [][]float64 { return o.v }

// A returns the accelerations [nnode][ndim]
func (o *System) A() [][]float64 { return o.a }

// Coor returns the nodal coordinates [nnode][ndim]
func (o *System) Coor() [][]float64 { return o.coor }

// Conn returns the connectivity [nelem][nne]
func (o *System) Conn() [][]int { return o.conn }

// Dofs returns the DOF numbers [nnode][ndim]
func (o *System) Dofs() [][]int { return o.dofs }

// Iip returns the prescribed DOFs
func (o *System) Iip() []int { return o.iip }

// Elastic returns the elastic elements
func (o *System) Elastic() []int { return o.elastic }

// Plastic returns the plastic elements
func (o *System) Plastic() []int { return o.plastic }

// Nip returns the number of integration points per element
func (o *System) Nip() int { return o.quad.Nip }

// DV returns the integration volumes [nelem][nip]
func (o *System) DV() [][]float64 { return o.quad.DV() }

// Eps returns the strains of all elements [nelem][nip]. See ComputeStress
func (o *System) Eps() [][]msolid.Ten2 { return o.full.Eps }

// Sig returns the stresses of all elements [nelem][nip]. See ComputeStress
func (o *System) Sig() [][]msolid.Ten2 { return o.full.Sig }

// PlasticEps returns the strains of the plastic elements [len(plastic)][nip]
func (o *System) PlasticEps() [][]msolid.Ten2 { return o.plas.Eps }

// PlasticSig returns the stresses of the plastic elements [len(plastic)][nip]
func (o *System) PlasticSig() [][]msolid.Ten2 { return o.plas.Sig }

// PlasticCurrentIndex returns the yield index of the plastic elements [len(plastic)][nip]
func (o *System) PlasticCurrentIndex() [][]int { return o.plas.Mat.CurrentIndex() }

// PlasticCurrentYieldLeft returns the yield strain left of the current strain [len(plastic)][nip]
func (o *System) PlasticCurrentYieldLeft() [][]float64 { return o.plas.Mat.CurrentYieldLeft() }

// PlasticCurrentYieldRight returns the yield strain right of the current strain [len(plastic)][nip]
func (o *System) PlasticCurrentYieldRight() [][]float64 { return o.plas.Mat.CurrentYieldRight() }

// Fmaterial returns the internal force due to the material (elastic and plastic elements)
func (o *System) Fmaterial() (f [][]float64) {
	f = o.vec.AllocNode()
	for n := range f {
		floats.AddTo(f[n], o.felas[n], o.fplas[n])
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// initMaterial checks the material points and assembles the stiffness of the elastic elements
// once elastic and plastic parameters are available
func (o *System) initMaterial() (err error) {
	if !o.ready.Has(FlagElastic | FlagPlastic) {
		return
	}
	err = o.mat.Check()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if !o.kelasDone {
		K, err := o.elas.Stiffness()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConfig, err)
		}
		err = o.Kelas.Assemble(o.elas.Vec, K)
		if err != nil {
			return err
		}
		o.kelasDone = true
		if o.Verbose {
			io.Pforan("stiffness of %d elastic elements assembled\n", len(o.elastic))
		}
	}
	err = o.ComputeStress()
	if err != nil {
		return
	}
	return o.ComputeStressPlastic()
}

// lumped computes diagonal element matrices from a scalar per element using nodal quadrature
func (o *System) lumped(val []float64) (elemmat [][][]float64, err error) {
	if len(val) != o.vec.Nelem {
		return nil, fmt.Errorf("%w: %d values given; expected one per element (%d)", ErrConfig, len(val), o.vec.Nelem)
	}
	ips, err := shp.GetIps("qua4", "nodal")
	if err != nil {
		return
	}
	quad, err := NewQuadrature(o.x, ips)
	if err != nil {
		return
	}
	s := alloc(quad.Nelem, quad.Nip)
	for e := range s {
		for q := range s[e] {
			s[e][q] = val[e]
		}
	}
	elemmat = quad.AllocMat()
	quad.IntNScalarNT(s, elemmat)
	return
}

// selection returns the selection of all points of a set of elements and their index in the set
func (o *System) selection(elems []int) (I [][]bool, idx [][]int) {
	I = make([][]bool, o.vec.Nelem)
	idx = make([][]int, o.vec.Nelem)
	for e := 0; e < o.vec.Nelem; e++ {
		I[e] = make([]bool, o.quad.Nip)
		idx[e] = make([]int, o.quad.Nip)
	}
	for i, e := range elems {
		for q := 0; q < o.quad.Nip; q++ {
			I[e][q] = true
			idx[e][q] = i
		}
	}
	return
}

func (o *System) checkNode(name string, a [][]float64) error {
	if len(a) != o.vec.Nnode {
		return fmt.Errorf("%w: %s must have %d rows; got %d", ErrConfig, name, o.vec.Nnode, len(a))
	}
	for n := range a {
		if len(a[n]) != o.vec.Ndim {
			return fmt.Errorf("%w: %s[%d] must have %d columns; got %d", ErrConfig, name, n, o.vec.Ndim, len(a[n]))
		}
	}
	return nil
}

// integrate returns Σ W dV over the points of a projection
func integrate(p *Projection) (sum float64) {
	W := p.Mat.Energy()
	dV := p.Quad.DV()
	for e := range W {
		sum += floats.Dot(W[e], dV[e])
	}
	return
}
