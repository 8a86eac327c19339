// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// constants
const Ztol = 1e-7

// cell tags
const (
	TagElastic = -1 // elastic cells
	TagPlastic = -2 // plastic cells
)

// Vert holds vertex data
type Vert struct {
	Id int       `json:"id"` // id
	C  []float64 `json:"c"`  // coordinates (size==2)
}

// Cell holds cell data
type Cell struct {
	Id    int    `json:"id"`    // id
	Tag   int    `json:"tag"`   // tag: TagElastic or TagPlastic
	Type  string `json:"type"`  // geometry type; only "qua4"
	Verts []int  `json:"verts"` // vertices
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// from JSON
	Verts    []*Vert `json:"verts"`    // vertices
	Cells    []*Cell `json:"cells"`    // cells
	Periodic bool    `json:"periodic"` // left and right boundaries share DOFs

	// derived
	FnamePath  string  `json:"-"` // complete filename path
	Ndim       int     `json:"-"` // space dimension
	Xmin, Xmax float64 `json:"-"` // min and max x-coordinate
	Ymin, Ymax float64 `json:"-"` // min and max y-coordinate

	// derived: FE data
	Coor    [][]float64 `json:"-"` // [nnode][ndim] coordinates
	Conn    [][]int     `json:"-"` // [nelem][nne] connectivity
	Dofs    [][]int     `json:"-"` // [nnode][ndim] DOF numbers
	Iip     []int       `json:"-"` // prescribed DOFs: all DOFs of bottom and top vertices
	Elastic []int       `json:"-"` // elastic cells
	Plastic []int       `json:"-"` // plastic cells
	Bottom  []int       `json:"-"` // vertices at y == Ymin
	Top     []int       `json:"-"` // vertices at y == Ymax
	Left    []int       `json:"-"` // vertices at x == Xmin
	Right   []int       `json:"-"` // vertices at x == Xmax
}

// ReadMsh reads a mesh for FE analyses
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := os.ReadFile(os.ExpandEnv(o.FnamePath))
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q:\n%v", o.FnamePath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", o.FnamePath, err)
	}

	// derived data
	err = o.Derive()
	if err != nil {
		return nil, chk.Err("invalid mesh file %q:\n%v", o.FnamePath, err)
	}
	return
}

// NewRegularMesh generates a rectangular mesh of square qua4 cells with one layer of plastic
// cells between nbelow and nabove layers of elastic cells
//  Input:
//   nx       -- number of cells along x
//   nbelow   -- number of elastic layers below the plastic layer
//   nabove   -- number of elastic layers above the plastic layer
//   h        -- size of cells
//   periodic -- left and right boundaries share DOFs
func NewRegularMesh(nx, nbelow, nabove int, h float64, periodic bool) (o *Mesh, err error) {
	if nx < 1 || nbelow < 0 || nabove < 0 || !(h > 0) {
		return nil, chk.Err("invalid regular mesh: nx=%d, nbelow=%d, nabove=%d, h=%g", nx, nbelow, nabove, h)
	}
	if periodic && nx < 2 {
		return nil, chk.Err("periodic meshes require at least 2 cells along x; nx=%d is invalid", nx)
	}
	ny := nbelow + 1 + nabove
	o = &Mesh{Periodic: periodic}
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			o.Verts = append(o.Verts, &Vert{Id: len(o.Verts), C: []float64{float64(i) * h, float64(j) * h}})
		}
	}
	for j := 0; j < ny; j++ {
		tag := TagElastic
		if j == nbelow {
			tag = TagPlastic
		}
		for i := 0; i < nx; i++ {
			a := j*(nx+1) + i
			o.Cells = append(o.Cells, &Cell{
				Id:    len(o.Cells),
				Tag:   tag,
				Type:  "qua4",
				Verts: []int{a, a + 1, a + nx + 2, a + nx + 1},
			})
		}
	}
	err = o.Derive()
	return
}

// Derive computes derived data, including DOF numbers and boundaries, from vertices and cells
func (o *Mesh) Derive() (err error) {

	// check
	err = o.Check()
	if err != nil {
		return
	}

	// vertices
	o.Ndim = 2
	o.Xmin, o.Xmax = o.Verts[0].C[0], o.Verts[0].C[0]
	o.Ymin, o.Ymax = o.Verts[0].C[1], o.Verts[0].C[1]
	o.Coor = make([][]float64, len(o.Verts))
	for i, v := range o.Verts {
		o.Coor[i] = []float64{v.C[0], v.C[1]}
		o.Xmin = math.Min(o.Xmin, v.C[0])
		o.Xmax = math.Max(o.Xmax, v.C[0])
		o.Ymin = math.Min(o.Ymin, v.C[1])
		o.Ymax = math.Max(o.Ymax, v.C[1])
	}
	o.Bottom, o.Top, o.Left, o.Right = nil, nil, nil, nil
	for i, v := range o.Verts {
		if math.Abs(v.C[1]-o.Ymin) < Ztol {
			o.Bottom = append(o.Bottom, i)
		}
		if math.Abs(v.C[1]-o.Ymax) < Ztol {
			o.Top = append(o.Top, i)
		}
		if math.Abs(v.C[0]-o.Xmin) < Ztol {
			o.Left = append(o.Left, i)
		}
		if math.Abs(v.C[0]-o.Xmax) < Ztol {
			o.Right = append(o.Right, i)
		}
	}

	// cells
	o.Conn = make([][]int, len(o.Cells))
	o.Elastic, o.Plastic = nil, nil
	for i, c := range o.Cells {
		o.Conn[i] = c.Verts
		switch c.Tag {
		case TagElastic:
			o.Elastic = append(o.Elastic, i)
		case TagPlastic:
			o.Plastic = append(o.Plastic, i)
		}
	}

	// periodicity: right vertices take the DOFs of the left vertex at the same height
	master := make([]int, len(o.Verts))
	for i := range master {
		master[i] = i
	}
	if o.Periodic {
		for _, r := range o.Right {
			found := false
			for _, l := range o.Left {
				if math.Abs(o.Verts[r].C[1]-o.Verts[l].C[1]) < Ztol {
					master[r], found = l, true
					break
				}
			}
			if !found {
				return chk.Err("periodic mesh: cannot find left vertex matching right vertex %d", r)
			}
		}
	}

	// DOF numbers
	o.Dofs = make([][]int, len(o.Verts))
	ndof := 0
	for i := range o.Verts {
		if master[i] == i {
			o.Dofs[i] = []int{ndof, ndof + 1}
			ndof += 2
		}
	}
	for i := range o.Verts {
		if master[i] != i {
			o.Dofs[i] = o.Dofs[master[i]]
		}
	}

	// prescribed DOFs
	fixed := make(map[int]bool)
	for _, set := range [][]int{o.Bottom, o.Top} {
		for _, n := range set {
			for _, eq := range o.Dofs[n] {
				fixed[eq] = true
			}
		}
	}
	o.Iip = make([]int, 0, len(fixed))
	for eq := range fixed {
		o.Iip = append(o.Iip, eq)
	}
	sort.Ints(o.Iip)
	return
}

// Check checks vertices and cells
func (o *Mesh) Check() (err error) {
	if len(o.Verts) < 4 {
		return chk.Err("mesh must have at least 4 vertices; %d is invalid", len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return chk.Err("mesh must have at least 1 cell")
	}
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertex %d has invalid id %d", i, v.Id)
		}
		if len(v.C) != 2 {
			return chk.Err("vertex %d must have 2 coordinates; %d is invalid", i, len(v.C))
		}
	}
	nplastic := 0
	for i, c := range o.Cells {
		if c.Id != i {
			return chk.Err("cell %d has invalid id %d", i, c.Id)
		}
		if c.Type != "qua4" {
			return chk.Err("cell %d has unsupported type %q", i, c.Type)
		}
		if len(c.Verts) != 4 {
			return chk.Err("cell %d must have 4 vertices; %d is invalid", i, len(c.Verts))
		}
		for _, v := range c.Verts {
			if v < 0 || v >= len(o.Verts) {
				return chk.Err("cell %d refers to invalid vertex %d", i, v)
			}
		}
		switch c.Tag {
		case TagElastic:
		case TagPlastic:
			nplastic++
		default:
			return chk.Err("cell %d has invalid tag %d; must be %d (elastic) or %d (plastic)", i, c.Tag, TagElastic, TagPlastic)
		}
	}
	if nplastic == 0 {
		return chk.Err("mesh must have at least one plastic cell")
	}
	return
}

// Nnode returns the number of vertices
func (o *Mesh) Nnode() int { return len(o.Verts) }

// Nelem returns the number of cells
func (o *Mesh) Nelem() int { return len(o.Cells) }

// H returns the typical cell size; i.e. the length of the first edge of the first cell
func (o *Mesh) H() float64 {
	a := o.Verts[o.Cells[0].Verts[0]].C
	b := o.Verts[o.Cells[0].Verts[1]].C
	return math.Hypot(b[0]-a[0], b[1]-a[1])
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	return io.Sf("{\"id\":%4d, \"c\":[%23.15e, %23.15e] }", o.Id, o.C[0], o.C[1])
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"verts\":[", o.Id, o.Tag, o.Type)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Mesh
func (o Mesh) String() string {
	l := io.Sf("{\n  \"periodic\" : %v,\n  \"verts\" : [\n", o.Periodic)
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, x := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}

// WriteMsh writes the mesh to a JSON file
func (o *Mesh) WriteMsh(dir, fn string) {
	io.WriteFileD(dir, fn, bytes.NewBufferString(o.String()))
}
