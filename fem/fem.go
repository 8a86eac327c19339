// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tdegeus/FrictionQPotGooseFEM/inp"
)

// Stepper computes the next increment of the shear strain imposed on the top boundary
type Stepper interface {
	Increment(sys *System) (dgamma float64, err error)
}

// stepperallocators holds all available steppers
var stepperallocators = make(map[string]func(sim *inp.Simulation) Stepper)

// FEM holds all data for a quasi-static simple shear simulation
type FEM struct {
	Sim     *inp.Simulation // simulation data
	Sys     *System         // mechanical system
	Summary *Summary        // summary structure
	Stepper Stepper         // loading program; e.g. fixed increments or increments to the next event
	Gamma   float64         // current imposed shear strain
	Verbose bool            // show messages
}

// NewFEM returns a new FEM structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple FE solutions
//   erasePrev   -- erase previous results files
//   saveSummary -- save summary and states
//   verbose     -- show messages
func NewFEM(simfilepath, alias string, erasePrev, saveSummary, verbose bool) (o *FEM, err error) {

	// new FEM object
	o = &FEM{Verbose: verbose}

	// read input data
	o.Sim, err = inp.ReadSim(simfilepath, alias, erasePrev)
	if err != nil {
		return nil, chk.Err("cannot read simulation input data:\n%v", err)
	}

	// summary
	if saveSummary {
		o.Summary = &Summary{Dirout: o.Sim.DirOut, Fnkey: o.Sim.Key}
	}

	// system
	msh := o.Sim.Mesh.Msh
	o.Sys, err = NewSystem(msh.Coor, msh.Conn, msh.Dofs, msh.Iip, msh.Elastic, msh.Plastic)
	if err != nil {
		return nil, err
	}
	o.Sys.Verbose = verbose
	err = o.Configure()
	if err != nil {
		return nil, err
	}

	// stepper
	if alloc, ok := stepperallocators[o.Sim.Load.Mode]; ok {
		o.Stepper = alloc(o.Sim)
	} else {
		return nil, chk.Err("cannot find loading mode named %q", o.Sim.Load.Mode)
	}
	return
}

// Configure sets mass, damping, material parameters and time step of the system
func (o *FEM) Configure() (err error) {
	msh := o.Sim.Mesh.Msh
	nelem := msh.Nelem()
	err = o.Sys.SetMassMatrix(fillv(nelem, o.Sim.Dyn.Rho))
	if err != nil {
		return
	}
	err = o.Sys.SetDampingMatrix(fillv(nelem, o.Sim.Dyn.Alpha))
	if err != nil {
		return
	}
	Ke, Ge, err := o.Sim.ElasticModuli()
	if err != nil {
		return
	}
	err = o.Sys.SetElastic(fillv(len(msh.Elastic), Ke), fillv(len(msh.Elastic), Ge))
	if err != nil {
		return
	}
	Kp, Gp, yld, err := o.Sim.PlasticModuli()
	if err != nil {
		return
	}
	n := len(msh.Plastic)
	err = o.Sys.SetPlastic(fillv(n, Kp), fillv(n, Gp), yld.YieldStrains(n))
	if err != nil {
		return
	}
	return o.Sys.SetDt(o.Sim.Dyn.Dt)
}

// Run runs all loading increments
func (o *FEM) Run() (err error) {

	// first output
	cputime := time.Now()
	if o.Summary != nil {
		E, err := o.Sys.Energy()
		if err != nil {
			return err
		}
		inc := Increment{Gamma: o.Gamma, T: o.Sys.T(), Converged: true, Sigxy: o.Sys.PlasticSigxy(), Energy: E}
		err = o.Summary.Record(inc, o.Sys, o.Sim.EncType, o.Verbose)
		if err != nil {
			return chk.Err("cannot save results:\n%v", err)
		}
	}

	// loop over increments
	for i := 0; i < o.Sim.Load.Ninc; i++ {
		inc, err := o.Step()
		if err != nil {
			return err
		}
		if o.Verbose {
			io.Pf("%4d : γ = %13.6e, σxy = %13.6e, niter = %8d, nyield = %d\n", i+1, inc.Gamma, inc.Sigxy, inc.Niter, inc.Nyield)
		}
		if o.Summary != nil {
			err = o.Summary.Record(inc, o.Sys, o.Sim.EncType, o.Verbose)
			if err != nil {
				return chk.Err("cannot save results:\n%v", err)
			}
		}
	}

	// message
	if o.Verbose {
		io.Pf("\nfinal time = %v\n", o.Sys.T())
		io.Pflmag("cpu time   = %v\n", time.Now().Sub(cputime))
	}

	// save summary
	if o.Summary != nil {
		err = o.Summary.Save(o.Sim.EncType, o.Verbose)
	}
	return
}

// Step performs one loading increment: the imposed shear strain is increased by the stepper,
// an affine simple shear is added to the displacements and the system is minimised
func (o *FEM) Step() (inc Increment, err error) {

	// increment
	dγ, err := o.Stepper.Increment(o.Sys)
	if err != nil {
		return
	}
	idx0 := o.Sys.PlasticCurrentIndex()
	err = o.ApplyShear(dγ)
	if err != nil {
		return
	}
	o.Gamma += dγ

	// minimise
	opts := MinimiseOptions{
		Tol:      o.Sim.Solver.Tol,
		AbsTol:   o.Sim.Solver.AbsTol,
		NiterTol: o.Sim.Solver.NiterTol,
		MaxIter:  o.Sim.Solver.MaxIter,
	}
	inc.Converged, inc.Niter, err = o.Sys.Minimise(opts)
	if err != nil {
		return
	}

	// results
	for e, row := range o.Sys.PlasticCurrentIndex() {
		for q, idx := range row {
			if idx != idx0[e][q] {
				inc.Nyield++
			}
		}
	}
	inc.Gamma = o.Gamma
	inc.T = o.Sys.T()
	inc.Sigxy = o.Sys.PlasticSigxy()
	inc.Energy, err = o.Sys.Energy()
	return
}

// ApplyShear adds the affine simple shear u_x += dγ (y - ymin) to the displacements
func (o *FEM) ApplyShear(dγ float64) (err error) {
	ymin := o.Sim.Mesh.Msh.Ymin
	u := o.Sys.vec.AllocNode()
	copyNode(u, o.Sys.U())
	for n, x := range o.Sys.Coor() {
		u[n][0] += dγ * (x[1] - ymin)
	}
	return o.Sys.SetU(u)
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

func fillv(n int, v float64) (a []float64) {
	a = make([]float64, n)
	for i := range a {
		a[i] = v
	}
	return
}
