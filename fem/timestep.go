// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// TimeStep advances the state by dt with the velocity Verlet scheme. The velocity is estimated
// three times such that the damping force is consistent with the new velocity:
//
//  u := u + dt v + ½ dt² a                  (internal force computed once)
//  v := v_n + dt a_n                        (first estimate)
//  v := v_n + ½ dt (a_n + a)                (two corrections)
//
// and, for each estimate of v, a is solved from M a = fext - fint on the free DOFs, with
// fint = felas + fplas + fdamp and fext = fint on the prescribed DOFs.
//
// If the plastic response cannot be computed (e.g. ErrYieldExceeded) the state is rolled back
func (o *System) TimeStep() (err error) {
	err = o.ready.Require()
	if err != nil {
		return
	}

	// history
	t := o.t
	o.t += o.dt
	copyNode(o.un, o.u)
	copyNode(o.vn, o.v)
	copyNode(o.an, o.a)

	// new displacement
	for n := range o.u {
		floats.AddScaled(o.u[n], o.dt, o.v[n])
		floats.AddScaled(o.u[n], 0.5*o.dt*o.dt, o.a[n])
	}

	// strain, stress and corresponding force
	err = o.ComputeStressPlastic()
	if err != nil {
		o.t = t
		copyNode(o.u, o.un)
		if e := o.ComputeStressPlastic(); e != nil && o.Verbose {
			io.PfRed("cannot restore state: %v\n", e)
		}
		return
	}

	// velocity estimates; residual force; acceleration
	for pass := 0; pass < 3; pass++ {
		for n := range o.v {
			if pass == 0 {
				floats.AddScaledTo(o.v[n], o.vn[n], o.dt, o.an[n])
			} else {
				floats.AddTo(o.v[n], o.an[n], o.a[n])
				floats.Scale(0.5*o.dt, o.v[n])
				floats.Add(o.v[n], o.vn[n])
			}
		}
		o.D.Dot(o.v, o.fdamp)
		for n := range o.fint {
			floats.AddTo(o.fint[n], o.felas[n], o.fplas[n])
			floats.Add(o.fint[n], o.fdamp[n])
		}
		o.vec.CopyP(o.fint, o.fext)
		for n := range o.fres {
			floats.SubTo(o.fres[n], o.fext[n], o.fint[n])
		}
		o.M.Solve(o.fres, o.a)
	}
	return
}

// TimeSteps performs n time steps
func (o *System) TimeSteps(n int) (err error) {
	for i := 0; i < n; i++ {
		err = o.TimeStep()
		if err != nil {
			return
		}
	}
	return
}

// Residual returns the relative residual |fres| / |fext|. The absolute norm |fres| is returned
// if the external force vanishes
func (o *System) Residual() float64 {
	fres := o.norm(o.fres)
	fext := o.norm(o.fext)
	if fext == 0 {
		return fres
	}
	return fres / fext
}

// MinimiseOptions holds the options of Minimise
type MinimiseOptions struct {
	Tol      float64 // tolerance on the relative residual
	AbsTol   float64 // tolerance on the absolute residual; e.g. when the external force vanishes
	NiterTol int     // number of consecutive steps that must satisfy the tolerance
	MaxIter  int     // maximum number of steps
}

// DefaultMinimiseOptions returns the default options of Minimise
func DefaultMinimiseOptions() MinimiseOptions {
	return MinimiseOptions{
		Tol:      1e-5,
		AbsTol:   1e-12,
		NiterTol: 20,
		MaxIter:  1000000,
	}
}

// Minimise performs time steps until the residual is below the tolerance for opts.NiterTol
// consecutive steps. The velocities and accelerations are set to zero on convergence.
//  Output:
//   converged -- false if opts.MaxIter steps were performed without convergence
//   niter     -- number of steps performed
func (o *System) Minimise(opts MinimiseOptions) (converged bool, niter int, err error) {
	err = o.ready.Require()
	if err != nil {
		return
	}
	stop := NewStopList(opts.NiterTol)
	for niter < opts.MaxIter {
		err = o.TimeStep()
		if err != nil {
			return
		}
		niter++
		res := o.Residual()
		if o.norm(o.fres) < opts.AbsTol {
			res = 0
		}
		if o.Verbose && niter%10000 == 0 {
			io.Pf("%8d : res = %23.15e\n", niter, res)
		}
		if stop.Stop(res, opts.Tol) {
			o.Quench()
			converged = true
			break
		}
	}
	if o.Verbose {
		if converged {
			io.Pfgreen("converged after %d steps (t = %g)\n", niter, o.t)
		} else {
			io.Pfred("not converged after %d steps (res = %g)\n", niter, o.Residual())
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// norm returns the Euclidean norm of the DOF vector corresponding to a nodal vector
func (o *System) norm(a [][]float64) float64 {
	o.vec.AsDofs(a, o.dofval)
	return floats.Norm(o.dofval, 2)
}
