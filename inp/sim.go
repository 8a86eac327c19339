// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/stat/distuv"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/fqpfem
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"
	Verbose bool   `json:"verbose"` // show messages
}

// MeshData holds the mesh file or the parameters of a regular mesh
type MeshData struct {
	Mshfile  string  `json:"mshfile"`  // mesh filename; empty means regular mesh
	AbsPath  bool    `json:"abspath"`  // mesh filename is absolute path
	Nx       int     `json:"nx"`       // regular mesh: number of cells along x
	Nbelow   int     `json:"nbelow"`   // regular mesh: elastic layers below the plastic layer
	Nabove   int     `json:"nabove"`   // regular mesh: elastic layers above the plastic layer
	H        float64 `json:"h"`        // regular mesh: cell size
	Periodic bool    `json:"periodic"` // regular mesh: periodic along x

	// derived
	Msh *Mesh `json:"-"` // the mesh
}

// DynData holds data for dynamics
type DynData struct {
	Rho   float64 `json:"rho"`   // density
	Alpha float64 `json:"alpha"` // damping coefficient (per unit volume)
	Dt    float64 `json:"dt"`    // time step; 0 means computed from the shear wave speed of the elastic cells
}

// SolverData holds data for the minimisation
type SolverData struct {
	Tol      float64 `json:"tol"`       // tolerance on the relative residual
	AbsTol   float64 `json:"abstol"`    // tolerance on the absolute residual
	NiterTol int     `json:"niter_tol"` // number of consecutive steps satisfying the tolerance
	MaxIter  int     `json:"max_iter"`  // maximum number of time steps per minimisation
}

// LoadData holds data for the loading program
type LoadData struct {
	Ninc   int     `json:"ninc"`   // number of increments
	Dgamma float64 `json:"dgamma"` // shear strain increment ("fixed" mode)
	Mode   string  `json:"mode"`   // "fixed": constant increments; "event": increments to the next yield event
	Kick   float64 `json:"kick"`   // "event" mode: equivalent strain added beyond the yield strain
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data    Data       `json:"data"`    // stores global simulation data
	Mesh    MeshData   `json:"mesh"`    // mesh data
	Elastic dbf.Params `json:"elastic"` // elastic parameters: K, G
	Plastic dbf.Params `json:"plastic"` // plastic parameters: K, G, epsy0, depsy, k, nyield, seed
	Dyn     DynData    `json:"dyn"`     // dynamics data
	Solver  SolverData `json:"solver"`  // minimisation data
	Load    LoadData   `json:"load"`    // loading data

	// derived
	DirOut  string // directory to save results
	Key     string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType string // encoder type
}

// Simulation //////////////////////////////////////////////////////////////////////////////////////

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasefiles bool) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)

	// read file
	b, err := os.ReadFile(os.ExpandEnv(simfilepath))
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// set default values
	o.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/fqpfem/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// mesh
	if o.Mesh.Mshfile != "" {
		ddir := dir
		if o.Mesh.AbsPath {
			ddir = ""
		}
		o.Mesh.Msh, err = ReadMsh(ddir, o.Mesh.Mshfile)
	} else {
		o.Mesh.Msh, err = NewRegularMesh(o.Mesh.Nx, o.Mesh.Nbelow, o.Mesh.Nabove, o.Mesh.H, o.Mesh.Periodic)
	}
	if err != nil {
		return nil, chk.Err("ReadSim: cannot set mesh:\n%v", err)
	}

	// check parameters and set derived values
	err = o.PostProcess()
	return
}

// SetDefault sets defaults values
func (o *Simulation) SetDefault() {
	o.Data.Encoder = "gob"
	o.Mesh.Nx = 20
	o.Mesh.Nbelow = 5
	o.Mesh.Nabove = 5
	o.Mesh.H = 1
	o.Mesh.Periodic = true
	o.Dyn.Rho = 1
	o.Dyn.Alpha = 0.1
	o.Solver.Tol = 1e-5
	o.Solver.AbsTol = 1e-12
	o.Solver.NiterTol = 20
	o.Solver.MaxIter = 1000000
	o.Load.Ninc = 10
	o.Load.Dgamma = 1e-3
	o.Load.Mode = "fixed"
	o.Load.Kick = 1e-4
}

// PostProcess checks the parameters and computes derived values
func (o *Simulation) PostProcess() (err error) {
	if o.Mesh.Msh == nil {
		return chk.Err("mesh must be set first")
	}
	Ke, Ge, err := o.ElasticModuli()
	if err != nil {
		return
	}
	_, _, _, err = o.PlasticModuli()
	if err != nil {
		return
	}
	if !(o.Dyn.Rho > 0) || o.Dyn.Alpha < 0 {
		return chk.Err("dynamics: rho must be positive and alpha must be non-negative; rho=%g, alpha=%g", o.Dyn.Rho, o.Dyn.Alpha)
	}
	if o.Dyn.Dt == 0 {
		c := math.Sqrt(math.Max(Ke, Ge) / o.Dyn.Rho)
		o.Dyn.Dt = 0.1 * o.Mesh.Msh.H() / c
	}
	if !(o.Dyn.Dt > 0) {
		return chk.Err("dynamics: dt = %g is invalid", o.Dyn.Dt)
	}
	if o.Load.Mode != "fixed" && o.Load.Mode != "event" {
		return chk.Err("load: mode %q is invalid; must be \"fixed\" or \"event\"", o.Load.Mode)
	}
	return
}

// ElasticModuli returns the moduli of elastic cells
func (o *Simulation) ElasticModuli() (K, G float64, err error) {
	K, G = -1, -1
	for _, p := range o.Elastic {
		switch p.N {
		case "K":
			K = p.V
		case "G":
			G = p.V
		default:
			return 0, 0, chk.Err("elastic: parameter named %q is invalid", p.N)
		}
	}
	if !(K > 0) || !(G > 0) {
		return 0, 0, chk.Err("elastic: K and G must be given and positive; K=%g, G=%g", K, G)
	}
	return
}

// YieldData holds the parameters to generate yield strains
//
//  epsy[i] = epsy0 + depsy Σ_{j<=i} w_j    with    w_j ~ Weibull(k, 1)
//
// with w_j = 1 if k == 0
type YieldData struct {
	Epsy0  float64 // offset
	Depsy  float64 // typical distance between yield strains
	K      float64 // shape parameter of Weibull distribution; 0 means regular yield strains
	Nyield int     // number of yield strains per element
	Seed   int64   // seed of random numbers generator
}

// PlasticModuli returns the moduli of plastic cells and the data to generate yield strains
func (o *Simulation) PlasticModuli() (K, G float64, y YieldData, err error) {
	K, G = -1, -1
	y = YieldData{Epsy0: 0, Depsy: 1e-3, Nyield: 1000}
	for _, p := range o.Plastic {
		switch p.N {
		case "K":
			K = p.V
		case "G":
			G = p.V
		case "epsy0":
			y.Epsy0 = p.V
		case "depsy":
			y.Depsy = p.V
		case "k":
			y.K = p.V
		case "nyield":
			y.Nyield = int(p.V)
		case "seed":
			y.Seed = int64(p.V)
		default:
			return 0, 0, y, chk.Err("plastic: parameter named %q is invalid", p.N)
		}
	}
	if !(K > 0) || !(G > 0) {
		return 0, 0, y, chk.Err("plastic: K and G must be given and positive; K=%g, G=%g", K, G)
	}
	if y.Epsy0 < 0 || !(y.Depsy > 0) || y.K < 0 || y.Nyield < 1 {
		return 0, 0, y, chk.Err("plastic: invalid yield data: %+v", y)
	}
	return
}

// YieldStrains generates the yield strains of n plastic cells
func (o YieldData) YieldStrains(n int) (epsy [][]float64) {
	dist := distuv.Weibull{K: o.K, Lambda: 1, Src: rand.NewPCG(uint64(o.Seed), 0)}
	epsy = make([][]float64, n)
	for e := 0; e < n; e++ {
		epsy[e] = make([]float64, o.Nyield)
		sum := o.Epsy0
		for i := 0; i < o.Nyield; i++ {
			w := 1.0
			if o.K > 0 {
				w = dist.Rand()
			}
			sum += o.Depsy * w
			epsy[e][i] = sum
		}
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
