// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Increment records the outcome of one loading increment
type Increment struct {
	Gamma     float64  // imposed shear strain of the top boundary
	T         float64  // time after minimisation
	Niter     int      // number of time steps of minimisation
	Converged bool     // minimisation converged
	Sigxy     float64  // volume average of σ_xy of the plastic elements
	Nyield    int      // number of plastic points that changed yield index
	Energy    Energies // energies after minimisation
}

// Summary records summary of outputs
type Summary struct {

	// main data
	Incs   []Increment // loading increments
	Dirout string      // directory where results are stored
	Fnkey  string      // filename key of simulation

	// auxiliary
	tidx int // output index
}

// Record appends an increment and saves the state of the system (if sys != nil)
func (o *Summary) Record(inc Increment, sys *System, enctype string, verbose bool) (err error) {
	o.Incs = append(o.Incs, inc)
	if sys != nil {
		err = sys.SaveState(o.Dirout, o.Fnkey, enctype, o.tidx, verbose)
		if err != nil {
			return
		}
	}
	o.tidx++
	return
}

// Save saves summary to disc
func (o *Summary) Save(enctype string, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode summary
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode summary\n%v", err)
	}

	// save file
	fn := out_sum_path(o.Dirout, o.Fnkey, enctype)
	return save_file(fn, &buf, verbose)
}

// Read reads summary back
func (o *Summary) Read(dir, fnkey, enctype string) (err error) {

	// open file
	fn := out_sum_path(dir, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer fil.Close()

	// decode summary
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(o)
	if err != nil {
		return chk.Err("cannot decode summary\n%v", err)
	}
	o.tidx = len(o.Incs)
	return
}

// PlasticSigxy returns the volume average of σ_xy over the plastic elements
func (o *System) PlasticSigxy() float64 {
	var sum, vol float64
	for e := range o.plas.Sig {
		for q, dV := range o.plas.Quad.Vol[e] {
			sum += o.plas.Sig[e][q][0][1] * dV
			vol += dV
		}
	}
	if vol == 0 {
		return 0
	}
	return sum / vol
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_sum_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s_sum.%s", fnkey, enctype))
}
