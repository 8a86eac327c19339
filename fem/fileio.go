// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// SaveState saves the kinematic state (t, u, v, a) to a file which name is set with tidx (output index)
func (o *System) SaveState(dir, fnkey, enctype string, tidx int, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode state
	err = enc.Encode(o.t)
	if err != nil {
		return chk.Err("cannot encode System.t\n%v", err)
	}
	for _, a := range []struct {
		name string
		val  [][]float64
	}{{"u", o.u}, {"v", o.v}, {"a", o.a}} {
		err = enc.Encode(a.val)
		if err != nil {
			return chk.Err("cannot encode System.%s\n%v", a.name, err)
		}
	}

	// save file
	fn := out_state_path(dir, fnkey, enctype, tidx)
	return save_file(fn, &buf, verbose)
}

// ReadState reads the kinematic state from a file which name is set with tidx (output index).
// Strains, stresses and forces are updated
func (o *System) ReadState(dir, fnkey, enctype string, tidx int) (err error) {

	// open file
	fn := out_state_path(dir, fnkey, enctype, tidx)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer fil.Close()

	// decode state
	var t float64
	var u, v, a [][]float64
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(&t)
	if err != nil {
		return chk.Err("cannot decode System.t\n%v", err)
	}
	for _, ptr := range []*[][]float64{&u, &v, &a} {
		err = dec.Decode(ptr)
		if err != nil {
			return chk.Err("cannot decode kinematic state\n%v", err)
		}
	}

	// set state
	err = o.SetU(u)
	if err != nil {
		return
	}
	err = o.SetV(v)
	if err != nil {
		return
	}
	err = o.SetA(a)
	if err != nil {
		return
	}
	o.t = t
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_state_path(dir, fnkey, enctype string, tidx int) string {
	return path.Join(dir, io.Sf("%s_state_%010d.%s", fnkey, tidx, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
