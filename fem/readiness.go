// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
	"strings"
)

// Stage defines the configuration stage of a System
type Stage int

const (
	Unconfigured        Stage = iota // nothing has been set
	PartiallyConfigured              // some but not all data has been set
	Ready                            // time integration can be performed
)

// String returns the name of the stage
func (s Stage) String() string {
	switch s {
	case PartiallyConfigured:
		return "partially-configured"
	case Ready:
		return "ready"
	}
	return "unconfigured"
}

// Flag identifies one piece of configuration data
type Flag uint

const (
	FlagMass Flag = 1 << iota
	FlagDamping
	FlagElastic
	FlagPlastic
	FlagDt

	flagAll = FlagMass | FlagDamping | FlagElastic | FlagPlastic | FlagDt
)

var flagnames = []struct {
	f    Flag
	name string
}{
	{FlagMass, "mass"},
	{FlagDamping, "damping"},
	{FlagElastic, "elastic"},
	{FlagPlastic, "plastic"},
	{FlagDt, "dt"},
}

// Readiness tracks which configuration data has been set
type Readiness struct {
	flags Flag
}

// Set marks data as set and returns the new stage
func (o *Readiness) Set(f Flag) Stage {
	o.flags |= f
	return o.Stage()
}

// Has tells whether all data in f has been set
func (o Readiness) Has(f Flag) bool {
	return o.flags&f == f
}

// Stage returns the current stage
func (o Readiness) Stage() Stage {
	switch o.flags & flagAll {
	case 0:
		return Unconfigured
	case flagAll:
		return Ready
	}
	return PartiallyConfigured
}

// Missing returns the names of the data not set yet
func (o Readiness) Missing() (names []string) {
	for _, fn := range flagnames {
		if !o.Has(fn.f) {
			names = append(names, fn.name)
		}
	}
	return
}

// Require returns ErrNotReady unless the stage is Ready
func (o Readiness) Require() error {
	if o.Stage() != Ready {
		return fmt.Errorf("%w: stage is %v; missing %s", ErrNotReady, o.Stage(), strings.Join(o.Missing(), ", "))
	}
	return nil
}
