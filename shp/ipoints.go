// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ipoint holds the natural coordinates and the weight of an integration point
type Ipoint struct {
	R, S float64 // natural coordinates
	W    float64 // weight
}

// integration points of qua4 cells
var (
	ips_qua4_gauss = []Ipoint{
		{-1.0 / math.Sqrt(3.0), -1.0 / math.Sqrt(3.0), 1},
		{+1.0 / math.Sqrt(3.0), -1.0 / math.Sqrt(3.0), 1},
		{+1.0 / math.Sqrt(3.0), +1.0 / math.Sqrt(3.0), 1},
		{-1.0 / math.Sqrt(3.0), +1.0 / math.Sqrt(3.0), 1},
	}
	ips_qua4_nodal = []Ipoint{
		{-1, -1, 1},
		{+1, -1, 1},
		{+1, +1, 1},
		{-1, +1, 1},
	}
)

// GetIps returns the integration points of a given geometry
//  kind -- "gauss" => 2x2 Gauss-Legendre points
//          "nodal" => points located at the vertices (lumping)
func GetIps(geoType, kind string) (ips []Ipoint, err error) {
	if geoType != "qua4" {
		return nil, chk.Err("cannot find integration points for geometry type %q", geoType)
	}
	switch kind {
	case "", "gauss":
		return ips_qua4_gauss, nil
	case "nodal":
		return ips_qua4_nodal, nil
	}
	return nil, chk.Err("integration points of kind %q are not available", kind)
}
