// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// constants
var (
	FigWidth  = 6 * vg.Inch // width of figures
	FigHeight = 4 * vg.Inch // height of figures
)

// labels of results
var reslabels = map[string]string{
	"gamma":  "γ",
	"t":      "t",
	"sigxy":  "σxy",
	"niter":  "number of steps",
	"nyield": "number of yielding points",
	"Ekin":   "kinetic energy",
	"Eelas":  "elastic energy",
	"Eplas":  "plastic energy",
	"E":      "total energy",
}

// PlotRes plots the series of results ykey against xkey; e.g. "sigxy" against "gamma"
//  Output: figure saved to dirout/fn; the extension of fn selects the format (e.g. png, svg, pdf)
func PlotRes(xkey, ykey, dirout, fn string) (err error) {
	X, err := GetRes(xkey)
	if err != nil {
		return
	}
	Y, err := GetRes(ykey)
	if err != nil {
		return
	}
	p := plot.New()
	p.Title.Text = io.Sf("%s: %s", Analysis.Sim.Key, reslabels[ykey])
	p.X.Label.Text = reslabels[xkey]
	p.Y.Label.Text = reslabels[ykey]
	err = plotutil.AddLinePoints(p, ykey, xys(X, Y))
	if err != nil {
		return
	}
	return save(p, dirout, fn)
}

// PlotLandscape plots the energy landscape of selected plastic elements
//  Input:
//   dgamma -- [ndγ] increments of shear strain
//   E      -- [nplastic][ndγ] energy changes; e.g. from fem.System.PlasticEnergyLandscapeSimpleShear
//   elems  -- indices of plastic elements (rows of E) to be plotted; nil means all
//  Note: NaN values (increments beyond the last yield strain) are skipped
func PlotLandscape(dgamma []float64, E [][]float64, elems []int, dirout, fn string) (err error) {
	if elems == nil {
		elems = make([]int, len(E))
		for i := range elems {
			elems[i] = i
		}
	}
	p := plot.New()
	p.Title.Text = "energy landscape"
	p.X.Label.Text = "Δγ"
	p.Y.Label.Text = "ΔE"
	var lines []interface{}
	for _, e := range elems {
		if e < 0 || e >= len(E) {
			return chk.Err("plastic element %d is out of range [0,%d)", e, len(E))
		}
		if len(E[e]) != len(dgamma) {
			return chk.Err("energies of plastic element %d must have %d values; %d is invalid", e, len(dgamma), len(E[e]))
		}
		lines = append(lines, io.Sf("e%d", e), xys(dgamma, E[e]))
	}
	err = plotutil.AddLines(p, lines...)
	if err != nil {
		return
	}
	return save(p, dirout, fn)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// xys converts series into plotter data, skipping NaN values
func xys(X, Y []float64) (pts plotter.XYs) {
	for i := range X {
		if math.IsNaN(X[i]) || math.IsNaN(Y[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: X[i], Y: Y[i]})
	}
	return
}

func save(p *plot.Plot, dirout, fn string) (err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return
	}
	path := filepath.Join(dirout, fn)
	err = p.Save(FigWidth, FigHeight, path)
	if err != nil {
		return chk.Err("cannot save figure %q:\n%v", path, err)
	}
	io.Pfblue2("file <%s> written\n", path)
	return
}
