// SPDX-License-Identifier: MIT
// Package plot: mean lines with shaded error bands.

package plot

import (
	"github.com/katalvlaran/ssvepcca/evaluator"
	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// bandAlpha is the opacity of the error bands.
const bandAlpha = 0.3

// ShadowLine draws, for data shaped groups × observations × variables, the
// per-variable mean of every group against x, surrounded by a band of
// ±error (opts.ErrorKind).
//
// Errors: ErrEmpty, ErrShape (x, Legend or XTicks length, ragged data),
// ErrRange, and evaluator errors.
func ShadowLine(x []float64, data [][][]float64, opts Options) (*gonumplot.Plot, error) {
	if len(data) == 0 || len(x) == 0 {
		return nil, plotErrorf(opShadow, ErrEmpty)
	}
	if opts.Legend != nil && len(opts.Legend) != len(data) {
		return nil, plotErrorf(opShadow, ErrShape)
	}
	if opts.XTicks != nil && len(opts.XTicks) != len(x) {
		return nil, plotErrorf(opShadow, ErrShape)
	}
	p, err := newPlot(opts)
	if err != nil {
		return nil, plotErrorf(opShadow, err)
	}

	// bands first so every line stays visible
	lines := make([]*plotter.Line, len(data))
	for g, obs := range data {
		vars, err := checkTable(obs)
		if err != nil {
			return nil, plotErrorf(opShadow, err)
		}
		if vars != len(x) {
			return nil, plotErrorf(opShadow, ErrShape)
		}
		means, errs, err := evaluator.ColumnStats(obs, opts.ErrorKind)
		if err != nil {
			return nil, plotErrorf(opShadow, err)
		}

		ring := make(plotter.XYs, 0, 2*vars)
		for i := range x {
			ring = append(ring, plotter.XY{X: x[i], Y: means[i] + errs[i]})
		}
		for i := vars - 1; i >= 0; i-- {
			ring = append(ring, plotter.XY{X: x[i], Y: means[i] - errs[i]})
		}
		band, err := plotter.NewPolygon(ring)
		if err != nil {
			return nil, plotErrorf(opShadow, err)
		}
		band.Color = groupColor(g, bandAlpha)
		band.LineStyle.Width = 0
		p.Add(band)

		pts := make(plotter.XYs, vars)
		for i := range x {
			pts[i] = plotter.XY{X: x[i], Y: means[i]}
		}
		if lines[g], err = plotter.NewLine(pts); err != nil {
			return nil, plotErrorf(opShadow, err)
		}
		lines[g].Color = groupColor(g, 1)
	}
	for g, l := range lines {
		p.Add(l)
		if opts.Legend != nil {
			p.Legend.Add(opts.Legend[g], l)
		}
	}
	if opts.XTicks != nil {
		p.X.Tick.Marker = variableTicks(x, opts.XTicks)
	}
	applyLimits(p, opts)

	return p, nil
}
