// SPDX-License-Identifier: MIT
// Package plot: bar charts.
//
// Variables sit at x = 1..V. With G groups every variable gets G bars that
// share the slot [v−0.5+sep/2, v+0.5−sep/2]; group g is centred at
//
//	v − 0.5 + sep/2 + w/2 + g·w,   w = (1 − sep)/G.

package plot

import (
	"github.com/katalvlaran/ssvepcca/evaluator"
	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// barSep is the empty share of every variable slot.
const barSep = 0.25

// errorPoints feeds plotter.NewYErrorBars.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// Bar draws the mean of every column of an observations × variables table.
//
// Errors: ErrEmpty, ErrShape (ragged rows or XTicks length), ErrRange.
func Bar(obs [][]float64, opts Options) (*gonumplot.Plot, error) {
	vars, err := checkTable(obs)
	if err != nil {
		return nil, plotErrorf(opBar, err)
	}
	if opts.XTicks != nil && len(opts.XTicks) != vars {
		return nil, plotErrorf(opBar, ErrShape)
	}
	means, _, err := evaluator.ColumnStats(obs, evaluator.ErrorStd)
	if err != nil {
		return nil, plotErrorf(opBar, err)
	}
	p, err := newPlot(opts)
	if err != nil {
		return nil, plotErrorf(opBar, err)
	}
	bc, err := plotter.NewBarChart(plotter.Values(means), barWidth(opts))
	if err != nil {
		return nil, plotErrorf(opBar, err)
	}
	bc.XMin = 1
	bc.Color = groupColor(0, 1)
	p.Add(bc)
	p.X.Tick.Marker = variableTicks(centres(vars), opts.XTicks)
	applyLimits(p, opts)

	return p, nil
}

// BarWithErrorbar draws grouped bars of column means with error bars, for
// data shaped groups × observations × variables. Error bars follow
// opts.ErrorKind.
//
// Errors: ErrEmpty, ErrShape (ragged data, Legend or XTicks length),
// ErrRange, and evaluator errors (e.g. CI95 with one observation).
func BarWithErrorbar(data [][][]float64, opts Options) (*gonumplot.Plot, error) {
	if len(data) == 0 {
		return nil, plotErrorf(opBarError, ErrEmpty)
	}
	vars, err := checkTable(data[0])
	if err != nil {
		return nil, plotErrorf(opBarError, err)
	}
	if opts.XTicks != nil && len(opts.XTicks) != vars {
		return nil, plotErrorf(opBarError, ErrShape)
	}
	if opts.Legend != nil && len(opts.Legend) != len(data) {
		return nil, plotErrorf(opBarError, ErrShape)
	}
	p, err := newPlot(opts)
	if err != nil {
		return nil, plotErrorf(opBarError, err)
	}

	groups := len(data)
	w := (1 - barSep) / float64(groups)
	for g, obs := range data {
		v, err := checkTable(obs)
		if err != nil {
			return nil, plotErrorf(opBarError, err)
		}
		if v != vars {
			return nil, plotErrorf(opBarError, ErrShape)
		}
		means, errs, err := evaluator.ColumnStats(obs, opts.ErrorKind)
		if err != nil {
			return nil, plotErrorf(opBarError, err)
		}

		x0 := 1 - 0.5 + barSep/2 + w/2 + float64(g)*w
		bc, err := plotter.NewBarChart(plotter.Values(means), barWidth(opts))
		if err != nil {
			return nil, plotErrorf(opBarError, err)
		}
		bc.XMin = x0
		bc.Color = groupColor(g, 1)
		p.Add(bc)
		if opts.Legend != nil {
			p.Legend.Add(opts.Legend[g], bc)
		}

		pts := errorPoints{XYs: make(plotter.XYs, vars), YErrors: make(plotter.YErrors, vars)}
		for i := range means {
			pts.XYs[i] = plotter.XY{X: x0 + float64(i), Y: means[i]}
			pts.YErrors[i].Low, pts.YErrors[i].High = errs[i], errs[i]
		}
		eb, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return nil, plotErrorf(opBarError, err)
		}
		eb.Width = vg.Points(2)
		eb.CapWidth = vg.Points(8)
		p.Add(eb)
	}
	p.X.Tick.Marker = variableTicks(centres(vars), opts.XTicks)
	applyLimits(p, opts)

	return p, nil
}

func barWidth(opts Options) vg.Length {
	if opts.BarWidth > 0 {
		return opts.BarWidth
	}

	return DefaultOptions().BarWidth
}

// centres returns 1..n as float64.
func centres(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}
