// SPDX-License-Identifier: MIT
// Package plot: shared plot construction.

package plot

import (
	"image/color"
	"math"
	"strconv"

	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Default output size.
const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
)

// newPlot validates the axis options and returns a titled, labeled plot.
func newPlot(opts Options) (*gonumplot.Plot, error) {
	if !opts.XLim.valid() || !opts.YLim.valid() {
		return nil, ErrRange
	}
	p := gonumplot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	if opts.Grid {
		p.Add(plotter.NewGrid())
	}

	return p, nil
}

// applyLimits must run after every plotter is added; Add widens the axes.
func applyLimits(p *gonumplot.Plot, opts Options) {
	if opts.XLim != nil {
		p.X.Min, p.X.Max = opts.XLim.Min, opts.XLim.Max
	}
	if opts.YLim != nil {
		p.Y.Min, p.Y.Max = opts.YLim.Min, opts.YLim.Max
	}
}

// groupColor is the i-th default plotutil color with the given opacity.
func groupColor(i int, alpha float64) color.Color {
	c := color.NRGBAModel.Convert(plotutil.Color(i)).(color.NRGBA)
	c.A = uint8(math.Round(math.Min(math.Max(alpha, 0), 1) * 255))

	return c
}

// variableTicks labels positions xs with labels, or with 1..n when labels
// is nil.
func variableTicks(xs []float64, labels []string) gonumplot.ConstantTicks {
	ticks := make(gonumplot.ConstantTicks, len(xs))
	for i, x := range xs {
		label := strconv.Itoa(i + 1)
		if labels != nil {
			label = labels[i]
		}
		ticks[i] = gonumplot.Tick{Value: x, Label: label}
	}

	return ticks
}

// checkTable requires a non-empty observations × variables table with rows
// of one length and returns the variable count.
func checkTable(obs [][]float64) (int, error) {
	if len(obs) == 0 || len(obs[0]) == 0 {
		return 0, ErrEmpty
	}
	vars := len(obs[0])
	for _, row := range obs {
		if len(row) != vars {
			return 0, ErrShape
		}
	}

	return vars, nil
}

// Save renders p to path; the format follows the file extension (png, svg,
// pdf, eps, jpg, tif).
func Save(p *gonumplot.Plot, width, height vg.Length, path string) error {
	if p == nil {
		return plotErrorf(opSave, ErrEmpty)
	}
	if width <= 0 || height <= 0 {
		return plotErrorf(opSave, ErrSize)
	}
	if err := p.Save(width, height, path); err != nil {
		return plotErrorf(opSave, err)
	}

	return nil
}
