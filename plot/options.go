// SPDX-License-Identifier: MIT
// Package plot: drawing options.

package plot

import (
	"math"

	"github.com/katalvlaran/ssvepcca/evaluator"
	"gonum.org/v1/plot/vg"
)

// Range is a closed interval on an axis.
type Range struct {
	Min, Max float64
}

func (r *Range) valid() bool {
	return r == nil || (!math.IsNaN(r.Min) && !math.IsInf(r.Min, 0) &&
		!math.IsNaN(r.Max) && !math.IsInf(r.Max, 0) && r.Min < r.Max)
}

// Options configures every builder; fields a builder does not use are
// ignored.
//
// Fields:
//   - Title, XLabel, YLabel: text decorations.
//   - Legend: one entry per group; nil draws no legend.
//   - XTicks: one label per variable (bars, lines); nil numbers them.
//   - Grid: draw grid lines.
//   - XLim, YLim: axis ranges; nil keeps gonum's automatic range.
//   - Bins: histogram bins; 0 picks Sturges' rule.
//   - HistRange: histogram binning range shared by all groups; nil spans
//     the data.
//   - Density: normalize histograms to unit area.
//   - FitLine: overlay a fitted normal density and a dashed mean line.
//   - Alpha: fill opacity of histograms, in (0, 1].
//   - BarWidth: width of one bar.
//   - ErrorKind: std or CI95 error bars and bands.
type Options struct {
	Title     string
	XLabel    string
	YLabel    string
	Legend    []string
	XTicks    []string
	Grid      bool
	XLim      *Range
	YLim      *Range
	Bins      int
	HistRange *Range
	Density   bool
	FitLine   bool
	Alpha     float64
	BarWidth  vg.Length
	ErrorKind evaluator.ErrorKind
}

// DefaultOptions returns grid on, density histograms with fitted normals,
// opaque fills, 14 pt bars and std error bars.
func DefaultOptions() Options {
	return Options{
		Grid:      true,
		Density:   true,
		FitLine:   true,
		Alpha:     1,
		BarWidth:  vg.Points(14),
		ErrorKind: evaluator.ErrorStd,
	}
}
