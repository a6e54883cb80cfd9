// SPDX-License-Identifier: MIT
// Package plot: confusion matrices.

package plot

import (
	"strconv"

	"gonum.org/v1/gonum/mat"
	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

// heatLevels is the number of palette colors.
const heatLevels = 16

// confusionGrid adapts a confusion matrix to plotter.GridXYZ: column c is
// the predicted class, row r the true class.
type confusionGrid struct {
	m mat.Matrix
}

func (g confusionGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}
func (g confusionGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g confusionGrid) X(c int) float64    { return float64(c) }
func (g confusionGrid) Y(r int) float64    { return float64(r) }

// ConfusionHeatMap draws cm (true × predicted, square) as a heat map with
// class 0 at the origin. XTicks, when set, names the classes on both axes.
//
// Errors: ErrEmpty, ErrShape (non-square cm or XTicks length), ErrRange.
func ConfusionHeatMap(cm mat.Matrix, opts Options) (*gonumplot.Plot, error) {
	if cm == nil {
		return nil, plotErrorf(opHeatMap, ErrEmpty)
	}
	r, c := cm.Dims()
	if r == 0 {
		return nil, plotErrorf(opHeatMap, ErrEmpty)
	}
	if r != c || (opts.XTicks != nil && len(opts.XTicks) != r) {
		return nil, plotErrorf(opHeatMap, ErrShape)
	}
	opts.Grid = false
	p, err := newPlot(opts)
	if err != nil {
		return nil, plotErrorf(opHeatMap, err)
	}

	hm := plotter.NewHeatMap(confusionGrid{m: cm}, palette.Heat(heatLevels, 1))
	if hm.Min == hm.Max {
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	pos := make([]float64, r)
	for i := range pos {
		pos[i] = float64(i)
	}
	labels := opts.XTicks
	if labels == nil {
		// classes are 0-based
		labels = make([]string, r)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}
	p.X.Tick.Marker = variableTicks(pos, labels)
	p.Y.Tick.Marker = variableTicks(pos, labels)
	applyLimits(p, opts)

	return p, nil
}
