// SPDX-License-Identifier: MIT
// Package plot: histograms with a fitted normal density.

package plot

import (
	"math"

	"github.com/katalvlaran/ssvepcca/evaluator"
	"gonum.org/v1/gonum/stat/distuv"
	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// fitSamples is the resolution of the fitted normal curve.
const fitSamples = 1000

// Hist draws one histogram per group over a common binning range. With
// FitLine, each group also gets the normal density of its mean and
// population standard deviation, scaled to the histogram, and a dashed line
// at the mean. Groups whose spread is zero get the mean line only.
//
// Errors: ErrEmpty, ErrShape (legend length), ErrRange.
func Hist(groups [][]float64, opts Options) (*gonumplot.Plot, error) {
	if len(groups) == 0 {
		return nil, plotErrorf(opHist, ErrEmpty)
	}
	for _, g := range groups {
		if len(g) == 0 {
			return nil, plotErrorf(opHist, ErrEmpty)
		}
	}
	if opts.Legend != nil && len(opts.Legend) != len(groups) {
		return nil, plotErrorf(opHist, ErrShape)
	}
	if !opts.HistRange.valid() {
		return nil, plotErrorf(opHist, ErrRange)
	}
	p, err := newPlot(opts)
	if err != nil {
		return nil, plotErrorf(opHist, err)
	}

	lo, hi, longest := math.Inf(1), math.Inf(-1), 0
	for _, g := range groups {
		for _, v := range g {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		longest = max(longest, len(g))
	}
	if opts.HistRange != nil {
		lo, hi = opts.HistRange.Min, opts.HistRange.Max
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, plotErrorf(opHist, ErrRange)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	bins := opts.Bins
	if bins <= 0 {
		bins = int(math.Ceil(math.Log2(float64(longest)))) + 1
	}
	alpha := opts.Alpha
	if alpha <= 0 {
		alpha = 1
	}

	for g, x := range groups {
		h := histogram(x, lo, hi, bins)
		scale := float64(len(x)) * h.Width
		if opts.Density && binned(h) > 0 {
			h.Normalize(1)
			scale = 1
		}
		h.FillColor = groupColor(g, alpha)
		p.Add(h)
		if opts.Legend != nil {
			p.Legend.Add(opts.Legend[g], h)
		}
		if !opts.FitLine {
			continue
		}
		if err := addNormalFit(p, h, x, lo, hi, scale, g); err != nil {
			return nil, plotErrorf(opHist, err)
		}
	}
	applyLimits(p, opts)

	return p, nil
}

// histogram bins x into n equal bins over [lo, hi]; values outside are
// dropped and hi falls in the last bin.
func histogram(x []float64, lo, hi float64, n int) *plotter.Histogram {
	width := (hi - lo) / float64(n)
	bins := make([]plotter.HistogramBin, n)
	for i := range bins {
		bins[i].Min = lo + float64(i)*width
		bins[i].Max = bins[i].Min + width
	}
	for _, v := range x {
		if v < lo || v > hi || math.IsNaN(v) {
			continue
		}
		i := min(int((v-lo)/width), n-1)
		bins[i].Weight++
	}

	return &plotter.Histogram{Bins: bins, Width: width, LineStyle: plotter.DefaultLineStyle}
}

// binned returns the number of values that fell inside the bins.
func binned(h *plotter.Histogram) float64 {
	total := 0.0
	for _, b := range h.Bins {
		total += b.Weight
	}

	return total
}

func addNormalFit(p *gonumplot.Plot, h *plotter.Histogram, x []float64, lo, hi, scale float64, g int) error {
	mean, std, err := evaluator.MeanStd(x)
	if err != nil {
		return err
	}
	top := 0.0
	for _, b := range h.Bins {
		top = math.Max(top, b.Weight)
	}
	if std > 0 {
		pdf := distuv.Normal{Mu: mean, Sigma: std}
		fn := plotter.NewFunction(func(v float64) float64 { return scale * pdf.Prob(v) })
		fn.XMin, fn.XMax = lo, hi
		fn.Samples = fitSamples
		fn.Color = groupColor(g, 1)
		fn.Width = vg.Points(1.5)
		p.Add(fn)
		top = math.Max(top, scale*pdf.Prob(mean))
	}

	mline, err := plotter.NewLine(plotter.XYs{{X: mean, Y: 0}, {X: mean, Y: top}})
	if err != nil {
		return err
	}
	mline.Color = groupColor(g, 1)
	mline.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(mline)

	return nil
}
