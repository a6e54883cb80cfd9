// SPDX-License-Identifier: MIT

package plot_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/ssvepcca/evaluator"
	"github.com/katalvlaran/ssvepcca/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func normals(seed int64, n int, mu float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = mu + rng.NormFloat64()
	}

	return out
}

func TestHist(t *testing.T) {
	opts := plot.DefaultOptions()
	opts.Title = "scores"
	opts.Legend = []string{"target", "non-target"}
	opts.HistRange = &plot.Range{Min: -4, Max: 8}
	opts.Bins = 24

	p, err := plot.Hist([][]float64{normals(1, 200, 0), normals(2, 200, 4)}, opts)
	require.NoError(t, err)
	assert.Equal(t, "scores", p.Title.Text)
	assert.LessOrEqual(t, p.X.Min, -4.0)
	assert.GreaterOrEqual(t, p.X.Max, 8.0)
	assert.Greater(t, p.Y.Max, 0.0)

	// constant data still bins and skips the curve
	opts = plot.DefaultOptions()
	_, err = plot.Hist([][]float64{{2, 2, 2}}, opts)
	require.NoError(t, err)

	opts.Density = false
	opts.YLim = &plot.Range{Min: 0, Max: 50}
	p, err = plot.Hist([][]float64{normals(3, 100, 1)}, opts)
	require.NoError(t, err)
	assert.Equal(t, 50.0, p.Y.Max)
}

func TestHist_Errors(t *testing.T) {
	opts := plot.DefaultOptions()
	_, err := plot.Hist(nil, opts)
	assert.ErrorIs(t, err, plot.ErrEmpty)
	_, err = plot.Hist([][]float64{{1}, {}}, opts)
	assert.ErrorIs(t, err, plot.ErrEmpty)

	opts.Legend = []string{"only one"}
	_, err = plot.Hist([][]float64{{1}, {2}}, opts)
	assert.ErrorIs(t, err, plot.ErrShape)

	opts = plot.DefaultOptions()
	opts.HistRange = &plot.Range{Min: 3, Max: 1}
	_, err = plot.Hist([][]float64{{1}}, opts)
	assert.ErrorIs(t, err, plot.ErrRange)

	opts = plot.DefaultOptions()
	opts.XLim = &plot.Range{Min: 1, Max: 1}
	_, err = plot.Hist([][]float64{{1}}, opts)
	assert.ErrorIs(t, err, plot.ErrRange)
}

func TestBar(t *testing.T) {
	obs := [][]float64{{0.8, 0.9, 1}, {0.6, 0.7, 1}}
	opts := plot.DefaultOptions()
	opts.XTicks = []string{"0.5 s", "1 s", "1.5 s"}
	p, err := plot.Bar(obs, opts)
	require.NoError(t, err)
	assert.LessOrEqual(t, p.X.Min, 1.0)
	assert.GreaterOrEqual(t, p.X.Max, 3.0)
	assert.GreaterOrEqual(t, p.Y.Max, 1.0)

	opts.XTicks = []string{"a"}
	_, err = plot.Bar(obs, opts)
	assert.ErrorIs(t, err, plot.ErrShape)
	_, err = plot.Bar([][]float64{{1, 2}, {3}}, plot.DefaultOptions())
	assert.ErrorIs(t, err, plot.ErrShape)
	_, err = plot.Bar(nil, plot.DefaultOptions())
	assert.ErrorIs(t, err, plot.ErrEmpty)
}

func TestBarWithErrorbar(t *testing.T) {
	data := [][][]float64{
		{{0.9, 0.8}, {1, 0.6}, {0.8, 0.7}},
		{{0.7, 0.5}, {0.6, 0.6}, {0.8, 0.4}},
	}
	opts := plot.DefaultOptions()
	opts.Legend = []string{"eCCA", "sCCA"}
	opts.ErrorKind = evaluator.ErrorCI95
	p, err := plot.BarWithErrorbar(data, opts)
	require.NoError(t, err)
	// error bars reach above the largest mean
	assert.Greater(t, p.Y.Max, 0.9)

	opts.Legend = []string{"eCCA"}
	_, err = plot.BarWithErrorbar(data, opts)
	assert.ErrorIs(t, err, plot.ErrShape)

	opts = plot.DefaultOptions()
	_, err = plot.BarWithErrorbar([][][]float64{{{1, 2}}, {{1}}}, opts)
	assert.ErrorIs(t, err, plot.ErrShape)

	opts.ErrorKind = evaluator.ErrorCI95
	_, err = plot.BarWithErrorbar([][][]float64{{{1, 2}}}, opts)
	assert.ErrorIs(t, err, evaluator.ErrTooFew)
	_, err = plot.BarWithErrorbar(nil, opts)
	assert.ErrorIs(t, err, plot.ErrEmpty)
}

func TestShadowLine(t *testing.T) {
	x := []float64{0.5, 1, 1.5}
	data := [][][]float64{
		{{0.5, 0.8, 0.9}, {0.7, 0.9, 1}},
	}
	opts := plot.DefaultOptions()
	opts.Legend = []string{"ms-CCA"}
	p, err := plot.ShadowLine(x, data, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p.X.Min, 1e-12)
	assert.InDelta(t, 1.5, p.X.Max, 1e-12)
	assert.InDelta(t, 1.0, p.Y.Max, 1e-12, "mean 0.95 plus std 0.05")

	_, err = plot.ShadowLine(x[:2], data, opts)
	assert.ErrorIs(t, err, plot.ErrShape)
	_, err = plot.ShadowLine(nil, data, opts)
	assert.ErrorIs(t, err, plot.ErrEmpty)
}

func TestConfusionHeatMap(t *testing.T) {
	cm := mat.NewDense(3, 3, []float64{5, 1, 0, 0, 6, 0, 1, 0, 5})
	p, err := plot.ConfusionHeatMap(cm, plot.DefaultOptions())
	require.NoError(t, err)
	assert.NotNil(t, p)

	_, err = plot.ConfusionHeatMap(mat.NewDense(2, 3, nil), plot.DefaultOptions())
	assert.ErrorIs(t, err, plot.ErrShape)
	_, err = plot.ConfusionHeatMap(nil, plot.DefaultOptions())
	assert.ErrorIs(t, err, plot.ErrEmpty)

	// all-zero counts still render
	_, err = plot.ConfusionHeatMap(mat.NewDense(2, 2, nil), plot.DefaultOptions())
	require.NoError(t, err)
}

func TestSave(t *testing.T) {
	p, err := plot.Bar([][]float64{{1, 2, 3}}, plot.DefaultOptions())
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"bars.png", "bars.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, plot.Save(p, plot.DefaultWidth, plot.DefaultHeight, path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	assert.ErrorIs(t, plot.Save(p, 0, plot.DefaultHeight, filepath.Join(dir, "x.png")), plot.ErrSize)
	assert.ErrorIs(t, plot.Save(nil, plot.DefaultWidth, plot.DefaultHeight, filepath.Join(dir, "x.png")), plot.ErrEmpty)
	assert.Error(t, plot.Save(p, plot.DefaultWidth, plot.DefaultHeight, filepath.Join(dir, "x.unknown")))
}
