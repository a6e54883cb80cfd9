// SPDX-License-Identifier: MIT

package cca_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ssvepcca/cca"
	"github.com/katalvlaran/ssvepcca/linalg"
	"github.com/katalvlaran/ssvepcca/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestEvaluators_ScoreOnlyMatchesCanonCorr checks that with zero components
// every entry is the leading canonical correlation of the band/class pair.
func TestEvaluators_ScoreOnlyMatchesCanonCorr(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	refs := refsFor(t, []float64{8, 10, 12})
	x := noisyTrial(rng, 5, 2)

	y := signal.SharedList(refs)
	yqr, err := cca.DecomposeSignals(y)
	require.NoError(t, err)

	rc, fc, err := cca.CanoncorrCorr(x, y, 0, false)
	require.NoError(t, err)
	assert.True(t, fc.Empty())
	rq, fq, err := cca.QRCorr(x, yqr, 0, false)
	require.NoError(t, err)
	assert.True(t, fq.Empty())

	for k := range x {
		for i, ref := range refs {
			can, err := linalg.CanonCorr(x[k].T(), ref.T(), false)
			require.NoError(t, err)
			assert.Equal(t, can.R[0], rc.At(k, i))
			assert.InDelta(t, can.R[0], rq.At(k, i), 1e-10)
		}
	}
}

// TestEvaluators_QRAgreesWithCanoncorr checks both strategies give the same
// projected correlations.
func TestEvaluators_QRAgreesWithCanoncorr(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	refs := refsFor(t, []float64{9, 11})
	x := noisyTrial(rng, 4, 3)
	y := signal.SharedList(refs)
	yqr, err := cca.DecomposeSignals(y)
	require.NoError(t, err)

	rc, fc, err := cca.CanoncorrCorr(x, y, 1, true)
	require.NoError(t, err)
	rq, fq, err := cca.QRCorr(x, yqr, 1, true)
	require.NoError(t, err)

	br, cr := rc.Dims()
	assert.Equal(t, []int{3, 2}, []int{br, cr})
	for k := 0; k < br; k++ {
		for i := 0; i < cr; i++ {
			assert.InDelta(t, rc.At(k, i), rq.At(k, i), 1e-8)
			assert.GreaterOrEqual(t, rq.At(k, i), -1.0)
			assert.LessOrEqual(t, rq.At(k, i), 1.0)
			ur, uc := fq.U[k][i].Dims()
			vr, vc := fq.V[k][i].Dims()
			assert.Equal(t, []int{4, 1, 4, 1}, []int{ur, uc, vr, vc})
		}
	}
	assert.False(t, fc.Empty())
}

// TestEvaluators_WithUVReproduces checks that reapplying the filters of a
// forced call yields the same matrix.
func TestEvaluators_WithUVReproduces(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	refs := refsFor(t, []float64{8, 10})
	x := noisyTrial(rng, 6, 2)
	y := signal.SharedList(refs)
	yqr, err := cca.DecomposeSignals(y)
	require.NoError(t, err)

	r, f, err := cca.QRCorr(x, yqr, 2, true)
	require.NoError(t, err)
	again, err := cca.QRCorrWithUV(x, yqr, f)
	require.NoError(t, err)
	assertDenseClose(t, r, again, 1e-12)

	r, f, err = cca.CanoncorrCorr(x, y, 2, true)
	require.NoError(t, err)
	again, err = cca.CanoncorrCorrWithUV(x, y, f)
	require.NoError(t, err)
	assertDenseClose(t, r, again, 1e-12)
}

// TestEvaluators_Templates checks the per-band layout.
func TestEvaluators_Templates(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	x := noisyTrial(rng, 3, 2)
	tpl := []signal.Multiband{
		signal.PerBand(noisyTrial(rng, 3, 2)),
		signal.PerBand(x.Clone()),
	}
	r, _, err := cca.CanoncorrCorr(x, tpl, 1, false)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r.At(0, 1), 1e-9, "trial against itself")
	assert.InDelta(t, 1.0, r.At(1, 1), 1e-9)

	short := []signal.Multiband{signal.PerBand(noisyTrial(rng, 3, 1))}
	_, _, err = cca.CanoncorrCorr(x, short, 1, false)
	assert.ErrorIs(t, err, signal.ErrUnknownSignal)
}

// TestEvaluators_Errors covers the configuration and shape errors.
func TestEvaluators_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	refs := refsFor(t, []float64{8})
	y := signal.SharedList(refs)
	yqr, err := cca.DecomposeSignals(y)
	require.NoError(t, err)
	x := noisyTrial(rng, 4, 1)

	_, _, err = cca.QRCorr(x, yqr, 0, true)
	assert.ErrorIs(t, err, cca.ErrComponents)
	_, _, err = cca.CanoncorrCorr(x, y, 0, true)
	assert.ErrorIs(t, err, cca.ErrComponents)
	_, _, err = cca.QRCorr(x, yqr, 5, false)
	assert.ErrorIs(t, err, cca.ErrComponents, "more components than harmonics rows")

	_, _, err = cca.QRCorr(x, nil, 1, false)
	assert.ErrorIs(t, err, cca.ErrMissingReference)
	_, _, err = cca.CanoncorrCorr(signal.Trial{}, y, 1, false)
	assert.ErrorIs(t, err, signal.ErrEmptyTrial)

	_, err = cca.QRCorrWithUV(x, yqr, cca.NewFilters(2, 1))
	assert.ErrorIs(t, err, cca.ErrFiltersShape)
	_, err = cca.CanoncorrCorrWithUV(x, y, cca.NewFilters(1, 1))
	assert.ErrorIs(t, err, cca.ErrFiltersShape, "nil filters")

	short := noisyTrial(rng, 4, 1)
	short[0] = short[0].Slice(0, 4, 0, 100).(*mat.Dense)
	_, _, err = cca.CanoncorrCorr(short, y, 1, false)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = cca.DecomposeSignals([]signal.Multiband{{}})
	assert.ErrorIs(t, err, signal.ErrUnknownSignal)
}

// TestFilters_Clone checks deep copies.
func TestFilters_Clone(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	refs := refsFor(t, []float64{8, 10})
	_, f, err := cca.CanoncorrCorr(noisyTrial(rng, 4, 1), signal.SharedList(refs), 1, true)
	require.NoError(t, err)
	cl := f.Clone()
	cl.U[0][1].Set(0, 0, 42)
	assert.NotEqual(t, 42.0, f.U[0][1].At(0, 0))
	assert.True(t, cca.Filters{}.Clone().Empty())
}
