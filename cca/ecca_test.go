// SPDX-License-Identifier: MIT

package cca_test

import (
	"testing"

	"github.com/katalvlaran/ssvepcca/cca"
	"github.com/katalvlaran/ssvepcca/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestECCA_RecoversLabels fits two classes × five noisy trials and predicts
// held-out noiseless trials.
func TestECCA_RecoversLabels(t *testing.T) {
	freqs := []float64{8, 10}
	train, test := dataset(t, freqs, 5, 2, 0.3)
	refs := refsFor(t, freqs)

	m := cca.NewECCA(cca.WithFilterbankWeights(signal.SuggestedFilterbankWeights(2)))
	require.NoError(t, m.Fit(freqs, train.Trials, train.Labels, refs))
	pred, err := m.Predict(test)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, pred)

	scores, err := m.PredictScores(test)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Greater(t, scores[0][0], scores[0][1])
	assert.Greater(t, scores[1][1], scores[1][0])

	u3 := m.TemplateFilters()
	r, c := u3.U[1][0].Dims()
	assert.Equal(t, []int{6, 1}, []int{r, c})
	r, c = u3.V[1][0].Dims()
	assert.Equal(t, []int{2 * harmonics, 1}, []int{r, c})
}

// TestECCA_CachedFilters checks reuse under !UpdateUV.
func TestECCA_CachedFilters(t *testing.T) {
	freqs := []float64{8, 10, 12}
	train, test := dataset(t, freqs, 3, 1, 0.3)
	refs := refsFor(t, freqs)

	m := cca.NewECCA(cca.WithUpdateUV(false), cca.WithJobs(2))
	require.NoError(t, m.Fit(freqs, train.Trials, train.Labels, refs))
	first, err := m.Predict(test)
	require.NoError(t, err)
	second, err := m.Predict(test)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, indices(3), first)

	_, err = m.Predict(append(test, test...))
	assert.ErrorIs(t, err, cca.ErrFiltersShape)

	// clones carry the cache
	cl := m.Clone()
	got, err := cl.Predict(test)
	require.NoError(t, err)
	assert.Equal(t, first, got)
	assert.Equal(t, "eCCA", cl.ID())
}

// TestECCA_FitErrors covers the required arguments.
func TestECCA_FitErrors(t *testing.T) {
	freqs := []float64{8, 10}
	train, test := dataset(t, freqs, 2, 1, 0.1)
	refs := refsFor(t, freqs)
	m := cca.NewECCA()

	_, err := m.Predict(test)
	assert.ErrorIs(t, err, cca.ErrNotFitted)

	assert.ErrorIs(t, m.Fit(nil, train.Trials, train.Labels, nil), cca.ErrMissingReference)
	assert.ErrorIs(t, m.Fit(nil, nil, train.Labels, refs), cca.ErrMissingTrials)
	assert.ErrorIs(t, m.Fit(nil, train.Trials, nil, refs), cca.ErrMissingLabels)
	assert.ErrorIs(t, m.Fit(nil, train.Trials, train.Labels[:1], refs), cca.ErrLabelCount)

	bad := append([]int(nil), train.Labels...)
	bad[0] = 5
	assert.ErrorIs(t, m.Fit(nil, train.Trials, bad, refs), cca.ErrLabelCount)

	one := make([]int, len(train.Labels))
	assert.ErrorIs(t, m.Fit(nil, train.Trials, one, refs), cca.ErrLabelCount, "class 1 has no trials")

	assert.ErrorIs(t, cca.NewECCA(cca.WithComponents(0)).Fit(nil, train.Trials, train.Labels, refs), cca.ErrComponents)

	require.NoError(t, m.Fit(nil, train.Trials, train.Labels, refs))
	_, err = m.Predict([]signal.Trial{sineTrial(8, 6, 3)})
	assert.ErrorIs(t, err, cca.ErrBandMismatch)
}
