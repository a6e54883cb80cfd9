// SPDX-License-Identifier: MIT

package cca_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ssvepcca/signal"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const (
	srate     = 250.0
	sigLen    = 250
	harmonics = 2
)

func refsFor(t testing.TB, freqs []float64) []*mat.Dense {
	t.Helper()
	refs, err := signal.References(freqs, nil, srate, sigLen, harmonics)
	require.NoError(t, err)

	return refs
}

// sineTrial replicates a noiseless sine at freq across channels and bands.
func sineTrial(freq float64, channels, bands int) signal.Trial {
	row := make([]float64, sigLen)
	for i := range row {
		row[i] = math.Sin(2 * math.Pi * freq * float64(i) / srate)
	}
	tr := make(signal.Trial, bands)
	for k := range tr {
		band := mat.NewDense(channels, sigLen, nil)
		for c := 0; c < channels; c++ {
			band.SetRow(c, row)
		}
		tr[k] = band
	}

	return tr
}

// noisyTrial returns a channels×sigLen random trial with the given bands.
func noisyTrial(rng *rand.Rand, channels, bands int) signal.Trial {
	tr := make(signal.Trial, bands)
	for k := range tr {
		data := make([]float64, channels*sigLen)
		for i := range data {
			data[i] = rng.NormFloat64()
		}
		tr[k] = mat.NewDense(channels, sigLen, data)
	}

	return tr
}

// dataset builds a labeled synthetic training set and one noiseless test
// trial per class.
func dataset(t testing.TB, freqs []float64, blocks, bands int, noise float64) (train signal.Dataset, test []signal.Trial) {
	t.Helper()
	opts := []signal.Option{
		signal.WithChannels(6),
		signal.WithBands(bands),
		signal.WithHarmonics(harmonics),
	}
	train, err := signal.SynthesizeDataset(freqs, nil, blocks, srate, sigLen,
		append(opts, signal.WithNoise(noise), signal.WithSeed(11))...)
	require.NoError(t, err)
	for _, f := range freqs {
		tr, err := signal.Synthesize(f, 0, srate, sigLen, opts...)
		require.NoError(t, err)
		test = append(test, tr)
	}

	return train, test
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func assertDenseClose(t *testing.T, want, got *mat.Dense, tol float64) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, []int{wr, wc}, []int{gr, gc}, "shape")
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			require.InDelta(t, want.At(i, j), got.At(i, j), tol, "at (%d,%d)", i, j)
		}
	}
}
