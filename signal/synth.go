// SPDX-License-Identifier: MIT
// Package signal: deterministic synthetic SSVEP trials.
//
// Model, for band k, channel c of C, sample i (t = i/srate):
//
//	x[k][c][i] = A·g_c·Σ_h a(k,h)/h · sin(2π·h·f·t + h·φ + λ_c) + σ·ε
//
//	g_c    = 1 − 0.5·c/C             channel gain
//	λ_c    = (π/4)·c/C               channel phase lag
//	a(k,h) = 1 if h > k, else 0.2    sub-band k passes harmonics above k
//	ε      ~ N(0, 1) from the configured generator
//
// Gains and lags depend only on the channel index, so trials of one class
// differ only by their noise.

package signal

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Synthesize returns one synthetic trial of the given stimulus.
//
// Defaults: 8 channels, 1 band, 3 harmonics, amplitude 1, no noise.
//
// Errors: ErrBadParam when freq, srate or length is not positive.
//
// Complexity: O(B·C·H·L).
func Synthesize(freq, phase, srate float64, length int, opts ...Option) (Trial, error) {
	cfg := newSynthConfig(opts...)
	t, err := synthesize(cfg, cfg.rngFor(), freq, phase, srate, length)
	if err != nil {
		return nil, signalErrorf(opSynthesize, err)
	}

	return t, nil
}

// Dataset is a labeled set of synthetic trials laid out block by block.
// Blocks[i] is the block of Trials[i] and Labels[i] its class index.
type Dataset struct {
	Trials []Trial
	Labels []int
	Blocks []int
}

// SynthesizeDataset generates blocks repetitions of every stimulus. Within a
// block trials follow the order of freqs; class i is labeled i. All trials
// draw noise from one stream, so a seed fixes the whole dataset.
func SynthesizeDataset(freqs, phases []float64, blocks int, srate float64, length int, opts ...Option) (Dataset, error) {
	if len(freqs) == 0 || blocks < 1 {
		return Dataset{}, signalErrorf(opSynthesizeDataset, ErrBadParam)
	}
	if phases != nil && len(phases) != len(freqs) {
		return Dataset{}, signalErrorf(opSynthesizeDataset, ErrShape)
	}
	cfg := newSynthConfig(opts...)
	rng := cfg.rngFor()

	n := blocks * len(freqs)
	ds := Dataset{
		Trials: make([]Trial, 0, n),
		Labels: make([]int, 0, n),
		Blocks: make([]int, 0, n),
	}
	for b := 0; b < blocks; b++ {
		for i, f := range freqs {
			var phi float64
			if phases != nil {
				phi = phases[i]
			}
			t, err := synthesize(cfg, rng, f, phi, srate, length)
			if err != nil {
				return Dataset{}, signalErrorf(opSynthesizeDataset, err)
			}
			ds.Trials = append(ds.Trials, t)
			ds.Labels = append(ds.Labels, i)
			ds.Blocks = append(ds.Blocks, b)
		}
	}

	return ds, nil
}

func synthesize(cfg synthConfig, rng *rand.Rand, freq, phase, srate float64, length int) (Trial, error) {
	if freq <= 0 || srate <= 0 || length < 1 {
		return nil, ErrBadParam
	}

	trial := make(Trial, cfg.bands)
	row := make([]float64, length)
	for k := 0; k < cfg.bands; k++ {
		band := mat.NewDense(cfg.channels, length, nil)
		for c := 0; c < cfg.channels; c++ {
			frac := float64(c) / float64(cfg.channels)
			gain := cfg.amplitude * (1 - 0.5*frac)
			lag := math.Pi / 4 * frac
			for i := range row {
				t := float64(i) / srate
				var v float64
				for h := 1; h <= cfg.harmonics; h++ {
					hf := float64(h)
					a := 1.0
					if h <= k {
						a = stopbandGain
					}
					v += a / hf * math.Sin(tau*hf*freq*t+hf*phase+lag)
				}
				row[i] = gain * v
				if cfg.noise > 0 {
					row[i] += cfg.noise * rng.NormFloat64()
				}
			}
			band.SetRow(c, row)
		}
		trial[k] = band
	}

	return trial, nil
}
