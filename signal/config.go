// SPDX-License-Identifier: MIT
// Package signal: resolved synthesis configuration.

package signal

import (
	"math/rand"
)

const (
	defaultAmplitude = 1.0
	defaultChannels  = 8
	defaultBands     = 1
	defaultHarmonics = 3

	// Harmonics below the lower edge of a sub-band keep this fraction of
	// their amplitude.
	stopbandGain = 0.2
)

// synthConfig holds the resolved options of one synthesis call.
type synthConfig struct {
	rng       *rand.Rand
	noise     float64
	amplitude float64
	channels  int
	bands     int
	harmonics int
}

// newSynthConfig applies opts over the defaults; last option wins.
func newSynthConfig(opts ...Option) synthConfig {
	cfg := synthConfig{
		amplitude: defaultAmplitude,
		channels:  defaultChannels,
		bands:     defaultBands,
		harmonics: defaultHarmonics,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFor returns the configured generator, or one seeded with 0 so that noisy
// synthesis without an explicit source is still reproducible.
func (c synthConfig) rngFor() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(0))
}
