// SPDX-License-Identifier: MIT

package signal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSynthConfig_Defaults verifies the resolved defaults.
func TestSynthConfig_Defaults(t *testing.T) {
	cfg := newSynthConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, defaultAmplitude, cfg.amplitude)
	assert.Equal(t, defaultChannels, cfg.channels)
	assert.Equal(t, defaultBands, cfg.bands)
	assert.Equal(t, defaultHarmonics, cfg.harmonics)
	assert.Zero(t, cfg.noise)
}

// TestSynthConfig_LastWins verifies that options apply in order.
func TestSynthConfig_LastWins(t *testing.T) {
	cfg := newSynthConfig(WithChannels(2), WithChannels(5), WithNoise(0.1), WithNoise(0.3))
	assert.Equal(t, 5, cfg.channels)
	assert.Equal(t, 0.3, cfg.noise)
}

// TestSynthConfig_RNG verifies seeding and stream sharing.
func TestSynthConfig_RNG(t *testing.T) {
	a := newSynthConfig(WithSeed(7)).rngFor().Int63()
	b := newSynthConfig(WithSeed(7)).rngFor().Int63()
	assert.Equal(t, a, b, "same seed, same stream")

	r := rand.New(rand.NewSource(3))
	cfg := newSynthConfig(WithRand(r))
	assert.Same(t, r, cfg.rngFor())
}

// TestOptions_Panics verifies that meaningless option values are rejected.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithNoise(-1) })
	assert.Panics(t, func() { WithAmplitude(0) })
	assert.Panics(t, func() { WithChannels(0) })
	assert.Panics(t, func() { WithBands(0) })
	assert.Panics(t, func() { WithHarmonics(0) })
}
