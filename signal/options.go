// SPDX-License-Identifier: MIT
// Package signal: functional options for the synthetic generators.
//
// Option constructors validate their argument and panic on meaningless
// values; the generators themselves never panic. Determinism is explicit:
// noise is drawn only from a generator set by WithSeed or WithRand.

package signal

import (
	"math/rand"
)

// Option customizes a synthesis call by mutating its config.
type Option func(*synthConfig)

// WithSeed draws noise from a new generator seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *synthConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws noise from r, so several calls can share one stream.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("signal: WithRand(nil)")
	}
	return func(c *synthConfig) {
		c.rng = r
	}
}

// WithNoise sets the standard deviation of additive Gaussian noise.
// Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("signal: WithNoise(sigma<0)")
	}
	return func(c *synthConfig) {
		c.noise = sigma
	}
}

// WithAmplitude sets the amplitude of the fundamental. Panics if a <= 0.
func WithAmplitude(a float64) Option {
	if a <= 0 {
		panic("signal: WithAmplitude(a<=0)")
	}
	return func(c *synthConfig) {
		c.amplitude = a
	}
}

// WithChannels sets the number of EEG channels. Panics if n < 1.
func WithChannels(n int) Option {
	if n < 1 {
		panic("signal: WithChannels(n<1)")
	}
	return func(c *synthConfig) {
		c.channels = n
	}
}

// WithBands sets the number of filter-bank bands. Panics if n < 1.
func WithBands(n int) Option {
	if n < 1 {
		panic("signal: WithBands(n<1)")
	}
	return func(c *synthConfig) {
		c.bands = n
	}
}

// WithHarmonics sets how many harmonics of the stimulus the response
// contains. Panics if n < 1.
func WithHarmonics(n int) Option {
	if n < 1 {
		panic("signal: WithHarmonics(n<1)")
	}
	return func(c *synthConfig) {
		c.harmonics = n
	}
}
