// SPDX-License-Identifier: MIT

// Package signal is the data model shared by the recognizers: filter-bank
// trials, reference/template signals and the helpers that build them.
//
// Shapes:
//
//	Trial      []*mat.Dense, one channels×samples matrix per filter-bank band.
//	Multiband  either one harmonics×samples matrix shared by every band
//	           (a sine-cosine reference) or one matrix per band (a template).
//
// Generators:
//
//   - Reference / References build sine-cosine reference signals.
//   - Synthesize builds a deterministic synthetic SSVEP trial (channel gains,
//     phase lags, per-band harmonic attenuation, optional Gaussian noise).
//   - SynthesizeDataset lays synthetic trials out in blocks for
//     leave-one-block-out experiments.
//
// Utilities:
//
//   - GenTemplate averages labeled trials into per-class templates.
//   - SortFreqs orders stimulus frequencies and returns both permutations.
//   - SuggestedFilterbankWeights returns k^-1.25 + 0.25 for k = 1..n.
//
// Determinism: stochastic generators take their randomness from WithSeed or
// WithRand only; there is no package-level RNG.
package signal
