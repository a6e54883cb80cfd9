// SPDX-License-Identifier: MIT

// Package cca implements canonical-correlation-analysis recognizers for
// steady-state visual evoked potentials (SSVEP).
//
// What:
//
//   - Correlation evaluators: CanoncorrCorr, QRCorr and their WithUV
//     counterparts score one filter-bank trial against one signal per class
//     and return a bands×classes correlation matrix.
//   - Recognition models (all implement Model):
//     SCCA   trial vs sine-cosine reference (QR or canoncorr strategy).
//     ECCA   four fused terms against references and class templates.
//     MSCCA  filters learned from frequency-neighbouring classes.
//     OACCA  online model adapting its filters trial by trial.
//
// Lifecycle:
//
//	m := cca.NewECCA(cca.WithComponents(1), cca.WithFilterbankWeights(w))
//	if err := m.Fit(freqs, trainX, trainY, refs); err != nil { ... }
//	pred, err := m.Predict(testX)
//
// Combination: per class, correlations are weighted per band by the
// filter-bank weights (uniform when unset) and summed; the fused models sum
// signed squares sign(r)·r² of every term. The decision is the arg-max.
//
// Concurrency: batch prediction spreads trials over WithJobs workers
// (0 = every processor) and aggregates by index. A model value itself is not
// safe for concurrent use because Predict may update cached filters; OACCA
// is sequential across trials by construction.
//
// Errors: sentinels in errors.go, wrapped with an operation tag; match with
// errors.Is. Option constructors panic on meaningless values.
package cca
