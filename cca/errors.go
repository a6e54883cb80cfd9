// SPDX-License-Identifier: MIT
// Package cca: sentinel error set.
//
// Error policy:
//   - Configuration errors (missing fit arguments, malformed weights, bad
//     component counts) are reported immediately and never retried.
//   - Data-shape errors come from package signal (ErrUnknownSignal) or
//     package linalg (ErrDimensionMismatch) and are wrapped, not replaced.
//   - Numerical degeneracy in the online model is logged, never returned.
//
// Every error leaving this package is a sentinel wrapped with an operation
// tag via ccaErrorf; match with errors.Is.

package cca

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingReference indicates Fit without sine-cosine reference signals.
	ErrMissingReference = errors.New("cca: reference signals are required")

	// ErrMissingTrials indicates Fit without training trials for a model that
	// builds templates.
	ErrMissingTrials = errors.New("cca: training trials are required")

	// ErrMissingLabels indicates Fit without training labels for a model that
	// builds templates.
	ErrMissingLabels = errors.New("cca: training labels are required")

	// ErrMissingFreqs indicates Fit without stimulus frequencies for a model
	// that orders classes by frequency.
	ErrMissingFreqs = errors.New("cca: stimulus frequencies are required")

	// ErrWeightsShape indicates a filter-bank weight vector whose length is
	// not the number of bands.
	ErrWeightsShape = errors.New("cca: filter-bank weights do not match band count")

	// ErrComponents indicates a component count the data cannot supply, or
	// zero components where filters must be produced.
	ErrComponents = errors.New("cca: invalid number of components")

	// ErrUnknownCCAType indicates a correlation strategy name that is neither
	// "qr" nor "canoncorr".
	ErrUnknownCCAType = errors.New("cca: unknown cca type")

	// ErrLabelCount indicates labels that do not match the trials or the
	// reference signals (class count or label range).
	ErrLabelCount = errors.New("cca: labels do not match trials or references")

	// ErrNotFitted indicates Predict (or Step) before a successful Fit.
	ErrNotFitted = errors.New("cca: model is not fitted")

	// ErrFiltersShape indicates stored filters whose band/class layout does
	// not match the trial or the signals, including a predict batch longer
	// than the cached per-trial filters.
	ErrFiltersShape = errors.New("cca: filters do not match data")

	// ErrBandMismatch indicates a trial whose band count differs from the
	// templates it is scored against.
	ErrBandMismatch = errors.New("cca: band count mismatch")
)

// Operation tags.
const (
	opCanoncorrCorr       = "CanoncorrCorr"
	opCanoncorrCorrWithUV = "CanoncorrCorrWithUV"
	opQRCorr              = "QRCorr"
	opQRCorrWithUV        = "QRCorrWithUV"
	opDecomposeSignals    = "DecomposeSignals"
	opParseCCAType        = "ParseCCAType"
	opWeights             = "weights"
	opSCCAFit             = "SCCA.Fit"
	opSCCAPredict         = "SCCA.Predict"
	opECCAFit             = "ECCA.Fit"
	opECCAPredict         = "ECCA.Predict"
	opMSCCAFit            = "MSCCA.Fit"
	opMSCCAPredict        = "MSCCA.Predict"
	opOACCAFit            = "OACCA.Fit"
	opOACCAStep           = "OACCA.Step"
	opOACCAPredict        = "OACCA.Predict"
)

// ccaErrorf wraps err with an operation tag. Call only with a non-nil err.
func ccaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
