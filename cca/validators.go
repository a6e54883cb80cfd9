// SPDX-License-Identifier: MIT
// Package cca: input checks shared by the models.

package cca

import (
	"math"

	"github.com/katalvlaran/ssvepcca/signal"
	"gonum.org/v1/gonum/mat"
)

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// validateTrials requires a non-empty batch of valid trials with one band
// count, which it returns.
func validateTrials(x []signal.Trial) (int, error) {
	if len(x) == 0 {
		return 0, ErrMissingTrials
	}
	bands := x[0].Bands()
	for _, t := range x {
		if err := t.Validate(); err != nil {
			return 0, err
		}
		if t.Bands() != bands {
			return 0, ErrBandMismatch
		}
	}

	return bands, nil
}

// validateReferences requires at least one non-empty reference matrix.
func validateReferences(refs []*mat.Dense) error {
	if len(refs) == 0 {
		return ErrMissingReference
	}
	for _, r := range refs {
		if r == nil || r.IsEmpty() {
			return ErrMissingReference
		}
	}

	return nil
}

// validateLabeled checks the trial/label pair used to build templates: both
// present, equal length, labels in [0, classes) and every class represented.
func validateLabeled(x []signal.Trial, y []int, classes int) error {
	if len(x) == 0 {
		return ErrMissingTrials
	}
	if len(y) == 0 {
		return ErrMissingLabels
	}
	if len(x) != len(y) {
		return ErrLabelCount
	}
	seen := make([]bool, classes)
	for _, label := range y {
		if label < 0 || label >= classes {
			return ErrLabelCount
		}
		seen[label] = true
	}
	for _, ok := range seen {
		if !ok {
			return ErrLabelCount
		}
	}
	if _, err := validateTrials(x); err != nil {
		return err
	}

	return nil
}
