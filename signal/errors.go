// SPDX-License-Identifier: MIT
// Package signal: sentinel errors.
//
// Callers branch with errors.Is; context is attached with %w by signalErrorf.

package signal

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSignal indicates a reference/template value that is neither a
	// shared matrix nor a per-band stack, or a band index it cannot serve.
	ErrUnknownSignal = errors.New("signal: unknown signal layout")

	// ErrEmptyTrial indicates a trial without bands, or with a nil/empty band.
	ErrEmptyTrial = errors.New("signal: empty trial")

	// ErrShape indicates trials or bands whose dimensions disagree.
	ErrShape = errors.New("signal: inconsistent shape")

	// ErrLabelCount indicates a label slice whose length differs from the
	// number of trials.
	ErrLabelCount = errors.New("signal: label count mismatch")

	// ErrBadParam indicates a non-positive frequency, sample rate, length or
	// harmonic count.
	ErrBadParam = errors.New("signal: invalid parameter")
)

// Operation tags.
const (
	opReference         = "Reference"
	opReferences        = "References"
	opSynthesize        = "Synthesize"
	opSynthesizeDataset = "SynthesizeDataset"
	opGenTemplate       = "GenTemplate"
	opBand              = "Multiband.Band"
	opConcat            = "Concat"
	opValidate          = "Trial.Validate"
)

func signalErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
