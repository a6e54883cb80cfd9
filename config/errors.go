// SPDX-License-Identifier: MIT
// Package config: sentinel errors.

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFreqs indicates an empty stimulus list or a phase list of
	// another length.
	ErrNoFreqs = errors.New("config: stimulus frequencies missing")

	// ErrSignal indicates a non-positive sample rate, window, channel, band,
	// harmonic or block count, or a negative noise level.
	ErrSignal = errors.New("config: invalid signal parameters")

	// ErrTiming indicates a negative break or latency.
	ErrTiming = errors.New("config: invalid timing")

	// ErrNoModels indicates an empty model list.
	ErrNoModels = errors.New("config: no models")

	// ErrUnknownModel indicates a model kind outside ModelKind.
	ErrUnknownModel = errors.New("config: unknown model kind")

	// ErrModel indicates invalid per-model settings.
	ErrModel = errors.New("config: invalid model settings")

	// ErrWeights indicates filter-bank weights that do not match the band
	// count or are not finite.
	ErrWeights = errors.New("config: filter-bank weights do not match bands")

	// ErrLogLevel indicates a level other than debug, info, warn or error,
	// or a format other than text or json.
	ErrLogLevel = errors.New("config: unknown log level")

	// ErrPlot indicates an unknown error-bar kind.
	ErrPlot = errors.New("config: invalid plot settings")
)

const (
	opLoad     = "Load"
	opDecode   = "Decode"
	opValidate = "Validate"
	opKind     = "ModelKind"
	opLevel    = "LogLevel"
)

func configErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
