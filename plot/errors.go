// SPDX-License-Identifier: MIT
// Package plot: sentinel errors.

package plot

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates no data to draw.
	ErrEmpty = errors.New("plot: empty data")

	// ErrShape indicates ragged data, or legend/tick/x slices whose length
	// disagrees with the data.
	ErrShape = errors.New("plot: inconsistent shape")

	// ErrRange indicates a histogram or axis range with Min ≥ Max or
	// non-finite bounds.
	ErrRange = errors.New("plot: invalid range")

	// ErrSize indicates a non-positive output size.
	ErrSize = errors.New("plot: invalid size")
)

const (
	opHist     = "Hist"
	opBar      = "Bar"
	opBarError = "BarWithErrorbar"
	opShadow   = "ShadowLine"
	opHeatMap  = "ConfusionHeatMap"
	opSave     = "Save"
)

func plotErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
