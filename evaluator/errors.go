// SPDX-License-Identifier: MIT
// Package evaluator: sentinel errors.

package evaluator

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates an empty label or observation slice.
	ErrEmpty = errors.New("evaluator: empty input")

	// ErrLengthMismatch indicates paired slices of different length.
	ErrLengthMismatch = errors.New("evaluator: length mismatch")

	// ErrLabelRange indicates a label outside [0, classes).
	ErrLabelRange = errors.New("evaluator: label out of range")

	// ErrBadParam indicates a non-physical timing, class count or accuracy.
	ErrBadParam = errors.New("evaluator: invalid parameter")

	// ErrTooFew indicates fewer observations than a statistic needs.
	ErrTooFew = errors.New("evaluator: too few observations")

	// ErrUnknownErrorKind indicates an error-bar kind other than std or ci95.
	ErrUnknownErrorKind = errors.New("evaluator: unknown error kind")

	// ErrNoModels indicates a Runner invoked without recognizers.
	ErrNoModels = errors.New("evaluator: no models")
)

const (
	opAccuracy        = "Accuracy"
	opITR             = "ITR"
	opConfusionMatrix = "ConfusionMatrix"
	opMeanStd         = "MeanStd"
	opCI95            = "CI95"
	opColumnStats     = "ColumnStats"
	opParseErrorKind  = "ParseErrorKind"
	opLeaveOneBlock   = "LeaveOneBlockOut"
	opRun             = "Runner.Run"
)

func evaluatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
