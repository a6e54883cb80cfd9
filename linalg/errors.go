// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
//
// Every message is prefixed with "linalg: ". Kernels return these sentinels
// wrapped with an operation tag via linalgErrorf; match them with errors.Is.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil matrix (or vector) was passed in.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrEmpty indicates a matrix with a zero dimension where data is required.
	ErrEmpty = errors.New("linalg: empty matrix")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. CanonCorr
	// inputs with a different number of observations.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value in an input that must be finite.
	ErrNaNInf = errors.New("linalg: NaN or Inf encountered")

	// ErrDecomposition indicates that an SVD or eigen factorization did not
	// converge.
	ErrDecomposition = errors.New("linalg: factorization failed")

	// ErrBadCount indicates a requested number of vectors outside [1, n].
	ErrBadCount = errors.New("linalg: requested count out of range")
)

// Operation tags used when wrapping sentinels.
const (
	opQRRemoveMean     = "QRRemoveMean"
	opQRList           = "QRList"
	opPinv             = "Pinv"
	opMLDivide         = "MLDivide"
	opCanonCorr        = "CanonCorr"
	opCanonCorrQR      = "CanonCorrQR"
	opPearson          = "Pearson"
	opTopEigenvectors  = "TopEigenvectors"
	opGeneralizedEigen = "GeneralizedEigen"
)

// linalgErrorf wraps err with an operation tag, keeping errors.Is working.
// Call it only with a non-nil err.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
