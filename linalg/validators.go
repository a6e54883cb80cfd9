// SPDX-License-Identifier: MIT
// Package linalg: shared input checks.
//
// Validators return plain (tagged) sentinels; kernels wrap them once more with
// their own operation tag. All checks are pure and allocate nothing.

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil rejects nil interfaces and typed-nil *mat.Dense values.
func ValidateNotNil(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty requires a non-nil matrix with both dimensions > 0.
func ValidateNonEmpty(m mat.Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonEmpty", err)
	}
	if d, ok := m.(*mat.Dense); ok && d.IsEmpty() {
		return validatorErrorf("ValidateNonEmpty", ErrEmpty)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmpty)
	}

	return nil
}

// ValidateFinite scans every element and rejects NaN and ±Inf.
//
// Complexity: O(r*c), no allocations.
func ValidateFinite(m mat.Matrix) error {
	r, c := m.Dims()
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateSameRows requires a and b to share their row count (observations).
// Assumes both are non-nil.
func ValidateSameRows(a, b mat.Matrix) error {
	ra, _ := a.Dims()
	rb, _ := b.Dims()
	if ra != rb {
		return validatorErrorf("ValidateSameRows", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare requires a non-nil, non-empty square matrix.
func ValidateSquare(m mat.Matrix) error {
	if err := ValidateNonEmpty(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	r, c := m.Dims()
	if r != c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}
