// SPDX-License-Identifier: MIT
// Package linalg: pseudo-inverse and the least-squares solve built on it.
//
// MLDivide deliberately goes through the pseudo-inverse instead of a
// triangular solve: the R factors it is applied to come from pivoted QR of
// short, highly correlated EEG segments and may be rank-deficient.

package linalg

import (
	"gonum.org/v1/gonum/mat"
)

// machEps is the float64 unit round-off used for the rank cut-off.
const machEps = 2.220446049250313e-16

// Pinv returns the Moore–Penrose pseudo-inverse of a (r×c), shape c×r.
//
// Implementation:
//   - Stage 1: thin SVD a = U·diag(s)·Vᵀ (LAPACK gesvd).
//   - Stage 2: keep singular values s_i > max(r, c)·ε·s_0.
//   - Stage 3: pinv = V·diag(1/s_i)·Uᵀ over the kept values.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrDecomposition (wrapped with "Pinv").
func Pinv(a mat.Matrix) (*mat.Dense, error) {
	if err := ValidateNonEmpty(a); err != nil {
		return nil, linalgErrorf(opPinv, err)
	}
	r, c := a.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, linalgErrorf(opPinv, ErrDecomposition)
	}
	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	cutoff := 0.0
	if len(s) > 0 {
		cutoff = float64(max(r, c)) * machEps * s[0]
	}

	// Scale the columns of V by 1/s_i, zeroing the discarded directions.
	rows, _ := v.Dims()
	for i, sv := range s {
		inv := 0.0
		if sv > cutoff {
			inv = 1 / sv
		}
		for j := 0; j < rows; j++ {
			v.Set(j, i, v.At(j, i)*inv)
		}
	}

	out := mat.NewDense(c, r, nil)
	out.Mul(&v, u.T())

	return out, nil
}

// MLDivide solves a·x = b in the least-squares sense as pinv(a)·b.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrDimensionMismatch (rows of a and b differ),
//     ErrDecomposition.
func MLDivide(a, b mat.Matrix) (*mat.Dense, error) {
	if err := ValidateNonEmpty(b); err != nil {
		return nil, linalgErrorf(opMLDivide, err)
	}
	if err := ValidateNonEmpty(a); err != nil {
		return nil, linalgErrorf(opMLDivide, err)
	}
	if err := ValidateSameRows(a, b); err != nil {
		return nil, linalgErrorf(opMLDivide, err)
	}
	p, err := Pinv(a)
	if err != nil {
		return nil, linalgErrorf(opMLDivide, err)
	}
	pr, _ := p.Dims()
	_, bc := b.Dims()
	out := mat.NewDense(pr, bc, nil)
	out.Mul(p, b)

	return out, nil
}
