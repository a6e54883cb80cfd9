// SPDX-License-Identifier: MIT
// Package linalg: leading eigenvectors of general square matrices.
//
// The online recognizer accumulates covariance-like matrices and needs their
// dominant eigenvectors. Products such as pinv(B)·A are not symmetric, so the
// general (nonsymmetric) solver is used and any imaginary residue is reported
// to the caller instead of being silently discarded.

package linalg

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Eigenvectors holds the leading k eigenpairs of a square matrix.
//
//	Vectors (n×k) real parts of the eigenvectors, unit-norm columns.
//	Values  real parts of the matching eigenvalues, descending.
//	Complex true when the decomposition had any non-zero imaginary part.
type Eigenvectors struct {
	Vectors *mat.Dense
	Values  []float64
	Complex bool
}

// TopEigenvectors returns the k eigenvectors of a (n×n) with the largest real
// eigenvalues, ordered descending. Imaginary parts are dropped; Complex records
// whether there were any.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrNonSquare, ErrNaNInf, ErrBadCount (k∉[1,n]),
//     ErrDecomposition.
//
// Complexity: O(n³).
func TopEigenvectors(a mat.Matrix, k int) (Eigenvectors, error) {
	if err := ValidateSquare(a); err != nil {
		return Eigenvectors{}, linalgErrorf(opTopEigenvectors, err)
	}
	if err := ValidateFinite(a); err != nil {
		return Eigenvectors{}, linalgErrorf(opTopEigenvectors, err)
	}
	n, _ := a.Dims()
	if k < 1 || k > n {
		return Eigenvectors{}, linalgErrorf(opTopEigenvectors, ErrBadCount)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenRight); !ok {
		return Eigenvectors{}, linalgErrorf(opTopEigenvectors, ErrDecomposition)
	}
	vals := eig.Values(nil)
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	out := Eigenvectors{Vectors: mat.NewDense(n, k, nil), Values: make([]float64, k)}
	for _, v := range vals {
		if imag(v) != 0 {
			out.Complex = true
			break
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return real(vals[order[i]]) > real(vals[order[j]])
	})

	col := make([]float64, n)
	for c := 0; c < k; c++ {
		idx := order[c]
		out.Values[c] = real(vals[idx])
		for i := 0; i < n; i++ {
			z := vecs.At(i, idx)
			if imag(z) != 0 {
				out.Complex = true
			}
			col[i] = real(z)
		}
		if norm := floats.Norm(col, 2); norm > 0 {
			floats.Scale(1/norm, col)
		}
		out.Vectors.SetCol(c, col)
	}

	return out, nil
}

// GeneralizedEigen returns the leading k eigenvectors of the generalized
// problem a·w = λ·b·w, solved as the standard problem pinv(b)·a·w = λ·w so a
// singular b degrades gracefully.
//
// Errors: those of TopEigenvectors, plus ErrNaNInf for a non-finite a or b.
func GeneralizedEigen(a, b mat.Matrix, k int) (Eigenvectors, error) {
	if err := ValidateSquare(a); err != nil {
		return Eigenvectors{}, linalgErrorf(opGeneralizedEigen, err)
	}
	if err := ValidateSquare(b); err != nil {
		return Eigenvectors{}, linalgErrorf(opGeneralizedEigen, err)
	}
	if err := ValidateSameRows(a, b); err != nil {
		return Eigenvectors{}, linalgErrorf(opGeneralizedEigen, err)
	}
	if err := ValidateFinite(a); err != nil {
		return Eigenvectors{}, linalgErrorf(opGeneralizedEigen, err)
	}
	if err := ValidateFinite(b); err != nil {
		return Eigenvectors{}, linalgErrorf(opGeneralizedEigen, err)
	}
	bInv, err := Pinv(b)
	if err != nil {
		return Eigenvectors{}, linalgErrorf(opGeneralizedEigen, err)
	}
	var m mat.Dense
	m.Mul(bInv, a)
	res, err := TopEigenvectors(&m, k)
	if err != nil {
		return Eigenvectors{}, linalgErrorf(opGeneralizedEigen, err)
	}

	return res, nil
}

// IsTrivial reports whether v is the degenerate "all ones" direction: every
// entry has the same sign and the same magnitude within rel·max|v|.
// A zero vector is trivial.
func IsTrivial(v []float64, rel float64) bool {
	if len(v) == 0 {
		return true
	}
	maxAbs := floats.Norm(v, math.Inf(1))
	if maxAbs == 0 {
		return true
	}
	sign := math.Signbit(v[0])
	for _, x := range v {
		if math.Signbit(x) != sign || maxAbs-math.Abs(x) > rel*maxAbs {
			return false
		}
	}

	return true
}
