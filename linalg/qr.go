// SPDX-License-Identifier: MIT
// Package linalg: mean-removed, column-pivoted QR and its inverse.
//
// Purpose:
//   - QRRemoveMean centers the columns of X and factors X_c·P = Q·R with an
//     economy Q (M×K), K = min(M, N).
//   - QRList applies QRRemoveMean to the transpose of every element of a list
//     (signals are stored variables × samples; the kernel wants samples × variables).
//   - QR.Inverse and QRInverseBands rebuild X_c by scattering the columns of
//     Q·R back through P.
//
// Determinism:
//   - LAPACK dgeqp3 picks pivots by column norm with a fixed tie order, so the
//     same input always yields the same (Q, R, P).

package linalg

import (
	"gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// freeColumn marks a column as free to move during dgeqp3 pivoting.
const freeColumn = -1

// QR is a column-pivoted economy QR triple of a column-centered matrix.
//
//	Q (M×K) has orthonormal columns.
//	R (K×N) is upper trapezoidal with |R[0,0]| ≥ |R[1,1]| ≥ ...
//	P (N)   column j of Q·R is column P[j] of the centered input.
type QR struct {
	Q *mat.Dense
	R *mat.Dense
	P []int
}

// Clone returns a deep copy; the clone shares no storage with d.
func (d QR) Clone() QR {
	out := QR{P: append([]int(nil), d.P...)}
	if d.Q != nil {
		out.Q = mat.DenseCopyOf(d.Q)
	}
	if d.R != nil {
		out.R = mat.DenseCopyOf(d.R)
	}

	return out
}

// Inverse rebuilds the centered matrix X_c (M×N) from its QR triple.
//
// Implementation:
//   - Stage 1: T = Q·R (columns in pivoted order).
//   - Stage 2: X_c[:, P[j]] = T[:, j] for every j.
//
// Complexity: O(M·K·N) for the product, O(M·N) for the scatter.
func (d QR) Inverse() *mat.Dense {
	var t mat.Dense
	t.Mul(d.Q, d.R)
	m, n := t.Dims()
	out := mat.NewDense(m, n, nil)
	col := make([]float64, m)
	for j := 0; j < n; j++ {
		mat.Col(col, j, &t)
		out.SetCol(d.P[j], col)
	}

	return out
}

// QRInverseBands applies Inverse to a per-band stack of decompositions
// (the template case), returning one centered matrix per band.
func QRInverseBands(bands []QR) []*mat.Dense {
	out := make([]*mat.Dense, len(bands))
	for k := range bands {
		out[k] = bands[k].Inverse()
	}

	return out
}

// CenterColumns returns a copy of x with every column mean subtracted, and the
// means themselves (len = number of columns).
func CenterColumns(x mat.Matrix) (*mat.Dense, []float64) {
	r, c := x.Dims()
	out := mat.DenseCopyOf(x)
	means := make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, out)
		means[j] = stat.Mean(col, nil)
		for i := range col {
			col[i] -= means[j]
		}
		out.SetCol(j, col)
	}

	return out, means
}

// QRRemoveMean subtracts the per-column mean of x (M×N) and computes an
// economy-size, column-pivoted QR decomposition of the result.
//
// Inputs:
//   - x: finite M×N matrix with M, N > 0.
//
// Returns:
//   - QR: Q (M×K), R (K×N), P (N), K = min(M, N).
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrNaNInf (wrapped with "QRRemoveMean").
//
// Complexity:
//   - Time O(M·N·K), Space O(M·N).
func QRRemoveMean(x mat.Matrix) (QR, error) {
	if err := ValidateNonEmpty(x); err != nil {
		return QR{}, linalgErrorf(opQRRemoveMean, err)
	}
	if err := ValidateFinite(x); err != nil {
		return QR{}, linalgErrorf(opQRRemoveMean, err)
	}
	centered, _ := CenterColumns(x)

	return pivotedQR(centered), nil
}

// QRList transposes every element of xs and decomposes it with QRRemoveMean.
// Signals are stored variables × samples, so each result has Q of shape
// samples × K.
func QRList(xs []*mat.Dense) ([]QR, error) {
	out := make([]QR, len(xs))
	for i, x := range xs {
		if err := ValidateNotNil(x); err != nil {
			return nil, linalgErrorf(opQRList, err)
		}
		d, err := QRRemoveMean(x.T())
		if err != nil {
			return nil, linalgErrorf(opQRList, err)
		}
		out[i] = d
	}

	return out, nil
}

// pivotedQR factors a (consumed as scratch) with dgeqp3 and forms the economy
// Q with dorgqr. a must be non-empty and have Stride == columns.
func pivotedQR(a *mat.Dense) QR {
	m, n := a.Dims()
	k := min(m, n)
	raw := a.RawMatrix()
	impl := gonum.Implementation{}

	jpvt := make([]int, n)
	for j := range jpvt {
		jpvt[j] = freeColumn
	}
	tau := make([]float64, k)

	// Workspace query, then the factorization proper.
	work := make([]float64, 1)
	impl.Dgeqp3(m, n, raw.Data, raw.Stride, jpvt, tau, work, -1)
	lwork := max(int(work[0]), 3*n+1)
	work = make([]float64, lwork)
	impl.Dgeqp3(m, n, raw.Data, raw.Stride, jpvt, tau, work, lwork)

	// R: upper trapezoid of the leading K rows.
	r := mat.NewDense(k, n, nil)
	for i := 0; i < k; i++ {
		for j := i; j < n; j++ {
			r.Set(i, j, raw.Data[i*raw.Stride+j])
		}
	}

	// Q: the reflectors live below the diagonal of the leading K columns.
	q := make([]float64, m*k)
	for i := 0; i < m; i++ {
		copy(q[i*k:(i+1)*k], raw.Data[i*raw.Stride:i*raw.Stride+k])
	}
	work = work[:1]
	impl.Dorgqr(m, k, k, q, k, tau, work, -1)
	lwork = max(int(work[0]), k, 1)
	work = make([]float64, lwork)
	impl.Dorgqr(m, k, k, q, k, tau, work, lwork)

	return QR{Q: mat.NewDense(m, k, q), R: r, P: jpvt}
}
