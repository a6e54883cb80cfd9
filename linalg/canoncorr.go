// SPDX-License-Identifier: MIT
// Package linalg: canonical correlation analysis.
//
// The algorithm follows MATLAB canoncorr:
//
//	X_c·P1 = Q1·R1,  Y_c·P2 = Q2·R2         (QRRemoveMean)
//	Q1ᵀ·Q2 = L·diag(D)·Mᵀ                   (SVD, LAPACK gesvd)
//	A = R1⁺·L·√(n−1),  B = R2⁺·M·√(n−1)     (MLDivide), rows un-permuted
//
// D holds the canonical correlations in descending order.

package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Canonical is the result of a canonical correlation analysis.
//
//	A (p1×min(K1,K2)) canonical coefficients of X, nil unless requested.
//	B (p2×K2)         canonical coefficients of Y, nil unless requested.
//	R                 canonical correlations, descending, each in [0, 1].
//
// K1 and K2 are the economy QR widths of X and Y. Columns beyond the
// numerical rank of either input are zero, so the widths depend on the
// shapes only and never on the data.
type Canonical struct {
	A *mat.Dense
	B *mat.Dense
	R []float64
}

// CanonCorr runs canonical correlation analysis between x (n×p1) and y (n×p2).
// Rows are observations. With forceUV the coefficient matrices A and B are
// computed as well; otherwise only the correlations are.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrNaNInf from the QR stage.
//   - ErrDimensionMismatch when x and y disagree on n.
//   - ErrDecomposition when the SVD does not converge.
func CanonCorr(x, y mat.Matrix, forceUV bool) (Canonical, error) {
	if err := ValidateNonEmpty(x); err != nil {
		return Canonical{}, linalgErrorf(opCanonCorr, err)
	}
	if err := ValidateNonEmpty(y); err != nil {
		return Canonical{}, linalgErrorf(opCanonCorr, err)
	}
	if err := ValidateSameRows(x, y); err != nil {
		return Canonical{}, linalgErrorf(opCanonCorr, err)
	}
	n, _ := x.Dims()

	qx, err := QRRemoveMean(x)
	if err != nil {
		return Canonical{}, linalgErrorf(opCanonCorr, err)
	}
	qy, err := QRRemoveMean(y)
	if err != nil {
		return Canonical{}, linalgErrorf(opCanonCorr, err)
	}

	return CanonCorrQR(qx, qy, n, forceUV)
}

// CanonCorrQR is CanonCorr on already decomposed inputs. n is the number of
// observations the QRs were computed from; it only scales A and B.
//
// Q and R are first cut to the numerical rank of R. The SVD uses economy U
// when Q1ᵀQ2 is taller than wide and the full form otherwise, so V is always
// square. A and B are then zero-padded back to the widths of the untruncated
// factors.
func CanonCorrQR(qx, qy QR, n int, forceUV bool) (Canonical, error) {
	qxr, _ := qx.Q.Dims()
	qyr, _ := qy.Q.Dims()
	if qxr != qyr {
		return Canonical{}, linalgErrorf(opCanonCorrQR, ErrDimensionMismatch)
	}
	q1, r1 := truncateRank(qx)
	q2, r2 := truncateRank(qy)

	var cross mat.Dense
	cross.Mul(q1.T(), q2)
	rows, cols := cross.Dims()

	kind := mat.SVDNone
	if forceUV {
		kind = mat.SVDFull
		if rows > cols {
			kind = mat.SVDThin
		}
	}
	var svd mat.SVD
	if ok := svd.Factorize(&cross, kind); !ok {
		return Canonical{}, linalgErrorf(opCanonCorrQR, ErrDecomposition)
	}
	r := svd.Values(nil)
	for i := range r {
		r[i] = math.Min(math.Max(r[i], 0), 1)
	}
	if !forceUV {
		return Canonical{R: r}, nil
	}

	var l, m mat.Dense
	svd.UTo(&l)
	svd.VTo(&m)
	scale := math.Sqrt(float64(n - 1))

	a, err := MLDivide(r1, &l)
	if err != nil {
		return Canonical{}, linalgErrorf(opCanonCorrQR, err)
	}
	a.Scale(scale, a)
	b, err := MLDivide(r2, &m)
	if err != nil {
		return Canonical{}, linalgErrorf(opCanonCorrQR, err)
	}
	b.Scale(scale, b)

	_, k1 := qx.Q.Dims()
	_, k2 := qy.Q.Dims()
	a = padColumns(unpermuteRows(a, qx.P), min(k1, k2))
	b = padColumns(unpermuteRows(b, qy.P), k2)

	return Canonical{A: a, B: b, R: r}, nil
}

// padColumns returns a widened to w columns with zeros on the right; a itself
// when it is already that wide.
func padColumns(a *mat.Dense, w int) *mat.Dense {
	r, c := a.Dims()
	if c >= w {
		return a
	}
	out := mat.NewDense(r, w, nil)
	out.Slice(0, r, 0, c).(*mat.Dense).Copy(a)

	return out
}

// truncateRank drops the columns of Q and rows of R beyond the numerical
// rank of R: |R[i,i]| > eps(|R[0,0]|)·max(M, N). At least one is kept.
// Without this, the trailing Householder vectors of a rank-deficient input
// are roundoff and would take part in the correlation.
func truncateRank(d QR) (q, r mat.Matrix) {
	m, k := d.Q.Dims()
	_, n := d.R.Dims()
	r00 := math.Abs(d.R.At(0, 0))
	tol := (math.Nextafter(r00, math.Inf(1)) - r00) * float64(max(m, n))
	rank := 1
	for i := 1; i < k; i++ {
		if math.Abs(d.R.At(i, i)) > tol {
			rank = i + 1
		}
	}
	if rank == k {
		return d.Q, d.R
	}

	return d.Q.Slice(0, m, 0, rank), d.R.Slice(0, rank, 0, n)
}

// unpermuteRows returns out with out[p[i], :] = a[i, :].
func unpermuteRows(a *mat.Dense, p []int) *mat.Dense {
	r, c := a.Dims()
	out := mat.NewDense(r, c, nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, a)
		out.SetRow(p[i], row)
	}

	return out
}

// Pearson returns the Pearson correlation coefficient of a and b.
// Constant inputs yield NaN, as the coefficient is undefined there.
func Pearson(a, b []float64) (float64, error) {
	if a == nil || b == nil {
		return 0, linalgErrorf(opPearson, ErrNilMatrix)
	}
	if len(a) != len(b) {
		return 0, linalgErrorf(opPearson, ErrDimensionMismatch)
	}
	if len(a) == 0 {
		return 0, linalgErrorf(opPearson, ErrEmpty)
	}

	return stat.Correlation(a, b, nil), nil
}

// ProjectionCorr projects x (p1×n) through u (p1×d) and y (p2×n) through
// v (p2×d), flattens both d×n projections row by row and returns their
// Pearson correlation.
func ProjectionCorr(x, y, u, v mat.Matrix) (float64, error) {
	var a, b mat.Dense
	ur, _ := u.Dims()
	xr, _ := x.Dims()
	vr, _ := v.Dims()
	yr, _ := y.Dims()
	if ur != xr || vr != yr {
		return 0, linalgErrorf(opPearson, ErrDimensionMismatch)
	}
	a.Mul(u.T(), x)
	b.Mul(v.T(), y)

	return Pearson(flatten(&a), flatten(&b))
}

// flatten returns the row-major contents of d.
func flatten(d *mat.Dense) []float64 {
	r, c := d.Dims()
	raw := d.RawMatrix()
	if raw.Stride == c {
		return raw.Data[:r*c]
	}
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		out = append(out, raw.Data[i*raw.Stride:i*raw.Stride+c]...)
	}

	return out
}
