// SPDX-License-Identifier: MIT

// Package linalg is the numeric kernel behind the CCA recognizers.
//
// It provides:
//
//   - QRRemoveMean / QRList: column-centered, column-pivoted economy QR
//     (LAPACK dgeqp3 + dorgqr through gonum) and its list form.
//   - QR.Inverse / QRInverseBands: rebuild the centered matrix from a QR
//     triple, for one matrix or one matrix per filter-bank band.
//   - Pinv / MLDivide: Moore–Penrose pseudo-inverse and the least-squares
//     solve A\B built on it.
//   - CanonCorr / CanonCorrQR: canonical correlation analysis following the
//     MATLAB canoncorr algorithm (QR + gesvd SVD + pseudo-inverse back-solve).
//   - Pearson: correlation of two flattened projections.
//   - TopEigenvectors / GeneralizedEigen: leading real eigenvectors of general
//     square matrices, reporting when imaginary parts had to be dropped.
//
// All matrices are gonum *mat.Dense values. Inputs are never mutated; every
// routine returns freshly allocated results. Errors are package sentinels
// wrapped with an operation tag, so callers branch with errors.Is.
//
// Conventions:
//
//	X (n×p)  rows are observations (time samples), columns are variables.
//	P        P[j] is the input column that landed in position j after pivoting.
package linalg
