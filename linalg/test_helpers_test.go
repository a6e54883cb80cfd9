// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures (seeded random matrices, orthogonal bases).
//   - Approximate comparisons with readable failure output.

package linalg_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// tol is the default absolute tolerance for float64 comparisons in this package.
const tol = 1e-9

// randDense returns an r×c matrix with standard normal entries from rng.
func randDense(rng *rand.Rand, r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return mat.NewDense(r, c, data)
}

// randOrthogonal returns an n×n orthogonal matrix from the QR of a random one.
func randOrthogonal(rng *rand.Rand, n int) *mat.Dense {
	var qr mat.QR
	qr.Factorize(randDense(rng, n, n))
	var q mat.Dense
	qr.QTo(&q)

	return &q
}

// centered returns x minus its column means.
func centered(x mat.Matrix) *mat.Dense {
	r, c := x.Dims()
	out := mat.DenseCopyOf(x)
	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			sum += out.At(i, j)
		}
		mean := sum / float64(r)
		for i := 0; i < r; i++ {
			out.Set(i, j, out.At(i, j)-mean)
		}
	}

	return out
}

// requireDenseClose fails the test when a and b differ by more than eps anywhere.
func requireDenseClose(t *testing.T, want, got mat.Matrix, eps float64, msg string) {
	t.Helper()
	if !mat.EqualApprox(want, got, eps) {
		t.Fatalf("%s:\nwant\n%v\ngot\n%v", msg, mat.Formatted(want), mat.Formatted(got))
	}
}
