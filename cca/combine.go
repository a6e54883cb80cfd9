// SPDX-License-Identifier: MIT
// Package cca: score combination across correlation terms and bands.
//
// A correlation matrix is bands×classes. SCCA combines one matrix linearly,
//
//	score_i = Σ_k w_k·r[k,i]
//
// while the fused models sum signed squares over every term t,
//
//	score_i = Σ_k w_k Σ_t sign(r_t[k,i])·r_t[k,i]²
//
// which keeps the sign and emphasizes strong correlations.

package cca

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// weightedSum returns Σ_k w[k]·r[k,i] for every class i.
func weightedSum(w []float64, r *mat.Dense) []float64 {
	bands, classes := r.Dims()
	out := make([]float64, classes)
	for k := 0; k < bands; k++ {
		for i := 0; i < classes; i++ {
			out[i] += w[k] * r.At(k, i)
		}
	}

	return out
}

// signedSquareSum returns Σ_k w[k] Σ_t sign(r_t[k,i])·r_t[k,i]² for every
// class i. All terms share one shape.
func signedSquareSum(w []float64, terms ...*mat.Dense) []float64 {
	if len(terms) == 0 {
		return nil
	}
	bands, classes := terms[0].Dims()
	out := make([]float64, classes)
	for _, r := range terms {
		for k := 0; k < bands; k++ {
			for i := 0; i < classes; i++ {
				v := r.At(k, i)
				out[i] += w[k] * signedSquare(v)
			}
		}
	}

	return out
}

func signedSquare(v float64) float64 {
	if v < 0 {
		return -v * v
	}

	return v * v
}

// argmax returns the index of the first maximum of s. NaN entries never win;
// an all-NaN (or empty) vector yields 0.
func argmax(s []float64) int {
	best, idx := math.Inf(-1), 0
	found := false
	for i, v := range s {
		if math.IsNaN(v) {
			continue
		}
		if !found || v > best {
			best, idx, found = v, i, true
		}
	}

	return idx
}
